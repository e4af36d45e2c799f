package customer_test

import (
	"encoding/json"
	otelMocks "hms/infras/otel/mocks"
	"hms/internal/domains/customer/model/dto"
	"hms/internal/domains/customer/service/mocks"
	hotelDto "hms/internal/domains/hotel/model/dto"
	hotelMocks "hms/internal/domains/hotel/service/mocks"
	"hms/internal/handlers/customer"
	"hms/shared/failure"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	customers *mocks.MockCustomer
	hotels    *hotelMocks.MockHotel
	router    http.Handler
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)

	f := &fixture{
		customers: mocks.NewMockCustomer(ctrl),
		hotels:    hotelMocks.NewMockHotel(ctrl),
	}

	handler := customer.New(f.customers, f.hotels, otelMocks.NewOtel())

	router := chi.NewRouter()
	router.Route("/api", handler.Router)
	f.router = router

	return f
}

func (f *fixture) serve(method, target, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, httptest.NewRequest(method, target, strings.NewReader(body)))

	return rec
}

func TestHandler_CreateCustomer(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		f := newFixture(t)

		f.customers.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(dto.CreateCustomerResponse{Message: "Customer added successfully", CustomerID: "CUS00007"}, nil)

		rec := f.serve(http.MethodPost, "/api/customer/add-customer",
			`{"full_name":"Ana Lima","email":"ana@example.com","phone":"+351900000000","city":"Porto","country":"Portugal"}`)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, rec.Body.String(), `"customer_id":"CUS00007"`)
	})

	t.Run("invalid email", func(t *testing.T) {
		f := newFixture(t)

		rec := f.serve(http.MethodPost, "/api/customer/add-customer",
			`{"full_name":"Ana Lima","email":"not-an-email","phone":"1","city":"Porto","country":"Portugal"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("email taken", func(t *testing.T) {
		f := newFixture(t)

		f.customers.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(dto.CreateCustomerResponse{}, failure.Conflict("Email already exists"))

		rec := f.serve(http.MethodPost, "/api/customer/add-customer",
			`{"full_name":"Ana Lima","email":"ana@example.com","phone":"1","city":"Porto","country":"Portugal"}`)

		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}

func TestHandler_GetBookingHistory(t *testing.T) {
	t.Run("second page", func(t *testing.T) {
		f := newFixture(t)

		f.customers.EXPECT().GetBookingHistory(gomock.Any(), "CUS00001", 2).
			Return(dto.GetBookingHistoryResponse{CustomerID: "CUS00001", TotalBookings: 11, CurrentPage: 2, TotalPages: 2}, nil)

		rec := f.serve(http.MethodGet, "/api/customer/get-bookings-history/CUS00001?page=2", "")

		body := map[string]any{}
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, float64(11), body["totalBookings"])
		assert.Equal(t, true, body["success"])
	})

	t.Run("invalid page", func(t *testing.T) {
		f := newFixture(t)

		rec := f.serve(http.MethodGet, "/api/customer/get-bookings-history/CUS00001?page=-1", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHandler_HotelSearches(t *testing.T) {
	t.Run("city and country", func(t *testing.T) {
		f := newFixture(t)

		f.hotels.EXPECT().Filter(gomock.Any(), hotelDto.FilterRequest{City: "porto", Country: "portugal", Page: 1}).
			Return(hotelDto.HotelListResponse{CurrentPage: 1, TotalPages: 1}, nil)

		rec := f.serve(http.MethodGet, "/api/customer/filter-hotels-by-city-and-country?city=porto&country=portugal", "")

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("price range", func(t *testing.T) {
		f := newFixture(t)

		f.hotels.EXPECT().FilterByRoomPrice(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, req hotelDto.PriceFilterRequest) (hotelDto.HotelListResponse, error) {
				assert.Equal(t, 80.0, *req.MinPrice)
				assert.Equal(t, 4.0, *req.MinRating)
				assert.Nil(t, req.MaxPrice)

				return hotelDto.HotelListResponse{CurrentPage: 1, TotalPages: 1}, nil
			})

		rec := f.serve(http.MethodGet, "/api/customer/filter-hotel-rooms-by-price-per-night?minPrice=80&minRating=4", "")

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("price is not a number", func(t *testing.T) {
		f := newFixture(t)

		rec := f.serve(http.MethodGet, "/api/customer/filter-hotel-rooms-by-price-per-night?minPrice=cheap", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
