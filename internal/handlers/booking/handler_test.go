package booking_test

import (
	"encoding/json"
	otelMocks "hms/infras/otel/mocks"
	"hms/internal/domains/booking/model/dto"
	"hms/internal/domains/booking/service/mocks"
	"hms/internal/handlers/booking"
	"hms/shared/failure"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newRouter(t *testing.T) (*mocks.MockBooking, http.Handler) {
	svc := mocks.NewMockBooking(gomock.NewController(t))
	handler := booking.New(svc, otelMocks.NewOtel())

	router := chi.NewRouter()
	router.Route("/api", handler.Router)

	return svc, router
}

func TestHandler_CreateBooking(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		svc, router := newRouter(t)

		svc.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, req dto.CreateBookingRequest) (dto.CreateBookingResponse, error) {
				assert.Equal(t, "HOT00001", req.HotelID)
				assert.Len(t, req.BookingRooms, 1)

				return dto.CreateBookingResponse{Message: "Booking added successfully", BookingID: "BOOK00001"}, nil
			})

		body := `{"customer_id":"CUS00001","hotel_id":"HOT00001","total_amount":240,
			"booking_rooms":[{"room_number":"101","check_in":"2026-11-01","check_out":"2026-11-03"}]}`

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/booking/add-booking", strings.NewReader(body)))

		assert.Equal(t, http.StatusCreated, rec.Code)

		res := map[string]any{}
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
		assert.Equal(t, "BOOK00001", res["booking_id"])
	})

	t.Run("new booking must be confirmed", func(t *testing.T) {
		_, router := newRouter(t)

		for _, status := range []string{"Cancelled", "Completed"} {
			body := `{"customer_id":"CUS00001","hotel_id":"HOT00001","total_amount":240,"booking_status":"` + status + `",
				"booking_rooms":[{"room_number":"101","check_in":"2026-11-01","check_out":"2026-11-03"}]}`

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/booking/add-booking", strings.NewReader(body)))

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), "booking_status must be one of [Confirmed]")
		}
	})

	t.Run("no rooms", func(t *testing.T) {
		_, router := newRouter(t)

		body := `{"customer_id":"CUS00001","hotel_id":"HOT00001","total_amount":240,"booking_rooms":[]}`

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/booking/add-booking", strings.NewReader(body)))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHandler_CancelBooking(t *testing.T) {
	svc, router := newRouter(t)

	svc.EXPECT().Cancel(gomock.Any(), "BOOK00001", dto.CancelBookingRequest{
		CustomerID:   "CUS00002",
		HotelID:      "HOT00001",
		CancelReason: "Change of plans",
	}).Return(dto.CancelBookingResponse{}, failure.Forbidden("You are not authorized to cancel this booking"))

	body := `{"customer_id":"CUS00002","hotel_id":"HOT00001","cancel_reason":"Change of plans"}`

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/api/booking/cancel-booking/BOOK00001", strings.NewReader(body)))

	assert.Equal(t, http.StatusForbidden, rec.Code)
}
