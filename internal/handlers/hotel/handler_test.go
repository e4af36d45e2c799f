package hotel_test

import (
	"encoding/json"
	"hms/config"
	otelMocks "hms/infras/otel/mocks"
	"hms/internal/domains/hotel/model/dto"
	"hms/internal/domains/hotel/service/mocks"
	"hms/internal/handlers/hotel"
	"hms/shared/constant"
	"hms/shared/failure"
	"hms/transport/http/middleware"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

const hotelBody = `{
	"hotel_name": "Sea View",
	"city": "Lisbon",
	"country": "Portugal",
	"total_rooms": 2,
	"rooms": [{"room_number": "101", "room_type": "Deluxe", "price_per_night": 120}]
}`

func newRouter(t *testing.T, apiKey string) (*mocks.MockHotel, http.Handler) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockHotel(ctrl)

	cfg := &config.Config{}
	cfg.App.APIKey = apiKey

	ot := otelMocks.NewOtel()
	handler := hotel.New(svc, middleware.NewAuthMiddleware(ot, cfg), ot)

	router := chi.NewRouter()
	router.Route("/api", handler.Router)

	return svc, router
}

func TestHandler_Routes(t *testing.T) {
	tests := []struct {
		name      string
		apiKey    string
		method    string
		target    string
		body      string
		header    map[string]string
		setupMock func(svc *mocks.MockHotel)
		wantCode  int
		wantBody  map[string]any
	}{
		{
			name:   "add hotel",
			method: http.MethodPost,
			target: "/api/hotel/add-hotel",
			body:   hotelBody,
			setupMock: func(svc *mocks.MockHotel) {
				svc.EXPECT().Create(gomock.Any(), gomock.Any()).
					Return(dto.HotelMutationResponse{Message: "New Hotel added successfully", HotelID: "HOT00005"}, nil)
			},
			wantCode: http.StatusCreated,
			wantBody: map[string]any{"success": true, "hotelId": "HOT00005", "message": "New Hotel added successfully"},
		},
		{
			name:      "add hotel with invalid body",
			method:    http.MethodPost,
			target:    "/api/hotel/add-hotel",
			body:      `{"city": "Lisbon", "total_rooms": 0}`,
			setupMock: func(_ *mocks.MockHotel) {},
			wantCode:  http.StatusBadRequest,
			wantBody:  map[string]any{"success": false},
		},
		{
			name:      "add hotel without api key",
			apiKey:    "secret",
			method:    http.MethodPost,
			target:    "/api/hotel/add-hotel",
			body:      hotelBody,
			setupMock: func(_ *mocks.MockHotel) {},
			wantCode:  http.StatusUnauthorized,
		},
		{
			name:   "update hotel reads the id from the query",
			apiKey: "secret",
			method: http.MethodPut,
			target: "/api/hotel/update-hotel?hotelId=HOT00001",
			body:   hotelBody,
			header: map[string]string{constant.RequestHeaderAPIKey: "secret"},
			setupMock: func(svc *mocks.MockHotel) {
				svc.EXPECT().Update(gomock.Any(), "HOT00001", gomock.Any()).
					Return(dto.HotelMutationResponse{Message: "Hotel updated successfully", HotelID: "HOT00001"}, nil)
			},
			wantCode: http.StatusOK,
		},
		{
			name:   "rating alias route",
			method: http.MethodGet,
			target: "/api/hotel/filter-hotel-by-ratings?ratings=high%20to%20low&page=2",
			setupMock: func(svc *mocks.MockHotel) {
				svc.EXPECT().Filter(gomock.Any(), dto.FilterRequest{Ratings: "high to low", Page: 2}).
					Return(dto.HotelListResponse{TotalHotels: 3, CurrentPage: 2, TotalPages: 1, Data: []dto.HotelResponse{}}, nil)
			},
			wantCode: http.StatusOK,
			wantBody: map[string]any{"success": true, "totalHotels": float64(3), "currentPage": float64(2)},
		},
		{
			name:      "invalid page",
			method:    http.MethodGet,
			target:    "/api/hotel/get-all-hotels?page=abc",
			setupMock: func(_ *mocks.MockHotel) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name:   "list hotels",
			method: http.MethodGet,
			target: "/api/hotel/get-all-hotels",
			setupMock: func(svc *mocks.MockHotel) {
				svc.EXPECT().GetAll(gomock.Any(), 1).Return(dto.HotelListResponse{Message: "No hotels found", CurrentPage: 1, TotalPages: 1}, nil)
			},
			wantCode: http.StatusOK,
			wantBody: map[string]any{"message": "No hotels found"},
		},
		{
			name:   "unknown hotel",
			method: http.MethodGet,
			target: "/api/hotel/get-hotel/HOT00404",
			setupMock: func(svc *mocks.MockHotel) {
				svc.EXPECT().Get(gomock.Any(), "HOT00404").Return(dto.GetHotelResponse{}, failure.NotFound("Hotel not found"))
			},
			wantCode: http.StatusNotFound,
			wantBody: map[string]any{"success": false, "message": "Hotel not found"},
		},
		{
			name:      "hotel id too long",
			method:    http.MethodGet,
			target:    "/api/hotel/get-hotel/HOT000000000000000001",
			setupMock: func(*mocks.MockHotel) {},
			wantCode:  http.StatusBadRequest,
			wantBody:  map[string]any{"success": false, "message": "hotel_id must be at most 20 characters long"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, router := newRouter(t, tt.apiKey)
			tt.setupMock(svc)

			req := httptest.NewRequest(tt.method, tt.target, strings.NewReader(tt.body))
			for key, value := range tt.header {
				req.Header.Set(key, value)
			}

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)

			body := map[string]any{}
			assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

			for key, want := range tt.wantBody {
				assert.Equal(t, want, body[key], key)
			}
		})
	}
}
