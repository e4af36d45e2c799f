package review_test

import (
	otelMocks "hms/infras/otel/mocks"
	"hms/internal/domains/review/model/dto"
	"hms/internal/domains/review/service/mocks"
	"hms/internal/handlers/review"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestHandler_CreateReview(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		setupMock func(svc *mocks.MockReview)
		wantCode  int
	}{
		{
			name: "created",
			body: `{"hotel_id":"HOT00001","customer_id":"CUS00001","rating":5,"comment":"Lovely stay"}`,
			setupMock: func(svc *mocks.MockReview) {
				svc.EXPECT().Create(gomock.Any(), dto.CreateReviewRequest{
					HotelID:    "HOT00001",
					CustomerID: "CUS00001",
					Rating:     5,
					Comment:    "Lovely stay",
				}).Return(dto.CreateReviewResponse{Message: "Review added successfully", ReviewID: "REV00001"}, nil)
			},
			wantCode: http.StatusCreated,
		},
		{
			name:      "rating out of range",
			body:      `{"hotel_id":"HOT00001","customer_id":"CUS00001","rating":6}`,
			setupMock: func(_ *mocks.MockReview) {},
			wantCode:  http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := mocks.NewMockReview(gomock.NewController(t))
			tt.setupMock(svc)

			handler := review.New(svc, otelMocks.NewOtel())
			router := chi.NewRouter()
			router.Route("/api", handler.Router)

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/review/add-review", strings.NewReader(tt.body)))

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}
