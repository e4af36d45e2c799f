package maintenance_test

import (
	otelMocks "hms/infras/otel/mocks"
	"hms/internal/domains/maintenance/model/dto"
	"hms/internal/domains/maintenance/service/mocks"
	"hms/internal/handlers/maintenance"
	"hms/shared/failure"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newRouter(t *testing.T) (*mocks.MockMaintenance, http.Handler) {
	svc := mocks.NewMockMaintenance(gomock.NewController(t))
	handler := maintenance.New(svc, otelMocks.NewOtel())

	router := chi.NewRouter()
	router.Route("/api", handler.Router)

	return svc, router
}

func TestHandler_CreateMaintenance(t *testing.T) {
	t.Run("invalid body reaches the service after decoding", func(t *testing.T) {
		svc, router := newRouter(t)

		svc.EXPECT().Create(gomock.Any(), "HOT00001", "EMP00002", gomock.Any()).
			DoAndReturn(func(_ any, _, _ string, req dto.CreateMaintenanceRequest) (dto.CreateMaintenanceResponse, error) {
				assert.Empty(t, req.Maintenance)

				return dto.CreateMaintenanceResponse{}, failure.Forbidden("You are not authorized to add maintenance records")
			})

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost,
			"/api/maintenance/add-maintenance/HOT00001/EMP00002", strings.NewReader(`{"maintenance":[]}`)))

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("malformed json", func(t *testing.T) {
		_, router := newRouter(t)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost,
			"/api/maintenance/add-maintenance/HOT00001/EMP00002", strings.NewReader(`{"maintenance":`)))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHandler_UpdateMaintenance(t *testing.T) {
	svc, router := newRouter(t)

	svc.EXPECT().UpdateStatus(gomock.Any(), "HOT00001", "EMP00001", "MAIN00003", gomock.Any()).
		Return(dto.UpdateMaintenanceResponse{Message: "Maintenance status updated successfully", MaintenanceID: "MAIN00003"}, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPatch,
		"/api/maintenance/update-maintenance/HOT00001/EMP00001/MAIN00003",
		strings.NewReader(`{"room_number":"101","maintenance_status":"Completed"}`)))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"maintenance_id":"MAIN00003"`)
}
