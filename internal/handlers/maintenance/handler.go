package maintenance

import (
	"hms/infras/otel"
	"hms/internal/domains/maintenance/model/dto"
	"hms/internal/domains/maintenance/service"
	"hms/shared/constant"
	"hms/shared/validator"
	"hms/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const (
	paramHotelID       = "hotel_id"
	paramEmployeeID    = "employee_id"
	paramMaintenanceID = "maintenance_id"
)

type Handler struct {
	service service.Maintenance
	otel    otel.Otel
}

func New(service service.Maintenance, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/maintenance", func(routerGroup chi.Router) {
		routerGroup.Post("/add-maintenance/{hotel_id}/{employee_id}", handler.CreateMaintenance)
		routerGroup.Patch("/update-maintenance/{hotel_id}/{employee_id}/{maintenance_id}", handler.UpdateMaintenance)
	})
}

// Bodies are only decoded here; the service validates them once the employee is
// known to be allowed to file maintenance.

// CreateMaintenance files maintenance records for rooms of a hotel.
// @Summary Add maintenance records
// @Tags Maintenance
// @Accept json
// @Produce json
// @Param hotel_id path string true "Hotel ID"
// @Param employee_id path string true "Employee ID"
// @Param request body dto.CreateMaintenanceRequest true "Maintenance records"
// @Success 201 {object} dto.CreateMaintenanceResponse
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/maintenance/add-maintenance/{hotel_id}/{employee_id} [post]
func (handler *Handler) CreateMaintenance(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateMaintenance")
	defer scope.End()

	req := dto.CreateMaintenanceRequest{}

	if err := validator.Decode(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to decode request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Create(ctx,
		chi.URLParam(request, paramHotelID),
		chi.URLParam(request, paramEmployeeID),
		req,
	)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create maintenance")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusCreated, res)
}

// UpdateMaintenance moves a maintenance record to a new status.
// @Summary Update a maintenance status
// @Tags Maintenance
// @Accept json
// @Produce json
// @Param hotel_id path string true "Hotel ID"
// @Param employee_id path string true "Employee ID"
// @Param maintenance_id path string true "Maintenance ID"
// @Param request body dto.UpdateMaintenanceRequest true "Status"
// @Success 200 {object} dto.UpdateMaintenanceResponse
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/maintenance/update-maintenance/{hotel_id}/{employee_id}/{maintenance_id} [patch]
func (handler *Handler) UpdateMaintenance(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateMaintenance")
	defer scope.End()

	req := dto.UpdateMaintenanceRequest{}

	if err := validator.Decode(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to decode request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.UpdateStatus(ctx,
		chi.URLParam(request, paramHotelID),
		chi.URLParam(request, paramEmployeeID),
		chi.URLParam(request, paramMaintenanceID),
		req,
	)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update maintenance")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}
