package hotel

import (
	"hms/infras/otel"
	"hms/internal/domains/hotel/model/dto"
	"hms/internal/domains/hotel/service"
	"hms/shared/constant"
	"hms/shared/validator"
	"hms/transport/http/middleware"
	"hms/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const (
	paramHotelID = "hotel_id"
	queryHotelID = "hotelId"
)

type Handler struct {
	service service.Hotel
	auth    middleware.Auth
	otel    otel.Otel
}

func New(service service.Hotel, auth middleware.Auth, otel otel.Otel) Handler {
	return Handler{
		service: service,
		auth:    auth,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/hotel", func(routerGroup chi.Router) {
		routerGroup.With(handler.auth.APIKey).Post("/add-hotel", handler.CreateHotel)
		routerGroup.With(handler.auth.APIKey).Put("/update-hotel", handler.UpdateHotel)
		routerGroup.Get("/get-all-hotels", handler.GetAllHotels)
		routerGroup.Get("/filter-hotels", handler.FilterHotels)
		routerGroup.Get("/filter-hotel-rooms-by-availability", handler.FilterHotels)
		routerGroup.Get("/filter-hotel-by-ratings", handler.FilterHotels)
		routerGroup.Get("/filter-hotels-by-city-and-country", handler.FilterHotels)
		routerGroup.Get("/get-hotel/{hotel_id}", handler.GetHotel)
	})
}

// CreateHotel adds a hotel with its rooms and services.
// @Summary Add a hotel
// @Description Create a hotel together with its rooms and services in one transaction.
// @Tags Hotel
// @Accept json
// @Produce json
// @Param request body dto.HotelRequest true "Hotel"
// @Success 201 {object} dto.HotelMutationResponse
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/hotel/add-hotel [post]
// @Security ApiKeyAuth
func (handler *Handler) CreateHotel(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateHotel")
	defer scope.End()

	req := dto.HotelRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create hotel")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Hotel created " + res.HotelID)

	response.WithJSON(writer, http.StatusCreated, res)
}

// UpdateHotel rewrites a hotel and merges its rooms and services.
// @Summary Update a hotel
// @Description Update hotel fields, upsert rooms by room number and services by service id.
// @Tags Hotel
// @Accept json
// @Produce json
// @Param hotelId query string true "Hotel ID"
// @Param request body dto.HotelRequest true "Hotel"
// @Success 200 {object} dto.HotelMutationResponse
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/hotel/update-hotel [put]
// @Security ApiKeyAuth
func (handler *Handler) UpdateHotel(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateHotel")
	defer scope.End()

	req := dto.HotelRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Update(ctx, request.URL.Query().Get(queryHotelID), req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update hotel")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// GetAllHotels lists hotels with their rooms, services, reviews and bookings.
// @Summary List hotels
// @Tags Hotel
// @Produce json
// @Param page query int false "Page"
// @Success 200 {object} dto.HotelListResponse
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/hotel/get-all-hotels [get]
func (handler *Handler) GetAllHotels(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAllHotels")
	defer scope.End()

	req := dto.FilterRequest{}
	if err := req.FromRequest(request); err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.GetAll(ctx, req.Page)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get hotels")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// FilterHotels filters and sorts the hotel listing.
// @Summary Filter hotels
// @Description Filter by city, country and minimum rating; sort by room availability, bookings or rating.
// @Tags Hotel
// @Produce json
// @Param city query string false "City (partial match)"
// @Param country query string false "Country (partial match)"
// @Param ratings query string false "Minimum average rating, or low to high / high to low"
// @Param sortHotelByRoomAvailability query string false "low to high / high to low"
// @Param bookingsCount query string false "low to high / high to low"
// @Param page query int false "Page"
// @Success 200 {object} dto.HotelListResponse
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/hotel/filter-hotels [get]
func (handler *Handler) FilterHotels(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".FilterHotels")
	defer scope.End()

	req := dto.FilterRequest{}
	if err := req.FromRequest(request); err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Filter(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to filter hotels")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// GetHotel returns one hotel aggregate.
// @Summary Get a hotel
// @Tags Hotel
// @Produce json
// @Param hotel_id path string true "Hotel ID"
// @Success 200 {object} dto.GetHotelResponse
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/hotel/get-hotel/{hotel_id} [get]
func (handler *Handler) GetHotel(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetHotel")
	defer scope.End()

	hotelID := chi.URLParam(request, paramHotelID)

	if err := validator.ValidateVar("hotel_id", hotelID, constant.RuleIdentifier); err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Get(ctx, hotelID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get hotel")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}
