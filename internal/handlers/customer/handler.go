package customer

import (
	"hms/infras/otel"
	"hms/internal/domains/customer/model/dto"
	"hms/internal/domains/customer/service"
	hotelDto "hms/internal/domains/hotel/model/dto"
	hotelService "hms/internal/domains/hotel/service"
	"hms/shared"
	"hms/shared/constant"
	"hms/shared/validator"
	"hms/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const paramCustomerID = "customerId"

// Handler serves the customer facing routes. Hotel searches go to the hotel service.
type Handler struct {
	service service.Customer
	hotels  hotelService.Hotel
	otel    otel.Otel
}

func New(service service.Customer, hotels hotelService.Hotel, otel otel.Otel) Handler {
	return Handler{
		service: service,
		hotels:  hotels,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/customer", func(routerGroup chi.Router) {
		routerGroup.Post("/add-customer", handler.CreateCustomer)
		routerGroup.Get("/filter-hotels-by-city-and-country", handler.FilterHotels)
		routerGroup.Get("/get-bookings-history/{customerId}", handler.GetBookingHistory)
		routerGroup.Get("/filter-hotel-rooms-by-price-per-night", handler.FilterHotelsByRoomPrice)
	})
}

// CreateCustomer registers a customer.
// @Summary Add a customer
// @Tags Customer
// @Accept json
// @Produce json
// @Param request body dto.CreateCustomerRequest true "Customer"
// @Success 201 {object} dto.CreateCustomerResponse
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/customer/add-customer [post]
func (handler *Handler) CreateCustomer(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateCustomer")
	defer scope.End()

	req := dto.CreateCustomerRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create customer")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusCreated, res)
}

// FilterHotels searches hotels by city and country.
// @Summary Search hotels by location
// @Tags Customer
// @Produce json
// @Param city query string false "City (partial match)"
// @Param country query string false "Country (partial match)"
// @Param page query int false "Page"
// @Success 200 {object} hotelDto.HotelListResponse
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/customer/filter-hotels-by-city-and-country [get]
func (handler *Handler) FilterHotels(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CustomerFilterHotels")
	defer scope.End()

	req := hotelDto.FilterRequest{}
	if err := req.FromRequest(request); err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	res, err := handler.hotels.Filter(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to filter hotels")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// GetBookingHistory lists a customer's bookings, newest first.
// @Summary Customer booking history
// @Tags Customer
// @Produce json
// @Param customerId path string true "Customer ID"
// @Param page query int false "Page"
// @Success 200 {object} dto.GetBookingHistoryResponse
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/customer/get-bookings-history/{customerId} [get]
func (handler *Handler) GetBookingHistory(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookingHistory")
	defer scope.End()

	page, err := shared.ParsePage(request.URL.Query().Get(constant.RequestParamPage))
	if err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	customerID := chi.URLParam(request, paramCustomerID)

	if err := validator.ValidateVar("customerId", customerID, constant.RuleIdentifier); err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.GetBookingHistory(ctx, customerID, page)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get booking history")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// FilterHotelsByRoomPrice lists hotels with rooms inside a nightly price range.
// @Summary Search hotels by room price
// @Tags Customer
// @Produce json
// @Param minPrice query number false "Lowest price per night"
// @Param maxPrice query number false "Highest price per night"
// @Param minRating query number false "Minimum average rating"
// @Param page query int false "Page"
// @Success 200 {object} hotelDto.HotelListResponse
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/customer/filter-hotel-rooms-by-price-per-night [get]
func (handler *Handler) FilterHotelsByRoomPrice(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".FilterHotelsByRoomPrice")
	defer scope.End()

	req := hotelDto.PriceFilterRequest{}
	if err := req.FromRequest(request); err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	res, err := handler.hotels.FilterByRoomPrice(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to filter hotels by room price")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}
