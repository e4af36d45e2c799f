//go:build wireinject
// +build wireinject

package di

import (
	"hms/config"
	"hms/infras/kafka"
	"hms/infras/otel"
	"hms/infras/postgres"
	"hms/shared/cache"
	"hms/shared/sequence"
	"hms/transport/http"
	"hms/transport/http/middleware"
	"hms/transport/http/router"

	"github.com/google/wire"

	amenityRepository "hms/internal/domains/amenity/repository"
	bookingEvent "hms/internal/domains/booking/event"
	bookingRepository "hms/internal/domains/booking/repository"
	bookingService "hms/internal/domains/booking/service"
	customerRepository "hms/internal/domains/customer/repository"
	customerService "hms/internal/domains/customer/service"
	employeeRepository "hms/internal/domains/employee/repository"
	hotelRepository "hms/internal/domains/hotel/repository"
	hotelService "hms/internal/domains/hotel/service"
	maintenanceRepository "hms/internal/domains/maintenance/repository"
	maintenanceService "hms/internal/domains/maintenance/service"
	reviewRepository "hms/internal/domains/review/repository"
	reviewService "hms/internal/domains/review/service"
	roomRepository "hms/internal/domains/room/repository"

	bookingHandler "hms/internal/handlers/booking"
	customerHandler "hms/internal/handlers/customer"
	hotelHandler "hms/internal/handlers/hotel"
	maintenanceHandler "hms/internal/handlers/maintenance"
	reviewHandler "hms/internal/handlers/review"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	postgres.NewTransactor,
	otel.New,
	kafka.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.New,
	sequence.New,
)

var repositories = wire.NewSet(
	hotelRepository.New,
	roomRepository.New,
	amenityRepository.New,
	reviewRepository.New,
	customerRepository.New,
	employeeRepository.New,
	maintenanceRepository.New,
	bookingRepository.New,
	bookingRepository.NewBookingRoom,
	bookingRepository.NewCancellation,
)

var domains = wire.NewSet(
	hotelService.New,
	bookingEvent.New,
	bookingService.New,
	customerService.New,
	reviewService.New,
	maintenanceService.New,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	hotelHandler.New,
	bookingHandler.New,
	reviewHandler.New,
	maintenanceHandler.New,
	customerHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		repositories,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
