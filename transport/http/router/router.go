package router

import (
	"hms/internal/handlers/booking"
	"hms/internal/handlers/customer"
	"hms/internal/handlers/hotel"
	"hms/internal/handlers/maintenance"
	"hms/internal/handlers/review"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Hotel       hotel.Handler
	Booking     booking.Handler
	Review      review.Handler
	Maintenance maintenance.Handler
	Customer    customer.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/api", func(routerGroup chi.Router) {
		r.DomainHandlers.Hotel.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Review.Router(routerGroup)
		r.DomainHandlers.Maintenance.Router(routerGroup)
		r.DomainHandlers.Customer.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
