package http_test

import (
	"hms/config"
	otelMocks "hms/infras/otel/mocks"
	"hms/internal/handlers/booking"
	"hms/internal/handlers/customer"
	"hms/internal/handlers/hotel"
	"hms/internal/handlers/maintenance"
	"hms/internal/handlers/review"
	transportHTTP "hms/transport/http"
	"hms/transport/http/middleware"
	"hms/transport/http/router"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newServer() *transportHTTP.HTTP {
	cfg := &config.Config{}
	cfg.App.CORS.Enable = true
	cfg.App.CORS.AllowedOrigins = []string{"*"}
	cfg.App.CORS.AllowedMethods = []string{http.MethodGet}

	ot := otelMocks.NewOtel()

	routes := router.New(router.DomainHandlers{
		Hotel:       hotel.New(nil, middleware.NewAuthMiddleware(ot, cfg), ot),
		Booking:     booking.New(nil, ot),
		Review:      review.New(nil, ot),
		Maintenance: maintenance.New(nil, ot),
		Customer:    customer.New(nil, nil, ot),
	})

	return transportHTTP.New(cfg, routes, middleware.NewAppMiddleware(ot, cfg, nil))
}

func TestHTTP_Handler(t *testing.T) {
	handler := newServer().Handler()

	tests := []struct {
		name     string
		method   string
		target   string
		wantCode int
	}{
		{name: "health", method: http.MethodGet, target: "/health", wantCode: http.StatusOK},
		{name: "unknown route", method: http.MethodGet, target: "/api/unknown", wantCode: http.StatusNotFound},
		{name: "wrong method", method: http.MethodDelete, target: "/api/hotel/get-all-hotels", wantCode: http.StatusMethodNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.target, nil))

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
		})
	}
}

func TestHTTP_State(t *testing.T) {
	server := newServer()
	_ = server.Handler()

	assert.Equal(t, transportHTTP.ServerStateReady, server.State())
}
