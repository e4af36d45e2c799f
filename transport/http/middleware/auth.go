package middleware

import (
	"crypto/subtle"
	"hms/config"
	"hms/infras/otel"
	"hms/shared/constant"
	"hms/shared/failure"
	"hms/transport/http/response"
	"net/http"
)

// Auth guards the administrative routes.
type Auth interface {
	APIKey(next http.Handler) http.Handler
}

type authImpl struct {
	otel otel.Otel
	cfg  *config.Config
}

func NewAuthMiddleware(otel otel.Otel, cfg *config.Config) Auth {
	return &authImpl{
		otel: otel,
		cfg:  cfg,
	}
}

// APIKey requires X-API-Key to equal APP_API_KEY. With no key configured every request
// passes.
func (m *authImpl) APIKey(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		if m.cfg.App.APIKey == "" {
			next.ServeHTTP(writer, request)

			return
		}

		_, scope := m.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, "api_key.middleware")
		defer scope.End()

		apiKey := request.Header.Get(constant.RequestHeaderAPIKey)
		if subtle.ConstantTimeCompare([]byte(apiKey), []byte(m.cfg.App.APIKey)) != 1 {
			err := failure.Unauthorized(constant.ResponseErrorInvalidAPIKey)
			scope.TraceError(err)

			response.WithError(writer, err)

			return
		}

		next.ServeHTTP(writer, request)
	})
}
