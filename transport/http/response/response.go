package response

import (
	"encoding/json"
	"hms/config"
	"hms/shared/constant"
	"hms/shared/failure"
	"hms/shared/logger"
	"net/http"
	"sync/atomic"
)

var exposeDetail atomic.Bool

// Configure decides whether error responses carry the underlying error text.
func Configure(cfg *config.Config) {
	exposeDetail.Store(cfg.Server.Env != constant.ServerEnvProduction)
}

type Error struct {
	Success bool     `json:"success"`
	Message string   `json:"message"`
	Errors  []string `json:"errors,omitempty"`
	Detail  string   `json:"detail,omitempty"`
}

type Message struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// WithMessage sends a response with a simple text message
func WithMessage(writer http.ResponseWriter, code int, message string) {
	response(writer, code, Message{Success: code < http.StatusBadRequest, Message: message})
}

// WithJSON sends the payload fields next to "success": true. Payloads that are not
// JSON objects are wrapped under "data".
func WithJSON(writer http.ResponseWriter, code int, payload any) {
	raw, err := json.Marshal(payload)
	if err != nil {
		logger.ErrorWithStack(err)
		WithError(writer, err)

		return
	}

	fields := map[string]json.RawMessage{}
	if err := json.Unmarshal(raw, &fields); err != nil || fields == nil {
		fields = map[string]json.RawMessage{"data": raw}
	}

	fields["success"] = json.RawMessage("true")

	response(writer, code, fields)
}

// WithError translates err into its status code and message.
func WithError(writer http.ResponseWriter, err error) {
	fail := failure.Translate(err)
	if fail == nil {
		fail = &failure.Failure{Code: http.StatusInternalServerError, Message: constant.ResponseErrorInternal}
	}

	body := Error{
		Message: fail.Message,
		Errors:  fail.Errors,
	}

	if exposeDetail.Load() && err != nil && err.Error() != fail.Message {
		body.Detail = err.Error()
	}

	response(writer, fail.Code, body)
}

// WithRequestLimitExceeded sends a default response for when the request limit is exceeded
func WithRequestLimitExceeded(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusTooManyRequests, constant.ResponseErrorRequestLimitExceeded)
}

// WithPreparingShutdown sends a default response for when the server is preparing to shut down
func WithPreparingShutdown(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusServiceUnavailable, constant.ResponseErrorPrepareShutdown)
}

// WithUnhealthy sends a default response for when the server is unhealthy
func WithUnhealthy(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusServiceUnavailable, constant.ResponseErrorUnhealthy)
}

func response(writer http.ResponseWriter, code int, payload any) {
	response, err := json.Marshal(payload)
	if err != nil {
		logger.ErrorWithStack(err)

		return
	}

	writer.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	writer.WriteHeader(code)
	_, err = writer.Write(response)

	if err != nil {
		logger.ErrorWithStack(err)
	}
}
