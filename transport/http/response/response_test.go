package response_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"hms/config"
	"hms/shared/failure"
	"hms/transport/http/response"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	body := map[string]any{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

func TestWithJSON(t *testing.T) {
	t.Run("object payload is flattened", func(t *testing.T) {
		rec := httptest.NewRecorder()

		response.WithJSON(rec, http.StatusCreated, struct {
			Message string `json:"message"`
			HotelID string `json:"hotelId"`
		}{Message: "New Hotel added successfully", HotelID: "HOT00005"})

		body := decode(t, rec)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
		assert.Equal(t, true, body["success"])
		assert.Equal(t, "HOT00005", body["hotelId"])
	})

	t.Run("non object payload is wrapped", func(t *testing.T) {
		rec := httptest.NewRecorder()

		response.WithJSON(rec, http.StatusOK, []string{"a", "b"})

		body := decode(t, rec)

		assert.Equal(t, true, body["success"])
		assert.Equal(t, []any{"a", "b"}, body["data"])
	})
}

func TestWithError(t *testing.T) {
	tests := []struct {
		name       string
		env        string
		err        error
		wantCode   int
		wantMsg    string
		wantErrors int
		wantDetail bool
	}{
		{
			name:     "failure keeps its code",
			env:      "production",
			err:      fmt.Errorf("failed to add booking: %w", failure.NotFound("Hotel not found")),
			wantCode: http.StatusNotFound,
			wantMsg:  "Hotel not found",
		},
		{
			name:       "validation lists every message",
			env:        "production",
			err:        failure.Validation([]string{"hotel_name is required", "city is required"}),
			wantCode:   http.StatusBadRequest,
			wantMsg:    "hotel_name is required",
			wantErrors: 2,
		},
		{
			name:     "unique violation is a conflict",
			env:      "production",
			err:      fmt.Errorf("insert: %w", &pq.Error{Code: "23505"}),
			wantCode: http.StatusConflict,
			wantMsg:  "Duplicate entry",
		},
		{
			name:       "unknown error exposes detail outside production",
			env:        "development",
			err:        errors.New("boom"),
			wantCode:   http.StatusInternalServerError,
			wantMsg:    "Internal server error",
			wantDetail: true,
		},
		{
			name:     "unknown error hides detail in production",
			env:      "production",
			err:      errors.New("boom"),
			wantCode: http.StatusInternalServerError,
			wantMsg:  "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{}
			cfg.Server.Env = tt.env
			response.Configure(cfg)

			rec := httptest.NewRecorder()
			response.WithError(rec, tt.err)

			body := decode(t, rec)

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Equal(t, false, body["success"])
			assert.Equal(t, tt.wantMsg, body["message"])

			if tt.wantErrors > 0 {
				assert.Len(t, body["errors"], tt.wantErrors)
			} else {
				assert.NotContains(t, body, "errors")
			}

			if tt.wantDetail {
				assert.Equal(t, "boom", body["detail"])
			} else {
				assert.NotContains(t, body, "detail")
			}
		})
	}
}

func TestWithMessage(t *testing.T) {
	rec := httptest.NewRecorder()

	response.WithRequestLimitExceeded(rec)

	body := decode(t, rec)

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "REQUEST LIMIT EXCEEDED", body["message"])
}
