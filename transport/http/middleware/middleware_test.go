package middleware_test

import (
	"errors"
	"hms/config"
	"hms/infras/otel"
	otelMocks "hms/infras/otel/mocks"
	"hms/shared/cache"
	cacheMocks "hms/shared/cache/mocks"
	"hms/shared/constant"
	"hms/transport/http/middleware"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
})

func TestAPIKey(t *testing.T) {
	tests := []struct {
		name       string
		configured string
		header     string
		wantCode   int
	}{
		{name: "no key configured", wantCode: http.StatusOK},
		{name: "matching key", configured: "secret", header: "secret", wantCode: http.StatusOK},
		{name: "missing key", configured: "secret", wantCode: http.StatusUnauthorized},
		{name: "wrong key", configured: "secret", header: "guess", wantCode: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{}
			cfg.App.APIKey = tt.configured

			req := httptest.NewRequest(http.MethodPost, "/api/hotel/add-hotel", nil)
			if tt.header != "" {
				req.Header.Set(constant.RequestHeaderAPIKey, tt.header)
			}

			rec := httptest.NewRecorder()
			middleware.NewAuthMiddleware(otelMocks.NewOtel(), cfg).APIKey(okHandler).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestRateLimit(t *testing.T) {
	newLimiter := func(t *testing.T, enable bool) (*cacheMocks.MockCache, http.Handler) {
		ctrl := gomock.NewController(t)
		store := cacheMocks.NewMockCache(ctrl)

		cfg := &config.Config{}
		cfg.App.RateLimiter.Enable = enable
		cfg.App.RateLimiter.MaxRequests = 2
		cfg.App.RateLimiter.WindowSeconds = 60

		mw := middleware.NewAppMiddleware(otelMocks.NewOtel(), cfg, store)

		return store, mw.RateLimit()(okHandler)
	}

	t.Run("disabled", func(t *testing.T) {
		_, handler := newLimiter(t, false)

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/hotel/get-all-hotels", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("first request starts the window", func(t *testing.T) {
		store, handler := newLimiter(t, true)

		store.EXPECT().Increment(gomock.Any(), gomock.Any(), 60).Return(int64(1), nil)

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/hotel/get-all-hotels", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "1", rec.Header().Get(constant.RequestHeaderRateLimitRemaining))
	})

	t.Run("over the limit", func(t *testing.T) {
		store, handler := newLimiter(t, true)

		store.EXPECT().Increment(gomock.Any(), gomock.Any(), 60).Return(int64(3), nil)

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/hotel/get-all-hotels", nil))

		assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	})

	t.Run("store failure lets the request through", func(t *testing.T) {
		store, handler := newLimiter(t, true)

		store.EXPECT().Increment(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(0), errors.New("connection refused"))

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/hotel/get-all-hotels", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("concurrent requests share one counter", func(t *testing.T) {
		cfg := &config.Config{}
		cfg.App.RateLimiter.Enable = true
		cfg.App.RateLimiter.MaxRequests = 5
		cfg.App.RateLimiter.WindowSeconds = 60

		store := cache.NewMemoryCache(otelMocks.NewOtel())
		handler := middleware.NewAppMiddleware(otelMocks.NewOtel(), cfg, store).RateLimit()(okHandler)

		var (
			wg      sync.WaitGroup
			mu      sync.Mutex
			allowed int
		)

		for range 20 {
			wg.Add(1)

			go func() {
				defer wg.Done()

				rec := httptest.NewRecorder()
				handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/hotel/get-all-hotels", nil))

				if rec.Code == http.StatusOK {
					mu.Lock()
					allowed++
					mu.Unlock()
				}
			}()
		}

		wg.Wait()

		assert.Equal(t, 5, allowed)
	})
}

func TestRequestID(t *testing.T) {
	mw := middleware.NewAppMiddleware(otelMocks.NewOtel(), &config.Config{}, nil)

	var seen string

	handler := mw.RequestID(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		seen, _ = r.Context().Value(constant.ContextKeyRequestID).(string)
	}))

	t.Run("keeps the caller id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		req.Header.Set(constant.RequestHeaderRequestID, "req-1")

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, "req-1", seen)
		assert.Equal(t, "req-1", rec.Header().Get(constant.RequestHeaderRequestID))
	})

	t.Run("issues a new id", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.NotEmpty(t, seen)
		assert.Equal(t, seen, rec.Header().Get(constant.RequestHeaderRequestID))
	})
}

func TestTracing(t *testing.T) {
	cfg := &config.Config{}
	cfg.App.Name = "hms"

	t.Run("echoes the trace id", func(t *testing.T) {
		mw := middleware.NewAppMiddleware(otel.New(cfg), cfg, nil)

		rec := httptest.NewRecorder()
		mw.Tracing(okHandler).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/hotel/get-all-hotels", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Len(t, rec.Header().Get(constant.RequestHeaderTraceID), 32)
	})

	t.Run("no header without a trace", func(t *testing.T) {
		mw := middleware.NewAppMiddleware(otelMocks.NewOtel(), cfg, nil)

		rec := httptest.NewRecorder()
		mw.Tracing(okHandler).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Empty(t, rec.Header().Get(constant.RequestHeaderTraceID))
	})
}
