package handler

import (
	"hms/config"
	"hms/di"
	"hms/shared/logger"
	"net/http"
	"sync"
)

var (
	app     http.Handler
	appOnce sync.Once
)

func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	appOnce.Do(func() {
		cfg := config.Get()

		logger.InitLogger(cfg)

		logger.SetLogLevel(cfg)

		app = di.InitializeService().Handler()
	})

	app.ServeHTTP(w, r)
}
