package main

import (
	"hms/config"
	"hms/di"
	"hms/helper"
	"hms/shared/logger"

	"github.com/rs/zerolog/log"
)

//	@title						Hotel Management API
//	@version					1.0
//	@description				Hotels, bookings, reviews, maintenance and customers.
//	@BasePath					/
//	@securityDefinitions.apikey	ApiKeyAuth
//	@in							header
//	@name						X-API-Key
func main() {
	cfg := config.Get()

	logger.InitLogger(cfg)

	logger.SetLogLevel(cfg)

	if cfg.DB.Postgres.AutoMigrate {
		if err := helper.Up(cfg); err != nil {
			log.Fatal().Err(err).Msg("Failed to run database migrations")
		}
	}

	http := di.InitializeService()
	http.Serve()
}
