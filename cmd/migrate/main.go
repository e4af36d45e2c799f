package main

import (
	"hms/config"
	"hms/helper"
	"hms/shared/logger"
	"os"

	"github.com/rs/zerolog/log"
)

const (
	argLength = 2
)

func main() {
	cfg := config.Get()

	logger.InitLogger(cfg)

	if len(os.Args) < argLength {
		log.Fatal().Msg("Migration direction (up/down/drop/step-up/version) is required")
	}

	direction := os.Args[1]

	switch direction {
	case helper.ActionUp, helper.ActionDown, helper.ActionDrop, helper.ActionStepUp:
		if err := helper.Runner(cfg, direction); err != nil {
			log.Fatal().Err(err).Str("direction", direction).Msg("Migration failed")
		}
	case "version":
		version, dirty, ok, err := helper.Version(cfg)
		if err != nil {
			log.Fatal().Err(err).Msg("Could not read migration version")
		}

		if !ok {
			log.Info().Msg("No migration has been applied yet")

			return
		}

		log.Info().Uint("version", version).Bool("dirty", dirty).Msg("Current migration version")
	default:
		log.Fatal().Str("direction", direction).Msg("Invalid direction. Use 'up', 'down', 'drop', 'step-up' or 'version'")
	}
}
