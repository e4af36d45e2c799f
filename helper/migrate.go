package helper

//nolint:revive
import (
	"errors"
	"fmt"
	"hms/config"
	"hms/infras/postgres"
	"net/url"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/rs/zerolog/log"
)

const sourceURL = "file://migrations/postgres"

const (
	ActionUp     = "up"
	ActionDown   = "down"
	ActionDrop   = "drop"
	ActionStepUp = "step-up"
)

var ErrUnknownAction = errors.New("unknown migration action")

// DatabaseURL builds the golang-migrate connection string for the primary database.
func DatabaseURL(cfg *config.Config) string {
	dsn, err := url.Parse(postgres.DSN(cfg.DB.Postgres.Write, cfg.DB.Postgres.Prefix))
	if err != nil {
		return ""
	}

	query := dsn.Query()
	query.Set("x-migrations-table", cfg.DB.Postgres.MigrationTable)
	dsn.RawQuery = query.Encode()

	return dsn.String()
}

func open(cfg *config.Config) (*migrate.Migrate, error) {
	mig, err := migrate.New(sourceURL, DatabaseURL(cfg))
	if err != nil {
		return nil, fmt.Errorf("error creating migrate instance: %w", err)
	}

	return mig, nil
}

func apply(mig *migrate.Migrate, action string) error {
	switch action {
	case ActionUp:
		return mig.Up() //nolint:wrapcheck
	case ActionDown:
		return mig.Steps(-1) //nolint:wrapcheck
	case ActionStepUp:
		return mig.Steps(1) //nolint:wrapcheck
	case ActionDrop:
		return mig.Down() //nolint:wrapcheck
	}

	return fmt.Errorf("%w: %s", ErrUnknownAction, action)
}

func Runner(cfg *config.Config, action string) error {
	mig, err := open(cfg)
	if err != nil {
		return err
	}

	defer mig.Close()

	if err := apply(mig, action); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("error running %s migration: %w", action, err)
	}

	version, dirty, err := mig.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("error reading migration version: %w", err)
	}

	log.Info().Str("action", action).Uint("version", version).Bool("dirty", dirty).Msg("Database migration finished")

	return nil
}

// Version reports the applied schema version; ok is false on an empty database.
func Version(cfg *config.Config) (version uint, dirty bool, ok bool, err error) {
	mig, err := open(cfg)
	if err != nil {
		return 0, false, false, err
	}

	defer mig.Close()

	version, dirty, err = mig.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, false, false, nil
	}

	if err != nil {
		return 0, false, false, fmt.Errorf("error reading migration version: %w", err)
	}

	return version, dirty, true, nil
}

func Up(cfg *config.Config) error {
	return Runner(cfg, ActionUp)
}
