package postgres

//nolint:revive
import (
	"hms/config"
	"net"
	"net/url"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const driverName = "postgres"

// Connection holds separate pools for reads and writes. Both may point at the same
// server; transactions always run on Write.
type Connection struct {
	Read  *sqlx.DB
	Write *sqlx.DB
}

type pool struct {
	maxRetry        int
	retryWait       time.Duration
	maxOpen         int
	maxIdle         int
	connMaxLifetime time.Duration
}

func New(cfg *config.Config) *Connection {
	pg := cfg.DB.Postgres
	settings := pool{
		maxRetry:        max(pg.MaxRetry, 1),
		retryWait:       time.Duration(pg.RetryWaitTime) * time.Second,
		maxOpen:         pg.MaxOpenConnections,
		maxIdle:         pg.MaxIdleConnections,
		connMaxLifetime: time.Duration(pg.ConnMaxLifetimeSeconds) * time.Second,
	}

	return &Connection{
		Read:  connect("read", DSN(pg.Read, pg.Prefix), pg.Read, settings),
		Write: connect("write", DSN(pg.Write, pg.Prefix), pg.Write, settings),
	}
}

// DSN renders a lib/pq connection URL. The endpoint timezone becomes the session TimeZone
// so DATE columns round-trip without shifting.
func DSN(endpoint config.PostgresEndpoint, prefix string) string {
	dsn := url.URL{
		Scheme: driverName,
		User:   url.UserPassword(endpoint.Username, endpoint.Password),
		Host:   net.JoinHostPort(endpoint.Host, endpoint.Port),
		Path:   "/" + prefix + endpoint.Name,
	}

	query := dsn.Query()
	query.Set("sslmode", endpoint.SSLMode)

	if endpoint.Timezone != "" {
		query.Set("timezone", endpoint.Timezone)
	}

	dsn.RawQuery = query.Encode()

	return dsn.String()
}

func connect(name, dsn string, endpoint config.PostgresEndpoint, settings pool) *sqlx.DB {
	logger := log.With().
		Str("name", name).
		Str("host", endpoint.Host).
		Str("port", endpoint.Port).
		Str("dbName", endpoint.Name).
		Logger()

	for attempt := 1; attempt <= settings.maxRetry; attempt++ {
		db, err := sqlx.Connect(driverName, dsn)
		if err == nil {
			db.SetMaxOpenConns(settings.maxOpen)
			db.SetMaxIdleConns(settings.maxIdle)
			db.SetConnMaxLifetime(settings.connMaxLifetime)

			logger.Info().Msg("Connected to database")

			return db
		}

		logger.Error().Err(err).Int("attempt", attempt).Msg("Failed connecting to database, retrying")

		if attempt < settings.maxRetry {
			time.Sleep(settings.retryWait)
		}
	}

	logger.Fatal().Int("attempts", settings.maxRetry).Msg("Giving up connecting to database")

	return nil
}
