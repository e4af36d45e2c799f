package helper_test

import (
	"hms/config"
	"hms/helper"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDatabaseURL(t *testing.T) {
	cfg := &config.Config{}
	cfg.DB.Postgres.Prefix = "test_"
	cfg.DB.Postgres.MigrationTable = "schema_migrations"
	cfg.DB.Postgres.Write.Host = "db"
	cfg.DB.Postgres.Write.Port = "5432"
	cfg.DB.Postgres.Write.Username = "hms"
	cfg.DB.Postgres.Write.Password = "p@ss word"
	cfg.DB.Postgres.Write.Name = "hms"
	cfg.DB.Postgres.Write.SSLMode = "disable"

	assert.Equal(t,
		"postgres://hms:p%40ss%20word@db:5432/test_hms?sslmode=disable&x-migrations-table=schema_migrations",
		helper.DatabaseURL(cfg),
	)
}

func TestRunner_MissingSource(t *testing.T) {
	cfg := &config.Config{}
	cfg.DB.Postgres.Write.Host = "localhost"
	cfg.DB.Postgres.Write.Port = "1"

	assert.Error(t, helper.Runner(cfg, "sideways"))
}
