package mocks

import (
	"context"
	"hms/infras/postgres"

	"github.com/jmoiron/sqlx"
)

type transactorImpl struct {
}

// WithTransaction implements postgres.Transactor. The callback receives a nil
// transaction; repository mocks accept it as any other argument.
func (t *transactorImpl) WithTransaction(_ context.Context, fn func(tx *sqlx.Tx) error) error {
	return fn(nil)
}

func NewTransactor() postgres.Transactor {
	return &transactorImpl{}
}
