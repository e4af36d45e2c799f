package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// SelectIn expands slice arguments bound to "IN (?)" and scans every row into R.
func SelectIn[R any](ctx context.Context, db *sqlx.DB, query string, args ...any) ([]R, error) {
	expanded, inArgs, err := sqlx.In(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to expand query: %w", err)
	}

	rows := []R{}

	if err = db.SelectContext(ctx, &rows, db.Rebind(expanded), inArgs...); err != nil {
		return nil, fmt.Errorf("failed to select rows: %w", err)
	}

	return rows, nil
}
