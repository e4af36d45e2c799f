// Package sequence hands out the human readable identifiers (HOT00001, BOOK00042, ...).
//
// Every sequence owns a counter row in id_sequences. Next advances it with a single
// upsert, so the row lock serializes concurrent allocators until the caller's
// transaction ends and two requests can never be given the same number.
package sequence

//go:generate go run go.uber.org/mock/mockgen -source=./sequence.go -destination=./mocks/sequence_mock.go -package=mocks

import (
	"context"
	"fmt"
	"hms/infras/otel"
	"hms/shared/constant"
	"hms/shared/logger"

	"github.com/jmoiron/sqlx"
)

const (
	width = 5

	nextQuery = `INSERT INTO id_sequences (name, last_value) VALUES ($1, 1)
ON CONFLICT (name) DO UPDATE SET last_value = id_sequences.last_value + 1
RETURNING last_value`
)

type Sequence struct {
	Name   string
	Prefix string
}

var (
	Hotel        = Sequence{Name: "hotels", Prefix: "HOT"}
	Room         = Sequence{Name: "rooms", Prefix: "ROOM"}
	Service      = Sequence{Name: "services", Prefix: "SERV"}
	Customer     = Sequence{Name: "customers", Prefix: "CUST"}
	Booking      = Sequence{Name: "bookings", Prefix: "BOOK"}
	BookingRoom  = Sequence{Name: "booking_rooms", Prefix: "BR"}
	Cancellation = Sequence{Name: "bookings_cancelled", Prefix: "BOOKCANCEL"}
	Review       = Sequence{Name: "reviews", Prefix: "REV"}
	Maintenance  = Sequence{Name: "maintenance", Prefix: "MAINTAIN"}
)

type Allocator interface {
	// Next must run on the transaction that inserts the row carrying the ID.
	Next(ctx context.Context, q sqlx.QueryerContext, seq Sequence) (string, error)
}

type allocatorImpl struct {
	otel otel.Otel
}

func New(otel otel.Otel) Allocator {
	return &allocatorImpl{
		otel: otel,
	}
}

func (a *allocatorImpl) Next(ctx context.Context, q sqlx.QueryerContext, seq Sequence) (string, error) {
	ctx, scope := a.otel.NewScope(ctx, constant.OtelSequenceScopeName, constant.OtelSequenceScopeName+".Next")
	defer scope.End()

	scope.SetAttribute("sequence", seq.Name)

	var last int64

	if err := sqlx.GetContext(ctx, q, &last, nextQuery, seq.Name); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return "", fmt.Errorf("failed to allocate %s id: %w", seq.Name, err)
	}

	return Format(seq.Prefix, last), nil
}

// Format zero pads n to five digits; wider numbers are kept whole.
func Format(prefix string, n int64) string {
	return fmt.Sprintf("%s%0*d", prefix, width, n)
}
