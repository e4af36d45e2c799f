package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"hms/infras/otel"
	"hms/infras/postgres"
	"hms/internal/domains/booking/model"
	"hms/shared/constant"
	gDto "hms/shared/dto"
	"hms/shared/logger"
	gRepo "hms/shared/repository"

	"github.com/jmoiron/sqlx"
)

const queryActiveByHotel = `SELECT hotel_id, COUNT(DISTINCT booking_id) AS bookings FROM bookings
WHERE booking_status <> 'Cancelled' AND hotel_id IN (?)
GROUP BY hotel_id`

type Booking interface {
	InsertTx(ctx context.Context, sqltx *sqlx.Tx, model model.Booking) error
	GetForUpdateTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Booking, error)
	GetAllDetails(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.Detail, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	UpdateTx(ctx context.Context, sqltx *sqlx.Tx, req map[string]any, filter gDto.FilterGroup) error
	CountActiveByHotel(ctx context.Context, hotelIDs []string) (map[string]int, error)
}

type BookingRoom interface {
	InsertTx(ctx context.Context, sqltx *sqlx.Tx, model model.Room) error
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Room, error)
	GetAllTx(ctx context.Context, sqltx *sqlx.Tx, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Room, error)
}

type Cancellation interface {
	InsertTx(ctx context.Context, sqltx *sqlx.Tx, model model.Cancellation) error
}

type bookingImpl struct {
	gRepo.Repository[model.Booking]
	details gRepo.Repository[model.Detail]
	db      *postgres.Connection
	otel    otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &bookingImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
		details:    gRepo.NewRepository[model.Detail](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (r *bookingImpl) GetAllDetails(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.Detail, error) {
	return r.details.GetAll(ctx, params, filter) //nolint:wrapcheck
}

// CountActiveByHotel omits hotels whose bookings are all cancelled.
func (r *bookingImpl) CountActiveByHotel(ctx context.Context, hotelIDs []string) (map[string]int, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.CountActiveByHotel")
	defer scope.End()

	result := make(map[string]int, len(hotelIDs))
	if len(hotelIDs) == 0 {
		return result, nil
	}

	scope.SetAttribute(constant.OtelQueryAttributeKey, queryActiveByHotel)

	rows, err := gRepo.SelectIn[model.Activity](ctx, r.db.Read, queryActiveByHotel, hotelIDs)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to count bookings: %w", err)
	}

	for _, row := range rows {
		result[row.HotelID] = row.Bookings
	}

	return result, nil
}

func NewBookingRoom(db *postgres.Connection, otel otel.Otel) BookingRoom {
	repo := gRepo.NewRepository[model.Room](model.RoomEntityName, model.RoomTableName, model.FieldRoomID, db, otel)

	return &repo
}

func NewCancellation(db *postgres.Connection, otel otel.Otel) Cancellation {
	repo := gRepo.NewRepository[model.Cancellation](model.CancellationEntityName, model.CancellationTableName, model.FieldCancellationID, db, otel)

	return &repo
}
