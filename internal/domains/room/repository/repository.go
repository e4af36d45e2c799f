package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"hms/infras/otel"
	"hms/infras/postgres"
	"hms/internal/domains/room/model"
	"hms/shared/constant"
	gDto "hms/shared/dto"
	"hms/shared/logger"
	gRepo "hms/shared/repository"

	"github.com/jmoiron/sqlx"
)

const queryAvailableByHotel = `SELECT hotel_id, COUNT(*) AS available FROM rooms
WHERE is_available = TRUE AND hotel_id IN (?)
GROUP BY hotel_id`

type Room interface {
	InsertTx(ctx context.Context, sqltx *sqlx.Tx, model model.Room) error
	GetForUpdateTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup, columns ...string) (model.Room, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Room, error)
	GetAllTx(ctx context.Context, sqltx *sqlx.Tx, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Room, error)
	ExistTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup) (bool, error)
	UpdateTx(ctx context.Context, sqltx *sqlx.Tx, req map[string]any, filter gDto.FilterGroup) error
	CountAvailableByHotel(ctx context.Context, hotelIDs []string) (map[string]int, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Room]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Room {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Room](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// CountAvailableByHotel omits hotels without a free room.
func (r *repositoryImpl) CountAvailableByHotel(ctx context.Context, hotelIDs []string) (map[string]int, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".room.CountAvailableByHotel")
	defer scope.End()

	result := make(map[string]int, len(hotelIDs))
	if len(hotelIDs) == 0 {
		return result, nil
	}

	scope.SetAttribute(constant.OtelQueryAttributeKey, queryAvailableByHotel)

	rows, err := gRepo.SelectIn[model.Availability](ctx, r.db.Read, queryAvailableByHotel, hotelIDs)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to count available rooms: %w", err)
	}

	for _, row := range rows {
		result[row.HotelID] = row.Available
	}

	return result, nil
}
