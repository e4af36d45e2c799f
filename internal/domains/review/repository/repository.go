package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"hms/infras/otel"
	"hms/infras/postgres"
	"hms/internal/domains/review/model"
	"hms/shared/constant"
	gDto "hms/shared/dto"
	"hms/shared/logger"
	gRepo "hms/shared/repository"

	"github.com/jmoiron/sqlx"
)

const querySummaryByHotel = `SELECT hotel_id, ROUND(AVG(rating)::numeric, 2)::float8 AS average_rating, COUNT(*) AS total_reviews
FROM reviews
WHERE hotel_id IN (?)
GROUP BY hotel_id`

type Review interface {
	InsertTx(ctx context.Context, sqltx *sqlx.Tx, model model.Review) error
	GetAllDetails(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.Detail, error)
	SummarizeByHotel(ctx context.Context, hotelIDs []string) (map[string]model.Summary, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Review]
	details gRepo.Repository[model.Detail]
	db      *postgres.Connection
	otel    otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Review {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Review](model.EntityName, model.TableName, model.FieldID, db, otel),
		details:    gRepo.NewRepository[model.Detail](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (r *repositoryImpl) GetAllDetails(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.Detail, error) {
	return r.details.GetAll(ctx, params, filter) //nolint:wrapcheck
}

// SummarizeByHotel omits hotels without reviews.
func (r *repositoryImpl) SummarizeByHotel(ctx context.Context, hotelIDs []string) (map[string]model.Summary, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".review.SummarizeByHotel")
	defer scope.End()

	result := make(map[string]model.Summary, len(hotelIDs))
	if len(hotelIDs) == 0 {
		return result, nil
	}

	scope.SetAttribute(constant.OtelQueryAttributeKey, querySummaryByHotel)

	rows, err := gRepo.SelectIn[model.Summary](ctx, r.db.Read, querySummaryByHotel, hotelIDs)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to summarize reviews: %w", err)
	}

	for _, row := range rows {
		result[row.HotelID] = row
	}

	return result, nil
}
