package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"hms/config"
	"hms/infras/otel"
	"hms/infras/postgres"
	customerModel "hms/internal/domains/customer/model"
	customerRepo "hms/internal/domains/customer/repository"
	hotelModel "hms/internal/domains/hotel/model"
	hotelRepo "hms/internal/domains/hotel/repository"
	"hms/internal/domains/review/model/dto"
	"hms/internal/domains/review/repository"
	"hms/shared"
	"hms/shared/cache"
	"hms/shared/constant"
	"hms/shared/failure"
	"hms/shared/sequence"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

type Review interface {
	Create(ctx context.Context, req dto.CreateReviewRequest) (dto.CreateReviewResponse, error)
}

type serviceImpl struct {
	repo       repository.Review
	hotels     hotelRepo.Hotel
	customers  customerRepo.Customer
	transactor postgres.Transactor
	sequence   sequence.Allocator
	cache      cache.Cache
	cfg        *config.Config
	otel       otel.Otel
}

func New(
	repo repository.Review,
	hotels hotelRepo.Hotel,
	customers customerRepo.Customer,
	transactor postgres.Transactor,
	sequence sequence.Allocator,
	cache cache.Cache,
	cfg *config.Config,
	otel otel.Otel,
) Review {
	return &serviceImpl{
		repo:       repo,
		hotels:     hotels,
		customers:  customers,
		transactor: transactor,
		sequence:   sequence,
		cache:      cache,
		cfg:        cfg,
		otel:       otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateReviewRequest) (res dto.CreateReviewResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".review.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	var reviewID string

	err = s.transactor.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		hotel, err := s.hotels.GetTx(ctx, tx, shared.FilterByID(req.HotelID, hotelModel.FieldID, hotelModel.TableName))
		if err != nil {
			return fmt.Errorf("failed to get hotel: %w", err)
		}

		if hotel.HotelID == "" {
			return failure.NotFound("Hotel not found") //nolint:wrapcheck
		}

		exist, err := s.customers.ExistTx(ctx, tx, shared.FilterByID(req.CustomerID, customerModel.FieldID, customerModel.TableName))
		if err != nil {
			return fmt.Errorf("failed to check customer: %w", err)
		}

		if !exist {
			return failure.NotFound("Customer not found") //nolint:wrapcheck
		}

		reviewID, err = s.sequence.Next(ctx, tx, sequence.Review)
		if err != nil {
			return err //nolint:wrapcheck
		}

		if err = s.repo.InsertTx(ctx, tx, req.ToModel(reviewID)); err != nil {
			return fmt.Errorf("failed to insert review: %w", err)
		}

		return nil
	})
	if err != nil {
		log.Error().Err(err).Str("hotel_id", req.HotelID).Msg("failed to add review")

		return res, fmt.Errorf("failed to add review: %w", err)
	}

	shared.InvalidateCaches(ctx, s.cache, constant.CachePrefixReviews, constant.CachePrefixHotels)

	scope.SetAttribute("review_id", reviewID)

	return dto.CreateReviewResponse{
		Message:  "Review added successfully",
		ReviewID: reviewID,
	}, nil
}
