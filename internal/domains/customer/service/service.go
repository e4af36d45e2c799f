package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"hms/config"
	"hms/infras/otel"
	"hms/infras/postgres"
	bookingModel "hms/internal/domains/booking/model"
	bookingRepo "hms/internal/domains/booking/repository"
	"hms/internal/domains/customer/model"
	"hms/internal/domains/customer/model/dto"
	"hms/internal/domains/customer/repository"
	"hms/shared"
	"hms/shared/cache"
	"hms/shared/constant"
	gDto "hms/shared/dto"
	"hms/shared/failure"
	"hms/shared/sequence"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

type Customer interface {
	Create(ctx context.Context, req dto.CreateCustomerRequest) (dto.CreateCustomerResponse, error)
	GetBookingHistory(ctx context.Context, customerID string, page int) (dto.GetBookingHistoryResponse, error)
}

type serviceImpl struct {
	repo         repository.Customer
	bookings     bookingRepo.Booking
	bookingRooms bookingRepo.BookingRoom
	transactor   postgres.Transactor
	sequence     sequence.Allocator
	cache        cache.Cache
	cfg          *config.Config
	otel         otel.Otel
}

func New(
	repo repository.Customer,
	bookings bookingRepo.Booking,
	bookingRooms bookingRepo.BookingRoom,
	transactor postgres.Transactor,
	sequence sequence.Allocator,
	cache cache.Cache,
	cfg *config.Config,
	otel otel.Otel,
) Customer {
	return &serviceImpl{
		repo:         repo,
		bookings:     bookings,
		bookingRooms: bookingRooms,
		transactor:   transactor,
		sequence:     sequence,
		cache:        cache,
		cfg:          cfg,
		otel:         otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateCustomerRequest) (res dto.CreateCustomerResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".customer.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	var customerID string

	err = s.transactor.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		exist, err := s.repo.ExistTx(ctx, tx, shared.FilterByID(req.Email, model.FieldEmail, model.TableName))
		if err != nil {
			return fmt.Errorf("failed to check email: %w", err)
		}

		if exist {
			return failure.Conflict("Email already exists") //nolint:wrapcheck
		}

		customerID, err = s.sequence.Next(ctx, tx, sequence.Customer)
		if err != nil {
			return err //nolint:wrapcheck
		}

		// a concurrent insert of the same email still fails on the unique index
		if err = s.repo.InsertTx(ctx, tx, req.ToModel(customerID)); err != nil {
			return fmt.Errorf("failed to insert customer: %w", err)
		}

		return nil
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to add customer")

		return res, fmt.Errorf("failed to add customer: %w", err)
	}

	shared.InvalidateCaches(ctx, s.cache, constant.CachePrefixCustomers)

	return dto.CreateCustomerResponse{
		Message:    "Customer added successfully",
		CustomerID: customerID,
	}, nil
}

func (s *serviceImpl) GetBookingHistory(ctx context.Context, customerID string, page int) (res dto.GetBookingHistoryResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".customer.GetBookingHistory")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	params := gDto.QueryParams{
		Page:    page,
		SortBy:  bookingModel.TableName + "." + constant.FieldCreatedAt,
		SortDir: gDto.SortDirDesc,
	}
	params.Normalize(s.cfg.App.Listing.PageSize)

	key, cacheable := shared.CacheKey(ctx, s.cache, constant.CachePrefixCustomers, "history", customerID, fmt.Sprintf("page=%d", params.Page))
	if cacheable {
		cacheErr := s.cache.Get(ctx, key, &res)
		if cacheErr == nil {
			return res, nil
		}

		if !errors.Is(cacheErr, cache.Nil) {
			log.Warn().Err(cacheErr).Str("key", key).Msg("failed to read booking history from cache")
		}
	}

	exist, err := s.repo.Exist(ctx, shared.FilterByID(customerID, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check customer")

		return res, fmt.Errorf("failed to check customer: %w", err)
	}

	if !exist {
		return res, failure.NotFound("Customer not found") //nolint:wrapcheck
	}

	filter := shared.FilterByID(customerID, bookingModel.FieldCustomerID, bookingModel.TableName)

	total, err := s.bookings.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	details, err := s.bookings.GetAllDetails(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	bookingIDs := make([]string, len(details))
	for idx, detail := range details {
		bookingIDs[idx] = detail.BookingID
	}

	rooms := []bookingModel.Room{}
	if len(bookingIDs) > 0 {
		rooms, err = s.bookingRooms.GetAll(ctx, gDto.QueryParams{}, shared.FilterIn(bookingModel.RoomTableName, bookingModel.FieldRoomBookingID, bookingIDs))
		if err != nil {
			log.Error().Err(err).Msg("failed to get booking rooms")

			return res, fmt.Errorf("failed to get booking rooms: %w", err)
		}
	}

	roomsByBooking := shared.GroupBy(rooms, func(room bookingModel.Room) string { return room.BookingID })

	res = dto.GetBookingHistoryResponse{
		CustomerID:    customerID,
		TotalBookings: total,
		CurrentPage:   params.Page,
		TotalPages:    shared.CalculateTotalPage(total, params.Limit),
		Data:          make([]dto.BookingHistoryResponse, len(details)),
	}

	for idx, detail := range details {
		res.Data[idx].FromModel(detail, roomsByBooking[detail.BookingID])
	}

	if len(details) == 0 {
		res.Message = "No bookings found"
	}

	if !cacheable {
		return res, nil
	}

	if err := s.cache.Save(ctx, key, res, s.cfg.Cache.TTL); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("failed to cache booking history")
	}

	return res, nil
}
