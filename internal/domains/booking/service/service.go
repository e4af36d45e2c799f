package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"hms/config"
	"hms/infras/otel"
	"hms/infras/postgres"
	"hms/internal/domains/booking/event"
	"hms/internal/domains/booking/model"
	"hms/internal/domains/booking/model/dto"
	"hms/internal/domains/booking/repository"
	customerModel "hms/internal/domains/customer/model"
	customerRepo "hms/internal/domains/customer/repository"
	hotelModel "hms/internal/domains/hotel/model"
	hotelRepo "hms/internal/domains/hotel/repository"
	roomModel "hms/internal/domains/room/model"
	roomRepo "hms/internal/domains/room/repository"
	"hms/shared"
	"hms/shared/cache"
	"hms/shared/constant"
	gDto "hms/shared/dto"
	"hms/shared/failure"
	"hms/shared/sequence"
	"hms/shared/timezone"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.CreateBookingResponse, error)
	Cancel(ctx context.Context, bookingID string, req dto.CancelBookingRequest) (dto.CancelBookingResponse, error)
}

type serviceImpl struct {
	repo          repository.Booking
	bookingRooms  repository.BookingRoom
	cancellations repository.Cancellation
	hotels        hotelRepo.Hotel
	rooms         roomRepo.Room
	customers     customerRepo.Customer
	transactor    postgres.Transactor
	sequence      sequence.Allocator
	publisher     event.Publisher
	cache         cache.Cache
	cfg           *config.Config
	otel          otel.Otel
}

func New(
	repo repository.Booking,
	bookingRooms repository.BookingRoom,
	cancellations repository.Cancellation,
	hotels hotelRepo.Hotel,
	rooms roomRepo.Room,
	customers customerRepo.Customer,
	transactor postgres.Transactor,
	sequence sequence.Allocator,
	publisher event.Publisher,
	cache cache.Cache,
	cfg *config.Config,
	otel otel.Otel,
) Booking {
	return &serviceImpl{
		repo:          repo,
		bookingRooms:  bookingRooms,
		cancellations: cancellations,
		hotels:        hotels,
		rooms:         rooms,
		customers:     customers,
		transactor:    transactor,
		sequence:      sequence,
		publisher:     publisher,
		cache:         cache,
		cfg:           cfg,
		otel:          otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.CreateBookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	var (
		booking model.Booking
		booked  []model.Room
	)

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

		if hotel.TotalRooms < len(req.BookingRooms) {
			return failure.BadRequestFromString("Not enough rooms available") //nolint:wrapcheck
		}

		bookingID, err := s.sequence.Next(ctx, tx, sequence.Booking)
		if err != nil {
			return err //nolint:wrapcheck
		}

		booking = req.ToModel(bookingID)
		if err := s.repo.InsertTx(ctx, tx, booking); err != nil {
			return fmt.Errorf("failed to insert booking: %w", err)
		}

		for _, item := range req.BookingRooms {
			bookingRoom, err := s.reserveRoom(ctx, tx, booking, item)
			if err != nil {
				return err
			}

			booked = append(booked, bookingRoom)
		}

		return nil
	})
	if err != nil {
		log.Error().Err(err).Str("hotel_id", req.HotelID).Str("customer_id", req.CustomerID).Msg("failed to create booking")

		return res, fmt.Errorf("failed to create booking: %w", err)
	}

	shared.InvalidateCaches(ctx, s.cache, constant.CachePrefixBooking, constant.CachePrefixHotels, constant.CachePrefixCustomers)
	s.publisher.Publish(ctx, event.Created(booking, booked))

	scope.SetAttribute("booking_id", booking.BookingID)

	return dto.CreateBookingResponse{
		Message:     "Booking created successfully",
		BookingID:   booking.BookingID,
		BookedRooms: dto.FromRoomModels(booked),
	}, nil
}

// reserveRoom locks the room row, records it against the booking at its current price
// and takes it off the market.
func (s *serviceImpl) reserveRoom(ctx context.Context, tx *sqlx.Tx, booking model.Booking, item dto.BookingRoomRequest) (model.Room, error) {
	filter := shared.FilterByFields(roomModel.TableName,
		roomModel.FieldHotelID, booking.HotelID,
		roomModel.FieldRoomNumber, item.RoomNumber,
	)

	room, err := s.rooms.GetForUpdateTx(ctx, tx, filter)
	if err != nil {
		return model.Room{}, fmt.Errorf("failed to lock room %s: %w", item.RoomNumber, err)
	}

	if room.RoomID == "" {
		return model.Room{}, failure.BadRequestFromString(fmt.Sprintf("Room %s not found in hotel %s", item.RoomNumber, booking.HotelID)) //nolint:wrapcheck
	}

	if !room.IsAvailable {
		return model.Room{}, failure.BadRequestFromString(fmt.Sprintf("Room %s is already booked.", item.RoomNumber)) //nolint:wrapcheck
	}

	bookingRoomID, err := s.sequence.Next(ctx, tx, sequence.BookingRoom)
	if err != nil {
		return model.Room{}, err //nolint:wrapcheck
	}

	bookingRoom := item.ToModel(bookingRoomID, booking.BookingID, room.PricePerNight)
	if err := s.bookingRooms.InsertTx(ctx, tx, bookingRoom); err != nil {
		return model.Room{}, fmt.Errorf("failed to insert booking room: %w", err)
	}

	fields := map[string]any{
		roomModel.FieldIsAvailable: false,
		constant.FieldUpdatedAt:    timezone.Now(),
	}

	if err := s.rooms.UpdateTx(ctx, tx, fields, shared.FilterByID(room.RoomID, roomModel.FieldID, roomModel.TableName)); err != nil {
		return model.Room{}, fmt.Errorf("failed to mark room %s booked: %w", item.RoomNumber, err)
	}

	return bookingRoom, nil
}

func (s *serviceImpl) Cancel(ctx context.Context, bookingID string, req dto.CancelBookingRequest) (res dto.CancelBookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Cancel")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	var (
		booking  model.Booking
		cancelID string
		released []model.Room
	)

	err = s.transactor.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		hotel, err := s.hotels.GetTx(ctx, tx, shared.FilterByID(req.HotelID, hotelModel.FieldID, hotelModel.TableName))
		if err != nil {
			return fmt.Errorf("failed to get hotel: %w", err)
		}

		if hotel.HotelID == "" {
			return failure.NotFound("Hotel not found, cannot cancel") //nolint:wrapcheck
		}

		filter := shared.FilterByFields(model.TableName,
			model.FieldID, bookingID,
			model.FieldHotelID, req.HotelID,
		)

		booking, err = s.repo.GetForUpdateTx(ctx, tx, filter)
		if err != nil {
			return fmt.Errorf("failed to get booking: %w", err)
		}

		if err := checkCancellable(booking, req.CustomerID); err != nil {
			return err
		}

		fields := map[string]any{
			model.FieldBookingStatus: model.StatusCancelled,
			constant.FieldUpdatedAt:  timezone.Now(),
		}

		if err := s.repo.UpdateTx(ctx, tx, fields, filter); err != nil {
			return fmt.Errorf("failed to update booking status: %w", err)
		}

		cancelID, err = s.sequence.Next(ctx, tx, sequence.Cancellation)
		if err != nil {
			return err //nolint:wrapcheck
		}

		if err := s.cancellations.InsertTx(ctx, tx, req.ToModel(cancelID, booking)); err != nil {
			return fmt.Errorf("failed to insert cancellation: %w", err)
		}

		released, err = s.releaseRooms(ctx, tx, booking)

		return err
	})
	if err != nil {
		log.Error().Err(err).Str("booking_id", bookingID).Msg("failed to cancel booking")

		return res, fmt.Errorf("failed to cancel booking: %w", err)
	}

	shared.InvalidateCaches(ctx, s.cache, constant.CachePrefixBooking, constant.CachePrefixHotels, constant.CachePrefixCustomers)

	booking.BookingStatus = model.StatusCancelled
	s.publisher.Publish(ctx, event.Cancelled(booking, released))

	return dto.CancelBookingResponse{
		Message:         "Booking cancelled successfully",
		BookingCancelID: cancelID,
	}, nil
}

func checkCancellable(booking model.Booking, customerID string) error {
	if booking.BookingID == "" {
		return failure.NotFound("Booking not found, cannot cancel") //nolint:wrapcheck
	}

	if booking.CustomerID != customerID {
		return failure.Forbidden("You are not authorized to cancel this booking") //nolint:wrapcheck
	}

	switch booking.BookingStatus {
	case model.StatusCancelled:
		return failure.NotFound("Booking not found or already cancelled") //nolint:wrapcheck
	case model.StatusCompleted:
		return failure.BadRequestFromString("Completed bookings cannot be cancelled") //nolint:wrapcheck
	}

	return nil
}

// releaseRooms makes every room of the booking bookable again, limited to the
// booking's hotel.
func (s *serviceImpl) releaseRooms(ctx context.Context, tx *sqlx.Tx, booking model.Booking) ([]model.Room, error) {
	rooms, err := s.bookingRooms.GetAllTx(ctx, tx, gDto.QueryParams{},
		shared.FilterByID(booking.BookingID, model.FieldRoomBookingID, model.RoomTableName))
	if err != nil {
		return nil, fmt.Errorf("failed to get booking rooms: %w", err)
	}

	if len(rooms) == 0 {
		return rooms, nil
	}

	numbers := make([]string, len(rooms))
	for idx, room := range rooms {
		numbers[idx] = room.RoomNumber
	}

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			shared.FilterByID(booking.HotelID, roomModel.FieldHotelID, roomModel.TableName),
			shared.FilterIn(roomModel.TableName, roomModel.FieldRoomNumber, numbers),
		},
	}

	fields := map[string]any{
		roomModel.FieldIsAvailable: true,
		constant.FieldUpdatedAt:    timezone.Now(),
	}

	if err := s.rooms.UpdateTx(ctx, tx, fields, filter); err != nil {
		return nil, fmt.Errorf("failed to release rooms: %w", err)
	}

	return rooms, nil
}
