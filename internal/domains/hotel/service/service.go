package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"hms/config"
	"hms/infras/otel"
	"hms/infras/postgres"
	amenityModel "hms/internal/domains/amenity/model"
	amenityRepo "hms/internal/domains/amenity/repository"
	bookingRepo "hms/internal/domains/booking/repository"
	"hms/internal/domains/hotel/model"
	"hms/internal/domains/hotel/model/dto"
	"hms/internal/domains/hotel/repository"
	reviewRepo "hms/internal/domains/review/repository"
	roomModel "hms/internal/domains/room/model"
	roomRepo "hms/internal/domains/room/repository"
	"hms/shared"
	"hms/shared/cache"
	"hms/shared/constant"
	gDto "hms/shared/dto"
	"hms/shared/failure"
	"hms/shared/sequence"
	"hms/shared/timezone"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

const msgTooManyRooms = "Cannot insert more rooms than total_rooms value"

type Hotel interface {
	Create(ctx context.Context, req dto.HotelRequest) (dto.HotelMutationResponse, error)
	Update(ctx context.Context, hotelID string, req dto.HotelRequest) (dto.HotelMutationResponse, error)
	GetAll(ctx context.Context, page int) (dto.HotelListResponse, error)
	Filter(ctx context.Context, req dto.FilterRequest) (dto.HotelListResponse, error)
	FilterByRoomPrice(ctx context.Context, req dto.PriceFilterRequest) (dto.HotelListResponse, error)
	Get(ctx context.Context, hotelID string) (dto.GetHotelResponse, error)
}

type serviceImpl struct {
	repo         repository.Hotel
	rooms        roomRepo.Room
	amenities    amenityRepo.Amenity
	reviews      reviewRepo.Review
	bookings     bookingRepo.Booking
	bookingRooms bookingRepo.BookingRoom
	transactor   postgres.Transactor
	sequence     sequence.Allocator
	cache        cache.Cache
	cfg          *config.Config
	otel         otel.Otel
}

func New(
	repo repository.Hotel,
	rooms roomRepo.Room,
	amenities amenityRepo.Amenity,
	reviews reviewRepo.Review,
	bookings bookingRepo.Booking,
	bookingRooms bookingRepo.BookingRoom,
	transactor postgres.Transactor,
	sequence sequence.Allocator,
	cache cache.Cache,
	cfg *config.Config,
	otel otel.Otel,
) Hotel {
	return &serviceImpl{
		repo:         repo,
		rooms:        rooms,
		amenities:    amenities,
		reviews:      reviews,
		bookings:     bookings,
		bookingRooms: bookingRooms,
		transactor:   transactor,
		sequence:     sequence,
		cache:        cache,
		cfg:          cfg,
		otel:         otel,
	}
}

// checkPayload rejects what can be decided without reading the database.
func checkPayload(req dto.HotelRequest) error {
	if len(req.Rooms) > req.TotalRooms {
		return failure.BadRequestFromString(msgTooManyRooms) //nolint:wrapcheck
	}

	if messages := req.Check(); len(messages) > 0 {
		return failure.Validation(messages) //nolint:wrapcheck
	}

	if number, ok := req.DuplicateRoomNumber(); ok {
		return failure.BadRequestFromString(fmt.Sprintf("Duplicate room number '%s' found.", number)) //nolint:wrapcheck
	}

	if name, ok := req.DuplicateServiceName(); ok {
		return failure.BadRequestFromString(fmt.Sprintf("Duplicate service name '%s' detected.", name)) //nolint:wrapcheck
	}

	return nil
}

func (s *serviceImpl) Create(ctx context.Context, req dto.HotelRequest) (res dto.HotelMutationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".hotel.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = checkPayload(req); err != nil {
		return res, err
	}

	var hotelID string

	err = s.transactor.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		var err error

		hotelID, err = s.sequence.Next(ctx, tx, sequence.Hotel)
		if err != nil {
			return err //nolint:wrapcheck
		}

		if err := s.repo.InsertTx(ctx, tx, req.ToModel(hotelID)); err != nil {
			return fmt.Errorf("failed to insert hotel: %w", err)
		}

		for _, room := range req.Rooms {
			if err := s.insertRoom(ctx, tx, hotelID, room); err != nil {
				return err
			}
		}

		for _, service := range req.Services {
			if service.ServiceName == "" {
				continue
			}

			if err := s.insertService(ctx, tx, hotelID, service); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		log.Error().Err(err).Str("hotel_name", req.HotelName).Msg("failed to add hotel")

		return res, fmt.Errorf("failed to add hotel: %w", err)
	}

	shared.InvalidateCaches(ctx, s.cache, constant.CachePrefixHotels)

	scope.SetAttribute("hotel_id", hotelID)

	return dto.HotelMutationResponse{
		Message: "New Hotel added successfully",
		HotelID: hotelID,
	}, nil
}

// Update rewrites the hotel scalars and merges the submitted rooms (by room number)
// and services (by service id). Rooms and services left out of the payload are kept.
func (s *serviceImpl) Update(ctx context.Context, hotelID string, req dto.HotelRequest) (res dto.HotelMutationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".hotel.Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if strings.TrimSpace(hotelID) == "" {
		return res, failure.BadRequestFromString("Hotel ID is required") //nolint:wrapcheck
	}

	if err = checkPayload(req); err != nil {
		return res, err
	}

	err = s.transactor.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		filter := shared.FilterByID(hotelID, model.FieldID, model.TableName)

		hotel, err := s.repo.GetForUpdateTx(ctx, tx, filter)
		if err != nil {
			return fmt.Errorf("failed to get hotel: %w", err)
		}

		if hotel.HotelID == "" {
			return failure.NotFound("Hotel not found") //nolint:wrapcheck
		}

		if err := s.repo.UpdateTx(ctx, tx, req.ToUpdateFields(), filter); err != nil {
			return fmt.Errorf("failed to update hotel: %w", err)
		}

		if err := s.mergeRooms(ctx, tx, hotelID, req); err != nil {
			return err
		}

		return s.mergeServices(ctx, tx, hotelID, req.Services)
	})
	if err != nil {
		log.Error().Err(err).Str("hotel_id", hotelID).Msg("failed to update hotel")

		return res, fmt.Errorf("failed to update hotel: %w", err)
	}

	shared.InvalidateCaches(ctx, s.cache, constant.CachePrefixHotels)

	return dto.HotelMutationResponse{
		Message: "Hotel updated successfully",
		HotelID: hotelID,
	}, nil
}

func (s *serviceImpl) mergeRooms(ctx context.Context, tx *sqlx.Tx, hotelID string, req dto.HotelRequest) error {
	existing, err := s.rooms.GetAllTx(ctx, tx, gDto.QueryParams{},
		shared.FilterByID(hotelID, roomModel.FieldHotelID, roomModel.TableName),
		roomModel.FieldID, roomModel.FieldRoomNumber)
	if err != nil {
		return fmt.Errorf("failed to get rooms: %w", err)
	}

	known := make(map[string]struct{}, len(existing))
	for _, room := range existing {
		known[room.RoomNumber] = struct{}{}
	}

	added := 0

	for _, room := range req.Rooms {
		if _, ok := known[room.RoomNumber]; !ok {
			added++
		}
	}

	if len(existing)+added > req.TotalRooms {
		return failure.BadRequestFromString(msgTooManyRooms) //nolint:wrapcheck
	}

	for _, room := range req.Rooms {
		if _, ok := known[room.RoomNumber]; !ok {
			if err := s.insertRoom(ctx, tx, hotelID, room); err != nil {
				return err
			}

			continue
		}

		fields := map[string]any{
			roomModel.FieldRoomType:      room.RoomType,
			roomModel.FieldPricePerNight: room.Price(),
			roomModel.FieldIsAvailable:   room.Available(),
			constant.FieldUpdatedAt:      timezone.Now(),
		}

		filter := shared.FilterByFields(roomModel.TableName,
			roomModel.FieldHotelID, hotelID,
			roomModel.FieldRoomNumber, room.RoomNumber,
		)

		if err := s.rooms.UpdateTx(ctx, tx, fields, filter); err != nil {
			return fmt.Errorf("failed to update room %s: %w", room.RoomNumber, err)
		}
	}

	return nil
}

func (s *serviceImpl) mergeServices(ctx context.Context, tx *sqlx.Tx, hotelID string, services []dto.ServiceRequest) error {
	existing, err := s.amenities.GetAllTx(ctx, tx, gDto.QueryParams{},
		shared.FilterByID(hotelID, amenityModel.FieldHotelID, amenityModel.TableName))
	if err != nil {
		return fmt.Errorf("failed to get services: %w", err)
	}

	names := make(map[string]string, len(existing)+len(services))
	for _, service := range existing {
		names[service.ServiceID] = service.ServiceName
	}

	known := make(map[string]struct{}, len(existing))
	for id := range names {
		known[id] = struct{}{}
	}

	for idx, service := range services {
		if service.ServiceName == "" {
			continue
		}

		if _, ok := known[service.ServiceID]; ok {
			names[service.ServiceID] = service.ServiceName
		} else {
			names[fmt.Sprintf("new:%d", idx)] = service.ServiceName
		}
	}

	seen := make(map[string]struct{}, len(names))
	for _, name := range names {
		key := strings.ToLower(name)
		if _, ok := seen[key]; ok {
			return failure.BadRequestFromString(fmt.Sprintf("Duplicate service name '%s' detected.", name)) //nolint:wrapcheck
		}

		seen[key] = struct{}{}
	}

	for _, service := range services {
		if service.ServiceName == "" {
			continue
		}

		if _, ok := known[service.ServiceID]; !ok {
			if err := s.insertService(ctx, tx, hotelID, service); err != nil {
				return err
			}

			continue
		}

		fields := map[string]any{
			amenityModel.FieldServiceName:   service.ServiceName,
			amenityModel.FieldServiceCharge: service.Charge(),
			constant.FieldUpdatedAt:         timezone.Now(),
		}

		filter := shared.FilterByFields(amenityModel.TableName,
			amenityModel.FieldID, service.ServiceID,
			amenityModel.FieldHotelID, hotelID,
		)

		if err := s.amenities.UpdateTx(ctx, tx, fields, filter); err != nil {
			return fmt.Errorf("failed to update service %s: %w", service.ServiceID, err)
		}
	}

	return nil
}

func (s *serviceImpl) insertRoom(ctx context.Context, tx *sqlx.Tx, hotelID string, room dto.RoomRequest) error {
	roomID, err := s.sequence.Next(ctx, tx, sequence.Room)
	if err != nil {
		return err //nolint:wrapcheck
	}

	if err := s.rooms.InsertTx(ctx, tx, room.ToModel(roomID, hotelID)); err != nil {
		return fmt.Errorf("failed to insert room %s: %w", room.RoomNumber, err)
	}

	return nil
}

func (s *serviceImpl) insertService(ctx context.Context, tx *sqlx.Tx, hotelID string, service dto.ServiceRequest) error {
	serviceID, err := s.sequence.Next(ctx, tx, sequence.Service)
	if err != nil {
		return err //nolint:wrapcheck
	}

	if err := s.amenities.InsertTx(ctx, tx, service.ToModel(serviceID, hotelID)); err != nil {
		return fmt.Errorf("failed to insert service %s: %w", service.ServiceName, err)
	}

	return nil
}
