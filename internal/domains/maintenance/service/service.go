package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"hms/config"
	"hms/infras/otel"
	"hms/infras/postgres"
	employeeModel "hms/internal/domains/employee/model"
	employeeRepo "hms/internal/domains/employee/repository"
	hotelModel "hms/internal/domains/hotel/model"
	hotelRepo "hms/internal/domains/hotel/repository"
	"hms/internal/domains/maintenance/model"
	"hms/internal/domains/maintenance/model/dto"
	"hms/internal/domains/maintenance/repository"
	roomModel "hms/internal/domains/room/model"
	roomRepo "hms/internal/domains/room/repository"
	"hms/shared"
	"hms/shared/cache"
	"hms/shared/constant"
	"hms/shared/failure"
	"hms/shared/sequence"
	"hms/shared/timezone"
	"hms/shared/validator"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

type Maintenance interface {
	Create(ctx context.Context, hotelID, employeeID string, req dto.CreateMaintenanceRequest) (dto.CreateMaintenanceResponse, error)
	UpdateStatus(ctx context.Context, hotelID, employeeID, maintenanceID string, req dto.UpdateMaintenanceRequest) (dto.UpdateMaintenanceResponse, error)
}

type serviceImpl struct {
	repo       repository.Maintenance
	employees  employeeRepo.Employee
	hotels     hotelRepo.Hotel
	rooms      roomRepo.Room
	transactor postgres.Transactor
	sequence   sequence.Allocator
	cache      cache.Cache
	cfg        *config.Config
	otel       otel.Otel
}

func New(
	repo repository.Maintenance,
	employees employeeRepo.Employee,
	hotels hotelRepo.Hotel,
	rooms roomRepo.Room,
	transactor postgres.Transactor,
	sequence sequence.Allocator,
	cache cache.Cache,
	cfg *config.Config,
	otel otel.Otel,
) Maintenance {
	return &serviceImpl{
		repo:       repo,
		employees:  employees,
		hotels:     hotels,
		rooms:      rooms,
		transactor: transactor,
		sequence:   sequence,
		cache:      cache,
		cfg:        cfg,
		otel:       otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, hotelID, employeeID string, req dto.CreateMaintenanceRequest) (res dto.CreateMaintenanceResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".maintenance.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	ids := make([]string, 0, len(req.Maintenance))

	err = s.transactor.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		if err := s.authorize(ctx, tx, employeeID, "You are not authorized to add maintenance records"); err != nil {
			return err
		}

		if err := validator.ValidateStruct(&req); err != nil {
			return err //nolint:wrapcheck
		}

		if err := s.checkHotel(ctx, tx, hotelID); err != nil {
			return err
		}

		records := make([]model.Maintenance, 0, len(req.Maintenance))

		for _, item := range req.Maintenance {
			if err := s.checkRoom(ctx, tx, hotelID, item.RoomNumber); err != nil {
				return err
			}

			id, err := s.sequence.Next(ctx, tx, sequence.Maintenance)
			if err != nil {
				return err //nolint:wrapcheck
			}

			records = append(records, item.ToModel(id, hotelID, employeeID))
			ids = append(ids, id)
		}

		if err := s.repo.InsertBulkTx(ctx, tx, records); err != nil {
			return fmt.Errorf("failed to insert maintenance records: %w", err)
		}

		return nil
	})
	if err != nil {
		log.Error().Err(err).Str("hotel_id", hotelID).Str("employee_id", employeeID).Msg("failed to add maintenance records")

		return res, fmt.Errorf("failed to add maintenance records: %w", err)
	}

	shared.InvalidateCaches(ctx, s.cache, constant.CachePrefixMaintenance)

	return dto.CreateMaintenanceResponse{
		Message:        "Maintenance record(s) added successfully",
		MaintenanceIDs: ids,
	}, nil
}

func (s *serviceImpl) UpdateStatus(ctx context.Context, hotelID, employeeID, maintenanceID string, req dto.UpdateMaintenanceRequest) (res dto.UpdateMaintenanceResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".maintenance.UpdateStatus")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	var status string

	err = s.transactor.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		if err := s.authorize(ctx, tx, employeeID, "You are not authorized to update maintenance records"); err != nil {
			return err
		}

		if err := validator.ValidateStruct(&req); err != nil {
			return err //nolint:wrapcheck
		}

		if err := s.checkHotel(ctx, tx, hotelID); err != nil {
			return err
		}

		if err := s.checkRoom(ctx, tx, hotelID, req.RoomNumber); err != nil {
			return err
		}

		status = req.Status()

		filter := shared.FilterByFields(model.TableName,
			model.FieldID, maintenanceID,
			model.FieldHotelID, hotelID,
			model.FieldRoomNumber, req.RoomNumber,
		)

		record, err := s.repo.GetForUpdateTx(ctx, tx, filter)
		if err != nil {
			return fmt.Errorf("failed to get maintenance record: %w", err)
		}

		if record.MaintenanceID == "" {
			return failure.NotFound("Maintenance record not found") //nolint:wrapcheck
		}

		if record.MaintenanceStatus == status {
			return failure.BadRequestFromString("Maintenance status is already updated") //nolint:wrapcheck
		}

		fields := map[string]any{
			model.FieldMaintenanceStatus: status,
			constant.FieldUpdatedAt:      timezone.Now(),
		}

		if err := s.repo.UpdateTx(ctx, tx, fields, filter); err != nil {
			return fmt.Errorf("failed to update maintenance record: %w", err)
		}

		return nil
	})
	if err != nil {
		log.Error().Err(err).Str("maintenance_id", maintenanceID).Msg("failed to update maintenance status")

		return res, fmt.Errorf("failed to update maintenance status: %w", err)
	}

	shared.InvalidateCaches(ctx, s.cache, constant.CachePrefixMaintenance)

	return dto.UpdateMaintenanceResponse{
		Message:       "Maintenance status updated successfully",
		MaintenanceID: maintenanceID,
		UpdatedStatus: status,
	}, nil
}

// authorize admits only staff with the employee role. It runs before the body is
// validated.
func (s *serviceImpl) authorize(ctx context.Context, tx *sqlx.Tx, employeeID, deniedMessage string) error {
	employee, err := s.employees.GetTx(ctx, tx, shared.FilterByID(employeeID, employeeModel.FieldID, employeeModel.TableName))
	if err != nil {
		return fmt.Errorf("failed to get employee: %w", err)
	}

	if employee.EmployeeID == "" {
		return failure.NotFound("Employee not found") //nolint:wrapcheck
	}

	if employee.Role != employeeModel.RoleEmployee {
		return failure.Forbidden(deniedMessage) //nolint:wrapcheck
	}

	return nil
}

func (s *serviceImpl) checkHotel(ctx context.Context, tx *sqlx.Tx, hotelID string) error {
	hotel, err := s.hotels.GetTx(ctx, tx, shared.FilterByID(hotelID, hotelModel.FieldID, hotelModel.TableName))
	if err != nil {
		return fmt.Errorf("failed to get hotel: %w", err)
	}

	if hotel.HotelID == "" {
		return failure.NotFound("Hotel not found") //nolint:wrapcheck
	}

	return nil
}

func (s *serviceImpl) checkRoom(ctx context.Context, tx *sqlx.Tx, hotelID, roomNumber string) error {
	exist, err := s.rooms.ExistTx(ctx, tx, shared.FilterByFields(roomModel.TableName,
		roomModel.FieldHotelID, hotelID,
		roomModel.FieldRoomNumber, roomNumber,
	))
	if err != nil {
		return fmt.Errorf("failed to check room: %w", err)
	}

	if !exist {
		return failure.NotFound(fmt.Sprintf("Room %s not found in hotel %s", roomNumber, hotelID)) //nolint:wrapcheck
	}

	return nil
}
