package dto

import (
	"fmt"
	"hms/internal/domains/maintenance/model"
	gModel "hms/shared/model"
	"hms/shared/timezone"
)

type MaintenanceItem struct {
	RoomNumber        string      `json:"room_number"        validate:"required,max=20"`
	IssueDescription  string      `json:"issue_description"  validate:"required,min=5,max=1000"`
	MaintenanceDate   gModel.Date `json:"maintenance_date"`
	MaintenanceStatus string      `json:"maintenance_status" validate:"omitempty,oneof=Pending Completed Cancelled"`
}

func (m *MaintenanceItem) Status() string {
	if m.MaintenanceStatus == "" {
		return model.StatusPending
	}

	return m.MaintenanceStatus
}

func (m *MaintenanceItem) ToModel(maintenanceID, hotelID, employeeID string) model.Maintenance {
	now := timezone.Now()

	return model.Maintenance{
		MaintenanceID:     maintenanceID,
		HotelID:           hotelID,
		RoomNumber:        m.RoomNumber,
		EmployeeID:        employeeID,
		IssueDescription:  m.IssueDescription,
		MaintenanceDate:   m.MaintenanceDate,
		MaintenanceStatus: m.Status(),
		Metadata: gModel.Metadata{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
}

type CreateMaintenanceRequest struct {
	Maintenance []MaintenanceItem `json:"maintenance" validate:"required,min=1,dive"`
}

func (c *CreateMaintenanceRequest) Check() []string {
	var messages []string

	for idx, item := range c.Maintenance {
		if item.MaintenanceDate.IsZero() {
			messages = append(messages, fmt.Sprintf("maintenance[%d].maintenance_date is required", idx))
		}
	}

	return messages
}

type CreateMaintenanceResponse struct {
	Message        string   `json:"message"`
	MaintenanceIDs []string `json:"maintenance_ids"`
}

type UpdateMaintenanceRequest struct {
	RoomNumber        string `json:"room_number"        validate:"required,max=20"`
	MaintenanceStatus string `json:"maintenance_status" validate:"omitempty,oneof=Pending Completed Cancelled"`
}

func (u *UpdateMaintenanceRequest) Status() string {
	if u.MaintenanceStatus == "" {
		return model.StatusPending
	}

	return u.MaintenanceStatus
}

type UpdateMaintenanceResponse struct {
	Message       string `json:"message"`
	MaintenanceID string `json:"maintenance_id"`
	UpdatedStatus string `json:"updated_status"`
}
