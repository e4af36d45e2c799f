package model

import "hms/shared/model"

const (
	TableName  = "maintenance"
	EntityName = "maintenance"

	FieldID                = "maintenance_id"
	FieldHotelID           = "hotel_id"
	FieldRoomNumber        = "room_number"
	FieldEmployeeID        = "employee_id"
	FieldMaintenanceStatus = "maintenance_status"
)

const (
	StatusPending   = "Pending"
	StatusCompleted = "Completed"
	StatusCancelled = "Cancelled"
)

type Maintenance struct {
	MaintenanceID     string     `db:"maintenance_id"`
	HotelID           string     `db:"hotel_id"`
	RoomNumber        string     `db:"room_number"`
	EmployeeID        string     `db:"employee_id"`
	IssueDescription  string     `db:"issue_description"`
	MaintenanceDate   model.Date `db:"maintenance_date"`
	MaintenanceStatus string     `db:"maintenance_status"`
	model.Metadata
}
