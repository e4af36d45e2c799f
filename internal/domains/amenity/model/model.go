package model

import "hms/shared/model"

// Hotel services (spa, breakfast, ...) live in the services table.
const (
	TableName  = "services"
	EntityName = "service"

	FieldID            = "service_id"
	FieldHotelID       = "hotel_id"
	FieldServiceName   = "service_name"
	FieldServiceCharge = "service_charge"
)

type Amenity struct {
	ServiceID     string  `db:"service_id"`
	HotelID       string  `db:"hotel_id"`
	ServiceName   string  `db:"service_name"`
	ServiceCharge float64 `db:"service_charge"`
	model.Metadata
}
