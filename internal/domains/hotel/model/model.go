package model

import "hms/shared/model"

const (
	TableName  = "hotels"
	EntityName = "hotel"

	FieldID         = "hotel_id"
	FieldHotelName  = "hotel_name"
	FieldCity       = "city"
	FieldCountry    = "country"
	FieldTotalRooms = "total_rooms"
)

type Hotel struct {
	HotelID    string `db:"hotel_id"`
	HotelName  string `db:"hotel_name"`
	City       string `db:"city"`
	Country    string `db:"country"`
	TotalRooms int    `db:"total_rooms"`
	model.Metadata
}
