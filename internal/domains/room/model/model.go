package model

import "hms/shared/model"

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID            = "room_id"
	FieldHotelID       = "hotel_id"
	FieldRoomNumber    = "room_number"
	FieldRoomType      = "room_type"
	FieldPricePerNight = "price_per_night"
	FieldIsAvailable   = "is_available"
)

const (
	TypeDeluxe   = "Deluxe"
	TypeSuite    = "Suite"
	TypeStandard = "Standard"
)

type Room struct {
	RoomID        string  `db:"room_id"`
	HotelID       string  `db:"hotel_id"`
	RoomNumber    string  `db:"room_number"`
	RoomType      string  `db:"room_type"`
	PricePerNight float64 `db:"price_per_night"`
	IsAvailable   bool    `db:"is_available"`
	model.Metadata
}

// Availability is the number of free rooms of one hotel.
type Availability struct {
	HotelID   string `db:"hotel_id"`
	Available int    `db:"available"`
}
