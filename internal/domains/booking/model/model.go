package model

import "hms/shared/model"

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID            = "booking_id"
	FieldCustomerID    = "customer_id"
	FieldHotelID       = "hotel_id"
	FieldBookingStatus = "booking_status"
)

const (
	RoomTableName  = "booking_rooms"
	RoomEntityName = "booking_room"

	FieldRoomID         = "booking_room_id"
	FieldRoomBookingID  = "booking_id"
	FieldRoomRoomNumber = "room_number"
)

const (
	CancellationTableName  = "bookings_cancelled"
	CancellationEntityName = "booking_cancellation"

	FieldCancellationID = "booking_cancel_id"
)

const (
	StatusConfirmed = "Confirmed"
	StatusCancelled = "Cancelled"
	StatusCompleted = "Completed"
)

type Booking struct {
	BookingID     string  `db:"booking_id"`
	CustomerID    string  `db:"customer_id"`
	HotelID       string  `db:"hotel_id"`
	BookingStatus string  `db:"booking_status"`
	TotalAmount   float64 `db:"total_amount"`
	model.Metadata
}

// Detail is a booking with the name of the booked hotel.
type Detail struct {
	Booking
	HotelName string `db:"hotel_name" table:"hotels" column:"hotel_name"`
}

func (Detail) GetJoinQuery() string {
	return "JOIN hotels ON hotels.hotel_id = bookings.hotel_id"
}

type Room struct {
	BookingRoomID string     `db:"booking_room_id"`
	BookingID     string     `db:"booking_id"`
	RoomNumber    string     `db:"room_number"`
	CheckIn       model.Date `db:"check_in"`
	CheckOut      model.Date `db:"check_out"`
	RoomAmount    float64    `db:"room_amount"`
	model.Metadata
}

type Cancellation struct {
	BookingCancelID string  `db:"booking_cancel_id"`
	BookingID       string  `db:"booking_id"`
	CustomerID      string  `db:"customer_id"`
	HotelID         string  `db:"hotel_id"`
	TotalAmount     float64 `db:"total_amount"`
	CancelReasons   string  `db:"cancel_reasons"`
	model.Metadata
}

// Activity is the number of bookings of one hotel that are not cancelled.
type Activity struct {
	HotelID  string `db:"hotel_id"`
	Bookings int    `db:"bookings"`
}
