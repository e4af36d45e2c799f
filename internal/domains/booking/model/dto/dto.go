package dto

import (
	"fmt"
	"hms/internal/domains/booking/model"
	gModel "hms/shared/model"
	"hms/shared/timezone"
	"time"
)

type BookingRoomRequest struct {
	RoomNumber string      `json:"room_number" validate:"required,max=20"`
	CheckIn    gModel.Date `json:"check_in"`
	CheckOut   gModel.Date `json:"check_out"`
}

type CreateBookingRequest struct {
	CustomerID    string               `json:"customer_id"    validate:"required,max=20"`
	HotelID       string               `json:"hotel_id"       validate:"required,max=20"`
	TotalAmount   *float64             `json:"total_amount"   validate:"required,gte=0"`
	BookingStatus string               `json:"booking_status" validate:"omitempty,oneof=Confirmed"`
	BookingRooms  []BookingRoomRequest `json:"booking_rooms"  validate:"required,min=1,dive"`
}

// Check covers the stay dates and repeated rooms.
func (c *CreateBookingRequest) Check() []string {
	var messages []string

	seen := make(map[string]struct{}, len(c.BookingRooms))

	for idx, room := range c.BookingRooms {
		switch {
		case room.CheckIn.IsZero():
			messages = append(messages, fmt.Sprintf("booking_rooms[%d].check_in is required", idx))
		case room.CheckOut.IsZero():
			messages = append(messages, fmt.Sprintf("booking_rooms[%d].check_out is required", idx))
		case !room.CheckOut.After(room.CheckIn):
			messages = append(messages, "Check-out date must be after check-in date")
		}

		if _, ok := seen[room.RoomNumber]; ok && room.RoomNumber != "" {
			messages = append(messages, fmt.Sprintf("Duplicate room number '%s' found.", room.RoomNumber))
		}

		seen[room.RoomNumber] = struct{}{}
	}

	return messages
}

func (c *CreateBookingRequest) Status() string {
	if c.BookingStatus == "" {
		return model.StatusConfirmed
	}

	return c.BookingStatus
}

func (c *CreateBookingRequest) ToModel(bookingID string) model.Booking {
	now := timezone.Now()

	return model.Booking{
		BookingID:     bookingID,
		CustomerID:    c.CustomerID,
		HotelID:       c.HotelID,
		BookingStatus: c.Status(),
		TotalAmount:   *c.TotalAmount,
		Metadata: gModel.Metadata{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
}

func (r *BookingRoomRequest) ToModel(bookingRoomID, bookingID string, amount float64) model.Room {
	now := timezone.Now()

	return model.Room{
		BookingRoomID: bookingRoomID,
		BookingID:     bookingID,
		RoomNumber:    r.RoomNumber,
		CheckIn:       r.CheckIn,
		CheckOut:      r.CheckOut,
		RoomAmount:    amount,
		Metadata: gModel.Metadata{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
}

type CancelBookingRequest struct {
	CustomerID   string `json:"customer_id"   validate:"required,max=20"`
	HotelID      string `json:"hotel_id"      validate:"required,max=20"`
	CancelReason string `json:"cancel_reason" validate:"required,min=5,max=1000"`
}

func (c *CancelBookingRequest) ToModel(cancelID string, booking model.Booking) model.Cancellation {
	now := timezone.Now()

	return model.Cancellation{
		BookingCancelID: cancelID,
		BookingID:       booking.BookingID,
		CustomerID:      booking.CustomerID,
		HotelID:         booking.HotelID,
		TotalAmount:     booking.TotalAmount,
		CancelReasons:   c.CancelReason,
		Metadata: gModel.Metadata{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
}

type BookingRoomResponse struct {
	BookingRoomID string      `json:"booking_room_id"`
	RoomNumber    string      `json:"room_number"`
	CheckIn       gModel.Date `json:"check_in"`
	CheckOut      gModel.Date `json:"check_out"`
	RoomAmount    float64     `json:"room_amount"`
}

func (r *BookingRoomResponse) FromModel(model model.Room) {
	r.BookingRoomID = model.BookingRoomID
	r.RoomNumber = model.RoomNumber
	r.CheckIn = model.CheckIn
	r.CheckOut = model.CheckOut
	r.RoomAmount = model.RoomAmount
}

func FromRoomModels(models []model.Room) []BookingRoomResponse {
	res := make([]BookingRoomResponse, len(models))
	for i, mod := range models {
		res[i].FromModel(mod)
	}

	return res
}

type CreateBookingResponse struct {
	Message     string                `json:"message"`
	BookingID   string                `json:"booking_id"`
	BookedRooms []BookingRoomResponse `json:"booked_rooms"`
}

type CancelBookingResponse struct {
	Message         string `json:"message"`
	BookingCancelID string `json:"booking_cancel_id"`
}

// Event is the payload published on the booking topic.
type Event struct {
	EventID    string    `json:"event_id"`
	Type       string    `json:"type"`
	BookingID  string    `json:"booking_id"`
	HotelID    string    `json:"hotel_id"`
	CustomerID string    `json:"customer_id"`
	Status     string    `json:"booking_status"`
	Rooms      []string  `json:"rooms"`
	Amount     float64   `json:"total_amount"`
	OccurredAt time.Time `json:"occurred_at"`
}
