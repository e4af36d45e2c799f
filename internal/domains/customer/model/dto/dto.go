package dto

import (
	bookingModel "hms/internal/domains/booking/model"
	bookingDto "hms/internal/domains/booking/model/dto"
	"hms/internal/domains/customer/model"
	gModel "hms/shared/model"
	"hms/shared/timezone"
	"time"
)

type CreateCustomerRequest struct {
	FullName string `json:"full_name" validate:"required,max=255"`
	Email    string `json:"email"     validate:"required,email,max=255"`
	Phone    string `json:"phone"     validate:"required,max=20"`
	City     string `json:"city"      validate:"required,max=100"`
	Country  string `json:"country"   validate:"required,max=100"`
}

func (c *CreateCustomerRequest) ToModel(customerID string) model.Customer {
	now := timezone.Now()

	return model.Customer{
		CustomerID: customerID,
		FullName:   c.FullName,
		Email:      c.Email,
		Phone:      c.Phone,
		City:       c.City,
		Country:    c.Country,
		Metadata: gModel.Metadata{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
}

type CreateCustomerResponse struct {
	Message    string `json:"message"`
	CustomerID string `json:"customer_id"`
}

type BookingHistoryResponse struct {
	BookingID     string                           `json:"booking_id"`
	HotelID       string                           `json:"hotel_id"`
	HotelName     string                           `json:"hotel_name"`
	BookingStatus string                           `json:"booking_status"`
	TotalAmount   float64                          `json:"total_amount"`
	CreatedAt     time.Time                        `json:"created_at"`
	BookingRooms  []bookingDto.BookingRoomResponse `json:"booking_rooms"`
}

func (b *BookingHistoryResponse) FromModel(detail bookingModel.Detail, rooms []bookingModel.Room) {
	b.BookingID = detail.BookingID
	b.HotelID = detail.HotelID
	b.HotelName = detail.HotelName
	b.BookingStatus = detail.BookingStatus
	b.TotalAmount = detail.TotalAmount
	b.CreatedAt = detail.CreatedAt
	b.BookingRooms = bookingDto.FromRoomModels(rooms)
}

type GetBookingHistoryResponse struct {
	Message       string                   `json:"message,omitempty"`
	CustomerID    string                   `json:"customer_id"`
	TotalBookings int                      `json:"totalBookings"`
	CurrentPage   int                      `json:"currentPage"`
	TotalPages    int                      `json:"totalPages"`
	Data          []BookingHistoryResponse `json:"data"`
}
