package dto

import (
	"fmt"
	amenityModel "hms/internal/domains/amenity/model"
	bookingModel "hms/internal/domains/booking/model"
	bookingDto "hms/internal/domains/booking/model/dto"
	"hms/internal/domains/hotel/model"
	reviewModel "hms/internal/domains/review/model"
	roomModel "hms/internal/domains/room/model"
	"hms/shared"
	"hms/shared/constant"
	"hms/shared/failure"
	gModel "hms/shared/model"
	"hms/shared/timezone"
	"net/http"
	"strconv"
	"strings"
	"time"
)

type RoomRequest struct {
	RoomNumber    string   `json:"room_number"     validate:"required,max=10"`
	RoomType      string   `json:"room_type"       validate:"required,oneof=Deluxe Suite Standard"`
	PricePerNight *float64 `json:"price_per_night" validate:"required,gte=0"`
	IsAvailable   *bool    `json:"is_available"`
}

// Available defaults to true when the flag is omitted.
func (r *RoomRequest) Available() bool {
	return r.IsAvailable == nil || *r.IsAvailable
}

func (r *RoomRequest) Price() float64 {
	if r.PricePerNight == nil {
		return 0
	}

	return *r.PricePerNight
}

func (r *RoomRequest) ToModel(roomID, hotelID string) roomModel.Room {
	now := timezone.Now()

	return roomModel.Room{
		RoomID:        roomID,
		HotelID:       hotelID,
		RoomNumber:    r.RoomNumber,
		RoomType:      r.RoomType,
		PricePerNight: r.Price(),
		IsAvailable:   r.Available(),
		Metadata: gModel.Metadata{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
}

type ServiceRequest struct {
	ServiceID     string   `json:"service_id"     validate:"omitempty,max=20"`
	ServiceName   string   `json:"service_name"   validate:"omitempty,max=100"`
	ServiceCharge *float64 `json:"service_charge" validate:"omitempty,gte=0"`
}

func (r *ServiceRequest) Charge() float64 {
	if r.ServiceCharge == nil {
		return 0
	}

	return *r.ServiceCharge
}

func (r *ServiceRequest) ToModel(serviceID, hotelID string) amenityModel.Amenity {
	now := timezone.Now()

	return amenityModel.Amenity{
		ServiceID:     serviceID,
		HotelID:       hotelID,
		ServiceName:   r.ServiceName,
		ServiceCharge: r.Charge(),
		Metadata: gModel.Metadata{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
}

// HotelRequest is the body of both add-hotel and update-hotel.
type HotelRequest struct {
	HotelName  string           `json:"hotel_name"  validate:"required,max=100"`
	City       string           `json:"city"        validate:"required,max=100"`
	Country    string           `json:"country"     validate:"required,max=100"`
	TotalRooms int              `json:"total_rooms" validate:"gt=0"`
	Rooms      []RoomRequest    `json:"rooms"       validate:"dive"`
	Services   []ServiceRequest `json:"services"    validate:"omitempty,dive"`
}

func (h *HotelRequest) Check() []string {
	var messages []string

	for _, service := range h.Services {
		if service.ServiceName != "" && service.ServiceCharge == nil {
			messages = append(messages, "If service name is provided, service charge must be a valid number")
		}
	}

	return messages
}

// DuplicateRoomNumber returns the first room number submitted twice.
func (h *HotelRequest) DuplicateRoomNumber() (string, bool) {
	seen := make(map[string]struct{}, len(h.Rooms))

	for _, room := range h.Rooms {
		if _, ok := seen[room.RoomNumber]; ok {
			return room.RoomNumber, true
		}

		seen[room.RoomNumber] = struct{}{}
	}

	return "", false
}

// DuplicateServiceName compares names case-insensitively and ignores unnamed services.
func (h *HotelRequest) DuplicateServiceName() (string, bool) {
	seen := make(map[string]struct{}, len(h.Services))

	for _, service := range h.Services {
		if service.ServiceName == "" {
			continue
		}

		key := strings.ToLower(service.ServiceName)
		if _, ok := seen[key]; ok {
			return service.ServiceName, true
		}

		seen[key] = struct{}{}
	}

	return "", false
}

func (h *HotelRequest) ToModel(hotelID string) model.Hotel {
	now := timezone.Now()

	return model.Hotel{
		HotelID:    hotelID,
		HotelName:  h.HotelName,
		City:       h.City,
		Country:    h.Country,
		TotalRooms: h.TotalRooms,
		Metadata: gModel.Metadata{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
}

func (h *HotelRequest) ToUpdateFields() map[string]any {
	return map[string]any{
		model.FieldHotelName:    h.HotelName,
		model.FieldCity:         h.City,
		model.FieldCountry:      h.Country,
		model.FieldTotalRooms:   h.TotalRooms,
		constant.FieldUpdatedAt: timezone.Now(),
	}
}

type HotelMutationResponse struct {
	Message string `json:"message"`
	HotelID string `json:"hotelId"`
}

// Sort directions accepted by the listing parameters.
const (
	SortLowToHigh = "low to high"
	SortHighToLow = "high to low"
)

// FilterRequest holds the hotel listing parameters.
type FilterRequest struct {
	City    string
	Country string
	// Ratings is either a minimum average rating or a sort direction.
	Ratings              string
	SortRoomAvailability string
	SortBookingsCount    string
	Page                 int
}

// MinRating returns the numeric form of Ratings.
func (f *FilterRequest) MinRating() *float64 {
	value, err := strconv.ParseFloat(strings.TrimSpace(f.Ratings), 64)
	if err != nil {
		return nil
	}

	return &value
}

// FromRequest reads the listing query parameters.
func (f *FilterRequest) FromRequest(r *http.Request) error {
	query := r.URL.Query()

	page, err := shared.ParsePage(query.Get(constant.RequestParamPage))
	if err != nil {
		return err //nolint:wrapcheck
	}

	f.City = strings.TrimSpace(query.Get("city"))
	f.Country = strings.TrimSpace(query.Get("country"))
	f.Ratings = strings.TrimSpace(query.Get("ratings"))
	f.SortRoomAvailability = strings.TrimSpace(query.Get("sortHotelByRoomAvailability"))
	f.SortBookingsCount = strings.TrimSpace(query.Get("bookingsCount"))
	f.Page = page

	return nil
}

func (f *FilterRequest) CacheKeyParts(op string) []any {
	return []any{
		op,
		"city=" + strings.ToLower(f.City),
		"country=" + strings.ToLower(f.Country),
		"ratings=" + strings.ToLower(f.Ratings),
		"availability=" + strings.ToLower(f.SortRoomAvailability),
		"bookings=" + strings.ToLower(f.SortBookingsCount),
		fmt.Sprintf("page=%d", f.Page),
	}
}

type PriceFilterRequest struct {
	MinPrice  *float64
	MaxPrice  *float64
	MinRating *float64
	Page      int
}

func (p *PriceFilterRequest) FromRequest(r *http.Request) error {
	query := r.URL.Query()

	page, err := shared.ParsePage(query.Get(constant.RequestParamPage))
	if err != nil {
		return err //nolint:wrapcheck
	}

	params := []struct {
		name   string
		target **float64
	}{
		{"minPrice", &p.MinPrice},
		{"maxPrice", &p.MaxPrice},
		{"minRating", &p.MinRating},
	}

	for _, param := range params {
		value, err := shared.ParseOptionalFloat(query.Get(param.name))
		if err != nil {
			return failure.BadRequestFromString(param.name + " must be a valid number") //nolint:wrapcheck
		}

		*param.target = value
	}

	p.Page = page

	return nil
}

func (p *PriceFilterRequest) CacheKeyParts() []any {
	format := func(v *float64) string {
		if v == nil {
			return ""
		}

		return fmt.Sprintf("%g", *v)
	}

	return []any{
		"price",
		"min=" + format(p.MinPrice),
		"max=" + format(p.MaxPrice),
		"rating=" + format(p.MinRating),
		fmt.Sprintf("page=%d", p.Page),
	}
}

type RoomResponse struct {
	RoomNumber    string  `json:"room_number"`
	RoomType      string  `json:"room_type"`
	PricePerNight float64 `json:"price_per_night"`
	IsAvailable   bool    `json:"is_available"`
}

func (r *RoomResponse) FromModel(model roomModel.Room) {
	r.RoomNumber = model.RoomNumber
	r.RoomType = model.RoomType
	r.PricePerNight = model.PricePerNight
	r.IsAvailable = model.IsAvailable
}

type ServiceResponse struct {
	ServiceID     string  `json:"service_id"`
	ServiceName   string  `json:"service_name"`
	ServiceCharge float64 `json:"service_charge"`
}

func (r *ServiceResponse) FromModel(model amenityModel.Amenity) {
	r.ServiceID = model.ServiceID
	r.ServiceName = model.ServiceName
	r.ServiceCharge = model.ServiceCharge
}

type ReviewResponse struct {
	CustomerName *string     `json:"customer_name"`
	Rating       int         `json:"rating"`
	Comment      string      `json:"comment"`
	ReviewDate   gModel.Date `json:"review_date"`
}

func (r *ReviewResponse) FromModel(model reviewModel.Detail) {
	r.CustomerName = model.CustomerName
	r.Rating = model.Rating
	r.Comment = model.Comment
	r.ReviewDate = model.ReviewDate
}

type BookingResponse struct {
	BookingID     string                           `json:"booking_id"`
	CustomerID    string                           `json:"customer_id"`
	BookingStatus string                           `json:"booking_status"`
	TotalAmount   float64                          `json:"total_amount"`
	CreatedAt     time.Time                        `json:"created_at"`
	BookingRooms  []bookingDto.BookingRoomResponse `json:"booking_rooms"`
}

func (r *BookingResponse) FromModel(model bookingModel.Booking, rooms []bookingModel.Room) {
	r.BookingID = model.BookingID
	r.CustomerID = model.CustomerID
	r.BookingStatus = model.BookingStatus
	r.TotalAmount = model.TotalAmount
	r.CreatedAt = model.CreatedAt
	r.BookingRooms = bookingDto.FromRoomModels(rooms)
}

// HotelResponse is one hotel with everything hanging off it.
type HotelResponse struct {
	HotelID             string            `json:"hotel_id"`
	HotelName           string            `json:"hotel_name"`
	City                string            `json:"city"`
	Country             string            `json:"country"`
	TotalRooms          int               `json:"total_rooms"`
	CreatedAt           time.Time         `json:"created_at"`
	TotalRoomsAvailable int               `json:"total_rooms_available"`
	AverageRating       float64           `json:"average_rating"`
	TotalReviews        int               `json:"total_reviews"`
	TotalBookings       int               `json:"totalBookings"`
	Rooms               []RoomResponse    `json:"rooms"`
	Services            []ServiceResponse `json:"services"`
	Reviews             []ReviewResponse  `json:"reviews"`
	Bookings            []BookingResponse `json:"bookings"`
}

type HotelListResponse struct {
	Message     string          `json:"message,omitempty"`
	TotalHotels int             `json:"totalHotels"`
	CurrentPage int             `json:"currentPage"`
	TotalPages  int             `json:"totalPages"`
	Data        []HotelResponse `json:"data"`
}

type GetHotelResponse struct {
	Data HotelResponse `json:"data"`
}
