package service

import (
	"context"
	"fmt"
	amenityModel "hms/internal/domains/amenity/model"
	bookingModel "hms/internal/domains/booking/model"
	"hms/internal/domains/hotel/model"
	"hms/internal/domains/hotel/model/dto"
	reviewModel "hms/internal/domains/review/model"
	roomModel "hms/internal/domains/room/model"
	"hms/shared"
	"hms/shared/constant"
	gDto "hms/shared/dto"
)

// stats are the per-hotel figures the listing filters and sorts on.
type stats struct {
	available map[string]int
	reviews   map[string]reviewModel.Summary
	bookings  map[string]int
}

func (st stats) rating(hotelID string) float64 {
	return shared.RoundTo(st.reviews[hotelID].AverageRating, 2)
}

func (s *serviceImpl) loadStats(ctx context.Context, hotelIDs []string) (st stats, err error) {
	st.available, err = s.rooms.CountAvailableByHotel(ctx, hotelIDs)
	if err != nil {
		return st, fmt.Errorf("failed to count available rooms: %w", err)
	}

	st.reviews, err = s.reviews.SummarizeByHotel(ctx, hotelIDs)
	if err != nil {
		return st, fmt.Errorf("failed to summarize reviews: %w", err)
	}

	st.bookings, err = s.bookings.CountActiveByHotel(ctx, hotelIDs)
	if err != nil {
		return st, fmt.Errorf("failed to count bookings: %w", err)
	}

	return st, nil
}

// aggregate loads each collection of the given hotels with one query and assembles
// the responses in the order of hotels. keepRoom, when set, limits the listed rooms.
func (s *serviceImpl) aggregate(ctx context.Context, hotels []model.Hotel, st stats, keepRoom func(roomModel.Room) bool) ([]dto.HotelResponse, error) {
	res := make([]dto.HotelResponse, len(hotels))
	if len(hotels) == 0 {
		return res, nil
	}

	ids := hotelIDs(hotels)

	rooms, err := s.rooms.GetAll(ctx, gDto.QueryParams{
		SortBy:  roomModel.TableName + "." + roomModel.FieldRoomNumber,
		SortDir: gDto.SortDirAsc,
	}, shared.FilterIn(roomModel.TableName, roomModel.FieldHotelID, ids))
	if err != nil {
		return nil, fmt.Errorf("failed to get rooms: %w", err)
	}

	services, err := s.amenities.GetAll(ctx, gDto.QueryParams{
		SortBy:  amenityModel.TableName + "." + constant.FieldCreatedAt,
		SortDir: gDto.SortDirAsc,
	}, shared.FilterIn(amenityModel.TableName, amenityModel.FieldHotelID, ids))
	if err != nil {
		return nil, fmt.Errorf("failed to get services: %w", err)
	}

	reviews, err := s.reviews.GetAllDetails(ctx, gDto.QueryParams{
		SortBy:  reviewModel.TableName + "." + reviewModel.FieldReviewDate,
		SortDir: gDto.SortDirDesc,
	}, shared.FilterIn(reviewModel.TableName, reviewModel.FieldHotelID, ids))
	if err != nil {
		return nil, fmt.Errorf("failed to get reviews: %w", err)
	}

	bookings, err := s.bookings.GetAll(ctx, gDto.QueryParams{
		SortBy:  bookingModel.TableName + "." + constant.FieldCreatedAt,
		SortDir: gDto.SortDirDesc,
	}, shared.FilterIn(bookingModel.TableName, bookingModel.FieldHotelID, ids))
	if err != nil {
		return nil, fmt.Errorf("failed to get bookings: %w", err)
	}

	bookingIDs := make([]string, len(bookings))
	for idx, booking := range bookings {
		bookingIDs[idx] = booking.BookingID
	}

	bookingRooms := []bookingModel.Room{}
	if len(bookingIDs) > 0 {
		bookingRooms, err = s.bookingRooms.GetAll(ctx, gDto.QueryParams{},
			shared.FilterIn(bookingModel.RoomTableName, bookingModel.FieldRoomBookingID, bookingIDs))
		if err != nil {
			return nil, fmt.Errorf("failed to get booking rooms: %w", err)
		}
	}

	roomsByHotel := shared.GroupBy(rooms, func(r roomModel.Room) string { return r.HotelID })
	servicesByHotel := shared.GroupBy(services, func(a amenityModel.Amenity) string { return a.HotelID })
	reviewsByHotel := shared.GroupBy(reviews, func(r reviewModel.Detail) string { return r.HotelID })
	bookingsByHotel := shared.GroupBy(bookings, func(b bookingModel.Booking) string { return b.HotelID })
	roomsByBooking := shared.GroupBy(bookingRooms, func(r bookingModel.Room) string { return r.BookingID })

	for idx, hotel := range hotels {
		item := &res[idx]

		item.HotelID = hotel.HotelID
		item.HotelName = hotel.HotelName
		item.City = hotel.City
		item.Country = hotel.Country
		item.TotalRooms = hotel.TotalRooms
		item.CreatedAt = hotel.CreatedAt
		item.TotalRoomsAvailable = st.available[hotel.HotelID]
		item.AverageRating = st.rating(hotel.HotelID)
		item.TotalReviews = st.reviews[hotel.HotelID].TotalReviews
		item.TotalBookings = st.bookings[hotel.HotelID]

		item.Rooms = []dto.RoomResponse{}
		for _, room := range roomsByHotel[hotel.HotelID] {
			if keepRoom != nil && !keepRoom(room) {
				continue
			}

			var r dto.RoomResponse
			r.FromModel(room)
			item.Rooms = append(item.Rooms, r)
		}

		item.Services = make([]dto.ServiceResponse, len(servicesByHotel[hotel.HotelID]))
		for i, service := range servicesByHotel[hotel.HotelID] {
			item.Services[i].FromModel(service)
		}

		item.Reviews = make([]dto.ReviewResponse, len(reviewsByHotel[hotel.HotelID]))
		for i, review := range reviewsByHotel[hotel.HotelID] {
			item.Reviews[i].FromModel(review)
		}

		item.Bookings = make([]dto.BookingResponse, len(bookingsByHotel[hotel.HotelID]))
		for i, booking := range bookingsByHotel[hotel.HotelID] {
			item.Bookings[i].FromModel(booking, roomsByBooking[booking.BookingID])
		}
	}

	return res, nil
}

func hotelIDs(hotels []model.Hotel) []string {
	ids := make([]string, len(hotels))
	for idx, hotel := range hotels {
		ids[idx] = hotel.HotelID
	}

	return ids
}
