package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"hms/config"
	"hms/infras/kafka"
	kafkaMocks "hms/infras/kafka/mocks"
	otelMocks "hms/infras/otel/mocks"
	pgMocks "hms/infras/postgres/mocks"
	"hms/internal/domains/booking/event"
	bookingMocks "hms/internal/domains/booking/mocks"
	"hms/internal/domains/booking/model"
	"hms/internal/domains/booking/model/dto"
	"hms/internal/domains/booking/service"
	customerMocks "hms/internal/domains/customer/mocks"
	hotelMocks "hms/internal/domains/hotel/mocks"
	hotelModel "hms/internal/domains/hotel/model"
	roomMocks "hms/internal/domains/room/mocks"
	roomModel "hms/internal/domains/room/model"
	cacheMocks "hms/shared/cache/mocks"
	"hms/shared/constant"
	gDto "hms/shared/dto"
	"hms/shared/failure"
	gModel "hms/shared/model"
	"hms/shared/sequence"
	seqMocks "hms/shared/sequence/mocks"
)

type fixture struct {
	repo          *bookingMocks.MockBooking
	bookingRooms  *bookingMocks.MockBookingRoom
	cancellations *bookingMocks.MockCancellation
	hotel         *hotelMocks.MockHotel
	room          *roomMocks.MockRoom
	customer      *customerMocks.MockCustomer
	seq           *seqMocks.MockAllocator
	kafka         *kafkaMocks.MockClient
	cache         *cacheMocks.MockCache
	published     chan struct{}
	svc           service.Booking
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)

	cfg := &config.Config{}
	cfg.Kafka.Enable = true
	cfg.Kafka.Topic = "hms.bookings"

	f := &fixture{
		repo:          bookingMocks.NewMockBooking(ctrl),
		bookingRooms:  bookingMocks.NewMockBookingRoom(ctrl),
		cancellations: bookingMocks.NewMockCancellation(ctrl),
		hotel:         hotelMocks.NewMockHotel(ctrl),
		room:          roomMocks.NewMockRoom(ctrl),
		customer:      customerMocks.NewMockCustomer(ctrl),
		seq:           seqMocks.NewMockAllocator(ctrl),
		kafka:         kafkaMocks.NewMockClient(ctrl),
		cache:         cacheMocks.NewMockCache(ctrl),
		published:     make(chan struct{}, 1),
	}

	ot := otelMocks.NewOtel()
	publisher := event.New(cfg, f.kafka, ot)

	f.svc = service.New(f.repo, f.bookingRooms, f.cancellations, f.hotel, f.room, f.customer,
		pgMocks.NewTransactor(), f.seq, publisher, f.cache, cfg, ot)

	return f
}

func (f *fixture) expectHotel(totalRooms int) {
	f.hotel.EXPECT().GetTx(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(hotelModel.Hotel{HotelID: "HOT00001", TotalRooms: totalRooms}, nil)
}

// waitPublished blocks until the booking event left the publisher, which sends off the
// request goroutine.
func (f *fixture) waitPublished(t *testing.T) {
	t.Helper()

	select {
	case <-f.published:
	case <-time.After(time.Second):
		t.Fatal("booking event was not published")
	}
}

func (f *fixture) expectInvalidation() {
	f.cache.EXPECT().Clear(gomock.Any(), constant.CachePrefixBooking).Return(nil)
	f.cache.EXPECT().Clear(gomock.Any(), constant.CachePrefixHotels).Return(nil)
	f.cache.EXPECT().Clear(gomock.Any(), constant.CachePrefixCustomers).Return(nil)
}

func bookingRequest(rooms ...string) dto.CreateBookingRequest {
	checkIn, _ := gModel.ParseDate("2025-01-10")
	checkOut, _ := gModel.ParseDate("2025-01-12")
	amount := 300.0

	req := dto.CreateBookingRequest{
		CustomerID:  "CUST00001",
		HotelID:     "HOT00001",
		TotalAmount: &amount,
	}

	for _, number := range rooms {
		req.BookingRooms = append(req.BookingRooms, dto.BookingRoomRequest{
			RoomNumber: number,
			CheckIn:    checkIn,
			CheckOut:   checkOut,
		})
	}

	return req
}

func TestBookingService_Create(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.CreateBookingRequest
		setupMock func(f *fixture)
		wantCode  int
		wantMsg   string
	}{
		{
			name: "books every room at its current price",
			req:  bookingRequest("101", "102"),
			setupMock: func(f *fixture) {
				f.expectHotel(10)
				f.customer.EXPECT().ExistTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil)
				f.seq.EXPECT().Next(gomock.Any(), gomock.Any(), sequence.Booking).Return("BOOK00005", nil)
				f.repo.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ any, booking model.Booking) error {
						assert.Equal(t, "BOOK00005", booking.BookingID)
						assert.Equal(t, model.StatusConfirmed, booking.BookingStatus)

						return nil
					})
				gomock.InOrder(
					f.room.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).
						Return(roomModel.Room{RoomID: "ROOM00001", RoomNumber: "101", PricePerNight: 120, IsAvailable: true}, nil),
					f.room.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).
						Return(roomModel.Room{RoomID: "ROOM00002", RoomNumber: "102", PricePerNight: 180, IsAvailable: true}, nil),
				)
				gomock.InOrder(
					f.seq.EXPECT().Next(gomock.Any(), gomock.Any(), sequence.BookingRoom).Return("BR00001", nil),
					f.seq.EXPECT().Next(gomock.Any(), gomock.Any(), sequence.BookingRoom).Return("BR00002", nil),
				)
				f.bookingRooms.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(2)
				f.room.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ any, fields map[string]any, _ gDto.FilterGroup) error {
						assert.Equal(t, false, fields[roomModel.FieldIsAvailable])

						return nil
					}).Times(2)
				f.expectInvalidation()
				f.kafka.EXPECT().SendMessages(gomock.Any(), "hms.bookings", gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, messages ...kafka.Message) error {
						evt, _ := messages[0].Value.(dto.Event)
						assert.Equal(t, event.TypeBookingCreated, evt.Type)
						assert.Equal(t, []string{"101", "102"}, evt.Rooms)
						f.published <- struct{}{}

						return nil
					})
			},
		},
		{
			name: "hotel not found",
			req:  bookingRequest("101"),
			setupMock: func(f *fixture) {
				f.hotel.EXPECT().GetTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(hotelModel.Hotel{}, nil)
			},
			wantCode: http.StatusNotFound,
			wantMsg:  "Hotel not found",
		},
		{
			name: "customer not found",
			req:  bookingRequest("101"),
			setupMock: func(f *fixture) {
				f.expectHotel(10)
				f.customer.EXPECT().ExistTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)
			},
			wantCode: http.StatusNotFound,
			wantMsg:  "Customer not found",
		},
		{
			name: "more rooms than the hotel has",
			req:  bookingRequest("101", "102", "103"),
			setupMock: func(f *fixture) {
				f.expectHotel(2)
				f.customer.EXPECT().ExistTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil)
			},
			wantCode: http.StatusBadRequest,
			wantMsg:  "Not enough rooms available",
		},
		{
			name: "unknown room",
			req:  bookingRequest("999"),
			setupMock: func(f *fixture) {
				f.expectHotel(10)
				f.customer.EXPECT().ExistTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil)
				f.seq.EXPECT().Next(gomock.Any(), gomock.Any(), sequence.Booking).Return("BOOK00005", nil)
				f.repo.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				f.room.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(roomModel.Room{}, nil)
			},
			wantCode: http.StatusBadRequest,
			wantMsg:  "Room 999 not found in hotel HOT00001",
		},
		{
			name: "second room already booked stops the booking",
			req:  bookingRequest("101", "102"),
			setupMock: func(f *fixture) {
				f.expectHotel(10)
				f.customer.EXPECT().ExistTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil)
				f.seq.EXPECT().Next(gomock.Any(), gomock.Any(), sequence.Booking).Return("BOOK00005", nil)
				f.repo.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				gomock.InOrder(
					f.room.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).
						Return(roomModel.Room{RoomID: "ROOM00001", RoomNumber: "101", PricePerNight: 120, IsAvailable: true}, nil),
					f.room.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).
						Return(roomModel.Room{RoomID: "ROOM00002", RoomNumber: "102", PricePerNight: 180, IsAvailable: false}, nil),
				)
				f.seq.EXPECT().Next(gomock.Any(), gomock.Any(), sequence.BookingRoom).Return("BR00001", nil)
				f.bookingRooms.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				f.room.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			},
			wantCode: http.StatusBadRequest,
			wantMsg:  "Room 102 is already booked.",
		},
		{
			name: "insert error",
			req:  bookingRequest("101"),
			setupMock: func(f *fixture) {
				f.expectHotel(10)
				f.customer.EXPECT().ExistTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil)
				f.seq.EXPECT().Next(gomock.Any(), gomock.Any(), sequence.Booking).Return("BOOK00005", nil)
				f.repo.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("database error"))
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			res, err := f.svc.Create(context.Background(), tt.req)

			if tt.wantCode != 0 {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				if tt.wantMsg != "" {
					assert.Equal(t, tt.wantMsg, failure.Translate(err).Message)
				}

				return
			}

			assert.NoError(t, err)
			f.waitPublished(t)
			assert.Equal(t, "BOOK00005", res.BookingID)
			assert.Len(t, res.BookedRooms, 2)
			assert.Equal(t, 120.0, res.BookedRooms[0].RoomAmount)
			assert.Equal(t, 180.0, res.BookedRooms[1].RoomAmount)
			assert.Equal(t, "BR00002", res.BookedRooms[1].BookingRoomID)
		})
	}
}

func TestBookingService_Cancel(t *testing.T) {
	req := dto.CancelBookingRequest{
		CustomerID:   "CUST00001",
		HotelID:      "HOT00001",
		CancelReason: "Change of plans",
	}

	confirmed := model.Booking{
		BookingID:     "BOOK00005",
		CustomerID:    "CUST00001",
		HotelID:       "HOT00001",
		BookingStatus: model.StatusConfirmed,
		TotalAmount:   300,
	}

	withStatus := func(status string) model.Booking {
		booking := confirmed
		booking.BookingStatus = status

		return booking
	}

	tests := []struct {
		name      string
		setupMock func(f *fixture)
		wantCode  int
		wantMsg   string
	}{
		{
			name: "cancels and releases rooms",
			setupMock: func(f *fixture) {
				f.expectHotel(10)
				f.repo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(confirmed, nil)
				f.repo.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ any, fields map[string]any, _ gDto.FilterGroup) error {
						assert.Equal(t, model.StatusCancelled, fields[model.FieldBookingStatus])

						return nil
					})
				f.seq.EXPECT().Next(gomock.Any(), gomock.Any(), sequence.Cancellation).Return("BOOKCANCEL00002", nil)
				f.cancellations.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ any, cancellation model.Cancellation) error {
						assert.Equal(t, "BOOK00005", cancellation.BookingID)
						assert.Equal(t, 300.0, cancellation.TotalAmount)
						assert.Equal(t, "Change of plans", cancellation.CancelReasons)

						return nil
					})
				f.bookingRooms.EXPECT().GetAllTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]model.Room{{RoomNumber: "101"}, {RoomNumber: "102"}}, nil)
				f.room.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ any, fields map[string]any, filter gDto.FilterGroup) error {
						assert.Equal(t, true, fields[roomModel.FieldIsAvailable])

						where, args := filter.GetWhereClause()
						assert.Contains(t, where, "rooms.hotel_id = :hotel_id")
						assert.Contains(t, where, "rooms.room_number IN (:room_number_0, :room_number_1)")
						assert.Equal(t, "HOT00001", args["hotel_id"])

						return nil
					})
				f.expectInvalidation()
				f.kafka.EXPECT().SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, _ ...kafka.Message) error {
						f.published <- struct{}{}

						return nil
					})
			},
		},
		{
			name: "hotel not found",
			setupMock: func(f *fixture) {
				f.hotel.EXPECT().GetTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(hotelModel.Hotel{}, nil)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name: "booking not found",
			setupMock: func(f *fixture) {
				f.expectHotel(10)
				f.repo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(model.Booking{}, nil)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name: "someone else's booking",
			setupMock: func(f *fixture) {
				f.expectHotel(10)

				booking := confirmed
				booking.CustomerID = "CUST00009"

				f.repo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(booking, nil)
			},
			wantCode: http.StatusForbidden,
			wantMsg:  "You are not authorized to cancel this booking",
		},
		{
			name: "already cancelled",
			setupMock: func(f *fixture) {
				f.expectHotel(10)
				f.repo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(withStatus(model.StatusCancelled), nil)
			},
			wantCode: http.StatusNotFound,
			wantMsg:  "Booking not found or already cancelled",
		},
		{
			name: "completed booking",
			setupMock: func(f *fixture) {
				f.expectHotel(10)
				f.repo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(withStatus(model.StatusCompleted), nil)
			},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "release error rolls back",
			setupMock: func(f *fixture) {
				f.expectHotel(10)
				f.repo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(confirmed, nil)
				f.repo.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				f.seq.EXPECT().Next(gomock.Any(), gomock.Any(), sequence.Cancellation).Return("BOOKCANCEL00002", nil)
				f.cancellations.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				f.bookingRooms.EXPECT().GetAllTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]model.Room{{RoomNumber: "101"}}, nil)
				f.room.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("database error"))
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			res, err := f.svc.Cancel(context.Background(), "BOOK00005", req)

			if tt.wantCode != 0 {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				if tt.wantMsg != "" {
					assert.Equal(t, tt.wantMsg, failure.Translate(err).Message)
				}

				return
			}

			assert.NoError(t, err)
			f.waitPublished(t)
			assert.Equal(t, "BOOKCANCEL00002", res.BookingCancelID)
			assert.Equal(t, "Booking cancelled successfully", res.Message)
		})
	}
}
