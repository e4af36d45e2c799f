package service_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"hms/config"
	otelMocks "hms/infras/otel/mocks"
	pgMocks "hms/infras/postgres/mocks"
	bookingMocks "hms/internal/domains/booking/mocks"
	bookingModel "hms/internal/domains/booking/model"
	customerMocks "hms/internal/domains/customer/mocks"
	"hms/internal/domains/customer/model/dto"
	"hms/internal/domains/customer/service"
	"hms/shared/cache"
	cacheMocks "hms/shared/cache/mocks"
	"hms/shared/constant"
	gDto "hms/shared/dto"
	"hms/shared/failure"
	"hms/shared/sequence"
	seqMocks "hms/shared/sequence/mocks"
)

type fixture struct {
	repo         *customerMocks.MockCustomer
	bookings     *bookingMocks.MockBooking
	bookingRooms *bookingMocks.MockBookingRoom
	seq          *seqMocks.MockAllocator
	cache        *cacheMocks.MockCache
	svc          service.Customer
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)

	cfg := &config.Config{}
	cfg.Cache.TTL = 300
	cfg.App.Listing.PageSize = 10

	f := &fixture{
		repo:         customerMocks.NewMockCustomer(ctrl),
		bookings:     bookingMocks.NewMockBooking(ctrl),
		bookingRooms: bookingMocks.NewMockBookingRoom(ctrl),
		seq:          seqMocks.NewMockAllocator(ctrl),
		cache:        cacheMocks.NewMockCache(ctrl),
	}

	f.svc = service.New(f.repo, f.bookings, f.bookingRooms, pgMocks.NewTransactor(), f.seq, f.cache, cfg, otelMocks.NewOtel())

	return f
}

func TestCustomerService_Create(t *testing.T) {
	req := dto.CreateCustomerRequest{
		FullName: "Jane Doe",
		Email:    "jane@example.com",
		Phone:    "+15550100",
		City:     "Lisbon",
		Country:  "Portugal",
	}

	tests := []struct {
		name      string
		setupMock func(f *fixture)
		wantCode  int
	}{
		{
			name: "success",
			setupMock: func(f *fixture) {
				f.repo.EXPECT().ExistTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)
				f.seq.EXPECT().Next(gomock.Any(), gomock.Any(), sequence.Customer).Return("CUST00003", nil)
				f.repo.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				f.cache.EXPECT().Clear(gomock.Any(), constant.CachePrefixCustomers).Return(nil)
			},
		},
		{
			name: "duplicate email",
			setupMock: func(f *fixture) {
				f.repo.EXPECT().ExistTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil)
			},
			wantCode: http.StatusConflict,
		},
		{
			name: "allocator error",
			setupMock: func(f *fixture) {
				f.repo.EXPECT().ExistTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)
				f.seq.EXPECT().Next(gomock.Any(), gomock.Any(), sequence.Customer).Return("", errors.New("database error"))
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			res, err := f.svc.Create(context.Background(), req)

			if tt.wantCode != 0 {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, "CUST00003", res.CustomerID)
		})
	}
}

func TestCustomerService_GetBookingHistory(t *testing.T) {
	cacheMiss := fmt.Errorf("failed to get cache value: %w", cache.Nil)

	tests := []struct {
		name          string
		page          int
		generationErr error
		setupMock     func(f *fixture)
		check     func(t *testing.T, res dto.GetBookingHistoryResponse)
		wantCode  int
	}{
		{
			name: "cache hit",
			page: 1,
			setupMock: func(f *fixture) {
				f.cache.EXPECT().Get(gomock.Any(), "customers:4:history:CUST00001:page=1", gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, value any) error {
						res, _ := value.(*dto.GetBookingHistoryResponse)
						res.TotalBookings = 7

						return nil
					})
			},
			check: func(t *testing.T, res dto.GetBookingHistoryResponse) {
				t.Helper()
				assert.Equal(t, 7, res.TotalBookings)
			},
		},
		{
			name: "customer not found",
			page: 1,
			setupMock: func(f *fixture) {
				f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(cacheMiss)
				f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name: "bookings grouped with their rooms",
			page: 0,
			setupMock: func(f *fixture) {
				f.cache.EXPECT().Get(gomock.Any(), "customers:4:history:CUST00001:page=1", gomock.Any()).Return(cacheMiss)
				f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				f.bookings.EXPECT().Count(gomock.Any(), gomock.Any()).Return(12, nil)
				f.bookings.EXPECT().GetAllDetails(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, params gDto.QueryParams, _ gDto.FilterGroup) ([]bookingModel.Detail, error) {
						assert.Equal(t, 1, params.Page)
						assert.Equal(t, 10, params.Limit)
						assert.Equal(t, "bookings.created_at", params.SortBy)
						assert.Equal(t, gDto.SortDirDesc, params.SortDir)

						return []bookingModel.Detail{
							{Booking: bookingModel.Booking{BookingID: "BOOK00002", HotelID: "HOT00001"}, HotelName: "Sea View"},
							{Booking: bookingModel.Booking{BookingID: "BOOK00001", HotelID: "HOT00002"}, HotelName: "Hill Top"},
						}, nil
					})
				f.bookingRooms.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]bookingModel.Room{
					{BookingRoomID: "BR00001", BookingID: "BOOK00001", RoomNumber: "201"},
					{BookingRoomID: "BR00002", BookingID: "BOOK00002", RoomNumber: "101"},
					{BookingRoomID: "BR00003", BookingID: "BOOK00002", RoomNumber: "102"},
				}, nil)
				f.cache.EXPECT().Save(gomock.Any(), "customers:4:history:CUST00001:page=1", gomock.Any(), 300).Return(nil)
			},
			check: func(t *testing.T, res dto.GetBookingHistoryResponse) {
				t.Helper()
				assert.Equal(t, 12, res.TotalBookings)
				assert.Equal(t, 2, res.TotalPages)
				assert.Len(t, res.Data, 2)
				assert.Equal(t, "Sea View", res.Data[0].HotelName)
				assert.Len(t, res.Data[0].BookingRooms, 2)
				assert.Len(t, res.Data[1].BookingRooms, 1)
			},
		},
		{
			name: "no bookings",
			page: 1,
			setupMock: func(f *fixture) {
				f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(cacheMiss)
				f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				f.bookings.EXPECT().Count(gomock.Any(), gomock.Any()).Return(0, nil)
				f.bookings.EXPECT().GetAllDetails(gomock.Any(), gomock.Any(), gomock.Any()).Return([]bookingModel.Detail{}, nil)
				f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			},
			check: func(t *testing.T, res dto.GetBookingHistoryResponse) {
				t.Helper()
				assert.Equal(t, "No bookings found", res.Message)
				assert.Empty(t, res.Data)
			},
		},
		{
			name:          "cache generation unavailable",
			page:          1,
			generationErr: errors.New("redis down"),
			setupMock: func(f *fixture) {
				f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				f.bookings.EXPECT().Count(gomock.Any(), gomock.Any()).Return(0, nil)
				f.bookings.EXPECT().GetAllDetails(gomock.Any(), gomock.Any(), gomock.Any()).Return([]bookingModel.Detail{}, nil)
			},
			check: func(t *testing.T, res dto.GetBookingHistoryResponse) {
				t.Helper()
				assert.Equal(t, "No bookings found", res.Message)
			},
		},
		{
			name: "count error",
			page: 1,
			setupMock: func(f *fixture) {
				f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(cacheMiss)
				f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				f.bookings.EXPECT().Count(gomock.Any(), gomock.Any()).Return(0, errors.New("database error"))
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.cache.EXPECT().Generation(gomock.Any(), constant.CachePrefixCustomers).Return(int64(4), tt.generationErr)
			tt.setupMock(f)

			res, err := f.svc.GetBookingHistory(context.Background(), "CUST00001", tt.page)

			if tt.wantCode != 0 {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			tt.check(t, res)
		})
	}
}
