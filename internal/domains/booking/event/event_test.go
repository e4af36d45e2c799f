package event_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"hms/config"
	"hms/infras/kafka"
	kafkaMocks "hms/infras/kafka/mocks"
	otelMocks "hms/infras/otel/mocks"
	"hms/internal/domains/booking/event"
	"hms/internal/domains/booking/model"
	"hms/internal/domains/booking/model/dto"
)

func TestCreated(t *testing.T) {
	booking := model.Booking{
		BookingID:     "BOOK00001",
		CustomerID:    "CUST00001",
		HotelID:       "HOT00001",
		BookingStatus: model.StatusConfirmed,
		TotalAmount:   250,
	}

	evt := event.Created(booking, []model.Room{{RoomNumber: "101"}, {RoomNumber: "102"}})

	assert.Equal(t, event.TypeBookingCreated, evt.Type)
	assert.NotEmpty(t, evt.EventID)
	assert.Equal(t, "BOOK00001", evt.BookingID)
	assert.Equal(t, []string{"101", "102"}, evt.Rooms)
	assert.Equal(t, 250.0, evt.Amount)
	assert.False(t, evt.OccurredAt.IsZero())

	other := event.Cancelled(booking, nil)
	assert.Equal(t, event.TypeBookingCancelled, other.Type)
	assert.NotEqual(t, evt.EventID, other.EventID)
	assert.Empty(t, other.Rooms)
}

func TestPublisher_Publish(t *testing.T) {
	tests := []struct {
		name      string
		enable    bool
		setupMock func(client *kafkaMocks.MockClient, sent chan struct{})
	}{
		{
			name:   "publishes keyed by booking",
			enable: true,
			setupMock: func(client *kafkaMocks.MockClient, sent chan struct{}) {
				client.EXPECT().SendMessages(gomock.Any(), "hms.bookings", gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, messages ...kafka.Message) error {
						defer close(sent)

						assert.Len(t, messages, 1)
						assert.Equal(t, "BOOK00001", messages[0].Key)
						assert.Equal(t, event.TypeBookingCreated, messages[0].Headers["event_type"])

						return nil
					})
			},
		},
		{
			name:   "send failure is swallowed",
			enable: true,
			setupMock: func(client *kafkaMocks.MockClient, sent chan struct{}) {
				client.EXPECT().SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, _ ...kafka.Message) error {
						close(sent)

						return errors.New("broker down")
					})
			},
		},
		{
			name:   "disabled publisher never touches kafka",
			enable: false,
			setupMock: func(_ *kafkaMocks.MockClient, sent chan struct{}) {
				close(sent)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			client := kafkaMocks.NewMockClient(ctrl)
			sent := make(chan struct{})

			cfg := &config.Config{}
			cfg.Kafka.Enable = tt.enable
			cfg.Kafka.Topic = "hms.bookings"

			tt.setupMock(client, sent)

			publisher := event.New(cfg, client, otelMocks.NewOtel())

			assert.NotPanics(t, func() {
				publisher.Publish(context.Background(), dto.Event{
					BookingID: "BOOK00001",
					Type:      event.TypeBookingCreated,
				})
			})

			select {
			case <-sent:
			case <-time.After(time.Second):
				t.Fatal("event was not sent")
			}
		})
	}
}

func TestPublisher_PublishDoesNotWaitForBroker(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := kafkaMocks.NewMockClient(ctrl)

	release := make(chan struct{})
	sent := make(chan struct{})

	client.EXPECT().SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ string, _ ...kafka.Message) error {
			defer close(sent)

			assert.NoError(t, ctx.Err())
			<-release

			return nil
		})

	cfg := &config.Config{}
	cfg.Kafka.Enable = true
	cfg.Kafka.Topic = "hms.bookings"

	publisher := event.New(cfg, client, otelMocks.NewOtel())

	ctx, cancel := context.WithCancel(context.Background())
	returned := make(chan struct{})

	go func() {
		publisher.Publish(ctx, dto.Event{BookingID: "BOOK00001", Type: event.TypeBookingCancelled})
		close(returned)
	}()

	select {
	case <-returned:
	case <-time.After(time.Second):
		t.Fatal("Publish blocked on an unresponsive broker")
	}

	// the request context ending must not abort the send
	cancel()
	close(release)

	select {
	case <-sent:
	case <-time.After(time.Second):
		t.Fatal("event was not sent")
	}
}
