// Package event announces booking state changes on the booking topic.
package event

import (
	"context"
	"hms/config"
	"hms/infras/kafka"
	"hms/infras/otel"
	"hms/internal/domains/booking/model"
	"hms/internal/domains/booking/model/dto"
	"hms/shared/constant"
	"hms/shared/timezone"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	TypeBookingCreated   = "booking.created"
	TypeBookingCancelled = "booking.cancelled"

	headerEventType = "event_type"

	publishTimeout = 15 * time.Second
)

type Publisher interface {
	// Publish never fails or blocks the caller; the booking is already committed when it runs.
	Publish(ctx context.Context, event dto.Event)
}

type kafkaPublisher struct {
	client kafka.Client
	topic  string
	otel   otel.Otel
}

type noopPublisher struct{}

// New returns a publisher writing to KAFKA_TOPIC, or one that drops every event when
// KAFKA_ENABLE is off.
func New(cfg *config.Config, client kafka.Client, otel otel.Otel) Publisher {
	if !cfg.Kafka.Enable {
		return noopPublisher{}
	}

	return &kafkaPublisher{
		client: client,
		topic:  cfg.Kafka.Topic,
		otel:   otel,
	}
}

func (p *kafkaPublisher) Publish(ctx context.Context, event dto.Event) {
	go func() {
		c, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
		defer cancel()

		p.send(c, event)
	}()
}

func (p *kafkaPublisher) send(ctx context.Context, event dto.Event) {
	ctx, scope := p.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+"."+event.Type)
	defer scope.End()

	scope.SetAttributes(map[string]any{
		"event_id":   event.EventID,
		"booking_id": event.BookingID,
	})

	err := p.client.SendMessages(ctx, p.topic, kafka.Message{
		Key:     event.BookingID,
		Value:   event,
		Headers: map[string]string{headerEventType: event.Type},
	})
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("booking_id", event.BookingID).Str("type", event.Type).Msg("failed to publish booking event")
	}
}

func (noopPublisher) Publish(_ context.Context, event dto.Event) {
	log.Debug().Str("booking_id", event.BookingID).Str("type", event.Type).Msg("event publishing disabled")
}

func Created(booking model.Booking, rooms []model.Room) dto.Event {
	return newEvent(TypeBookingCreated, booking, roomNumbers(rooms))
}

func Cancelled(booking model.Booking, rooms []model.Room) dto.Event {
	return newEvent(TypeBookingCancelled, booking, roomNumbers(rooms))
}

func newEvent(eventType string, booking model.Booking, rooms []string) dto.Event {
	return dto.Event{
		EventID:    uuid.NewString(),
		Type:       eventType,
		BookingID:  booking.BookingID,
		HotelID:    booking.HotelID,
		CustomerID: booking.CustomerID,
		Status:     booking.BookingStatus,
		Rooms:      rooms,
		Amount:     booking.TotalAmount,
		OccurredAt: timezone.Now(),
	}
}

func roomNumbers(rooms []model.Room) []string {
	numbers := make([]string, len(rooms))
	for idx, room := range rooms {
		numbers[idx] = room.RoomNumber
	}

	return numbers
}
