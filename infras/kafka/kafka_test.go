package kafka_test

import (
	"encoding/json"
	"hms/infras/kafka"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMessage_ToKafkaMessage(t *testing.T) {
	msg := kafka.Message{
		Key:     "BOOK00001",
		Value:   map[string]any{"booking_id": "BOOK00001", "status": "Confirmed"},
		Headers: map[string]string{"event": "booking.created"},
	}

	kafkaMsg, err := msg.ToKafkaMessage()

	assert.NoError(t, err)
	assert.Equal(t, []byte("BOOK00001"), kafkaMsg.Key)
	assert.JSONEq(t, `{"booking_id":"BOOK00001","status":"Confirmed"}`, string(kafkaMsg.Value))
	assert.Len(t, kafkaMsg.Headers, 1)
	assert.Equal(t, "event", kafkaMsg.Headers[0].Key)
	assert.Equal(t, []byte("booking.created"), kafkaMsg.Headers[0].Value)
}

func TestMessage_ToKafkaMessageInvalid(t *testing.T) {
	msg := kafka.Message{Key: "k", Value: make(chan int)}

	_, err := msg.ToKafkaMessage()

	var syntaxErr *json.UnsupportedTypeError
	assert.ErrorAs(t, err, &syntaxErr)
}
