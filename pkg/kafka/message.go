package kafka

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Event types published on the booking lifecycle topic.
const (
	EventBookingExpired = "booking.expired"
	EventBookingPaid    = "booking.paid"
)

// Header keys attached to every message.
const (
	HeaderEventID   = "event-id"
	HeaderEventType = "event-type"
	HeaderSource    = "source"
	HeaderTimestamp = "timestamp"
)

// Message is a lifecycle event keyed by booking ID so all events for one
// booking land on the same partition, in order.
type Message struct {
	Key       string
	Value     []byte
	Headers   map[string]string
	Timestamp time.Time
}

// NewEvent builds a message with a generated event ID and a JSON-encoded
// payload.
func NewEvent(eventType, source, bookingID string, payload any) (Message, error) {
	value, err := json.Marshal(payload)
	if err != nil {
		return Message{}, err
	}

	now := time.Now().UTC()
	return Message{
		Key:   bookingID,
		Value: value,
		Headers: map[string]string{
			HeaderEventID:   uuid.NewString(),
			HeaderEventType: eventType,
			HeaderSource:    source,
			HeaderTimestamp: now.Format(time.RFC3339),
		},
		Timestamp: now,
	}, nil
}

func (m *Message) EventType() string {
	return m.Headers[HeaderEventType]
}
