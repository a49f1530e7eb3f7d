package kafka

import (
	"encoding/json"
	"testing"
)

func TestNewEvent(t *testing.T) {
	msg, err := NewEvent(EventBookingExpired, "bookings", "664af1f2e6a1c2b3d4e5f601", map[string]any{
		"penalty": 100,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if msg.Key != "664af1f2e6a1c2b3d4e5f601" {
		t.Errorf("expected the booking ID as partition key, got %q", msg.Key)
	}
	if msg.EventType() != EventBookingExpired {
		t.Errorf("expected event type %q, got %q", EventBookingExpired, msg.EventType())
	}
	if msg.Headers[HeaderEventID] == "" {
		t.Error("expected a generated event ID")
	}
	if msg.Headers[HeaderSource] != "bookings" {
		t.Errorf("unexpected source header: %q", msg.Headers[HeaderSource])
	}

	var payload map[string]any
	if err := json.Unmarshal(msg.Value, &payload); err != nil {
		t.Fatalf("payload is not valid JSON: %v", err)
	}
	if payload["penalty"] != float64(100) {
		t.Errorf("unexpected payload penalty: %v", payload["penalty"])
	}
}

func TestNewEvent_UniqueEventIDs(t *testing.T) {
	first, err := NewEvent(EventBookingPaid, "payments", "id-1", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := NewEvent(EventBookingPaid, "payments", "id-1", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if first.Headers[HeaderEventID] == second.Headers[HeaderEventID] {
		t.Error("expected distinct event IDs")
	}
}
