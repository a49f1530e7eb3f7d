package model

import (
	"encoding/json"
	"testing"
	"time"
)

func TestValidStatus(t *testing.T) {
	tests := []struct {
		status string
		want   bool
	}{
		{StatusActive, true},
		{StatusExpired, true},
		{StatusPenaltyApplied, true},
		{"", false},
		{"active", false},
		{"Cancelled", false},
	}

	for _, tt := range tests {
		if got := ValidStatus(tt.status); got != tt.want {
			t.Errorf("ValidStatus(%q) = %v, want %v", tt.status, got, tt.want)
		}
	}
}

func TestBooking_Overdue(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		booking Booking
		want    bool
	}{
		{"active past end", Booking{Status: StatusActive, EndTime: now.Add(-time.Minute)}, true},
		{"active before end", Booking{Status: StatusActive, EndTime: now.Add(time.Minute)}, false},
		{"active exactly at end", Booking{Status: StatusActive, EndTime: now}, false},
		{"expired past end", Booking{Status: StatusExpired, EndTime: now.Add(-time.Hour)}, false},
		{"penalty applied past end", Booking{Status: StatusPenaltyApplied, EndTime: now.Add(-time.Hour)}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.booking.Overdue(now); got != tt.want {
				t.Errorf("Overdue() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBooking_WireFormat(t *testing.T) {
	b := Booking{
		ID:        "664af1f2e6a1c2b3d4e5f601",
		User:      "alice",
		Slot:      "A1",
		StartTime: time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC),
		EndTime:   time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		Status:    StatusActive,
	}

	data, err := json.Marshal(b)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	// The dashboard consumes camelCase field names.
	for _, key := range []string{"user", "slot", "startTime", "endTime", "status", "penalty", "paid"} {
		if _, ok := decoded[key]; !ok {
			t.Errorf("expected key %q in JSON output, got %v", key, decoded)
		}
	}
}
