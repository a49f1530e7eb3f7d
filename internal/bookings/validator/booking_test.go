package validator

import (
	"strings"
	"testing"
	"time"

	"smartparking/pkg/logger"
	"smartparking/pkg/model"
)

func newTestValidator(t *testing.T) *BookingValidator {
	t.Helper()
	log := logger.New(logger.Config{
		Level:     "error",
		Format:    logger.JSON,
		AddSource: false,
		Service:   "test",
	})
	return NewBookingValidator(log)
}

func validBooking() *model.Booking {
	start := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	return &model.Booking{
		User:      "alice",
		Slot:      "A1",
		StartTime: start,
		EndTime:   start.Add(2 * time.Hour),
		Status:    model.StatusActive,
	}
}

func TestValidate_ValidBooking(t *testing.T) {
	v := newTestValidator(t)

	if err := v.Validate(validBooking()); err != nil {
		t.Errorf("unexpected error for a valid booking: %v", err)
	}
}

func TestValidate_RequiredFields(t *testing.T) {
	v := newTestValidator(t)

	tests := []struct {
		name   string
		mutate func(*model.Booking)
	}{
		{"missing user", func(b *model.Booking) { b.User = "" }},
		{"missing slot", func(b *model.Booking) { b.Slot = "" }},
		{"missing start time", func(b *model.Booking) { b.StartTime = time.Time{} }},
		{"missing end time", func(b *model.Booking) { b.EndTime = time.Time{} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := validBooking()
			tt.mutate(b)
			if err := v.Validate(b); err == nil {
				t.Error("expected validation error, got nil")
			}
		})
	}
}

func TestValidate_StatusEnum(t *testing.T) {
	v := newTestValidator(t)

	tests := []struct {
		name    string
		status  string
		wantErr bool
	}{
		{"empty status allowed", "", false},
		{"active", model.StatusActive, false},
		{"expired", model.StatusExpired, false},
		{"penalty applied", model.StatusPenaltyApplied, false},
		{"unknown status", "Cancelled", true},
		{"wrong case", "active", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := validBooking()
			b.Status = tt.status
			err := v.Validate(b)
			if tt.wantErr && err == nil {
				t.Errorf("status %q: expected error, got nil", tt.status)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("status %q: unexpected error: %v", tt.status, err)
			}
		})
	}
}

func TestValidate_EndBeforeStart(t *testing.T) {
	v := newTestValidator(t)

	b := validBooking()
	b.EndTime = b.StartTime.Add(-time.Hour)
	if err := v.Validate(b); err == nil {
		t.Error("expected error when endTime precedes startTime, got nil")
	}

	b = validBooking()
	b.EndTime = b.StartTime
	if err := v.Validate(b); err == nil {
		t.Error("expected error when endTime equals startTime, got nil")
	}
}

func TestValidate_NegativePenalty(t *testing.T) {
	v := newTestValidator(t)

	b := validBooking()
	b.Penalty = -10
	if err := v.Validate(b); err == nil {
		t.Error("expected error for negative penalty, got nil")
	}
}

func TestValidate_InvalidObjectID(t *testing.T) {
	v := newTestValidator(t)

	b := validBooking()
	b.ID = "not-an-object-id"
	if err := v.Validate(b); err == nil {
		t.Error("expected error for malformed ID, got nil")
	}
}

func TestValidatePenaltyRequest(t *testing.T) {
	v := newTestValidator(t)

	tests := []struct {
		name    string
		penalty int64
		wantErr bool
	}{
		{"positive penalty", 50, false},
		{"zero penalty", 0, true},
		{"negative penalty", -1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidatePenaltyRequest(&model.PenaltyRequest{Penalty: tt.penalty})
			if tt.wantErr && err == nil {
				t.Errorf("penalty %d: expected error, got nil", tt.penalty)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("penalty %d: unexpected error: %v", tt.penalty, err)
			}
		})
	}
}

func TestValidationErrors_Message(t *testing.T) {
	errs := ValidationErrors{
		{Field: "User", Message: "User is required"},
		{Field: "Slot", Message: "Slot is required"},
	}

	msg := errs.Error()
	if msg == "" {
		t.Fatal("expected non-empty message")
	}
	for _, want := range []string{"User is required", "Slot is required"} {
		if !strings.Contains(msg, want) {
			t.Errorf("expected message to contain %q, got %q", want, msg)
		}
	}
}
