package model

import (
	"time"
)

// Booking statuses. Transitions are forward-only: Active -> Expired via the
// penalty sweep, Active -> Penalty Applied via explicit admin action. No
// transition leads back to Active.
const (
	StatusActive         = "Active"
	StatusExpired        = "Expired"
	StatusPenaltyApplied = "Penalty Applied"
)

func ValidStatus(s string) bool {
	switch s {
	case StatusActive, StatusExpired, StatusPenaltyApplied:
		return true
	}
	return false
}

// Booking is a reservation of a parking slot for a user over a time interval.
// Field names match the original wire format consumed by the dashboard.
type Booking struct {
	ID        string    `json:"id,omitempty" bson:"_id,omitempty" validate:"omitempty,mongodb"`
	User      string    `json:"user" bson:"user" validate:"required,min=1,max=100"`
	Slot      string    `json:"slot" bson:"slot" validate:"required,min=1,max=20"`
	StartTime time.Time `json:"startTime" bson:"startTime" validate:"required"`
	EndTime   time.Time `json:"endTime" bson:"endTime" validate:"required"`
	Status    string    `json:"status" bson:"status" validate:"omitempty,booking_status"`
	Penalty   int64     `json:"penalty" bson:"penalty" validate:"gte=0"`
	Paid      bool      `json:"paid" bson:"paid"`
	CreatedAt time.Time `json:"createdAt,omitempty" bson:"createdAt,omitempty"`
}

// Overdue reports whether the booking's end time has passed while it is
// still Active.
func (b *Booking) Overdue(now time.Time) bool {
	return b.Status == StatusActive && b.EndTime.Before(now)
}

// PenaltyRequest is the body of PUT /apply-penalty/:id.
type PenaltyRequest struct {
	Penalty int64 `json:"penalty" validate:"gt=0"`
}

// CheckoutRequest is the body of POST /api/payment.
type CheckoutRequest struct {
	BookingID string `json:"bookingId" validate:"required,mongodb"`
	Amount    int64  `json:"amount" validate:"gt=0"`
}

// PaymentConfirmation is the body of POST /api/payment/success.
type PaymentConfirmation struct {
	BookingID string `json:"bookingId" validate:"required,mongodb"`
}
