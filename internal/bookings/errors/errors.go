package errors

import "errors"

var (
	ErrNotFound = errors.New("booking not found")

	ErrInvalidID = errors.New("invalid booking ID format")

	// ErrNotActive is returned when a status transition requires the booking
	// to still be Active and it no longer is.
	ErrNotActive = errors.New("booking is not active")
)
