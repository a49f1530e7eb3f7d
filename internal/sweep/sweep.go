// Package sweep implements the recurring penalty assessment: overdue Active
// bookings are expired and charged a flat rate for every started hour past
// their end time.
package sweep

import (
	"context"
	"fmt"
	"time"

	"smartparking/pkg/kafka"
	"smartparking/pkg/logger"
	"smartparking/pkg/model"
)

// BookingStore is the slice of the repository the sweep needs.
type BookingStore interface {
	FindOverdue(ctx context.Context, now time.Time) ([]*model.Booking, error)
	ExpireWithPenalty(ctx context.Context, id string, penalty int64) (bool, error)
}

type Config struct {
	Store       BookingStore
	Publisher   kafka.Publisher // optional; nil disables events
	Log         *logger.Logger
	RatePerHour int64
	Interval    time.Duration
	TickTimeout time.Duration
	Now         func() time.Time // injectable clock for tests
}

type Sweeper struct {
	store       BookingStore
	publisher   kafka.Publisher
	log         *logger.Logger
	ratePerHour int64
	interval    time.Duration
	tickTimeout time.Duration
	now         func() time.Time
}

func NewSweeper(cfg Config) *Sweeper {
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &Sweeper{
		store:       cfg.Store,
		publisher:   cfg.Publisher,
		log:         cfg.Log,
		ratePerHour: cfg.RatePerHour,
		interval:    cfg.Interval,
		tickTimeout: cfg.TickTimeout,
		now:         cfg.Now,
	}
}

// Result reports what a single pass did.
type Result struct {
	Scanned int // overdue bookings returned by the query
	Expired int // transitions performed by this pass
	Skipped int // lost the conditional update to a concurrent writer
	Failed  int // per-booking update failures, logged and skipped
}

// Run executes passes on a fixed interval until ctx is cancelled. Passes run
// sequentially on this goroutine: a slow pass delays the next tick instead of
// overlapping it, and each pass is bounded by its own timeout so a stalled
// store cannot suppress future ticks.
func (s *Sweeper) Run(ctx context.Context) {
	s.log.Info("Penalty sweep started",
		"interval", s.interval,
		"rate_per_hour", s.ratePerHour,
	)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.log.Info("Penalty sweep stopped")
			return
		case <-ticker.C:
			tickCtx, cancel := context.WithTimeout(ctx, s.tickTimeout)
			result, err := s.Assess(tickCtx)
			cancel()

			if err != nil {
				s.log.Error("Penalty sweep pass failed", "error", err)
				continue
			}
			if result.Scanned > 0 {
				s.log.Info("Penalty sweep pass completed",
					"scanned", result.Scanned,
					"expired", result.Expired,
					"skipped", result.Skipped,
					"failed", result.Failed,
				)
			}
		}
	}
}

// Assess performs one pass: query overdue Active bookings, compute each
// penalty from a single captured now, and expire them with a conditional
// update so a racing pass charges at most once. A failure on one booking is
// logged and does not block the rest.
func (s *Sweeper) Assess(ctx context.Context) (Result, error) {
	now := s.now()

	overdue, err := s.store.FindOverdue(ctx, now)
	if err != nil {
		return Result{}, fmt.Errorf("overdue query failed: %w", err)
	}

	result := Result{Scanned: len(overdue)}
	for _, booking := range overdue {
		amount := PenaltyFor(now.Sub(booking.EndTime), s.ratePerHour)

		applied, err := s.store.ExpireWithPenalty(ctx, booking.ID, amount)
		if err != nil {
			result.Failed++
			s.log.Error("Failed to expire overdue booking",
				"id", booking.ID,
				"slot", booking.Slot,
				"error", err,
			)
			continue
		}
		if !applied {
			// Another writer transitioned the booking between query and update.
			result.Skipped++
			continue
		}

		result.Expired++
		s.log.Info("Penalty applied",
			"id", booking.ID,
			"user", booking.User,
			"slot", booking.Slot,
			"penalty", amount,
		)
		s.publishExpired(ctx, booking, amount)
	}

	return result, nil
}

func (s *Sweeper) publishExpired(ctx context.Context, booking *model.Booking, amount int64) {
	if s.publisher == nil {
		return
	}

	msg, err := kafka.NewEvent(kafka.EventBookingExpired, "bookings", booking.ID, map[string]any{
		"booking_id": booking.ID,
		"user":       booking.User,
		"slot":       booking.Slot,
		"penalty":    amount,
	})
	if err != nil {
		s.log.Warn("Failed to build expiry event", "id", booking.ID, "error", err)
		return
	}

	if err := s.publisher.Publish(ctx, msg); err != nil {
		s.log.Warn("Failed to publish expiry event", "id", booking.ID, "error", err)
	}
}

// PenaltyFor converts an overdue duration to a charge. Rounding is always
// upward: one second past the hour boundary costs the next full hour.
func PenaltyFor(overdue time.Duration, ratePerHour int64) int64 {
	if overdue <= 0 {
		return 0
	}
	hours := int64((overdue + time.Hour - 1) / time.Hour)
	return hours * ratePerHour
}
