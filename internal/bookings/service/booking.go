package service

import (
	"context"
	"errors"
	"sync"

	bookingserrors "smartparking/internal/bookings/errors"
	"smartparking/internal/bookings/repository"
	"smartparking/internal/bookings/validator"
	"smartparking/pkg/config"
	apperrors "smartparking/pkg/errors"
	"smartparking/pkg/model"
	"smartparking/pkg/sanitizer"
)

type BookingService interface {
	Create(ctx context.Context, booking *model.Booking) error
	GetByID(ctx context.Context, id string) (*model.Booking, error)
	GetAll(ctx context.Context, limit int, offset int64) ([]*model.Booking, int64, error)
	Delete(ctx context.Context, id string) error
	ApplyPenalty(ctx context.Context, id string, req *model.PenaltyRequest) (*model.Booking, error)
	MarkPaid(ctx context.Context, id string) error
}

type bookingService struct {
	repo      repository.BookingRepository
	validator *validator.BookingValidator
	cfg       *config.Config
}

func NewBookingService(
	repo repository.BookingRepository,
	validator *validator.BookingValidator,
	cfg *config.Config,
) BookingService {
	return &bookingService{
		repo:      repo,
		validator: validator,
		cfg:       cfg,
	}
}

func (s *bookingService) Create(ctx context.Context, booking *model.Booking) error {
	s.applyDefaults(booking)
	s.sanitize(booking)

	if err := s.validator.Validate(booking); err != nil {
		s.cfg.Log.Warn("Booking validation failed", "error", err)
		return apperrors.Validation("Booking validation failed", map[string]any{"error": err.Error()})
	}

	if err := s.repo.Create(ctx, booking); err != nil {
		s.cfg.Log.Error("Failed to create booking", "error", err)
		return apperrors.Internal("Failed to create booking", err)
	}

	s.cfg.Log.Info("Booking created",
		"id", booking.ID,
		"user", booking.User,
		"slot", booking.Slot,
		"start_time", booking.StartTime,
		"end_time", booking.EndTime,
	)
	return nil
}

func (s *bookingService) GetByID(ctx context.Context, id string) (*model.Booking, error) {
	if id == "" {
		return nil, apperrors.InvalidInput("Booking ID cannot be empty")
	}

	booking, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, s.translateRepoError(err, id, "Failed to retrieve booking")
	}

	return booking, nil
}

func (s *bookingService) GetAll(ctx context.Context, limit int, offset int64) ([]*model.Booking, int64, error) {
	var count int64
	var bookings []*model.Booking
	var errCount, errFind error
	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		count, errCount = s.repo.Count(ctx)
		if errCount != nil {
			s.cfg.Log.Error("Failed to count bookings", "error", errCount)
			errCount = apperrors.Internal("Failed to count bookings", errCount)
		}
	}()

	go func() {
		defer wg.Done()
		bookings, errFind = s.repo.FindAll(ctx, limit, offset)
		if errFind != nil {
			s.cfg.Log.Error("Failed to list bookings", "error", errFind)
			errFind = apperrors.Internal("Failed to retrieve bookings", errFind)
		}
	}()

	wg.Wait()
	if errCount != nil {
		return nil, 0, errCount
	}
	if errFind != nil {
		return nil, 0, errFind
	}

	return bookings, count, nil
}

func (s *bookingService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return apperrors.InvalidInput("Booking ID cannot be empty")
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return s.translateRepoError(err, id, "Failed to delete booking")
	}

	s.cfg.Log.Info("Booking cancelled", "id", id)
	return nil
}

func (s *bookingService) ApplyPenalty(ctx context.Context, id string, req *model.PenaltyRequest) (*model.Booking, error) {
	if id == "" {
		return nil, apperrors.InvalidInput("Booking ID cannot be empty")
	}

	if err := s.validator.ValidatePenaltyRequest(req); err != nil {
		s.cfg.Log.Warn("Penalty request validation failed", "id", id, "error", err)
		return nil, apperrors.Validation("Invalid penalty request", map[string]any{"error": err.Error()})
	}

	booking, err := s.repo.ApplyPenalty(ctx, id, req.Penalty)
	if err != nil {
		if errors.Is(err, bookingserrors.ErrNotActive) {
			return nil, apperrors.Conflict("Booking is no longer active; penalties apply to active bookings only")
		}
		return nil, s.translateRepoError(err, id, "Failed to apply penalty")
	}

	s.cfg.Log.Info("Penalty applied by admin",
		"id", id,
		"user", booking.User,
		"slot", booking.Slot,
		"penalty", booking.Penalty,
	)
	return booking, nil
}

func (s *bookingService) MarkPaid(ctx context.Context, id string) error {
	if id == "" {
		return apperrors.InvalidInput("Booking ID cannot be empty")
	}

	if err := s.repo.MarkPaid(ctx, id); err != nil {
		return s.translateRepoError(err, id, "Failed to record payment")
	}

	s.cfg.Log.Info("Booking marked paid", "id", id)
	return nil
}

// --- Helpers ---

func (s *bookingService) applyDefaults(b *model.Booking) {
	if b.Status == "" {
		b.Status = model.StatusActive
	}
	// New bookings always start unpenalized and unpaid regardless of what the
	// client sent.
	b.Penalty = 0
	b.Paid = false
}

func (s *bookingService) sanitize(b *model.Booking) {
	b.User = sanitizer.SanitizeUser(b.User)
	b.Slot = sanitizer.SanitizeSlot(b.Slot)
}

func (s *bookingService) translateRepoError(err error, id, internalMsg string) error {
	if errors.Is(err, bookingserrors.ErrNotFound) {
		return apperrors.NotFoundWithID("Booking", id)
	}
	if errors.Is(err, bookingserrors.ErrInvalidID) {
		return apperrors.InvalidInput("Invalid booking ID format")
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return apperrors.Timeout("Booking store did not respond in time")
	}
	return apperrors.Internal(internalMsg, err)
}
