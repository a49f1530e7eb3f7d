package service

import (
	"context"

	bookingservice "smartparking/internal/bookings/service"
	"smartparking/pkg/config"
	apperrors "smartparking/pkg/errors"
	"smartparking/pkg/kafka"
	"smartparking/pkg/model"
)

// CheckoutProvider creates a hosted checkout session and returns its
// redirect URL. Amount is in whole currency units.
type CheckoutProvider interface {
	CreateCheckoutSession(ctx context.Context, bookingID string, amount int64) (string, error)
}

type PaymentService interface {
	CreateCheckout(ctx context.Context, req *model.CheckoutRequest) (string, error)
	ConfirmPayment(ctx context.Context, req *model.PaymentConfirmation) error
}

type paymentService struct {
	bookings  bookingservice.BookingService
	provider  CheckoutProvider
	publisher kafka.Publisher
	cfg       *config.Config
}

func NewPaymentService(
	bookings bookingservice.BookingService,
	provider CheckoutProvider,
	publisher kafka.Publisher,
	cfg *config.Config,
) PaymentService {
	return &paymentService{
		bookings:  bookings,
		provider:  provider,
		publisher: publisher,
		cfg:       cfg,
	}
}

func (s *paymentService) CreateCheckout(ctx context.Context, req *model.CheckoutRequest) (string, error) {
	if req.BookingID == "" {
		return "", apperrors.InvalidInput("bookingId is required")
	}
	if req.Amount <= 0 {
		return "", apperrors.InvalidInput("amount must be positive")
	}
	if s.provider == nil {
		return "", apperrors.Unavailable("Payment provider")
	}

	// The session references a real booking; a missing one surfaces as 404
	// here rather than a dangling checkout.
	if _, err := s.bookings.GetByID(ctx, req.BookingID); err != nil {
		return "", err
	}

	url, err := s.provider.CreateCheckoutSession(ctx, req.BookingID, req.Amount)
	if err != nil {
		s.cfg.Log.Error("Checkout session creation failed",
			"booking_id", req.BookingID,
			"amount", req.Amount,
			"error", err,
		)
		return "", apperrors.Upstream("Payment provider", err)
	}

	s.cfg.Log.Info("Checkout session created",
		"booking_id", req.BookingID,
		"amount", req.Amount,
	)
	return url, nil
}

func (s *paymentService) ConfirmPayment(ctx context.Context, req *model.PaymentConfirmation) error {
	if req.BookingID == "" {
		return apperrors.InvalidInput("bookingId is required")
	}

	if err := s.bookings.MarkPaid(ctx, req.BookingID); err != nil {
		return err
	}

	s.publishPaid(ctx, req.BookingID)
	return nil
}

func (s *paymentService) publishPaid(ctx context.Context, bookingID string) {
	if s.publisher == nil {
		return
	}

	msg, err := kafka.NewEvent(kafka.EventBookingPaid, "payments", bookingID, map[string]any{
		"booking_id": bookingID,
	})
	if err != nil {
		s.cfg.Log.Warn("Failed to build payment event", "booking_id", bookingID, "error", err)
		return
	}

	if err := s.publisher.Publish(ctx, msg); err != nil {
		s.cfg.Log.Warn("Failed to publish payment event", "booking_id", bookingID, "error", err)
	}
}
