package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/julienschmidt/httprouter"

	apperrors "smartparking/pkg/errors"
	"smartparking/pkg/logger"
	"smartparking/pkg/model"
)

type mockPaymentService struct {
	createCheckoutFunc func(ctx context.Context, req *model.CheckoutRequest) (string, error)
	confirmFunc        func(ctx context.Context, req *model.PaymentConfirmation) error
}

func (m *mockPaymentService) CreateCheckout(ctx context.Context, req *model.CheckoutRequest) (string, error) {
	if m.createCheckoutFunc != nil {
		return m.createCheckoutFunc(ctx, req)
	}
	return "https://checkout.example.com/session", nil
}

func (m *mockPaymentService) ConfirmPayment(ctx context.Context, req *model.PaymentConfirmation) error {
	if m.confirmFunc != nil {
		return m.confirmFunc(ctx, req)
	}
	return nil
}

func newTestRouter(service *mockPaymentService) *httprouter.Router {
	log := logger.New(logger.Config{
		Level:     "error",
		Format:    logger.JSON,
		AddSource: false,
		Service:   "test",
	})
	router := httprouter.New()
	NewPaymentHandler(service, log).RegisterRoutes(router)
	return router
}

func TestCreateCheckout_ReturnsURL(t *testing.T) {
	router := newTestRouter(&mockPaymentService{
		createCheckoutFunc: func(ctx context.Context, req *model.CheckoutRequest) (string, error) {
			if req.BookingID != "664af1f2e6a1c2b3d4e5f601" {
				t.Errorf("unexpected booking id: %q", req.BookingID)
			}
			if req.Amount != 150 {
				t.Errorf("unexpected amount: %d", req.Amount)
			}
			return "https://checkout.example.com/cs_123", nil
		},
	})

	body := `{"bookingId": "664af1f2e6a1c2b3d4e5f601", "amount": 150}`
	req := httptest.NewRequest(http.MethodPost, "/api/payment", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp["url"] != "https://checkout.example.com/cs_123" {
		t.Errorf("unexpected url: %q", resp["url"])
	}
}

func TestCreateCheckout_MalformedBody(t *testing.T) {
	router := newTestRouter(&mockPaymentService{})

	req := httptest.NewRequest(http.MethodPost, "/api/payment", strings.NewReader("{"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}

func TestCreateCheckout_ProviderUnavailable(t *testing.T) {
	router := newTestRouter(&mockPaymentService{
		createCheckoutFunc: func(ctx context.Context, req *model.CheckoutRequest) (string, error) {
			return "", apperrors.Unavailable("Payment provider")
		},
	})

	body := `{"bookingId": "664af1f2e6a1c2b3d4e5f601", "amount": 150}`
	req := httptest.NewRequest(http.MethodPost, "/api/payment", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("expected 503, got %d", rec.Code)
	}
}

func TestConfirmPayment_Success(t *testing.T) {
	var confirmedID string
	router := newTestRouter(&mockPaymentService{
		confirmFunc: func(ctx context.Context, req *model.PaymentConfirmation) error {
			confirmedID = req.BookingID
			return nil
		},
	})

	body := `{"bookingId": "664af1f2e6a1c2b3d4e5f601"}`
	req := httptest.NewRequest(http.MethodPost, "/api/payment/success", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if confirmedID != "664af1f2e6a1c2b3d4e5f601" {
		t.Errorf("unexpected booking id: %q", confirmedID)
	}

	var resp struct {
		Data map[string]string `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Data["message"] != "Payment recorded successfully" {
		t.Errorf("unexpected message: %q", resp.Data["message"])
	}
}

func TestConfirmPayment_UnknownBooking(t *testing.T) {
	router := newTestRouter(&mockPaymentService{
		confirmFunc: func(ctx context.Context, req *model.PaymentConfirmation) error {
			return apperrors.NotFoundWithID("Booking", req.BookingID)
		},
	})

	body := `{"bookingId": "664af1f2e6a1c2b3d4e5f601"}`
	req := httptest.NewRequest(http.MethodPost, "/api/payment/success", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}
