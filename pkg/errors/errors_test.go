package errors

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"
)

func TestConstructorsMapToHTTPStatus(t *testing.T) {
	tests := []struct {
		name       string
		err        *AppError
		wantCode   string
		wantStatus int
	}{
		{"not found with id", NotFoundWithID("Booking", "abc"), CodeNotFound, http.StatusNotFound},
		{"validation", Validation("bad input", nil), CodeValidation, http.StatusUnprocessableEntity},
		{"invalid input", InvalidInput("bad id"), CodeInvalidInput, http.StatusBadRequest},
		{"conflict", Conflict("already expired"), CodeConflict, http.StatusConflict},
		{"internal", Internal("boom", nil), CodeInternal, http.StatusInternalServerError},
		{"upstream", Upstream("Stripe", fmt.Errorf("api error")), CodeUpstream, http.StatusBadGateway},
		{"timeout", Timeout("too slow"), CodeTimeout, http.StatusGatewayTimeout},
		{"unavailable", Unavailable("Payment provider"), CodeUnavailable, http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Code != tt.wantCode {
				t.Errorf("code = %q, want %q", tt.err.Code, tt.wantCode)
			}
			if tt.err.StatusCode() != tt.wantStatus {
				t.Errorf("status = %d, want %d", tt.err.StatusCode(), tt.wantStatus)
			}
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	cause := fmt.Errorf("connection refused")
	err := Internal("db write failed", cause)

	if !errors.Is(err, cause) {
		t.Error("expected errors.Is to find the wrapped cause")
	}
}

func TestAppError_ErrorIncludesCause(t *testing.T) {
	err := Upstream("Stripe", fmt.Errorf("invalid api key"))

	msg := err.Error()
	for _, want := range []string{CodeUpstream, "invalid api key"} {
		if !strings.Contains(msg, want) {
			t.Errorf("expected %q in %q", want, msg)
		}
	}
}

func TestNotFoundWithID_Details(t *testing.T) {
	err := NotFoundWithID("Booking", "664af1f2e6a1c2b3d4e5f601")

	if err.Details["id"] != "664af1f2e6a1c2b3d4e5f601" {
		t.Errorf("unexpected id detail: %v", err.Details["id"])
	}
	if err.Details["resource"] != "Booking" {
		t.Errorf("unexpected resource detail: %v", err.Details["resource"])
	}
}

func TestAsAppError_PassesThrough(t *testing.T) {
	original := Conflict("no longer active")
	if got := AsAppError(original); got != original {
		t.Error("expected the same *AppError back")
	}
}

func TestAsAppError_WrapsUnknownErrors(t *testing.T) {
	got := AsAppError(fmt.Errorf("plain error"))
	if got.Code != CodeInternal {
		t.Errorf("expected INTERNAL_ERROR, got %q", got.Code)
	}
	if got.StatusCode() != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", got.StatusCode())
	}
}
