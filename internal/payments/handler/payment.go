package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"smartparking/internal/payments/service"
	httputil "smartparking/pkg/http"
	"smartparking/pkg/logger"
	"smartparking/pkg/model"
)

type PaymentHandler struct {
	service service.PaymentService
	log     *logger.Logger
}

func NewPaymentHandler(service service.PaymentService, log *logger.Logger) *PaymentHandler {
	return &PaymentHandler{
		service: service,
		log:     log,
	}
}

func (h *PaymentHandler) CreateCheckout(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req model.CheckoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if writeErr := httputil.WriteJSON(w, http.StatusBadRequest, httputil.ErrorResponse{
			Error: "Invalid request body",
		}); writeErr != nil {
			h.log.Error("failed to write JSON response", "handler", "CreateCheckout", "error", writeErr)
		}
		return
	}

	url, err := h.service.CreateCheckout(r.Context(), &req)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "CreateCheckout", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteJSON(w, http.StatusOK, map[string]string{"url": url}); err != nil {
		h.log.Error("failed to write JSON response", "handler", "CreateCheckout", "error", err)
	}
}

func (h *PaymentHandler) ConfirmPayment(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req model.PaymentConfirmation
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if writeErr := httputil.WriteJSON(w, http.StatusBadRequest, httputil.ErrorResponse{
			Error: "Invalid request body",
		}); writeErr != nil {
			h.log.Error("failed to write JSON response", "handler", "ConfirmPayment", "error", writeErr)
		}
		return
	}

	if err := h.service.ConfirmPayment(r.Context(), &req); err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "ConfirmPayment", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, map[string]string{
		"message": "Payment recorded successfully",
	}); err != nil {
		h.log.Error("failed to write success response", "handler", "ConfirmPayment", "error", err)
	}
}

func (h *PaymentHandler) RegisterRoutes(router *httprouter.Router) {
	router.POST("/api/payment", h.CreateCheckout)
	router.POST("/api/payment/success", h.ConfirmPayment)
}
