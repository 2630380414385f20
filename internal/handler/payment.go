package handler

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"cab/internal/service"
)

// signatureHeader carries the hex HMAC-SHA256 of the raw webhook body.
const signatureHeader = "X-Webhook-Signature"

// PaymentHandler handles payment gateway webhooks.
type PaymentHandler struct {
	paymentService *service.PaymentService
}

// NewPaymentHandler creates a new PaymentHandler.
func NewPaymentHandler(paymentService *service.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService}
}

// WebhookRequest is the HTTP request body for a payment webhook event.
type WebhookRequest struct {
	BookingID string `json:"booking_id"`
	Event     string `json:"event"` // paid, failed, refunded
	PaymentID string `json:"payment_id"`
	Amount    int64  `json:"amount,omitempty"`
}

// WebhookResponse is the HTTP response for a processed webhook event.
type WebhookResponse struct {
	BookingID     string `json:"booking_id"`
	Status        string `json:"status"`
	PaymentStatus string `json:"payment_status"`
}

// HandleWebhook handles POST /v1/payments/webhook
//
// The signature is verified over the raw body before any parsing; a
// mismatch rejects the event with no state change.
func (h *PaymentHandler) HandleWebhook(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "unreadable request body"})
		return
	}

	if err := h.paymentService.VerifySignature(body, c.GetHeader(signatureHeader)); err != nil {
		respondError(c, err)
		return
	}

	var req WebhookRequest
	if err := json.Unmarshal(body, &req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	booking, err := h.paymentService.HandleEvent(c.Request.Context(), service.PaymentEvent{
		BookingID: req.BookingID,
		Event:     service.PaymentEventType(req.Event),
		PaymentID: req.PaymentID,
		Amount:    req.Amount,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, WebhookResponse{
		BookingID:     booking.ID,
		Status:        string(booking.Status),
		PaymentStatus: string(booking.PaymentStatus),
	})
}
