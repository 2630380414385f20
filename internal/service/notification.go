package service

import (
	"bytes"
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"cab/internal/domain"
)

// NotificationType represents the type of notification.
type NotificationType string

const (
	NotificationBookingCreated   NotificationType = "BOOKING_CREATED"
	NotificationBookingCancelled NotificationType = "BOOKING_CANCELLED"
)

// notificationPayload is the JSON body posted to the notification webhook.
type notificationPayload struct {
	Type       NotificationType `json:"type"`
	BookingID  string           `json:"booking_id"`
	Status     string           `json:"status"`
	Name       string           `json:"name"`
	Phone      string           `json:"phone"`
	Origin     string           `json:"origin"`
	TripDate   string           `json:"trip_date"`
	TripTime   string           `json:"trip_time"`
	Total      int64            `json:"total_amount"`
	Reason     string           `json:"reason,omitempty"`
	OccurredAt time.Time        `json:"occurred_at"`
}

// WebhookNotifier posts booking events to an operations webhook. Delivery is
// best effort: failures are logged, never propagated, and never block the
// booking flow.
type WebhookNotifier struct {
	url    string
	client *http.Client
}

// NewWebhookNotifier creates a notifier posting to url. An empty url
// disables delivery.
func NewWebhookNotifier(url string, timeout time.Duration) *WebhookNotifier {
	return &WebhookNotifier{
		url:    url,
		client: &http.Client{Timeout: timeout},
	}
}

// NotifyBookingCreated announces a newly confirmed booking.
func (n *WebhookNotifier) NotifyBookingCreated(ctx context.Context, booking *domain.Booking) {
	n.send(notificationPayload{
		Type:       NotificationBookingCreated,
		BookingID:  booking.ID,
		Status:     string(booking.Status),
		Name:       booking.Name,
		Phone:      booking.Phone,
		Origin:     booking.Origin,
		TripDate:   booking.Date,
		TripTime:   booking.Time,
		Total:      booking.TotalAmount,
		OccurredAt: time.Now(),
	})
}

// NotifyBookingCancelled announces a cancellation.
func (n *WebhookNotifier) NotifyBookingCancelled(ctx context.Context, booking *domain.Booking, reason string) {
	n.send(notificationPayload{
		Type:       NotificationBookingCancelled,
		BookingID:  booking.ID,
		Status:     string(booking.Status),
		Name:       booking.Name,
		Phone:      booking.Phone,
		Origin:     booking.Origin,
		TripDate:   booking.Date,
		TripTime:   booking.Time,
		Total:      booking.TotalAmount,
		Reason:     reason,
		OccurredAt: time.Now(),
	})
}

// send delivers the payload in the background. The request deliberately does
// not inherit the caller's context so an already-finished request cannot
// cancel delivery.
func (n *WebhookNotifier) send(payload notificationPayload) {
	if n.url == "" {
		return
	}

	go func() {
		body, err := json.Marshal(payload)
		if err != nil {
			log.Printf("[NOTIFY] marshal failed for booking %s: %v", payload.BookingID, err)
			return
		}

		resp, err := n.client.Post(n.url, "application/json", bytes.NewReader(body))
		if err != nil {
			log.Printf("[NOTIFY] delivery failed for booking %s: %v", payload.BookingID, err)
			return
		}
		resp.Body.Close()

		if resp.StatusCode >= 300 {
			log.Printf("[NOTIFY] webhook returned %d for booking %s", resp.StatusCode, payload.BookingID)
		}
	}()
}
