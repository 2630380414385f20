package service

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"

	"cab/internal/domain"
	"cab/internal/repository"
)

// PaymentEventType is the kind of payment gateway event.
type PaymentEventType string

const (
	PaymentEventPaid     PaymentEventType = "paid"
	PaymentEventFailed   PaymentEventType = "failed"
	PaymentEventRefunded PaymentEventType = "refunded"
)

// PaymentEvent is a verified payment gateway webhook event.
type PaymentEvent struct {
	BookingID string
	Event     PaymentEventType
	PaymentID string
	Amount    int64
}

// PaymentService applies payment gateway events to bookings.
type PaymentService struct {
	bookingRepo repository.BookingRepository
	secret      []byte
}

// NewPaymentService creates a new PaymentService. secret is the shared
// webhook signing secret.
func NewPaymentService(bookingRepo repository.BookingRepository, secret string) *PaymentService {
	return &PaymentService{
		bookingRepo: bookingRepo,
		secret:      []byte(secret),
	}
}

// VerifySignature checks the hex-encoded HMAC-SHA256 signature of a webhook
// payload. On mismatch the event must be rejected with no state change.
func (s *PaymentService) VerifySignature(payload []byte, signature string) error {
	mac := hmac.New(sha256.New, s.secret)
	mac.Write(payload)
	expected := hex.EncodeToString(mac.Sum(nil))
	if !hmac.Equal([]byte(expected), []byte(signature)) {
		return ErrSignatureMismatch
	}
	return nil
}

// HandleEvent applies a payment event to a booking. The operation is
// idempotent: replaying an event the booking already reflects is a no-op.
// A successful payment also confirms the booking.
func (s *PaymentService) HandleEvent(ctx context.Context, event PaymentEvent) (*domain.Booking, error) {
	if event.BookingID == "" {
		return nil, ErrInvalidBookingID
	}

	var paymentStatus domain.PaymentStatus
	switch event.Event {
	case PaymentEventPaid:
		paymentStatus = domain.PaymentStatusPaid
	case PaymentEventFailed:
		paymentStatus = domain.PaymentStatusFailed
	case PaymentEventRefunded:
		paymentStatus = domain.PaymentStatusRefunded
	default:
		return nil, ErrInvalidPaymentEvent
	}

	booking, err := s.bookingRepo.GetByID(ctx, event.BookingID)
	if err != nil {
		return nil, err
	}

	// Replayed event - nothing to do.
	if booking.PaymentStatus == paymentStatus && booking.PaymentID == event.PaymentID {
		return booking, nil
	}

	if err := s.bookingRepo.SetPaymentStatus(ctx, event.BookingID, paymentStatus, event.PaymentID); err != nil {
		return nil, err
	}
	booking.PaymentStatus = paymentStatus
	booking.PaymentID = event.PaymentID

	// Payment confirms a booking that was still awaiting confirmation.
	if paymentStatus == domain.PaymentStatusPaid && booking.Status.CanTransitionTo(domain.StatusConfirmed) {
		if err := s.bookingRepo.UpdateStatus(ctx, event.BookingID, domain.StatusConfirmed); err != nil {
			return nil, err
		}
		booking.Status = domain.StatusConfirmed
	}

	return booking, nil
}
