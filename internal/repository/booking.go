package repository

import (
	"context"

	"cab/internal/domain"
)

// BookingRepository defines the persistence operations for bookings.
// Bookings are never deleted; cancellation and payment updates are status
// mutations.
type BookingRepository interface {
	// Create persists a new booking.
	Create(ctx context.Context, booking *domain.Booking) error

	// GetByID retrieves a booking by ID.
	GetByID(ctx context.Context, id string) (*domain.Booking, error)

	// GetRecent retrieves the most recent bookings, newest first.
	GetRecent(ctx context.Context, limit int) ([]*domain.Booking, error)

	// UpdateStatus transitions a booking to a new lifecycle status.
	UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) error

	// Cancel marks a booking cancelled with a reason.
	Cancel(ctx context.Context, id string, reason string) error

	// SetPaymentStatus records a payment state change for a booking.
	SetPaymentStatus(ctx context.Context, id string, status domain.PaymentStatus, paymentID string) error
}
