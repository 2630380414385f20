package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"cab/internal/domain"
	"cab/internal/redis"
	"cab/internal/repository"
)

// BookingAction is how the user confirmed a quote.
type BookingAction string

const (
	// ActionBook creates a booking awaiting confirmation.
	ActionBook BookingAction = "book"
	// ActionCall creates a booking awaiting a callback from the operator.
	ActionCall BookingAction = "call"
)

// Notifier delivers best-effort booking notifications to downstream systems.
type Notifier interface {
	NotifyBookingCreated(ctx context.Context, booking *domain.Booking)
	NotifyBookingCancelled(ctx context.Context, booking *domain.Booking, reason string)
}

// BookingService drives the booking lifecycle: quote confirmation,
// cancellation and status transitions.
type BookingService struct {
	bookingRepo repository.BookingRepository
	quoteStore  redis.QuoteStoreInterface
	notifier    Notifier
	loc         *time.Location
}

// NewBookingService creates a new BookingService.
func NewBookingService(
	bookingRepo repository.BookingRepository,
	quoteStore redis.QuoteStoreInterface,
	notifier Notifier,
	loc *time.Location,
) *BookingService {
	return &BookingService{
		bookingRepo: bookingRepo,
		quoteStore:  quoteStore,
		notifier:    notifier,
		loc:         loc,
	}
}

// ConfirmBookingRequest contains the parameters for confirming a quote.
type ConfirmBookingRequest struct {
	QuoteID string
	Action  BookingAction
	Name    string
	Phone   string
	Email   string
}

// Confirm turns a stored quote into a persisted booking. The quoted price
// breakdown is snapshotted immutably into the booking and never recomputed.
func (s *BookingService) Confirm(ctx context.Context, req ConfirmBookingRequest) (*domain.Booking, error) {
	if req.Action != ActionBook && req.Action != ActionCall {
		return nil, ErrInvalidAction
	}
	if req.Name == "" || req.Phone == "" {
		return nil, ErrMissingContact
	}

	quote, err := s.quoteStore.Get(ctx, req.QuoteID)
	if err != nil {
		return nil, err
	}
	if quote == nil {
		return nil, ErrQuoteExpired
	}

	// The advance-notice gate is re-checked at confirmation since a quote
	// can sit unconfirmed until near the trip start.
	tripStart, err := quote.Trip.DateTime(s.loc)
	if err != nil {
		return nil, ErrInvalidDateTime
	}
	if tripStart.Sub(time.Now().In(s.loc)) < MinAdvanceNotice {
		return nil, ErrAdvanceNotice
	}

	metadata, err := json.Marshal(quote.Price)
	if err != nil {
		return nil, err
	}

	status := domain.StatusPendingConfirmation
	if req.Action == ActionCall {
		status = domain.StatusCallRequested
	}

	now := time.Now()
	booking := &domain.Booking{
		ID:                uuid.New().String(),
		Name:              req.Name,
		Phone:             req.Phone,
		Email:             req.Email,
		Origin:            quote.Trip.Origin,
		Destination:       quote.Trip.Destination,
		RentalPackage:     quote.Trip.RentalPackage,
		TripType:          quote.Trip.TripType,
		CarType:           quote.Trip.CarType,
		Date:              quote.Trip.Date,
		Time:              quote.Trip.Time,
		ReturnDate:        quote.Trip.ReturnDate,
		Passengers:        quote.Trip.Passengers,
		ChildOnBoard:      quote.Trip.ChildOnBoard,
		PatientOnBoard:    quote.Trip.PatientOnBoard,
		PetOnBoard:        quote.Trip.PetOnBoard,
		Status:            status,
		DistanceKm:        quote.Distance.Km,
		DistanceEstimated: quote.Distance.Estimated,
		TotalAmount:       quote.Price.FinalTotal,
		PriceMetadata:     metadata,
		PaymentStatus:     domain.PaymentStatusUnpaid,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, err
	}

	// A consumed quote cannot be booked twice.
	_ = s.quoteStore.Delete(ctx, req.QuoteID)

	if s.notifier != nil {
		s.notifier.NotifyBookingCreated(ctx, booking)
	}

	return booking, nil
}

// GetBooking retrieves a booking by ID.
func (s *BookingService) GetBooking(ctx context.Context, bookingID string) (*domain.Booking, error) {
	if bookingID == "" {
		return nil, ErrInvalidBookingID
	}
	return s.bookingRepo.GetByID(ctx, bookingID)
}

// ListBookings retrieves the most recent bookings for the admin dashboard.
func (s *BookingService) ListBookings(ctx context.Context, limit int) ([]*domain.Booking, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	return s.bookingRepo.GetRecent(ctx, limit)
}

// Cancel cancels a booking. Bookings not yet confirmed can be cancelled at
// any time; confirmed bookings only while more than the advance-notice
// window remains before the trip start.
func (s *BookingService) Cancel(ctx context.Context, bookingID, reason string) (*domain.Booking, error) {
	if bookingID == "" {
		return nil, ErrInvalidBookingID
	}

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if booking.Status == domain.StatusCancelled {
		return nil, ErrBookingAlreadyCancelled
	}
	if booking.Status.IsTerminal() {
		return nil, ErrBookingNotCancellable
	}

	if booking.Status == domain.StatusConfirmed || booking.Status == domain.StatusDriverAssigned {
		tripStart, err := booking.TripDateTime(s.loc)
		if err == nil && tripStart.Sub(time.Now().In(s.loc)) <= MinAdvanceNotice {
			return nil, ErrBookingNotCancellable
		}
	}

	if err := s.bookingRepo.Cancel(ctx, bookingID, reason); err != nil {
		return nil, err
	}

	booking.Status = domain.StatusCancelled
	booking.CancelReason = reason
	booking.CancelledAt = time.Now()

	if s.notifier != nil {
		s.notifier.NotifyBookingCancelled(ctx, booking, reason)
	}

	return booking, nil
}

// UpdateStatus applies an admin or driver initiated status transition after
// validating it against the booking state machine.
func (s *BookingService) UpdateStatus(ctx context.Context, bookingID string, status domain.BookingStatus) (*domain.Booking, error) {
	if bookingID == "" {
		return nil, ErrInvalidBookingID
	}
	if !status.IsValid() {
		return nil, ErrInvalidTransition
	}

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if !booking.Status.CanTransitionTo(status) {
		return nil, ErrInvalidTransition
	}

	if err := s.bookingRepo.UpdateStatus(ctx, bookingID, status); err != nil {
		return nil, err
	}

	booking.Status = status
	booking.UpdatedAt = time.Now()
	return booking, nil
}
