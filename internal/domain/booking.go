package domain

import "time"

// BookingStatus represents the current lifecycle state of a booking.
type BookingStatus string

const (
	StatusPendingConfirmation BookingStatus = "pending_confirmation"
	StatusCallRequested       BookingStatus = "call_requested"
	StatusConfirmed           BookingStatus = "confirmed"
	StatusDriverAssigned      BookingStatus = "driver_assigned"
	StatusCompleted           BookingStatus = "completed"
	StatusCancelled           BookingStatus = "cancelled"
)

// validTransitions defines the booking status state machine.
var validTransitions = map[BookingStatus][]BookingStatus{
	StatusPendingConfirmation: {StatusConfirmed, StatusCancelled},
	StatusCallRequested:       {StatusConfirmed, StatusCancelled},
	StatusConfirmed:           {StatusDriverAssigned, StatusCompleted, StatusCancelled},
	StatusDriverAssigned:      {StatusCompleted, StatusCancelled},
	StatusCompleted:           {},
	StatusCancelled:           {},
}

// IsValid returns true if the status is a recognized booking status.
func (s BookingStatus) IsValid() bool {
	_, ok := validTransitions[s]
	return ok
}

// CanTransitionTo returns true if moving from this status to target is allowed.
func (s BookingStatus) CanTransitionTo(target BookingStatus) bool {
	for _, t := range validTransitions[s] {
		if t == target {
			return true
		}
	}
	return false
}

// IsTerminal returns true if no further transitions are possible.
func (s BookingStatus) IsTerminal() bool {
	return len(validTransitions[s]) == 0
}

// PaymentStatus represents the payment state of a booking.
type PaymentStatus string

const (
	PaymentStatusUnpaid   PaymentStatus = "unpaid"
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusFailed   PaymentStatus = "failed"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

// Booking is a persisted, user-confirmed trip request with an immutable
// price snapshot. Bookings are never deleted; cancellation is a status
// transition.
type Booking struct {
	ID                string
	Name              string
	Phone             string
	Email             string
	Origin            string
	Destination       string
	RentalPackage     string
	TripType          TripType
	CarType           CarType
	Date              string
	Time              string
	ReturnDate        string
	Passengers        int
	ChildOnBoard      bool
	PatientOnBoard    bool
	PetOnBoard        bool
	Status            BookingStatus
	DistanceKm        float64
	DistanceEstimated bool
	TotalAmount       int64
	PriceMetadata     []byte // opaque JSON snapshot of the quoted breakdown
	PaymentStatus     PaymentStatus
	PaymentID         string
	CancelReason      string
	CancelledAt       time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// TripDateTime parses the booked trip's date and time in the given location.
func (b *Booking) TripDateTime(loc *time.Location) (time.Time, error) {
	return time.ParseInLocation("2006-01-02 15:04", b.Date+" "+b.Time, loc)
}
