package service

import "errors"

var (
	// ErrAdvanceNotice is returned when the trip start is less than the
	// required advance-notice window away.
	ErrAdvanceNotice = errors.New("trips must be booked at least 4 hours in advance")

	// ErrMissingOrigin is returned when the pickup location is empty.
	ErrMissingOrigin = errors.New("origin is required")

	// ErrMissingDestination is returned when a point-to-point trip has no destination.
	ErrMissingDestination = errors.New("destination is required")

	// ErrMissingDate is returned when the trip date is empty.
	ErrMissingDate = errors.New("trip date is required")

	// ErrMissingTime is returned when the pickup time is empty.
	ErrMissingTime = errors.New("pickup time is required")

	// ErrInvalidDateTime is returned when the trip date or time cannot be parsed.
	ErrInvalidDateTime = errors.New("invalid trip date or time")

	// ErrInvalidTripType is returned when the trip type is not recognized.
	ErrInvalidTripType = errors.New("invalid trip type")

	// ErrMissingContact is returned when booking contact details are absent.
	ErrMissingContact = errors.New("contact name and phone are required")

	// ErrInvalidAction is returned when the booking action is neither book nor call.
	ErrInvalidAction = errors.New("action must be \"book\" or \"call\"")

	// ErrQuoteExpired is returned when the referenced quote is missing or expired.
	ErrQuoteExpired = errors.New("quote expired or not found")

	// ErrInvalidBookingID is returned when a booking ID is empty.
	ErrInvalidBookingID = errors.New("invalid booking id")

	// ErrBookingAlreadyCancelled is returned when cancelling a cancelled booking.
	ErrBookingAlreadyCancelled = errors.New("booking already cancelled")

	// ErrBookingNotCancellable is returned when the booking is in a state or
	// time window that does not allow cancellation.
	ErrBookingNotCancellable = errors.New("booking can no longer be cancelled")

	// ErrInvalidTransition is returned when a status change is not allowed by
	// the booking state machine.
	ErrInvalidTransition = errors.New("invalid booking status transition")

	// ErrInvalidPaymentEvent is returned when a webhook event type is unknown.
	ErrInvalidPaymentEvent = errors.New("invalid payment event")

	// ErrSignatureMismatch is returned when a webhook signature does not verify.
	ErrSignatureMismatch = errors.New("webhook signature mismatch")
)
