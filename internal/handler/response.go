package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"cab/internal/repository"
	"cab/internal/service"
)

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondError sends an error response with the appropriate HTTP status code.
func respondError(c *gin.Context, err error) {
	code := mapErrorToHTTPStatus(err)
	c.JSON(code, ErrorResponse{Error: err.Error()})
}

// respondJSON sends a JSON response with the given status code.
func respondJSON(c *gin.Context, code int, data any) {
	c.JSON(code, data)
}

// mapErrorToHTTPStatus maps service/repository errors to HTTP status codes.
func mapErrorToHTTPStatus(err error) int {
	switch {
	// Not found errors
	case errors.Is(err, repository.ErrNotFound):
		return http.StatusNotFound

	// Validation errors - Bad Request
	case errors.Is(err, service.ErrAdvanceNotice),
		errors.Is(err, service.ErrMissingOrigin),
		errors.Is(err, service.ErrMissingDestination),
		errors.Is(err, service.ErrMissingDate),
		errors.Is(err, service.ErrMissingTime),
		errors.Is(err, service.ErrInvalidDateTime),
		errors.Is(err, service.ErrInvalidTripType),
		errors.Is(err, service.ErrMissingContact),
		errors.Is(err, service.ErrInvalidAction),
		errors.Is(err, service.ErrInvalidBookingID),
		errors.Is(err, service.ErrInvalidPaymentEvent):
		return http.StatusBadRequest

	// Gone - the quote can no longer be booked
	case errors.Is(err, service.ErrQuoteExpired):
		return http.StatusGone

	// Conflict errors
	case errors.Is(err, service.ErrBookingAlreadyCancelled),
		errors.Is(err, service.ErrBookingNotCancellable),
		errors.Is(err, service.ErrInvalidTransition):
		return http.StatusConflict

	// Rejected webhook
	case errors.Is(err, service.ErrSignatureMismatch):
		return http.StatusUnauthorized

	// Default to internal server error
	default:
		return http.StatusInternalServerError
	}
}
