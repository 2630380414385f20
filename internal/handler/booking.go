package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"cab/internal/domain"
	"cab/internal/service"
)

// BookingHandler handles HTTP requests for bookings.
type BookingHandler struct {
	bookingService *service.BookingService
}

// NewBookingHandler creates a new BookingHandler.
func NewBookingHandler(bookingService *service.BookingService) *BookingHandler {
	return &BookingHandler{bookingService: bookingService}
}

// CreateBookingRequest is the HTTP request body for confirming a quote.
type CreateBookingRequest struct {
	QuoteID string `json:"quote_id"`
	Action  string `json:"action"` // "book" or "call"
	Contact struct {
		Name  string `json:"name"`
		Phone string `json:"phone"`
		Email string `json:"email,omitempty"`
	} `json:"contact"`
}

// CreateBookingResponse is the HTTP response for creating a booking.
type CreateBookingResponse struct {
	BookingID string `json:"booking_id"`
	Status    string `json:"status"`
}

// BookingResponse is the HTTP response for reading a booking.
type BookingResponse struct {
	ID                string          `json:"id"`
	Name              string          `json:"name"`
	Phone             string          `json:"phone"`
	Email             string          `json:"email,omitempty"`
	Origin            string          `json:"origin"`
	Destination       string          `json:"destination,omitempty"`
	RentalPackage     string          `json:"rental_package,omitempty"`
	TripType          string          `json:"trip_type"`
	CarType           string          `json:"car_type"`
	Date              string          `json:"date"`
	Time              string          `json:"time"`
	ReturnDate        string          `json:"return_date,omitempty"`
	Passengers        int             `json:"passengers"`
	ChildOnBoard      bool            `json:"child_on_board"`
	PatientOnBoard    bool            `json:"patient_on_board"`
	PetOnBoard        bool            `json:"pet_on_board"`
	Status            string          `json:"status"`
	DistanceKm        float64         `json:"distance_km"`
	DistanceEstimated bool            `json:"distance_estimated"`
	TotalAmount       int64           `json:"total_amount"`
	Price             json.RawMessage `json:"price,omitempty"`
	PaymentStatus     string          `json:"payment_status"`
	PaymentID         string          `json:"payment_id,omitempty"`
	CancelReason      string          `json:"cancel_reason,omitempty"`
	CancelledAt       string          `json:"cancelled_at,omitempty"`
	CreatedAt         string          `json:"created_at"`
}

// CancelBookingRequest is the HTTP request body for cancelling a booking.
type CancelBookingRequest struct {
	Reason string `json:"reason,omitempty"`
}

// UpdateStatusRequest is the HTTP request body for a status transition.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// CreateBooking handles POST /v1/bookings
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	booking, err := h.bookingService.Confirm(c.Request.Context(), service.ConfirmBookingRequest{
		QuoteID: req.QuoteID,
		Action:  service.BookingAction(req.Action),
		Name:    req.Contact.Name,
		Phone:   req.Contact.Phone,
		Email:   req.Contact.Email,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusCreated, CreateBookingResponse{
		BookingID: booking.ID,
		Status:    string(booking.Status),
	})
}

// GetBooking handles GET /v1/bookings/:id
func (h *BookingHandler) GetBooking(c *gin.Context) {
	booking, err := h.bookingService.GetBooking(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, toBookingResponse(booking))
}

// GetAll handles GET /v1/bookings
func (h *BookingHandler) GetAll(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))

	bookings, err := h.bookingService.ListBookings(c.Request.Context(), limit)
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		response = append(response, toBookingResponse(b))
	}

	c.JSON(http.StatusOK, response)
}

// CancelBooking handles POST /v1/bookings/:id/cancel
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	var req CancelBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	booking, err := h.bookingService.Cancel(c.Request.Context(), c.Param("id"), req.Reason)
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, toBookingResponse(booking))
}

// UpdateStatus handles PATCH /v1/bookings/:id/status
func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	booking, err := h.bookingService.UpdateStatus(c.Request.Context(), c.Param("id"), domain.BookingStatus(req.Status))
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, toBookingResponse(booking))
}

func toBookingResponse(b *domain.Booking) BookingResponse {
	response := BookingResponse{
		ID:                b.ID,
		Name:              b.Name,
		Phone:             b.Phone,
		Email:             b.Email,
		Origin:            b.Origin,
		Destination:       b.Destination,
		RentalPackage:     b.RentalPackage,
		TripType:          string(b.TripType),
		CarType:           string(b.CarType),
		Date:              b.Date,
		Time:              b.Time,
		ReturnDate:        b.ReturnDate,
		Passengers:        b.Passengers,
		ChildOnBoard:      b.ChildOnBoard,
		PatientOnBoard:    b.PatientOnBoard,
		PetOnBoard:        b.PetOnBoard,
		Status:            string(b.Status),
		DistanceKm:        b.DistanceKm,
		DistanceEstimated: b.DistanceEstimated,
		TotalAmount:       b.TotalAmount,
		Price:             json.RawMessage(b.PriceMetadata),
		PaymentStatus:     string(b.PaymentStatus),
		PaymentID:         b.PaymentID,
		CancelReason:      b.CancelReason,
		CreatedAt:         b.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}

	if !b.CancelledAt.IsZero() {
		response.CancelledAt = b.CancelledAt.Format("2006-01-02T15:04:05Z07:00")
	}

	return response
}
