package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cab/internal/domain"
	"cab/internal/service"
)

// QuoteHandler handles HTTP requests for quotes.
type QuoteHandler struct {
	quoteService *service.QuoteService
}

// NewQuoteHandler creates a new QuoteHandler.
func NewQuoteHandler(quoteService *service.QuoteService) *QuoteHandler {
	return &QuoteHandler{quoteService: quoteService}
}

// QuoteRequest is the HTTP request body for requesting a quote.
type QuoteRequest struct {
	Origin         string `json:"origin"`
	Destination    string `json:"destination,omitempty"`
	RentalPackage  string `json:"rental_package,omitempty"`
	TripType       string `json:"trip_type"`
	CarType        string `json:"car_type"`
	Date           string `json:"date"`        // YYYY-MM-DD
	Time           string `json:"time"`        // HH:MM
	ReturnDate     string `json:"return_date,omitempty"`
	Passengers     int    `json:"passengers,omitempty"`
	ChildOnBoard   bool   `json:"child_on_board,omitempty"`
	PatientOnBoard bool   `json:"patient_on_board,omitempty"`
	PetOnBoard     bool   `json:"pet_on_board,omitempty"`
}

// QuoteResponse is the HTTP response for a quote.
type QuoteResponse struct {
	QuoteID           string                `json:"quote_id"`
	DistanceKm        float64               `json:"distance_km"`
	DurationMins      int                   `json:"duration_mins"`
	DistanceEstimated bool                  `json:"distance_estimated"`
	Price             domain.PriceBreakdown `json:"price"`
	ExpiresAt         string                `json:"expires_at"`
}

// CreateQuote handles POST /v1/quotes
func (h *QuoteHandler) CreateQuote(c *gin.Context) {
	var req QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	quote, err := h.quoteService.GetQuote(c.Request.Context(), domain.TripRequest{
		Origin:         req.Origin,
		Destination:    req.Destination,
		RentalPackage:  req.RentalPackage,
		TripType:       domain.TripType(req.TripType),
		CarType:        domain.CarType(req.CarType),
		Date:           req.Date,
		Time:           req.Time,
		ReturnDate:     req.ReturnDate,
		Passengers:     req.Passengers,
		ChildOnBoard:   req.ChildOnBoard,
		PatientOnBoard: req.PatientOnBoard,
		PetOnBoard:     req.PetOnBoard,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, QuoteResponse{
		QuoteID:           quote.ID,
		DistanceKm:        quote.Distance.Km,
		DurationMins:      quote.Distance.DurationMins,
		DistanceEstimated: quote.Distance.Estimated,
		Price:             quote.Price,
		ExpiresAt:         quote.ExpiresAt.Format("2006-01-02T15:04:05Z07:00"),
	})
}
