package service

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"cab/internal/domain"
	"cab/internal/pricing"
	"cab/internal/redis"
)

// MinAdvanceNotice is the minimum lead time between quoting a trip and its
// scheduled start.
const MinAdvanceNotice = 4 * time.Hour

// DistanceProvider resolves the road distance between two places.
// This interface allows for testing with mock implementations.
type DistanceProvider interface {
	Distance(ctx context.Context, origin, destination string) (domain.DistanceResult, error)
}

// QuoteService produces price quotes for trip requests.
type QuoteService struct {
	provider   DistanceProvider // nil when no maps API key is configured
	calculator *pricing.Calculator
	quoteStore redis.QuoteStoreInterface
	timeout    time.Duration
	fallback   domain.DistanceResult
	loc        *time.Location
}

// NewQuoteService creates a new QuoteService. provider may be nil, in which
// case every quote uses the fallback distance.
func NewQuoteService(
	provider DistanceProvider,
	calculator *pricing.Calculator,
	quoteStore redis.QuoteStoreInterface,
	timeout time.Duration,
	fallback domain.DistanceResult,
	loc *time.Location,
) *QuoteService {
	fallback.Estimated = true
	return &QuoteService{
		provider:   provider,
		calculator: calculator,
		quoteStore: quoteStore,
		timeout:    timeout,
		fallback:   fallback,
		loc:        loc,
	}
}

// GetQuote validates the trip request, resolves its distance and returns a
// priced quote. Distance provider failures degrade to the fallback estimate
// and never fail the quote.
func (s *QuoteService) GetQuote(ctx context.Context, trip domain.TripRequest) (*domain.Quote, error) {
	if err := s.validate(trip); err != nil {
		return nil, err
	}

	tripStart, err := trip.DateTime(s.loc)
	if err != nil {
		return nil, ErrInvalidDateTime
	}
	if tripStart.Sub(time.Now().In(s.loc)) < MinAdvanceNotice {
		return nil, ErrAdvanceNotice
	}

	distance := s.resolveDistance(ctx, trip)

	price := s.calculator.Compute(pricing.Input{
		DistanceKm:   distance.Km,
		DurationMins: distance.DurationMins,
		CarType:      trip.CarType,
		TripType:     trip.TripType,
		Time:         trip.Time,
		Days:         trip.Days(),
		PetOnBoard:   trip.PetOnBoard,
	})

	now := time.Now()
	quote := &domain.Quote{
		ID:        uuid.New().String(),
		Trip:      trip,
		Distance:  distance,
		Price:     price,
		CreatedAt: now,
		ExpiresAt: now.Add(redis.QuoteTTL),
	}

	// A failed snapshot write only prevents later booking by quote ID;
	// the quote itself is still valid to display.
	if err := s.quoteStore.Put(ctx, quote); err != nil {
		log.Printf("failed to store quote %s: %v", quote.ID, err)
	}

	return quote, nil
}

// resolveDistance returns the trip distance: rental packages bill their fixed
// package distance, point-to-point trips ask the distance provider with a
// bounded timeout and fall back to the configured estimate on any failure.
func (s *QuoteService) resolveDistance(ctx context.Context, trip domain.TripRequest) domain.DistanceResult {
	if trip.TripType == domain.TripTypeRental || trip.TripType == domain.TripTypePackage {
		rates := s.calculator.Rates()
		result := domain.DistanceResult{Km: rates.PackageKm(trip.RentalPackage)}
		if pkg, ok := rates.Packages[trip.RentalPackage]; ok {
			result.DurationMins = pkg.Hours * 60
		}
		return result
	}

	if s.provider == nil {
		log.Printf("distance provider not configured, using fallback for %q -> %q", trip.Origin, trip.Destination)
		return s.fallback
	}

	providerCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	distance, err := s.provider.Distance(providerCtx, trip.Origin, trip.Destination)
	if err != nil {
		log.Printf("distance provider failed for %q -> %q: %v (using fallback)", trip.Origin, trip.Destination, err)
		return s.fallback
	}

	return distance
}

// validate rejects trip requests with missing required fields before any
// computation.
func (s *QuoteService) validate(trip domain.TripRequest) error {
	if trip.Origin == "" {
		return ErrMissingOrigin
	}
	if !trip.TripType.IsValid() {
		return ErrInvalidTripType
	}
	if trip.Destination == "" &&
		trip.TripType != domain.TripTypeRental && trip.TripType != domain.TripTypePackage {
		return ErrMissingDestination
	}
	if trip.Date == "" {
		return ErrMissingDate
	}
	if trip.Time == "" {
		return ErrMissingTime
	}
	return nil
}
