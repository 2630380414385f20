package tests

import (
	"context"
	"errors"
	"testing"
	"time"

	"cab/internal/domain"
	"cab/internal/pricing"
	"cab/internal/service"
)

const distanceTimeout = 3 * time.Second

var fallbackDistance = domain.DistanceResult{Km: 45, DurationMins: 90}

// tripAt builds a valid one-way trip request starting at the given offset
// from now.
func tripAt(offset time.Duration) domain.TripRequest {
	start := time.Now().Add(offset)
	return domain.TripRequest{
		Origin:      "Mumbai Airport",
		Destination: "Pune Station",
		TripType:    domain.TripTypeOneWay,
		CarType:     domain.CarTypeSedan,
		Date:        start.Format("2006-01-02"),
		Time:        start.Format("15:04"),
		Passengers:  2,
	}
}

func newQuoteService(provider service.DistanceProvider, store *MockQuoteStore) *service.QuoteService {
	return service.NewQuoteService(
		provider,
		pricing.NewCalculator(pricing.DefaultRateCard()),
		store,
		distanceTimeout,
		fallbackDistance,
		time.Local,
	)
}

func TestQuote_UsesProviderDistance(t *testing.T) {
	t.Parallel()

	provider := &MockDistanceProvider{
		Result: domain.DistanceResult{Km: 148.5, DurationMins: 165},
	}
	store := NewMockQuoteStore()
	svc := newQuoteService(provider, store)

	quote, err := svc.GetQuote(context.Background(), tripAt(24*time.Hour))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if quote.Distance.Km != 148.5 {
		t.Errorf("distance = %v, want 148.5", quote.Distance.Km)
	}
	if quote.Distance.Estimated {
		t.Error("provider-sourced distance must not be flagged estimated")
	}
	if quote.Price.FinalTotal <= 0 {
		t.Errorf("final total = %d, want positive", quote.Price.FinalTotal)
	}
}

func TestQuote_FallbackOnProviderFailure(t *testing.T) {
	t.Parallel()

	provider := &MockDistanceProvider{Err: errors.New("maps api unreachable")}
	store := NewMockQuoteStore()
	svc := newQuoteService(provider, store)

	quote, err := svc.GetQuote(context.Background(), tripAt(24*time.Hour))
	if err != nil {
		t.Fatalf("provider failure must not fail the quote: %v", err)
	}

	if quote.Distance.Km != 45 || quote.Distance.DurationMins != 90 {
		t.Errorf("fallback distance = %v km / %v min, want 45 / 90", quote.Distance.Km, quote.Distance.DurationMins)
	}
	if !quote.Distance.Estimated {
		t.Error("fallback distance must be flagged estimated")
	}
	if quote.Price.FinalTotal <= 0 {
		t.Errorf("final total = %d, want positive", quote.Price.FinalTotal)
	}
}

func TestQuote_FallbackWhenProviderUnconfigured(t *testing.T) {
	t.Parallel()

	store := NewMockQuoteStore()
	svc := newQuoteService(nil, store)

	quote, err := svc.GetQuote(context.Background(), tripAt(24*time.Hour))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !quote.Distance.Estimated {
		t.Error("fallback distance must be flagged estimated")
	}
	if quote.Distance.Km != 45 {
		t.Errorf("distance = %v, want fallback 45", quote.Distance.Km)
	}
}

func TestQuote_AdvanceNoticeRejected(t *testing.T) {
	t.Parallel()

	store := NewMockQuoteStore()
	svc := newQuoteService(&MockDistanceProvider{Result: fallbackDistance}, store)

	_, err := svc.GetQuote(context.Background(), tripAt(3*time.Hour))
	if !errors.Is(err, service.ErrAdvanceNotice) {
		t.Fatalf("expected ErrAdvanceNotice, got %v", err)
	}
}

func TestQuote_AdvanceNoticeBoundary(t *testing.T) {
	t.Parallel()

	store := NewMockQuoteStore()
	svc := newQuoteService(&MockDistanceProvider{Result: fallbackDistance}, store)

	// Just past the 4-hour window; a few minutes of slack against the
	// minute-resolution trip time.
	_, err := svc.GetQuote(context.Background(), tripAt(4*time.Hour+5*time.Minute))
	if err != nil {
		t.Fatalf("trip just beyond the window must succeed, got %v", err)
	}
}

func TestQuote_MissingRequiredFields(t *testing.T) {
	t.Parallel()

	store := NewMockQuoteStore()
	svc := newQuoteService(&MockDistanceProvider{Result: fallbackDistance}, store)

	tests := []struct {
		name    string
		mutate  func(*domain.TripRequest)
		wantErr error
	}{
		{"missing origin", func(r *domain.TripRequest) { r.Origin = "" }, service.ErrMissingOrigin},
		{"missing destination", func(r *domain.TripRequest) { r.Destination = "" }, service.ErrMissingDestination},
		{"missing date", func(r *domain.TripRequest) { r.Date = "" }, service.ErrMissingDate},
		{"missing time", func(r *domain.TripRequest) { r.Time = "" }, service.ErrMissingTime},
		{"bad trip type", func(r *domain.TripRequest) { r.TripType = "charter" }, service.ErrInvalidTripType},
		{"bad date", func(r *domain.TripRequest) { r.Date = "tomorrow" }, service.ErrInvalidDateTime},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			trip := tripAt(24 * time.Hour)
			tt.mutate(&trip)

			_, err := svc.GetQuote(context.Background(), trip)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestQuote_RentalUsesPackageDistance(t *testing.T) {
	t.Parallel()

	provider := &MockDistanceProvider{Result: domain.DistanceResult{Km: 10}}
	store := NewMockQuoteStore()
	svc := newQuoteService(provider, store)

	trip := tripAt(24 * time.Hour)
	trip.TripType = domain.TripTypeRental
	trip.Destination = ""
	trip.RentalPackage = "8hr80km"

	quote, err := svc.GetQuote(context.Background(), trip)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if quote.Distance.Km != 80 {
		t.Errorf("distance = %v, want package distance 80", quote.Distance.Km)
	}
	if quote.Distance.DurationMins != 480 {
		t.Errorf("duration = %v, want 480", quote.Distance.DurationMins)
	}
	if provider.CallCount != 0 {
		t.Error("rental quotes must not call the distance provider")
	}
}

func TestQuote_SnapshotStored(t *testing.T) {
	t.Parallel()

	store := NewMockQuoteStore()
	svc := newQuoteService(&MockDistanceProvider{Result: fallbackDistance}, store)

	quote, err := svc.GetQuote(context.Background(), tripAt(24*time.Hour))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !store.HasQuote(quote.ID) {
		t.Error("quote snapshot was not stored")
	}
	if !quote.ExpiresAt.After(quote.CreatedAt) {
		t.Error("quote expiry must be after creation")
	}
}

func TestQuote_StoreFailureDoesNotFailQuote(t *testing.T) {
	t.Parallel()

	store := NewMockQuoteStore()
	store.PutError = errors.New("redis down")
	svc := newQuoteService(&MockDistanceProvider{Result: fallbackDistance}, store)

	quote, err := svc.GetQuote(context.Background(), tripAt(24*time.Hour))
	if err != nil {
		t.Fatalf("snapshot failure must not fail the quote: %v", err)
	}
	if quote.Price.FinalTotal <= 0 {
		t.Errorf("final total = %d, want positive", quote.Price.FinalTotal)
	}
}
