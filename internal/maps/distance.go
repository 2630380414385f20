package maps

import (
	"context"
	"fmt"
	"math"

	"googlemaps.github.io/maps"

	"cab/internal/domain"
)

// RouteService resolves road distances via the Google Maps Directions API.
type RouteService struct {
	client *maps.Client
	region string
}

// NewRouteService creates a RouteService with the given API key. The region
// biases geocoding of free-text place names.
func NewRouteService(apiKey, region string) (*RouteService, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return &RouteService{client: client, region: region}, nil
}

// Distance returns the driving distance and duration between origin and
// destination. Origin and destination may be free-text place names or
// "lat,lng" coordinate pairs.
func (s *RouteService) Distance(ctx context.Context, origin, destination string) (domain.DistanceResult, error) {
	req := &maps.DirectionsRequest{
		Origin:      origin,
		Destination: destination,
		Mode:        maps.TravelModeDriving,
		Region:      s.region,
	}

	routes, _, err := s.client.Directions(ctx, req)
	if err != nil {
		return domain.DistanceResult{}, fmt.Errorf("maps api error: %w", err)
	}

	if len(routes) == 0 || len(routes[0].Legs) == 0 {
		return domain.DistanceResult{}, fmt.Errorf("no route found between %q and %q", origin, destination)
	}

	leg := routes[0].Legs[0]
	return domain.DistanceResult{
		Km:           float64(leg.Distance.Meters) / 1000.0,
		DurationMins: int(math.Round(leg.Duration.Minutes())),
	}, nil
}
