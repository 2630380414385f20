package pricing

import (
	"math"
	"strconv"
	"strings"

	"cab/internal/domain"
)

// Input contains the trip parameters for a price computation. Callers are
// expected to validate fields before invoking the calculator; it performs
// no validation and is a pure transform.
type Input struct {
	DistanceKm   float64
	DurationMins int
	CarType      domain.CarType
	TripType     domain.TripType
	Time         string // HH:MM pickup time, 24-hour
	Days         int    // trip span in days, round trips only
	PetOnBoard   bool
}

// Calculator computes fare breakdowns from a rate card.
type Calculator struct {
	rates RateCard
}

// NewCalculator creates a Calculator using the given rate card.
func NewCalculator(rates RateCard) *Calculator {
	return &Calculator{rates: rates}
}

// Rates returns the calculator's rate card.
func (c *Calculator) Rates() RateCard {
	return c.rates
}

// Compute calculates the full price breakdown for a trip. All currency
// values are rounded to whole units at each stage, not only at the end.
func (c *Calculator) Compute(in Input) domain.PriceBreakdown {
	rate := c.rates.RateFor(in.CarType)

	night := isNightHour(in.Time)
	allowance := c.rates.DayAllowance
	var nightSurcharge int64
	if night {
		allowance = c.rates.NightAllowance
		nightSurcharge = c.rates.NightSurcharge
	}

	if in.TripType == domain.TripTypeRoundTrip {
		rate *= c.rates.RoundTripFactor
	}

	chargeable := math.Max(in.DistanceKm, c.minKm(in))

	baseFare := round(chargeable * rate)

	var petCharge int64
	if in.PetOnBoard {
		petCharge = c.rates.PetCharge
	}

	subtotal := baseFare + allowance + nightSurcharge +
		c.rates.FestivalSurcharge + c.rates.WeatherSurcharge + petCharge
	gst := round(float64(subtotal) * c.rates.GSTRate)
	marketTotal := subtotal + gst
	discount := round(float64(marketTotal) * c.rates.DiscountRate)

	return domain.PriceBreakdown{
		RatePerKm:         rate,
		ChargeableKm:      chargeable,
		BaseFare:          baseFare,
		DriverAllowance:   allowance,
		NightSurcharge:    nightSurcharge,
		FestivalSurcharge: c.rates.FestivalSurcharge,
		WeatherSurcharge:  c.rates.WeatherSurcharge,
		PetCharge:         petCharge,
		Subtotal:          subtotal,
		GST:               gst,
		MarketTotal:       marketTotal,
		Discount:          discount,
		FinalTotal:        marketTotal - discount,
		Savings:           discount,
	}
}

// minKm returns the minimum billable distance floor for the trip.
func (c *Calculator) minKm(in Input) float64 {
	switch in.TripType {
	case domain.TripTypeRental, domain.TripTypePackage:
		return c.rates.MinKmRental
	case domain.TripTypeRoundTrip:
		days := in.Days
		if days < 1 {
			days = 1
		}
		if days > 1 {
			return math.Max(c.rates.MinKmPointToPoint, c.rates.MinKmPerDay*float64(days))
		}
		return c.rates.MinKmPointToPoint
	default:
		return c.rates.MinKmPointToPoint
	}
}

// isNightHour reports whether an HH:MM pickup time falls in the overnight
// window (22:00 through 05:59).
func isNightHour(t string) bool {
	hh, _, ok := strings.Cut(t, ":")
	if !ok {
		return false
	}
	hour, err := strconv.Atoi(hh)
	if err != nil {
		return false
	}
	return hour >= 22 || hour < 6
}

func round(v float64) int64 {
	return int64(math.Round(v))
}
