package pricing

import "cab/internal/domain"

// RentalPackage describes a fixed hourly rental package.
type RentalPackage struct {
	Km    float64
	Hours int
}

// RateCard holds all pricing parameters. It is injected into the Calculator
// so rates can vary per deployment or per test.
type RateCard struct {
	PerKm        map[domain.CarType]float64
	DefaultPerKm float64

	DayAllowance   int64
	NightAllowance int64
	NightSurcharge int64

	// Optional seasonal surcharges, zero unless a deployment sets them.
	FestivalSurcharge int64
	WeatherSurcharge  int64

	PetCharge int64

	RoundTripFactor float64 // per-km rate multiplier for round trips

	MinKmPointToPoint float64
	MinKmRental       float64
	MinKmPerDay       float64 // round-trip minimum billable km per trip day

	GSTRate      float64
	DiscountRate float64 // competitive discount off the market total

	Packages map[string]RentalPackage
}

// DefaultRateCard returns the production rate card.
func DefaultRateCard() RateCard {
	return RateCard{
		PerKm: map[domain.CarType]float64{
			domain.CarTypeHatchback: 12,
			domain.CarTypeSedan:     14,
			domain.CarTypeSUV:       18,
			domain.CarTypeTempo:     24,
		},
		DefaultPerKm:      15,
		DayAllowance:      300,
		NightAllowance:    500,
		NightSurcharge:    200,
		PetCharge:         200,
		RoundTripFactor:   0.9,
		MinKmPointToPoint: 20,
		MinKmRental:       80,
		MinKmPerDay:       250,
		GSTRate:           0.05,
		DiscountRate:      0.03,
		Packages: map[string]RentalPackage{
			"4hr40km":   {Km: 40, Hours: 4},
			"8hr80km":   {Km: 80, Hours: 8},
			"12hr120km": {Km: 120, Hours: 12},
		},
	}
}

// RateFor returns the per-km rate for a car type, falling back to the
// default rate for unknown types.
func (r RateCard) RateFor(carType domain.CarType) float64 {
	if rate, ok := r.PerKm[carType]; ok {
		return rate
	}
	return r.DefaultPerKm
}

// PackageKm returns the billable distance for a rental package code.
// Unknown codes fall back to the rental minimum.
func (r RateCard) PackageKm(code string) float64 {
	if pkg, ok := r.Packages[code]; ok {
		return pkg.Km
	}
	return r.MinKmRental
}
