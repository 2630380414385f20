package domain

import "time"

// PriceBreakdown is the computed fare for a trip. All amounts are whole
// currency units, rounded at each stage of the computation.
type PriceBreakdown struct {
	RatePerKm         float64 `json:"rate_per_km"`
	ChargeableKm      float64 `json:"chargeable_km"`
	BaseFare          int64   `json:"base_fare"`
	DriverAllowance   int64   `json:"driver_allowance"`
	NightSurcharge    int64   `json:"night_surcharge"`
	FestivalSurcharge int64   `json:"festival_surcharge"`
	WeatherSurcharge  int64   `json:"weather_surcharge"`
	PetCharge         int64   `json:"pet_charge"`
	Subtotal          int64   `json:"subtotal"`
	GST               int64   `json:"gst"`
	MarketTotal       int64   `json:"market_total"`
	Discount          int64   `json:"discount"`
	FinalTotal        int64   `json:"final_total"`
	Savings           int64   `json:"savings"`
}

// Quote is a priced, not-yet-persisted estimate for a trip. The breakdown is
// snapshotted into a Booking at confirmation time and never recomputed.
type Quote struct {
	ID        string         `json:"id"`
	Trip      TripRequest    `json:"trip"`
	Distance  DistanceResult `json:"distance"`
	Price     PriceBreakdown `json:"price"`
	CreatedAt time.Time      `json:"created_at"`
	ExpiresAt time.Time      `json:"expires_at"`
}
