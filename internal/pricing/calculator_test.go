package pricing

import (
	"testing"

	"cab/internal/domain"
)

func TestCompute_WorkedExample(t *testing.T) {
	t.Parallel()

	calc := NewCalculator(DefaultRateCard())

	got := calc.Compute(Input{
		DistanceKm: 45,
		CarType:    domain.CarTypeSedan,
		TripType:   domain.TripTypeOneWay,
		Time:       "14:00",
	})

	if got.RatePerKm != 14 {
		t.Errorf("rate per km = %v, want 14", got.RatePerKm)
	}
	if got.ChargeableKm != 45 {
		t.Errorf("chargeable km = %v, want 45", got.ChargeableKm)
	}
	if got.BaseFare != 630 {
		t.Errorf("base fare = %d, want 630", got.BaseFare)
	}
	if got.DriverAllowance != 300 {
		t.Errorf("driver allowance = %d, want 300", got.DriverAllowance)
	}
	if got.NightSurcharge != 0 {
		t.Errorf("night surcharge = %d, want 0", got.NightSurcharge)
	}
	if got.Subtotal != 930 {
		t.Errorf("subtotal = %d, want 930", got.Subtotal)
	}
	if got.GST != 47 {
		t.Errorf("gst = %d, want 47", got.GST)
	}
	if got.MarketTotal != 977 {
		t.Errorf("market total = %d, want 977", got.MarketTotal)
	}
	if got.Discount != 29 {
		t.Errorf("discount = %d, want 29", got.Discount)
	}
	if got.FinalTotal != 948 {
		t.Errorf("final total = %d, want 948", got.FinalTotal)
	}
	if got.Savings != 29 {
		t.Errorf("savings = %d, want 29", got.Savings)
	}
}

func TestCompute_RoundingInvariant(t *testing.T) {
	t.Parallel()

	calc := NewCalculator(DefaultRateCard())

	inputs := []Input{
		{DistanceKm: 45, CarType: domain.CarTypeSedan, TripType: domain.TripTypeOneWay, Time: "14:00"},
		{DistanceKm: 3.7, CarType: domain.CarTypeHatchback, TripType: domain.TripTypeOneWay, Time: "23:30"},
		{DistanceKm: 312.4, CarType: domain.CarTypeSUV, TripType: domain.TripTypeRoundTrip, Time: "05:00", Days: 2},
		{DistanceKm: 0, CarType: domain.CarTypeTempo, TripType: domain.TripTypeRental, Time: "09:15"},
		{DistanceKm: 88.8, CarType: "Limousine", TripType: domain.TripTypeOneWay, Time: "22:00", PetOnBoard: true},
	}

	for _, in := range inputs {
		got := calc.Compute(in)

		sum := got.BaseFare + got.DriverAllowance + got.NightSurcharge +
			got.FestivalSurcharge + got.WeatherSurcharge + got.PetCharge
		if got.Subtotal != sum {
			t.Errorf("%+v: subtotal = %d, want sum of components %d", in, got.Subtotal, sum)
		}
		if got.MarketTotal != got.Subtotal+got.GST {
			t.Errorf("%+v: market total = %d, want %d", in, got.MarketTotal, got.Subtotal+got.GST)
		}
		if got.FinalTotal != got.MarketTotal-got.Discount {
			t.Errorf("%+v: final total = %d, want %d", in, got.FinalTotal, got.MarketTotal-got.Discount)
		}
		if got.Savings != got.Discount {
			t.Errorf("%+v: savings = %d, want discount %d", in, got.Savings, got.Discount)
		}

		for name, v := range map[string]int64{
			"base fare":   got.BaseFare,
			"allowance":   got.DriverAllowance,
			"surcharge":   got.NightSurcharge,
			"pet charge":  got.PetCharge,
			"gst":         got.GST,
			"discount":    got.Discount,
			"final total": got.FinalTotal,
		} {
			if v < 0 {
				t.Errorf("%+v: %s is negative: %d", in, name, v)
			}
		}
	}
}

func TestCompute_MinimumDistanceFloor(t *testing.T) {
	t.Parallel()

	calc := NewCalculator(DefaultRateCard())

	tests := []struct {
		name     string
		tripType domain.TripType
		distance float64
		wantKm   float64
	}{
		{"oneway below floor", domain.TripTypeOneWay, 5, 20},
		{"oneway above floor", domain.TripTypeOneWay, 45, 45},
		{"roundtrip below floor", domain.TripTypeRoundTrip, 12, 20},
		{"rental below floor", domain.TripTypeRental, 5, 80},
		{"rental above floor", domain.TripTypeRental, 120, 120},
		{"package below floor", domain.TripTypePackage, 30, 80},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := calc.Compute(Input{
				DistanceKm: tt.distance,
				CarType:    domain.CarTypeSedan,
				TripType:   tt.tripType,
				Time:       "10:00",
			})
			if got.ChargeableKm != tt.wantKm {
				t.Errorf("chargeable km = %v, want %v", got.ChargeableKm, tt.wantKm)
			}
		})
	}
}

func TestCompute_MultiDayRoundTripMinimum(t *testing.T) {
	t.Parallel()

	calc := NewCalculator(DefaultRateCard())

	// A two-day round trip bills at least 250 km per day.
	got := calc.Compute(Input{
		DistanceKm: 180,
		CarType:    domain.CarTypeSedan,
		TripType:   domain.TripTypeRoundTrip,
		Time:       "10:00",
		Days:       2,
	})
	if got.ChargeableKm != 500 {
		t.Errorf("chargeable km = %v, want 500", got.ChargeableKm)
	}

	// A same-day round trip keeps the point-to-point floor.
	got = calc.Compute(Input{
		DistanceKm: 180,
		CarType:    domain.CarTypeSedan,
		TripType:   domain.TripTypeRoundTrip,
		Time:       "10:00",
		Days:       1,
	})
	if got.ChargeableKm != 180 {
		t.Errorf("chargeable km = %v, want 180", got.ChargeableKm)
	}
}

func TestCompute_NightWindowBoundaries(t *testing.T) {
	t.Parallel()

	calc := NewCalculator(DefaultRateCard())
	rates := DefaultRateCard()

	tests := []struct {
		time  string
		night bool
	}{
		{"22:00", true},
		{"23:45", true},
		{"05:59", true},
		{"00:30", true},
		{"06:00", false},
		{"21:59", false},
		{"14:00", false},
	}

	for _, tt := range tests {
		got := calc.Compute(Input{
			DistanceKm: 45,
			CarType:    domain.CarTypeSedan,
			TripType:   domain.TripTypeOneWay,
			Time:       tt.time,
		})

		if tt.night {
			if got.NightSurcharge != rates.NightSurcharge {
				t.Errorf("time %s: night surcharge = %d, want %d", tt.time, got.NightSurcharge, rates.NightSurcharge)
			}
			if got.DriverAllowance != rates.NightAllowance {
				t.Errorf("time %s: allowance = %d, want night allowance %d", tt.time, got.DriverAllowance, rates.NightAllowance)
			}
		} else {
			if got.NightSurcharge != 0 {
				t.Errorf("time %s: night surcharge = %d, want 0", tt.time, got.NightSurcharge)
			}
			if got.DriverAllowance != rates.DayAllowance {
				t.Errorf("time %s: allowance = %d, want day allowance %d", tt.time, got.DriverAllowance, rates.DayAllowance)
			}
		}
	}
}

func TestCompute_RoundTripRateDiscount(t *testing.T) {
	t.Parallel()

	calc := NewCalculator(DefaultRateCard())

	oneway := calc.Compute(Input{
		DistanceKm: 300,
		CarType:    domain.CarTypeSedan,
		TripType:   domain.TripTypeOneWay,
		Time:       "10:00",
	})
	roundtrip := calc.Compute(Input{
		DistanceKm: 300,
		CarType:    domain.CarTypeSedan,
		TripType:   domain.TripTypeRoundTrip,
		Time:       "10:00",
		Days:       1,
	})

	if want := oneway.RatePerKm * 0.9; roundtrip.RatePerKm != want {
		t.Errorf("roundtrip rate = %v, want %v", roundtrip.RatePerKm, want)
	}
	if roundtrip.BaseFare >= oneway.BaseFare {
		t.Errorf("roundtrip base fare %d should be below oneway %d", roundtrip.BaseFare, oneway.BaseFare)
	}
}

func TestCompute_UnknownCarTypeUsesDefaultRate(t *testing.T) {
	t.Parallel()

	rates := DefaultRateCard()
	calc := NewCalculator(rates)

	got := calc.Compute(Input{
		DistanceKm: 100,
		CarType:    "Rickshaw",
		TripType:   domain.TripTypeOneWay,
		Time:       "10:00",
	})

	if got.RatePerKm != rates.DefaultPerKm {
		t.Errorf("rate per km = %v, want default %v", got.RatePerKm, rates.DefaultPerKm)
	}
}

func TestCompute_PetCharge(t *testing.T) {
	t.Parallel()

	rates := DefaultRateCard()
	calc := NewCalculator(rates)

	without := calc.Compute(Input{
		DistanceKm: 45,
		CarType:    domain.CarTypeSedan,
		TripType:   domain.TripTypeOneWay,
		Time:       "10:00",
	})
	with := calc.Compute(Input{
		DistanceKm: 45,
		CarType:    domain.CarTypeSedan,
		TripType:   domain.TripTypeOneWay,
		Time:       "10:00",
		PetOnBoard: true,
	})

	if with.PetCharge != rates.PetCharge {
		t.Errorf("pet charge = %d, want %d", with.PetCharge, rates.PetCharge)
	}
	if with.Subtotal != without.Subtotal+rates.PetCharge {
		t.Errorf("subtotal with pet = %d, want %d", with.Subtotal, without.Subtotal+rates.PetCharge)
	}
}

func TestCompute_InjectedRateCard(t *testing.T) {
	t.Parallel()

	rates := DefaultRateCard()
	rates.PerKm = map[domain.CarType]float64{domain.CarTypeSedan: 20}
	rates.DayAllowance = 0
	rates.GSTRate = 0
	rates.DiscountRate = 0
	calc := NewCalculator(rates)

	got := calc.Compute(Input{
		DistanceKm: 50,
		CarType:    domain.CarTypeSedan,
		TripType:   domain.TripTypeOneWay,
		Time:       "10:00",
	})

	if got.FinalTotal != 1000 {
		t.Errorf("final total = %d, want 1000 with overridden rates", got.FinalTotal)
	}
}
