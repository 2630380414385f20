package domain

import "time"

// TripType represents the kind of trip being booked.
type TripType string

const (
	TripTypeOneWay    TripType = "oneway"
	TripTypeRoundTrip TripType = "roundtrip"
	TripTypeRental    TripType = "rental"
	TripTypePackage   TripType = "package"
)

// IsValid returns true if the trip type is recognized.
func (t TripType) IsValid() bool {
	switch t {
	case TripTypeOneWay, TripTypeRoundTrip, TripTypeRental, TripTypePackage:
		return true
	}
	return false
}

// CarType represents the vehicle class requested for a trip.
type CarType string

const (
	CarTypeHatchback CarType = "Hatchback"
	CarTypeSedan     CarType = "Sedan"
	CarTypeSUV       CarType = "SUV"
	CarTypeTempo     CarType = "Tempo Traveller"
)

// TripRequest is the user-supplied trip intent. It is immutable once
// submitted for pricing; a quote carries a snapshot of it.
type TripRequest struct {
	Origin         string
	Destination    string // empty for rental/package trips
	RentalPackage  string // package code, rental/package trips only
	TripType       TripType
	CarType        CarType
	Date           string // YYYY-MM-DD
	Time           string // HH:MM, 24-hour
	ReturnDate     string // YYYY-MM-DD, round trips only
	Passengers     int
	ChildOnBoard   bool
	PatientOnBoard bool
	PetOnBoard     bool
}

// DateTime parses the trip date and time in the given location.
func (r TripRequest) DateTime(loc *time.Location) (time.Time, error) {
	return time.ParseInLocation("2006-01-02 15:04", r.Date+" "+r.Time, loc)
}

// Days returns the number of calendar days the trip spans, based on the
// return date. Single-day and malformed inputs count as one day.
func (r TripRequest) Days() int {
	if r.ReturnDate == "" {
		return 1
	}
	start, err1 := time.Parse("2006-01-02", r.Date)
	end, err2 := time.Parse("2006-01-02", r.ReturnDate)
	if err1 != nil || err2 != nil || end.Before(start) {
		return 1
	}
	return int(end.Sub(start).Hours()/24) + 1
}

// DistanceResult is the resolved road distance and duration for a trip leg.
// Estimated is true when the value came from the fallback estimate rather
// than the distance provider, so bookings can record provenance.
type DistanceResult struct {
	Km           float64
	DurationMins int
	Estimated    bool
}
