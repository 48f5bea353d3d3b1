package domain

import "time"

// Flight represents one scheduled flight segment as loaded from the dataset.
// Records are validated by the loader and never mutated afterwards; the core
// trusts the structural invariants (origin != destination, arrival after
// departure, non-negative prices).
type Flight struct {
	// FlightNo is the airline's flight number (e.g., "XC233")
	FlightNo string `json:"flight_no"`

	// Origin is the departure airport code
	Origin string `json:"origin"`

	// Destination is the arrival airport code
	Destination string `json:"destination"`

	// Departure is the scheduled departure time
	Departure DateTime `json:"departure"`

	// Arrival is the scheduled arrival time
	Arrival DateTime `json:"arrival"`

	// BasePrice is the fare without baggage fees
	BasePrice float64 `json:"base_price"`

	// BagPrice is the fee charged per checked bag
	BagPrice float64 `json:"bag_price"`

	// BagsAllowed is the maximum number of checked bags this flight carries
	BagsAllowed int `json:"bags_allowed"`
}

// FullPrice returns the fare for this flight with the given number of bags.
func (f Flight) FullPrice(bags int) float64 {
	return f.BasePrice + float64(bags)*f.BagPrice
}

// TravelTime returns the duration between departure and arrival.
func (f Flight) TravelTime() time.Duration {
	return f.Arrival.Sub(f.Departure.Time)
}

// CanCarry reports whether this flight permits the requested bag count.
func (f Flight) CanCarry(bags int) bool {
	return f.BagsAllowed >= bags
}
