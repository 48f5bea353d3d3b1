package domain

import (
	"fmt"
	"time"
)

// Itinerary is one connected, non-repeating chain of flights from an origin
// to a destination. Consecutive flights connect (f[i].Destination ==
// f[i+1].Origin) and no airport appears twice along the chain; the search
// engine guarantees both.
type Itinerary []Flight

// Quote holds the derived attributes of a priced itinerary.
type Quote struct {
	// TotalPrice is the sum of base price plus per-bag fees over all flights
	TotalPrice float64

	// TravelTime is the span from first departure to last arrival
	TravelTime time.Duration

	// BagsAllowed is the minimum bag allowance across all flights
	BagsAllowed int
}

// Origin returns the first flight's origin, or "" for an empty itinerary.
func (i Itinerary) Origin() string {
	if len(i) == 0 {
		return ""
	}
	return i[0].Origin
}

// Destination returns the last flight's destination, or "" for an empty
// itinerary.
func (i Itinerary) Destination() string {
	if len(i) == 0 {
		return ""
	}
	return i[len(i)-1].Destination
}

// LastArrival returns the arrival time of the final flight.
// It is the earliest-departure bound for a return leg.
func (i Itinerary) LastArrival() DateTime {
	if len(i) == 0 {
		return DateTime{}
	}
	return i[len(i)-1].Arrival
}

// Price computes the derived attributes of the itinerary for the given bag
// count. It is a pure function; an empty itinerary yields ErrInvalidItinerary.
func (i Itinerary) Price(bags int) (Quote, error) {
	if len(i) == 0 {
		return Quote{}, fmt.Errorf("%w: empty flight chain", ErrInvalidItinerary)
	}

	q := Quote{BagsAllowed: i[0].BagsAllowed}
	for _, f := range i {
		q.TotalPrice += f.FullPrice(bags)
		if f.BagsAllowed < q.BagsAllowed {
			q.BagsAllowed = f.BagsAllowed
		}
	}
	q.TravelTime = i[len(i)-1].Arrival.Sub(i[0].Departure.Time)

	return q, nil
}

// Connected reports whether every consecutive pair of flights links up.
// The search engine only ever produces connected chains; this exists for
// loader-free construction in tests and for debugging assertions.
func (i Itinerary) Connected() bool {
	for n := 1; n < len(i); n++ {
		if i[n].Origin != i[n-1].Destination {
			return false
		}
	}
	return true
}
