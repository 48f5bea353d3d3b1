package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// TravelTime is an aggregate trip duration. It renders as H:MM:SS with
// unbounded hours (a 28.5 hour trip prints "28:30:00").
type TravelTime time.Duration

// String formats the duration as H:MM:SS.
func (t TravelTime) String() string {
	d := time.Duration(t)
	hours := d / time.Hour
	d -= hours * time.Hour
	minutes := d / time.Minute
	d -= minutes * time.Minute
	seconds := d / time.Second
	return fmt.Sprintf("%d:%02d:%02d", hours, minutes, seconds)
}

// MarshalJSON implements json.Marshaler.
func (t TravelTime) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.String() + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler. It accepts the H:MM:SS form
// produced by MarshalJSON.
func (t *TravelTime) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	parts := strings.Split(s, ":")
	if len(parts) != 3 {
		return fmt.Errorf("parse travel time %q: want H:MM:SS", s)
	}

	var total time.Duration
	units := []time.Duration{time.Hour, time.Minute, time.Second}
	for n, part := range parts {
		value, err := strconv.Atoi(part)
		if err != nil || value < 0 {
			return fmt.Errorf("parse travel time %q: bad component %q", s, part)
		}
		total += time.Duration(value) * units[n]
	}

	*t = TravelTime(total)
	return nil
}

// Trip is the externally visible result unit: one itinerary for a one-way
// search, or outbound plus return legs flattened into a single flight list
// for a round trip. Field order matches the rendered JSON output.
type Trip struct {
	// Flights is the flattened, ordered flight list across all legs
	Flights []Flight `json:"flights"`

	// BagsAllowed is the minimum bag allowance across all legs
	BagsAllowed int `json:"bags_allowed"`

	// BagsCount is the bag count the trip was priced for
	BagsCount int `json:"bags_count"`

	// Destination is the requested destination airport code
	Destination string `json:"destination"`

	// Origin is the requested origin airport code
	Origin string `json:"origin"`

	// TotalPrice is the summed price of all legs for BagsCount bags
	TotalPrice float64 `json:"total_price"`

	// TravelTime is the summed travel time of all legs
	TravelTime TravelTime `json:"travel_time"`
}

// ComposeTrip builds a Trip from one or more priced legs. Price and travel
// time aggregate as sums across legs; the bag allowance is the minimum.
// No connection-time rule applies between legs: the gap between outbound
// arrival and return departure at the shared destination is unconstrained.
func ComposeTrip(origin, destination string, bags int, legs ...Itinerary) (Trip, error) {
	if len(legs) == 0 {
		return Trip{}, fmt.Errorf("%w: trip needs at least one leg", ErrInvalidItinerary)
	}

	trip := Trip{
		BagsCount:   bags,
		Destination: destination,
		Origin:      origin,
	}

	var travel time.Duration
	for n, leg := range legs {
		quote, err := leg.Price(bags)
		if err != nil {
			return Trip{}, err
		}
		trip.Flights = append(trip.Flights, leg...)
		trip.TotalPrice += quote.TotalPrice
		travel += quote.TravelTime
		if n == 0 || quote.BagsAllowed < trip.BagsAllowed {
			trip.BagsAllowed = quote.BagsAllowed
		}
	}
	trip.TravelTime = TravelTime(travel)

	return trip, nil
}
