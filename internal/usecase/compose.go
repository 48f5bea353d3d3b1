package usecase

import "github.com/trip-search/flight-trip-search/internal/domain"

// ComposeOneWay wraps each itinerary as a priced Trip. Empty chains fail
// pricing and are skipped; the search engine never produces them.
func ComposeOneWay(itineraries []domain.Itinerary, origin, destination string, bags int) []domain.Trip {
	trips := make([]domain.Trip, 0, len(itineraries))
	for _, itin := range itineraries {
		trip, err := domain.ComposeTrip(origin, destination, bags, itin)
		if err != nil {
			continue
		}
		trips = append(trips, trip)
	}
	return trips
}

// ComposePairs combines every structurally compatible (outbound, return)
// pair into a round trip: the return must start where the outbound ends and
// end where it started. The cross product is exhaustive; incompatible pairs
// are skipped. No connection-time rule applies at the junction between legs.
func ComposePairs(outbound, returning []domain.Itinerary, origin, destination string, bags int) []domain.Trip {
	var trips []domain.Trip
	for _, out := range outbound {
		for _, ret := range returning {
			if out.Destination() != ret.Origin() || out.Origin() != ret.Destination() {
				continue
			}
			trip, err := domain.ComposeTrip(origin, destination, bags, out, ret)
			if err != nil {
				continue
			}
			trips = append(trips, trip)
		}
	}
	return trips
}
