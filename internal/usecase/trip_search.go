package usecase

import (
	"context"

	"github.com/trip-search/flight-trip-search/internal/domain"
	"github.com/trip-search/flight-trip-search/internal/infrastructure/timeutil"
)

// TripSearcher is the entry point for running a full trip search: route
// enumeration, optional round-trip composition, pricing, and ranking.
type TripSearcher interface {
	// Search runs one search over the indexed dataset. An empty result list
	// is a normal outcome; only invalid criteria or cancellation produce an
	// error.
	Search(ctx context.Context, criteria domain.SearchCriteria) (*domain.SearchResult, error)
}

// tripSearcher implements TripSearcher over a pre-built flight index.
type tripSearcher struct {
	index *FlightIndex
	clock timeutil.Clock
}

// NewTripSearcher creates a TripSearcher over the given index. A nil clock
// falls back to the system clock.
func NewTripSearcher(index *FlightIndex, clock timeutil.Clock) TripSearcher {
	if clock == nil {
		clock = timeutil.NewRealClock()
	}
	return &tripSearcher{
		index: index,
		clock: clock,
	}
}

// Search implements TripSearcher.
func (ts *tripSearcher) Search(ctx context.Context, criteria domain.SearchCriteria) (*domain.SearchResult, error) {
	started := ts.clock.Now()

	if err := criteria.Validate(); err != nil {
		return nil, err
	}

	outbound := FindItineraries(ts.index, SearchParams{
		Origin:            criteria.Origin,
		Destination:       criteria.Destination,
		Bags:              criteria.Bags,
		MinLayover:        criteria.MinLayover,
		MaxLayover:        criteria.MaxLayover,
		EarliestDeparture: criteria.StartDate,
	})

	var trips []domain.Trip
	if criteria.RoundTrip {
		composed, err := ts.composeRoundTrips(ctx, criteria, outbound)
		if err != nil {
			return nil, err
		}
		trips = composed
	} else {
		trips = ComposeOneWay(outbound, criteria.Origin, criteria.Destination, criteria.Bags)
	}

	result := domain.NewSearchResult(criteria, RankTrips(trips), domain.SearchMetadata{
		FlightsIndexed: ts.index.Size(),
		SearchTimeMs:   ts.clock.Now().Sub(started).Milliseconds(),
	})
	return &result, nil
}

// composeRoundTrips pairs each outbound itinerary with every compatible
// return itinerary. The return leg is searched with origin and destination
// swapped and the outbound arrival as its earliest departure; no layover
// rule applies at the junction between the legs.
func (ts *tripSearcher) composeRoundTrips(ctx context.Context, criteria domain.SearchCriteria, outbound []domain.Itinerary) ([]domain.Trip, error) {
	var trips []domain.Trip
	for _, out := range outbound {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		returning := FindItineraries(ts.index, SearchParams{
			Origin:            criteria.Destination,
			Destination:       criteria.Origin,
			Bags:              criteria.Bags,
			MinLayover:        criteria.MinLayover,
			MaxLayover:        criteria.MaxLayover,
			EarliestDeparture: out.LastArrival().Time,
		})

		trips = append(trips, ComposePairs([]domain.Itinerary{out}, returning,
			criteria.Origin, criteria.Destination, criteria.Bags)...)
	}
	return trips, nil
}
