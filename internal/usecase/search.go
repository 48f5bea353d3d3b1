package usecase

import (
	"time"

	"github.com/trip-search/flight-trip-search/internal/domain"
)

// SearchParams bounds one route search over the flight index.
type SearchParams struct {
	// Origin is the airport the chain must start from
	Origin string

	// Destination is the airport the chain must end at
	Destination string

	// Bags prunes any flight that cannot carry this many bags
	Bags int

	// MinLayover is the inclusive lower bound on connection time
	MinLayover time.Duration

	// MaxLayover is the inclusive upper bound on connection time
	MaxLayover time.Duration

	// EarliestDeparture bounds the first flight's departure only.
	// The zero value disables the bound; it never applies to connections.
	EarliestDeparture time.Time
}

// FindItineraries enumerates every valid flight chain from params.Origin to
// params.Destination: consecutive flights connect, the layover window holds
// at every connection, every flight carries the requested bags, and no
// airport repeats along the chain. Reaching the destination is terminal for
// that branch. Emission order follows DFS over dataset order; ranking is the
// caller's concern.
func FindItineraries(idx *FlightIndex, params SearchParams) []domain.Itinerary {
	s := &searcher{
		idx:     idx,
		params:  params,
		visited: map[string]bool{params.Origin: true},
	}

	for _, first := range idx.Successors(params.Origin) {
		if !s.admissibleFirst(first) {
			continue
		}
		s.explore(first)
	}

	return s.found
}

// searcher carries the mutable DFS state for one FindItineraries call.
// The visited set and path follow push/pop-on-backtrack discipline: every
// explore call strictly undoes its own additions before returning.
type searcher struct {
	idx     *FlightIndex
	params  SearchParams
	visited map[string]bool
	path    domain.Itinerary
	found   []domain.Itinerary
}

// admissibleFirst checks the first-leg rules: the earliest-departure bound
// (when set), bag feasibility, and the no-repeat rule. Origin is pre-seeded
// in the visited set, so a flight looping straight back is rejected here too.
func (s *searcher) admissibleFirst(f domain.Flight) bool {
	if !s.params.EarliestDeparture.IsZero() && f.Departure.Before(s.params.EarliestDeparture) {
		return false
	}
	return f.CanCarry(s.params.Bags) && !s.visited[f.Destination]
}

// admissibleNext checks the connection rules against the current last flight:
// layover within [min, max] inclusive, bag feasibility, no revisit.
func (s *searcher) admissibleNext(prev, next domain.Flight) bool {
	if s.visited[next.Destination] || !next.CanCarry(s.params.Bags) {
		return false
	}
	layover := next.Departure.Sub(prev.Arrival.Time)
	return layover >= s.params.MinLayover && layover <= s.params.MaxLayover
}

// explore extends the current path with flight and recurses. A path whose
// last flight lands at the destination is recorded and not extended further:
// the destination is terminal for that branch.
func (s *searcher) explore(flight domain.Flight) {
	s.visited[flight.Destination] = true
	s.path = append(s.path, flight)

	if flight.Destination == s.params.Destination {
		chain := make(domain.Itinerary, len(s.path))
		copy(chain, s.path)
		s.found = append(s.found, chain)
	} else {
		for _, next := range s.idx.Successors(flight.Destination) {
			if s.admissibleNext(flight, next) {
				s.explore(next)
			}
		}
	}

	s.path = s.path[:len(s.path)-1]
	delete(s.visited, flight.Destination)
}
