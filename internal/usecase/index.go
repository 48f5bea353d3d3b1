// Package usecase implements the trip search core: the flight index, the
// route search engine, trip composition, and result ranking.
package usecase

import "github.com/trip-search/flight-trip-search/internal/domain"

// FlightIndex groups flight records by origin airport for successor lookup
// during search. Within each group the dataset order is preserved, which
// keeps DFS emission order deterministic. The index is built once per run
// and read-only afterwards.
type FlightIndex struct {
	byOrigin map[string][]domain.Flight
	size     int
}

// BuildIndex groups the given records by origin airport.
func BuildIndex(flights []domain.Flight) *FlightIndex {
	idx := &FlightIndex{
		byOrigin: make(map[string][]domain.Flight),
		size:     len(flights),
	}
	for _, f := range flights {
		idx.byOrigin[f.Origin] = append(idx.byOrigin[f.Origin], f)
	}
	return idx
}

// Successors returns the flights departing from the given airport in dataset
// order. An unknown airport yields a nil slice, not an error: it simply has
// no outgoing flights.
func (idx *FlightIndex) Successors(airport string) []domain.Flight {
	return idx.byOrigin[airport]
}

// Size returns the number of flight records the index was built from.
func (idx *FlightIndex) Size() int {
	return idx.size
}

// Airports returns the number of distinct origin airports in the index.
func (idx *FlightIndex) Airports() int {
	return len(idx.byOrigin)
}
