package usecase

import (
	"sort"

	"github.com/trip-search/flight-trip-search/internal/domain"
)

// RankTrips sorts trips by total price ascending. The sort is stable: trips
// with equal prices keep the order they were composed in, which reflects DFS
// discovery order. The input slice is not mutated.
func RankTrips(trips []domain.Trip) []domain.Trip {
	ranked := make([]domain.Trip, len(trips))
	copy(ranked, trips)

	sort.SliceStable(ranked, func(a, b int) bool {
		return ranked[a].TotalPrice < ranked[b].TotalPrice
	})

	return ranked
}
