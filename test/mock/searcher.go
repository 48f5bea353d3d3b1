// Package mock provides test doubles for the trip search system.
// These mocks are designed for handler and integration testing where we need
// configurable behavior (errors, canned results, call inspection).
package mock

import (
	"context"
	"sync"

	"github.com/trip-search/flight-trip-search/internal/domain"
)

// Searcher is a configurable mock implementation of usecase.TripSearcher.
// It is configured using the builder pattern methods and records the
// criteria it was called with.
type Searcher struct {
	result *domain.SearchResult
	err    error
	calls  []domain.SearchCriteria
	mu     sync.Mutex
}

// NewSearcher creates a new mock searcher returning an empty result.
func NewSearcher() *Searcher {
	empty := domain.NewSearchResult(domain.SearchCriteria{}, nil, domain.SearchMetadata{})
	return &Searcher{result: &empty}
}

// WithResult configures the searcher to return the given result.
func (s *Searcher) WithResult(result *domain.SearchResult) *Searcher {
	s.result = result
	return s
}

// WithError configures the searcher to fail with the given error.
func (s *Searcher) WithError(err error) *Searcher {
	s.err = err
	return s
}

// Search implements usecase.TripSearcher.
func (s *Searcher) Search(_ context.Context, criteria domain.SearchCriteria) (*domain.SearchResult, error) {
	s.mu.Lock()
	s.calls = append(s.calls, criteria)
	s.mu.Unlock()

	if s.err != nil {
		return nil, s.err
	}
	return s.result, nil
}

// Calls returns the criteria of every Search invocation so far.
func (s *Searcher) Calls() []domain.SearchCriteria {
	s.mu.Lock()
	defer s.mu.Unlock()
	calls := make([]domain.SearchCriteria, len(s.calls))
	copy(calls, s.calls)
	return calls
}
