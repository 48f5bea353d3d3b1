package domain

import (
	"fmt"
	"regexp"
	"time"
)

// Default layover bounds and the bag count ceiling accepted from callers.
const (
	DefaultMinLayover = 1 * time.Hour
	DefaultMaxLayover = 6 * time.Hour
	MaxBags           = 999
)

// airportCodeRegex matches valid IATA airport codes (3 uppercase letters).
var airportCodeRegex = regexp.MustCompile(`^[A-Z]{3}$`)

// SearchCriteria defines the parameters for one trip search run.
type SearchCriteria struct {
	// Origin is the IATA code of the departure airport
	Origin string `json:"origin"`

	// Destination is the IATA code of the arrival airport
	Destination string `json:"destination"`

	// Bags is the number of checked bags the whole trip must carry
	Bags int `json:"bags"`

	// RoundTrip requests outbound plus return composition
	RoundTrip bool `json:"round_trip"`

	// StartDate bounds the first flight's departure of the outbound leg.
	// The zero value disables the filter; it never applies to connections.
	StartDate time.Time `json:"-"`

	// MinLayover is the minimum connection time between legs (inclusive)
	MinLayover time.Duration `json:"-"`

	// MaxLayover is the maximum connection time between legs (inclusive)
	MaxLayover time.Duration `json:"-"`
}

// Validate checks the criteria for usability. It returns a wrapped
// ErrInvalidCriteria on the first violation found.
func (s *SearchCriteria) Validate() error {
	if s.Origin == "" {
		return fmt.Errorf("%w: origin is required", ErrInvalidCriteria)
	}
	if !airportCodeRegex.MatchString(s.Origin) {
		return fmt.Errorf("%w: origin must be a 3-letter IATA code, got %q", ErrInvalidCriteria, s.Origin)
	}

	if s.Destination == "" {
		return fmt.Errorf("%w: destination is required", ErrInvalidCriteria)
	}
	if !airportCodeRegex.MatchString(s.Destination) {
		return fmt.Errorf("%w: destination must be a 3-letter IATA code, got %q", ErrInvalidCriteria, s.Destination)
	}

	if s.Origin == s.Destination {
		return fmt.Errorf("%w: origin and destination must be different", ErrInvalidCriteria)
	}

	if s.Bags < 0 {
		return fmt.Errorf("%w: bags cannot be negative", ErrInvalidCriteria)
	}
	if s.Bags > MaxBags {
		return fmt.Errorf("%w: bags cannot exceed %d", ErrInvalidCriteria, MaxBags)
	}

	if s.MinLayover < 0 {
		return fmt.Errorf("%w: min layover cannot be negative", ErrInvalidCriteria)
	}
	if s.MaxLayover < s.MinLayover {
		return fmt.Errorf("%w: max layover (%s) below min layover (%s)",
			ErrInvalidCriteria, s.MaxLayover, s.MinLayover)
	}

	return nil
}
