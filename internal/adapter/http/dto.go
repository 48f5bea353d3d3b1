// Package http provides the HTTP handler layer for the trip search API.
// It handles request parsing, validation, response formatting, and error
// mapping.
package http

import (
	"regexp"

	"github.com/trip-search/flight-trip-search/internal/domain"
)

// SearchTripsRequest represents the request body for a trip search.
type SearchTripsRequest struct {
	// Origin is the IATA code of the departure airport (e.g., "WIW")
	Origin string `json:"origin"`

	// Destination is the IATA code of the arrival airport (e.g., "RFZ")
	Destination string `json:"destination"`

	// Bags is the number of checked bags the trip must carry (default 0)
	Bags int `json:"bags"`

	// RoundTrip requests outbound plus return composition
	RoundTrip bool `json:"round_trip"`

	// StartDate bounds the outbound leg's first departure (YYYY-MM-DD, optional)
	StartDate string `json:"start_date,omitempty"`

	// MinLayoverHours overrides the minimum connection time (optional)
	MinLayoverHours *int `json:"min_layover_hours,omitempty"`

	// MaxLayoverHours overrides the maximum connection time (optional)
	MaxLayoverHours *int `json:"max_layover_hours,omitempty"`
}

// Validation regex patterns.
var (
	airportCodePattern = regexp.MustCompile(`^[A-Z]{3}$`)
	datePattern        = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

// ValidationError represents a field-level validation error.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors holds multiple validation errors.
type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

// Error implements the error interface.
func (v *ValidationErrors) Error() string {
	if len(v.Errors) == 0 {
		return "validation failed"
	}
	return v.Errors[0].Message
}

// ToMap converts the errors to a field -> message map for API responses.
func (v *ValidationErrors) ToMap() map[string]string {
	m := make(map[string]string, len(v.Errors))
	for _, e := range v.Errors {
		m[e.Field] = e.Message
	}
	return m
}

// add appends a field error.
func (v *ValidationErrors) add(field, message string) {
	v.Errors = append(v.Errors, ValidationError{Field: field, Message: message})
}

// Validate checks the request fields and collects every violation.
func (r *SearchTripsRequest) Validate() error {
	errs := &ValidationErrors{}

	if r.Origin == "" {
		errs.add("origin", "origin is required")
	} else if !airportCodePattern.MatchString(r.Origin) {
		errs.add("origin", "origin must be a 3-letter IATA code")
	}

	if r.Destination == "" {
		errs.add("destination", "destination is required")
	} else if !airportCodePattern.MatchString(r.Destination) {
		errs.add("destination", "destination must be a 3-letter IATA code")
	}

	if r.Origin != "" && r.Origin == r.Destination {
		errs.add("destination", "origin and destination must be different")
	}

	if r.Bags < 0 {
		errs.add("bags", "bags cannot be negative")
	} else if r.Bags > domain.MaxBags {
		errs.add("bags", "bags cannot exceed 999")
	}

	if r.StartDate != "" {
		if !datePattern.MatchString(r.StartDate) {
			errs.add("start_date", "start_date must be in YYYY-MM-DD format")
		} else if _, err := domain.ParseDate(r.StartDate); err != nil {
			errs.add("start_date", "start_date is not a valid date")
		}
	}

	if r.MinLayoverHours != nil && *r.MinLayoverHours < 0 {
		errs.add("min_layover_hours", "min_layover_hours cannot be negative")
	}
	if r.MaxLayoverHours != nil && *r.MaxLayoverHours < 0 {
		errs.add("max_layover_hours", "max_layover_hours cannot be negative")
	}
	if r.MinLayoverHours != nil && r.MaxLayoverHours != nil &&
		*r.MaxLayoverHours < *r.MinLayoverHours {
		errs.add("max_layover_hours", "max_layover_hours must not be below min_layover_hours")
	}

	if len(errs.Errors) > 0 {
		return errs
	}
	return nil
}
