package http

import (
	"time"

	"github.com/trip-search/flight-trip-search/internal/domain"
)

// LayoverDefaults is the fallback connection-time window applied when a
// request leaves the layover bounds unset. The server wires this from
// configuration.
type LayoverDefaults struct {
	Min time.Duration
	Max time.Duration
}

// ToDomainCriteria converts a validated request into domain search criteria.
// Unset layover bounds fall back to the given defaults.
func ToDomainCriteria(req *SearchTripsRequest, defaults LayoverDefaults) domain.SearchCriteria {
	criteria := domain.SearchCriteria{
		Origin:      req.Origin,
		Destination: req.Destination,
		Bags:        req.Bags,
		RoundTrip:   req.RoundTrip,
		MinLayover:  defaults.Min,
		MaxLayover:  defaults.Max,
	}

	if req.StartDate != "" {
		// Validate already confirmed the format.
		criteria.StartDate, _ = domain.ParseDate(req.StartDate)
	}
	if req.MinLayoverHours != nil {
		criteria.MinLayover = time.Duration(*req.MinLayoverHours) * time.Hour
	}
	if req.MaxLayoverHours != nil {
		criteria.MaxLayover = time.Duration(*req.MaxLayoverHours) * time.Hour
	}

	return criteria
}
