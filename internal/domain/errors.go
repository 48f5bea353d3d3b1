package domain

import "errors"

// Sentinel errors for the search core. Callers match them with errors.Is;
// lower layers wrap them with fmt.Errorf("%w: ...") to add context.
var (
	// ErrInvalidItinerary reports an empty flight chain handed to the pricer
	// or the trip composer. It indicates a search engine invariant violation,
	// not a user-facing condition.
	ErrInvalidItinerary = errors.New("invalid itinerary")

	// ErrInvalidCriteria reports unusable search parameters.
	ErrInvalidCriteria = errors.New("invalid search criteria")
)
