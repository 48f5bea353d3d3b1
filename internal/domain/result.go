package domain

// SearchResult is the aggregate outcome of one search run: the echoed
// criteria, execution metadata, and the price-ranked trips. An empty Trips
// slice is a normal outcome, never an error.
type SearchResult struct {
	// Criteria echoes the search parameters
	Criteria CriteriaSummary `json:"search_criteria"`

	// Metadata describes the search execution
	Metadata SearchMetadata `json:"metadata"`

	// Trips is the ranked result list
	Trips []Trip `json:"trips"`
}

// CriteriaSummary is the criteria echo embedded in a SearchResult.
type CriteriaSummary struct {
	// Origin is the requested origin airport code
	Origin string `json:"origin"`

	// Destination is the requested destination airport code
	Destination string `json:"destination"`

	// Bags is the requested bag count
	Bags int `json:"bags"`

	// RoundTrip reports whether a return leg was composed
	RoundTrip bool `json:"round_trip"`
}

// SearchMetadata describes how a search run executed.
type SearchMetadata struct {
	// TotalResults is the number of trips returned
	TotalResults int `json:"total_results"`

	// FlightsIndexed is the number of flight records the index was built from
	FlightsIndexed int `json:"flights_indexed"`

	// SearchTimeMs is the elapsed search duration in milliseconds
	SearchTimeMs int64 `json:"search_time_ms"`
}

// NewSearchResult assembles a SearchResult from ranked trips and metadata.
// A nil trips slice is normalized to an empty one so the JSON form is always
// an array.
func NewSearchResult(criteria SearchCriteria, trips []Trip, metadata SearchMetadata) SearchResult {
	if trips == nil {
		trips = []Trip{}
	}
	metadata.TotalResults = len(trips)

	return SearchResult{
		Criteria: CriteriaSummary{
			Origin:      criteria.Origin,
			Destination: criteria.Destination,
			Bags:        criteria.Bags,
			RoundTrip:   criteria.RoundTrip,
		},
		Metadata: metadata,
		Trips:    trips,
	}
}
