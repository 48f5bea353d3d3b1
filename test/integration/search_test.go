package integration

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trip-search/flight-trip-search/internal/domain"
)

// TestSearch_OneWay_NoBags searches the fixture dataset for WIW->RFZ with no
// bags. Two routes exist: the ZH214 direct flight and the JV042+JV943
// connection with a 1h35m layover.
func TestSearch_OneWay_NoBags(t *testing.T) {
	searcher := NewSearcher(t)

	result, err := searcher.Search(context.Background(), domain.SearchCriteria{
		Origin:      "WIW",
		Destination: "RFZ",
		MinLayover:  domain.DefaultMinLayover,
		MaxLayover:  domain.DefaultMaxLayover,
	})

	require.NoError(t, err)
	require.Len(t, result.Trips, 2)

	direct := result.Trips[0]
	assert.Equal(t, 97.0, direct.TotalPrice)
	assert.Equal(t, "4:30:00", direct.TravelTime.String())
	require.Len(t, direct.Flights, 1)
	assert.Equal(t, "ZH214", direct.Flights[0].FlightNo)
	assert.Equal(t, 1, direct.BagsAllowed)
	assert.Equal(t, 0, direct.BagsCount)

	connection := result.Trips[1]
	assert.Equal(t, 296.0, connection.TotalPrice)
	// First departure 07:25 to last arrival 15:10: the layover counts.
	assert.Equal(t, "7:45:00", connection.TravelTime.String())
	require.Len(t, connection.Flights, 2)
	assert.Equal(t, "JV042", connection.Flights[0].FlightNo)
	assert.Equal(t, "JV943", connection.Flights[1].FlightNo)
	assert.Equal(t, 2, connection.BagsAllowed)

	assert.Equal(t, 2, result.Metadata.TotalResults)
	assert.Equal(t, 4, result.Metadata.FlightsIndexed)
}

// TestSearch_OneWay_BagPricing prices the same routes for one bag: every
// flight adds its bag price once.
func TestSearch_OneWay_BagPricing(t *testing.T) {
	searcher := NewSearcher(t)

	result, err := searcher.Search(context.Background(), domain.SearchCriteria{
		Origin:      "WIW",
		Destination: "RFZ",
		Bags:        1,
		MinLayover:  domain.DefaultMinLayover,
		MaxLayover:  domain.DefaultMaxLayover,
	})

	require.NoError(t, err)
	require.Len(t, result.Trips, 2)
	assert.Equal(t, 106.0, result.Trips[0].TotalPrice) // 97 + 9
	assert.Equal(t, 305.0, result.Trips[1].TotalPrice) // 96+7 + 200+2
	assert.Equal(t, 1, result.Trips[0].BagsCount)
}

// TestSearch_OneWay_BagAllowanceExcludesRoutes asks for two bags. The direct
// ZH214 flight allows only one, so the connection is the single result.
func TestSearch_OneWay_BagAllowanceExcludesRoutes(t *testing.T) {
	searcher := NewSearcher(t)

	result, err := searcher.Search(context.Background(), domain.SearchCriteria{
		Origin:      "WIW",
		Destination: "RFZ",
		Bags:        2,
		MinLayover:  domain.DefaultMinLayover,
		MaxLayover:  domain.DefaultMaxLayover,
	})

	require.NoError(t, err)
	require.Len(t, result.Trips, 1)
	assert.Equal(t, 314.0, result.Trips[0].TotalPrice) // 96+14 + 200+4
	assert.Equal(t, 2, result.Trips[0].BagsAllowed)
	require.Len(t, result.Trips[0].Flights, 2)
}

// TestSearch_OneWay_LayoverWindowExcludesConnection tightens the minimum
// layover past the 1h35m the connection offers, leaving only the direct
// flight.
func TestSearch_OneWay_LayoverWindowExcludesConnection(t *testing.T) {
	searcher := NewSearcher(t)

	result, err := searcher.Search(context.Background(), domain.SearchCriteria{
		Origin:      "WIW",
		Destination: "RFZ",
		MinLayover:  2 * time.Hour,
		MaxLayover:  domain.DefaultMaxLayover,
	})

	require.NoError(t, err)
	require.Len(t, result.Trips, 1)
	assert.Equal(t, "ZH214", result.Trips[0].Flights[0].FlightNo)
}

// TestSearch_OneWay_StartDateFiltersFirstLeg sets an earliest departure past
// every WIW departure in the dataset; the search comes back empty, not
// erroring.
func TestSearch_OneWay_StartDateFiltersFirstLeg(t *testing.T) {
	searcher := NewSearcher(t)

	result, err := searcher.Search(context.Background(), domain.SearchCriteria{
		Origin:      "WIW",
		Destination: "RFZ",
		StartDate:   time.Date(2021, 9, 2, 0, 0, 0, 0, time.UTC),
		MinLayover:  domain.DefaultMinLayover,
		MaxLayover:  domain.DefaultMaxLayover,
	})

	require.NoError(t, err)
	assert.NotNil(t, result.Trips)
	assert.Empty(t, result.Trips)
	assert.Equal(t, 0, result.Metadata.TotalResults)
}

// TestSearch_RoundTrip pairs every WIW->RFZ outbound with the ZH665 return.
// The return departs after both outbound arrivals, and no layover rule
// applies at the turnaround.
func TestSearch_RoundTrip(t *testing.T) {
	searcher := NewSearcher(t)

	result, err := searcher.Search(context.Background(), domain.SearchCriteria{
		Origin:      "WIW",
		Destination: "RFZ",
		RoundTrip:   true,
		MinLayover:  domain.DefaultMinLayover,
		MaxLayover:  domain.DefaultMaxLayover,
	})

	require.NoError(t, err)
	require.Len(t, result.Trips, 2)

	cheapest := result.Trips[0]
	assert.Equal(t, 194.0, cheapest.TotalPrice)
	assert.Equal(t, "9:00:00", cheapest.TravelTime.String())
	require.Len(t, cheapest.Flights, 2)
	assert.Equal(t, "ZH214", cheapest.Flights[0].FlightNo)
	assert.Equal(t, "ZH665", cheapest.Flights[1].FlightNo)
	assert.Equal(t, "WIW", cheapest.Origin)
	assert.Equal(t, "RFZ", cheapest.Destination)

	// ZH214 arrives RFZ at 03:50 and ZH665 departs at 05:50: a two hour
	// turnaround, which a connection layover rule would also have allowed,
	// but the JV042+JV943 outbound arrives the previous afternoon and its
	// 14h40m turnaround still pairs fine.
	second := result.Trips[1]
	assert.Equal(t, 393.0, second.TotalPrice)
	require.Len(t, second.Flights, 3)
	assert.Equal(t, "ZH665", second.Flights[2].FlightNo)

	assert.True(t, result.Criteria.RoundTrip)
}

// TestSearch_RoundTrip_WithBags requires one bag on a round trip: ZH665
// allows a single bag, so both pairings survive with bag fees added.
func TestSearch_RoundTrip_WithBags(t *testing.T) {
	searcher := NewSearcher(t)

	result, err := searcher.Search(context.Background(), domain.SearchCriteria{
		Origin:      "WIW",
		Destination: "RFZ",
		Bags:        1,
		RoundTrip:   true,
		MinLayover:  domain.DefaultMinLayover,
		MaxLayover:  domain.DefaultMaxLayover,
	})

	require.NoError(t, err)
	require.Len(t, result.Trips, 2)
	assert.Equal(t, 212.0, result.Trips[0].TotalPrice) // 106 + 106
	assert.Equal(t, 411.0, result.Trips[1].TotalPrice) // 305 + 106
	assert.Equal(t, 1, result.Trips[0].BagsAllowed)
}

// TestSearch_NoRouteBetweenAirports searches a pair with no connecting path.
func TestSearch_NoRouteBetweenAirports(t *testing.T) {
	searcher := NewSearcher(t)

	result, err := searcher.Search(context.Background(), domain.SearchCriteria{
		Origin:      "ECV",
		Destination: "WIW",
		MinLayover:  domain.DefaultMinLayover,
		MaxLayover:  domain.DefaultMaxLayover,
	})

	require.NoError(t, err)
	assert.Empty(t, result.Trips)
}
