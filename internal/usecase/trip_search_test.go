package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trip-search/flight-trip-search/internal/domain"
	"github.com/trip-search/flight-trip-search/internal/infrastructure/timeutil"
)

func TestTripSearcher_OneWayRankedByPrice(t *testing.T) {
	// A connecting chain with a 2h45m layover and a pricier direct flight.
	// With one bag: chain = (67+7)+(120+12) = 206, direct = 210+15 = 225.
	index := BuildIndex([]domain.Flight{
		mkFlight("XC233", "BTW", "WTF", "2021-09-09T09:30:00", "2021-09-09T11:15:00", 67, 7, 2),
		mkFlight("VJ832", "WTF", "REJ", "2021-09-09T14:00:00", "2021-09-09T16:00:00", 120, 12, 2),
		mkFlight("ZZ999", "BTW", "REJ", "2021-09-09T10:00:00", "2021-09-09T16:00:00", 210, 15, 1),
	})

	searcher := NewTripSearcher(index, nil)
	result, err := searcher.Search(context.Background(), domain.SearchCriteria{
		Origin:      "BTW",
		Destination: "REJ",
		Bags:        1,
		MinLayover:  1 * time.Hour,
		MaxLayover:  6 * time.Hour,
	})
	require.NoError(t, err)

	require.Len(t, result.Trips, 2)
	assert.Equal(t, 206.0, result.Trips[0].TotalPrice)
	assert.Equal(t, 225.0, result.Trips[1].TotalPrice)
	assert.Equal(t, "6:30:00", result.Trips[0].TravelTime.String())
	assert.Equal(t, 2, result.Metadata.TotalResults)
}

func TestTripSearcher_RoundTripBagFeasibility(t *testing.T) {
	// Round trip with two bags: the bags_allowed=1 return flight and the
	// return departing before the outbound arrival must both be excluded.
	index := BuildIndex([]domain.Flight{
		mkFlight("OB001", "BTW", "WTF", "2021-09-09T10:00:00", "2021-09-09T12:00:00", 100, 10, 2),
		mkFlight("RT001", "WTF", "BTW", "2021-09-09T15:00:00", "2021-09-09T17:00:00", 90, 9, 2),
		mkFlight("RT002", "WTF", "BTW", "2021-09-09T18:00:00", "2021-09-09T20:00:00", 80, 8, 1),
		mkFlight("RT003", "WTF", "BTW", "2021-09-09T11:00:00", "2021-09-09T13:00:00", 70, 7, 2),
	})

	searcher := NewTripSearcher(index, nil)
	result, err := searcher.Search(context.Background(), domain.SearchCriteria{
		Origin:      "BTW",
		Destination: "WTF",
		Bags:        2,
		RoundTrip:   true,
		MinLayover:  1 * time.Hour,
		MaxLayover:  6 * time.Hour,
	})
	require.NoError(t, err)

	require.Len(t, result.Trips, 1)
	trip := result.Trips[0]
	require.Len(t, trip.Flights, 2)
	assert.Equal(t, "OB001", trip.Flights[0].FlightNo)
	assert.Equal(t, "RT001", trip.Flights[1].FlightNo)
	// (100+20) outbound + (90+18) return
	assert.Equal(t, 228.0, trip.TotalPrice)
	// Travel time sums the legs; the three-hour ground gap does not count
	assert.Equal(t, "4:00:00", trip.TravelTime.String())
	assert.Equal(t, 2, trip.BagsAllowed)
	for _, f := range trip.Flights {
		assert.GreaterOrEqual(t, f.BagsAllowed, 2)
	}
}

func TestTripSearcher_RoundTripCrossProduct(t *testing.T) {
	// One outbound, two feasible returns: every pair becomes a trip.
	index := BuildIndex([]domain.Flight{
		mkFlight("OB001", "BTW", "WTF", "2021-09-09T10:00:00", "2021-09-09T12:00:00", 100, 10, 9),
		mkFlight("RT001", "WTF", "BTW", "2021-09-09T15:00:00", "2021-09-09T17:00:00", 90, 9, 9),
		mkFlight("RT002", "WTF", "BTW", "2021-09-10T08:00:00", "2021-09-10T10:00:00", 95, 9, 9),
	})

	searcher := NewTripSearcher(index, nil)
	result, err := searcher.Search(context.Background(), domain.SearchCriteria{
		Origin:      "BTW",
		Destination: "WTF",
		RoundTrip:   true,
		MinLayover:  1 * time.Hour,
		MaxLayover:  6 * time.Hour,
	})
	require.NoError(t, err)

	assert.Len(t, result.Trips, 2)
}

func TestTripSearcher_EmptyResultIsNotAnError(t *testing.T) {
	index := BuildIndex([]domain.Flight{
		mkFlight("AA001", "BTW", "WTF", "2021-09-09T10:00:00", "2021-09-09T12:00:00", 100, 10, 9),
	})

	searcher := NewTripSearcher(index, nil)
	result, err := searcher.Search(context.Background(), domain.SearchCriteria{
		Origin:      "BTW",
		Destination: "REJ",
		MinLayover:  1 * time.Hour,
		MaxLayover:  6 * time.Hour,
	})

	require.NoError(t, err)
	assert.NotNil(t, result.Trips)
	assert.Empty(t, result.Trips)
}

func TestTripSearcher_InvalidCriteria(t *testing.T) {
	searcher := NewTripSearcher(BuildIndex(nil), nil)

	_, err := searcher.Search(context.Background(), domain.SearchCriteria{
		Origin:      "BTW",
		Destination: "BTW",
		MaxLayover:  6 * time.Hour,
	})

	assert.ErrorIs(t, err, domain.ErrInvalidCriteria)
}

func TestTripSearcher_StartDateFirstLegOnly(t *testing.T) {
	index := BuildIndex([]domain.Flight{
		mkFlight("AA001", "BTW", "REJ", "2021-09-08T08:00:00", "2021-09-08T09:00:00", 50, 5, 9),
		mkFlight("AA002", "BTW", "WTF", "2021-09-09T08:00:00", "2021-09-09T09:00:00", 50, 5, 9),
		mkFlight("AA003", "WTF", "REJ", "2021-09-09T10:30:00", "2021-09-09T11:30:00", 50, 5, 9),
	})

	searcher := NewTripSearcher(index, nil)
	result, err := searcher.Search(context.Background(), domain.SearchCriteria{
		Origin:      "BTW",
		Destination: "REJ",
		StartDate:   time.Date(2021, 9, 9, 0, 0, 0, 0, time.UTC),
		MinLayover:  1 * time.Hour,
		MaxLayover:  6 * time.Hour,
	})
	require.NoError(t, err)

	require.Len(t, result.Trips, 1)
	assert.Equal(t, "AA002", result.Trips[0].Flights[0].FlightNo)
}

func TestTripSearcher_Metadata(t *testing.T) {
	index := BuildIndex([]domain.Flight{
		mkFlight("ZZ999", "BTW", "REJ", "2021-09-09T10:00:00", "2021-09-09T16:00:00", 210, 15, 1),
	})

	clock := timeutil.NewMockClock(time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC))
	searcher := NewTripSearcher(index, clock)

	result, err := searcher.Search(context.Background(), domain.SearchCriteria{
		Origin:      "BTW",
		Destination: "REJ",
		MinLayover:  1 * time.Hour,
		MaxLayover:  6 * time.Hour,
	})
	require.NoError(t, err)

	assert.Equal(t, 1, result.Metadata.FlightsIndexed)
	assert.Equal(t, 1, result.Metadata.TotalResults)
	// Frozen clock: measured duration is exactly zero
	assert.Equal(t, int64(0), result.Metadata.SearchTimeMs)
}

func TestTripSearcher_RoundTripCancellation(t *testing.T) {
	index := BuildIndex([]domain.Flight{
		mkFlight("OB001", "BTW", "WTF", "2021-09-09T10:00:00", "2021-09-09T12:00:00", 100, 10, 9),
		mkFlight("RT001", "WTF", "BTW", "2021-09-09T15:00:00", "2021-09-09T17:00:00", 90, 9, 9),
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	searcher := NewTripSearcher(index, nil)
	_, err := searcher.Search(ctx, domain.SearchCriteria{
		Origin:      "BTW",
		Destination: "WTF",
		RoundTrip:   true,
		MinLayover:  1 * time.Hour,
		MaxLayover:  6 * time.Hour,
	})

	assert.ErrorIs(t, err, context.Canceled)
}
