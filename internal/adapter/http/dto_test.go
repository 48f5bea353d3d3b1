package http

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trip-search/flight-trip-search/test/testutil"
)

func validRequest() SearchTripsRequest {
	return SearchTripsRequest{
		Origin:      "WIW",
		Destination: "RFZ",
		Bags:        1,
	}
}

func TestSearchTripsRequest_Validate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*SearchTripsRequest)
		wantField string
	}{
		{name: "valid minimal request", mutate: func(*SearchTripsRequest) {}},
		{name: "valid with start date", mutate: func(r *SearchTripsRequest) { r.StartDate = "2021-09-09" }},
		{name: "valid with layover overrides", mutate: func(r *SearchTripsRequest) {
			r.MinLayoverHours = testutil.Ptr(2)
			r.MaxLayoverHours = testutil.Ptr(8)
		}},
		{name: "valid with zero min layover", mutate: func(r *SearchTripsRequest) {
			r.MinLayoverHours = testutil.Ptr(0)
		}},
		{name: "missing origin", mutate: func(r *SearchTripsRequest) { r.Origin = "" }, wantField: "origin"},
		{name: "lowercase origin", mutate: func(r *SearchTripsRequest) { r.Origin = "wiw" }, wantField: "origin"},
		{name: "missing destination", mutate: func(r *SearchTripsRequest) { r.Destination = "" }, wantField: "destination"},
		{name: "same airports", mutate: func(r *SearchTripsRequest) { r.Destination = "WIW" }, wantField: "destination"},
		{name: "negative bags", mutate: func(r *SearchTripsRequest) { r.Bags = -1 }, wantField: "bags"},
		{name: "too many bags", mutate: func(r *SearchTripsRequest) { r.Bags = 1000 }, wantField: "bags"},
		{name: "bad start date format", mutate: func(r *SearchTripsRequest) { r.StartDate = "09/09/2021" }, wantField: "start_date"},
		{name: "impossible start date", mutate: func(r *SearchTripsRequest) { r.StartDate = "2021-13-40" }, wantField: "start_date"},
		{name: "negative min layover", mutate: func(r *SearchTripsRequest) {
			r.MinLayoverHours = testutil.Ptr(-1)
		}, wantField: "min_layover_hours"},
		{name: "max layover below min", mutate: func(r *SearchTripsRequest) {
			r.MinLayoverHours = testutil.Ptr(5)
			r.MaxLayoverHours = testutil.Ptr(2)
		}, wantField: "max_layover_hours"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(&req)

			err := req.Validate()
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}

			var errs *ValidationErrors
			require.ErrorAs(t, err, &errs)
			assert.Contains(t, errs.ToMap(), tt.wantField)
		})
	}
}

func TestValidationErrors_Error(t *testing.T) {
	errs := &ValidationErrors{}
	assert.Equal(t, "validation failed", errs.Error())

	errs.add("origin", "origin is required")
	errs.add("bags", "bags cannot be negative")
	assert.Equal(t, "origin is required", errs.Error())
	assert.Len(t, errs.ToMap(), 2)
}
