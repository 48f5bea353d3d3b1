// Package integration verifies the whole pipeline working together: the CSV
// loader feeding the index, the search use case walking it, and the HTTP
// layer on top. The dataset fixture lives in test/testdata.
package integration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/trip-search/flight-trip-search/internal/adapter/csvfile"
	triphttp "github.com/trip-search/flight-trip-search/internal/adapter/http"
	"github.com/trip-search/flight-trip-search/internal/domain"
	"github.com/trip-search/flight-trip-search/internal/usecase"
)

// datasetPath is the shared CSV fixture, relative to this package.
const datasetPath = "../testdata/example0.csv"

// LoadDataset reads the fixture dataset and fails the test on any load error.
func LoadDataset(t *testing.T) []domain.Flight {
	t.Helper()

	reader := csvfile.NewReader(filepath.FromSlash(datasetPath))
	flights, err := reader.Read()
	require.NoError(t, err)
	require.NotEmpty(t, flights)

	return flights
}

// NewSearcher builds a ready-to-use search use case over the fixture dataset.
func NewSearcher(t *testing.T) usecase.TripSearcher {
	t.Helper()

	index := usecase.BuildIndex(LoadDataset(t))
	return usecase.NewTripSearcher(index, nil)
}

// TestServer wraps an Echo instance serving the trip search API over the
// fixture dataset.
type TestServer struct {
	Echo *echo.Echo
}

// NewTestServer wires the full HTTP stack: loader, index, use case, handler.
func NewTestServer(t *testing.T) *TestServer {
	t.Helper()

	flights := LoadDataset(t)
	index := usecase.BuildIndex(flights)
	searcher := usecase.NewTripSearcher(index, nil)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	defaults := triphttp.LayoverDefaults{
		Min: domain.DefaultMinLayover,
		Max: domain.DefaultMaxLayover,
	}
	handler := triphttp.NewTripHandler(searcher, defaults, index.Size())
	triphttp.RegisterRoutes(e, handler)

	return &TestServer{Echo: e}
}

// SearchRequest posts a search request body and returns the recorded response.
func (ts *TestServer) SearchRequest(t *testing.T, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/trips/search", bytes.NewReader(payload))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	ts.Echo.ServeHTTP(rec, req)

	return rec
}
