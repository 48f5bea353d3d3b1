package http

import (
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/trip-search/flight-trip-search/internal/adapter/http/response"
	"github.com/trip-search/flight-trip-search/internal/domain"
	"github.com/trip-search/flight-trip-search/internal/usecase"
)

// TripHandler handles HTTP requests for trip search endpoints.
type TripHandler struct {
	searcher usecase.TripSearcher
	defaults LayoverDefaults
	flights  int
}

// NewTripHandler creates a TripHandler over the given searcher.
// flightsIndexed is reported by the health endpoint.
func NewTripHandler(searcher usecase.TripSearcher, defaults LayoverDefaults, flightsIndexed int) *TripHandler {
	return &TripHandler{
		searcher: searcher,
		defaults: defaults,
		flights:  flightsIndexed,
	}
}

// SearchTrips handles POST /api/v1/trips/search.
// An empty trip list is a successful response, never an error.
func (h *TripHandler) SearchTrips(c echo.Context) error {
	var req SearchTripsRequest

	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}

	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	criteria := ToDomainCriteria(&req, h.defaults)

	result, err := h.searcher.Search(c.Request().Context(), criteria)
	if err != nil {
		return h.handleError(c, err)
	}

	return response.OK(c, result)
}

// Health handles GET /health.
func (h *TripHandler) Health(c echo.Context) error {
	return response.Health(c, h.flights)
}

// handleValidationError handles validation errors and returns a 400 response.
func (h *TripHandler) handleValidationError(c echo.Context, err error) error {
	var validationErrs *ValidationErrors
	if errors.As(err, &validationErrs) {
		return response.ValidationError(c, validationErrs.ToMap())
	}
	return response.ValidationErrorWithMessage(c, err.Error())
}

// handleError maps domain errors to HTTP responses.
func (h *TripHandler) handleError(c echo.Context, err error) error {
	if errors.Is(err, domain.ErrInvalidCriteria) {
		return response.ValidationErrorWithMessage(c, err.Error())
	}
	return response.InternalServerError(c)
}
