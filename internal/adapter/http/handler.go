package http

import (
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/sailing-search/sailing-route-service/internal/adapter/http/response"
	"github.com/sailing-search/sailing-route-service/internal/domain"
	"github.com/sailing-search/sailing-route-service/internal/infrastructure/timeutil"
	"github.com/sailing-search/sailing-route-service/internal/usecase"
)

// RouteHandler handles HTTP requests for route search endpoints.
type RouteHandler struct {
	finder usecase.RouteFinder
	clock  timeutil.Clock
}

// NewRouteHandler creates a new RouteHandler with the given route finder.
func NewRouteHandler(finder usecase.RouteFinder) *RouteHandler {
	return &RouteHandler{
		finder: finder,
		clock:  timeutil.NewRealClock(),
	}
}

// NewRouteHandlerWithClock creates a RouteHandler with a custom clock.
// This is useful for testing the reported search duration.
func NewRouteHandlerWithClock(finder usecase.RouteFinder, clock timeutil.Clock) *RouteHandler {
	return &RouteHandler{
		finder: finder,
		clock:  clock,
	}
}

// SearchRoutes handles POST /api/v1/routes/search.
// The criteria field selects the query: cheapest-direct scans only direct
// sailings, cheapest and fastest run the full multi-leg search. An
// unreachable destination yields an empty legs array, not an error.
func (h *RouteHandler) SearchRoutes(c echo.Context) error {
	var req SearchRoutesRequest

	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}

	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	query := req.ToDomainQuery()

	start := h.clock.Now()
	legs, err := h.dispatch(query)
	if err != nil {
		return h.handleError(c, err)
	}
	searchTimeMs := h.clock.Now().Sub(start).Milliseconds()

	return response.OK(c, ToSearchResponseDTO(query, legs, searchTimeMs))
}

// dispatch routes the query to the engine operation named by its criteria.
func (h *RouteHandler) dispatch(query domain.RouteQuery) ([]domain.Leg, error) {
	switch query.Criteria {
	case domain.CriteriaCheapestDirect:
		return h.finder.FindCheapestDirect(query.Origin, query.Destination)
	case domain.CriteriaCheapest:
		return h.finder.FindCheapestRoute(query.Origin, query.Destination)
	case domain.CriteriaFastest:
		return h.finder.FindFastestRoute(query.Origin, query.Destination)
	default:
		return nil, domain.ErrInvalidInput
	}
}

// handleValidationError handles validation errors and returns a 400 response.
func (h *RouteHandler) handleValidationError(c echo.Context, err error) error {
	var validationErrs *ValidationErrors
	if errors.As(err, &validationErrs) {
		return response.ValidationError(c, validationErrs.ToMap())
	}
	return response.ValidationErrorWithMessage(c, err.Error())
}

// handleError maps engine errors to appropriate HTTP responses.
func (h *RouteHandler) handleError(c echo.Context, err error) error {
	if errors.Is(err, domain.ErrNoOutboundSailings) {
		return response.UnknownOrigin(c, err.Error())
	}
	if errors.Is(err, domain.ErrInvalidPortCode) || errors.Is(err, domain.ErrInvalidInput) {
		return response.ValidationErrorWithMessage(c, err.Error())
	}
	return response.InternalServerError(c)
}

// Health handles GET /health.
// Simple health check endpoint.
func (h *RouteHandler) Health(c echo.Context) error {
	return response.Health(c)
}
