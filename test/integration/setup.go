// Package integration contains end-to-end tests that exercise the HTTP
// server and the route search engine together over a realistic snapshot.
package integration

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	routehttp "github.com/sailing-search/sailing-route-service/internal/adapter/http"
	"github.com/sailing-search/sailing-route-service/internal/adapter/http/middleware"
	"github.com/sailing-search/sailing-route-service/internal/usecase"
	"github.com/sailing-search/sailing-route-service/test/testutil"
)

// TestServer wraps a fully wired Echo instance for integration tests.
type TestServer struct {
	echo    *echo.Echo
	Planner *usecase.RoutePlanner
}

// NewTestServer builds the engine from the sample network and wires it to
// the HTTP layer with the full middleware chain, mirroring cmd/server.
func NewTestServer(t *testing.T) *TestServer {
	t.Helper()

	sailings, rates, exchangeRates := testutil.SampleNetwork()
	planner, err := usecase.NewRoutePlanner(sailings, rates, exchangeRates)
	require.NoError(t, err)

	e := echo.New()
	e.HideBanner = true
	middleware.Setup(e, zerolog.Nop())
	routehttp.RegisterRoutes(e, routehttp.NewRouteHandler(planner))

	return &TestServer{echo: e, Planner: planner}
}

// Search posts a route search request and returns the response recorder.
func (s *TestServer) Search(t *testing.T, origin, destination, criteria string) *httptest.ResponseRecorder {
	t.Helper()

	body, err := json.Marshal(map[string]string{
		"origin":      origin,
		"destination": destination,
		"criteria":    criteria,
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/routes/search", strings.NewReader(string(body)))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)
	return rec
}

// Get performs a GET request against the server.
func (s *TestServer) Get(t *testing.T, path string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)
	return rec
}

// decodeSearch decodes a successful search response body.
func decodeSearch(t *testing.T, rec *httptest.ResponseRecorder) routehttp.SearchResponseDTO {
	t.Helper()

	var resp routehttp.SearchResponseDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}
