package http_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	routehttp "github.com/sailing-search/sailing-route-service/internal/adapter/http"
	"github.com/sailing-search/sailing-route-service/internal/adapter/http/response"
	"github.com/sailing-search/sailing-route-service/internal/domain"
	"github.com/sailing-search/sailing-route-service/internal/infrastructure/timeutil"
	"github.com/sailing-search/sailing-route-service/test/mock"
)

func newSearchContext(body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/routes/search", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func searchBody(origin, destination, criteria string) string {
	b, _ := json.Marshal(map[string]string{
		"origin":      origin,
		"destination": destination,
		"criteria":    criteria,
	})
	return string(b)
}

func oneLeg() []domain.Leg {
	return []domain.Leg{{
		OriginPort:      "CNSHA",
		DestinationPort: "NLRTM",
		DepartureDate:   "2022-02-01",
		ArrivalDate:     "2022-03-01",
		SailingCode:     "ABCD",
		CostCents:       52326,
		Currency:        "EUR",
	}}
}

func TestSearchRoutes_DispatchByCriteria(t *testing.T) {
	tests := []struct {
		name     string
		criteria string
		expect   func(m *mock.MockRouteFinder)
	}{
		{
			name:     "cheapest-direct",
			criteria: domain.CriteriaCheapestDirect,
			expect: func(m *mock.MockRouteFinder) {
				m.EXPECT().FindCheapestDirect("CNSHA", "NLRTM").Return(oneLeg(), nil)
			},
		},
		{
			name:     "cheapest",
			criteria: domain.CriteriaCheapest,
			expect: func(m *mock.MockRouteFinder) {
				m.EXPECT().FindCheapestRoute("CNSHA", "NLRTM").Return(oneLeg(), nil)
			},
		},
		{
			name:     "fastest",
			criteria: domain.CriteriaFastest,
			expect: func(m *mock.MockRouteFinder) {
				m.EXPECT().FindFastestRoute("CNSHA", "NLRTM").Return(oneLeg(), nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			finder := mock.NewMockRouteFinder(ctrl)
			tt.expect(finder)

			handler := routehttp.NewRouteHandler(finder)
			c, rec := newSearchContext(searchBody("CNSHA", "NLRTM", tt.criteria))

			require.NoError(t, handler.SearchRoutes(c))
			assert.Equal(t, http.StatusOK, rec.Code)

			var resp routehttp.SearchResponseDTO
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, "CNSHA", resp.Query.Origin)
			assert.Equal(t, tt.criteria, resp.Query.Criteria)
			assert.Equal(t, 1, resp.Metadata.TotalLegs)
			assert.Equal(t, int64(52326), resp.Metadata.TotalCostCents)
			require.Len(t, resp.Legs, 1)
			assert.Equal(t, "ABCD", resp.Legs[0].SailingCode)
		})
	}
}

func TestSearchRoutes_EmptyResult(t *testing.T) {
	ctrl := gomock.NewController(t)
	finder := mock.NewMockRouteFinder(ctrl)
	finder.EXPECT().FindCheapestRoute("CNSHA", "NLRTM").Return([]domain.Leg{}, nil)

	handler := routehttp.NewRouteHandler(finder)
	c, rec := newSearchContext(searchBody("CNSHA", "NLRTM", domain.CriteriaCheapest))

	require.NoError(t, handler.SearchRoutes(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp routehttp.SearchResponseDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 0, resp.Metadata.TotalLegs)
	assert.NotNil(t, resp.Legs)
	assert.Empty(t, resp.Legs)
}

func TestSearchRoutes_SearchTime(t *testing.T) {
	ctrl := gomock.NewController(t)
	finder := mock.NewMockRouteFinder(ctrl)

	clock := timeutil.NewMockClock(time.Date(2024, 2, 1, 12, 0, 0, 0, time.UTC))
	finder.EXPECT().FindFastestRoute("CNSHA", "NLRTM").DoAndReturn(
		func(origin, destination string) ([]domain.Leg, error) {
			clock.Advance(35 * time.Millisecond)
			return oneLeg(), nil
		})

	handler := routehttp.NewRouteHandlerWithClock(finder, clock)
	c, rec := newSearchContext(searchBody("CNSHA", "NLRTM", domain.CriteriaFastest))

	require.NoError(t, handler.SearchRoutes(c))

	var resp routehttp.SearchResponseDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(35), resp.Metadata.SearchTimeMs)
}

func TestSearchRoutes_MalformedBody(t *testing.T) {
	ctrl := gomock.NewController(t)
	handler := routehttp.NewRouteHandler(mock.NewMockRouteFinder(ctrl))

	c, rec := newSearchContext(`{"origin": CNSHA}`)

	require.NoError(t, handler.SearchRoutes(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var detail response.ErrorDetail
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &detail))
	assert.Equal(t, response.CodeInvalidRequest, detail.Code)
}

func TestSearchRoutes_ValidationErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	handler := routehttp.NewRouteHandler(mock.NewMockRouteFinder(ctrl))

	c, rec := newSearchContext(searchBody("shanghai", "NLRTM", "quickest"))

	require.NoError(t, handler.SearchRoutes(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var detail response.ErrorDetail
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &detail))
	assert.Equal(t, response.CodeValidationError, detail.Code)
	assert.Contains(t, detail.Details, "origin")
	assert.Contains(t, detail.Details, "criteria")
	assert.NotContains(t, detail.Details, "destination")
}

func TestSearchRoutes_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{
			name:       "unknown origin",
			err:        domain.ErrNoOutboundSailings,
			wantStatus: http.StatusNotFound,
			wantCode:   response.CodeUnknownOrigin,
		},
		{
			name:       "invalid port code",
			err:        domain.ErrInvalidPortCode,
			wantStatus: http.StatusBadRequest,
			wantCode:   response.CodeValidationError,
		},
		{
			name:       "internal failure",
			err:        domain.NewQueryError("find cheapest route", errors.New("boom")),
			wantStatus: http.StatusInternalServerError,
			wantCode:   response.CodeInternalError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			finder := mock.NewMockRouteFinder(ctrl)
			finder.EXPECT().FindCheapestRoute("CNSHA", "NLRTM").Return(nil, tt.err)

			handler := routehttp.NewRouteHandler(finder)
			c, rec := newSearchContext(searchBody("CNSHA", "NLRTM", domain.CriteriaCheapest))

			require.NoError(t, handler.SearchRoutes(c))
			assert.Equal(t, tt.wantStatus, rec.Code)

			var detail response.ErrorDetail
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &detail))
			assert.Equal(t, tt.wantCode, detail.Code)
		})
	}
}

func TestHealth(t *testing.T) {
	ctrl := gomock.NewController(t)
	handler := routehttp.NewRouteHandler(mock.NewMockRouteFinder(ctrl))

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()

	require.NoError(t, handler.Health(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status": "ok"}`, rec.Body.String())
}
