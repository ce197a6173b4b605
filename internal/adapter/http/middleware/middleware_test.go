package middleware

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runRequest(t *testing.T, mw echo.MiddlewareFunc, handler echo.HandlerFunc, mutate func(*http.Request)) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	if mutate != nil {
		mutate(req)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := mw(handler)(c)
	require.NoError(t, err)
	return rec
}

func TestRequestID_Generates(t *testing.T) {
	var seen string
	rec := runRequest(t, RequestID(), func(c echo.Context) error {
		seen = GetRequestID(c)
		return c.NoContent(http.StatusOK)
	}, nil)

	require.NotEmpty(t, seen)
	_, err := uuid.Parse(seen)
	assert.NoError(t, err)
	assert.Equal(t, seen, rec.Header().Get(RequestIDHeader))
}

func TestRequestID_PropagatesExisting(t *testing.T) {
	var seen string
	rec := runRequest(t, RequestID(), func(c echo.Context) error {
		seen = GetRequestID(c)
		return c.NoContent(http.StatusOK)
	}, func(req *http.Request) {
		req.Header.Set(RequestIDHeader, "client-supplied-id")
	})

	assert.Equal(t, "client-supplied-id", seen)
	assert.Equal(t, "client-supplied-id", rec.Header().Get(RequestIDHeader))
}

func TestRequestLogger_StatusLevels(t *testing.T) {
	tests := []struct {
		name      string
		handler   echo.HandlerFunc
		wantLevel string
	}{
		{
			name:      "success logs info",
			handler:   func(c echo.Context) error { return c.NoContent(http.StatusOK) },
			wantLevel: "info",
		},
		{
			name:      "client error logs warn",
			handler:   func(c echo.Context) error { return c.NoContent(http.StatusBadRequest) },
			wantLevel: "warn",
		},
		{
			name:      "server error logs error",
			handler:   func(c echo.Context) error { return errors.New("boom") },
			wantLevel: "error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			log := zerolog.New(&buf)

			runRequest(t, RequestLogger(log), tt.handler, nil)

			var entry map[string]any
			require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
			assert.Equal(t, tt.wantLevel, entry["level"])
			assert.Equal(t, http.MethodGet, entry["method"])
			assert.Equal(t, "/test", entry["path"])
			assert.Contains(t, entry, "duration_ms")
		})
	}
}

func TestRecover(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf)

	rec := runRequest(t, Recover(log), func(c echo.Context) error {
		panic("unexpected fault")
	}, nil)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "internal_error")
	assert.Contains(t, buf.String(), "unexpected fault")
	assert.Contains(t, buf.String(), "stack")
}

func TestRecover_PassesThroughNormally(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf)

	rec := runRequest(t, Recover(log), func(c echo.Context) error {
		return c.String(http.StatusOK, "fine")
	}, nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "fine", rec.Body.String())
	assert.Empty(t, buf.String())
}
