package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"tracegate-api/internal/setup"
	"tracegate-api/internal/shared"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTrackedEcho(handler echo.HandlerFunc) *echo.Echo {
	e := echo.New()
	base := e.Group("")
	base.Use(NewTrackMiddleware(zap.NewNop().Sugar()))
	base.POST("/chat", handler)
	return e
}

func TestTrackMiddlewareEchoesSuppliedRequestID(t *testing.T) {
	e := newTrackedEcho(func(c echo.Context) error {
		return c.String(http.StatusOK, "")
	})

	req := httptest.NewRequest(http.MethodPost, "/chat", nil)
	req.Header.Set(shared.HeaderRequestID, "custom-id-123")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, "custom-id-123", rec.Header().Get(shared.HeaderRequestID))
}

func TestTrackMiddlewareGeneratesDistinctIDs(t *testing.T) {
	e := newTrackedEcho(func(c echo.Context) error {
		return c.String(http.StatusOK, "")
	})

	var ids []string
	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodPost, "/chat", nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		ids = append(ids, rec.Header().Get(shared.HeaderRequestID))
	}

	assert.NotEmpty(t, ids[0])
	assert.NotEmpty(t, ids[1])
	assert.NotEqual(t, ids[0], ids[1])
}

func TestTrackMiddlewareBuildsRequestContext(t *testing.T) {
	var captured *setup.Context
	e := newTrackedEcho(func(c echo.Context) error {
		captured = c.(*setup.Context)
		return c.String(http.StatusOK, "")
	})

	req := httptest.NewRequest(http.MethodPost, "/chat", nil)
	req.Header.Set(shared.HeaderRequestID, "req_abc")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.NotNil(t, captured)
	assert.Equal(t, "req_abc", captured.Reqid)
	assert.NotNil(t, captured.Log)
}

func TestTrackMiddlewareEchoesIDOnErrorPath(t *testing.T) {
	e := newTrackedEcho(func(c echo.Context) error {
		return shared.ErrInvalidRequest
	})

	req := httptest.NewRequest(http.MethodPost, "/chat", nil)
	req.Header.Set(shared.HeaderRequestID, "err-path-id")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, "err-path-id", rec.Header().Get(shared.HeaderRequestID))
}
