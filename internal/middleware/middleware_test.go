package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	appcontext "github.com/SeakMengs/ClubCert/internal/app_context"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func newTestEngine(t *testing.T) (*gin.Engine, *Middleware, *observer.ObservedLogs) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	core, logs := observer.New(zap.DebugLevel)
	app := &appcontext.Application{Logger: zap.New(core).Sugar()}

	m, err := NewMiddleware(app, prometheus.NewRegistry())
	require.NoError(t, err)

	r := gin.New()
	r.Use(m.RequestID, m.Logger, m.Metrics)
	r.GET("/items/:id", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, ctx.GetString(RequestIDKey))
	})
	r.GET("/metrics", func(ctx *gin.Context) {
		ctx.Status(http.StatusOK)
	})

	return r, m, logs
}

func TestRequestID(t *testing.T) {
	r, _, _ := newTestEngine(t)

	t.Run("generated when missing", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/items/1", nil))

		id := w.Header().Get(RequestIDHeader)
		assert.Len(t, id, 36)
		assert.Equal(t, id, w.Body.String())
	})

	t.Run("propagated when present", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/items/1", nil)
		req.Header.Set(RequestIDHeader, "abc-123")

		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
		assert.Equal(t, "abc-123", w.Body.String())
	})
}

func TestLoggerFields(t *testing.T) {
	r, _, logs := newTestEngine(t)

	req := httptest.NewRequest(http.MethodGet, "/missing", nil)
	req.Header.Set(RequestIDHeader, "rid-1")
	r.ServeHTTP(httptest.NewRecorder(), req)

	entries := logs.FilterMessage("Request rejected").All()
	require.Len(t, entries, 1)

	fields := entries[0].ContextMap()
	assert.Equal(t, "rid-1", fields["request_id"])
	assert.Equal(t, "GET", fields["method"])
	assert.Equal(t, "/missing", fields["path"])
	assert.EqualValues(t, http.StatusNotFound, fields["status"])
	assert.Contains(t, fields, "latency_ms")
}

func TestMetricsUsesRoutePattern(t *testing.T) {
	r, m, _ := newTestEngine(t)

	for _, path := range []string{"/items/1", "/items/2", "/nope", "/metrics"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	assert.Equal(t, 2.0, testutil.ToFloat64(m.requestCount.WithLabelValues("GET", "/items/:id", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.requestCount.WithLabelValues("GET", "unmatched", "404")))
	assert.Equal(t, 2, testutil.CollectAndCount(m.requestCount))
}
