package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestLevelFor(t *testing.T) {
	testCases := []struct {
		status int
		want   slog.Level
	}{
		{status: http.StatusOK, want: slog.LevelInfo},
		{status: http.StatusFound, want: slog.LevelInfo},
		{status: http.StatusNotFound, want: slog.LevelWarn},
		{status: http.StatusBadGateway, want: slog.LevelError},
	}

	for _, tc := range testCases {
		t.Run(http.StatusText(tc.status), func(t *testing.T) {
			assert.Equal(t, tc.want, levelFor(tc.status))
		})
	}
}

func newRouter(logger *slog.Logger) chi.Router {
	r := chi.NewRouter()
	r.Use(Logger(logger), Metrics)
	r.Get("/orders/transaction/{code}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	r.Get("/ok", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})
	return r
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	r := newRouter(slog.New(slog.NewTextHandler(&buf, nil)))

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/orders/transaction/abc", nil))

	out := buf.String()
	assert.Contains(t, out, "level=WARN")
	assert.Contains(t, out, "status=404")
	assert.Contains(t, out, "route=/orders/transaction/{code}")
	assert.Contains(t, out, "path=/orders/transaction/abc")
}

func TestMetrics(t *testing.T) {
	r := newRouter(slog.New(slog.DiscardHandler))

	before := testutil.ToFloat64(httpRequestsTotal.WithLabelValues(http.MethodGet, "/ok", "200"))
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/ok", nil))
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/orders/transaction/xyz", nil))

	assert.Equal(t, before+1, testutil.ToFloat64(httpRequestsTotal.WithLabelValues(http.MethodGet, "/ok", "200")))
	assert.GreaterOrEqual(t, testutil.ToFloat64(
		httpRequestsTotal.WithLabelValues(http.MethodGet, "/orders/transaction/{code}", "404")), 1.0)
}
