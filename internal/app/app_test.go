package app

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/SergeyBogomolovv/sneaker-store/internal/config"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() config.Config {
	return config.Config{
		Http: config.Http{Host: "127.0.0.1", Port: "0"},
		Cors: config.CORS{AllowedOrigins: []string{"http://localhost:3000"}},
	}
}

func newTestApp() *application {
	return New(slog.New(slog.NewTextHandler(io.Discard, nil)), testConfig())
}

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) PingContext(ctx context.Context) error { return f(ctx) }

type pingHandler struct{}

func (pingHandler) Init(r chi.Router) {
	r.Get("/ping", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})
}

type closerFunc func() error

func (f closerFunc) Close() error { return f() }

func TestHealth(t *testing.T) {
	a := newTestApp()

	rr := httptest.NewRecorder()
	a.router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rr.Body.String())

	a.SetPingers(pingerFunc(func(context.Context) error { return errors.New("db down") }))

	rr = httptest.NewRecorder()
	a.router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
}

func TestRoutes(t *testing.T) {
	a := newTestApp()
	a.SetHTTPHandlers(pingHandler{})

	rr := httptest.NewRecorder()
	a.router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Equal(t, http.StatusTeapot, rr.Code)

	rr = httptest.NewRecorder()
	a.router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "sneaker_store_http_requests_total")
}

func TestStartStop(t *testing.T) {
	a := newTestApp()

	started := false
	closed := false
	a.SetStarters(starterFunc(func(context.Context) error {
		started = true
		return nil
	}))
	a.SetClosers(closerFunc(func() error {
		closed = true
		return nil
	}))

	require.NoError(t, a.Start(context.Background()))
	require.NoError(t, a.Stop())

	assert.True(t, started)
	assert.True(t, closed)
}

func TestStart_StarterError(t *testing.T) {
	a := newTestApp()
	a.SetStarters(starterFunc(func(context.Context) error { return errors.New("boom") }))

	assert.Error(t, a.Start(context.Background()))
}

type starterFunc func(ctx context.Context) error

func (f starterFunc) Start(ctx context.Context) error { return f(ctx) }
