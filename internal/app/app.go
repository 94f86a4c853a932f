package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/SergeyBogomolovv/sneaker-store/internal/config"
	"github.com/SergeyBogomolovv/sneaker-store/internal/middleware"
	"github.com/SergeyBogomolovv/sneaker-store/pkg/utils"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"golang.org/x/sync/errgroup"
)

type application struct {
	logger *slog.Logger

	router   chi.Router
	httpSrv  *http.Server
	pingers  []Pinger
	starters []Starter
	closers  []Closer
}

func New(logger *slog.Logger, cfg config.Config) *application {
	router := chi.NewRouter()
	router.Use(chimw.RequestID)
	router.Use(chimw.RealIP)
	router.Use(middleware.Logger(logger.With(slog.String("component", "http"))))
	router.Use(chimw.Recoverer)
	router.Use(middleware.Metrics)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.Cors.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))
	router.Use(middleware.Authenticate(logger, cfg.Auth.JWTSecret))

	httpSrv := &http.Server{
		Handler:           router,
		Addr:              net.JoinHostPort(cfg.Http.Host, cfg.Http.Port),
		ReadHeaderTimeout: 10 * time.Second,
	}

	a := &application{
		logger:  logger,
		httpSrv: httpSrv,
		router:  router,
	}

	router.Get("/health", a.health)
	router.Handle("/metrics", promhttp.Handler())
	router.Get("/swagger/*", httpSwagger.WrapHandler)

	return a
}

type HTTPHandler interface {
	Init(r chi.Router)
}

func (a *application) SetHTTPHandlers(handlers ...HTTPHandler) {
	for _, h := range handlers {
		h.Init(a.router)
	}
}

// Pinger - зависимость, доступность которой проверяет /health.
type Pinger interface {
	PingContext(ctx context.Context) error
}

func (a *application) SetPingers(pingers ...Pinger) {
	a.pingers = pingers
}

// Starter запускается до старта http сервера.
type Starter interface {
	Start(ctx context.Context) error
}

func (a *application) SetStarters(starters ...Starter) {
	a.starters = starters
}

// Closer закрывается после остановки http сервера.
type Closer interface {
	Close() error
}

func (a *application) SetClosers(closers ...Closer) {
	a.closers = closers
}

func (a *application) Start(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)
	for _, s := range a.starters {
		g.Go(func() error {
			return s.Start(gctx)
		})
	}
	if err := g.Wait(); err != nil {
		return fmt.Errorf("failed to run starters: %w", err)
	}

	ln, err := net.Listen("tcp", a.httpSrv.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen %s: %w", a.httpSrv.Addr, err)
	}

	go a.serve(ln)

	a.logger.Info("application started", slog.String("addr", ln.Addr().String()))
	return nil
}

func (a *application) serve(ln net.Listener) {
	if err := a.httpSrv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		a.logger.Error("http server stopped", slog.Any("error", err))
	}
}

const gracefulShutdownTimeout = 5 * time.Second

func (a *application) Stop() error {
	ctx, cancel := context.WithTimeout(context.Background(), gracefulShutdownTimeout)
	defer cancel()

	var errs []error
	if err := a.httpSrv.Shutdown(ctx); err != nil {
		errs = append(errs, fmt.Errorf("failed to shutdown http server: %w", err))
	}

	for _, c := range a.closers {
		if err := c.Close(); err != nil {
			errs = append(errs, err)
		}
	}

	a.logger.Info("application stopped")
	return errors.Join(errs...)
}

type healthResponse struct {
	Status string `json:"status"`
}

func (a *application) health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	for _, p := range a.pingers {
		if err := p.PingContext(ctx); err != nil {
			a.logger.WarnContext(ctx, "health check failed", slog.Any("error", err))
			utils.WriteJSON(w, healthResponse{Status: "unavailable"}, http.StatusServiceUnavailable)
			return
		}
	}
	utils.WriteJSON(w, healthResponse{Status: "ok"}, http.StatusOK)
}
