// Package main is the entry point for the medspa booking API server.
// Its sole responsibility is wiring dependencies together and starting the server.
// No business logic belongs here.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/moxie-medspa/backend/api"
	"github.com/moxie-medspa/backend/internal/config"
	"github.com/moxie-medspa/backend/internal/handler"
	"github.com/moxie-medspa/backend/internal/handler/gen"
	"github.com/moxie-medspa/backend/internal/middleware"
	"github.com/moxie-medspa/backend/internal/repo"
	"github.com/moxie-medspa/backend/internal/service"
	"github.com/moxie-medspa/backend/internal/telemetry"
	"github.com/moxie-medspa/backend/migrations"
)

func main() {
	// A missing .env is normal outside local development.
	_ = godotenv.Load()

	// --- Config -----------------------------------------------------------
	cfg, err := config.Load()
	if err != nil {
		slog.Error("configuration error", "error", err)
		os.Exit(1)
	}

	// --- Logger -----------------------------------------------------------
	var logLevel slog.Level
	if err := logLevel.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		logLevel = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	if err := run(cfg, logger); err != nil {
		logger.Error("server exited", "error", err)
		os.Exit(1)
	}
}

func run(cfg config.Config, logger *slog.Logger) error {
	ctx := context.Background()

	// --- Tracing ----------------------------------------------------------
	shutdownTracing, err := telemetry.Setup(ctx, cfg.Telemetry)
	if err != nil {
		return err
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(sctx); err != nil {
			logger.Warn("tracing shutdown", "error", err)
		}
	}()

	// --- Database ---------------------------------------------------------
	// pgxpool.New does not open connections immediately; the ping does.
	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer pool.Close()

	if err := pool.Ping(ctx); err != nil {
		return err
	}
	logger.Info("database connection established")

	// goose drives database/sql, so borrow the pool through the stdlib adapter.
	sqlDB := stdlib.OpenDBFromPool(pool)
	defer sqlDB.Close()

	applied, err := migrations.Up(ctx, sqlDB)
	if err != nil {
		return err
	}
	logger.Info("migrations applied", "count", applied)

	// --- Services ---------------------------------------------------------
	medspas := repo.NewMedspaRepo(pool)
	services := repo.NewServiceRepo(pool)
	appointments := repo.NewAppointmentRepo(pool)

	srv := handler.NewServer(
		service.NewCatalogService(medspas, services),
		service.NewAppointmentService(medspas, services, appointments, cfg.Location),
		logger,
		api.OpenAPI,
		handler.ReadyCheck{Name: "postgres", Check: pool.Ping},
	)

	// --- Router -----------------------------------------------------------
	// RequestID → RealIP → CORS → body limit → SlogLogger → Recoverer.
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewCORSHandler(cfg.CORSOrigins))
	r.Use(middleware.NewMaxBodySizeHandler(cfg.MaxBodyBytes))
	r.Use(middleware.NewSlogLogger(logger))
	r.Use(chimiddleware.Recoverer)
	// gen.NewStrictHandlerWithOptions adapts Server's StrictServerInterface
	// to the generated chi routes; the options keep bind and decode failures
	// in the JSON error format.
	strict := gen.NewStrictHandlerWithOptions(srv, nil, srv.StrictOptions())
	r.Mount("/", gen.HandlerWithOptions(strict, srv.ChiOptions()))

	// otelhttp sits outside the router so the server span wraps the slog
	// line and its trace_id matches.
	httpServer := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      otelhttp.NewHandler(r, "medspa-api"),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown: wait for OS signal, then give in-flight requests
	// up to 15 seconds to complete before forcefully closing.
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("server starting", "addr", httpServer.Addr, "timezone", cfg.Location.String())
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		return err
	case <-stop:
	}
	logger.Info("shutting down server")

	sctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(sctx); err != nil {
		return err
	}
	logger.Info("server stopped")
	return nil
}
