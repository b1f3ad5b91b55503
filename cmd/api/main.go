// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command api is the entry point for the WasteWise HTTP API server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Connect to PostgreSQL (pgxpool).
//  4. Connect to Redis.
//  5. Run database migrations (idempotent).
//  6. Wire account services, domain services and HTTP handlers.
//  7. Start HTTP server with graceful shutdown.
//
// No business logic lives here. All wiring is explicit constructor injection.
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

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/taibuivan/wastewise/internal/accounts/account"
	"github.com/taibuivan/wastewise/internal/accounts/facility"
	"github.com/taibuivan/wastewise/internal/accounts/user"
	"github.com/taibuivan/wastewise/internal/api"
	"github.com/taibuivan/wastewise/internal/core/feedback"
	"github.com/taibuivan/wastewise/internal/core/pickup"
	"github.com/taibuivan/wastewise/internal/platform/config"
	"github.com/taibuivan/wastewise/internal/platform/constants"
	"github.com/taibuivan/wastewise/internal/platform/middleware"
	"github.com/taibuivan/wastewise/internal/platform/migration"
	pgstore "github.com/taibuivan/wastewise/internal/platform/postgres"
	redisstore "github.com/taibuivan/wastewise/internal/platform/redis"
	"github.com/taibuivan/wastewise/internal/platform/sec"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	// Initialize first so that subsequent startup errors are structured JSON.
	log := newLogger(slog.LevelInfo)
	slog.SetDefault(log)

	log.Info("service_initializing")

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		log = newLogger(slog.LevelDebug)
		slog.SetDefault(log)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
	)

	// Root context for startup. Use a 30s deadline so misconfiguration is
	// caught quickly rather than hanging indefinitely.
	startupCtx, startupCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer startupCancel()

	// ── 3. PostgreSQL ─────────────────────────────────────────────────────
	pool, err := pgstore.NewPool(startupCtx, cfg.DatabaseURL, log)
	must(log, err, "connect to postgres")
	defer func() {
		log.Info("closing_postgres_pool")
		pool.Close()
	}()

	// ── 4. Redis ──────────────────────────────────────────────────────────
	rdb, err := redisstore.NewClient(startupCtx, cfg.RedisURL, log)
	must(log, err, "connect to redis")
	defer func() {
		log.Info("closing_redis_client")
		if cerr := rdb.Close(); cerr != nil {
			log.Error("redis_close_failed", slog.Any("error", cerr))
		}
	}()

	// ── 5. Migrations ─────────────────────────────────────────────────────
	must(log, migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log), "run migrations")

	// ── 6. Security ───────────────────────────────────────────────────────
	hasher := sec.NewHasher(cfg.BcryptCost)
	tokens, err := sec.NewTokenIssuer(cfg.TokenConfig())
	must(log, err, "initialize token issuer")

	// ── 7. Accounts ───────────────────────────────────────────────────────
	userRepository := user.NewRepository(pool)
	userService := account.NewService[*user.User](user.Kind, userRepository, hasher, tokens, log)

	facilityRepository := facility.NewRepository(pool)
	facilityService := account.NewService[*facility.Facility](facility.Kind, facilityRepository, hasher, tokens, log)

	directory := facility.NewDirectory(
		facilityRepository,
		facility.NewRedisDirectoryCache(rdb, cfg.FacilityCacheTTL),
		log,
	)
	facilityService.OnChange(directory.Invalidate)

	// ── 8. Pickups & Feedback ─────────────────────────────────────────────
	pickupHandler := pickup.NewHandler(pickup.NewService(pickup.NewRepository(pool), facilityRepository, log))
	feedbackHandler := feedback.NewHandler(feedback.NewService(feedback.NewRepository(pool), facilityRepository, log))

	// ── 9. Observability ──────────────────────────────────────────────────
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	httpMetrics := middleware.NewHTTPMetrics(registry)

	liveness, readiness := api.NewHealthHandlers(api.HealthDependencies{
		CheckDatabase: func(ctx context.Context) error {
			return pgstore.Ping(ctx, pool)
		},
		CheckCache: func(ctx context.Context) error {
			return redisstore.Ping(ctx, rdb)
		},
	}, log)

	// ── 10. HTTP Server ───────────────────────────────────────────────────
	handlers := api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Metrics:   promhttp.HandlerFor(registry, promhttp.HandlerOpts{Registry: registry}),
		Users: account.NewHandler(userService, user.Codec{}).Routes(
			pickupHandler.UserRoutes(),
			feedbackHandler.UserRoutes(),
		),
		Facilities: account.NewHandler(facilityService, facility.Codec{}).Routes(
			directory.DirectoryRoutes(),
			pickupHandler.FacilityRoutes(),
			feedbackHandler.FacilityRoutes(),
		),
	}

	serverCtx, serverCancel := context.WithCancel(context.Background())
	defer serverCancel()

	server := api.NewServer(serverCtx, cfg, log, httpMetrics, handlers)

	// ── 11. Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Block until OS signal or server error.
	select {
	case sig := <-quit:
		log.Info("shutdown_signal_received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server_startup_failed", slog.Any("error", err))
	}

	log.Info("server_shutting_down", slog.Duration("timeout", constants.ShutdownTimeout))

	if err := server.Shutdown(constants.ShutdownTimeout); err != nil {
		log.Error("shutdown_failed", slog.Any("error", err))
		return
	}

	log.Info("server_stopped_cleanly")
}

func newLogger(level slog.Level) *slog.Logger {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	return slog.New(handler).With(slog.String("app", constants.AppName))
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// It is limited to startup wiring. After startup, all errors are returned
// and handled explicitly.
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("startup_failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
