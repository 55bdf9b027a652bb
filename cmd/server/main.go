// Animerec - Hybrid Anime Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	_ "github.com/tomtom215/animerec/docs" // Import generated swagger docs
	"github.com/tomtom215/animerec/internal/api"
	"github.com/tomtom215/animerec/internal/auth"
	"github.com/tomtom215/animerec/internal/cache"
	"github.com/tomtom215/animerec/internal/config"
	"github.com/tomtom215/animerec/internal/database"
	"github.com/tomtom215/animerec/internal/logging"
	"github.com/tomtom215/animerec/internal/metrics"
	"github.com/tomtom215/animerec/internal/supervisor"
	"github.com/tomtom215/animerec/internal/supervisor/services"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	issueToken := flag.String("issue-token", "", "print an admin token for `subject` and exit")
	flag.Parse()

	// Load configuration first to get logging settings
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Caller:    cfg.Logging.Caller,
		Timestamp: true,
	})

	if *issueToken != "" {
		if err := printAdminToken(os.Stdout, &cfg.Security, *issueToken); err != nil {
			logging.Fatal().Err(err).Msg("Failed to issue admin token")
		}
		return
	}

	if err := run(cfg); err != nil {
		logging.Fatal().Err(err).Msg("Server stopped with error")
	}
	logging.Info().Msg("Application stopped gracefully")
}

// printAdminToken writes a signed admin token for subject to w.
func printAdminToken(w io.Writer, sec *config.SecurityConfig, subject string) error {
	m, err := auth.NewJWTManager(sec)
	if err != nil {
		return err
	}
	token, err := m.GenerateToken(subject, auth.RoleAdmin)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, token)
	return err
}

//nolint:gocyclo // Sequential setup steps
func run(cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logging.Info().
		Str("version", version).
		Str("environment", cfg.Server.Environment).
		Str("db_path", cfg.Database.Path).
		Str("auth_mode", cfg.Security.AuthMode).
		Msg("Starting Animerec")

	metrics.AppInfo.WithLabelValues(version, runtime.Version()).Set(1)
	go trackUptime(ctx, time.Now())

	db, err := database.New(&cfg.Database)
	if err != nil {
		return fmt.Errorf("initialize database: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing database")
		}
	}()
	logging.Info().Msg("Database initialized successfully")

	if cfg.Dataset.ImportOnStartup {
		if err := importDataset(ctx, db, &cfg.Dataset, logging.WithComponent("dataset")); err != nil {
			return err
		}
	}
	if counts, err := db.GetRecordCounts(ctx); err != nil {
		logging.Warn().Err(err).Msg("Failed to read record counts")
	} else if !counts.Prepared() {
		logging.Warn().
			Int64("ratings", counts.Ratings).
			Int64("user_embeddings", counts.UserEmbeddings).
			Int64("item_embeddings", counts.ItemEmbeddings).
			Msg("Dataset is not prepared; the service stays unready until a reload succeeds")
	}

	rec, err := initRecommend(cfg, db, logging.WithComponent("recommend"))
	if err != nil {
		return err
	}

	var results *cache.ResultStore
	if cfg.Cache.Enabled {
		results, err = cache.OpenResultStore(cache.ResultStoreConfig{
			Path: cfg.Cache.ResultPath,
			TTL:  cfg.Cache.ResultTTL,
		})
		if err != nil {
			return fmt.Errorf("open result cache: %w", err)
		}
		defer func() {
			if err := results.Close(); err != nil {
				logging.Error().Err(err).Msg("Error closing result cache")
			}
		}()
		logging.Info().Str("path", cfg.Cache.ResultPath).Dur("ttl", cfg.Cache.ResultTTL).Msg("Result cache opened")
	}

	refresh := services.NewRefreshService(rec.Engine, services.RefreshServiceConfig{
		Interval:           cfg.Refresh.Interval,
		MinTriggerInterval: cfg.Refresh.MinTriggerInterval,
		Timeout:            cfg.Recommend.LoadTimeout,
	}, logging.WithComponent("refresh"))
	if results != nil {
		refresh.SetResultPurger(results)
	}
	if cfg.Refresh.Reprepare {
		refresh.SetPrepare(func(ctx context.Context) error {
			_, err := db.Prepare(ctx, cfg.Dataset.MinUserRatings)
			return err
		})
	}

	// A failed first load is not fatal: readiness reports 503 until a
	// scheduled or admin-triggered refresh succeeds.
	if err := refresh.Refresh(ctx, services.TriggerStartup); err != nil {
		logging.Warn().Err(err).Msg("Initial snapshot load failed")
	}

	audit := logging.NewAdminAuditLogger(logging.WithComponent("audit"))
	guard, err := newGuard(cfg, audit)
	if err != nil {
		return err
	}

	handler := api.NewHandler(rec.Engine)
	handler.SetReloader(refresh)
	handler.SetBreaker(rec.Breaker)
	handler.SetAuditLogger(audit)
	if results != nil {
		handler.SetResultCache(results)
	}
	if rec.Neighbors != nil {
		handler.SetNeighborStats(rec.Neighbors)
	}
	if rec.Artifacts != nil {
		handler.SetArtifacts(rec.Artifacts)
	}

	if cfg.Security.RateLimitDisabled {
		logging.Warn().Msg("Rate limiting is DISABLED (DISABLE_RATE_LIMIT=true)")
	}
	if cfg.ShouldWarnAboutCORS() {
		logging.Warn().Msg("CORS allows any origin (CORS_ORIGINS=*); set explicit origins in production")
	}

	router := api.NewRouter(handler, guard, api.NewChiMiddleware(api.ChiMiddlewareConfigFromSecurity(&cfg.Security)))
	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router.SetupChi(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       cfg.Server.Timeout,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       60 * time.Second,
	}

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger("supervisor"), supervisor.DefaultTreeConfig())
	if err != nil {
		return fmt.Errorf("create supervisor tree: %w", err)
	}

	tree.AddDataService(refresh)
	if maintenance := newCacheMaintenance(rec, results); maintenance != nil {
		tree.AddDataService(maintenance)
	}
	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second, logging.WithComponent("http")))
	logging.Info().Str("addr", server.Addr).Msg("HTTP server service added")

	logging.Info().Msg("Starting supervisor tree...")
	errCh := tree.ServeBackground(ctx)

	var serveErr error
	select {
	case <-ctx.Done():
		logging.Info().Msg("Shutdown signal received, waiting for supervisor to finish...")
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			serveErr = fmt.Errorf("supervisor tree: %w", err)
		}
		stop()
	}

	for err := range errCh {
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor shutdown error")
		}
	}

	if unstopped, err := tree.Root().UnstoppedServiceReport(); err == nil && len(unstopped) > 0 {
		for _, svc := range unstopped {
			logging.Warn().Str("service", svc.Name).Msg("Service failed to stop within timeout")
		}
	}

	return serveErr
}

// newGuard builds the admin guard for the configured auth mode.
func newGuard(cfg *config.Config, audit *logging.AdminAuditLogger) (*auth.Guard, error) {
	switch cfg.Security.AuthMode {
	case auth.AuthModeNone:
		logging.Warn().Msg("Admin endpoints are UNAUTHENTICATED (AUTH_MODE=none); use only for local development")
		return auth.NewGuard(auth.AuthModeNone, nil, audit), nil
	default:
		jwtManager, err := auth.NewJWTManager(&cfg.Security)
		if err != nil {
			return nil, fmt.Errorf("initialize JWT manager: %w", err)
		}
		logging.Info().Msg("JWT authentication enabled for admin endpoints")
		return auth.NewGuard(auth.AuthModeJWT, jwtManager, audit), nil
	}
}

// newCacheMaintenance returns nil when neither cache is enabled.
func newCacheMaintenance(rec *RecommendComponents, results *cache.ResultStore) *services.CacheMaintenanceService {
	var sweeper services.ExpirySweeper
	if rec.Neighbors != nil {
		sweeper = rec.Neighbors
	}
	var gc services.GarbageCollector
	if results != nil {
		gc = results
	}
	if sweeper == nil && gc == nil {
		return nil
	}
	return services.NewCacheMaintenanceService(sweeper, gc, 5*time.Minute, logging.WithComponent("cache"))
}

func trackUptime(ctx context.Context, start time.Time) {
	ticker := time.NewTicker(15 * time.Second)
	defer ticker.Stop()
	for {
		metrics.AppUptime.Set(time.Since(start).Seconds())
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}
