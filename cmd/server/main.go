package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/p-n-ai/pai-planner/internal/activity"
	"github.com/p-n-ai/pai-planner/internal/api"
	"github.com/p-n-ai/pai-planner/internal/catalog"
	"github.com/p-n-ai/pai-planner/internal/learning"
	"github.com/p-n-ai/pai-planner/internal/platform/cache"
	"github.com/p-n-ai/pai-planner/internal/platform/config"
	"github.com/p-n-ai/pai-planner/internal/platform/database"
	"github.com/p-n-ai/pai-planner/internal/platform/idgen"
	"github.com/p-n-ai/pai-planner/internal/session"
)

func main() {
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid config", "error", err)
		os.Exit(1)
	}
	slog.SetDefault(newLogger(os.Stdout, cfg.Log))

	// Graceful shutdown on SIGTERM/SIGINT.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	handler, cleanup, err := buildApp(ctx, cfg)
	if err != nil {
		slog.Error("failed to start", "error", err)
		os.Exit(1)
	}
	defer cleanup()

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		slog.Info("server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("shutdown error", "error", err)
	}
}

// newLogger builds the process logger from the log settings.
func newLogger(w io.Writer, cfg config.LogConfig) *slog.Logger {
	var level slog.Level
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level, AddSource: cfg.AddSource}
	if cfg.Format == "text" {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

// newEventLogger persists events when a database is available and only logs
// them otherwise.
func newEventLogger(db *database.DB) activity.EventLogger {
	if db == nil {
		return activity.LogEventLogger{}
	}
	return activity.NewPostgresEventLogger(db.Pool)
}

// buildApp connects the configured backends, seeds the catalog and returns
// the HTTP handler. cleanup releases every connection that was opened.
func buildApp(ctx context.Context, cfg *config.Config) (http.Handler, func(), error) {
	var closers []func()
	cleanup := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	apiCfg := api.Config{QuizSource: learning.RandomSource{}}
	ids := idgen.UUID{}
	var db *database.DB

	if cfg.HasDatabase() {
		var err error
		db, err = database.New(ctx, cfg.Database.URL, cfg.Database.MaxConns, cfg.Database.MinConns)
		if err != nil {
			return nil, cleanup, fmt.Errorf("connecting database: %w", err)
		}
		closers = append(closers, db.Close)
		if err := db.Migrate(ctx); err != nil {
			cleanup()
			return nil, func() {}, err
		}

		pgCatalog, err := catalog.NewPostgresCatalog(db.Pool, ids)
		if err != nil {
			cleanup()
			return nil, func() {}, err
		}
		apiCfg.Catalog = pgCatalog
		apiCfg.HealthChecks = append(apiCfg.HealthChecks, api.HealthCheck{Name: "database", Check: db.HealthCheck})
		slog.Info("using postgres catalog and event log")
	} else {
		apiCfg.Catalog = catalog.NewMemoryCatalog(ids)
		slog.Info("no database configured, using in-memory catalog")
	}
	apiCfg.Events = newEventLogger(db)

	ttl := time.Duration(cfg.Session.TTL) * time.Minute
	if cfg.HasCache() {
		c, err := cache.New(ctx, cfg.Cache.URL)
		if err != nil {
			cleanup()
			return nil, func() {}, fmt.Errorf("connecting cache: %w", err)
		}
		closers = append(closers, func() { c.Close() })

		store, err := session.NewRedisStore(c.Client, ttl)
		if err != nil {
			cleanup()
			return nil, func() {}, err
		}
		apiCfg.Sessions = store
		apiCfg.HealthChecks = append(apiCfg.HealthChecks, api.HealthCheck{Name: "cache", Check: c.HealthCheck})
	} else {
		apiCfg.Sessions = session.NewMemoryStore(ttl)
		slog.Info("no cache configured, using in-memory sessions")
	}

	loader, err := catalog.NewLoader(cfg.CatalogPath)
	if err != nil {
		cleanup()
		return nil, func() {}, fmt.Errorf("loading catalog: %w", err)
	}
	if _, err := catalog.Seed(ctx, apiCfg.Catalog, loader.Resources()); err != nil {
		cleanup()
		return nil, func() {}, err
	}

	return api.New(apiCfg).Handler(), cleanup, nil
}
