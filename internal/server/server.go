// Package server boots the HTTP API: config, database, cache, routes,
// then a graceful-shutdown listener.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/shashiranjanraj/fintrack/app/routes"
	"github.com/shashiranjanraj/fintrack/config"
	"github.com/shashiranjanraj/fintrack/pkg/cache"
	"github.com/shashiranjanraj/fintrack/pkg/database"
	"github.com/shashiranjanraj/fintrack/pkg/logger"
	"github.com/shashiranjanraj/fintrack/pkg/metrics"
	"github.com/shashiranjanraj/fintrack/pkg/middleware"
	"github.com/shashiranjanraj/fintrack/pkg/migration"
	"github.com/shashiranjanraj/fintrack/pkg/reqid"
	"github.com/shashiranjanraj/fintrack/pkg/router"

	_ "github.com/shashiranjanraj/fintrack/database/migrations"
)

const shutdownTimeout = 10 * time.Second

// Run boots everything and blocks until SIGINT/SIGTERM.
func Run() error {
	if err := config.Load(); err != nil {
		return fmt.Errorf("server: load config: %w", err)
	}
	if err := config.CheckProductionSecrets(); err != nil {
		return err
	}

	if err := database.Connect(); err != nil {
		return err
	}

	if err := migration.New(database.DB).Run(); err != nil {
		return err
	}

	// Redis is optional: the vendor cache degrades to pass-through.
	if err := cache.Connect(); err != nil {
		logger.Warn("server: redis unavailable, caching disabled", "error", err)
	}

	r := NewRouter()
	routes.RegisterAPI(r, database.DB)

	addr := ":" + config.AppPort()
	srv := &http.Server{
		Addr:              addr,
		Handler:           r.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server: listening", "addr", addr, "env", config.AppEnv())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server: listen: %w", err)
	case sig := <-stop:
		logger.Info("server: shutting down", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server: shutdown: %w", err)
	}

	logger.Info("server: stopped")
	return nil
}

// NewRouter builds a router with the standard middleware stack applied.
// Exported so tests can mount routes behind the same stack.
func NewRouter() *router.Router {
	r := router.New()
	r.Use(
		metrics.Middleware(),
		reqid.Middleware(),
		middleware.Recovery,
		middleware.Logger,
		middleware.CORS(middleware.DefaultCORSOptions()),
		middleware.RateLimit(120, time.Minute),
	)
	return r
}
