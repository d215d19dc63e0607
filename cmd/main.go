package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	_ "betterrest/docs"
	"betterrest/internal/config"
	"betterrest/internal/estimator"
	"betterrest/internal/handlers"
	"betterrest/internal/logger"
	"betterrest/internal/regression"
	"betterrest/internal/repository"
	"betterrest/internal/repository/db"
	"betterrest/internal/server"
	"betterrest/internal/service"

	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

// @title                       BetterRest API
// @version                     1.0
// @description                 Estimates the ideal bedtime from wake time, desired sleep and coffee intake.
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	cfg, err := config.Load("configs", ".")
	if err != nil {
		logger.Get(logger.InfoLevel, logger.ConsoleFormat).Fatalw("error reading config", "err", err)
	}
	log := logger.Get(cfg.Log.Level, cfg.Log.Format)
	defer func() { _ = log.Sync() }()

	sqlDB, err := db.InitDB(cfg.DB.Path)
	if err != nil {
		log.Fatalw("failed to init sqlite", "path", cfg.DB.Path, "err", err)
	}
	defer func() {
		if cerr := sqlDB.Close(); cerr != nil {
			log.Errorw("failed to close sqlite", "err", cerr)
		}
	}()

	// wire dependencies
	provider := regression.NewProvider(regression.Config{
		Kind:       cfg.Model.Kind,
		Path:       cfg.Model.Path,
		Expression: cfg.Model.Expression,
	})
	// Load eagerly so a broken artifact shows up in the startup log;
	// requests keep retrying and answer with the error alert meanwhile.
	if _, err := provider.Model(); err != nil {
		log.Errorw("model_load_failed", "kind", cfg.Model.Kind, "path", cfg.Model.Path, "err", err)
	} else if info, ok := provider.Info(); ok {
		log.Infow("model_loaded", "kind", info.Kind, "name", info.Name, "version", info.Version)
	}

	repos := repository.NewRepository(sqlDB)
	services := service.NewService(repos, provider, service.AuthOptions{
		SigningKey: cfg.Auth.SigningKey,
		TokenTTL:   cfg.Auth.TokenTTL,
	}, log)
	clock := estimator.ClockForLocale(cfg.Format.Locale, estimator.Clock12)
	apiHandler := handlers.NewHandler(services, log, clock)

	srv := server.New(cfg.Port, apiHandler.InitRoutes())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		services.ModelWatcher.Run(gCtx, cfg.Model.ReloadInterval)
		return nil
	})
	g.Go(func() error { return runHTTPServer(srv, log) })
	g.Go(func() error { return waitForShutdown(gCtx, srv, log) })

	if err := g.Wait(); err != nil {
		log.Errorw("server stopped with error", "err", err)
		return
	}
	log.Infow("server stopped")
}

// runHTTPServer blocks until the server stops; a graceful shutdown is not an error.
func runHTTPServer(srv *server.Server, log *logger.Logger) error {
	log.Infow("http_server_started", "addr", srv.Addr())
	if err := srv.Run(); err != nil {
		return fmt.Errorf("http server: %w", err)
	}
	return nil
}

// waitForShutdown waits for a termination signal (or a failed sibling) and
// drains in-flight requests.
func waitForShutdown(ctx context.Context, srv *server.Server, log *logger.Logger) error {
	<-ctx.Done()
	log.Infow("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	return nil
}
