package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/testboard/webapi-backend/config"
	"github.com/testboard/webapi-backend/internal/bootstrap"
	"github.com/testboard/webapi-backend/internal/report"
)

func main() {
	log, _ := zap.NewProduction()
	defer log.Sync() //nolint:errcheck

	cfg, err := config.Load()
	if err != nil {
		log.Error("failed to load config", zap.Error(err))
		os.Exit(1)
	}

	if err := run(cfg, log); err != nil {
		// Best-effort startup failure report before exiting non-zero.
		report.NewReporter(cfg.Reporting, log).SendStartupFailure(err)
		log.Error("server exited with error", zap.Error(err))
		os.Exit(1)
	}
}

func run(cfg *config.Config, log *zap.Logger) error {
	bootstrap.SetGinMode(cfg.App.Environment)

	router := bootstrap.BuildRouter(bootstrap.RouterDeps{
		Config: cfg,
		Log:    log,
	})

	srv := &http.Server{
		Addr:    "0.0.0.0:" + cfg.Server.Port,
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting Backend API", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-quit:
		log.Info("shutdown requested", zap.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return err
	}

	log.Info("shutting down Backend API")
	return nil
}
