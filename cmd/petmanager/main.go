package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/demoapis/petweather/internal/auth"
	"github.com/demoapis/petweather/internal/config"
	"github.com/demoapis/petweather/internal/lifecycle"
	"github.com/demoapis/petweather/internal/observability"
	"github.com/demoapis/petweather/internal/pethttp"
	"github.com/demoapis/petweather/internal/pets"
)

func main() {
	config.LoadDotenv()

	cfg, err := config.LoadPetManager()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	logger, err := observability.NewLogger(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("starting",
		zap.String("app", cfg.AppName),
		zap.String("version", cfg.Version))

	petService := pets.NewService(pets.DefaultUsers(), logger)
	tokens := auth.NewTokenManager(cfg.SecretKey, cfg.TokenExpiry)
	handler := pethttp.NewHandler(petService, cfg.Version, logger)
	router := pethttp.NewRouter(handler, cfg, tokens, logger)

	srv := &http.Server{
		Addr:         cfg.Host + ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server", zap.Error(err))
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	<-ctx.Done()
	stop()

	logger.Info("graceful shutdown triggered")
	lifecycle.SetShuttingDown(true)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown", zap.Error(err))
	}

	if err := observability.FlushTelemetry(context.Background(), logger); err != nil {
		logger.Error("telemetry flush", zap.Error(err))
	}
	logger.Info("shutdown complete")
}
