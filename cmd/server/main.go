package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/light-bringer/pricing-service/internal/services"
	httptransport "github.com/light-bringer/pricing-service/internal/transport/http"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}

func run() error {
	ctx := context.Background()

	config, err := loadConfig()
	if err != nil {
		return err
	}

	logger, err := newLogger(config.LogLevel)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer logger.Sync() //nolint:errcheck

	logger.Info("starting pricing service",
		zap.String("spannerDatabase", config.SpannerDB),
		zap.String("httpPort", config.HTTPPort),
	)

	serviceOpts, err := services.NewServiceOptions(ctx, config.SpannerDB, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize service: %w", err)
	}
	defer serviceOpts.Close()

	httpServer := &http.Server{
		Addr:              ":" + config.HTTPPort,
		Handler:           httptransport.NewRouter(serviceOpts.Handlers),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("HTTP server listening", zap.String("addr", httpServer.Addr))
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", zap.Error(err))
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	logger.Info("shutting down gracefully")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown error", zap.Error(err))
	}
	return nil
}

// Config holds application configuration.
type Config struct {
	SpannerDB string
	HTTPPort  string
	LogLevel  string
}

// loadConfig reads configuration from environment variables with defaults.
func loadConfig() (Config, error) {
	v := viper.New()
	v.SetEnvPrefix("PRICING")
	v.AutomaticEnv()

	// Default for local development with emulator
	v.SetDefault("SPANNER_DATABASE", "projects/test-project/instances/dev-instance/databases/pricing-db")
	v.SetDefault("HTTP_PORT", "8080")
	v.SetDefault("LOG_LEVEL", "info")

	return Config{
		SpannerDB: v.GetString("SPANNER_DATABASE"),
		HTTPPort:  v.GetString("HTTP_PORT"),
		LogLevel:  v.GetString("LOG_LEVEL"),
	}, nil
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	return cfg.Build()
}
