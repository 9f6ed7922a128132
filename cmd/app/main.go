package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"depot/cmd"
	httpin "depot/internal/adapters/in/http"
	"depot/internal/adapters/out/kafka"

	"github.com/joho/godotenv"
)

const (
	shutdownTimeout = 10 * time.Second
	topicTimeout    = 5 * time.Second
)

func main() {
	if err := run(); err != nil {
		slog.Error("Depot stopped", "error", err)
		os.Exit(1)
	}
}

func run() error {
	// A missing .env is fine: the environment alone may carry the settings.
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("load .env: %w", err)
	}
	configs := cmd.LoadConfig()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: configs.LogLevel}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := cmd.NewCompositionRoot(configs, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := app.Close(); err != nil {
			logger.Error("Failed to close adapters", "error", err)
		}
	}()

	if len(configs.KafkaBrokers) > 0 {
		topicCtx, cancel := context.WithTimeout(ctx, topicTimeout)
		err = kafka.EnsureTopic(topicCtx, configs.KafkaBrokers[0], configs.KafkaDepotEventsTopic, 1)
		cancel()
		if err != nil {
			logger.Warn("Failed to ensure depot events topic", "topic", configs.KafkaDepotEventsTopic, "error", err)
		}
	}

	if configs.SeedPath != "" {
		if _, err = app.CreateSeedLoader().LoadFile(ctx, configs.SeedPath); err != nil {
			return err
		}
	}

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		return err
	}
	defer jobManager.StopAll()

	return startWebServer(ctx, app, configs.HTTPPort, logger)
}

func startWebServer(ctx context.Context, app *cmd.CompositionRoot, port string, logger *slog.Logger) error {
	e, err := httpin.NewEcho(app.CreateHTTPServer(), logger)
	if err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("HTTP server listening", "port", port)
		errCh <- e.Start(fmt.Sprintf("0.0.0.0:%s", port))
	}()

	select {
	case err = <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	logger.Info("Shutting down HTTP server")
	return e.Shutdown(shutdownCtx)
}
