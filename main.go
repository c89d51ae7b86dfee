package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pasar/internal/app"
	"pasar/internal/config"
	"pasar/internal/services"
	"pasar/pkg/rabbitmq"

	"github.com/gofiber/fiber/v2"
)

const shutdownTimeout = 10 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:]); err != nil {
		slog.Error("server stopped with error", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string) error {
	cfg, err := config.Load(args)
	if err != nil {
		return err
	}
	level, err := cfg.Level()
	if err != nil {
		return err
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	var publisher services.EventPublisher
	if cfg.RabbitMQEnabled {
		mqClient, err := rabbitmq.NewClient(rabbitmq.Config{URL: cfg.RabbitMQURL, Queue: cfg.RabbitMQQueue})
		if err != nil {
			return fmt.Errorf("failed to initialize RabbitMQ client: %w", err)
		}
		defer mqClient.Close()
		if err := mqClient.ConsumeOrderEvents(app.LogOrderEvent); err != nil {
			return fmt.Errorf("failed to start order event consumer: %w", err)
		}
		publisher = mqClient
	}

	application, err := app.New(cfg, publisher)
	if err != nil {
		return err
	}

	ln, err := net.Listen("tcp", cfg.AppPort)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", cfg.AppPort, err)
	}
	slog.Info("starting server", "addr", ln.Addr().String(), "store", cfg.DatabaseDriver)
	return serve(ctx, application.Fiber, ln)
}

// serve runs the HTTP server on ln until ctx is cancelled, then shuts it down.
func serve(ctx context.Context, server *fiber.App, ln net.Listener) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Listener(ln)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	slog.Info("shutting down server")
	if err := server.ShutdownWithTimeout(shutdownTimeout); err != nil {
		return fmt.Errorf("error during shutdown: %w", err)
	}
	slog.Info("server gracefully stopped")
	return nil
}
