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

	"github.com/aaravmahajanofficial/digital-storefront/internal/config"
	"github.com/aaravmahajanofficial/digital-storefront/internal/telemetry"
	"github.com/spf13/cobra"
)

// sweepInterval paces eviction of idle carts and expired toasts.
const sweepInterval = time.Minute

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context())
	},
}

func runServe(parent context.Context) error {
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := config.MustLoad(configPath)

	shutdownTracing, err := telemetry.Setup(ctx, &cfg.Otel)
	if err != nil {
		slog.Error("Error setting up tracing", slog.String("error", err.Error()))
		return err
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			slog.Error("Error flushing traces", slog.String("error", err.Error()))
		}
	}()

	a, err := newApp(ctx, cfg)
	if err != nil {
		slog.Error("Error initializing the storefront", slog.String("error", err.Error()))
		return err
	}
	defer a.close()

	server := &http.Server{
		Addr:              cfg.Addr,
		Handler:           telemetry.Middleware(a.handler, cfg.Otel.ServiceName),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go sweep(ctx, a)

	serveErr := make(chan error, 1)
	go func() {
		slog.Info("Server is starting...", slog.String("address", cfg.Addr))

		if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			slog.Error("Failed to start server", slog.String("error", err.Error()))
			return err
		}
	case <-ctx.Done():
		slog.Warn("Shutdown signal received. Preparing to stop the server...")
	}

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server shutdown encountered an issue", slog.String("error", err.Error()))
		return err
	}

	slog.Info("Server shut down gracefully. All connections closed.")
	return nil
}

func sweep(ctx context.Context, a *app) {
	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if dropped := a.carts.Sweep(); dropped > 0 {
				slog.Debug("Idle carts evicted", slog.Int("count", dropped))
			}
			a.feed.Sweep()
		}
	}
}
