package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"coolcalc/internal/calculator"
	"coolcalc/internal/config"
	"coolcalc/internal/observability"
	"coolcalc/internal/server"
	"coolcalc/internal/storage"

	"go.uber.org/zap"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "coolcalc: %v\n", err)
		os.Exit(1)
	}
}

// run returns instead of exiting so that storage is closed and telemetry is
// flushed on every path.
func run() error {

	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// Logger
	if err := observability.InitLogger(); err != nil {
		return fmt.Errorf("initializing logger: %w", err)
	}
	defer observability.SyncLogger()

	// Tracing, metrics, log export
	telemetryShutdown, err := initTelemetry(ctx, cfg)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}
	defer telemetryShutdown(ctx)

	// Storage
	backend, err := storage.Open(cfg.Storage)
	if err != nil {
		return fmt.Errorf("opening storage: %w", err)
	}
	defer backend.Close()

	api := calculator.NewAPI(
		calculator.NewDefault(),
		storage.NewExpressionStorage(backend, cfg.Storage.Backend),
	)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           server.NewRouter(api),
		ReadHeaderTimeout: 5 * time.Second,
	}

	observability.Logger.Info("server starting",
		zap.String("addr", cfg.Addr),
		zap.String("storage", cfg.Storage.Backend),
		zap.String("storage_path", cfg.Storage.Path),
		zap.Bool("telemetry", cfg.Telemetry),
	)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(stop)

	if err := serve(srv, stop, cfg.ShutdownTimeout); err != nil {
		observability.Logger.Error("server failed", zap.Error(err))
		return err
	}

	observability.Logger.Info("server stopped")
	return nil
}

// serve runs srv until ListenAndServe fails or a signal arrives on stop, in
// which case the server is shut down gracefully within timeout.
func serve(srv *http.Server, stop <-chan os.Signal, timeout time.Duration) error {
	serveErr := make(chan error, 1)

	go func() {
		serveErr <- srv.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		return fmt.Errorf("listening on %s: %w", srv.Addr, err)
	case <-stop:
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutting down: %w", err)
	}

	if err := <-serveErr; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
