package main

import (
	"context"

	"coolcalc/internal/calculator"
	"coolcalc/internal/config"
	"coolcalc/internal/observability"
)

// initTelemetry starts the OTel providers when enabled and registers the
// domain metric instruments. With telemetry disabled the instruments are
// created on the global no-op provider.
func initTelemetry(ctx context.Context, cfg config.Config) (func(context.Context) error, error) {
	shutdown := func(context.Context) error { return nil }

	if cfg.Telemetry {
		var err error
		shutdown, err = observability.Setup(ctx)
		if err != nil {
			return nil, err
		}
	}

	if err := calculator.InitMetrics(); err != nil {
		return nil, err
	}

	return shutdown, nil
}
