package observability

import (
	"context"
	"net/http"

	"coolcalc/internal/handlers"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// Failure describes a failed operation for RecordError.
type Failure struct {
	Operation string
	Kind      string
	Message   string
	Status    int
}

// RecordError reports a failure everywhere at once: span error and status,
// the domain error counter (operation and kind attributes), a trace
// correlated log line and the JSON error response.
func RecordError(ctx context.Context, span trace.Span, logger *zap.Logger, counter metric.Int64Counter, f Failure, err error, w http.ResponseWriter) {
	span.RecordError(err)
	span.SetStatus(codes.Error, f.Message)

	counter.Add(ctx, 1, metric.WithAttributes(
		attribute.String("operation", f.Operation),
		attribute.String("kind", f.Kind),
	))

	logger.Error(f.Message,
		zap.String("operation", f.Operation),
		zap.String("kind", f.Kind),
		zap.Error(err),
		zap.String("request_id", RequestIDFromContext(ctx)),
	)

	handlers.WriteError(w, f.Status, f.Message)
}
