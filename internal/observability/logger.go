package observability

import (
	"context"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// Logger is the process-wide logger. Tests replace it with zap.NewNop or an
// observer core.
var Logger = zap.NewNop()

func InitLogger() error {
	logger, err := zap.NewProduction(
		zap.Fields(zap.String("service", ServiceName())),
	)
	if err != nil {
		return err
	}

	Logger = logger
	return nil
}

func SyncLogger() {
	_ = Logger.Sync()
}

// LoggerWithTrace returns a child logger carrying trace_id and span_id of
// the active span in ctx.
//
// ctx itself is attached as the "context" field: the otelzap bridge takes
// any field holding a context.Context as the context for Emit, which fills
// the native TraceID/SpanID of the exported log record. Without it exported
// records carry an all-zero trace ID.
func LoggerWithTrace(ctx context.Context) *zap.Logger {
	span := trace.SpanContextFromContext(ctx)

	if !span.IsValid() {
		return Logger
	}

	return Logger.With(
		zap.Any("context", ctx),
		zap.String("trace_id", span.TraceID().String()),
		zap.String("span_id", span.SpanID().String()),
	)
}
