package calculator

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"coolcalc/internal/arithmetic"
	"coolcalc/internal/expression"
	"coolcalc/internal/handlers"
	"coolcalc/internal/observability"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// tracer is the calculator's dedicated OpenTelemetry tracer.
var tracer = otel.Tracer("calculator")

// Recorder persists an evaluated expression with its result.
type Recorder interface {
	Insert(ctx context.Context, expr, result string) error
}

// API serves expression evaluation. Every successful evaluation is stored
// through the Recorder exactly once.
type API struct {
	calc  *Calculator
	store Recorder
}

func NewAPI(calc *Calculator, store Recorder) *API {
	return &API{calc: calc, store: store}
}

// failureFor maps an evaluation error to its HTTP failure description.
func failureFor(opName string, err error) observability.Failure {
	kind := ErrorKind(err)
	msg := err.Error()
	if kind == KindSyntax {
		msg = "invalid expression"
	}
	return observability.Failure{
		Operation: opName,
		Kind:      kind,
		Message:   msg,
		Status:    statusForKind(kind),
	}
}

func badRequest(opName, msg string) observability.Failure {
	return observability.Failure{
		Operation: opName,
		Kind:      "bad_request",
		Message:   msg,
		Status:    http.StatusBadRequest,
	}
}

func elapsedMillis(start time.Time) float64 {
	return float64(time.Since(start).Microseconds()) / 1000.0
}

// ---------------------------------------------------------------------------
// Handler — expression evaluation
// ---------------------------------------------------------------------------

// Calculate handles POST /calculator/calculate
func (a *API) Calculate(w http.ResponseWriter, r *http.Request) {
	const opName = "calculate"

	ctx := r.Context()
	logger := observability.LoggerWithTrace(ctx)
	requestID := observability.RequestIDFromContext(ctx)

	ctx, span := tracer.Start(ctx, "calculator.calculate",
		trace.WithAttributes(
			attribute.String("calculator.operation", opName),
			attribute.String("request.id", requestID),
		),
	)
	defer span.End()

	var req CalculateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, badRequest(opName, "invalid request body"), err, w)
		return
	}

	span.SetAttributes(attribute.String("calculator.expression", req.Expression))

	start := time.Now()
	value, err := a.calc.Evaluate(req.Expression)
	elapsed := elapsedMillis(start)

	if err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, failureFor(opName, err), err, w)
		return
	}

	// Stored records are one per line, so persist the single-spaced form.
	expr := expression.Normalize(req.Expression)
	result := strconv.FormatInt(value, 10)

	if err := a.insert(ctx, expr, result); err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, observability.Failure{
			Operation: opName,
			Kind:      "storage",
			Message:   "storing expression failed",
			Status:    http.StatusInternalServerError,
		}, err, w)
		return
	}

	attrs := metric.WithAttributes(attribute.String("operation", opName))
	opsCounter.Add(ctx, 1, attrs)
	opsHistogram.Record(ctx, elapsed, attrs)
	resultGauge.Record(ctx, value, attrs)

	span.AddEvent("computation.complete", trace.WithAttributes(
		attribute.String("result", result),
		attribute.Float64("duration_ms", elapsed),
	))
	span.SetAttributes(attribute.String("calculator.result", result))
	span.SetStatus(codes.Ok, "")

	logger.Info("expression evaluated",
		zap.String("expression", expr),
		zap.String("result", result),
		zap.String("request_id", requestID),
		zap.Float64("duration_ms", elapsed),
	)

	handlers.WriteJSON(w, http.StatusOK, CalculateResponse{
		Expression: expr,
		Result:     result,
	})
}

// insert stores the record inside its own child span.
func (a *API) insert(ctx context.Context, expr, result string) error {
	ctx, span := tracer.Start(ctx, "calculator.store")
	defer span.End()

	if err := a.store.Insert(ctx, expr, result); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "insert failed")
		return err
	}

	storeCounter.Add(ctx, 1)
	span.SetStatus(codes.Ok, "")
	return nil
}

// ---------------------------------------------------------------------------
// Handlers — binary operations
// ---------------------------------------------------------------------------

// Add handles POST /calculator/add
func Add(w http.ResponseWriter, r *http.Request) {
	handleBinaryOp(w, r, arithmetic.OpAdd)
}

// Subtract handles POST /calculator/subtract
func Subtract(w http.ResponseWriter, r *http.Request) {
	handleBinaryOp(w, r, arithmetic.OpSubtract)
}

// Multiply handles POST /calculator/multiply
func Multiply(w http.ResponseWriter, r *http.Request) {
	handleBinaryOp(w, r, arithmetic.OpMultiply)
}

// Divide handles POST /calculator/divide. Only exact quotients succeed.
func Divide(w http.ResponseWriter, r *http.Request) {
	handleBinaryOp(w, r, arithmetic.OpDivide)
}

// handleBinaryOp is the shared implementation for all binary operations.
func handleBinaryOp(w http.ResponseWriter, r *http.Request, op arithmetic.Operator) {
	opName := op.Name()

	ctx := r.Context()
	logger := observability.LoggerWithTrace(ctx)
	requestID := observability.RequestIDFromContext(ctx)

	ctx, span := tracer.Start(ctx, fmt.Sprintf("calculator.%s", opName),
		trace.WithAttributes(
			attribute.String("calculator.operation", opName),
			attribute.String("request.id", requestID),
		),
	)
	defer span.End()

	var req CalcRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, badRequest(opName, "invalid request body"), err, w)
		return
	}

	span.SetAttributes(
		attribute.Int64("calculator.operand.a", req.A),
		attribute.Int64("calculator.operand.b", req.B),
	)

	start := time.Now()
	result, err := arithmetic.Apply(op, req.A, req.B)
	elapsed := elapsedMillis(start)

	if err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, failureFor(opName, err), err, w)
		return
	}

	attrs := metric.WithAttributes(attribute.String("operation", opName))
	opsCounter.Add(ctx, 1, attrs)
	opsHistogram.Record(ctx, elapsed, attrs)
	resultGauge.Record(ctx, result, attrs)

	span.AddEvent("computation.complete", trace.WithAttributes(
		attribute.Int64("result", result),
		attribute.Float64("duration_ms", elapsed),
	))
	span.SetAttributes(attribute.Int64("calculator.result", result))
	span.SetStatus(codes.Ok, "")

	logger.Info("calculator operation completed",
		zap.String("operation", opName),
		zap.Int64("a", req.A),
		zap.Int64("b", req.B),
		zap.Int64("result", result),
		zap.String("request_id", requestID),
		zap.Float64("duration_ms", elapsed),
	)

	handlers.WriteJSON(w, http.StatusOK, CalcResponse{
		Operation: opName,
		A:         req.A,
		B:         req.B,
		Result:    result,
	})
}

// ---------------------------------------------------------------------------
// Handler — chained operations
// ---------------------------------------------------------------------------

func chainStepSpanName(op arithmetic.Operator) string {
	return "calculator.chain.step." + op.Name()
}

// Chain handles POST /calculator/chain. It applies the steps to a running
// total strictly left to right, with one child span per step.
func Chain(w http.ResponseWriter, r *http.Request) {
	const opName = "chain"

	ctx := r.Context()
	logger := observability.LoggerWithTrace(ctx)
	requestID := observability.RequestIDFromContext(ctx)

	ctx, span := tracer.Start(ctx, "calculator.chain",
		trace.WithAttributes(
			attribute.String("request.id", requestID),
		),
	)
	defer span.End()

	var req ChainRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, badRequest(opName, "invalid request body"), err, w)
		return
	}

	if len(req.Steps) == 0 {
		observability.RecordError(ctx, span, logger, errorCounter, badRequest(opName, "no steps provided"), errors.New("steps array is empty"), w)
		return
	}

	span.SetAttributes(
		attribute.Int64("chain.initial", req.Initial),
		attribute.Int("chain.steps_count", len(req.Steps)),
	)

	logger.Info("starting chained calculation",
		zap.Int64("initial", req.Initial),
		zap.Int("steps", len(req.Steps)),
		zap.String("request_id", requestID),
	)

	running := req.Initial
	results := make([]ChainResult, 0, len(req.Steps))

	for i, step := range req.Steps {
		op, ok := arithmetic.LookupOperator(step.Op)

		// op.Name() is "unknown" for anything LookupOperator rejected, which
		// keeps span names to a fixed set.
		_, stepSpan := tracer.Start(ctx, chainStepSpanName(op),
			trace.WithAttributes(
				attribute.Int("chain.step.index", i),
				attribute.String("chain.step.operation", op.Name()),
				attribute.Int64("chain.step.input", running),
				attribute.Int64("chain.step.value", step.Value),
			),
		)

		stepStart := time.Now()
		prev := running

		var err error
		if !ok {
			err = fmt.Errorf("%w %q at step %d", arithmetic.ErrUnknownOperator, step.Op, i)
		} else {
			var next int64
			next, err = arithmetic.Apply(op, running, step.Value)
			if err != nil {
				err = fmt.Errorf("step %d: %w", i, err)
			} else {
				running = next
			}
		}

		stepElapsed := elapsedMillis(stepStart)

		if err != nil {
			stepSpan.RecordError(err)
			stepSpan.SetStatus(codes.Error, err.Error())
			stepSpan.End()

			span.SetAttributes(attribute.Int("chain.failed_step", i))
			observability.RecordError(ctx, span, logger, errorCounter, failureFor(opName, err), err, w)
			return
		}

		attrs := metric.WithAttributes(attribute.String("operation", op.Name()))
		opsCounter.Add(ctx, 1, attrs)
		opsHistogram.Record(ctx, stepElapsed, attrs)

		stepSpan.AddEvent("step.complete", trace.WithAttributes(
			attribute.Int64("input", prev),
			attribute.Int64("result", running),
		))
		stepSpan.SetAttributes(attribute.Int64("chain.step.result", running))
		stepSpan.SetStatus(codes.Ok, "")
		stepSpan.End()

		logger.Info("chain step completed",
			zap.Int("step", i),
			zap.String("operation", op.Name()),
			zap.Int64("input", prev),
			zap.Int64("value", step.Value),
			zap.Int64("result", running),
			zap.Float64("duration_ms", stepElapsed),
		)

		results = append(results, ChainResult{
			Op:     op.Name(),
			Value:  step.Value,
			Result: running,
		})
	}

	resultGauge.Record(ctx, running, metric.WithAttributes(attribute.String("operation", opName)))

	span.AddEvent("chain.complete", trace.WithAttributes(
		attribute.Int64("final_result", running),
		attribute.Int("total_steps", len(req.Steps)),
	))
	span.SetAttributes(attribute.Int64("chain.result", running))
	span.SetStatus(codes.Ok, "")

	logger.Info("chained calculation completed",
		zap.Int64("initial", req.Initial),
		zap.Int64("result", running),
		zap.Int("steps", len(req.Steps)),
		zap.String("request_id", requestID),
	)

	handlers.WriteJSON(w, http.StatusOK, ChainResponse{
		Initial: req.Initial,
		Steps:   results,
		Result:  running,
	})
}
