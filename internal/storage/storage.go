// Package storage persists evaluated expressions as "<expression>;<result>"
// records through a pluggable append-only Handler.
package storage

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// RecordSeparator joins the expression and its result in a stored record.
const RecordSeparator = ";"

var recordsPersisted = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "coolcalc_records_persisted_total",
	Help: "Total number of expression records handed to a storage backend.",
}, []string{"backend"})

// Handler is an append-only record sink.
type Handler interface {
	Save(ctx context.Context, record string) error
}

// FormatRecord builds the stored form of an evaluated expression.
func FormatRecord(expr, result string) string {
	return expr + RecordSeparator + result
}

// ExpressionStorage formats evaluated expressions and hands them to a Handler.
type ExpressionStorage struct {
	handler Handler
	backend string
}

func NewExpressionStorage(handler Handler, backend string) *ExpressionStorage {
	return &ExpressionStorage{handler: handler, backend: backend}
}

// Insert saves one record for expr and result. It calls the handler exactly
// once and does not retry.
func (s *ExpressionStorage) Insert(ctx context.Context, expr, result string) error {
	if err := s.handler.Save(ctx, FormatRecord(expr, result)); err != nil {
		return fmt.Errorf("saving expression record: %w", err)
	}
	recordsPersisted.WithLabelValues(s.backend).Inc()
	return nil
}
