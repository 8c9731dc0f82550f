// Package calculator evaluates infix integer expressions and exposes the
// evaluation, the single arithmetic operations and chained running totals
// over HTTP.
package calculator

import (
	"fmt"
	"slices"
	"strconv"

	"coolcalc/internal/arithmetic"
	"coolcalc/internal/expression"
)

// Calculator validates, tokenizes and reduces expressions. It holds no
// per-call state and is safe for concurrent use when its collaborators are.
type Calculator struct {
	analyzer  expression.Analyzer
	validator expression.Validator
}

func New(analyzer expression.Analyzer, validator expression.Validator) *Calculator {
	return &Calculator{
		analyzer:  analyzer,
		validator: validator,
	}
}

// NewDefault returns a Calculator using the grammar validator and the
// whitespace tokenizer.
func NewDefault() *Calculator {
	return New(expression.NewAnalyzer(), expression.NewValidator())
}

// Calculate returns the canonical decimal result of text.
//
// A text the validator rejects fails with ErrSyntax. Arithmetic failures
// (arithmetic.ErrDivisionByZero, arithmetic.ErrInexactDivision,
// arithmetic.ErrOverflow) are returned as produced.
func (c *Calculator) Calculate(text string) (string, error) {
	result, err := c.Evaluate(text)
	if err != nil {
		return "", err
	}
	return strconv.FormatInt(result, 10), nil
}

// Evaluate is Calculate without the final formatting.
func (c *Calculator) Evaluate(text string) (int64, error) {
	if !c.validator.Validate(text) {
		return 0, fmt.Errorf("%w: %q", ErrSyntax, text)
	}

	parsed, err := c.analyzer.Parse(text)
	if err != nil {
		return 0, err
	}

	return Reduce(parsed)
}

// Reduce folds a parsed expression to a single value in two passes: '*' and
// '/' first, then '+' and '-', each left to right. The input is not
// modified.
func Reduce(p expression.ParsedExpression) (int64, error) {
	if len(p.Operands) == 0 || len(p.Operands) != len(p.Operators)+1 {
		return 0, fmt.Errorf("%w: %d operands for %d operators", ErrMalformed, len(p.Operands), len(p.Operators))
	}

	operands := slices.Clone(p.Operands)
	operators := slices.Clone(p.Operators)

	for i := 0; i < len(operators); {
		op := operators[i]
		if !op.HighPrecedence() {
			i++
			continue
		}

		v, err := arithmetic.Apply(op, operands[i], operands[i+1])
		if err != nil {
			return 0, err
		}

		// Stay on i: the next operator now sits where op was.
		operands[i] = v
		operands = slices.Delete(operands, i+1, i+2)
		operators = slices.Delete(operators, i, i+1)
	}

	result := operands[0]
	for i, op := range operators {
		v, err := arithmetic.Apply(op, result, operands[i+1])
		if err != nil {
			return 0, err
		}
		result = v
	}

	return result, nil
}
