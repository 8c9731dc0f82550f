// Package arithmetic implements the exact int64 operations the calculator
// reduces expressions with. Results never wrap: an unrepresentable result is
// reported as ErrOverflow.
package arithmetic

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrDivisionByZero is returned by Divide when the divisor is 0.
	ErrDivisionByZero = errors.New("division by zero")
	// ErrInexactDivision is returned by Divide when the remainder is not 0.
	ErrInexactDivision = errors.New("inexact division")
	// ErrOverflow is returned when a result does not fit in an int64.
	ErrOverflow = errors.New("integer overflow")
	// ErrUnknownOperator is returned by Apply for a symbol other than + - * /.
	ErrUnknownOperator = errors.New("unknown operator")
)

// Add returns a + b, or ErrOverflow if the sum does not fit in an int64.
func Add(a, b int64) (int64, error) {
	if (b > 0 && a > math.MaxInt64-b) || (b < 0 && a < math.MinInt64-b) {
		return 0, fmt.Errorf("%w: %d + %d", ErrOverflow, a, b)
	}
	return a + b, nil
}

// Subtract returns a - b, or ErrOverflow if the difference does not fit.
func Subtract(a, b int64) (int64, error) {
	if (b < 0 && a > math.MaxInt64+b) || (b > 0 && a < math.MinInt64+b) {
		return 0, fmt.Errorf("%w: %d - %d", ErrOverflow, a, b)
	}
	return a - b, nil
}

// Multiply returns a * b, or ErrOverflow if the product does not fit.
func Multiply(a, b int64) (int64, error) {
	if a == 0 || b == 0 {
		return 0, nil
	}
	r := a * b
	if r/b != a || (a == -1 && b == math.MinInt64) || (b == -1 && a == math.MinInt64) {
		return 0, fmt.Errorf("%w: %d * %d", ErrOverflow, a, b)
	}
	return r, nil
}

// Divide returns the exact quotient a / b. It fails when b is zero or when
// a is not evenly divisible by b, and with ErrOverflow for MinInt64 / -1.
func Divide(a, b int64) (int64, error) {
	if b == 0 {
		return 0, fmt.Errorf("%w: %d / %d", ErrDivisionByZero, a, b)
	}
	if a == math.MinInt64 && b == -1 {
		return 0, fmt.Errorf("%w: %d / %d", ErrOverflow, a, b)
	}
	if a%b != 0 {
		return 0, fmt.Errorf("%w: %d / %d", ErrInexactDivision, a, b)
	}
	return a / b, nil
}

// Apply dispatches op to the matching operation.
func Apply(op Operator, a, b int64) (int64, error) {
	switch op {
	case OpAdd:
		return Add(a, b)
	case OpSubtract:
		return Subtract(a, b)
	case OpMultiply:
		return Multiply(a, b)
	case OpDivide:
		return Divide(a, b)
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownOperator, string(op))
	}
}
