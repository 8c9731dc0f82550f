package calculator

import (
	"errors"
	"net/http"

	"coolcalc/internal/arithmetic"
)

var (
	// ErrSyntax is returned for any text that is not a well-formed expression.
	ErrSyntax = errors.New("syntax error")
	// ErrMalformed is returned by Reduce when operands and operators do not pair up.
	ErrMalformed = errors.New("malformed expression")
)

// Error kinds used as the "kind" metric attribute.
const (
	KindSyntax          = "syntax"
	KindDivisionByZero  = "division_by_zero"
	KindInexactDivision = "inexact_division"
	KindOverflow        = "overflow"
	KindUnknownOperator = "unknown_operator"
	KindMalformed       = "malformed"
	KindInternal        = "internal"
)

// ErrorKind classifies err into one of the Kind constants.
func ErrorKind(err error) string {
	switch {
	case errors.Is(err, ErrSyntax):
		return KindSyntax
	case errors.Is(err, arithmetic.ErrDivisionByZero):
		return KindDivisionByZero
	case errors.Is(err, arithmetic.ErrInexactDivision):
		return KindInexactDivision
	case errors.Is(err, arithmetic.ErrOverflow):
		return KindOverflow
	case errors.Is(err, arithmetic.ErrUnknownOperator):
		return KindUnknownOperator
	case errors.Is(err, ErrMalformed):
		return KindMalformed
	default:
		return KindInternal
	}
}

func statusForKind(kind string) int {
	switch kind {
	case KindSyntax, KindMalformed:
		return http.StatusBadRequest
	case KindDivisionByZero, KindInexactDivision, KindOverflow, KindUnknownOperator:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
