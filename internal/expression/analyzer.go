// Package expression validates and tokenizes infix integer expressions.
package expression

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"coolcalc/internal/arithmetic"
)

// ParsedExpression holds the operands and operators of an expression in
// left-to-right order. A well-formed value has exactly one more operand
// than operators.
type ParsedExpression struct {
	Operands  []int64
	Operators []arithmetic.Operator
}

// Analyzer splits a validated expression into operands and operators.
type Analyzer interface {
	Parse(text string) (ParsedExpression, error)
}

type TokenAnalyzer struct{}

func NewAnalyzer() TokenAnalyzer {
	return TokenAnalyzer{}
}

// Parse expects text that already passed a Validator. A '-' glued to digits
// is a sign, so splitting on whitespace is enough to tell operators from
// operands.
func (TokenAnalyzer) Parse(text string) (ParsedExpression, error) {
	tokens := strings.Fields(text)

	parsed := ParsedExpression{
		Operands:  make([]int64, 0, len(tokens)/2+1),
		Operators: make([]arithmetic.Operator, 0, len(tokens)/2),
	}

	for _, tok := range tokens {
		if op, ok := operatorToken(tok); ok {
			parsed.Operators = append(parsed.Operators, op)
			continue
		}

		n, err := strconv.ParseInt(tok, 10, 64)
		if err != nil {
			if errors.Is(err, strconv.ErrRange) {
				return ParsedExpression{}, fmt.Errorf("%w: literal %s", arithmetic.ErrOverflow, tok)
			}
			return ParsedExpression{}, fmt.Errorf("parsing operand %q: %w", tok, err)
		}
		parsed.Operands = append(parsed.Operands, n)
	}

	return parsed, nil
}

func operatorToken(tok string) (arithmetic.Operator, bool) {
	if len(tok) != 1 {
		return 0, false
	}
	switch op := arithmetic.Operator(tok[0]); op {
	case arithmetic.OpAdd, arithmetic.OpSubtract, arithmetic.OpMultiply, arithmetic.OpDivide:
		return op, true
	}
	return 0, false
}
