package expression

import (
	"regexp"
	"strings"
)

// grammar matches a normalised expression: at least two numbers, every
// token separated from its neighbours by exactly one space.
var grammar = regexp.MustCompile(`^-?[0-9]+( [-+*/] -?[0-9]+)+$`)

// Validator reports whether text is a well-formed arithmetic expression.
type Validator interface {
	Validate(text string) bool
}

// GrammarValidator is the regexp-backed Validator.
type GrammarValidator struct{}

func NewValidator() GrammarValidator {
	return GrammarValidator{}
}

// Validate is purely lexical. It does not evaluate the expression, so
// "1 / 0" and "3 / 2" are both valid here.
func (GrammarValidator) Validate(text string) bool {
	return grammar.MatchString(Normalize(text))
}

// Normalize trims text and collapses every whitespace run to one space.
func Normalize(text string) string {
	return strings.Join(strings.Fields(text), " ")
}
