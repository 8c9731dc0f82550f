package arithmetic

// Operator is the one-character symbol of a binary operation.
type Operator byte

const (
	OpAdd      Operator = '+'
	OpSubtract Operator = '-'
	OpMultiply Operator = '*'
	OpDivide   Operator = '/'
)

var operatorNames = map[Operator]string{
	OpAdd:      "add",
	OpSubtract: "subtract",
	OpMultiply: "multiply",
	OpDivide:   "divide",
}

func (op Operator) String() string {
	return string(op)
}

// Name returns the operation name used in HTTP routes and metric attributes,
// e.g. "add" for '+'. Unknown operators return "unknown".
func (op Operator) Name() string {
	name, ok := operatorNames[op]
	if !ok {
		return "unknown"
	}
	return name
}

// HighPrecedence reports whether op binds tighter than '+' and '-'.
func (op Operator) HighPrecedence() bool {
	return op == OpMultiply || op == OpDivide
}

// LookupOperator resolves either a symbol ("+") or an operation name ("add").
func LookupOperator(s string) (Operator, bool) {
	if len(s) == 1 {
		op := Operator(s[0])
		if _, ok := operatorNames[op]; ok {
			return op, true
		}
		return 0, false
	}
	for op, name := range operatorNames {
		if name == s {
			return op, true
		}
	}
	return 0, false
}
