package calculator

// CalculateRequest is the JSON body for POST /calculator/calculate.
type CalculateRequest struct {
	Expression string `json:"expression"`
}

// CalculateResponse carries the canonical decimal result of an expression.
type CalculateResponse struct {
	Expression string `json:"expression"`
	Result     string `json:"result"`
}

// CalcRequest is the JSON body for binary operations (add, subtract, multiply, divide).
type CalcRequest struct {
	A int64 `json:"a"`
	B int64 `json:"b"`
}

// CalcResponse is the JSON response for binary operations.
type CalcResponse struct {
	Operation string `json:"operation"`
	A         int64  `json:"a"`
	B         int64  `json:"b"`
	Result    int64  `json:"result"`
}

// ChainStep describes a single step in a chained calculation.
type ChainStep struct {
	Op    string `json:"op"`    // "add", "subtract", "multiply", "divide" or the symbol
	Value int64  `json:"value"` // the operand applied with the running total
}

// ChainRequest is the JSON body for POST /calculator/chain.
type ChainRequest struct {
	Initial int64       `json:"initial"`
	Steps   []ChainStep `json:"steps"`
}

// ChainResponse is the JSON response for POST /calculator/chain.
type ChainResponse struct {
	Initial int64         `json:"initial"`
	Steps   []ChainResult `json:"steps"`
	Result  int64         `json:"result"`
}

// ChainResult records one executed step.
type ChainResult struct {
	Op     string `json:"op"`
	Value  int64  `json:"value"`
	Result int64  `json:"result"`
}
