package arithmetic

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdd(t *testing.T) {
	tests := []struct {
		a, b, want int64
	}{
		{2, 2, 4},
		{5, 7, 12},
		{-2, 2, 0},
		{-5, -3, -8},
	}

	for _, tt := range tests {
		got, err := Add(tt.a, tt.b)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "Add(%d, %d)", tt.a, tt.b)
	}
}

func TestAddIsCommutative(t *testing.T) {
	for a := int64(-20); a <= 20; a++ {
		for b := int64(-20); b <= 20; b++ {
			ab, err := Add(a, b)
			require.NoError(t, err)
			ba, err := Add(b, a)
			require.NoError(t, err)
			assert.Equal(t, ab, ba)
		}
	}
}

func TestSubtract(t *testing.T) {
	tests := []struct {
		a, b, want int64
	}{
		{5, 3, 2},
		{2, 3, -1},
		{-5, 2, -7},
		{-7, -2, -5},
	}

	for _, tt := range tests {
		got, err := Subtract(tt.a, tt.b)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "Subtract(%d, %d)", tt.a, tt.b)
	}
}

func TestSubtractIsNotCommutative(t *testing.T) {
	for a := int64(-20); a <= 20; a++ {
		for b := int64(-20); b <= 20; b++ {
			if a == b {
				continue
			}
			ab, err := Subtract(a, b)
			require.NoError(t, err)
			ba, err := Subtract(b, a)
			require.NoError(t, err)
			assert.NotEqual(t, ab, ba, "a=%d b=%d", a, b)
		}
	}
}

func TestMultiply(t *testing.T) {
	tests := []struct {
		a, b, want int64
	}{
		{4, 2, 8},
		{-4, 2, -8},
		{4, -2, -8},
		{-4, -2, 8},
		{0, math.MinInt64, 0},
	}

	for _, tt := range tests {
		got, err := Multiply(tt.a, tt.b)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "Multiply(%d, %d)", tt.a, tt.b)
	}
}

func TestDivideExact(t *testing.T) {
	tests := []struct {
		a, b, want int64
	}{
		{2, 2, 1},
		{10, 5, 2},
		{10, -5, -2},
		{-10, -5, 2},
		{0, 7, 0},
	}

	for _, tt := range tests {
		got, err := Divide(tt.a, tt.b)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "Divide(%d, %d)", tt.a, tt.b)
	}
}

func TestDivideInvertsMultiplication(t *testing.T) {
	for a := int64(-30); a <= 30; a++ {
		for b := int64(-30); b <= 30; b++ {
			if b == 0 || a%b != 0 {
				continue
			}
			q, err := Divide(a, b)
			require.NoError(t, err)
			assert.Equal(t, a, q*b)
		}
	}
}

func TestDivideByZero(t *testing.T) {
	for _, a := range []int64{0, 1, -1, 3, math.MaxInt64, math.MinInt64} {
		_, err := Divide(a, 0)
		assert.ErrorIs(t, err, ErrDivisionByZero, "Divide(%d, 0)", a)
	}
}

func TestDivideInexact(t *testing.T) {
	for a := int64(-30); a <= 30; a++ {
		for b := int64(-7); b <= 7; b++ {
			if b == 0 || a%b == 0 {
				continue
			}
			_, err := Divide(a, b)
			assert.ErrorIs(t, err, ErrInexactDivision, "Divide(%d, %d)", a, b)
		}
	}
}

func TestOverflow(t *testing.T) {
	tests := []struct {
		name string
		fn   func(a, b int64) (int64, error)
		a, b int64
	}{
		{"add", Add, math.MaxInt64, 1},
		{"add negative", Add, math.MinInt64, -1},
		{"subtract", Subtract, math.MinInt64, 1},
		{"subtract negative", Subtract, math.MaxInt64, -1},
		{"multiply", Multiply, math.MaxInt64, 2},
		{"multiply min by -1", Multiply, math.MinInt64, -1},
		{"multiply -1 by min", Multiply, -1, math.MinInt64},
		{"divide min by -1", Divide, math.MinInt64, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.fn(tt.a, tt.b)
			assert.ErrorIs(t, err, ErrOverflow)
		})
	}
}

func TestApply(t *testing.T) {
	got, err := Apply(OpMultiply, 6, 7)
	require.NoError(t, err)
	assert.Equal(t, int64(42), got)

	_, err = Apply(OpDivide, 1, 0)
	assert.ErrorIs(t, err, ErrDivisionByZero)

	_, err = Apply(Operator('^'), 2, 3)
	assert.ErrorIs(t, err, ErrUnknownOperator)
}

func TestLookupOperator(t *testing.T) {
	tests := []struct {
		in     string
		want   Operator
		wantOK bool
	}{
		{"+", OpAdd, true},
		{"/", OpDivide, true},
		{"subtract", OpSubtract, true},
		{"multiply", OpMultiply, true},
		{"%", 0, false},
		{"power", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		got, ok := LookupOperator(tt.in)
		assert.Equal(t, tt.wantOK, ok, "LookupOperator(%q)", tt.in)
		assert.Equal(t, tt.want, got, "LookupOperator(%q)", tt.in)
	}
}

func TestOperatorName(t *testing.T) {
	assert.Equal(t, "divide", OpDivide.Name())
	assert.Equal(t, "unknown", Operator('&').Name())
	assert.True(t, OpMultiply.HighPrecedence())
	assert.False(t, OpSubtract.HighPrecedence())
}
