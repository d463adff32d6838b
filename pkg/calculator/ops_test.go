package calculator

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOp(t *testing.T) {
	for _, op := range Ops {
		got, err := ParseOp(string(op))
		require.NoError(t, err)
		assert.Equal(t, op, got)
	}

	got, err := ParseOp(" Divide ")
	require.NoError(t, err)
	assert.Equal(t, OpDivide, got)

	_, err = ParseOp("modulo")
	assert.ErrorIs(t, err, ErrUnknownOperation)
	assert.Contains(t, err.Error(), `"modulo"`)
}

func TestOpSymbol(t *testing.T) {
	assert.Equal(t, "+", OpAdd.Symbol())
	assert.Equal(t, "-", OpSubtract.Symbol())
	assert.Equal(t, "*", OpMultiply.Symbol())
	assert.Equal(t, "/", OpDivide.Symbol())
	assert.Equal(t, "?", Op("pow").Symbol())
}

func TestParseOverflowPolicy(t *testing.T) {
	tests := []struct {
		in      string
		want    OverflowPolicy
		wantErr bool
	}{
		{"", OverflowWrap, false},
		{"wrap", OverflowWrap, false},
		{"ERROR", OverflowError, false},
		{"saturate", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseOverflowPolicy(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownOverflowPolicy)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCalculatorApply(t *testing.T) {
	wrap := New(OverflowWrap)
	checked := New(OverflowError)

	tests := []struct {
		name    string
		calc    Calculator
		op      Op
		a, b    int64
		want    int64
		wantErr error
	}{
		{"add", wrap, OpAdd, 2, 3, 5, nil},
		{"add negative", wrap, OpAdd, 2, -3, -1, nil},
		{"subtract", wrap, OpSubtract, 2, 3, -1, nil},
		{"multiply", wrap, OpMultiply, 6, 7, 42, nil},
		{"divide", wrap, OpDivide, 7, -2, -3, nil},
		{"divide by zero", wrap, OpDivide, 1, 0, 0, ErrDivisionByZero},
		{"wrap add", wrap, OpAdd, math.MaxInt64, 1, math.MinInt64, nil},
		{"wrap divide", wrap, OpDivide, math.MinInt64, -1, math.MinInt64, nil},
		{"checked add", checked, OpAdd, math.MaxInt64, 1, 0, ErrOverflow},
		{"checked subtract", checked, OpSubtract, math.MinInt64, 1, 0, ErrOverflow},
		{"checked multiply", checked, OpMultiply, math.MaxInt64, 3, 0, ErrOverflow},
		{"checked divide", checked, OpDivide, math.MinInt64, -1, 0, ErrOverflow},
		{"checked divide by zero", checked, OpDivide, 5, 0, 0, ErrDivisionByZero},
		{"checked in range", checked, OpMultiply, -3, 3, -9, nil},
		{"unknown op", wrap, Op("pow"), 2, 3, 0, ErrUnknownOperation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.calc.Apply(tt.op, tt.a, tt.b)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestZeroCalculatorWraps(t *testing.T) {
	var c Calculator
	got, err := c.Apply(OpAdd, math.MaxInt64, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(math.MinInt64), got)
}
