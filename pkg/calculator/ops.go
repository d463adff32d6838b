package calculator

import (
	"fmt"
	"strings"
)

// Op names an arithmetic operation.
type Op string

const (
	OpAdd      Op = "add"
	OpSubtract Op = "subtract"
	OpMultiply Op = "multiply"
	OpDivide   Op = "divide"
)

// Ops lists every supported operation in display order.
var Ops = []Op{OpAdd, OpSubtract, OpMultiply, OpDivide}

// Symbol returns the infix symbol for the operation.
func (o Op) Symbol() string {
	switch o {
	case OpAdd:
		return "+"
	case OpSubtract:
		return "-"
	case OpMultiply:
		return "*"
	case OpDivide:
		return "/"
	}
	return "?"
}

// ParseOp converts an operation name such as "add" into an Op.
func ParseOp(name string) (Op, error) {
	op := Op(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range Ops {
		if op == known {
			return op, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownOperation, name)
}

// OverflowPolicy selects what happens when a result does not fit in an int64.
type OverflowPolicy string

const (
	// OverflowWrap wraps around using two's complement arithmetic.
	OverflowWrap OverflowPolicy = "wrap"
	// OverflowError reports ErrOverflow.
	OverflowError OverflowPolicy = "error"
)

// ParseOverflowPolicy converts "wrap" or "error" into an OverflowPolicy.
// An empty string selects OverflowWrap.
func ParseOverflowPolicy(name string) (OverflowPolicy, error) {
	switch OverflowPolicy(strings.ToLower(strings.TrimSpace(name))) {
	case "", OverflowWrap:
		return OverflowWrap, nil
	case OverflowError:
		return OverflowError, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownOverflowPolicy, name)
}

// Calculator applies operations under an overflow policy.
// The zero value wraps on overflow. A Calculator holds no mutable state
// and is safe for concurrent use.
type Calculator struct {
	Overflow OverflowPolicy
}

// New returns a Calculator using the given overflow policy.
func New(policy OverflowPolicy) Calculator {
	return Calculator{Overflow: policy}
}

func (c Calculator) checked() bool {
	return c.Overflow == OverflowError
}

// Apply runs op on a and b.
func (c Calculator) Apply(op Op, a, b int64) (int64, error) {
	switch op {
	case OpAdd:
		if c.checked() {
			return CheckedAdd(a, b)
		}
		return Add(a, b), nil
	case OpSubtract:
		if c.checked() {
			return CheckedSubtract(a, b)
		}
		return Subtract(a, b), nil
	case OpMultiply:
		if c.checked() {
			return CheckedMultiply(a, b)
		}
		return Multiply(a, b), nil
	case OpDivide:
		if c.checked() {
			return CheckedDivide(a, b)
		}
		return Divide(a, b)
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownOperation, string(op))
}
