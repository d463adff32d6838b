// Package calculator provides basic arithmetic operations over int64.
//
// Add, Subtract and Multiply use fixed-width two's complement arithmetic:
// a result that does not fit in an int64 wraps around. Divide truncates
// toward zero and reports ErrDivisionByZero instead of panicking. The
// Checked variants report ErrOverflow rather than wrapping.
package calculator

import "math"

// Add returns the sum of two integers, wrapping on overflow.
func Add(a, b int64) int64 {
	return a + b
}

// Subtract returns the difference between two integers, wrapping on overflow.
func Subtract(a, b int64) int64 {
	return a - b
}

// Multiply returns the product of two integers, wrapping on overflow.
func Multiply(a, b int64) int64 {
	return a * b
}

// Divide returns the quotient of a and b truncated toward zero.
// If b is 0 it returns ErrDivisionByZero. Divide(math.MinInt64, -1)
// wraps to math.MinInt64.
func Divide(a, b int64) (int64, error) {
	if b == 0 {
		return 0, ErrDivisionByZero
	}
	return a / b, nil
}

// CheckedAdd is Add that returns ErrOverflow when the sum does not fit in an int64.
func CheckedAdd(a, b int64) (int64, error) {
	r := a + b
	if (a^r)&(b^r) < 0 {
		return 0, ErrOverflow
	}
	return r, nil
}

// CheckedSubtract is Subtract that returns ErrOverflow instead of wrapping.
func CheckedSubtract(a, b int64) (int64, error) {
	r := a - b
	if (a^b)&(a^r) < 0 {
		return 0, ErrOverflow
	}
	return r, nil
}

// CheckedMultiply is Multiply that returns ErrOverflow instead of wrapping.
func CheckedMultiply(a, b int64) (int64, error) {
	if a == 0 || b == 0 {
		return 0, nil
	}
	if (a == -1 && b == math.MinInt64) || (b == -1 && a == math.MinInt64) {
		return 0, ErrOverflow
	}
	r := a * b
	if r/b != a {
		return 0, ErrOverflow
	}
	return r, nil
}

// CheckedDivide is Divide that returns ErrOverflow for math.MinInt64 / -1.
func CheckedDivide(a, b int64) (int64, error) {
	if b == 0 {
		return 0, ErrDivisionByZero
	}
	if a == math.MinInt64 && b == -1 {
		return 0, ErrOverflow
	}
	return a / b, nil
}
