package calculator

import "errors"

var (
	// ErrDivisionByZero is returned when the divisor is zero.
	ErrDivisionByZero = errors.New("division by zero")

	// ErrOverflow is returned by the checked operations when the result
	// does not fit in an int64.
	ErrOverflow = errors.New("integer overflow")

	// ErrUnknownOperation is returned for an operation name that is not supported.
	ErrUnknownOperation = errors.New("unknown operation")

	// ErrUnknownOverflowPolicy is returned when parsing an unsupported policy name.
	ErrUnknownOverflowPolicy = errors.New("unknown overflow policy")
)
