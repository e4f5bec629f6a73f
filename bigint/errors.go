package bigint

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by this package's operations. Use errors.Is to
// test for them; the error actually returned is wrapped with operation
// context.
var (
	// ErrInvalidInput is returned when a decimal string cannot be parsed,
	// or when a negative exponent is passed to Pow.
	ErrInvalidInput = errors.New("invalid input")

	// ErrDivisionByZero is returned by Div and Mod when the divisor is
	// zero.
	ErrDivisionByZero = errors.New("division by zero")
)

func wrapErr(sentinel error, context string) error {
	return fmt.Errorf("bigint: %s: %w", context, sentinel)
}
