package bigint

import "errors"

// Errors returned by parsing and alphabet construction, and panic values
// raised by arithmetic operations on invalid operands. Operations that
// receive a broken program state (nil operand, zero divisor, out-of-range
// base) panic with one of the values below; the context package recovers
// them into an error slot for callers that prefer explicit error handling.
var (
	// ErrNilOperand reports a required reference operand that was absent:
	// a nil *Int argument or a nil digit slice.
	ErrNilOperand = errors.New("bigint: nil operand")

	// ErrDivisionByZero reports a zero divisor.
	ErrDivisionByZero = errors.New("bigint: division by zero")

	// ErrBase reports a conversion base outside [2, len(alphabet)].
	ErrBase = errors.New("bigint: base out of range")

	// ErrAlphabet reports an alphabet that is missing, shorter than the
	// requested base, or contains duplicate characters.
	ErrAlphabet = errors.New("bigint: invalid alphabet")

	// ErrSyntax reports an unparsable number string: empty input, a stray
	// character, a malformed sign or base prefix, or a digit outside the
	// alphabet.
	ErrSyntax = errors.New("bigint: invalid number syntax")

	// ErrNegSqrt reports a square root of a negative number.
	ErrNegSqrt = errors.New("bigint: square root of negative number")
)
