package base64

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrInvalidSymbol is returned when decoding input contains a byte that
	// is neither an alphabet symbol nor the padding symbol.
	ErrInvalidSymbol = errors.New("base64: invalid symbol")

	// ErrBufferTooSmall is returned when the output buffer cannot hold the
	// result plus its terminator.
	ErrBufferTooSmall = errors.New("base64: output buffer too small")

	// ErrMalformedPadding is returned when the input ends with a group of
	// exactly one symbol, which cannot encode any byte.
	ErrMalformedPadding = errors.New("base64: malformed padding")

	// ErrInvalidLength is returned when an input length is negative or
	// larger than the input buffer.
	ErrInvalidLength = errors.New("base64: invalid input length")

	// ErrUnterminated is returned by DecodeTerminated when the input does
	// not contain a zero terminator.
	ErrUnterminated = errors.New("base64: input is not terminated")

	// ErrInvalidTable is returned when an alphabet.Reader given to
	// WithTable does not describe a usable alphabet.
	ErrInvalidTable = errors.New("base64: invalid alphabet table")
)

// CorruptInputError reports where in the input a decoding error was found.
type CorruptInputError struct {
	// Offset is the index of the offending byte in the input.
	Offset int

	// Symbol is the offending byte.
	Symbol byte

	Inner error
}

func (e *CorruptInputError) Error() string {
	return fmt.Sprintf("%v: %q at offset %d", e.Inner, e.Symbol, e.Offset)
}

func (e *CorruptInputError) Unwrap() error {
	return e.Inner
}

func newCorruptInputError(inner error, offset int, symbol byte) *CorruptInputError {
	return &CorruptInputError{Inner: inner, Offset: offset, Symbol: symbol}
}
