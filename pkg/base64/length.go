package base64

import (
	"math"

	"golang.org/x/exp/slices"

	"github.com/picatz/b64/pkg/alphabet"
)

// MaxEncodeInput is the largest input length whose encoding, terminator
// included, still fits in an int.
const MaxEncodeInput = (math.MaxInt - 1) / 4 * 3

// EncodedLen returns the number of symbols Encode writes for n input
// bytes, not counting the terminator. Every started group of 3 bytes
// becomes exactly 4 symbols.
//
// It returns 0 for n <= 0 and -1 for n > MaxEncodeInput, whose encoding
// would overflow an int.
func EncodedLen(n int) int {
	switch {
	case n <= 0:
		return 0
	case n > MaxEncodeInput:
		return -1
	}
	return (n + 2) / 3 * 4
}

// DecodedLen returns the number of bytes a padded encoding of inputLen
// symbols decodes to, not counting the terminator.
//
// Only the first inputLen bytes of input are looked at; inputLen is
// clamped to the size of input. Trailing padding symbols in that range,
// at most two, are subtracted from the full-group size. The result is
// never negative.
//
// For unpadded or otherwise irregular input this is an estimate, and it
// can be short: "Zm8" gives 0 although it decodes to 2 bytes. Decode
// checks the output capacity against the exact size it is going to write
// and fails with ErrBufferTooSmall. DecodeString sizes its buffer from
// the symbols themselves and accepts unpadded input.
func DecodedLen(input []byte, inputLen int) int {
	inputLen = clamp(inputLen, len(input))

	padding := 0
	for i := inputLen - 1; i >= 0 && padding < 2 && input[i] == alphabet.Padding; i-- {
		padding++
	}

	n := inputLen/4*3 - padding
	if n < 0 {
		return 0
	}
	return n
}

// decodedSize returns the exact number of bytes that decoding the given
// count of consumed symbols produces.
func decodedSize(symbols int) int {
	n := symbols / 4 * 3
	if tail := symbols % 4; tail > 1 {
		n += tail - 1
	}
	return n
}

// consumed returns how many symbols of input are decoded, which is
// everything up to the first padding symbol.
func consumed(input []byte) int {
	if i := slices.Index(input, alphabet.Padding); i >= 0 {
		return i
	}
	return len(input)
}

func clamp(n, limit int) int {
	switch {
	case n < 0:
		return 0
	case n > limit:
		return limit
	default:
		return n
	}
}
