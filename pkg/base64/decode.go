package base64

import (
	"github.com/pkg/errors"
	"golang.org/x/exp/slices"

	"github.com/picatz/b64/pkg/alphabet"
)

// Decode decodes the first inputLen bytes of input into output, followed
// by a zero terminator, and returns the number of bytes written, not
// counting the terminator.
//
// Decoding stops at the first padding symbol, wherever it is. Symbols
// after it are ignored, so "QQ=extra" decodes the same as "QQ==". A final
// group of k symbols, 1 < k < 4, decodes to k-1 bytes.
//
// output must hold the decoded bytes plus the terminator, which for well
// formed padded input is DecodedLen(input, inputLen)+1 elements. The
// capacity is checked before anything is written.
//
// # Errors
//
// A symbol outside of the alphabet fails the call with ErrInvalidSymbol,
// and a final group of a single symbol with ErrMalformedPadding, both
// wrapped in a *CorruptInputError. With WithLegacySymbols neither is
// reported. When an error is returned the contents of output are
// unspecified.
func Decode[T Element](output []T, input []byte, inputLen int, opts ...Option) (int, error) {
	config, err := newConfig(opts)
	if err != nil {
		return 0, err
	}

	if inputLen < 0 || inputLen > len(input) {
		return 0, errors.Wrapf(ErrInvalidLength, "%d of %d", inputLen, len(input))
	}

	symbols := input[:consumed(input[:inputLen])]

	decLen := decodedSize(len(symbols))
	if len(output) < decLen+1 {
		return 0, errors.Wrapf(ErrBufferTooSmall, "need %d, have %d", decLen+1, len(output))
	}

	n := 0
	var group [4]byte

	for i := 0; i < len(symbols); i += 4 {
		k := len(symbols) - i
		if k > 4 {
			k = 4
		}
		if k == 1 && !config.Legacy {
			return 0, newCorruptInputError(ErrMalformedPadding, i, symbols[i])
		}

		group = [4]byte{}
		for j := 0; j < k; j++ {
			c := symbols[i+j]
			v, ok := alphabet.Index(c)
			if !ok {
				if !config.Legacy {
					return 0, newCorruptInputError(ErrInvalidSymbol, i+j, c)
				}
				v = alphabet.Invalid
			}
			group[j] = v
		}

		// Sums, not ORs: in legacy mode the 0xFF sentinel must wrap
		// modulo 256.
		decoded := [3]byte{
			group[0]<<2 + (group[1]&0x30)>>4,
			(group[1]&0x0F)<<4 + (group[2]&0x3C)>>2,
			(group[2]&0x03)<<6 + group[3],
		}

		// k symbols carry k-1 bytes; a lone symbol carries none.
		emit := k - 1
		for j := 0; j < emit; j++ {
			output[n] = T(decoded[j])
			n++
		}
	}

	output[n] = 0
	return n, nil
}

// DecodeTerminated decodes input up to its first zero byte. It is Decode
// with the input length measured from the terminator.
//
// # Warning
//
// Input without a terminator is rejected with ErrUnterminated. Use Decode
// with an explicit length for unterminated buffers.
func DecodeTerminated[T Element](output []T, input []byte, opts ...Option) (int, error) {
	inputLen := slices.Index(input, 0)
	if inputLen < 0 {
		return 0, errors.Wrapf(ErrUnterminated, "no terminator in %d bytes", len(input))
	}
	return Decode(output, input, inputLen, opts...)
}
