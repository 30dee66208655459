package base64

import (
	"github.com/pkg/errors"

	"github.com/picatz/b64/pkg/alphabet"
)

// Encode writes the Base64 encoding of the first inputLen elements of
// input into output, followed by a zero terminator, and returns the number
// of symbols written, not counting the terminator.
//
// Only the low 8 bits of each input element are encoded.
//
// output must hold at least EncodedLen(inputLen)+1 bytes, otherwise
// ErrBufferTooSmall is returned and nothing is written. Empty input is
// valid and produces only the terminator.
func Encode[T Element](output []byte, input []T, inputLen int, opts ...Option) (int, error) {
	config, err := newConfig(opts)
	if err != nil {
		return 0, err
	}

	if inputLen < 0 || inputLen > len(input) {
		return 0, errors.Wrapf(ErrInvalidLength, "%d of %d", inputLen, len(input))
	}

	encLen := EncodedLen(inputLen)
	if encLen < 0 {
		return 0, errors.Wrapf(ErrInvalidLength, "%d bytes exceed the maximum of %d", inputLen, MaxEncodeInput)
	}
	if len(output) < encLen+1 {
		return 0, errors.Wrapf(ErrBufferTooSmall, "need %d, have %d", encLen+1, len(output))
	}

	table := config.Table
	n := 0

	full := inputLen / 3 * 3
	for i := 0; i < full; i += 3 {
		a, b, c := byte(input[i]), byte(input[i+1]), byte(input[i+2])

		output[n+0] = table.SymbolAt(a >> 2)
		output[n+1] = table.SymbolAt((a&0x03)<<4 | b>>4)
		output[n+2] = table.SymbolAt((b&0x0F)<<2 | c>>6)
		output[n+3] = table.SymbolAt(c & 0x3F)
		n += 4
	}

	if rest := inputLen - full; rest > 0 {
		// Missing bytes of the last group are zero.
		var group [3]byte
		for j := 0; j < rest; j++ {
			group[j] = byte(input[full+j])
		}

		sextets := [4]byte{
			group[0] >> 2,
			(group[0]&0x03)<<4 | group[1]>>4,
			(group[1]&0x0F)<<2 | group[2]>>6,
			group[2] & 0x3F,
		}

		for j := 0; j < rest+1; j++ {
			output[n] = table.SymbolAt(sextets[j])
			n++
		}
		for j := rest + 1; j < 4; j++ {
			output[n] = alphabet.Padding
			n++
		}
	}

	output[n] = 0
	return n, nil
}
