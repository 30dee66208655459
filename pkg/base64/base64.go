package base64

import (
	"golang.org/x/exp/constraints"
)

// Element is the set of buffer element types Encode reads from and Decode
// writes to. Encode uses the low 8 bits of each element; Decode stores
// each byte converted to the element type.
type Element interface {
	constraints.Integer
}

// EncodeToString returns the Base64 encoding of input, without a
// terminator.
//
// Unlike Encode, this allocates the output buffer.
func EncodeToString(input []byte, opts ...Option) (string, error) {
	output := make([]byte, EncodedLen(len(input))+1)

	n, err := Encode(output, input, len(input), opts...)
	if err != nil {
		return "", err
	}

	return string(output[:n]), nil
}

// DecodeString returns the bytes represented by the Base64 string input.
//
// Unlike Decode, this allocates the output buffer. The input does not
// need to be padded.
func DecodeString(input string, opts ...Option) ([]byte, error) {
	src := []byte(input)
	output := make([]byte, decodedSize(consumed(src))+1)

	n, err := Decode(output, src, len(src), opts...)
	if err != nil {
		return nil, err
	}

	return output[:n], nil
}
