package base64

import (
	"bytes"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/picatz/b64/pkg/alphabet"
)

func TestEncodeVectors(t *testing.T) {
	tests := []struct {
		Name  string
		Input string
		Want  string
	}{
		{Name: "empty", Input: "", Want: ""},
		{Name: "f", Input: "f", Want: "Zg=="},
		{Name: "fo", Input: "fo", Want: "Zm8="},
		{Name: "foo", Input: "foo", Want: "Zm9v"},
		{Name: "foob", Input: "foob", Want: "Zm9vYg=="},
		{Name: "fooba", Input: "fooba", Want: "Zm9vYmE="},
		{Name: "foobar", Input: "foobar", Want: "Zm9vYmFy"},
		{Name: "high bits", Input: "\xfb\xff", Want: "+/8="},
		{Name: "all ones", Input: "\xff", Want: "/w=="},
	}

	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			input := []byte(test.Input)
			output := make([]byte, EncodedLen(len(input))+1)

			n, err := Encode(output, input, len(input))
			require.NoError(t, err)
			require.Equal(t, len(test.Want), n)
			require.Equal(t, test.Want, string(output[:n]))
			require.Zero(t, output[n], "terminator")
		})
	}
}

func TestEncodePaddingCount(t *testing.T) {
	for n := 0; n <= 99; n++ {
		input := make([]byte, n)
		output := make([]byte, EncodedLen(n)+1)

		encLen, err := Encode(output, input, n)
		require.NoError(t, err)

		encoded := string(output[:encLen])
		padding := len(encoded) - len(strings.TrimRight(encoded, "="))

		switch n % 3 {
		case 0:
			require.Equal(t, n/3*4, encLen)
			require.Zero(t, padding, "length %d", n)
		case 1:
			require.Equal(t, (n/3+1)*4, encLen)
			require.Equal(t, 2, padding, "length %d", n)
		case 2:
			require.Equal(t, (n/3+1)*4, encLen)
			require.Equal(t, 1, padding, "length %d", n)
		}
	}
}

func TestEncodePartialInput(t *testing.T) {
	input := []byte("foobar")
	output := make([]byte, EncodedLen(3)+1)

	n, err := Encode(output, input, 3)
	require.NoError(t, err)
	require.Equal(t, "Zm9v", string(output[:n]))
}

func TestEncodeErrors(t *testing.T) {
	tests := []struct {
		Name     string
		Output   []byte
		Input    []byte
		InputLen int
		Opts     []Option
		Err      error
	}{
		{
			Name:     "no room for terminator",
			Output:   make([]byte, 4),
			Input:    []byte("foo"),
			InputLen: 3,
			Err:      ErrBufferTooSmall,
		},
		{
			Name:     "empty input still needs terminator",
			Output:   []byte{},
			Input:    []byte{},
			InputLen: 0,
			Err:      ErrBufferTooSmall,
		},
		{
			Name:     "nil output",
			Output:   nil,
			Input:    []byte("f"),
			InputLen: 1,
			Err:      ErrBufferTooSmall,
		},
		{
			Name:     "length past input",
			Output:   make([]byte, 16),
			Input:    []byte("foo"),
			InputLen: 4,
			Err:      ErrInvalidLength,
		},
		{
			Name:     "negative length",
			Output:   make([]byte, 16),
			Input:    []byte("foo"),
			InputLen: -1,
			Err:      ErrInvalidLength,
		},
		{
			Name:     "nil table",
			Output:   make([]byte, 16),
			Input:    []byte("foo"),
			InputLen: 3,
			Opts:     []Option{WithTable(nil)},
			Err:      ErrInvalidTable,
		},
		{
			Name:     "constant table",
			Output:   make([]byte, 16),
			Input:    []byte("foo"),
			InputLen: 3,
			Opts: []Option{WithTable(alphabet.ReaderFunc(func(uint8) byte {
				return 'A'
			}))},
			Err: ErrInvalidTable,
		},
		{
			// Valid, but Decode would read it back with the standard lookup.
			Name:     "permuted table",
			Output:   make([]byte, 16),
			Input:    []byte("foo"),
			InputLen: 3,
			Opts:     []Option{WithTable(mustTable(t, "/+9876543210zyxwvutsrqponmlkjihgfedcbaZYXWVUTSRQPONMLKJIHGFEDCBA"))},
			Err:      ErrInvalidTable,
		},
	}

	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			before := append([]byte(nil), test.Output...)

			n, err := Encode(test.Output, test.Input, test.InputLen, test.Opts...)
			require.ErrorIs(t, err, test.Err)
			require.Zero(t, n)
			require.True(t, bytes.Equal(before, test.Output), "output must not be written on error")
		})
	}
}

func TestEncodeElementTypes(t *testing.T) {
	t.Run("int8", func(t *testing.T) {
		input := []int8{-5, -1}
		output := make([]byte, EncodedLen(len(input))+1)

		n, err := Encode(output, input, len(input))
		require.NoError(t, err)
		require.Equal(t, "+/8=", string(output[:n]))
	})

	t.Run("uint16 uses low byte", func(t *testing.T) {
		input := []uint16{0x0166, 0xFF6F, 0x006F}
		output := make([]byte, EncodedLen(len(input))+1)

		n, err := Encode(output, input, len(input))
		require.NoError(t, err)
		require.Equal(t, "Zm9v", string(output[:n]))
	})

	t.Run("named byte type", func(t *testing.T) {
		type octet byte

		input := []octet("fo")
		output := make([]byte, EncodedLen(len(input))+1)

		n, err := Encode(output, input, len(input))
		require.NoError(t, err)
		require.Equal(t, "Zm8=", string(output[:n]))
	})
}

func TestEncodeWithTable(t *testing.T) {
	var reads atomic.Int64
	counting := alphabet.ReaderFunc(func(i uint8) byte {
		reads.Add(1)
		return alphabet.Symbols[i]
	})

	loaded := alphabet.Load(alphabet.Standard)

	tests := []struct {
		Name  string
		Table alphabet.Reader
		Input string
		Want  string
	}{
		{Name: "loaded standard", Table: &loaded, Input: "foobar", Want: "Zm9vYmFy"},
		{Name: "func reader", Table: counting, Input: "fo", Want: "Zm8="},
	}

	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			encoded, err := EncodeToString([]byte(test.Input), WithTable(test.Table))
			require.NoError(t, err)
			require.Equal(t, test.Want, encoded)
		})
	}

	// 64 reads to check the table, then one per emitted symbol.
	require.Equal(t, int64(alphabet.Size+3), reads.Load())
}

func mustTable(t *testing.T, symbols string) *alphabet.Table {
	t.Helper()

	table, err := alphabet.NewTable(symbols)
	require.NoError(t, err)
	return table
}
