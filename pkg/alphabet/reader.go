package alphabet

import (
	"github.com/pkg/errors"
)

// Reader reads one alphabet symbol at the given index, 0 through 63.
//
// This is the only way the encoder touches the table, so a Reader is
// where platform-specific memory access belongs. It changes where the
// symbols are read from, not which symbols they are: decoding never uses
// a Reader, so an encoder only accepts one that passes CheckStandard.
// Implementations must be safe for concurrent use and must always return
// the same symbol for the same index.
type Reader interface {
	SymbolAt(index uint8) byte
}

// ReaderFunc adapts a plain function to the Reader interface.
//
// # Example
//
//	r := alphabet.ReaderFunc(func(i uint8) byte {
//		return flash.ReadByte(tableAddr + uintptr(i))
//	})
type ReaderFunc func(index uint8) byte

// SymbolAt calls f(index).
func (f ReaderFunc) SymbolAt(index uint8) byte {
	return f(index)
}

type direct struct{}

func (direct) SymbolAt(index uint8) byte {
	return Symbols[index&0x3F]
}

// Standard reads symbols straight out of the Symbols constant.
var Standard Reader = direct{}

// Table is a copy of an alphabet held in ordinary memory. The zero value
// is not a valid alphabet; use Load or NewTable.
type Table [Size]byte

// SymbolAt returns t[index].
func (t *Table) SymbolAt(index uint8) byte {
	return t[index&0x3F]
}

// Load copies all symbols exposed by r into a Table.
func Load(r Reader) Table {
	var t Table
	for i := range t {
		t[i] = r.SymbolAt(uint8(i))
	}
	return t
}

// NewTable builds a Table from a 64 byte string, after validating it.
func NewTable(symbols string) (*Table, error) {
	if len(symbols) != Size {
		return nil, errors.Errorf("alphabet: expected %d symbols, got %d", Size, len(symbols))
	}

	var t Table
	copy(t[:], symbols)

	if err := Validate(&t); err != nil {
		return nil, err
	}
	return &t, nil
}

var (
	// ErrDuplicateSymbol is returned by Validate when two indexes map to
	// the same symbol.
	ErrDuplicateSymbol = errors.New("alphabet: duplicate symbol")

	// ErrReservedSymbol is returned by Validate when a Reader yields the
	// padding symbol, a zero byte, or a non-printable byte.
	ErrReservedSymbol = errors.New("alphabet: reserved or non-printable symbol")

	// ErrNonStandardSymbol is returned by CheckStandard when a Reader
	// yields a symbol other than the one in Symbols at the same index.
	ErrNonStandardSymbol = errors.New("alphabet: symbol differs from the standard alphabet")
)

// Validate checks that r yields 64 distinct printable ASCII symbols, none
// of which is the padding symbol.
func Validate(r Reader) error {
	var seen [256]bool
	for i := 0; i < Size; i++ {
		c := r.SymbolAt(uint8(i))
		if c == Padding || c <= ' ' || c > '~' {
			return errors.Wrapf(ErrReservedSymbol, "%q at index %d", c, i)
		}
		if seen[c] {
			return errors.Wrapf(ErrDuplicateSymbol, "%q at index %d", c, i)
		}
		seen[c] = true
	}
	return nil
}

// CheckStandard checks that r yields exactly the symbols of the standard
// alphabet, in order. A Reader that passes is also valid.
func CheckStandard(r Reader) error {
	for i := 0; i < Size; i++ {
		if c := r.SymbolAt(uint8(i)); c != Symbols[i] {
			return errors.Wrapf(ErrNonStandardSymbol, "%q at index %d, want %q", c, i, Symbols[i])
		}
	}
	return nil
}
