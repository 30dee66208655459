package alphabet

// Symbols is the standard Base64 alphabet, indexed 0 through 63.
//
//	 0-25  A-Z
//	26-51  a-z
//	52-61  0-9
//	   62  +
//	   63  /
const Symbols = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"

// Size is the number of symbols in the alphabet.
const Size = len(Symbols)

// Padding is the reserved padding symbol. It is not part of the alphabet.
const Padding byte = '='

// Invalid is the sentinel returned by Lookup for bytes outside of the
// alphabet. It is the all-ones byte, which is what the legacy lookup
// produced when it returned -1 through an unsigned char.
const Invalid uint8 = 0xFF

// Index returns the 6-bit value of the given symbol, and false if the
// symbol is not part of the alphabet. The padding symbol is not part of
// the alphabet.
func Index(c byte) (uint8, bool) {
	switch {
	case c >= 'A' && c <= 'Z':
		return c - 'A', true
	case c >= 'a' && c <= 'z':
		return c - 'a' + 26, true
	case c >= '0' && c <= '9':
		return c - '0' + 52, true
	case c == '+':
		return 62, true
	case c == '/':
		return 63, true
	default:
		return 0, false
	}
}

// Lookup returns the 6-bit value of the given symbol, or Invalid if the
// symbol is not part of the alphabet.
//
// # Warning
//
// Lookup exists for compatibility with consumers that relied on the
// legacy sentinel value. Prefer Index, which makes the failure explicit.
func Lookup(c byte) uint8 {
	v, ok := Index(c)
	if !ok {
		return Invalid
	}
	return v
}

// IsSymbol reports whether c is one of the 64 alphabet symbols.
func IsSymbol(c byte) bool {
	_, ok := Index(c)
	return ok
}
