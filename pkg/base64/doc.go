// Package base64 provides standard Base64 encoding and decoding as defined
// in RFC 4648 Section 4, built for resource-constrained callers.
//
// The core functions never allocate:
//
//   - Encode and Decode write into caller-owned output buffers.
//   - EncodedLen and DecodedLen tell the caller how large those buffers
//     must be. Every output is followed by one zero terminator element,
//     so buffers need one more element than the calculated length.
//   - The alphabet is read through an alphabet.Reader, which can be
//     swapped for a platform-specific accessor with WithTable.
//
// Input and output element types are generic, so a decoded payload can
// be written directly into a []int8 or []uint16 buffer, for example.
//
// Decoding stops at the first padding symbol, wherever it appears.
// Symbols outside of the alphabet are rejected with ErrInvalidSymbol,
// unless WithLegacySymbols is used to reproduce the historical sentinel
// behaviour.
//
// Encoding with line breaks, URL-safe alphabets, and streaming are not
// supported.
//
// http://www.rfc-editor.org/rfc/rfc4648#section-4
package base64
