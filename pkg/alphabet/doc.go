// Package alphabet holds the standard Base64 alphabet as defined in
// RFC 4648 Section 4, its inverse lookup, and the Reader abstraction
// used to fetch symbols from wherever the table is stored.
//
// The table itself is a string constant, so it is placed in read-only
// data by the Go toolchain and never copied into writable memory. Targets
// that keep tables in a separate program memory space (Harvard
// architectures, flash-mapped firmware images) can supply their own
// Reader, such as a ReaderFunc wrapping the platform's read primitive.
//
// The inverse lookup does not use the Reader. It is implemented with
// range comparisons so that it needs no 256-entry table at all.
//
// https://www.rfc-editor.org/rfc/rfc4648#section-4
package alphabet
