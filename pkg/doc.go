// Package b64 implements a standard Base64 codec for callers that manage
// their own memory, such as firmware and other resource-constrained code.
//
// Packages:
//   - alphabet: the 64-symbol table, its inverse lookup, and the Reader
//     used to access the table wherever it is stored
//   - base64: allocation-free Encode and Decode into caller buffers, and
//     the EncodedLen and DecodedLen length calculators
//
// Related RFCs:
//   - RFC4648 https://www.rfc-editor.org/rfc/rfc4648#section-4 Base 64 Encoding
package b64
