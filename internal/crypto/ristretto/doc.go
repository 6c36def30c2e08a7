// Package ristretto implements the ristretto255 prime-order group on top of
// the edwards25519 curve arithmetic from filippo.io/edwards25519.
//
// Contents
//
//   - Element: group elements with canonical 32-byte encoding and decoding
//     (RFC 9496 §4.3), addition, subtraction and scalar multiplication
//   - Scalar: integers modulo the group order ℓ, with wide (64-byte) and
//     canonical (32-byte) constructors
//
// # Notes
//
// Decode rejects every non-canonical encoding, so two distinct byte strings
// never decode to the same element. Operations that take a secret scalar
// (ScalarMult, ScalarBaseMult) run in constant time. VarTimeDoubleScalarBaseMult
// is variable time and must only see public inputs.
package ristretto
