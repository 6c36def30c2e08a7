// Package crypto holds small helpers shared by the CLI and services.
//
// Contents
//
//   - Short public-key fingerprints for display/logging (Fingerprint)
//   - 0x-prefixed hex formatting and parsing (Hex, ParseHex, ParseHexN)
//
// # Notes
//
// The signature scheme itself lives in the ristretto, transcript and sr25519
// subpackages. Nothing here touches secret material.
package crypto
