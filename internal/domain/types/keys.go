package types

import (
	"encoding/hex"
	"fmt"
	"time"
)

// Sr25519Public is an encoded sr25519 public key.
type Sr25519Public [32]byte

// Slice returns the key as a []byte.
func (p Sr25519Public) Slice() []byte { return p[:] }

// MarshalText encodes the key as hex.
func (p Sr25519Public) MarshalText() ([]byte, error) {
	return []byte(hex.EncodeToString(p[:])), nil
}

// UnmarshalText decodes a hex-encoded key.
func (p *Sr25519Public) UnmarshalText(b []byte) error {
	return decodeHex32("public key", b, (*[32]byte)(p))
}

// Sr25519Seed is the 32-byte mini secret a key pair is expanded from.
type Sr25519Seed [32]byte

// Slice returns the seed as a []byte.
func (s *Sr25519Seed) Slice() []byte { return s[:] }

// MarshalText encodes the seed as hex.
func (s Sr25519Seed) MarshalText() ([]byte, error) {
	return []byte(hex.EncodeToString(s[:])), nil
}

// UnmarshalText decodes a hex-encoded seed.
func (s *Sr25519Seed) UnmarshalText(b []byte) error {
	return decodeHex32("seed", b, (*[32]byte)(s))
}

func decodeHex32(what string, in []byte, out *[32]byte) error {
	if hex.DecodedLen(len(in)) != len(out) {
		return fmt.Errorf("%s: want %d hex bytes, got %d chars", what, len(out), len(in))
	}
	if _, err := hex.Decode(out[:], in); err != nil {
		return fmt.Errorf("%s: %w", what, err)
	}
	return nil
}

// KeyRecord is a stored key. It is only ever written to disk encrypted.
type KeyRecord struct {
	Name      KeyName       `json:"name"`
	Scheme    string        `json:"scheme"`
	Seed      Sr25519Seed   `json:"seed"`
	Public    Sr25519Public `json:"public"`
	CreatedAt time.Time     `json:"created_at"`

	// Mnemonic and Derivation are set when the key came from a phrase.
	// Derivation names the seed derivation ("substrate" or "bip39").
	Mnemonic   string `json:"mnemonic,omitempty"`
	Derivation string `json:"derivation,omitempty"`
}

// Wipe zeroes the seed and drops the phrase.
func (r *KeyRecord) Wipe() {
	for i := range r.Seed {
		r.Seed[i] = 0
	}
	r.Mnemonic = ""
}

// KeyInfo is the public index entry for a stored key.
type KeyInfo struct {
	Name        KeyName       `json:"name"`
	Scheme      string        `json:"scheme"`
	Public      Sr25519Public `json:"public"`
	Address     string        `json:"address"`
	Fingerprint Fingerprint   `json:"fingerprint"`
	HasMnemonic bool          `json:"has_mnemonic"`
	CreatedAt   time.Time     `json:"created_at"`
}
