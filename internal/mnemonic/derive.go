package mnemonic

import (
	"crypto/rand"
	"crypto/sha512"
	"errors"
	"fmt"

	"golang.org/x/crypto/pbkdf2"

	"srkeys/internal/util/memzero"
)

// SeedSize is the length of a derived signing seed.
const SeedSize = 32

const pbkdf2Iterations = 2048

// ErrUnknownDerivation is returned by DeriverByName for unrecognised names.
var ErrUnknownDerivation = errors.New("mnemonic: unknown seed derivation")

var defaultRand = rand.Reader

// SeedDeriver maps a phrase and optional passphrase to a 32-byte seed.
type SeedDeriver interface {
	// Name identifies the derivation in configuration and stored records.
	Name() string
	// DeriveSeed validates m and derives its seed. The caller should wipe the
	// result.
	DeriveSeed(m Mnemonic, passphrase string) ([]byte, error)
}

// SubstrateDeriver is the substrate-bip39 derivation: PBKDF2-HMAC-SHA512
// with 2048 iterations over the entropy bytes, salted with
// "mnemonic" + passphrase, truncated to 32 bytes.
type SubstrateDeriver struct{}

// Name implements SeedDeriver.
func (SubstrateDeriver) Name() string { return "substrate" }

// DeriveSeed implements SeedDeriver.
func (SubstrateDeriver) DeriveSeed(m Mnemonic, passphrase string) ([]byte, error) {
	if err := Validate(m); err != nil {
		return nil, err
	}
	entropy, err := m.Entropy()
	if err != nil {
		return nil, err
	}
	defer wipe(entropy)

	// The password is used as given, unlike the BIP-39 seed.
	salt := []byte("mnemonic" + passphrase)
	full := pbkdf2.Key(entropy, salt, pbkdf2Iterations, 64, sha512.New)
	defer wipe(full)
	return append([]byte(nil), full[:SeedSize]...), nil
}

// BIP39Deriver takes the first 32 bytes of the standard BIP-39 seed.
type BIP39Deriver struct{}

// Name implements SeedDeriver.
func (BIP39Deriver) Name() string { return "bip39" }

// DeriveSeed implements SeedDeriver.
func (BIP39Deriver) DeriveSeed(m Mnemonic, passphrase string) ([]byte, error) {
	full, err := ToSeed(m, passphrase)
	if err != nil {
		return nil, err
	}
	defer wipe(full)
	return append([]byte(nil), full[:SeedSize]...), nil
}

// DeriverByName returns the deriver registered under name. An empty name
// selects SubstrateDeriver.
func DeriverByName(name string) (SeedDeriver, error) {
	switch name {
	case "", SubstrateDeriver{}.Name():
		return SubstrateDeriver{}, nil
	case BIP39Deriver{}.Name():
		return BIP39Deriver{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDerivation, name)
	}
}

func wipe(b []byte) { memzero.Zero(b) }
