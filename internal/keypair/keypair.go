// Package keypair selects a key pair implementation by signature scheme and
// builds key pairs from entropy, seeds or mnemonics.
//
// Only sr25519 is supported. The scheme set is closed: adding one means a new
// Scheme constant and a case in FactoryFor.
package keypair

import (
	"errors"
	"fmt"
	"io"

	"srkeys/internal/crypto/sr25519"
	"srkeys/internal/mnemonic"
)

// ErrUnsupportedScheme is returned for scheme tags or values with no factory.
var ErrUnsupportedScheme = errors.New("keypair: unsupported scheme")

// Scheme identifies a signature scheme.
type Scheme uint8

const (
	SchemeUnknown Scheme = iota
	SchemeSr25519
)

// String returns the scheme tag, e.g. "sr25519".
func (s Scheme) String() string {
	switch s {
	case SchemeSr25519:
		return "sr25519"
	default:
		return "unknown"
	}
}

// ParseScheme maps a tag such as "sr25519" to its Scheme.
func ParseScheme(tag string) (Scheme, error) {
	switch tag {
	case "sr25519":
		return SchemeSr25519, nil
	default:
		return SchemeUnknown, fmt.Errorf("%w: %q", ErrUnsupportedScheme, tag)
	}
}

// Factory creates key pairs for one scheme.
type Factory interface {
	Scheme() Scheme
	// Generate creates a key pair from fresh entropy. A nil rand uses the
	// system source.
	Generate(rand io.Reader) (*sr25519.KeyPair, error)
	// Load expands a 32-byte seed.
	Load(seed []byte) (*sr25519.KeyPair, error)
	// FromMnemonic derives the seed for m and passphrase and expands it.
	FromMnemonic(m mnemonic.Mnemonic, passphrase string) (*sr25519.KeyPair, error)
	// MnemonicSeed returns the seed FromMnemonic would expand. The caller
	// should wipe it.
	MnemonicSeed(m mnemonic.Mnemonic, passphrase string) ([]byte, error)
}

// FactoryFor returns the default factory for s.
func FactoryFor(s Scheme) (Factory, error) {
	switch s {
	case SchemeSr25519:
		return NewSr25519Factory(), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedScheme, s)
	}
}

// FactoryForTag is ParseScheme followed by FactoryFor.
func FactoryForTag(tag string) (Factory, error) {
	s, err := ParseScheme(tag)
	if err != nil {
		return nil, err
	}
	return FactoryFor(s)
}
