package sr25519

import (
	"errors"
	"fmt"

	"srkeys/internal/crypto/ristretto"
)

var (
	// ErrInvalidSeedLength is returned when a seed is not exactly 32 bytes.
	ErrInvalidSeedLength = errors.New("sr25519: invalid seed length")
	// ErrInvalidSecretKeyLength is returned when an expanded secret key is
	// not exactly 64 bytes.
	ErrInvalidSecretKeyLength = errors.New("sr25519: invalid secret key length")
	// ErrInvalidEncoding is returned for public keys, scalars or signatures
	// that are not canonically encoded. It matches ristretto.ErrInvalidEncoding
	// under errors.Is.
	ErrInvalidEncoding = fmt.Errorf("sr25519: %w", ristretto.ErrInvalidEncoding)
	// ErrMissingPrivateKey is returned when signing with a public-only pair.
	ErrMissingPrivateKey = errors.New("sr25519: key pair has no private key")
	// ErrEntropyUnavailable is returned when the random source fails.
	ErrEntropyUnavailable = errors.New("sr25519: entropy source unavailable")
)
