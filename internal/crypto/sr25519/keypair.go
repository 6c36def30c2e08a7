package sr25519

import (
	"crypto/rand"
	"fmt"
	"io"

	"srkeys/internal/crypto/ristretto"
)

// KeyPair is either private-capable (holds a SecretKey) or public-only. The
// kind is fixed at construction.
//
// A KeyPair is safe for concurrent Sign and Verify calls. Wipe must not race
// with other methods; use Clone to hand independent copies to goroutines.
type KeyPair struct {
	secret *SecretKey
	public PublicKey
}

// Generate draws a fresh seed from rand and expands it. A nil rand uses
// crypto/rand.Reader.
func Generate(rand io.Reader) (*KeyPair, error) {
	if rand == nil {
		rand = defaultRand
	}
	var seed MiniSecretKey
	defer seed.Wipe()
	if _, err := io.ReadFull(rand, seed[:]); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEntropyUnavailable, err)
	}
	return FromMiniSecretKey(&seed), nil
}

var defaultRand = rand.Reader

// Load expands a 32-byte seed into a key pair. The caller keeps ownership of
// seed.
func Load(seed []byte) (*KeyPair, error) {
	if len(seed) != MiniSecretKeySize {
		return nil, ErrInvalidSeedLength
	}
	m, _ := NewMiniSecretKey(seed)
	defer m.Wipe()
	return FromMiniSecretKey(&m), nil
}

// FromMiniSecretKey expands m into a key pair.
func FromMiniSecretKey(m *MiniSecretKey) *KeyPair {
	sk := m.Expand()
	return &KeyPair{secret: sk, public: sk.Public()}
}

// LoadSecretKey builds a key pair from a 64-byte expanded secret key as
// returned by SecretKey.Bytes. The scalar half must be canonical.
func LoadSecretKey(b []byte) (*KeyPair, error) {
	if len(b) != SecretKeySize {
		return nil, ErrInvalidSecretKeyLength
	}
	sk := &SecretKey{}
	if _, err := sk.key.SetCanonicalBytes(b[:32]); err != nil {
		return nil, ErrInvalidEncoding
	}
	copy(sk.nonce[:], b[32:])
	return &KeyPair{secret: sk, public: sk.Public()}, nil
}

// NewPublicKeyPair returns a public-only pair for pub, which must decode to a
// group element.
func NewPublicKeyPair(pub PublicKey) (*KeyPair, error) {
	if _, err := new(ristretto.Element).Decode(pub[:]); err != nil {
		return nil, ErrInvalidEncoding
	}
	return &KeyPair{public: pub}, nil
}

// Public returns the public key.
func (kp *KeyPair) Public() PublicKey { return kp.public }

// HasPrivateKey reports whether kp can sign.
func (kp *KeyPair) HasPrivateKey() bool { return kp.secret != nil }

// SecretKeyBytes returns the 64-byte expanded secret key. The caller owns the
// returned slice and should wipe it.
func (kp *KeyPair) SecretKeyBytes() ([]byte, error) {
	if kp.secret == nil {
		return nil, ErrMissingPrivateKey
	}
	return kp.secret.Bytes(), nil
}

// Clone returns a deep copy of kp. The copy owns its own secret material.
func (kp *KeyPair) Clone() *KeyPair {
	c := &KeyPair{public: kp.public}
	if kp.secret != nil {
		c.secret = kp.secret.clone()
	}
	return c
}

// Wipe zeroes the secret material and drops it. Afterwards kp is only good
// for verification and Sign returns ErrMissingPrivateKey.
func (kp *KeyPair) Wipe() {
	if kp.secret == nil {
		return
	}
	kp.secret.Wipe()
	kp.secret = nil
}
