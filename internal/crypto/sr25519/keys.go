package sr25519

import (
	"crypto/sha512"
	"encoding/hex"

	"srkeys/internal/crypto/ristretto"
	"srkeys/internal/util/memzero"
)

const (
	// MiniSecretKeySize is the length of a seed.
	MiniSecretKeySize = 32
	// SecretKeySize is the length of an expanded secret key (scalar ‖ nonce).
	SecretKeySize = 64
	// PublicKeySize is the length of an encoded public key.
	PublicKeySize = ristretto.EncodedSize
	// SignatureSize is the length of an encoded signature (R ‖ s).
	SignatureSize = 64
)

// MiniSecretKey is the 32-byte seed from which a key pair is expanded.
type MiniSecretKey [MiniSecretKeySize]byte

// NewMiniSecretKey copies b into a MiniSecretKey.
func NewMiniSecretKey(b []byte) (MiniSecretKey, error) {
	var m MiniSecretKey
	if len(b) != MiniSecretKeySize {
		return m, ErrInvalidSeedLength
	}
	copy(m[:], b)
	return m, nil
}

// Expand derives the secret scalar and nonce seed from m.
//
// h = SHA-512(m). The first half is clamped as for Ed25519 and divided by the
// cofactor, which leaves a value below 2^252 and therefore already reduced.
// The second half is the nonce seed.
func (m *MiniSecretKey) Expand() *SecretKey {
	h := sha512.Sum512(m[:])
	defer memzero.Zero(h[:])

	var key [32]byte
	defer memzero.Zero(key[:])
	copy(key[:], h[:32])
	key[0] &= 248
	key[31] &= 63
	key[31] |= 64
	divideByCofactor(key[:])

	sk := &SecretKey{}
	if _, err := sk.key.SetCanonicalBytes(key[:]); err != nil {
		panic("sr25519: expanded scalar is not canonical")
	}
	copy(sk.nonce[:], h[32:])
	return sk
}

// Wipe zeroes m.
func (m *MiniSecretKey) Wipe() { memzero.Zero(m[:]) }

// divideByCofactor shifts the little-endian integer in s right by three bits.
func divideByCofactor(s []byte) {
	var low byte
	for i := len(s) - 1; i >= 0; i-- {
		r := s[i] & 0x07
		s[i] >>= 3
		s[i] += low
		low = r << 5
	}
}

// SecretKey is an expanded private key: the signing scalar and an independent
// 32-byte nonce seed.
type SecretKey struct {
	key   ristretto.Scalar
	nonce [32]byte
}

// Bytes returns the 64-byte encoding scalar ‖ nonce seed.
func (sk *SecretKey) Bytes() []byte {
	out := make([]byte, 0, SecretKeySize)
	out = append(out, sk.key.Bytes()...)
	return append(out, sk.nonce[:]...)
}

// Public computes the public key of sk.
func (sk *SecretKey) Public() PublicKey {
	return PublicKey(new(ristretto.Element).ScalarBaseMult(&sk.key).Encode())
}

// Wipe zeroes the scalar and the nonce seed.
func (sk *SecretKey) Wipe() {
	sk.key.Zero()
	memzero.Zero(sk.nonce[:])
}

func (sk *SecretKey) clone() *SecretKey {
	c := &SecretKey{nonce: sk.nonce}
	c.key.Set(&sk.key)
	return c
}

// PublicKey is the canonical ristretto255 encoding of a public point.
type PublicKey [PublicKeySize]byte

// PublicKeyFromBytes checks that b is a canonical group element encoding and
// returns it as a PublicKey.
func PublicKeyFromBytes(b []byte) (PublicKey, error) {
	var pk PublicKey
	if len(b) != PublicKeySize {
		return pk, ErrInvalidEncoding
	}
	if _, err := new(ristretto.Element).Decode(b); err != nil {
		return pk, ErrInvalidEncoding
	}
	copy(pk[:], b)
	return pk, nil
}

// Bytes returns a copy of the encoded key.
func (pk PublicKey) Bytes() []byte { return append([]byte(nil), pk[:]...) }

// String returns the key as lowercase hex.
func (pk PublicKey) String() string { return hex.EncodeToString(pk[:]) }

// Signature is R ‖ s, with the high bit of s set as the schnorrkel marker.
type Signature [SignatureSize]byte

// Bytes returns a copy of the encoded signature.
func (s Signature) Bytes() []byte { return append([]byte(nil), s[:]...) }

// String returns the signature as lowercase hex.
func (s Signature) String() string { return hex.EncodeToString(s[:]) }
