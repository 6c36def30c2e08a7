package ristretto

import (
	"errors"

	"filippo.io/edwards25519"
)

// ScalarSize is the length of a canonical scalar encoding.
const ScalarSize = 32

// WideScalarSize is the input length accepted by SetUniformBytes.
const WideScalarSize = 64

// ErrInvalidScalar is returned for scalar encodings of the wrong length or
// not reduced modulo ℓ.
var ErrInvalidScalar = errors.New("ristretto: invalid scalar encoding")

// Scalar is an integer modulo the group order
// ℓ = 2^252 + 27742317777372353535851937790883648493.
//
// The zero value is a valid zero scalar.
type Scalar struct {
	s edwards25519.Scalar
}

// NewScalar returns a new zero scalar.
func NewScalar() *Scalar { return &Scalar{} }

// Set sets s = x and returns s.
func (s *Scalar) Set(x *Scalar) *Scalar {
	s.s.Set(&x.s)
	return s
}

// SetUniformBytes sets s to the 64-byte little-endian value in reduced
// modulo ℓ. It is the reduction used for hash and transcript outputs.
func (s *Scalar) SetUniformBytes(in []byte) (*Scalar, error) {
	if len(in) != WideScalarSize {
		return nil, ErrInvalidScalar
	}
	if _, err := s.s.SetUniformBytes(in); err != nil {
		return nil, ErrInvalidScalar
	}
	return s, nil
}

// SetCanonicalBytes sets s to the 32-byte little-endian value in, which must
// be less than ℓ.
func (s *Scalar) SetCanonicalBytes(in []byte) (*Scalar, error) {
	if len(in) != ScalarSize {
		return nil, ErrInvalidScalar
	}
	if _, err := s.s.SetCanonicalBytes(in); err != nil {
		return nil, ErrInvalidScalar
	}
	return s, nil
}

// Bytes returns the canonical 32-byte little-endian encoding of s.
func (s *Scalar) Bytes() []byte {
	return s.s.Bytes()
}

// Add sets s = x + y mod ℓ and returns s.
func (s *Scalar) Add(x, y *Scalar) *Scalar {
	s.s.Add(&x.s, &y.s)
	return s
}

// Subtract sets s = x - y mod ℓ and returns s.
func (s *Scalar) Subtract(x, y *Scalar) *Scalar {
	s.s.Subtract(&x.s, &y.s)
	return s
}

// Multiply sets s = x * y mod ℓ and returns s.
func (s *Scalar) Multiply(x, y *Scalar) *Scalar {
	s.s.Multiply(&x.s, &y.s)
	return s
}

// MultiplyAdd sets s = x * y + z mod ℓ and returns s.
func (s *Scalar) MultiplyAdd(x, y, z *Scalar) *Scalar {
	s.s.MultiplyAdd(&x.s, &y.s, &z.s)
	return s
}

// Negate sets s = -x mod ℓ and returns s.
func (s *Scalar) Negate(x *Scalar) *Scalar {
	s.s.Negate(&x.s)
	return s
}

// Equal returns 1 if s and t are equal, and 0 otherwise, in constant time.
func (s *Scalar) Equal(t *Scalar) int {
	return s.s.Equal(&t.s)
}

// Zero overwrites s with zero.
func (s *Scalar) Zero() {
	s.s = edwards25519.Scalar{}
}
