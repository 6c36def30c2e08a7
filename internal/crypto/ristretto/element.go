package ristretto

import (
	"crypto/subtle"
	"errors"

	"filippo.io/edwards25519"
	"filippo.io/edwards25519/field"
)

// EncodedSize is the length of a compressed element.
const EncodedSize = 32

// ErrInvalidEncoding is returned when bytes are not the canonical encoding of
// a ristretto255 element.
var ErrInvalidEncoding = errors.New("ristretto: invalid element encoding")

// Element is an element of the ristretto255 group.
//
// The zero value is not valid and may only be used as a receiver.
type Element struct {
	p edwards25519.Point
}

// NewIdentity returns the identity element.
func NewIdentity() *Element {
	e := &Element{}
	e.p.Set(edwards25519.NewIdentityPoint())
	return e
}

// NewGenerator returns the canonical generator, the same point as the
// edwards25519 base point.
func NewGenerator() *Element {
	e := &Element{}
	e.p.Set(edwards25519.NewGeneratorPoint())
	return e
}

// Set sets e = u and returns e.
func (e *Element) Set(u *Element) *Element {
	e.p.Set(&u.p)
	return e
}

// Decode sets e to the element encoded by in. On failure e is unchanged and
// ErrInvalidEncoding is returned.
func (e *Element) Decode(in []byte) (*Element, error) {
	if len(in) != EncodedSize {
		return nil, ErrInvalidEncoding
	}

	s, err := new(field.Element).SetBytes(in)
	if err != nil {
		return nil, ErrInvalidEncoding
	}
	// SetBytes ignores the top bit and accepts values >= p, so compare the
	// re-encoding against the input to reject both.
	if subtle.ConstantTimeCompare(s.Bytes(), in) != 1 {
		return nil, ErrInvalidEncoding
	}
	if s.IsNegative() == 1 {
		return nil, ErrInvalidEncoding
	}

	ss := new(field.Element).Square(s)
	u1 := new(field.Element).Subtract(one, ss)
	u2 := new(field.Element).Add(one, ss)
	u2Sq := new(field.Element).Square(u2)

	// v = -(d * u1^2) - u2^2
	v := new(field.Element).Square(u1)
	v.Multiply(v, d)
	v.Negate(v)
	v.Subtract(v, u2Sq)

	invSqrt, wasSquare := new(field.Element).SqrtRatio(one, new(field.Element).Multiply(v, u2Sq))

	denX := new(field.Element).Multiply(invSqrt, u2)
	denY := new(field.Element).Multiply(invSqrt, denX)
	denY.Multiply(denY, v)

	x := new(field.Element).Multiply(s, denX)
	x.Add(x, x)
	x.Absolute(x)
	y := new(field.Element).Multiply(u1, denY)
	t := new(field.Element).Multiply(x, y)

	if wasSquare == 0 || t.IsNegative() == 1 || y.Equal(zero) == 1 {
		return nil, ErrInvalidEncoding
	}

	var p edwards25519.Point
	if _, err := p.SetExtendedCoordinates(x, y, one, t); err != nil {
		return nil, ErrInvalidEncoding
	}
	e.p.Set(&p)
	return e, nil
}

// Bytes returns the canonical 32-byte encoding of e.
func (e *Element) Bytes() []byte {
	X, Y, Z, T := e.p.ExtendedCoordinates()

	// u1 = (Z + Y) * (Z - Y), u2 = X * Y
	u1 := new(field.Element).Add(Z, Y)
	u1.Multiply(u1, new(field.Element).Subtract(Z, Y))
	u2 := new(field.Element).Multiply(X, Y)

	u2Sq := new(field.Element).Square(u2)
	invSqrt, _ := new(field.Element).SqrtRatio(one, new(field.Element).Multiply(u1, u2Sq))

	den1 := new(field.Element).Multiply(invSqrt, u1)
	den2 := new(field.Element).Multiply(invSqrt, u2)
	zInv := new(field.Element).Multiply(den1, den2)
	zInv.Multiply(zInv, T)

	ix := new(field.Element).Multiply(X, sqrtM1)
	iy := new(field.Element).Multiply(Y, sqrtM1)
	enchantedDenominator := new(field.Element).Multiply(den1, invSqrtAMinusD)

	rotate := new(field.Element).Multiply(T, zInv).IsNegative()
	x := new(field.Element).Select(iy, X, rotate)
	y := new(field.Element).Select(ix, Y, rotate)
	denInv := new(field.Element).Select(enchantedDenominator, den2, rotate)

	negY := new(field.Element).Negate(y)
	y.Select(negY, y, new(field.Element).Multiply(x, zInv).IsNegative())

	s := new(field.Element).Subtract(Z, y)
	s.Multiply(denInv, s)
	s.Absolute(s)
	return s.Bytes()
}

// Encode returns the encoding of e as a fixed-size array.
func (e *Element) Encode() [EncodedSize]byte {
	var out [EncodedSize]byte
	copy(out[:], e.Bytes())
	return out
}

// Equal returns 1 if e and u represent the same group element, and 0
// otherwise. It runs in constant time.
func (e *Element) Equal(u *Element) int {
	X1, Y1, _, _ := e.p.ExtendedCoordinates()
	X2, Y2, _, _ := u.p.ExtendedCoordinates()

	x1y2 := new(field.Element).Multiply(X1, Y2)
	y1x2 := new(field.Element).Multiply(Y1, X2)
	y1y2 := new(field.Element).Multiply(Y1, Y2)
	x1x2 := new(field.Element).Multiply(X1, X2)

	return x1y2.Equal(y1x2) | y1y2.Equal(x1x2)
}

// IsIdentity reports whether e is the identity element.
func (e *Element) IsIdentity() bool {
	return e.Equal(NewIdentity()) == 1
}

// Add sets e = p + q and returns e.
func (e *Element) Add(p, q *Element) *Element {
	e.p.Add(&p.p, &q.p)
	return e
}

// Subtract sets e = p - q and returns e.
func (e *Element) Subtract(p, q *Element) *Element {
	e.p.Subtract(&p.p, &q.p)
	return e
}

// Negate sets e = -p and returns e.
func (e *Element) Negate(p *Element) *Element {
	e.p.Negate(&p.p)
	return e
}

// ScalarMult sets e = s * p in constant time and returns e.
func (e *Element) ScalarMult(s *Scalar, p *Element) *Element {
	e.p.ScalarMult(&s.s, &p.p)
	return e
}

// ScalarBaseMult sets e = s * G in constant time and returns e.
func (e *Element) ScalarBaseMult(s *Scalar) *Element {
	e.p.ScalarBaseMult(&s.s)
	return e
}

// VarTimeDoubleScalarBaseMult sets e = a * A + b * G and returns e.
//
// Execution time depends on the inputs, which must be public.
func (e *Element) VarTimeDoubleScalarBaseMult(a *Scalar, A *Element, b *Scalar) *Element {
	e.p.VarTimeDoubleScalarBaseMult(&a.s, &A.p, &b.s)
	return e
}
