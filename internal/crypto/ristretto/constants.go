package ristretto

import "filippo.io/edwards25519/field"

// Field constants from RFC 9496 §4.1, little-endian.
var (
	// d is the edwards25519 curve constant -121665/121666.
	d = mustFieldElement([]byte{
		163, 120, 89, 19, 202, 77, 235, 117, 171, 216, 65, 65, 77, 10, 112, 0,
		152, 232, 121, 119, 121, 64, 199, 140, 115, 254, 111, 43, 238, 108, 3, 82,
	})

	// sqrtM1 is a square root of -1.
	sqrtM1 = mustFieldElement([]byte{
		176, 160, 14, 74, 39, 27, 238, 196, 120, 228, 47, 173, 6, 24, 67, 47,
		167, 215, 251, 61, 153, 0, 77, 43, 11, 223, 193, 79, 128, 36, 131, 43,
	})

	// invSqrtAMinusD is 1/sqrt(a-d) with a = -1.
	invSqrtAMinusD = mustFieldElement([]byte{
		234, 64, 93, 128, 170, 253, 200, 153, 190, 114, 65, 90, 23, 22, 47, 157,
		64, 216, 1, 254, 145, 123, 194, 22, 162, 252, 175, 207, 5, 137, 108, 120,
	})

	one  = new(field.Element).One()
	zero = new(field.Element).Zero()
)

func mustFieldElement(b []byte) *field.Element {
	fe, err := new(field.Element).SetBytes(b)
	if err != nil {
		panic(err)
	}
	return fe
}
