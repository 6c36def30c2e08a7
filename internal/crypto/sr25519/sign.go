package sr25519

import (
	"crypto/subtle"

	"srkeys/internal/crypto/ristretto"
	"srkeys/internal/crypto/transcript"
)

// DefaultContext is the signing context Substrate uses for extrinsics and
// the one Sign and Verify apply.
const DefaultContext = "substrate"

const (
	challengeDomain = "SigningContext"
	nonceDomain     = "SigningNonce"
	protoName       = "Schnorr-sig"

	// markerBit flags s[31] so schnorrkel can tell these signatures from
	// legacy ones. A reduced s never has it set.
	markerBit = 0x80
)

// Sign signs msg under DefaultContext.
func (kp *KeyPair) Sign(msg []byte) (Signature, error) {
	return kp.SignContext([]byte(DefaultContext), msg)
}

// SignContext signs msg under the signing context ctx. The result is
// deterministic in (key, ctx, msg).
func (kp *KeyPair) SignContext(ctx, msg []byte) (Signature, error) {
	var sig Signature
	sk := kp.secret
	if sk == nil {
		return sig, ErrMissingPrivateKey
	}

	r := witness(sk, kp.public, ctx, msg)
	defer r.Zero()

	R := new(ristretto.Element).ScalarBaseMult(r).Encode()
	c := challenge(ctx, msg, kp.public, R[:])
	s := ristretto.NewScalar().MultiplyAdd(c, &sk.key, r)
	defer s.Zero()

	copy(sig[:32], R[:])
	copy(sig[32:], s.Bytes())
	sig[63] |= markerBit
	return sig, nil
}

// Verify checks sig against kp's public key under DefaultContext.
func (kp *KeyPair) Verify(msg, sig []byte) bool {
	return VerifyContext(kp.public, []byte(DefaultContext), msg, sig)
}

// Verify reports whether sig is a valid signature of msg by pub under
// DefaultContext.
func Verify(pub PublicKey, msg, sig []byte) bool {
	return VerifyContext(pub, []byte(DefaultContext), msg, sig)
}

// VerifyContext reports whether sig is a valid signature of msg by pub under
// the signing context ctx. Malformed keys and signatures yield false.
func VerifyContext(pub PublicKey, ctx, msg, sig []byte) bool {
	if len(sig) != SignatureSize || sig[63]&markerBit == 0 {
		return false
	}

	var sb [32]byte
	copy(sb[:], sig[32:])
	sb[31] &^= markerBit
	s, err := ristretto.NewScalar().SetCanonicalBytes(sb[:])
	if err != nil {
		return false
	}
	if _, err := new(ristretto.Element).Decode(sig[:32]); err != nil {
		return false
	}
	A, err := new(ristretto.Element).Decode(pub[:])
	if err != nil {
		return false
	}

	c := challenge(ctx, msg, pub, sig[:32])
	c.Negate(c)
	// s·B - c·A must equal R.
	check := new(ristretto.Element).VarTimeDoubleScalarBaseMult(c, A, s)
	return subtle.ConstantTimeCompare(check.Bytes(), sig[:32]) == 1
}

// challenge is the schnorrkel Fiat-Shamir challenge.
func challenge(ctx, msg []byte, pub PublicKey, R []byte) *ristretto.Scalar {
	t := transcript.New(challengeDomain)
	t.Append("", ctx)
	t.Append("sign-bytes", msg)
	t.Append("proto-name", []byte(protoName))
	t.Append("sign:pk", pub[:])
	t.Append("sign:R", R)
	return t.ChallengeScalar("sign:c")
}

// witness derives the per-signature nonce r from the secret nonce seed and
// the public inputs of the signature.
func witness(sk *SecretKey, pub PublicKey, ctx, msg []byte) *ristretto.Scalar {
	t := transcript.New(nonceDomain)
	t.Append("proto-name", []byte(protoName))
	t.Append("sign-context", ctx)
	t.Append("sign:pk", pub[:])
	t.Append("sign-bytes", msg)
	t.Append("nonce-seed", sk.nonce[:])
	return t.ChallengeScalar("sign:r")
}
