// Package transcript is a thin Merlin (STROBE-128) transcript used to derive
// signing nonces and challenges.
//
// Every message is bound to its label and length, so two transcripts that
// absorb different label/message sequences diverge. Separate protocol steps
// use separate domain names passed to New.
package transcript

import (
	"github.com/gtank/merlin"

	"srkeys/internal/crypto/ristretto"
	"srkeys/internal/util/memzero"
)

// Transcript accumulates labelled messages and produces challenge bytes.
//
// A Transcript is not safe for concurrent use.
type Transcript struct {
	t *merlin.Transcript
}

// New starts a transcript under the given domain separator.
func New(domain string) *Transcript {
	return &Transcript{t: merlin.NewTranscript(domain)}
}

// Append absorbs msg under label.
func (t *Transcript) Append(label string, msg []byte) {
	// merlin appends to the label slice, so hand it a fresh one each call.
	t.t.AppendMessage([]byte(label), msg)
}

// AppendPoint absorbs the canonical encoding of p under label.
func (t *Transcript) AppendPoint(label string, p *ristretto.Element) {
	t.Append(label, p.Bytes())
}

// ExtractBytes squeezes n bytes of challenge output under label. The output
// depends on everything absorbed so far and the call also advances the
// transcript state.
func (t *Transcript) ExtractBytes(label string, n int) []byte {
	return t.t.ExtractBytes([]byte(label), n)
}

// ChallengeScalar squeezes 64 bytes under label and reduces them modulo the
// group order.
func (t *Transcript) ChallengeScalar(label string) *ristretto.Scalar {
	wide := t.ExtractBytes(label, ristretto.WideScalarSize)
	s, err := ristretto.NewScalar().SetUniformBytes(wide)
	if err != nil {
		// Only reachable if WideScalarSize and SetUniformBytes disagree.
		panic("transcript: " + err.Error())
	}
	memzero.Zero(wide)
	return s
}
