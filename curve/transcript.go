package curve

import (
	"github.com/gtank/merlin"
)

// Transcript is a merlin transcript for protocols that absorb many
// commitments before drawing a challenge.
type Transcript struct {
	t *merlin.Transcript
}

// TranscriptFrom wraps a merlin transcript. Messages appended through
// either handle land in the same transcript.
func TranscriptFrom(t *merlin.Transcript) *Transcript {
	return &Transcript{t: t}
}

func (t *Transcript) AppendPoint(label string, p Point) {
	t.appendBytes([]byte(label), p.Bytes())
}

func (t *Transcript) AppendPoints(label string, ps []Point) {
	for _, p := range ps {
		t.AppendPoint(label, p)
	}
}

func (t *Transcript) ChallengeScalar(label string) Scalar {
	var h Hash
	copy(h[:], t.t.ExtractBytes([]byte(label), HashSize))
	return ScalarFromHash(h)
}

func (t *Transcript) appendBytes(field, data []byte) {
	t.t.AppendMessage(field, data)
}
