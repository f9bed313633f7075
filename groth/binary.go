package groth

import (
	"github.com/gtank/merlin"
	"github.com/xoloki/jlib-sub001/curve"
)

const (
	BINARY_PROOF_DOMAIN_TAG = "groth-binary-proof"
	ZERO_PROOF_DOMAIN_TAG   = "groth-zero-proof"
)

// BinaryProof shows that C commits to 0 or 1.
type BinaryProof struct {
	C  curve.Commitment
	A  curve.Point
	B  curve.Point
	F  curve.Scalar
	ZA curve.Scalar
	ZB curve.Scalar
}

// ProveBinary commits to value under blind and proves the value is a bit.
// Any other value still yields a proof, which fails verification.
func ProveBinary(value, blind curve.Scalar) BinaryProof {
	c := curve.Commit(value, blind)

	a, s, t := curve.RandomScalar(), curve.RandomScalar(), curve.RandomScalar()
	A := curve.Commit(a, s).Point
	B := curve.Commit(a.Mul(value), t).Point

	x := binaryChallenge(c, A, B)
	f := value.Mul(x).Add(a)
	return BinaryProof{
		C:  c,
		A:  A,
		B:  B,
		F:  f,
		ZA: blind.Mul(x).Add(s),
		ZB: blind.Mul(x.Sub(f)).Add(t),
	}
}

// VerifyBinary checks x*C + A == Com(f, za) and (x-f)*C + B == Com(0, zb).
// The second equation carries a term x*m*(1-m)*G, which vanishes only for
// m in {0, 1}. A and B hide fresh randomness, so an identity there is
// rejected outright.
func VerifyBinary(p BinaryProof) bool {
	if p.A.IsIdentity() || p.B.IsIdentity() {
		return false
	}
	x := binaryChallenge(p.C, p.A, p.B)
	return verifyBit(x, p.C.Point, p.A, p.B, p.F, p.ZA, p.ZB)
}

func verifyBit(x curve.Scalar, c, A, B curve.Point, f, za, zb curve.Scalar) bool {
	if !c.Mul(x).Add(A).Equal(curve.Commit(f, za).Point) {
		return false
	}
	return c.Mul(x.Sub(f)).Add(B).Equal(curve.Commit(curve.ScalarZero(), zb).Point)
}

func binaryChallenge(c curve.Commitment, A, B curve.Point) curve.Scalar {
	t := curve.TranscriptFrom(BinaryProofDomainSep(merlin.NewTranscript(BINARY_PROOF_DOMAIN_TAG)))
	t.AppendPoint("C", c.Point)
	t.AppendPoint("A", A)
	t.AppendPoint("B", B)
	return t.ChallengeScalar("x")
}
