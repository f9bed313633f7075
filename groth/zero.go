package groth

import (
	"fmt"
	"math/bits"

	"github.com/gtank/merlin"
	"github.com/xoloki/jlib-sub001/curve"
)

// ZeroProof shows that one of Commitments opens to zero without revealing
// which one.
//
// The ring is padded to a power of two (at least 2) by repeating its last
// entry, and the secret index is committed to bit by bit. CL, CA, CB, F, ZA
// and ZB hold one entry per index bit; CD holds one entry per degree below
// the bit count.
type ZeroProof struct {
	Commitments []curve.Commitment
	CL          []curve.Point
	CA          []curve.Point
	CB          []curve.Point
	CD          []curve.Point
	F           []curve.Scalar
	ZA          []curve.Scalar
	ZB          []curve.Scalar
	ZD          curve.Scalar
}

// ProveZero proves that cs[index] = Com(0, blind). If it is not, the
// resulting proof fails verification.
func ProveZero(cs []curve.Commitment, index int, blind curve.Scalar) (ZeroProof, error) {
	if len(cs) == 0 {
		return ZeroProof{}, ErrEmptyRing
	}
	if index < 0 || index >= len(cs) {
		return ZeroProof{}, fmt.Errorf("%w: %d of %d", ErrInvalidIndex, index, len(cs))
	}

	ring := padRing(cs)
	n := ringBits(len(ring))

	r := randomScalars(n)
	a := randomScalars(n)
	s := randomScalars(n)
	t := randomScalars(n)
	rho := randomScalars(n)

	l := make([]curve.Scalar, n)
	CL := make([]curve.Point, n)
	CA := make([]curve.Point, n)
	CB := make([]curve.Point, n)
	for j := 0; j < n; j++ {
		l[j] = curve.ScalarFromUint64(uint64(index>>j) & 1)
		CL[j] = curve.Commit(l[j], r[j]).Point
		CA[j] = curve.Commit(a[j], s[j]).Point
		CB[j] = curve.Commit(l[j].Mul(a[j]), t[j]).Point
	}

	// coefficients[k][i] is the x^k coefficient of p_i(x) = prod_j f_{j,i_j}(x).
	coefficients := make([][]curve.Scalar, n)
	for k := range coefficients {
		coefficients[k] = make([]curve.Scalar, len(ring))
	}
	one := curve.ScalarOne()
	for i := range ring {
		p := poly{one}
		for j := 0; j < n; j++ {
			f1 := linear(a[j], l[j])
			if (i>>j)&1 == 1 {
				p = p.mul(f1)
			} else {
				p = p.mul(linear(a[j].Neg(), one.Sub(l[j])))
			}
		}
		for k := 0; k < n; k++ {
			coefficients[k][i] = p[k]
		}
	}

	points := commitmentPoints(ring)
	CD := make([]curve.Point, n)
	for k := 0; k < n; k++ {
		sum, err := curve.MultiScalarMul(coefficients[k], points)
		if err != nil {
			return ZeroProof{}, err
		}
		CD[k] = sum.Add(curve.H().Mul(rho[k]))
	}

	x := zeroChallenge(len(cs), ring, CL, CA, CB, CD)

	F := make([]curve.Scalar, n)
	ZA := make([]curve.Scalar, n)
	ZB := make([]curve.Scalar, n)
	for j := 0; j < n; j++ {
		F[j] = l[j].Mul(x).Add(a[j])
		ZA[j] = r[j].Mul(x).Add(s[j])
		ZB[j] = r[j].Mul(x.Sub(F[j])).Add(t[j])
	}

	xn, err := x.Pow(int64(n))
	if err != nil {
		return ZeroProof{}, err
	}
	zd := blind.Mul(xn).Sub(poly(rho).eval(x))

	commitments := make([]curve.Commitment, len(cs))
	copy(commitments, cs)
	return ZeroProof{
		Commitments: commitments,
		CL:          CL,
		CA:          CA,
		CB:          CB,
		CD:          CD,
		F:           F,
		ZA:          ZA,
		ZB:          ZB,
		ZD:          zd,
	}, nil
}

// VerifyZero checks every bit proof and then
// sum_i p_i(x)*c_i - sum_k x^k*CD[k] == Com(0, ZD).
func VerifyZero(p ZeroProof) bool {
	if len(p.Commitments) == 0 {
		return false
	}
	ring := padRing(p.Commitments)
	n := ringBits(len(ring))
	if len(p.CL) != n || len(p.CA) != n || len(p.CB) != n || len(p.CD) != n ||
		len(p.F) != n || len(p.ZA) != n || len(p.ZB) != n {
		return false
	}
	if hasIdentity(p.CL, p.CA, p.CB, p.CD) {
		return false
	}

	x := zeroChallenge(len(p.Commitments), ring, p.CL, p.CA, p.CB, p.CD)
	for j := 0; j < n; j++ {
		if !verifyBit(x, p.CL[j], p.CA[j], p.CB[j], p.F[j], p.ZA[j], p.ZB[j]) {
			return false
		}
	}

	f0 := make([]curve.Scalar, n)
	for j := 0; j < n; j++ {
		f0[j] = x.Sub(p.F[j])
	}
	products := make([]curve.Scalar, len(ring))
	for i := range ring {
		prod := curve.ScalarOne()
		for j := 0; j < n; j++ {
			if (i>>j)&1 == 1 {
				prod = prod.Mul(p.F[j])
			} else {
				prod = prod.Mul(f0[j])
			}
		}
		products[i] = prod
	}
	lhs, err := curve.MultiScalarMul(products, commitmentPoints(ring))
	if err != nil {
		return false
	}

	exp := newScalarExp(x)
	for k := 0; k < n; k++ {
		lhs = lhs.Sub(p.CD[k].Mul(exp.Next()))
	}
	return lhs.Equal(curve.Commit(curve.ScalarZero(), p.ZD).Point)
}

func zeroChallenge(m int, ring []curve.Commitment, CL, CA, CB, CD []curve.Point) curve.Scalar {
	t := curve.TranscriptFrom(ZeroProofDomainSep(uint64(m), uint64(len(CL)), merlin.NewTranscript(ZERO_PROOF_DOMAIN_TAG)))
	t.AppendPoints("c", commitmentPoints(ring))
	t.AppendPoints("CL", CL)
	t.AppendPoints("CA", CA)
	t.AppendPoints("CB", CB)
	t.AppendPoints("CD", CD)
	return t.ChallengeScalar("x")
}

// padRing repeats the last commitment up to the next power of two, with a
// minimum of two entries.
func padRing(cs []curve.Commitment) []curve.Commitment {
	size := nextPowerOfTwo(len(cs))
	if size < 2 {
		size = 2
	}
	ring := make([]curve.Commitment, size)
	copy(ring, cs)
	for i := len(cs); i < size; i++ {
		ring[i] = ring[i-1]
	}
	return ring
}

func ringBits(size int) int {
	return bits.TrailingZeros(uint(size))
}

func nextPowerOfTwo(v int) int {
	v--
	v |= v >> 1
	v |= v >> 2
	v |= v >> 4
	v |= v >> 8
	v |= v >> 16
	v |= v >> 32
	v++
	return v
}

// hasIdentity reports whether any of the prover's commitments is the
// identity. Honest ones are blinded by fresh scalars.
func hasIdentity(groups ...[]curve.Point) bool {
	for _, ps := range groups {
		for _, p := range ps {
			if p.IsIdentity() {
				return true
			}
		}
	}
	return false
}

func commitmentPoints(cs []curve.Commitment) []curve.Point {
	out := make([]curve.Point, len(cs))
	for i := range cs {
		out[i] = cs[i].Point
	}
	return out
}

func randomScalars(n int) []curve.Scalar {
	out := make([]curve.Scalar, n)
	for i := range out {
		out[i] = curve.RandomScalar()
	}
	return out
}
