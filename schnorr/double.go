package schnorr

import (
	"github.com/xoloki/jlib-sub001/curve"
)

// DoubleProof shows knowledge of an opening (s, t) of y = s*G + t*H, where
// H = hash(G) is the commitment blinding base.
type DoubleProof struct {
	Y curve.Point
	U curve.Point
	S curve.Scalar
	T curve.Scalar
}

func ProveDouble(y curve.Point, s, t curve.Scalar) DoubleProof {
	g, h := curve.G(), curve.H()

	s0, t0 := curve.RandomScalar(), curve.RandomScalar()
	u := g.Mul(s0).Add(h.Mul(t0))
	c := curve.HashToScalar(y, u)

	return DoubleProof{
		Y: y,
		U: u,
		S: s0.Sub(c.Mul(s)),
		T: t0.Sub(c.Mul(t)),
	}
}

func VerifyDouble(p DoubleProof) bool {
	if p.U.IsIdentity() {
		return false
	}
	g, h := curve.G(), curve.H()
	c := curve.HashToScalar(p.Y, p.U)
	return p.Y.Mul(c).Add(g.Mul(p.S)).Add(h.Mul(p.T)).Equal(p.U)
}
