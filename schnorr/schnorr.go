// Package schnorr implements non-interactive Schnorr proofs of knowledge of
// discrete logs over ristretto255.
package schnorr

import (
	"github.com/xoloki/jlib-sub001/curve"
)

// Proof shows knowledge of x with Y = x*G.
type Proof struct {
	G curve.Point
	Y curve.Point
	R curve.Scalar
	T curve.Point
}

// Prove builds a proof that x is the discrete log of y to the base g.
// A fresh blinder is drawn for every call; reusing one leaks x.
func Prove(g, y curve.Point, x curve.Scalar) Proof {
	v := curve.RandomScalar()
	t := g.Mul(v)
	c := curve.HashToScalar(g, y, t)
	r := v.Sub(c.Mul(x))
	return Proof{G: g, Y: y, R: r, T: t}
}

// ProveBase is Prove with the group generator.
func ProveBase(y curve.Point, x curve.Scalar) Proof {
	return Prove(curve.G(), y, x)
}

// Verify checks r*g + c*y == t with c = hash(g, y, t). An identity base
// proves nothing, and an identity t means the blinder was zero.
func Verify(p Proof) bool {
	if p.G.IsIdentity() || p.T.IsIdentity() {
		return false
	}
	c := curve.HashToScalar(p.G, p.Y, p.T)
	return p.G.Mul(p.R).Add(p.Y.Mul(c)).Equal(p.T)
}
