package schnorr

import (
	"fmt"

	"github.com/xoloki/jlib-sub001/curve"
)

// GeneralProof shows knowledge of x[0..n) with
// Y = x[0]*g + x[1]*h[0] + ... + x[n-1]*h[n-2].
type GeneralProof struct {
	Y curve.Point
	T curve.Point
	R []curve.Scalar
}

// General proves and verifies GeneralProofs for a fixed number of secrets.
type General struct {
	n    int
	gens []curve.Point
}

// NewGeneral prepares the n generators g, hash(g), hash(hash(g)), ...
func NewGeneral(n int) (*General, error) {
	if n < 1 {
		return nil, fmt.Errorf("schnorr: general proof needs at least one secret, got %d", n)
	}
	return &General{n: n, gens: curve.Generators(n)}, nil
}

// NewGeneralFromChain takes its generators from chain instead of the
// default BLAKE2b chain rooted at G.
func NewGeneralFromChain(n int, chain *curve.GeneratorChain) (*General, error) {
	if n < 1 {
		return nil, fmt.Errorf("schnorr: general proof needs at least one secret, got %d", n)
	}
	return &General{n: n, gens: chain.Take(n)}, nil
}

func (g *General) N() int {
	return g.n
}

func (g *General) Generators() []curve.Point {
	out := make([]curve.Point, len(g.gens))
	copy(out, g.gens)
	return out
}

// Commit returns the public value y for the secrets x.
func (g *General) Commit(x []curve.Scalar) (curve.Point, error) {
	if len(x) != g.n {
		return curve.Point{}, fmt.Errorf("schnorr: %w: %d secrets for %d generators", curve.ErrLengthMismatch, len(x), g.n)
	}
	return curve.MultiScalarMul(x, g.gens)
}

func (g *General) Prove(y curve.Point, x []curve.Scalar) (GeneralProof, error) {
	if len(x) != g.n {
		return GeneralProof{}, fmt.Errorf("schnorr: %w: %d secrets for %d generators", curve.ErrLengthMismatch, len(x), g.n)
	}

	v := make([]curve.Scalar, g.n)
	for i := range v {
		v[i] = curve.RandomScalar()
	}
	t, err := curve.MultiScalarMul(v, g.gens)
	if err != nil {
		return GeneralProof{}, err
	}
	c := curve.HashToScalar(y, t)

	r := make([]curve.Scalar, g.n)
	for i := range r {
		r[i] = v[i].Sub(c.Mul(x[i]))
	}
	return GeneralProof{Y: y, T: t, R: r}, nil
}

func (g *General) Verify(p GeneralProof) bool {
	if len(p.R) != g.n || p.T.IsIdentity() {
		return false
	}
	c := curve.HashToScalar(p.Y, p.T)
	sum, err := curve.MultiScalarMul(p.R, g.gens)
	if err != nil {
		return false
	}
	return p.Y.Mul(c).Add(sum).Equal(p.T)
}
