package groth

import (
	"github.com/xoloki/jlib-sub001/curve"
)

// poly holds coefficients, lowest degree first.
type poly []curve.Scalar

// linear returns c0 + c1*x.
func linear(c0, c1 curve.Scalar) poly {
	return poly{c0, c1}
}

func (p poly) mul(q poly) poly {
	out := make(poly, len(p)+len(q)-1)
	for i := range out {
		out[i] = curve.ScalarZero()
	}
	for i := range p {
		for j := range q {
			out[i+j] = out[i+j].Add(p[i].Mul(q[j]))
		}
	}
	return out
}

// eval uses Horner's rule.
func (p poly) eval(x curve.Scalar) curve.Scalar {
	r := curve.ScalarZero()
	for i := len(p) - 1; i >= 0; i-- {
		r = r.Mul(x).Add(p[i])
	}
	return r
}

// scalarExp yields 1, x, x^2, ...
type scalarExp struct {
	x    curve.Scalar
	next curve.Scalar
}

func newScalarExp(x curve.Scalar) *scalarExp {
	return &scalarExp{x: x, next: curve.ScalarOne()}
}

func (s *scalarExp) Next() curve.Scalar {
	r := s.next
	s.next = s.next.Mul(s.x)
	return r
}
