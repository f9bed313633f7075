package curve

import (
	"bytes"
	"encoding/hex"
	"fmt"

	"github.com/bwesterb/go-ristretto"
)

// PointSize is the length of a compressed ristretto255 encoding.
const PointSize = 32

// Point is a ristretto255 group element. Like Scalar it is a value type.
// The struct zero value is the identity.
type Point struct {
	p ristretto.Point
}

// el returns the underlying group element. An unset struct holds the
// all-zero extended coordinates, which are off the curve, so it reads as
// the identity instead.
func (a *Point) el() *ristretto.Point {
	if a.p == (ristretto.Point{}) {
		var id ristretto.Point
		return id.SetZero()
	}
	return &a.p
}

// Zero returns the identity element.
func Zero() Point {
	var r Point
	r.p.SetZero()
	return r
}

// PointFromScalar returns s*G.
func PointFromScalar(s Scalar) Point {
	var r Point
	r.p.ScalarMultBase(&s.s)
	return r
}

// PointFromHash maps a 64-byte digest onto the group with no known
// discrete log: Elligator on each half, then the two images are added.
func PointFromHash(h Hash) Point {
	var r1Bytes, r2Bytes [32]byte
	copy(r1Bytes[:], h[:32])
	copy(r2Bytes[:], h[32:])
	var r1, r2 ristretto.Point
	var r Point
	r.p.Add(r1.SetElligator(&r1Bytes), r2.SetElligator(&r2Bytes))
	return r
}

func RandomPoint() Point {
	return PointFromScalar(RandomScalar())
}

// PointFromBytes decodes a compressed point, rejecting encodings that are
// not canonical ristretto255 elements.
func PointFromBytes(data []byte) (Point, error) {
	if len(data) != PointSize {
		return Point{}, fmt.Errorf("%w: length %d", ErrInvalidPoint, len(data))
	}
	var buf [PointSize]byte
	copy(buf[:], data)
	var r Point
	if !r.p.SetBytes(&buf) {
		return Point{}, fmt.Errorf("%w: %x", ErrInvalidPoint, data)
	}
	return r, nil
}

func (a Point) Add(b Point) Point {
	var r Point
	r.p.Add(a.el(), b.el())
	return r
}

func (a Point) Sub(b Point) Point {
	var r Point
	r.p.Sub(a.el(), b.el())
	return r
}

func (a Point) Neg() Point {
	var r Point
	r.p.Neg(a.el())
	return r
}

// Mul returns s*a.
func (a Point) Mul(s Scalar) Point {
	var r Point
	r.p.ScalarMult(a.el(), &s.s)
	return r
}

// Equal runs in constant time.
func (a Point) Equal(b Point) bool {
	return a.el().Equals(b.el())
}

func (a Point) IsIdentity() bool {
	return a.Equal(Zero())
}

func (a Point) Bytes() []byte {
	return a.el().Bytes()
}

func (a Point) String() string {
	return hex.EncodeToString(a.Bytes())
}

func (a Point) MarshalBinary() ([]byte, error) {
	return a.Bytes(), nil
}

func (a *Point) UnmarshalBinary(data []byte) error {
	p, err := PointFromBytes(data)
	if err != nil {
		return err
	}
	*a = p
	return nil
}

// MarshalText uses the unpadded URL-safe base64 form of go-ristretto.
func (a Point) MarshalText() ([]byte, error) {
	return a.el().MarshalText()
}

// UnmarshalText accepts the base64 form written by MarshalText and rejects
// anything that is not a canonical encoding of a group element.
func (a *Point) UnmarshalText(txt []byte) error {
	var r Point
	if err := r.p.UnmarshalText(txt); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidPoint, err)
	}
	canonical, _ := r.MarshalText()
	if !bytes.Equal(canonical, txt) {
		return fmt.Errorf("%w: %q", ErrInvalidPoint, txt)
	}
	*a = r
	return nil
}

// MultiScalarMul returns sum(scalars[i]*points[i]).
func MultiScalarMul(scalars []Scalar, points []Point) (Point, error) {
	if len(scalars) != len(points) {
		return Point{}, fmt.Errorf("%w: %d scalars, %d points", ErrLengthMismatch, len(scalars), len(points))
	}
	r := Zero()
	for i := range scalars {
		r = r.Add(points[i].Mul(scalars[i]))
	}
	return r, nil
}
