package curve

import "sync"

// BasePoint is the fixed ristretto255 generator G. It carries no state, so
// it cannot be set to any other value.
type BasePoint struct{}

func Base() BasePoint {
	return BasePoint{}
}

// Mul returns s*G using the fixed-base table.
func (BasePoint) Mul(s Scalar) Point {
	return PointFromScalar(s)
}

func (BasePoint) Point() Point {
	var r Point
	r.p.SetBase()
	return r
}

func (b BasePoint) Bytes() []byte {
	return b.Point().Bytes()
}

var (
	blindingOnce sync.Once
	blindingBase Point
)

// G returns the value generator of Commit.
func G() Point {
	return Base().Point()
}

// H returns the blinding generator hash(G). It is derived once per process.
func H() Point {
	blindingOnce.Do(func() {
		blindingBase = HashToPoint(Base())
	})
	return blindingBase
}

// Commitment is a Pedersen commitment value*G + blind*H.
type Commitment struct {
	Point
}

func Commit(value, blind Scalar) Commitment {
	vz, bz := value.IsZero(), blind.IsZero()
	switch {
	case vz && bz:
		return Commitment{Zero()}
	case vz:
		return Commitment{H().Mul(blind)}
	case bz:
		return Commitment{Base().Mul(value)}
	}
	return Commitment{Base().Mul(value).Add(H().Mul(blind))}
}

func CommitUint64(value uint64, blind Scalar) Commitment {
	return Commit(ScalarFromUint64(value), blind)
}

func (c Commitment) Add(o Commitment) Commitment {
	return Commitment{c.Point.Add(o.Point)}
}

func (c Commitment) Sub(o Commitment) Commitment {
	return Commitment{c.Point.Sub(o.Point)}
}

func (c Commitment) Mul(s Scalar) Commitment {
	return Commitment{c.Point.Mul(s)}
}

func (c Commitment) Equal(o Commitment) bool {
	return c.Point.Equal(o.Point)
}

// Open reports whether c commits to value under blind.
func (c Commitment) Open(value, blind Scalar) bool {
	return c.Equal(Commit(value, blind))
}

func CommitmentFromBytes(data []byte) (Commitment, error) {
	p, err := PointFromBytes(data)
	if err != nil {
		return Commitment{}, err
	}
	return Commitment{p}, nil
}
