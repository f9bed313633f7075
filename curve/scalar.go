package curve

import (
	"bytes"
	"encoding/binary"
	"encoding/hex"
	"fmt"

	"github.com/bwesterb/go-ristretto"
)

// ScalarSize is the length of a canonical scalar encoding.
const ScalarSize = 32

// Scalar is an element of the ristretto255 scalar field. It is a value
// type: every operation returns a new Scalar and leaves its operands
// untouched. The zero value is the scalar 0.
type Scalar struct {
	s ristretto.Scalar
}

func ScalarZero() Scalar {
	var r Scalar
	r.s.SetZero()
	return r
}

func ScalarOne() Scalar {
	var r Scalar
	r.s.SetOne()
	return r
}

// RandomScalar samples a uniform scalar from crypto/rand.
func RandomScalar() Scalar {
	var r Scalar
	r.s.Rand()
	return r
}

// ScalarFromHash reduces a 64-byte digest modulo the group order.
func ScalarFromHash(h Hash) Scalar {
	buf := [HashSize]byte(h)
	var r Scalar
	r.s.SetReduced(&buf)
	return r
}

func ScalarFromUint64(v uint64) Scalar {
	var buf [ScalarSize]byte
	binary.LittleEndian.PutUint64(buf[:], v)
	var r Scalar
	r.s.SetBytes(&buf)
	return r
}

// ScalarFromBytes decodes a canonical little-endian scalar.
func ScalarFromBytes(data []byte) (Scalar, error) {
	if len(data) != ScalarSize {
		return Scalar{}, fmt.Errorf("%w: length %d", ErrInvalidScalar, len(data))
	}
	if !isCanonical(data) {
		return Scalar{}, fmt.Errorf("%w: not canonical", ErrInvalidScalar)
	}
	var buf [ScalarSize]byte
	copy(buf[:], data)
	var r Scalar
	r.s.SetBytes(&buf)
	return r, nil
}

// order is l = 2^252 + 27742317777372353535851937790883648493, little endian.
var order = [ScalarSize]byte{
	0xed, 0xd3, 0xf5, 0x5c, 0x1a, 0x63, 0x12, 0x58,
	0xd6, 0x9c, 0xf7, 0xa2, 0xde, 0xf9, 0xde, 0x14,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x10,
}

// isCanonical reports whether the little-endian number in b is below l.
func isCanonical(b []byte) bool {
	for i := ScalarSize - 1; i >= 0; i-- {
		if b[i] < order[i] {
			return true
		}
		if b[i] > order[i] {
			return false
		}
	}
	return false
}

func (a Scalar) Add(b Scalar) Scalar {
	var r Scalar
	r.s.Add(&a.s, &b.s)
	return r
}

func (a Scalar) Sub(b Scalar) Scalar {
	var r Scalar
	r.s.Sub(&a.s, &b.s)
	return r
}

func (a Scalar) Mul(b Scalar) Scalar {
	var r Scalar
	r.s.Mul(&a.s, &b.s)
	return r
}

func (a Scalar) Neg() Scalar {
	var r Scalar
	r.s.Neg(&a.s)
	return r
}

// Inverse returns a^-1. Zero has no inverse.
func (a Scalar) Inverse() (Scalar, error) {
	if a.IsZero() {
		return Scalar{}, ErrZeroInverse
	}
	var r Scalar
	r.s.Inverse(&a.s)
	return r, nil
}

// Pow returns a^e. A negative exponent inverts the result, so it fails for
// a zero base.
func (a Scalar) Pow(e int64) (Scalar, error) {
	n := uint64(e)
	if e < 0 {
		n = uint64(-e)
	}

	result := ScalarOne()
	aux := a
	for n > 0 {
		if n&1 == 1 {
			result = result.Mul(aux)
		}
		n = n >> 1
		aux = aux.Mul(aux)
	}
	if e < 0 {
		return result.Inverse()
	}
	return result, nil
}

// MulPoint returns a*p, the Scalar-first spelling of Point.Mul.
func (a Scalar) MulPoint(p Point) Point {
	return p.Mul(a)
}

// Equal runs in constant time.
func (a Scalar) Equal(b Scalar) bool {
	return a.s.Equals(&b.s)
}

func (a Scalar) IsZero() bool {
	return a.s.IsNonZeroI() == 0
}

func (a Scalar) Bytes() []byte {
	return a.s.Bytes()
}

func (a Scalar) String() string {
	return hex.EncodeToString(a.Bytes())
}

func (a Scalar) MarshalBinary() ([]byte, error) {
	return a.Bytes(), nil
}

func (a *Scalar) UnmarshalBinary(data []byte) error {
	s, err := ScalarFromBytes(data)
	if err != nil {
		return err
	}
	*a = s
	return nil
}

// MarshalText uses the unpadded URL-safe base64 form of go-ristretto.
func (a Scalar) MarshalText() ([]byte, error) {
	return a.s.MarshalText()
}

// UnmarshalText accepts the base64 form written by MarshalText. go-ristretto
// reduces what it reads, so a non-canonical input shows up as a different
// re-encoding.
func (a *Scalar) UnmarshalText(txt []byte) error {
	var r Scalar
	if err := r.s.UnmarshalText(txt); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidScalar, err)
	}
	canonical, _ := r.MarshalText()
	if !bytes.Equal(canonical, txt) {
		return fmt.Errorf("%w: %q", ErrInvalidScalar, txt)
	}
	*a = r
	return nil
}
