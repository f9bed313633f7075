// Package wire lays proofs out in protobuf wire format without generated
// message types. Every group element is a length-delimited field holding
// its 32-byte canonical encoding, written in struct order; repeated fields
// repeat their tag.
package wire

import (
	"errors"
	"fmt"

	"github.com/xoloki/jlib-sub001/curve"
	"google.golang.org/protobuf/encoding/protowire"
)

var (
	ErrTruncated       = errors.New("wire: truncated input")
	ErrUnexpectedField = errors.New("wire: unexpected field")
	ErrMissingField    = errors.New("wire: missing field")
)

type Number = protowire.Number

type Encoder struct {
	buf []byte
}

func NewEncoder() *Encoder {
	return &Encoder{}
}

func (e *Encoder) Point(num Number, p curve.Point) {
	e.bytes(num, p.Bytes())
}

func (e *Encoder) Points(num Number, ps []curve.Point) {
	for _, p := range ps {
		e.Point(num, p)
	}
}

func (e *Encoder) Commitments(num Number, cs []curve.Commitment) {
	for _, c := range cs {
		e.Point(num, c.Point)
	}
}

func (e *Encoder) Scalar(num Number, s curve.Scalar) {
	e.bytes(num, s.Bytes())
}

func (e *Encoder) Scalars(num Number, ss []curve.Scalar) {
	for _, s := range ss {
		e.Scalar(num, s)
	}
}

func (e *Encoder) Uint64(num Number, v uint64) {
	e.buf = protowire.AppendTag(e.buf, num, protowire.VarintType)
	e.buf = protowire.AppendVarint(e.buf, v)
}

func (e *Encoder) Bytes() []byte {
	return e.buf
}

func (e *Encoder) bytes(num Number, data []byte) {
	e.buf = protowire.AppendTag(e.buf, num, protowire.BytesType)
	e.buf = protowire.AppendBytes(e.buf, data)
}

// Decoder reads fields in order. Call Next for the field number, then the
// accessor matching that field's type.
type Decoder struct {
	buf []byte
	num Number
	typ protowire.Type
}

func NewDecoder(data []byte) *Decoder {
	return &Decoder{buf: data}
}

func (d *Decoder) More() bool {
	return len(d.buf) > 0
}

func (d *Decoder) Next() (Number, error) {
	num, typ, n := protowire.ConsumeTag(d.buf)
	if n < 0 {
		return 0, fmt.Errorf("%w: %v", ErrTruncated, protowire.ParseError(n))
	}
	d.buf = d.buf[n:]
	d.num, d.typ = num, typ
	return num, nil
}

func (d *Decoder) Point() (curve.Point, error) {
	data, err := d.bytes()
	if err != nil {
		return curve.Point{}, err
	}
	p, err := curve.PointFromBytes(data)
	if err != nil {
		return curve.Point{}, fmt.Errorf("wire: field %d: %w", d.num, err)
	}
	return p, nil
}

func (d *Decoder) Commitment() (curve.Commitment, error) {
	p, err := d.Point()
	if err != nil {
		return curve.Commitment{}, err
	}
	return curve.Commitment{Point: p}, nil
}

func (d *Decoder) Scalar() (curve.Scalar, error) {
	data, err := d.bytes()
	if err != nil {
		return curve.Scalar{}, err
	}
	s, err := curve.ScalarFromBytes(data)
	if err != nil {
		return curve.Scalar{}, fmt.Errorf("wire: field %d: %w", d.num, err)
	}
	return s, nil
}

func (d *Decoder) Uint64() (uint64, error) {
	if d.typ != protowire.VarintType {
		return 0, d.Unexpected()
	}
	v, n := protowire.ConsumeVarint(d.buf)
	if n < 0 {
		return 0, fmt.Errorf("%w: %v", ErrTruncated, protowire.ParseError(n))
	}
	d.buf = d.buf[n:]
	return v, nil
}

// Fields records which field numbers a decoder has seen.
type Fields uint64

func (f *Fields) Set(num Number) {
	*f |= 1 << uint(num)
}

// Require returns ErrMissingField naming the first of nums not seen.
func (f Fields) Require(nums ...Number) error {
	for _, num := range nums {
		if f&(1<<uint(num)) == 0 {
			return fmt.Errorf("%w: %d", ErrMissingField, num)
		}
	}
	return nil
}

// Unexpected reports the current field as unknown to the caller.
func (d *Decoder) Unexpected() error {
	return fmt.Errorf("%w: %d (type %d)", ErrUnexpectedField, d.num, d.typ)
}

func (d *Decoder) bytes() ([]byte, error) {
	if d.typ != protowire.BytesType {
		return nil, d.Unexpected()
	}
	v, n := protowire.ConsumeBytes(d.buf)
	if n < 0 {
		return nil, fmt.Errorf("%w: %v", ErrTruncated, protowire.ParseError(n))
	}
	d.buf = d.buf[n:]
	return v, nil
}
