package wire

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/xoloki/jlib-sub001/curve"
)

func TestEncoderLayout(t *testing.T) {
	assert := assert.New(t)

	p, s := curve.RandomPoint(), curve.RandomScalar()
	e := NewEncoder()
	e.Point(1, p)
	e.Scalar(2, s)
	e.Uint64(3, 300)

	data := e.Bytes()
	// tag, length, 32 bytes; twice; then tag and a two byte varint
	assert.Len(data, 2*(2+32)+3)
	assert.Equal(byte(1<<3|2), data[0])
	assert.Equal(byte(32), data[1])
	assert.Equal(p.Bytes(), data[2:34])
	assert.Equal(byte(2<<3|2), data[34])
	assert.Equal(s.Bytes(), data[36:68])

	d := NewDecoder(data)
	num, err := d.Next()
	assert.Nil(err)
	assert.Equal(Number(1), num)
	q, err := d.Point()
	assert.Nil(err)
	assert.True(p.Equal(q))

	num, err = d.Next()
	assert.Nil(err)
	assert.Equal(Number(2), num)
	r, err := d.Scalar()
	assert.Nil(err)
	assert.True(s.Equal(r))

	num, err = d.Next()
	assert.Nil(err)
	assert.Equal(Number(3), num)
	v, err := d.Uint64()
	assert.Nil(err)
	assert.Equal(uint64(300), v)
	assert.False(d.More())
}

func TestDecoderErrors(t *testing.T) {
	assert := assert.New(t)

	e := NewEncoder()
	e.Point(1, curve.RandomPoint())
	data := e.Bytes()

	d := NewDecoder(data[:20])
	_, err := d.Next()
	assert.Nil(err)
	_, err = d.Point()
	assert.ErrorIs(err, ErrTruncated)

	d = NewDecoder(data)
	_, err = d.Next()
	assert.Nil(err)
	_, err = d.Uint64()
	assert.ErrorIs(err, ErrUnexpectedField)

	bad := NewEncoder()
	bad.Scalar(1, curve.ScalarOne())
	raw := bad.Bytes()
	for i := 2; i < len(raw); i++ {
		raw[i] = 0xff
	}
	d = NewDecoder(raw)
	_, err = d.Next()
	assert.Nil(err)
	_, err = d.Point()
	assert.ErrorIs(err, curve.ErrInvalidPoint)

	d = NewDecoder(raw)
	_, err = d.Next()
	assert.Nil(err)
	_, err = d.Scalar()
	assert.ErrorIs(err, curve.ErrInvalidScalar)

	d = NewDecoder([]byte{0x80})
	_, err = d.Next()
	assert.ErrorIs(err, ErrTruncated)
}

func TestFields(t *testing.T) {
	assert := assert.New(t)

	var f Fields
	f.Set(1)
	f.Set(3)
	assert.Nil(f.Require(1, 3))
	assert.ErrorIs(f.Require(1, 2), ErrMissingField)
}
