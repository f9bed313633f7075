package groth

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xoloki/jlib-sub001/curve"
)

func TestBinaryProof(t *testing.T) {
	assert := assert.New(t)

	for i := 0; i < 4; i++ {
		blind := curve.RandomScalar()
		assert.True(VerifyBinary(ProveBinary(curve.ScalarZero(), blind)))
		assert.True(VerifyBinary(ProveBinary(curve.ScalarOne(), blind)))
		assert.False(VerifyBinary(ProveBinary(curve.RandomScalar(), blind)))
		assert.False(VerifyBinary(ProveBinary(curve.ScalarFromUint64(2), blind)))
		assert.False(VerifyBinary(ProveBinary(curve.ScalarOne().Neg(), blind)))
	}

	blind := curve.RandomScalar()
	p := ProveBinary(curve.ScalarOne(), blind)
	assert.True(p.C.Open(curve.ScalarOne(), blind))

	q := p
	q.F = q.F.Add(curve.ScalarOne())
	assert.False(VerifyBinary(q))

	q = p
	q.C = curve.Commit(curve.ScalarZero(), curve.RandomScalar())
	assert.False(VerifyBinary(q))
}

func TestZeroProof(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	for _, size := range []int{1, 2, 3, 4, 5, 7, 8, 9} {
		for index := 0; index < size; index++ {
			blind := curve.RandomScalar()
			cs := make([]curve.Commitment, size)
			for i := range cs {
				cs[i] = curve.Commit(curve.RandomScalar(), curve.RandomScalar())
			}
			cs[index] = curve.Commit(curve.ScalarZero(), blind)

			p, err := ProveZero(cs, index, blind)
			require.Nil(err)
			assert.True(VerifyZero(p), "size %d index %d", size, index)

			wrong, err := ProveZero(cs, index, blind.Add(curve.ScalarOne()))
			require.Nil(err)
			assert.False(VerifyZero(wrong), "size %d index %d", size, index)
		}
	}
}

func TestZeroProofRejects(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	blind := curve.RandomScalar()
	cs := []curve.Commitment{
		curve.Commit(curve.RandomScalar(), curve.RandomScalar()),
		curve.Commit(curve.ScalarOne(), blind),
		curve.Commit(curve.RandomScalar(), curve.RandomScalar()),
	}

	// cs[1] opens to one, not zero
	p, err := ProveZero(cs, 1, blind)
	require.Nil(err)
	assert.False(VerifyZero(p))

	cs[1] = curve.Commit(curve.ScalarZero(), blind)
	p, err = ProveZero(cs, 1, blind)
	require.Nil(err)
	assert.True(VerifyZero(p))
	assert.Len(p.CL, 2)
	assert.Len(p.CD, 2)
	assert.Len(p.Commitments, 3)

	q := p
	q.Commitments = append([]curve.Commitment{}, p.Commitments...)
	q.Commitments[1] = curve.Commit(curve.ScalarZero(), curve.RandomScalar())
	assert.False(VerifyZero(q))

	q = p
	q.Commitments = p.Commitments[:2]
	assert.False(VerifyZero(q))

	q = p
	q.F = p.F[:1]
	assert.False(VerifyZero(q))

	q = p
	q.ZD = p.ZD.Add(curve.ScalarOne())
	assert.False(VerifyZero(q))

	assert.False(VerifyZero(ZeroProof{}))

	_, err = ProveZero(nil, 0, blind)
	assert.ErrorIs(err, ErrEmptyRing)
	_, err = ProveZero(cs, 3, blind)
	assert.ErrorIs(err, ErrInvalidIndex)
	_, err = ProveZero(cs, -1, blind)
	assert.ErrorIs(err, ErrInvalidIndex)
}

func TestUnsetProofsRejected(t *testing.T) {
	assert := assert.New(t)

	assert.False(VerifyBinary(BinaryProof{}))
	assert.False(VerifyZero(ZeroProof{
		Commitments: make([]curve.Commitment, 1),
		CL:          make([]curve.Point, 1),
		CA:          make([]curve.Point, 1),
		CB:          make([]curve.Point, 1),
		CD:          make([]curve.Point, 1),
		F:           make([]curve.Scalar, 1),
		ZA:          make([]curve.Scalar, 1),
		ZB:          make([]curve.Scalar, 1),
	}))

	blind := curve.RandomScalar()
	p := ProveBinary(curve.ScalarZero(), blind)
	q := p
	q.A = curve.Zero()
	assert.False(VerifyBinary(q))

	cs := []curve.Commitment{curve.Commit(curve.ScalarZero(), blind), curve.Commit(curve.RandomScalar(), blind)}
	z, err := ProveZero(cs, 0, blind)
	assert.Nil(err)
	z.CD = []curve.Point{curve.Zero()}
	assert.False(VerifyZero(z))
}

func TestProofJSON(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	blind := curve.RandomScalar()
	p := ProveBinary(curve.ScalarOne(), blind)
	data, err := json.Marshal(p)
	require.Nil(err)
	var q BinaryProof
	require.Nil(json.Unmarshal(data, &q))
	assert.True(VerifyBinary(q))
	assert.True(q.C.Equal(p.C))

	p.F = p.F.Add(curve.ScalarOne())
	data, err = json.Marshal(p)
	require.Nil(err)
	require.Nil(json.Unmarshal(data, &q))
	assert.False(VerifyBinary(q))

	cs := []curve.Commitment{curve.Commit(curve.RandomScalar(), curve.RandomScalar()), curve.Commit(curve.ScalarZero(), blind)}
	z, err := ProveZero(cs, 1, blind)
	require.Nil(err)
	data, err = json.Marshal(z)
	require.Nil(err)
	var w ZeroProof
	require.Nil(json.Unmarshal(data, &w))
	assert.True(VerifyZero(w))
}

func TestPadRing(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(1, nextPowerOfTwo(1))
	assert.Equal(4, nextPowerOfTwo(3))
	assert.Equal(8, nextPowerOfTwo(8))
	assert.Equal(16, nextPowerOfTwo(9))

	cs := []curve.Commitment{
		curve.Commit(curve.RandomScalar(), curve.RandomScalar()),
		curve.Commit(curve.RandomScalar(), curve.RandomScalar()),
		curve.Commit(curve.RandomScalar(), curve.RandomScalar()),
	}
	ring := padRing(cs)
	assert.Len(ring, 4)
	assert.True(ring[3].Equal(cs[2]))
	assert.Equal(2, ringBits(len(ring)))

	ring = padRing(cs[:1])
	assert.Len(ring, 2)
	assert.True(ring[1].Equal(cs[0]))
}

func TestPoly(t *testing.T) {
	assert := assert.New(t)

	a, b, x := curve.RandomScalar(), curve.RandomScalar(), curve.RandomScalar()
	p := linear(a, curve.ScalarOne()).mul(linear(b, curve.ScalarOne()))
	assert.Len(p, 3)
	assert.True(p.eval(x).Equal(x.Add(a).Mul(x.Add(b))))

	exp := newScalarExp(x)
	assert.True(exp.Next().Equal(curve.ScalarOne()))
	assert.True(exp.Next().Equal(x))
	assert.True(exp.Next().Equal(x.Mul(x)))
}
