package groth

import (
	"encoding/binary"

	"github.com/gtank/merlin"
)

func BinaryProofDomainSep(t *merlin.Transcript) *merlin.Transcript {
	t.AppendMessage([]byte("dom-sep"), []byte("binary v1"))
	return t
}

// ZeroProofDomainSep binds the ring size m and the index bit count n.
func ZeroProofDomainSep(m, n uint64, t *merlin.Transcript) *merlin.Transcript {
	t.AppendMessage([]byte("dom-sep"), []byte("zero v1"))
	appendUint64("m", m, t)
	appendUint64("n", n, t)
	return t
}

func appendUint64(label string, v uint64, t *merlin.Transcript) {
	buf := make([]byte, 8)
	binary.LittleEndian.PutUint64(buf, v)
	t.AppendMessage([]byte(label), buf)
}
