package curve

import (
	"hash"

	"github.com/dchest/blake2b"
	"golang.org/x/crypto/sha3"
)

// HashSize is the digest length. Wide scalar reduction and the
// hash-to-group map both consume 64 uniform bytes.
const HashSize = 64

// Hash is a transcript digest, turned into a challenge with ScalarFromHash
// or into an independent generator with PointFromHash.
type Hash [HashSize]byte

const (
	HASH_TO_POINT_DOMAIN_TAG  = "sigma_hash_to_point"
	HASH_TO_SCALAR_DOMAIN_TAG = "sigma_hash_to_scalar"
)

// Element is anything with a canonical fixed-width encoding.
type Element interface {
	Bytes() []byte
}

// DomainTag is an Element that writes its bytes verbatim, used as the first
// argument of a digest to separate its uses.
type DomainTag string

func (d DomainTag) Bytes() []byte {
	return []byte(d)
}

// Hasher digests a sequence of elements. Implementations write each
// element's canonical bytes in order with no separators.
type Hasher interface {
	Sum(args ...Element) Hash
}

// Blake2b is the default Hasher (BLAKE2b-512).
type Blake2b struct{}

func (Blake2b) Sum(args ...Element) Hash {
	return sum(blake2b.New512(), args)
}

// SHA3 hashes with SHA3-512.
type SHA3 struct{}

func (SHA3) Sum(args ...Element) Hash {
	return sum(sha3.New512(), args)
}

func sum(h hash.Hash, args []Element) Hash {
	for _, a := range args {
		h.Write(a.Bytes())
	}
	var out Hash
	copy(out[:], h.Sum(nil))
	return out
}

// HashOf digests args with the default hasher. It adds no tag of its own.
func HashOf(args ...Element) Hash {
	return Blake2b{}.Sum(args...)
}

func HashWith(h Hasher, args ...Element) Hash {
	return h.Sum(args...)
}

// HashToScalar derives a Fiat-Shamir challenge from args under
// HASH_TO_SCALAR_DOMAIN_TAG.
func HashToScalar(args ...Element) Scalar {
	return ScalarFromHash(tagged(Blake2b{}, HASH_TO_SCALAR_DOMAIN_TAG, args))
}

// HashToPoint derives a generator with unknown discrete log from args under
// HASH_TO_POINT_DOMAIN_TAG.
func HashToPoint(args ...Element) Point {
	return PointFromHash(tagged(Blake2b{}, HASH_TO_POINT_DOMAIN_TAG, args))
}

func tagged(h Hasher, tag DomainTag, args []Element) Hash {
	return h.Sum(append([]Element{tag}, args...)...)
}
