package curve

import "sync"

// GeneratorChain is the sequence g, hash(g), hash(hash(g)), ... used for
// multi-secret commitments, each step tagged with HASH_TO_POINT_DOMAIN_TAG.
// Entries are derived lazily and memoized.
type GeneratorChain struct {
	mu     sync.Mutex
	hasher Hasher
	gens   []Point
}

func NewGeneratorChain(base Point, h Hasher) *GeneratorChain {
	return &GeneratorChain{hasher: h, gens: []Point{base}}
}

var defaultChain = NewGeneratorChain(G(), Blake2b{})

// Generators returns the first n entries of the chain rooted at G. The
// second entry equals H().
func Generators(n int) []Point {
	return defaultChain.Take(n)
}

// Take returns a copy of the first n generators, extending the chain as
// needed.
func (c *GeneratorChain) Take(n int) []Point {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.increaseCapacity(n)
	out := make([]Point, n)
	copy(out, c.gens[:n])
	return out
}

func (c *GeneratorChain) increaseCapacity(n int) {
	for len(c.gens) < n {
		last := c.gens[len(c.gens)-1]
		c.gens = append(c.gens, PointFromHash(tagged(c.hasher, HASH_TO_POINT_DOMAIN_TAG, []Element{last})))
	}
}
