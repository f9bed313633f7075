// Package curve implements scalar and point arithmetic on the ristretto255
// group, Pedersen commitments and the hashing used to derive Fiat-Shamir
// challenges and independent generators.
//
// Scalars and points are immutable values. Arithmetic returns a new value:
//
//	y := curve.Base().Mul(x)
//	c := curve.Commit(value, blind)
//	e := curve.HashToScalar(g, y, t)
//
// Transcript hashing writes the canonical 32-byte encoding of every
// argument in order, with no separators, and digests the result with
// BLAKE2b-512. HashToScalar and HashToPoint first write a domain tag, so a
// challenge and a generator derived from the same points are unrelated. The
// 64-byte digest is reduced into a scalar or mapped onto the group.
package curve
