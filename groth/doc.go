// Package groth implements the Groth-Kohlweiss bit proof and the one-of-many
// proof built from it.
//
// A BinaryProof shows that a Pedersen commitment opens to 0 or 1. A
// ZeroProof shows that one commitment in a list opens to 0. The prover
// commits to each bit of the secret index with a bit proof and then cancels
// every other commitment through the polynomials
//
//	p_i(x) = prod_j f_{j,i_j}(x)
//
// of which only p_index has degree equal to the number of bits. Lists whose
// length is not a power of two are padded by repeating the last commitment.
// Challenges are drawn from merlin transcripts.
package groth
