package groth

import "errors"

var (
	ErrEmptyRing    = errors.New("groth: empty commitment list")
	ErrInvalidIndex = errors.New("groth: index out of range")
	ErrRingSize     = errors.New("groth: ring size does not match commitments")
)
