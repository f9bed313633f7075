package curve

import "errors"

var (
	ErrInvalidPoint   = errors.New("curve: invalid ristretto255 point")
	ErrInvalidScalar  = errors.New("curve: invalid scalar encoding")
	ErrZeroInverse    = errors.New("curve: inverse of zero")
	ErrLengthMismatch = errors.New("curve: length mismatch")
)
