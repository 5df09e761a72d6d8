package elasticity

import "errors"

var (
	ErrNotPositiveDefinite = errors.New("strain does not map to a real deformation")
	ErrLengthMismatch      = errors.New("strain and stress counts differ")
	ErrMissingStrainState  = errors.New("missing independent strain state")
)
