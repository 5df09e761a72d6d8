package vasp

import "errors"

var (
	ErrMalformedPoscar = errors.New("malformed POSCAR")
	ErrSingularLattice = errors.New("lattice is singular")
	ErrInvalidKspacing = errors.New("KSPACING must be positive")
)
