package elasticity

import (
	"github.com/dptools/elastic/internal/vasp"
)

// ApplyToStructure returns a copy of s whose lattice vectors are mapped by
// F. Fractional positions are unchanged, so atoms follow the cell.
func (f Deformation) ApplyToStructure(s *vasp.Structure) *vasp.Structure {
	out := s.Copy()
	for i, row := range s.Lattice {
		out.Lattice[i] = Matrix3(f).Apply(row)
	}
	return out
}

// GreenLagrangeStrain is shorthand for StrainFromDeformation(f).
func (f Deformation) GreenLagrangeStrain() Strain {
	return StrainFromDeformation(f)
}
