package elasticity

import (
	"github.com/dptools/elastic/internal/vasp"
)

var (
	normalIndices = [3][2]int{{0, 0}, {1, 1}, {2, 2}}
	shearIndices  = [3][2]int{{0, 1}, {0, 2}, {1, 2}}
)

// DeformedSet is the ordered collection of deformations applied to one
// undeformed structure. Deformations[i] produced Structures[i].
type DeformedSet struct {
	Undeformed   *vasp.Structure
	Deformations []Deformation
	Structures   []*vasp.Structure
}

// Deformations enumerates the independent deformations: every normal
// strain on xx, yy and zz, then every shear strain on xy, xz and yz. Strains
// are never combined, so len(result) = 3·len(norm) + 3·len(shear).
func Deformations(normStrains, shearStrains []float64) ([]Deformation, error) {
	out := make([]Deformation, 0, 3*len(normStrains)+3*len(shearStrains))
	add := func(idx [2]int, amounts []float64) error {
		for _, amount := range amounts {
			f, err := StrainFromIndexAmount(idx[0], idx[1], amount).Deformation()
			if err != nil {
				return err
			}
			out = append(out, f)
		}
		return nil
	}
	for _, idx := range normalIndices {
		if err := add(idx, normStrains); err != nil {
			return nil, err
		}
	}
	for _, idx := range shearIndices {
		if err := add(idx, shearStrains); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// NewDeformedSet builds the deformation set for s without symmetry reduction.
func NewDeformedSet(s *vasp.Structure, normStrains, shearStrains []float64) (*DeformedSet, error) {
	defs, err := Deformations(normStrains, shearStrains)
	if err != nil {
		return nil, err
	}
	set := &DeformedSet{
		Undeformed:   s,
		Deformations: defs,
		Structures:   make([]*vasp.Structure, len(defs)),
	}
	for i, d := range defs {
		set.Structures[i] = d.ApplyToStructure(s)
	}
	return set, nil
}

// Len returns the number of deformations.
func (d *DeformedSet) Len() int {
	return len(d.Deformations)
}

// SymmetricStrains returns {-m, -m/2, m/2, m}.
func SymmetricStrains(m float64) []float64 {
	return []float64{-m, -0.5 * m, 0.5 * m, m}
}
