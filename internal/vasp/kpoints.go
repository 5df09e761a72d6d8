package vasp

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// ReciprocalLattice returns the reciprocal vectors (without the 2π factor)
// as rows, i.e. the transposed inverse of the lattice.
func ReciprocalLattice(s *Structure) ([3][3]float64, error) {
	var inv mat.Dense
	if err := inv.Inverse(latticeDense(s.Lattice)); err != nil {
		return [3][3]float64{}, ErrSingularLattice
	}
	var rec [3][3]float64
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			rec[i][j] = inv.At(j, i)
		}
	}
	return rec, nil
}

// KspacingMesh returns the automatic mesh VASP derives from KSPACING:
// n_i = max(1, ceil(2π|b_i| / kspacing_i)).
func KspacingMesh(s *Structure, kspacing [3]float64) ([3]int, error) {
	rec, err := ReciprocalLattice(s)
	if err != nil {
		return [3]int{}, err
	}
	var mesh [3]int
	for i := 0; i < 3; i++ {
		if kspacing[i] <= 0 {
			return [3]int{}, ErrInvalidKspacing
		}
		norm := math.Sqrt(rec[i][0]*rec[i][0] + rec[i][1]*rec[i][1] + rec[i][2]*rec[i][2])
		n := int(math.Ceil(2 * math.Pi * norm / kspacing[i]))
		mesh[i] = max(1, n)
	}
	return mesh, nil
}

// MakeKspacingKpoints renders an automatic KPOINTS file for s. gamma
// selects a Gamma-centred mesh instead of Monkhorst-Pack.
func MakeKspacingKpoints(s *Structure, kspacing [3]float64, gamma bool) (string, error) {
	mesh, err := KspacingMesh(s, kspacing)
	if err != nil {
		return "", err
	}
	return FormatKpoints(mesh, gamma), nil
}

// FormatKpoints renders an automatic mesh in KPOINTS format.
func FormatKpoints(mesh [3]int, gamma bool) string {
	if gamma {
		return fmt.Sprintf("Automatic mesh\n0\nGamma\n%d %d %d\n0  0  0\n", mesh[0], mesh[1], mesh[2])
	}
	return fmt.Sprintf("K-Points\n0\nMonkhorst Pack\n%d %d %d\n 0  0  0\n", mesh[0], mesh[1], mesh[2])
}
