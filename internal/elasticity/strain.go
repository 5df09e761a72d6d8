package elasticity

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Strain is a symmetric Green-Lagrange strain tensor.
type Strain Matrix3

// Stress is a Cauchy stress tensor.
type Stress Matrix3

// Deformation is a deformation gradient F; it maps reference vectors v to F·v.
type Deformation Matrix3

// StrainFromIndexAmount returns the strain with E[i][j] = E[j][i] = amount
// and every other component zero.
func StrainFromIndexAmount(i, j int, amount float64) Strain {
	var e Strain
	e[i][j] = amount
	e[j][i] = amount
	return e
}

// StrainFromDeformation returns the Green-Lagrange strain ½(FᵀF − I).
func StrainFromDeformation(f Deformation) Strain {
	m := Matrix3(f)
	c := m.Transpose().Mul(m)
	id := Identity()
	var e Strain
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			e[i][j] = 0.5 * (c[i][j] - id[i][j])
		}
	}
	return e
}

// Deformation returns the upper-triangular deformation F with FᵀF = 2E + I.
func (e Strain) Deformation() (Deformation, error) {
	data := make([]float64, 9)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			data[i*3+j] = 2 * e[i][j]
			if i == j {
				data[i*3+j]++
			}
		}
	}

	var chol mat.Cholesky
	if ok := chol.Factorize(mat.NewSymDense(3, data)); !ok {
		return Deformation{}, fmt.Errorf("%w: %v", ErrNotPositiveDefinite, e)
	}
	var u mat.TriDense
	chol.UTo(&u)

	var f Deformation
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			f[i][j] = u.At(i, j)
		}
	}
	return f, nil
}

// Voigt returns the strain in Voigt notation with engineering shear.
func (e Strain) Voigt() [6]float64 {
	return Matrix3(e).voigt(2)
}

// Voigt returns the stress in Voigt notation.
func (s Stress) Voigt() [6]float64 {
	return Matrix3(s).voigt(1)
}

// Scale returns the stress multiplied by f.
func (s Stress) Scale(f float64) Stress {
	return Stress(Matrix3(s).Scale(f))
}
