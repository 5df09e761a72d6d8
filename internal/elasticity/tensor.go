package elasticity

import "math"

// DefaultTolerance is the magnitude below which components are treated as zero.
const DefaultTolerance = 1e-10

// Matrix3 is a rank-2 Cartesian tensor.
type Matrix3 [3][3]float64

// VoigtPairs maps a Voigt index to its tensor index pair.
var VoigtPairs = [6][2]int{{0, 0}, {1, 1}, {2, 2}, {1, 2}, {0, 2}, {0, 1}}

// Identity returns the 3x3 identity.
func Identity() Matrix3 {
	return Matrix3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
}

// Transpose returns mᵀ.
func (m Matrix3) Transpose() Matrix3 {
	var t Matrix3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			t[i][j] = m[j][i]
		}
	}
	return t
}

// Mul returns the matrix product m·o.
func (m Matrix3) Mul(o Matrix3) Matrix3 {
	var r Matrix3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				r[i][j] += m[i][k] * o[k][j]
			}
		}
	}
	return r
}

// Scale returns f·m.
func (m Matrix3) Scale(f float64) Matrix3 {
	var r Matrix3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r[i][j] = m[i][j] * f
		}
	}
	return r
}

// Apply returns m·v.
func (m Matrix3) Apply(v [3]float64) [3]float64 {
	var r [3]float64
	for i := 0; i < 3; i++ {
		r[i] = m[i][0]*v[0] + m[i][1]*v[1] + m[i][2]*v[2]
	}
	return r
}

// Zeroed returns m with components smaller than tol set to zero.
func (m Matrix3) Zeroed(tol float64) Matrix3 {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if math.Abs(m[i][j]) < tol {
				m[i][j] = 0
			}
		}
	}
	return m
}

// Equal reports whether m and o agree within tol component-wise.
func (m Matrix3) Equal(o Matrix3, tol float64) bool {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if math.Abs(m[i][j]-o[i][j]) > tol {
				return false
			}
		}
	}
	return true
}

func (m Matrix3) voigt(shearScale float64) [6]float64 {
	var v [6]float64
	for k, p := range VoigtPairs {
		v[k] = m[p[0]][p[1]]
		if k >= 3 {
			v[k] *= shearScale
		}
	}
	return v
}
