package elasticity

import "math"

// ElasticTensor is the stiffness tensor in 6x6 Voigt form. Units follow the
// stresses it was fitted from.
type ElasticTensor [6][6]float64

// KVoigt returns the Voigt-averaged bulk modulus, the mean of the upper
// left 3x3 block.
func (c ElasticTensor) KVoigt() float64 {
	sum := 0.0
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			sum += c[i][j]
		}
	}
	return sum / 9
}

// GVoigt returns the Voigt-averaged shear modulus
// ((C11+C22+C33) − (C12+C13+C23) + 3(C44+C55+C66)) / 15.
func (c ElasticTensor) GVoigt() float64 {
	normal := c[0][0] + c[1][1] + c[2][2]
	offDiag := c[0][1] + c[0][2] + c[1][2]
	shear := c[3][3] + c[4][4] + c[5][5]
	return (normal - offDiag + 3*shear) / 15
}

// Zeroed returns c with components smaller than tol set to zero.
func (c ElasticTensor) Zeroed(tol float64) ElasticTensor {
	for i := 0; i < 6; i++ {
		for j := 0; j < 6; j++ {
			if math.Abs(c[i][j]) < tol {
				c[i][j] = 0
			}
		}
	}
	return c
}

// Scale returns f·c.
func (c ElasticTensor) Scale(f float64) ElasticTensor {
	for i := 0; i < 6; i++ {
		for j := 0; j < 6; j++ {
			c[i][j] *= f
		}
	}
	return c
}

// Flatten returns the 36 components in row-major order.
func (c ElasticTensor) Flatten() []float64 {
	out := make([]float64, 0, 36)
	for i := 0; i < 6; i++ {
		out = append(out, c[i][:]...)
	}
	return out
}

// ElasticTensorFromFlat rebuilds a tensor from 36 row-major components.
func ElasticTensorFromFlat(flat []float64) (ElasticTensor, bool) {
	var c ElasticTensor
	if len(flat) != 36 {
		return c, false
	}
	for k, v := range flat {
		c[k/6][k%6] = v
	}
	return c, true
}
