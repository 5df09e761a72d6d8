package calculators

import (
	"github.com/dptools/elastic/internal/moduli"
)

// Compile-time assertion that ShearModulus implements the Calculator interface.
var _ moduli.Calculator = (*ShearModulus)(nil)

// ShearModulus computes the Voigt shear modulus GV.
type ShearModulus struct{}

// NewShearModulus creates a ShearModulus calculator.
func NewShearModulus() *ShearModulus {
	return &ShearModulus{}
}

// Name returns the short name of this calculator.
func (c *ShearModulus) Name() string {
	return NameShearModulus
}

// Keys returns the list of parameter keys required by this calculator.
func (c *ShearModulus) Keys() []string {
	return []string{ParamElasticTensor}
}

// Calculate returns ((C11+C22+C33) − (C12+C13+C23) + 3(C44+C55+C66)) / 15.
func (c *ShearModulus) Calculate(params map[string]moduli.Param) (moduli.Modulus, error) {
	tensor, err := getTensor(params)
	if err != nil {
		return moduli.Modulus{}, err
	}
	return moduli.Modulus{
		Value: tensor.GVoigt(),
		Unit:  unitGPa,
	}, nil
}
