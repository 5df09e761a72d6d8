package calculators

import (
	"github.com/dptools/elastic/internal/moduli"
)

// Compile-time assertion that BulkModulus implements the Calculator interface.
var _ moduli.Calculator = (*BulkModulus)(nil)

// BulkModulus computes the Voigt bulk modulus BV.
type BulkModulus struct{}

// NewBulkModulus creates a BulkModulus calculator.
func NewBulkModulus() *BulkModulus {
	return &BulkModulus{}
}

// Name returns the short name of this calculator.
func (c *BulkModulus) Name() string {
	return NameBulkModulus
}

// Keys returns the list of parameter keys required by this calculator.
func (c *BulkModulus) Keys() []string {
	return []string{ParamElasticTensor}
}

// Calculate returns the mean of the upper-left 3x3 block of the tensor.
func (c *BulkModulus) Calculate(params map[string]moduli.Param) (moduli.Modulus, error) {
	tensor, err := getTensor(params)
	if err != nil {
		return moduli.Modulus{}, err
	}
	return moduli.Modulus{
		Value: tensor.KVoigt(),
		Unit:  unitGPa,
	}, nil
}
