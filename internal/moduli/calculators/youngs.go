package calculators

import (
	"go.uber.org/zap"

	"github.com/dptools/elastic/internal/moduli"
)

// Compile-time assertion that YoungsModulus implements the Calculator interface.
var _ moduli.Calculator = (*YoungsModulus)(nil)

// YoungsModulus computes EV = 9·BV·GV / (3·BV + GV).
type YoungsModulus struct{}

// NewYoungsModulus creates a YoungsModulus calculator.
func NewYoungsModulus() *YoungsModulus {
	return &YoungsModulus{}
}

// Name returns the short name of this calculator.
func (c *YoungsModulus) Name() string {
	return NameYoungsModulus
}

// Keys returns the list of parameter keys required by this calculator.
func (c *YoungsModulus) Keys() []string {
	return []string{ParamElasticTensor}
}

// Calculate returns EV. A zero denominator yields 0 rather than NaN.
func (c *YoungsModulus) Calculate(params map[string]moduli.Param) (moduli.Modulus, error) {
	tensor, err := getTensor(params)
	if err != nil {
		return moduli.Modulus{}, err
	}
	bv, gv, denominator := voigtPair(tensor)
	if denominator == 0 {
		zap.S().Named("moduli").Warnf("3*BV+GV is zero, reporting Young's modulus as 0")
		return moduli.Modulus{Unit: unitGPa, Reason: "degenerate tensor: 3*BV+GV = 0"}, nil
	}
	return moduli.Modulus{
		Value: 9 * bv * gv / denominator,
		Unit:  unitGPa,
	}, nil
}
