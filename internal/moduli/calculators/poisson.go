package calculators

import (
	"go.uber.org/zap"

	"github.com/dptools/elastic/internal/moduli"
)

// Compile-time assertion that PoissonRatio implements the Calculator interface.
var _ moduli.Calculator = (*PoissonRatio)(nil)

// PoissonRatio computes uV = 0.5·(3·BV − 2·GV) / (3·BV + GV).
type PoissonRatio struct{}

// NewPoissonRatio creates a PoissonRatio calculator.
func NewPoissonRatio() *PoissonRatio {
	return &PoissonRatio{}
}

// Name returns the short name of this calculator.
func (c *PoissonRatio) Name() string {
	return NamePoissonRatio
}

// Keys returns the list of parameter keys required by this calculator.
func (c *PoissonRatio) Keys() []string {
	return []string{ParamElasticTensor}
}

// Calculate returns uV. A zero denominator yields 0 rather than NaN.
func (c *PoissonRatio) Calculate(params map[string]moduli.Param) (moduli.Modulus, error) {
	tensor, err := getTensor(params)
	if err != nil {
		return moduli.Modulus{}, err
	}
	bv, gv, denominator := voigtPair(tensor)
	if denominator == 0 {
		zap.S().Named("moduli").Warnf("3*BV+GV is zero, reporting Poisson ratio as 0")
		return moduli.Modulus{Reason: "degenerate tensor: 3*BV+GV = 0"}, nil
	}
	return moduli.Modulus{
		Value: 0.5 * (3*bv - 2*gv) / denominator,
	}, nil
}
