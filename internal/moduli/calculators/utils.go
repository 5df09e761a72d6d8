package calculators

import (
	"fmt"

	"github.com/dptools/elastic/internal/elasticity"
	"github.com/dptools/elastic/internal/moduli"
)

const (
	// ParamElasticTensor is the moduli.Param key for the elastic tensor in GPa.
	ParamElasticTensor = "elastic_tensor"

	NameBulkModulus   = "BV"
	NameShearModulus  = "GV"
	NameYoungsModulus = "EV"
	NamePoissonRatio  = "uV"

	unitGPa = "GPa"
)

func getTensor(params map[string]moduli.Param) (elasticity.ElasticTensor, error) {
	p, ok := params[ParamElasticTensor]
	if !ok {
		return elasticity.ElasticTensor{}, fmt.Errorf("missing %s", ParamElasticTensor)
	}
	switch v := p.Value.(type) {
	case elasticity.ElasticTensor:
		return v, nil
	case *elasticity.ElasticTensor:
		if v == nil {
			return elasticity.ElasticTensor{}, fmt.Errorf("param %s is nil", p.Key)
		}
		return *v, nil
	case []float64:
		c, ok := elasticity.ElasticTensorFromFlat(v)
		if !ok {
			return elasticity.ElasticTensor{}, fmt.Errorf("param %s needs 36 components, got %d", p.Key, len(v))
		}
		return c, nil
	default:
		return elasticity.ElasticTensor{}, fmt.Errorf("param %s is not an elastic tensor (type: %T)", p.Key, p.Value)
	}
}

// voigtPair returns BV and GV together with 3·BV+GV, the denominator shared
// by the Young's modulus and Poisson ratio expressions.
func voigtPair(c elasticity.ElasticTensor) (bv, gv, denominator float64) {
	bv = c.KVoigt()
	gv = c.GVoigt()
	return bv, gv, 3*bv + gv
}
