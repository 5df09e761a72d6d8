package calculators

import "github.com/dptools/elastic/internal/moduli"

// NewVoigtEngine returns an engine with the BV, GV, EV and uV calculators.
func NewVoigtEngine() *moduli.Engine {
	e := moduli.NewEngine()
	e.Register(NewBulkModulus())
	e.Register(NewShearModulus())
	e.Register(NewYoungsModulus())
	e.Register(NewPoissonRatio())
	return e
}
