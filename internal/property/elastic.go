package property

import (
	"go.uber.org/zap"

	"github.com/dptools/elastic/internal/refine"
)

// Compile-time assertion that Elastic implements the Property interface.
var _ Property = (*Elastic)(nil)

// Elastic generates and evaluates the deformations needed for the elastic tensor.
type Elastic struct {
	parameter map[string]interface{}
	config    *Config
	refiner   refine.Refiner
	log       *zap.SugaredLogger
}

// ElasticOption is a functional option for configuring an Elastic property.
type ElasticOption func(*Elastic)

// WithRefiner replaces the refinement collaborator used in refine mode.
func WithRefiner(r refine.Refiner) ElasticOption {
	return func(e *Elastic) {
		if r != nil {
			e.refiner = r
		}
	}
}

// NewElastic resolves parameter in place and returns the property.
func NewElastic(parameter map[string]interface{}, opts ...ElasticOption) (*Elastic, error) {
	cfg, err := ResolveParams(parameter)
	if err != nil {
		return nil, err
	}
	e := &Elastic{
		parameter: parameter,
		config:    cfg,
		refiner:   refine.NewFileRefiner(),
		log:       zap.S().Named("elastic"),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Config returns a copy of the resolved configuration.
func (e *Elastic) Config() Config {
	return *e.config
}

func (e *Elastic) TaskType() string {
	return e.config.Type
}

func (e *Elastic) TaskParam() map[string]interface{} {
	return e.parameter
}
