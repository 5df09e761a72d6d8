package moduli

import (
	"errors"
	"fmt"
)

var ErrMissingParam = errors.New("missing parameter")

// Engine evaluates a fixed, ordered set of calculators on shared inputs.
type Engine struct {
	calculators []Calculator
}

func NewEngine() *Engine {
	return &Engine{}
}

// Register appends c. Names must be unique; a duplicate panics because
// its result would shadow the earlier one.
func (e *Engine) Register(c Calculator) {
	for _, existing := range e.calculators {
		if existing.Name() == c.Name() {
			panic(fmt.Sprintf("moduli: calculator %q already registered", c.Name()))
		}
	}
	e.calculators = append(e.calculators, c)
}

// Names returns the registered calculator names in registration order.
func (e *Engine) Names() []string {
	names := make([]string, len(e.calculators))
	for i, c := range e.calculators {
		names[i] = c.Name()
	}
	return names
}

// Run evaluates every calculator and returns the results by name. Inputs
// later in the slice replace earlier ones with the same key. Nothing is
// returned when any calculator lacks an input or fails.
func (e *Engine) Run(inputs []Param) (map[string]Modulus, error) {
	params := make(map[string]Param, len(inputs))
	for _, p := range inputs {
		params[p.Key] = p
	}

	for _, calc := range e.calculators {
		for _, key := range calc.Keys() {
			if _, ok := params[key]; !ok {
				return nil, fmt.Errorf("%w %q for %s", ErrMissingParam, key, calc.Name())
			}
		}
	}

	results := make(map[string]Modulus, len(e.calculators))
	for _, calc := range e.calculators {
		m, err := calc.Calculate(params)
		if err != nil {
			return nil, fmt.Errorf("calculating %s: %w", calc.Name(), err)
		}
		results[calc.Name()] = m
	}
	return results, nil
}
