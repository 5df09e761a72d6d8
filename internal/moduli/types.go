package moduli

// Calculator derives one scalar property (e.g. "bulk modulus", "Poisson ratio") from the inputs.
type Calculator interface {
	// Name returns the short name of this calculator, used as the key in Engine results.
	Name() string
	// Keys returns the list of Param keys this calculator depends on.
	Keys() []string
	// Calculate runs the calculation using the provided params and returns a Modulus or an error.
	Calculate(params map[string]Param) (Modulus, error)
}

// Param represents an input for a Calculator
type Param struct {
	Key   string      // Unique identifier (e.g., "elastic_tensor")
	Value interface{} // The actual value
}

// Modulus the result of a Calculator calculation
type Modulus struct {
	Value float64
	// Unit is empty for dimensionless quantities.
	Unit string
	// Reason is set only when Value is a fallback for a degenerate input.
	Reason string
}
