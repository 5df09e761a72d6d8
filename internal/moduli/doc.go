// Package moduli defines a pluggable calculator engine for the isotropic
// moduli derived from an elastic tensor.
//
// Each modulus is encapsulated in one specific Calculator, and calculation results are aggregated by the Engine.
package moduli
