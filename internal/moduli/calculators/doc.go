// Package calculators provides concrete Calculator implementations for the moduli engine.
//
// Each calculator derives one Voigt-averaged isotropic property (bulk, shear
// and Young's modulus, Poisson ratio) from an elastic tensor expressed in GPa.
// Calculators are designed to be composed via the moduli.Engine and accept
// input through moduli.Param slices.
package calculators
