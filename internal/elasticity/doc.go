// Package elasticity implements the linear-elasticity algebra behind the
// elastic stage: strain, stress and deformation tensors, the deformed
// structure set and the independent-strain fit of the 6x6 elastic tensor.
//
// Voigt components are ordered xx, yy, zz, yz, xz, xy. Strain Voigt vectors
// use engineering shear (off-diagonal terms doubled); stress and elastic
// tensor Voigt forms are unscaled.
package elasticity
