// Package property implements the elastic property stage: it resolves the
// stage parameters, writes one task directory per deformation of the
// equilibrium structure, shares a k-point mesh between the tasks and, once
// the external jobs have finished, fits the elastic tensor from the task
// stresses.
//
// Every operation works on absolute paths; the process working directory is
// never changed.
package property
