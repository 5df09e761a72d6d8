// Package vasp reads and writes the VASP input files the elastic stage
// touches: POSCAR/CONTCAR structures, INCAR tags and automatic KPOINTS meshes.
package vasp
