// Package records defines the JSON files exchanged with the simulation
// driver: strain records, numpy-encoded stress arrays and task results.
//
// Arrays are accepted either as plain nested lists or wrapped the way the
// Python tooling serializes them ({"@module": "numpy", "@class": "array",
// "data": ...} or a tensor object carrying "input_array"). Files written
// here always use the wrapped form so both sides can read them.
package records
