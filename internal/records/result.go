package records

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/dptools/elastic/internal/elasticity"
	"github.com/dptools/elastic/internal/fileio"
)

const (
	// StrainFile holds the strain applied to a task.
	StrainFile = "strain.json"
	// TaskResultFile is written by the simulation driver in each task.
	TaskResultFile = "result_task.json"
	// EquilibriumResultFile is the relaxation result in the equilibrium directory.
	EquilibriumResultFile = "result.json"
	// EquilibriumStressFile keeps the equilibrium stress next to the tasks.
	EquilibriumStressFile = "equi.stress.json"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Result is the part of a driver result the elastic stage reads. Other
// keys in the file are ignored.
type Result struct {
	Stress Frames `json:"stress" validate:"required,min=1,dive,len=3,dive,len=3"`
}

// LastStress returns the stress of the final recorded step.
func (r *Result) LastStress() (elasticity.Stress, error) {
	m, err := r.Stress.Last()
	return elasticity.Stress(m), err
}

// ReadResult loads and validates a driver result file.
func ReadResult(reader *fileio.Reader, path string) (*Result, error) {
	var r Result
	if err := reader.ReadJSON(path, &r); err != nil {
		return nil, err
	}
	if err := validate.Struct(&r); err != nil {
		return nil, fmt.Errorf("%w %s: %v", ErrInvalidResult, reader.PathFor(path), err)
	}
	return &r, nil
}

// ReadStrain loads a strain record.
func ReadStrain(reader *fileio.Reader, path string) (elasticity.Strain, error) {
	data, err := reader.ReadFile(path)
	if err != nil {
		return elasticity.Strain{}, err
	}
	m, err := DecodeMatrix3(data)
	if err != nil {
		return elasticity.Strain{}, fmt.Errorf("decoding %s: %w", reader.PathFor(path), err)
	}
	return elasticity.Strain(m), nil
}

// WriteStrain stores e as a strain record.
func WriteStrain(writer *fileio.Writer, path string, e elasticity.Strain) error {
	return writer.WriteJSON(path, NewStrainRecord(e))
}

// ReadStress loads a stress stored as a plain or wrapped 3x3 array.
func ReadStress(reader *fileio.Reader, path string) (elasticity.Stress, error) {
	data, err := reader.ReadFile(path)
	if err != nil {
		return elasticity.Stress{}, err
	}
	m, err := DecodeMatrix3(data)
	if err != nil {
		return elasticity.Stress{}, fmt.Errorf("decoding %s: %w", reader.PathFor(path), err)
	}
	return elasticity.Stress(m), nil
}

// WriteStress stores s as a numpy array.
func WriteStress(writer *fileio.Writer, path string, s elasticity.Stress) error {
	return writer.WriteJSON(path, NewNumpyArray(matrixRows(elasticity.Matrix3(s))))
}
