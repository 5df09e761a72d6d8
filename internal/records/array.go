package records

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/dptools/elastic/internal/elasticity"
)

const (
	numpyModule  = "numpy"
	numpyClass   = "array"
	numpyDtype   = "float64"
	strainModule = "pymatgen.analysis.elasticity.strain"
	strainClass  = "Strain"
)

// NumpyArray is the wrapped representation of a numpy array.
type NumpyArray struct {
	Module string      `json:"@module"`
	Class  string      `json:"@class"`
	Dtype  string      `json:"dtype"`
	Data   interface{} `json:"data"`
}

// NewNumpyArray wraps data as a float64 numpy array.
func NewNumpyArray(data interface{}) NumpyArray {
	return NumpyArray{Module: numpyModule, Class: numpyClass, Dtype: numpyDtype, Data: data}
}

// StrainRecord is the serialized form of a strain tensor.
type StrainRecord struct {
	Module     string      `json:"@module"`
	Class      string      `json:"@class"`
	InputArray [][]float64 `json:"input_array"`
}

// NewStrainRecord wraps e.
func NewStrainRecord(e elasticity.Strain) StrainRecord {
	return StrainRecord{Module: strainModule, Class: strainClass, InputArray: matrixRows(elasticity.Matrix3(e))}
}

type wrappedArray struct {
	Module     string          `json:"@module"`
	Class      string          `json:"@class"`
	Data       json.RawMessage `json:"data"`
	InputArray json.RawMessage `json:"input_array"`
}

// DecodeArray unmarshals a plain or wrapped array into out.
func DecodeArray(data []byte, out interface{}) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return ErrUnsupportedEncoding
	}
	switch data[0] {
	case '[':
		return json.Unmarshal(data, out)
	case '{':
		var w wrappedArray
		if err := json.Unmarshal(data, &w); err != nil {
			return err
		}
		switch {
		case len(w.Data) > 0:
			return json.Unmarshal(w.Data, out)
		case len(w.InputArray) > 0:
			return json.Unmarshal(w.InputArray, out)
		default:
			return fmt.Errorf("%w: object %s/%s carries no array", ErrUnsupportedEncoding, w.Module, w.Class)
		}
	default:
		return ErrUnsupportedEncoding
	}
}

// DecodeMatrix3 unmarshals a plain or wrapped 3x3 array.
func DecodeMatrix3(data []byte) (elasticity.Matrix3, error) {
	var rows [][]float64
	if err := DecodeArray(data, &rows); err != nil {
		return elasticity.Matrix3{}, err
	}
	return toMatrix3(rows)
}

// Frames is a sequence of 3x3 tensors, one per recorded step.
type Frames [][][]float64

// UnmarshalJSON accepts plain and wrapped arrays.
func (f *Frames) UnmarshalJSON(data []byte) error {
	var rows [][][]float64
	if err := DecodeArray(data, &rows); err != nil {
		return err
	}
	*f = rows
	return nil
}

// Last returns the final frame.
func (f Frames) Last() (elasticity.Matrix3, error) {
	if len(f) == 0 {
		return elasticity.Matrix3{}, fmt.Errorf("%w: no frames", ErrInvalidResult)
	}
	return toMatrix3(f[len(f)-1])
}

func toMatrix3(rows [][]float64) (elasticity.Matrix3, error) {
	var m elasticity.Matrix3
	if len(rows) != 3 {
		return m, fmt.Errorf("%w: %d rows", ErrNotMatrix3, len(rows))
	}
	for i, row := range rows {
		if len(row) != 3 {
			return m, fmt.Errorf("%w: row %d has %d columns", ErrNotMatrix3, i, len(row))
		}
		copy(m[i][:], row)
	}
	return m, nil
}

func matrixRows(m elasticity.Matrix3) [][]float64 {
	rows := make([][]float64, 3)
	for i := range m {
		rows[i] = []float64{m[i][0], m[i][1], m[i][2]}
	}
	return rows
}
