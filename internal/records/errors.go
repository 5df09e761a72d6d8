package records

import "errors"

var (
	ErrUnsupportedEncoding = errors.New("unsupported array encoding")
	ErrNotMatrix3          = errors.New("array is not 3x3")
	ErrInvalidResult       = errors.New("invalid result record")
)
