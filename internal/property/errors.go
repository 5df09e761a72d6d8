package property

import "errors"

var (
	ErrNilParameters       = errors.New("parameters must not be nil")
	ErrInvalidParameter    = errors.New("invalid parameter")
	ErrNoEquilibrium       = errors.New("please do relaxation first")
	ErrMissingRefineParams = errors.New("refine needs init_from_suffix and output_suffix")
	ErrTooManyRefinedTasks = errors.New("refined tasks outnumber the deformations")
	ErrNoTasks             = errors.New("no tasks to compute")
)
