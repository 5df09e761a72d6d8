package property

import "github.com/dptools/elastic/internal/elasticity"

// Property is one property stage driven by the pipeline orchestrator.
type Property interface {
	// TaskType returns the type tag of the parameters.
	TaskType() string
	// TaskParam returns the resolved parameter mapping.
	TaskParam() map[string]interface{}
	// MakeConfs writes the task directories below workDir.
	MakeConfs(workDir, equiDir string, refine bool) ([]Task, error)
	// PostProcess finalizes the task inputs once the driver wrote them.
	PostProcess(tasks []string) error
	// Compute aggregates the finished tasks into a report and its printable form.
	Compute(outputFile string, tasks []string, results []string) (*Report, string, error)
}

// Task pairs a task directory with the deformation it was generated from.
type Task struct {
	Index       int
	Dir         string
	Deformation elasticity.Deformation
}

// TaskDirs returns the directories of tasks in order.
func TaskDirs(tasks []Task) []string {
	dirs := make([]string, len(tasks))
	for i, t := range tasks {
		dirs[i] = t.Dir
	}
	return dirs
}
