package cli

import (
	"fmt"

	"github.com/dptools/elastic/internal/fileio"
	"github.com/dptools/elastic/internal/property"
)

// newElastic loads the parameter file and resolves it.
func newElastic(paramFile string) (*property.Elastic, error) {
	params, err := property.LoadParams(paramFile)
	if err != nil {
		return nil, err
	}
	return property.NewElastic(params)
}

// taskDirs lists the task directories of workDir and fails when there are none.
func taskDirs(workDir string) ([]string, error) {
	tasks, err := fileio.TaskDirs(workDir)
	if err != nil {
		return nil, fmt.Errorf("listing tasks: %w", err)
	}
	if len(tasks) == 0 {
		return nil, fmt.Errorf("no task directories in %s", workDir)
	}
	return tasks, nil
}
