// Package refine relabels the task directories of an earlier run so a new
// calculation can start from its relaxed geometries.
package refine

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/dptools/elastic/internal/fileio"
)

var (
	ErrNoSourceDir  = errors.New("the initial directory does not exist for refine")
	ErrNoSourceTask = errors.New("the initial task directory does not exist for refine")
	ErrBadSuffix    = errors.New("output suffix not found in work directory")
)

// staleInputs are removed from a relabeled task before linking.
var staleInputs = []string{"INCAR", "POTCAR", "POSCAR.orig", "POSCAR", "conf.lmp", "in.lammps"}

// Refiner creates the task directories of workDir from the run labeled
// initFromSuffix and returns them in index order.
type Refiner interface {
	MakeRefine(initFromSuffix, outputSuffix, workDir string) ([]string, error)
}

// FileRefiner links every task's POSCAR to the CONTCAR of the matching task
// of the source run.
type FileRefiner struct{}

func NewFileRefiner() *FileRefiner {
	return &FileRefiner{}
}

// SourceDir returns workDir with the last occurrence of outputSuffix
// replaced by initFromSuffix.
func SourceDir(initFromSuffix, outputSuffix, workDir string) (string, error) {
	if outputSuffix == "" {
		return "", fmt.Errorf("%w: empty suffix", ErrBadSuffix)
	}
	i := strings.LastIndex(workDir, outputSuffix)
	if i < 0 {
		return "", fmt.Errorf("%w: %q in %q", ErrBadSuffix, outputSuffix, workDir)
	}
	return workDir[:i] + initFromSuffix + workDir[i+len(outputSuffix):], nil
}

func (r *FileRefiner) MakeRefine(initFromSuffix, outputSuffix, workDir string) ([]string, error) {
	workDir, err := filepath.Abs(workDir)
	if err != nil {
		return nil, err
	}
	initFrom, err := SourceDir(initFromSuffix, outputSuffix, workDir)
	if err != nil {
		return nil, err
	}
	if _, err := os.Stat(initFrom); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrNoSourceDir, initFrom)
	}

	sources, err := fileio.TaskDirs(initFrom)
	if err != nil {
		return nil, err
	}
	zap.S().Named("refine").Infof("refining %d tasks from %s", len(sources), initFrom)

	writer := fileio.NewWriter(workDir)
	tasks := make([]string, 0, len(sources))
	for ii := range sources {
		name := fileio.TaskName(ii)
		// the source run may have gaps; the index must match by name
		source := filepath.Join(initFrom, name)
		if _, err := os.Stat(source); err != nil {
			return nil, fmt.Errorf("%w: %s", ErrNoSourceTask, source)
		}
		contcar := filepath.Join(source, "CONTCAR")
		if _, err := os.Stat(contcar); err != nil {
			return nil, fmt.Errorf("%w: %s has no CONTCAR", ErrNoSourceTask, source)
		}

		if err := writer.MkdirAll(name); err != nil {
			return nil, err
		}
		for _, f := range staleInputs {
			writer.RemoveIfExists(filepath.Join(name, f))
		}
		if err := writer.Symlink(contcar, filepath.Join(name, "POSCAR")); err != nil {
			return nil, err
		}
		tasks = append(tasks, filepath.Join(workDir, name))
	}
	return tasks, nil
}
