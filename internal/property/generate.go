package property

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/dptools/elastic/internal/elasticity"
	"github.com/dptools/elastic/internal/fileio"
	"github.com/dptools/elastic/internal/records"
	"github.com/dptools/elastic/internal/vasp"
	"github.com/dptools/elastic/pkg/metrics"
)

const (
	equilibriumStructure = "CONTCAR"
	taskStructure        = "POSCAR"
)

// staleInputs are cleared from a task directory before a fresh generation.
var staleInputs = []string{"INCAR", "POTCAR", "POSCAR", "conf.lmp", "in.lammps"}

// MakeConfs prepares workDir for the elastic calculation. The equilibrium
// relaxation in equiDir (or in start_confs_path when it exists) must be
// complete; nothing is written otherwise. In refine mode the task geometries
// come from an earlier run instead of the deformation set.
func (e *Elastic) MakeConfs(workDir, equiDir string, refine bool) ([]Task, error) {
	workDir, err := filepath.Abs(workDir)
	if err != nil {
		return nil, err
	}
	if p := e.config.StartConfsPath; p != "" {
		if _, err := os.Stat(p); err == nil {
			e.log.Infof("using start configurations from %s", p)
			equiDir = p
		}
	}
	equiDir, err = filepath.Abs(equiDir)
	if err != nil {
		return nil, err
	}

	equi := fileio.NewReader(equiDir)
	if err := equi.CheckPathExists(equilibriumStructure); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrNoEquilibrium, equi.PathFor(equilibriumStructure))
	}
	if err := equi.CheckPathExists(records.EquilibriumResultFile); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrNoEquilibrium, equi.PathFor(records.EquilibriumResultFile))
	}
	result, err := records.ReadResult(equi, records.EquilibriumResultFile)
	if err != nil {
		return nil, errors.Wrap(err, "reading equilibrium result")
	}
	eqStress, err := result.LastStress()
	if err != nil {
		return nil, errors.Wrap(err, "reading equilibrium stress")
	}
	structure, err := vasp.ReadPoscarFile(equi.PathFor(equilibriumStructure))
	if err != nil {
		return nil, errors.Wrap(err, "reading equilibrium structure")
	}

	normStrains := elasticity.SymmetricStrains(e.config.NormDeform)
	shearStrains := elasticity.SymmetricStrains(e.config.ShearDeform)
	e.log.Infof("gen with norm %v", normStrains)
	e.log.Infof("gen with shear %v", shearStrains)
	set, err := elasticity.NewDeformedSet(structure, normStrains, shearStrains)
	if err != nil {
		return nil, errors.Wrap(err, "building deformations")
	}

	if _, err := os.Stat(workDir); err == nil {
		e.log.Warnf("%s already exists", workDir)
	}
	writer := fileio.NewWriter(workDir)
	if err := writer.MkdirAll(""); err != nil {
		return nil, err
	}
	if err := writer.Symlink(equi.PathFor(equilibriumStructure), taskStructure); err != nil {
		return nil, errors.Wrap(err, "linking equilibrium structure")
	}
	if err := records.WriteStress(writer, records.EquilibriumStressFile, eqStress); err != nil {
		return nil, errors.Wrap(err, "writing equilibrium stress")
	}

	if refine {
		return e.refineTasks(workDir, set)
	}
	return e.freshTasks(workDir, set)
}

func (e *Elastic) freshTasks(workDir string, set *elasticity.DeformedSet) ([]Task, error) {
	writer := fileio.NewWriter(workDir)
	tasks := make([]Task, 0, set.Len())
	for i, d := range set.Deformations {
		name := fileio.TaskName(i)
		if err := writer.MkdirAll(name); err != nil {
			return nil, err
		}
		for _, f := range staleInputs {
			writer.RemoveIfExists(filepath.Join(name, f))
		}
		if err := set.Structures[i].WritePoscarFile(writer.PathFor(filepath.Join(name, taskStructure))); err != nil {
			return nil, errors.Wrapf(err, "writing %s structure", name)
		}
		if err := records.WriteStrain(writer, filepath.Join(name, records.StrainFile), elasticity.StrainFromDeformation(d)); err != nil {
			return nil, errors.Wrapf(err, "writing %s strain", name)
		}
		tasks = append(tasks, Task{Index: i, Dir: writer.PathFor(name), Deformation: d})
	}
	metrics.IncreaseDeformationsGeneratedMetric(metrics.ModeFresh, len(tasks))
	return tasks, nil
}

func (e *Elastic) refineTasks(workDir string, set *elasticity.DeformedSet) ([]Task, error) {
	if e.config.InitFromSuffix == "" || e.config.OutputSuffix == "" {
		return nil, ErrMissingRefineParams
	}
	dirs, err := e.refiner.MakeRefine(e.config.InitFromSuffix, e.config.OutputSuffix, workDir)
	if err != nil {
		return nil, errors.Wrap(err, "refining tasks")
	}
	if len(dirs) > set.Len() {
		return nil, fmt.Errorf("%w: %d > %d", ErrTooManyRefinedTasks, len(dirs), set.Len())
	}

	tasks := make([]Task, 0, len(dirs))
	for i, dir := range dirs {
		writer := fileio.NewWriter(dir)
		writer.RemoveIfExists(records.StrainFile)
		d := set.Deformations[i]
		if err := records.WriteStrain(writer, records.StrainFile, elasticity.StrainFromDeformation(d)); err != nil {
			return nil, errors.Wrapf(err, "writing %s strain", dir)
		}
		tasks = append(tasks, Task{Index: i, Dir: dir, Deformation: d})
	}
	metrics.IncreaseDeformationsGeneratedMetric(metrics.ModeRefine, len(tasks))
	metrics.IncreaseTasksRefinedMetric(len(tasks))
	return tasks, nil
}
