package property

import (
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/dptools/elastic/internal/fileio"
	"github.com/dptools/elastic/internal/vasp"
	"github.com/dptools/elastic/pkg/metrics"
)

const (
	incarFile   = "INCAR"
	kpointsFile = "KPOINTS"

	incarKspacing = "KSPACING"
	incarKgamma   = "KGAMMA"
)

// PostProcess writes one KPOINTS file in the parent of the tasks, derived
// from the first task's INCAR, and links every task to it. It does nothing
// when there are no tasks, no INCAR, or the INCAR sets no KSPACING.
func (e *Elastic) PostProcess(tasks []string) error {
	if len(tasks) == 0 {
		return nil
	}
	first, err := filepath.Abs(tasks[0])
	if err != nil {
		return err
	}
	reader := fileio.NewReader(first)
	if !reader.IsFile(incarFile) {
		e.log.Debugf("no %s in %s, keeping k-points", incarFile, first)
		return nil
	}
	incar, err := vasp.ReadIncarFile(reader.PathFor(incarFile))
	if err != nil {
		return errors.Wrap(err, "reading INCAR")
	}
	kspacing, ok, err := incar.Float(incarKspacing)
	if err != nil {
		return err
	}
	if !ok {
		e.log.Debugf("%s sets no %s, keeping k-points", reader.PathFor(incarFile), incarKspacing)
		return nil
	}
	gamma, err := incar.Bool(incarKgamma, false)
	if err != nil {
		return err
	}

	parent := filepath.Dir(first)
	structure, err := vasp.ReadPoscarFile(filepath.Join(parent, taskStructure))
	if err != nil {
		return errors.Wrap(err, "reading work directory structure")
	}
	kpoints, err := vasp.MakeKspacingKpoints(structure, [3]float64{kspacing, kspacing, kspacing}, gamma)
	if err != nil {
		return err
	}

	writer := fileio.NewWriter(parent)
	writer.RemoveIfExists(kpointsFile)
	if err := writer.WriteFile(kpointsFile, []byte(kpoints)); err != nil {
		return errors.Wrap(err, "writing KPOINTS")
	}
	for _, task := range tasks {
		task, err := filepath.Abs(task)
		if err != nil {
			return err
		}
		if err := writer.Symlink(kpointsFile, filepath.Join(task, kpointsFile)); err != nil {
			return errors.Wrapf(err, "linking KPOINTS in %s", task)
		}
	}
	metrics.IncreaseKpointsLinksMetric(len(tasks))
	e.log.Infof("linked %s to %d tasks", writer.PathFor(kpointsFile), len(tasks))
	return nil
}
