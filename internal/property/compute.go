package property

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/pkg/errors"

	"github.com/dptools/elastic/internal/elasticity"
	"github.com/dptools/elastic/internal/fileio"
	"github.com/dptools/elastic/internal/moduli"
	"github.com/dptools/elastic/internal/moduli/calculators"
	"github.com/dptools/elastic/internal/records"
	"github.com/dptools/elastic/pkg/metrics"
)

const (
	// StressScale converts driver stresses (kBar, compression positive) to
	// the sign and magnitude the fit expects.
	StressScale = -1000.0
	// TensorScale converts the fitted tensor to GPa.
	TensorScale = 1e-4
)

// Compute fits the elastic tensor from the finished tasks and writes the
// report as JSON to outputFile. The results argument is accepted for
// interface compatibility and ignored; each task's own result file is read.
// It returns the report and its printable form.
func (e *Elastic) Compute(outputFile string, tasks []string, results []string) (report *Report, text string, err error) {
	start := time.Now()
	defer func() {
		if err != nil {
			metrics.IncreaseReportsComputedMetric(metrics.StatusFailure)
			return
		}
		metrics.IncreaseReportsComputedMetric(metrics.StatusSuccess)
		metrics.ObserveComputeDuration(time.Since(start))
		metrics.UpdateBulkModulusMetric(report.BV)
	}()

	if len(tasks) == 0 {
		return nil, "", ErrNoTasks
	}
	outputFile, err = filepath.Abs(outputFile)
	if err != nil {
		return nil, "", err
	}
	workDir := filepath.Dir(outputFile)

	eqStress, err := records.ReadStress(fileio.NewReader(workDir), records.EquilibriumStressFile)
	if err != nil {
		return nil, "", errors.Wrap(err, "reading equilibrium stress")
	}

	strains := make([]elasticity.Strain, 0, len(tasks))
	stresses := make([]elasticity.Stress, 0, len(tasks))
	for _, task := range tasks {
		reader := fileio.NewReader(task)
		strain, err := records.ReadStrain(reader, records.StrainFile)
		if err != nil {
			return nil, "", errors.Wrapf(err, "reading strain of %s", task)
		}
		result, err := records.ReadResult(reader, records.TaskResultFile)
		if err != nil {
			return nil, "", errors.Wrapf(err, "reading result of %s", task)
		}
		stress, err := result.LastStress()
		if err != nil {
			return nil, "", errors.Wrapf(err, "reading stress of %s", task)
		}
		strains = append(strains, strain)
		stresses = append(stresses, stress.Scale(StressScale))
	}

	fitted, err := elasticity.FromIndependentStrains(strains, stresses, eqStress.Scale(StressScale))
	if err != nil {
		return nil, "", errors.Wrap(err, "fitting elastic tensor")
	}
	tensor := fitted.Scale(TensorScale)

	mods, err := calculators.NewVoigtEngine().Run([]moduli.Param{
		{Key: calculators.ParamElasticTensor, Value: tensor},
	})
	if err != nil {
		return nil, "", errors.Wrap(err, "computing moduli")
	}

	report = &Report{
		ElasticTensor: tensor.Flatten(),
		BV:            mods[calculators.NameBulkModulus].Value,
		GV:            mods[calculators.NameShearModulus].Value,
		EV:            mods[calculators.NameYoungsModulus].Value,
		UV:            mods[calculators.NamePoissonRatio].Value,
	}
	if err := fileio.NewWriter(workDir).WriteJSON(outputFile, report); err != nil {
		return nil, "", fmt.Errorf("failed to write %s: %w", outputFile, err)
	}
	e.log.Infof("wrote elastic report to %s", outputFile)

	return report, report.Format(workDir), nil
}
