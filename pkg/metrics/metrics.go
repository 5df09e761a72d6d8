package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	elasticStage = "elastic_stage"

	// Generation metrics
	deformationsGeneratedTotal = "deformations_generated_total"
	tasksRefinedTotal          = "tasks_refined_total"

	// Post-processing metrics
	kpointsLinksTotal = "kpoints_links_total"

	// Aggregation metrics
	reportsComputedTotal = "reports_computed_total"
	computeDuration      = "compute_duration_seconds"
	bulkModulusGauge     = "bulk_modulus_gpa"

	// Labels
	modeLabel   = "mode"
	statusLabel = "status"
)

const (
	ModeFresh  = "fresh"
	ModeRefine = "refine"

	StatusSuccess = "success"
	StatusFailure = "failure"
)

var deformationsGeneratedLabels = []string{
	modeLabel,
}

var reportsComputedLabels = []string{
	statusLabel,
}

/**
* Metrics definition
**/
var deformationsGeneratedMetric = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Subsystem: elasticStage,
		Name:      deformationsGeneratedTotal,
		Help:      "number of deformed task directories written",
	},
	deformationsGeneratedLabels,
)

var tasksRefinedMetric = prometheus.NewCounter(
	prometheus.CounterOpts{
		Subsystem: elasticStage,
		Name:      tasksRefinedTotal,
		Help:      "number of task directories relabeled from a previous run",
	},
)

var kpointsLinksMetric = prometheus.NewCounter(
	prometheus.CounterOpts{
		Subsystem: elasticStage,
		Name:      kpointsLinksTotal,
		Help:      "number of task KPOINTS files linked to the shared mesh",
	},
)

var reportsComputedMetric = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Subsystem: elasticStage,
		Name:      reportsComputedTotal,
		Help:      "number of elastic tensor fits by outcome",
	},
	reportsComputedLabels,
)

var computeDurationMetric = prometheus.NewHistogram(
	prometheus.HistogramOpts{
		Subsystem: elasticStage,
		Name:      computeDuration,
		Help:      "time spent loading task results and fitting the elastic tensor",
		Buckets:   prometheus.DefBuckets,
	},
)

var bulkModulusMetric = prometheus.NewGauge(
	prometheus.GaugeOpts{
		Subsystem: elasticStage,
		Name:      bulkModulusGauge,
		Help:      "Voigt bulk modulus of the last computed report",
	},
)

func IncreaseDeformationsGeneratedMetric(mode string, count int) {
	labels := prometheus.Labels{
		modeLabel: mode,
	}
	deformationsGeneratedMetric.With(labels).Add(float64(count))
}

func IncreaseTasksRefinedMetric(count int) {
	tasksRefinedMetric.Add(float64(count))
}

func IncreaseKpointsLinksMetric(count int) {
	kpointsLinksMetric.Add(float64(count))
}

func IncreaseReportsComputedMetric(status string) {
	labels := prometheus.Labels{
		statusLabel: status,
	}
	reportsComputedMetric.With(labels).Inc()
}

func ObserveComputeDuration(d time.Duration) {
	computeDurationMetric.Observe(d.Seconds())
}

func UpdateBulkModulusMetric(bv float64) {
	bulkModulusMetric.Set(bv)
}

func init() {
	registerMetrics()
}

func registerMetrics() {
	prometheus.MustRegister(deformationsGeneratedMetric)
	prometheus.MustRegister(tasksRefinedMetric)
	prometheus.MustRegister(kpointsLinksMetric)
	prometheus.MustRegister(reportsComputedMetric)
	prometheus.MustRegister(computeDurationMetric)
	prometheus.MustRegister(bulkModulusMetric)
}
