// Package baseline computes per-service historical averages and
// standard-deviation scores used as comparison references everywhere in
// the diagnostic views.
package baseline

import (
	"fmt"
	"math"

	"bedflow/domain/hospital"
	"bedflow/internal/dataset"

	"github.com/montanaflynn/stats"
)

// Calculator derives baselines and deviations from a service's full
// history. The baseline is always the global per-service average, never
// window-limited.
type Calculator struct {
	index *dataset.Index
}

// NewCalculator creates a calculator over the loaded index
func NewCalculator(ix *dataset.Index) *Calculator {
	return &Calculator{index: ix}
}

// Baseline is the arithmetic mean of the metric over all weeks present
// for the service. Unknown services yield 0.
func (c *Calculator) Baseline(service string, m hospital.Metric) float64 {
	hist := c.index.MetricHistory(service, m)
	if len(hist) == 0 {
		return 0
	}
	mean, err := stats.Mean(hist)
	if err != nil {
		return 0
	}
	return mean
}

// Delta is the signed difference of a value from its baseline
func (c *Calculator) Delta(value, baseline float64) float64 {
	return value - baseline
}

// DeviationSigma scores a value in sample standard deviations from the
// service's full-history mean. A flat history carries no signal, so zero
// variance (or fewer than two points) scores exactly 0.
func (c *Calculator) DeviationSigma(service string, m hospital.Metric, value float64) float64 {
	hist := c.index.MetricHistory(service, m)
	if len(hist) < 2 || flat(hist) {
		return 0
	}
	mean, err := stats.Mean(hist)
	if err != nil {
		return 0
	}
	sd, err := stats.StandardDeviationSample(hist)
	if err != nil || sd == 0 {
		return 0
	}
	return (value - mean) / sd
}

// flat reports whether every point equals the first. The computed stddev
// of a constant series carries floating-point residue, so zero variance
// must be detected on the raw values, not on sd == 0.
func flat(values []float64) bool {
	for _, v := range values[1:] {
		if v != values[0] {
			return false
		}
	}
	return true
}

// PressureSeverity scores the selected record on both pressure axes
// (bed utilization and staffing pressure) and returns the signed sigma
// with the larger absolute magnitude, plus its display label.
func (c *Calculator) PressureSeverity(rec hospital.Record) (float64, string) {
	util := c.DeviationSigma(rec.Service, hospital.MetricBedSaturation, rec.Utilization)
	pressure := c.DeviationSigma(rec.Service, hospital.MetricStaffingPressure, rec.PatientsPerStaff())

	sigma := util
	if math.Abs(pressure) > math.Abs(util) {
		sigma = pressure
	}
	return sigma, FormatSigma(sigma)
}

// FormatSigma renders a signed sigma score for display, e.g. "+2.3σ"
func FormatSigma(v float64) string {
	return fmt.Sprintf("%+.1fσ", v)
}
