// Package impact validates consequences of an operational failure: staff
// morale and patient satisfaction before vs after the selected week, and
// how tightly a service's refusals track its morale over the full history.
package impact

import (
	"bedflow/domain/diagnosis"
	"bedflow/domain/hospital"
	"bedflow/internal/dataset"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat"
)

// Analyzer derives impact summaries from the loaded index
type Analyzer struct {
	index *dataset.Index
}

// NewAnalyzer creates an analyzer over the loaded index
func NewAnalyzer(ix *dataset.Index) *Analyzer {
	return &Analyzer{index: ix}
}

// Analyze splits the window at the center week (weeks strictly before vs
// strictly after) and compares mean morale and satisfaction across the
// split. The refusal-morale correlation uses the service's full history.
func (a *Analyzer) Analyze(win diagnosis.WindowedSlice) diagnosis.ImpactSummary {
	var before, after []hospital.Record
	for _, r := range win.Records {
		switch {
		case r.Week < win.Center:
			before = append(before, r)
		case r.Week > win.Center:
			after = append(after, r)
		}
	}

	moraleBefore := meanField(before, func(r hospital.Record) float64 { return r.Morale })
	moraleAfter := meanField(after, func(r hospital.Record) float64 { return r.Morale })
	satBefore := meanField(before, func(r hospital.Record) float64 { return r.Satisfaction })
	satAfter := meanField(after, func(r hospital.Record) float64 { return r.Satisfaction })

	return diagnosis.ImpactSummary{
		WeeksBefore:              len(before),
		WeeksAfter:               len(after),
		MoraleBefore:             moraleBefore,
		MoraleAfter:              moraleAfter,
		MoraleShift:              moraleAfter - moraleBefore,
		SatisfactionBefore:       satBefore,
		SatisfactionAfter:        satAfter,
		SatisfactionShift:        satAfter - satBefore,
		RefusalMoraleCorrelation: a.refusalMoraleCorrelation(win.Service),
	}
}

// refusalMoraleCorrelation is the Pearson correlation between weekly
// refusal rate and morale over the service's full history; 0 when the
// history is too short or either series has no variance.
func (a *Analyzer) refusalMoraleCorrelation(service string) float64 {
	hist := a.index.History(service)
	if len(hist) < 2 {
		return 0
	}

	rates := make([]float64, len(hist))
	morale := make([]float64, len(hist))
	for i, r := range hist {
		rates[i] = r.RefusalRate()
		morale[i] = r.Morale
	}
	if flat(rates) || flat(morale) {
		return 0
	}
	return stat.Correlation(rates, morale, nil)
}

func meanField(records []hospital.Record, f func(hospital.Record) float64) float64 {
	if len(records) == 0 {
		return 0
	}
	values := make([]float64, len(records))
	for i, r := range records {
		values[i] = f(r)
	}
	mean, err := stats.Mean(values)
	if err != nil {
		return 0
	}
	return mean
}

func flat(values []float64) bool {
	for _, v := range values[1:] {
		if v != values[0] {
			return false
		}
	}
	return true
}
