// Package kpi computes the four headline metrics. The aggregation scope
// follows the selection mode: all services in the week range in Locator
// mode, the single selected cell in Workspace mode. Cell-level and
// aggregate-level semantics are never mixed inside one set.
package kpi

import (
	"bedflow/domain/core"
	"bedflow/domain/diagnosis"
	"bedflow/domain/hospital"
	"bedflow/internal/dataset"

	"github.com/montanaflynn/stats"
)

// Aggregator derives KPI sets against the loaded index
type Aggregator struct {
	index *dataset.Index
}

// NewAggregator creates an aggregator over the loaded index
func NewAggregator(ix *dataset.Index) *Aggregator {
	return &Aggregator{index: ix}
}

// Aggregate computes the KPI set for the current selection state.
//
// Locator mode: counts are summed and rates averaged over every record in
// the week range (respecting the service filter); the baseline is the same
// metric over the entire dataset, the global average.
//
// Workspace mode: each metric is the selected record's own value; the
// baseline is the metric's mean over all weeks of the selected service.
func (a *Aggregator) Aggregate(state diagnosis.SelectionState) (diagnosis.KpiSet, error) {
	if sel := state.Selection; sel != nil {
		return a.aggregateCell(*sel)
	}
	return a.aggregateRange(state.WeekRange, state.ServiceFilter), nil
}

func (a *Aggregator) aggregateRange(wr diagnosis.WeekRange, filter string) diagnosis.KpiSet {
	scoped := a.recordsIn(wr.Lo, wr.Hi, filter)
	min, max := a.index.WeekBounds()
	global := a.recordsIn(min, max, filter)

	return diagnosis.KpiSet{
		Scope:          diagnosis.ScopeRange,
		TotalRequests:  kpiValue(sumOf(scoped, requests), sumOf(global, requests)),
		TotalRefusals:  kpiValue(sumOf(scoped, refusals), sumOf(global, refusals)),
		RefusalRate:    kpiValue(meanOf(scoped, refusalRate), meanOf(global, refusalRate)),
		BedUtilization: kpiValue(meanOf(scoped, utilization), meanOf(global, utilization)),
	}
}

func (a *Aggregator) aggregateCell(sel diagnosis.CellRef) (diagnosis.KpiSet, error) {
	rec, ok := a.index.ByServiceWeek(sel.Service, sel.Week)
	if !ok {
		return diagnosis.KpiSet{}, core.NewRecordNotFoundError(sel.Service, sel.Week)
	}
	hist := a.index.History(sel.Service)

	return diagnosis.KpiSet{
		Scope:          diagnosis.ScopeCell,
		TotalRequests:  kpiValue(requests(rec), meanOf(hist, requests)),
		TotalRefusals:  kpiValue(refusals(rec), meanOf(hist, refusals)),
		RefusalRate:    kpiValue(refusalRate(rec), meanOf(hist, refusalRate)),
		BedUtilization: kpiValue(utilization(rec), meanOf(hist, utilization)),
	}, nil
}

// recordsIn collects records in [lo, hi], optionally for one service
func (a *Aggregator) recordsIn(lo, hi int, filter string) []hospital.Record {
	if filter != diagnosis.ServiceFilterAll {
		return a.index.Range(filter, lo, hi)
	}
	return a.index.RangeAll(lo, hi)
}

func kpiValue(value, baseline float64) diagnosis.KpiValue {
	return diagnosis.KpiValue{Value: value, Baseline: baseline, Delta: value - baseline}
}

func requests(r hospital.Record) float64    { return float64(r.Requests) }
func refusals(r hospital.Record) float64    { return float64(r.Refused) }
func refusalRate(r hospital.Record) float64 { return r.RefusalRate() }
func utilization(r hospital.Record) float64 { return r.Utilization }

func sumOf(records []hospital.Record, f func(hospital.Record) float64) float64 {
	var total float64
	for _, r := range records {
		total += f(r)
	}
	return total
}

func meanOf(records []hospital.Record, f func(hospital.Record) float64) float64 {
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
