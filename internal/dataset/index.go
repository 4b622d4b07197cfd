// Package dataset holds the immutable in-memory index of weekly service
// records. Loading validates every record and the cross-record uniqueness
// invariant; after Load the index is read-only and safe to share without
// synchronization.
package dataset

import (
	"sort"

	"bedflow/domain/core"
	"bedflow/domain/hospital"
)

type key struct {
	service string
	week    int
}

// Index is the validated, normalized record store keyed by (service, week)
type Index struct {
	byKey     map[key]hospital.Record
	byService map[string][]hospital.Record // ascending by week
	services  []string                     // sorted
	minWeek   int
	maxWeek   int
}

// Load validates and indexes raw records. It fails with core.ErrValidation
// on any invalid record, duplicate (service, week) key, or empty input.
func Load(records []hospital.Record) (*Index, error) {
	if len(records) == 0 {
		return nil, core.NewValidationError("records", "dataset is empty")
	}

	ix := &Index{
		byKey:     make(map[key]hospital.Record, len(records)),
		byService: make(map[string][]hospital.Record),
		minWeek:   hospital.MaxWeek,
		maxWeek:   hospital.MinWeek,
	}

	for _, r := range records {
		if err := r.Validate(); err != nil {
			return nil, err
		}
		k := key{service: r.Service, week: r.Week}
		if _, exists := ix.byKey[k]; exists {
			return nil, core.NewRecordValidationError(r.Service, r.Week, "duplicate (service, week) key")
		}
		ix.byKey[k] = r
		ix.byService[r.Service] = append(ix.byService[r.Service], r)
		if r.Week < ix.minWeek {
			ix.minWeek = r.Week
		}
		if r.Week > ix.maxWeek {
			ix.maxWeek = r.Week
		}
	}

	for svc, recs := range ix.byService {
		sort.Slice(recs, func(i, j int) bool { return recs[i].Week < recs[j].Week })
		ix.byService[svc] = recs
		ix.services = append(ix.services, svc)
	}
	sort.Strings(ix.services)

	return ix, nil
}

// ByServiceWeek returns the record for (service, week) if present
func (ix *Index) ByServiceWeek(service string, week int) (hospital.Record, bool) {
	r, ok := ix.byKey[key{service: service, week: week}]
	return r, ok
}

// Range returns the service's records with week in [lo, hi], ascending by week
func (ix *Index) Range(service string, lo, hi int) []hospital.Record {
	var out []hospital.Record
	for _, r := range ix.byService[service] {
		if r.Week < lo {
			continue
		}
		if r.Week > hi {
			break
		}
		out = append(out, r)
	}
	return out
}

// RangeAll returns every service's records with week in [lo, hi],
// grouped by service in sorted order, weeks ascending within a service.
func (ix *Index) RangeAll(lo, hi int) []hospital.Record {
	var out []hospital.Record
	for _, svc := range ix.services {
		out = append(out, ix.Range(svc, lo, hi)...)
	}
	return out
}

// History returns a service's full record history, ascending by week
func (ix *Index) History(service string) []hospital.Record {
	return ix.byService[service]
}

// MetricHistory extracts a service's full-history values for one metric
func (ix *Index) MetricHistory(service string, m hospital.Metric) []float64 {
	recs := ix.byService[service]
	out := make([]float64, len(recs))
	for i, r := range recs {
		out[i] = r.MetricValue(m)
	}
	return out
}

// Services returns the sorted set of service identifiers
func (ix *Index) Services() []string {
	out := make([]string, len(ix.services))
	copy(out, ix.services)
	return out
}

// HasService reports whether the service appears in the dataset
func (ix *Index) HasService(service string) bool {
	_, ok := ix.byService[service]
	return ok
}

// WeekBounds returns the (min, max) weeks present across all services
func (ix *Index) WeekBounds() (int, int) {
	return ix.minWeek, ix.maxWeek
}

// Len returns the number of indexed records
func (ix *Index) Len() int {
	return len(ix.byKey)
}
