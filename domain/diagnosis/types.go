package diagnosis

import (
	"bedflow/domain/core"
	"bedflow/domain/hospital"
)

// Mode is the engine's interaction mode. It is always derived from
// selection presence, never stored separately.
type Mode string

const (
	// ModeLocator: no cell selected, views aggregate across services
	ModeLocator Mode = "locator"
	// ModeWorkspace: one (service, week) cell selected for diagnosis
	ModeWorkspace Mode = "workspace"
)

// CellRef identifies one selectable (service, week) cell
type CellRef struct {
	Service string `json:"service"`
	Week    int    `json:"week"`
}

// WeekRange is an inclusive [Lo, Hi] week interval
type WeekRange struct {
	Lo int `json:"lo"`
	Hi int `json:"hi"`
}

// Contains reports whether week falls inside the range
func (wr WeekRange) Contains(week int) bool {
	return week >= wr.Lo && week <= wr.Hi
}

// ServiceFilterAll means no service filter is applied
const ServiceFilterAll = ""

// SelectionState is the complete, versioned selection value. Transitions
// replace the whole state atomically; there are no partial updates.
type SelectionState struct {
	Selection     *CellRef             `json:"selection,omitempty"`
	WeekRange     WeekRange            `json:"week_range"`
	Focus         hospital.Metric      `json:"focus"`
	VisibleEvents []hospital.EventType `json:"visible_events"`
	ShowBaseline  bool                 `json:"show_baseline"`
	ServiceFilter string               `json:"service_filter,omitempty"`
	Version       int                  `json:"version"`
}

// Mode derives the interaction mode from selection presence
func (s SelectionState) Mode() Mode {
	if s.Selection != nil {
		return ModeWorkspace
	}
	return ModeLocator
}

// WindowedSlice is the ±radius-week slice around a selected week,
// clamped to dataset bounds.
type WindowedSlice struct {
	Service     string            `json:"service"`
	Center      int               `json:"center"`
	Lo          int               `json:"lo"`
	Hi          int               `json:"hi"`
	TruncatedLo bool              `json:"truncated_lo"`
	TruncatedHi bool              `json:"truncated_hi"`
	Records     []hospital.Record `json:"records"`
}

// KpiScope marks which aggregation scope produced a KPI set
type KpiScope string

const (
	// ScopeRange: all services within the selected week range
	ScopeRange KpiScope = "range"
	// ScopeCell: the single selected (service, week) record
	ScopeCell KpiScope = "cell"
)

// KpiValue is one headline metric with its comparison baseline
type KpiValue struct {
	Value    float64 `json:"value"`
	Baseline float64 `json:"baseline"`
	Delta    float64 `json:"delta"`
}

// KpiSet holds the four headline metrics. Counts are sums, rates are
// means; the scope decides cell vs aggregate semantics and is never mixed.
type KpiSet struct {
	Scope          KpiScope `json:"scope"`
	TotalRequests  KpiValue `json:"total_requests"`
	TotalRefusals  KpiValue `json:"total_refusals"`
	RefusalRate    KpiValue `json:"refusal_rate"`
	BedUtilization KpiValue `json:"bed_utilization"`
}

// CellFindings holds the derived comparison values for the selected cell
type CellFindings struct {
	Cell   CellRef         `json:"cell"`
	Record hospital.Record `json:"record"`

	Focus         hospital.Metric `json:"focus"`
	FocusValue    float64         `json:"focus_value"`
	FocusBaseline float64         `json:"focus_baseline"`
	FocusDelta    float64         `json:"focus_delta"`
	FocusSigma    float64         `json:"focus_sigma"`

	RefusalRate         float64 `json:"refusal_rate"`
	RefusalRateBaseline float64 `json:"refusal_rate_baseline"`
	RefusalRateDelta    float64 `json:"refusal_rate_delta"`

	// Severity is the signed larger-magnitude sigma of the two pressure
	// axes (bed utilization, staffing pressure), e.g. "+2.3σ".
	Severity      string  `json:"severity"`
	SeveritySigma float64 `json:"severity_sigma"`
}

// ImpactSummary captures consequences around the selected week: morale
// and satisfaction before vs after, and the full-history correlation
// between the service's refusal rate and staff morale.
type ImpactSummary struct {
	WeeksBefore int `json:"weeks_before"`
	WeeksAfter  int `json:"weeks_after"`

	MoraleBefore float64 `json:"morale_before"`
	MoraleAfter  float64 `json:"morale_after"`
	MoraleShift  float64 `json:"morale_shift"`

	SatisfactionBefore float64 `json:"satisfaction_before"`
	SatisfactionAfter  float64 `json:"satisfaction_after"`
	SatisfactionShift  float64 `json:"satisfaction_shift"`

	RefusalMoraleCorrelation float64 `json:"refusal_morale_correlation"`
}

// DiagnosticBundle is the immutable snapshot of everything the views need
// for one (dataset, selection) pair. A new selection produces a new bundle.
type DiagnosticBundle struct {
	ID    core.BundleID  `json:"id"`
	Mode  Mode           `json:"mode"`
	State SelectionState `json:"state"`

	Kpis KpiSet `json:"kpis"`

	// Workspace-mode only; nil in Locator mode
	Window     *WindowedSlice `json:"window,omitempty"`
	Findings   *CellFindings  `json:"findings,omitempty"`
	Impact     *ImpactSummary `json:"impact,omitempty"`
	Hypothesis string         `json:"hypothesis,omitempty"`
}
