package app

import (
	"bedflow/domain/core"
	"bedflow/domain/diagnosis"
	"bedflow/domain/hospital"
	"bedflow/internal/baseline"
	"bedflow/internal/dataset"
	"bedflow/internal/hypothesis"
	"bedflow/internal/impact"
	"bedflow/internal/kpi"
	"bedflow/internal/window"
)

// DiagnosticService assembles the complete diagnostic bundle for one
// selection state. Pure orchestration over the derivation components:
// it holds no mutable state, so repeated builds for the same inputs
// yield identical derived values.
type DiagnosticService struct {
	index     *dataset.Index
	baselines *baseline.Calculator
	kpis      *kpi.Aggregator
	impacts   *impact.Analyzer
}

// NewDiagnosticService creates the facade over a loaded index
func NewDiagnosticService(ix *dataset.Index) *DiagnosticService {
	return &DiagnosticService{
		index:     ix,
		baselines: baseline.NewCalculator(ix),
		kpis:      kpi.NewAggregator(ix),
		impacts:   impact.NewAnalyzer(ix),
	}
}

// BuildBundle computes a fresh immutable bundle for the selection state.
// In Locator mode the bundle carries range-scoped KPIs only; in Workspace
// mode it additionally carries the window, cell findings, impact summary,
// and hypothesis. Component errors propagate unchanged.
func (s *DiagnosticService) BuildBundle(state diagnosis.SelectionState) (*diagnosis.DiagnosticBundle, error) {
	kpiSet, err := s.kpis.Aggregate(state)
	if err != nil {
		return nil, err
	}

	bundle := &diagnosis.DiagnosticBundle{
		ID:    core.NewBundleID(),
		Mode:  state.Mode(),
		State: state,
		Kpis:  kpiSet,
	}

	if state.Selection == nil {
		return bundle, nil
	}

	win := window.Resolve(s.index, state.Selection.Service, state.Selection.Week, window.DefaultRadius)
	findings, err := s.CellFindings(state)
	if err != nil {
		return nil, err
	}
	summary := s.impacts.Analyze(win)

	bundle.Window = &win
	bundle.Findings = findings
	bundle.Impact = &summary
	bundle.Hypothesis = hypothesis.Generate(*findings)
	return bundle, nil
}

// CellFindings derives the comparison values for the selected cell. It is
// only valid in Workspace mode and fails with core.ErrEmptySelection
// otherwise, so Locator-mode gaps can never read as real findings.
func (s *DiagnosticService) CellFindings(state diagnosis.SelectionState) (*diagnosis.CellFindings, error) {
	sel := state.Selection
	if sel == nil {
		return nil, core.ErrEmptySelection
	}
	rec, ok := s.index.ByServiceWeek(sel.Service, sel.Week)
	if !ok {
		return nil, core.NewRecordNotFoundError(sel.Service, sel.Week)
	}

	focus := state.Focus
	focusValue := rec.MetricValue(focus)
	focusBaseline := s.baselines.Baseline(sel.Service, focus)

	rate := rec.RefusalRate()
	rateBaseline := s.baselines.Baseline(sel.Service, hospital.MetricRefusalRate)

	sigma, label := s.baselines.PressureSeverity(rec)

	return &diagnosis.CellFindings{
		Cell:                *sel,
		Record:              rec,
		Focus:               focus,
		FocusValue:          focusValue,
		FocusBaseline:       focusBaseline,
		FocusDelta:          s.baselines.Delta(focusValue, focusBaseline),
		FocusSigma:          s.baselines.DeviationSigma(sel.Service, focus, focusValue),
		RefusalRate:         rate,
		RefusalRateBaseline: rateBaseline,
		RefusalRateDelta:    s.baselines.Delta(rate, rateBaseline),
		Severity:            label,
		SeveritySigma:       sigma,
	}, nil
}
