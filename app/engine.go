package app

import (
	"bedflow/domain/diagnosis"
	"bedflow/domain/hospital"
	"bedflow/internal/dataset"
	"bedflow/internal/selection"
)

// CommandResult pairs the selection state after a command with the
// diagnostic bundle rebuilt for it.
type CommandResult struct {
	State  diagnosis.SelectionState    `json:"state"`
	Bundle *diagnosis.DiagnosticBundle `json:"bundle"`
}

// Engine is the single entry point view collaborators call. It routes
// commands through the selection state machine and rebuilds the bundle
// after every accepted transition. Rejected commands leave the prior
// state intact and return the error unchanged.
type Engine struct {
	index       *dataset.Index
	machine     *selection.Machine
	diagnostics *DiagnosticService
}

// NewEngine validates and indexes the records and starts in Locator mode
func NewEngine(records []hospital.Record) (*Engine, error) {
	ix, err := dataset.Load(records)
	if err != nil {
		return nil, err
	}
	return &Engine{
		index:       ix,
		machine:     selection.NewMachine(ix),
		diagnostics: NewDiagnosticService(ix),
	}, nil
}

// Index exposes the loaded dataset index
func (e *Engine) Index() *dataset.Index {
	return e.index
}

// State returns the current selection state snapshot
func (e *Engine) State() diagnosis.SelectionState {
	return e.machine.Current()
}

// Bundle rebuilds the diagnostic bundle for the current state
func (e *Engine) Bundle() (*diagnosis.DiagnosticBundle, error) {
	return e.diagnostics.BuildBundle(e.machine.Current())
}

// SelectCell selects or toggle-deselects a (service, week) cell
func (e *Engine) SelectCell(service string, week int) (CommandResult, error) {
	state, err := e.machine.SelectCell(service, week)
	if err != nil {
		return CommandResult{State: state}, err
	}
	return e.result(state)
}

// ClearSelection returns to Locator mode
func (e *Engine) ClearSelection() (CommandResult, error) {
	return e.result(e.machine.ClearSelection())
}

// SetWeekRange updates the inclusive week range
func (e *Engine) SetWeekRange(lo, hi int) (CommandResult, error) {
	state, err := e.machine.SetWeekRange(lo, hi)
	if err != nil {
		return CommandResult{State: state}, err
	}
	return e.result(state)
}

// SetFocus switches the diagnostic focus metric
func (e *Engine) SetFocus(focus hospital.Metric) (CommandResult, error) {
	state, err := e.machine.SetFocus(focus)
	if err != nil {
		return CommandResult{State: state}, err
	}
	return e.result(state)
}

// SetVisibleEvents replaces the visible event set
func (e *Engine) SetVisibleEvents(events []hospital.EventType) (CommandResult, error) {
	state, err := e.machine.SetVisibleEvents(events)
	if err != nil {
		return CommandResult{State: state}, err
	}
	return e.result(state)
}

// SetShowBaseline toggles the baseline overlay preference
func (e *Engine) SetShowBaseline(show bool) (CommandResult, error) {
	return e.result(e.machine.SetShowBaseline(show))
}

// SetServiceFilter scopes Locator views to one service
func (e *Engine) SetServiceFilter(service string) (CommandResult, error) {
	state, err := e.machine.SetServiceFilter(service)
	if err != nil {
		return CommandResult{State: state}, err
	}
	return e.result(state)
}

func (e *Engine) result(state diagnosis.SelectionState) (CommandResult, error) {
	bundle, err := e.diagnostics.BuildBundle(state)
	if err != nil {
		return CommandResult{State: state}, err
	}
	return CommandResult{State: state, Bundle: bundle}, nil
}
