// Package selection implements the Locator/Workspace selection state
// machine. Every transition builds a complete replacement state and bumps
// its version, so views never observe a partially updated selection.
package selection

import (
	"bedflow/domain/core"
	"bedflow/domain/diagnosis"
	"bedflow/domain/hospital"
	"bedflow/internal/dataset"
)

// Machine holds the current SelectionState and enforces legal transitions
// against the loaded dataset.
type Machine struct {
	index *dataset.Index
	state diagnosis.SelectionState
}

// NewMachine creates a machine in Locator mode: no selection, full week
// range, refusal-rate focus, all events visible, baseline shown.
func NewMachine(ix *dataset.Index) *Machine {
	lo, hi := ix.WeekBounds()
	return &Machine{
		index: ix,
		state: diagnosis.SelectionState{
			WeekRange:     diagnosis.WeekRange{Lo: lo, Hi: hi},
			Focus:         hospital.MetricRefusalRate,
			VisibleEvents: hospital.AllEvents(),
			ShowBaseline:  true,
			ServiceFilter: diagnosis.ServiceFilterAll,
			Version:       1,
		},
	}
}

// Current returns the current selection state snapshot
func (m *Machine) Current() diagnosis.SelectionState {
	return m.state
}

// replace installs next as the new state with a bumped version
func (m *Machine) replace(next diagnosis.SelectionState) diagnosis.SelectionState {
	next.Version = m.state.Version + 1
	m.state = next
	return m.state
}

// SelectCell selects (service, week), or deselects back to Locator mode
// when the same cell is selected again. The single rule covers both select
// and toggle-deselect.
func (m *Machine) SelectCell(service string, week int) (diagnosis.SelectionState, error) {
	if _, ok := m.index.ByServiceWeek(service, week); !ok {
		return m.state, core.NewRecordNotFoundError(service, week)
	}

	next := m.state
	cur := m.state.Selection
	if cur != nil && cur.Service == service && cur.Week == week {
		next.Selection = nil
	} else {
		next.Selection = &diagnosis.CellRef{Service: service, Week: week}
	}
	return m.replace(next), nil
}

// ClearSelection returns to Locator mode. Idempotent.
func (m *Machine) ClearSelection() diagnosis.SelectionState {
	if m.state.Selection == nil {
		return m.state
	}
	next := m.state
	next.Selection = nil
	return m.replace(next)
}

// SetWeekRange updates the inclusive week range. The command is rejected
// with core.ErrInvalidRange when lo > hi or the range leaves the dataset
// bounds; the prior state is retained.
func (m *Machine) SetWeekRange(lo, hi int) (diagnosis.SelectionState, error) {
	if lo > hi {
		return m.state, core.NewInvalidRangeError(lo, hi, "lo exceeds hi")
	}
	min, max := m.index.WeekBounds()
	if lo < min || hi > max {
		return m.state, core.NewInvalidRangeError(lo, hi, "outside dataset bounds")
	}

	next := m.state
	next.WeekRange = diagnosis.WeekRange{Lo: lo, Hi: hi}
	return m.replace(next), nil
}

// SetFocus switches the diagnostic focus metric in any mode
func (m *Machine) SetFocus(focus hospital.Metric) (diagnosis.SelectionState, error) {
	if !focus.Valid() {
		return m.state, core.NewValidationError("focus", "unknown metric "+string(focus))
	}
	next := m.state
	next.Focus = focus
	return m.replace(next), nil
}

// SetVisibleEvents replaces the visible event set in any mode
func (m *Machine) SetVisibleEvents(events []hospital.EventType) (diagnosis.SelectionState, error) {
	for _, ev := range events {
		if !ev.Valid() {
			return m.state, core.NewValidationError("events", "unknown event "+string(ev))
		}
	}
	next := m.state
	next.VisibleEvents = append([]hospital.EventType(nil), events...)
	return m.replace(next), nil
}

// SetShowBaseline toggles the baseline overlay preference
func (m *Machine) SetShowBaseline(show bool) diagnosis.SelectionState {
	next := m.state
	next.ShowBaseline = show
	return m.replace(next)
}

// SetServiceFilter scopes Locator views to one service, or clears the
// filter with diagnosis.ServiceFilterAll. A filter that contradicts the
// current selection clears that selection.
func (m *Machine) SetServiceFilter(service string) (diagnosis.SelectionState, error) {
	if service != diagnosis.ServiceFilterAll && !m.index.HasService(service) {
		return m.state, core.ErrServiceNotFound
	}

	next := m.state
	next.ServiceFilter = service
	if sel := next.Selection; sel != nil && service != diagnosis.ServiceFilterAll && sel.Service != service {
		next.Selection = nil
	}
	return m.replace(next), nil
}
