package hospital

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"bedflow/domain/core"
)

// EventType is an external event active during a service-week
type EventType string

const (
	EventFlu      EventType = "flu"
	EventStrike   EventType = "strike"
	EventDonation EventType = "donation"
)

// AllEvents lists every known event type in display order
func AllEvents() []EventType {
	return []EventType{EventFlu, EventStrike, EventDonation}
}

// Valid reports whether e is a known event type
func (e EventType) Valid() bool {
	switch e {
	case EventFlu, EventStrike, EventDonation:
		return true
	}
	return false
}

// MinWeek and MaxWeek bound the weekly calendar
const (
	MinWeek = 1
	MaxWeek = 52
)

// Record is one (service, week) operational observation
type Record struct {
	Service      string      `json:"service" db:"service"`
	Week         int         `json:"week" db:"week"`
	Requests     int         `json:"requests" db:"requests"`
	Admitted     int         `json:"admitted" db:"admitted"`
	Refused      int         `json:"refused" db:"refused"`
	Beds         int         `json:"beds" db:"beds"`
	Staff        int         `json:"staff" db:"staff"`
	Utilization  float64     `json:"utilization" db:"utilization"`
	Morale       float64     `json:"morale" db:"morale"`
	Satisfaction float64     `json:"satisfaction" db:"satisfaction"`
	Events       []EventType `json:"events,omitempty"`
}

// HasEvent reports whether the given event was active this week
func (r Record) HasEvent(e EventType) bool {
	for _, ev := range r.Events {
		if ev == e {
			return true
		}
	}
	return false
}

// RefusalRate is refused/requests, 0 when no requests arrived
func (r Record) RefusalRate() float64 {
	if r.Requests == 0 {
		return 0
	}
	return float64(r.Refused) / float64(r.Requests)
}

// PatientsPerStaff is the staffing-pressure ratio admitted/staff
func (r Record) PatientsPerStaff() float64 {
	if r.Staff == 0 {
		return 0
	}
	return float64(r.Admitted) / float64(r.Staff)
}

// Validate checks the record invariants. All violations surface as
// core.ErrValidation so loading fails before any computation.
func (r Record) Validate() error {
	if strings.TrimSpace(r.Service) == "" {
		return core.NewValidationError("service", "must not be empty")
	}
	if r.Week < MinWeek || r.Week > MaxWeek {
		return core.NewRecordValidationError(r.Service, r.Week, "week outside 1-52")
	}
	if r.Requests < 0 || r.Admitted < 0 || r.Refused < 0 {
		return core.NewRecordValidationError(r.Service, r.Week, "counts must be non-negative")
	}
	if r.Refused != r.Requests-r.Admitted {
		return core.NewRecordValidationError(r.Service, r.Week, "refused must equal requests - admitted")
	}
	if r.Refused > r.Requests {
		return core.NewRecordValidationError(r.Service, r.Week, "refused exceeds requests")
	}
	if r.Beds <= 0 {
		return core.NewRecordValidationError(r.Service, r.Week, "beds must be positive")
	}
	if r.Staff <= 0 {
		return core.NewRecordValidationError(r.Service, r.Week, "staff must be positive")
	}
	if r.Utilization < 0 || r.Utilization > 1 {
		return core.NewRecordValidationError(r.Service, r.Week, "utilization outside [0,1]")
	}
	if r.Morale < 0 || r.Morale > 100 {
		return core.NewRecordValidationError(r.Service, r.Week, "morale outside [0,100]")
	}
	if r.Satisfaction < 0 || r.Satisfaction > 100 {
		return core.NewRecordValidationError(r.Service, r.Week, "satisfaction outside [0,100]")
	}
	for _, ev := range r.Events {
		if !ev.Valid() {
			return core.NewRecordValidationError(r.Service, r.Week, "unknown event "+string(ev))
		}
	}
	return nil
}

// DisplayName renders a service identifier the way the dashboard shows it:
// underscores become spaces, words are title-cased.
func DisplayName(service string) string {
	words := strings.Split(strings.ReplaceAll(service, "_", " "), " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		r, size := utf8.DecodeRuneInString(w)
		words[i] = string(unicode.ToUpper(r)) + w[size:]
	}
	return strings.Join(words, " ")
}
