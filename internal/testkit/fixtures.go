package testkit

import (
	"bedflow/domain/hospital"
)

// ServiceWeek builds a consistent record for tests: refused is derived
// from requests and admitted, capacity and scores get neutral defaults.
// Callers adjust fields as a scenario needs.
func ServiceWeek(service string, week, requests, admitted int) hospital.Record {
	return hospital.Record{
		Service:      service,
		Week:         week,
		Requests:     requests,
		Admitted:     admitted,
		Refused:      requests - admitted,
		Beds:         40,
		Staff:        12,
		Utilization:  0.8,
		Morale:       70,
		Satisfaction: 80,
	}
}

// WithEvents returns a copy of the record with the given events active
func WithEvents(r hospital.Record, events ...hospital.EventType) hospital.Record {
	r.Events = events
	return r
}
