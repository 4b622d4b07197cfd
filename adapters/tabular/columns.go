package tabular

import (
	"strings"
)

// ColumnMap holds the resolved header index for each known field.
// A value of -1 means the column was not found in the file.
type ColumnMap struct {
	Week         int
	Service      int
	Requests     int
	Admissions   int
	Refusals     int
	Beds         int
	Staff        int
	Utilization  int
	Morale       int
	Satisfaction int
	Events       int
}

var (
	weekCandidates         = []string{"week", "week_start", "week_number", "week_index"}
	serviceCandidates      = []string{"service", "department", "unit", "ward"}
	requestCandidates      = []string{"requests", "patient_requests", "demand", "requested"}
	admissionCandidates    = []string{"admissions", "accepted", "admit", "acceptances"}
	refusalCandidates      = []string{"refusals", "rejections", "refused", "reject", "denied"}
	bedCandidates          = []string{"beds", "bed_available", "available_beds", "capacity_beds"}
	staffCandidates        = []string{"staff", "nurses", "doctors", "staff_available", "capacity_staff"}
	utilizationCandidates  = []string{"utilization", "occupancy", "bed_utilization"}
	moraleCandidates       = []string{"morale", "staff_morale"}
	satisfactionCandidates = []string{"satisfaction", "patient_satisfaction"}
	eventCandidates        = []string{"events", "event", "incidents"}
)

// DetectColumns resolves header positions against known candidate names.
// Exact case-insensitive matches win, then substring matches, so headers
// like "Week_Number" or "available beds (total)" still resolve.
func DetectColumns(headers []string) ColumnMap {
	return ColumnMap{
		Week:         pickColumn(headers, weekCandidates),
		Service:      pickColumn(headers, serviceCandidates),
		Requests:     pickColumn(headers, requestCandidates),
		Admissions:   pickColumn(headers, admissionCandidates),
		Refusals:     pickColumn(headers, refusalCandidates),
		Beds:         pickColumn(headers, bedCandidates),
		Staff:        pickColumn(headers, staffCandidates),
		Utilization:  pickColumn(headers, utilizationCandidates),
		Morale:       pickColumn(headers, moraleCandidates),
		Satisfaction: pickColumn(headers, satisfactionCandidates),
		Events:       pickColumn(headers, eventCandidates),
	}
}

// Complete reports whether the two required columns were found
func (m ColumnMap) Complete() bool {
	return m.Week >= 0 && m.Service >= 0
}

func pickColumn(headers []string, candidates []string) int {
	for _, cand := range candidates {
		for i, h := range headers {
			if strings.EqualFold(strings.TrimSpace(h), cand) {
				return i
			}
		}
	}
	for _, cand := range candidates {
		for i, h := range headers {
			if strings.Contains(strings.ToLower(h), strings.ToLower(cand)) {
				return i
			}
		}
	}
	return -1
}
