package hospital

// Metric is a diagnostic focus lens over weekly records
type Metric string

const (
	MetricRefusalRate      Metric = "refusal_rate"
	MetricStaffingPressure Metric = "patients_per_staff"
	MetricBedSaturation    Metric = "bed_utilization"
)

// AllMetrics lists the supported diagnostic focus metrics
func AllMetrics() []Metric {
	return []Metric{MetricRefusalRate, MetricStaffingPressure, MetricBedSaturation}
}

// Valid reports whether m is a supported metric
func (m Metric) Valid() bool {
	switch m {
	case MetricRefusalRate, MetricStaffingPressure, MetricBedSaturation:
		return true
	}
	return false
}

// Label returns the human-readable metric name
func (m Metric) Label() string {
	switch m {
	case MetricRefusalRate:
		return "Refusal Rate"
	case MetricStaffingPressure:
		return "Staffing Pressure"
	case MetricBedSaturation:
		return "Bed Saturation"
	}
	return "Metric"
}

// MetricValue extracts the value of m from the record
func (r Record) MetricValue(m Metric) float64 {
	switch m {
	case MetricRefusalRate:
		return r.RefusalRate()
	case MetricStaffingPressure:
		return r.PatientsPerStaff()
	case MetricBedSaturation:
		return r.Utilization
	}
	return 0
}
