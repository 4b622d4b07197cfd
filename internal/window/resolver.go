// Package window computes the ±radius-week slice around a selected week.
package window

import (
	"bedflow/domain/diagnosis"
	"bedflow/internal/dataset"
)

// DefaultRadius is the diagnostic window half-width in weeks
const DefaultRadius = 6

// Resolve computes [centerWeek-radius, centerWeek+radius], clamps both
// ends to the dataset's week bounds, and returns the service's ordered
// records in that range. Clamping always yields a valid window, possibly
// a single point; the truncation flags tell views the window hit an edge.
func Resolve(ix *dataset.Index, service string, centerWeek, radius int) diagnosis.WindowedSlice {
	min, max := ix.WeekBounds()

	lo := centerWeek - radius
	hi := centerWeek + radius

	truncatedLo := lo < min
	truncatedHi := hi > max
	if truncatedLo {
		lo = min
	}
	if truncatedHi {
		hi = max
	}

	return diagnosis.WindowedSlice{
		Service:     service,
		Center:      centerWeek,
		Lo:          lo,
		Hi:          hi,
		TruncatedLo: truncatedLo,
		TruncatedHi: truncatedHi,
		Records:     ix.Range(service, lo, hi),
	}
}
