package impact

import (
	"testing"

	"bedflow/domain/hospital"
	"bedflow/internal/dataset"
	"bedflow/internal/testkit"
	"bedflow/internal/window"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyze_BeforeAfterSplit(t *testing.T) {
	var records []hospital.Record
	for week := 10; week <= 22; week++ {
		r := testkit.ServiceWeek("cardiology", week, 100, 90)
		if week < 16 {
			r.Morale = 80
			r.Satisfaction = 90
		} else if week == 16 {
			r.Morale = 60
			r.Satisfaction = 70
		} else {
			r.Morale = 50
			r.Satisfaction = 60
		}
		records = append(records, r)
	}
	ix, err := dataset.Load(records)
	require.NoError(t, err)

	win := window.Resolve(ix, "cardiology", 16, window.DefaultRadius)
	got := NewAnalyzer(ix).Analyze(win)

	assert.Equal(t, 6, got.WeeksBefore)
	assert.Equal(t, 6, got.WeeksAfter)
	assert.InDelta(t, 80, got.MoraleBefore, 1e-9)
	assert.InDelta(t, 50, got.MoraleAfter, 1e-9)
	assert.InDelta(t, -30, got.MoraleShift, 1e-9)
	assert.InDelta(t, -30, got.SatisfactionShift, 1e-9)
}

func TestAnalyze_CenterWeekExcludedFromBothSides(t *testing.T) {
	records := []hospital.Record{
		testkit.ServiceWeek("cardiology", 10, 100, 90),
		testkit.ServiceWeek("cardiology", 11, 100, 90),
		testkit.ServiceWeek("cardiology", 12, 100, 90),
	}
	ix, err := dataset.Load(records)
	require.NoError(t, err)

	win := window.Resolve(ix, "cardiology", 11, window.DefaultRadius)
	got := NewAnalyzer(ix).Analyze(win)

	assert.Equal(t, 1, got.WeeksBefore)
	assert.Equal(t, 1, got.WeeksAfter)
}

func TestAnalyze_RefusalMoraleCorrelation(t *testing.T) {
	// Morale falls exactly as refusal rate rises: correlation is -1.
	var records []hospital.Record
	for i := 0; i < 10; i++ {
		r := testkit.ServiceWeek("cardiology", i+1, 100, 100-i)
		r.Morale = 90 - float64(i)*2
		records = append(records, r)
	}
	ix, err := dataset.Load(records)
	require.NoError(t, err)

	win := window.Resolve(ix, "cardiology", 5, window.DefaultRadius)
	got := NewAnalyzer(ix).Analyze(win)

	assert.InDelta(t, -1.0, got.RefusalMoraleCorrelation, 1e-9)
}

func TestAnalyze_FlatSeriesHasZeroCorrelation(t *testing.T) {
	var records []hospital.Record
	for week := 1; week <= 8; week++ {
		records = append(records, testkit.ServiceWeek("cardiology", week, 100, 90))
	}
	ix, err := dataset.Load(records)
	require.NoError(t, err)

	win := window.Resolve(ix, "cardiology", 4, window.DefaultRadius)
	got := NewAnalyzer(ix).Analyze(win)

	assert.Zero(t, got.RefusalMoraleCorrelation)
}

func TestAnalyze_EdgeWindowWithEmptySide(t *testing.T) {
	records := []hospital.Record{
		testkit.ServiceWeek("cardiology", 1, 100, 90),
		testkit.ServiceWeek("cardiology", 2, 100, 85),
	}
	ix, err := dataset.Load(records)
	require.NoError(t, err)

	win := window.Resolve(ix, "cardiology", 1, window.DefaultRadius)
	got := NewAnalyzer(ix).Analyze(win)

	assert.Equal(t, 0, got.WeeksBefore)
	assert.Equal(t, 1, got.WeeksAfter)
	assert.Zero(t, got.MoraleBefore)
}
