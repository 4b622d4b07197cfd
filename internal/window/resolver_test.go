package window

import (
	"testing"

	"bedflow/domain/hospital"
	"bedflow/internal/dataset"
	"bedflow/internal/testkit"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fullYearIndex(t *testing.T) *dataset.Index {
	t.Helper()
	var records []hospital.Record
	for week := 1; week <= 52; week++ {
		records = append(records, testkit.ServiceWeek("cardiology", week, 100, 90))
	}
	ix, err := dataset.Load(records)
	require.NoError(t, err)
	return ix
}

func TestResolve_CenteredWindow(t *testing.T) {
	ix := fullYearIndex(t)

	win := Resolve(ix, "cardiology", 26, DefaultRadius)
	assert.Equal(t, 20, win.Lo)
	assert.Equal(t, 32, win.Hi)
	assert.False(t, win.TruncatedLo)
	assert.False(t, win.TruncatedHi)
	assert.Len(t, win.Records, 13)
}

func TestResolve_ClampsAtLowerBound(t *testing.T) {
	ix := fullYearIndex(t)

	win := Resolve(ix, "cardiology", 3, DefaultRadius)
	assert.Equal(t, 1, win.Lo)
	assert.Equal(t, 9, win.Hi)
	assert.True(t, win.TruncatedLo)
	assert.False(t, win.TruncatedHi)
	assert.Len(t, win.Records, 9)
}

func TestResolve_ClampsAtUpperBound(t *testing.T) {
	ix := fullYearIndex(t)

	win := Resolve(ix, "cardiology", 50, DefaultRadius)
	assert.Equal(t, 44, win.Lo)
	assert.Equal(t, 52, win.Hi)
	assert.False(t, win.TruncatedLo)
	assert.True(t, win.TruncatedHi)
}

func TestResolve_WindowLengthBounds(t *testing.T) {
	ix := fullYearIndex(t)

	for center := 1; center <= 52; center++ {
		win := Resolve(ix, "cardiology", center, DefaultRadius)
		assert.GreaterOrEqual(t, len(win.Records), 1)
		assert.LessOrEqual(t, len(win.Records), 13)
		assert.GreaterOrEqual(t, win.Lo, 1)
		assert.LessOrEqual(t, win.Hi, 52)
	}
}

func TestResolve_DegenerateSinglePoint(t *testing.T) {
	ix, err := dataset.Load([]hospital.Record{
		testkit.ServiceWeek("cardiology", 30, 100, 90),
	})
	require.NoError(t, err)

	win := Resolve(ix, "cardiology", 30, DefaultRadius)
	assert.Equal(t, 30, win.Lo)
	assert.Equal(t, 30, win.Hi)
	assert.True(t, win.TruncatedLo)
	assert.True(t, win.TruncatedHi)
	require.Len(t, win.Records, 1)
}

func TestResolve_SparseHistoryKeepsOrder(t *testing.T) {
	ix, err := dataset.Load([]hospital.Record{
		testkit.ServiceWeek("cardiology", 10, 100, 90),
		testkit.ServiceWeek("cardiology", 13, 100, 90),
		testkit.ServiceWeek("cardiology", 16, 100, 90),
	})
	require.NoError(t, err)

	win := Resolve(ix, "cardiology", 13, DefaultRadius)
	require.Len(t, win.Records, 3)
	assert.Equal(t, 10, win.Records[0].Week)
	assert.Equal(t, 16, win.Records[2].Week)
}
