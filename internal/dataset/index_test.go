package dataset

import (
	"testing"

	"bedflow/domain/core"
	"bedflow/domain/hospital"
	"bedflow/internal/testkit"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_ValidRecords(t *testing.T) {
	records := []hospital.Record{
		testkit.ServiceWeek("cardiology", 10, 100, 90),
		testkit.ServiceWeek("cardiology", 11, 110, 95),
		testkit.ServiceWeek("emergency", 10, 200, 180),
	}

	ix, err := Load(records)
	require.NoError(t, err)

	assert.Equal(t, 3, ix.Len())
	assert.Equal(t, []string{"cardiology", "emergency"}, ix.Services())

	lo, hi := ix.WeekBounds()
	assert.Equal(t, 10, lo)
	assert.Equal(t, 11, hi)
}

func TestLoad_RejectsDuplicateKey(t *testing.T) {
	records := []hospital.Record{
		testkit.ServiceWeek("cardiology", 10, 100, 90),
		testkit.ServiceWeek("cardiology", 10, 120, 100),
	}

	_, err := Load(records)
	require.Error(t, err)
	assert.True(t, core.IsValidationError(err))
	assert.Contains(t, err.Error(), "duplicate")
}

func TestLoad_RejectsInconsistentRefusals(t *testing.T) {
	bad := testkit.ServiceWeek("cardiology", 10, 100, 90)
	bad.Refused = 20 // requests - admitted is 10

	_, err := Load([]hospital.Record{bad})
	require.Error(t, err)
	assert.True(t, core.IsValidationError(err))
}

func TestLoad_RejectsRefusedExceedingRequests(t *testing.T) {
	bad := hospital.Record{
		Service: "cardiology", Week: 10,
		Requests: 10, Admitted: 0, Refused: 15,
		Beds: 40, Staff: 12, Utilization: 0.8,
		Morale: 70, Satisfaction: 80,
	}

	_, err := Load([]hospital.Record{bad})
	require.Error(t, err)
	assert.True(t, core.IsValidationError(err))
}

func TestLoad_RejectsEmptyDataset(t *testing.T) {
	_, err := Load(nil)
	require.Error(t, err)
	assert.True(t, core.IsValidationError(err))
}

func TestIndex_ByServiceWeek(t *testing.T) {
	ix, err := Load([]hospital.Record{
		testkit.ServiceWeek("cardiology", 10, 100, 90),
	})
	require.NoError(t, err)

	rec, ok := ix.ByServiceWeek("cardiology", 10)
	require.True(t, ok)
	assert.Equal(t, 100, rec.Requests)

	_, ok = ix.ByServiceWeek("cardiology", 11)
	assert.False(t, ok)
	_, ok = ix.ByServiceWeek("oncology", 10)
	assert.False(t, ok)
}

func TestIndex_RangeOrderedAndBounded(t *testing.T) {
	// Insert out of week order; Range must come back ascending.
	ix, err := Load([]hospital.Record{
		testkit.ServiceWeek("cardiology", 12, 100, 90),
		testkit.ServiceWeek("cardiology", 10, 100, 90),
		testkit.ServiceWeek("cardiology", 11, 100, 90),
		testkit.ServiceWeek("cardiology", 20, 100, 90),
	})
	require.NoError(t, err)

	got := ix.Range("cardiology", 10, 12)
	require.Len(t, got, 3)
	assert.Equal(t, 10, got[0].Week)
	assert.Equal(t, 11, got[1].Week)
	assert.Equal(t, 12, got[2].Week)

	assert.Empty(t, ix.Range("cardiology", 13, 19))
	assert.Empty(t, ix.Range("unknown", 1, 52))
}

func TestIndex_RangeAllCoversEveryService(t *testing.T) {
	gen := testkit.NewHospitalDataGenerator(testkit.DefaultHospitalConfig())
	ix, err := Load(gen.GenerateRecords())
	require.NoError(t, err)

	got := ix.RangeAll(10, 20)
	assert.Len(t, got, len(ix.Services())*11)
	for _, r := range got {
		assert.GreaterOrEqual(t, r.Week, 10)
		assert.LessOrEqual(t, r.Week, 20)
	}
}

func TestIndex_MetricHistory(t *testing.T) {
	a := testkit.ServiceWeek("cardiology", 1, 100, 90)
	b := testkit.ServiceWeek("cardiology", 2, 100, 80)
	ix, err := Load([]hospital.Record{a, b})
	require.NoError(t, err)

	hist := ix.MetricHistory("cardiology", hospital.MetricRefusalRate)
	require.Len(t, hist, 2)
	assert.InDelta(t, 0.1, hist[0], 1e-9)
	assert.InDelta(t, 0.2, hist[1], 1e-9)
}
