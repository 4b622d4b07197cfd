package testkit

import (
	"os"
	"path/filepath"
	"testing"

	"bedflow/domain/hospital"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateRecords_InvariantsHold(t *testing.T) {
	gen := NewHospitalDataGenerator(DefaultHospitalConfig())
	records := gen.GenerateRecords()

	require.Len(t, records, 6*52)
	for _, rec := range records {
		require.NoError(t, rec.Validate(), "service %s week %d", rec.Service, rec.Week)
	}
}

func TestGenerateRecords_Deterministic(t *testing.T) {
	cfg := DefaultHospitalConfig()
	a := NewHospitalDataGenerator(cfg).GenerateRecords()
	b := NewHospitalDataGenerator(cfg).GenerateRecords()

	assert.Equal(t, a, b)
}

func TestGenerateRecords_EventWeeksCarryEvents(t *testing.T) {
	gen := NewHospitalDataGenerator(DefaultHospitalConfig())
	records := gen.GenerateRecords()

	byWeek := func(service string, week int) hospital.Record {
		for _, rec := range records {
			if rec.Service == service && rec.Week == week {
				return rec
			}
		}
		t.Fatalf("missing %s week %d", service, week)
		return hospital.Record{}
	}

	assert.True(t, byWeek("cardiology", 3).HasEvent(hospital.EventFlu))
	assert.True(t, byWeek("cardiology", 23).HasEvent(hospital.EventStrike))
	assert.True(t, byWeek("oncology", 30).HasEvent(hospital.EventDonation))
	assert.False(t, byWeek("oncology", 15).HasEvent(hospital.EventFlu))
}

func TestGenerateRecords_StrikeReducesStaff(t *testing.T) {
	gen := NewHospitalDataGenerator(DefaultHospitalConfig())
	records := gen.GenerateRecords()

	staffAt := func(week int) int {
		for _, rec := range records {
			if rec.Service == "emergency" && rec.Week == week {
				return rec.Staff
			}
		}
		t.Fatalf("missing emergency week %d", week)
		return 0
	}

	assert.Less(t, staffAt(22), staffAt(21))
	assert.Equal(t, staffAt(21), staffAt(24))
}

func TestWriteCSV_RoundTripsThroughValidation(t *testing.T) {
	cfg := DefaultHospitalConfig()
	cfg.Weeks = 10
	records := NewHospitalDataGenerator(cfg).GenerateRecords()

	path := filepath.Join(t.TempDir(), "fixture.csv")
	require.NoError(t, WriteCSV(path, records))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}
