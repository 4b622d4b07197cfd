package testkit

import (
	"math/rand"

	"bedflow/domain/hospital"
)

// HospitalGeneratorConfig configures the weekly hospital data generator
type HospitalGeneratorConfig struct {
	Services      []string `json:"services"`
	Weeks         int      `json:"weeks"`
	FluWaveWeeks  []int    `json:"flu_wave_weeks"`
	StrikeWeeks   []int    `json:"strike_weeks"`
	DonationWeeks []int    `json:"donation_weeks"`
	Seed          int64    `json:"seed"`
}

// DefaultHospitalConfig returns sensible defaults: six services over a
// full year, with a winter flu wave, a spring strike, and one donation drive.
func DefaultHospitalConfig() HospitalGeneratorConfig {
	return HospitalGeneratorConfig{
		Services: []string{
			"cardiology", "emergency", "geriatrics",
			"maternity", "oncology", "pediatrics",
		},
		Weeks:         52,
		FluWaveWeeks:  []int{2, 3, 4, 5, 6, 48, 49, 50, 51, 52},
		StrikeWeeks:   []int{22, 23},
		DonationWeeks: []int{30},
		Seed:          42,
	}
}

// HospitalDataGenerator generates realistic weekly service records
type HospitalDataGenerator struct {
	config HospitalGeneratorConfig
	rng    *rand.Rand
}

// NewHospitalDataGenerator creates a new generator with a deterministic seed
func NewHospitalDataGenerator(config HospitalGeneratorConfig) *HospitalDataGenerator {
	return &HospitalDataGenerator{
		config: config,
		rng:    rand.New(rand.NewSource(config.Seed)),
	}
}

// GenerateRecords produces the full weekly table. All record invariants
// hold by construction: admitted never exceeds capacity or requests, and
// refused is exactly requests - admitted.
func (g *HospitalDataGenerator) GenerateRecords() []hospital.Record {
	var records []hospital.Record
	for _, svc := range g.config.Services {
		records = append(records, g.generateServiceYear(svc)...)
	}
	return records
}

// generateServiceYear generates one service's weekly history
func (g *HospitalDataGenerator) generateServiceYear(service string) []hospital.Record {
	beds := 30 + g.rng.Intn(30)
	staff := 10 + g.rng.Intn(10)
	baseDemand := float64(beds) * (0.7 + g.rng.Float64()*0.2)
	morale := 70.0 + g.rng.Float64()*10

	var records []hospital.Record
	for week := 1; week <= g.config.Weeks; week++ {
		var events []hospital.EventType

		demand := baseDemand * (0.9 + g.rng.Float64()*0.2)
		weekBeds := beds
		weekStaff := staff

		if containsWeek(g.config.FluWaveWeeks, week) {
			events = append(events, hospital.EventFlu)
			demand *= 1.3 + g.rng.Float64()*0.2
		}
		if containsWeek(g.config.StrikeWeeks, week) {
			events = append(events, hospital.EventStrike)
			weekStaff = weekStaff * 6 / 10
		}
		if containsWeek(g.config.DonationWeeks, week) {
			events = append(events, hospital.EventDonation)
			weekBeds += 10
		}

		requests := int(demand)
		// Staff can process roughly 4 patients each per week; beds cap the rest.
		capacity := weekStaff * 4
		if weekBeds < capacity {
			capacity = weekBeds
		}
		admitted := requests
		if admitted > capacity {
			admitted = capacity
		}
		refused := requests - admitted

		utilization := float64(admitted) / float64(weekBeds)
		if utilization > 1 {
			utilization = 1
		}

		// Morale erodes under refusals and strikes, recovers slowly otherwise.
		if refused > 0 || containsWeek(g.config.StrikeWeeks, week) {
			morale -= 1.5 + g.rng.Float64()*2
		} else {
			morale += 0.5 + g.rng.Float64()
		}
		morale = clampScore(morale)

		satisfaction := clampScore(90 - float64(refused)/float64(max(requests, 1))*120 - g.rng.Float64()*5)

		records = append(records, hospital.Record{
			Service:      service,
			Week:         week,
			Requests:     requests,
			Admitted:     admitted,
			Refused:      refused,
			Beds:         weekBeds,
			Staff:        weekStaff,
			Utilization:  utilization,
			Morale:       morale,
			Satisfaction: satisfaction,
			Events:       events,
		})
	}
	return records
}

func containsWeek(weeks []int, week int) bool {
	for _, w := range weeks {
		if w == week {
			return true
		}
	}
	return false
}

func clampScore(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
