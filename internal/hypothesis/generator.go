// Package hypothesis turns derived cell findings into one narrative line.
// The generator is an ordered rule table evaluated first-match-wins, so
// the output is deterministic and every template is a fixed string.
package hypothesis

import (
	"fmt"

	"bedflow/domain/diagnosis"
	"bedflow/domain/hospital"
)

// highUtilizationThreshold is the bed saturation level treated as the
// dominant refusal driver when no external event explains the week.
const highUtilizationThreshold = 0.9

// rule pairs a predicate with its narrative template
type rule struct {
	name    string
	applies func(diagnosis.CellFindings) bool
	render  func(diagnosis.CellFindings) string
}

// rules are evaluated in priority order; the final rule always applies.
var rules = []rule{
	{
		name: "flu_correlation",
		applies: func(f diagnosis.CellFindings) bool {
			return f.Record.HasEvent(hospital.EventFlu) && f.RefusalRateDelta > 0
		},
		render: func(f diagnosis.CellFindings) string {
			return fmt.Sprintf(
				"%s refused %.1f points more of its requests than its historical average while a flu outbreak was active in week %d; outbreak-driven excess demand is the most likely cause.",
				hospital.DisplayName(f.Cell.Service), f.RefusalRateDelta*100, f.Cell.Week,
			)
		},
	},
	{
		name: "strike_correlation",
		applies: func(f diagnosis.CellFindings) bool {
			return f.Record.HasEvent(hospital.EventStrike) && f.RefusalRateDelta > 0
		},
		render: func(f diagnosis.CellFindings) string {
			return fmt.Sprintf(
				"%s refused %.1f points more of its requests than its historical average during a staff strike in week %d; reduced admitting capacity is the most likely cause.",
				hospital.DisplayName(f.Cell.Service), f.RefusalRateDelta*100, f.Cell.Week,
			)
		},
	},
	{
		name: "high_utilization",
		applies: func(f diagnosis.CellFindings) bool {
			return f.Record.Utilization >= highUtilizationThreshold
		},
		render: func(f diagnosis.CellFindings) string {
			return fmt.Sprintf(
				"%s was operating at %.0f%% bed utilization in week %d; with beds saturated, incoming requests could not be admitted.",
				hospital.DisplayName(f.Cell.Service), f.Record.Utilization*100, f.Cell.Week,
			)
		},
	},
	{
		name:    "elevated_refusals",
		applies: func(diagnosis.CellFindings) bool { return true },
		render: func(f diagnosis.CellFindings) string {
			return fmt.Sprintf(
				"%s shows a refusal rate of %+.1f points against its baseline in week %d with no single dominant factor; review demand and capacity together.",
				hospital.DisplayName(f.Cell.Service), f.RefusalRateDelta*100, f.Cell.Week,
			)
		},
	},
}

// Generate picks the first matching narrative for the findings
func Generate(f diagnosis.CellFindings) string {
	for _, r := range rules {
		if r.applies(f) {
			return r.render(f)
		}
	}
	// Unreachable: the final rule always applies.
	return ""
}

// RuleName reports which rule would fire for the findings; used by tests
// to pin the priority order without string matching.
func RuleName(f diagnosis.CellFindings) string {
	for _, r := range rules {
		if r.applies(f) {
			return r.name
		}
	}
	return ""
}
