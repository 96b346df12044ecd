package report

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"

	"gopkg.in/yaml.v3"

	"phase-planner/src/model"
)

// Generator assembles and serializes analysis reports
type Generator struct {
	hoursPerDay float64
}

// NewGenerator creates a report generator. hoursPerDay converts plan hours
// into days and defaults to 8.
func NewGenerator(hoursPerDay float64) *Generator {
	if hoursPerDay <= 0 {
		hoursPerDay = 8
	}
	return &Generator{hoursPerDay: hoursPerDay}
}

// Assemble packages a complexity report and its phase plan into the
// serialized report shape
func (g *Generator) Assemble(r model.ComplexityReport, plan model.PhasePlan) model.AnalysisReport {
	dims := make(map[string]model.DimensionScore, len(r.Dimensions))
	for d, s := range r.Dimensions {
		dims[string(d)] = s
	}

	pcts := make([]float64, len(plan.Phases))
	for i, ph := range plan.Phases {
		pcts[i] = ph.Percentage
	}
	rounded := RoundPercentages(pcts)

	dist := make(map[string]model.PhaseAllocation, len(plan.Phases))
	for i, ph := range plan.Phases {
		dist[fmt.Sprintf("phase_%d", i+1)] = model.PhaseAllocation{
			Name:          ph.Name,
			Percentage:    rounded[i],
			DurationHours: ph.DurationHours,
		}
	}

	return model.AnalysisReport{
		OverallScore: r.OverallScore,
		Category:     r.Category,
		Dimensions:   dims,
		PhasePlan: model.PhasePlanSummary{
			Count:              plan.PhaseCount,
			Distribution:       dist,
			TotalDurationHours: plan.TotalDurationHours,
			TotalDurationDays:  plan.TotalDurationHours / g.hoursPerDay,
		},
		RiskLevel:           r.Category.RiskLevel(),
		RecommendedTeamSize: r.Category.TeamSize(),
		Confidence:          r.Confidence,
	}
}

// Generate serializes a report in the specified format
func (g *Generator) Generate(report model.AnalysisReport, format string) (string, error) {
	switch format {
	case "json":
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return "", err
		}
		return string(data), nil
	case "yaml", "yml":
		data, err := yaml.Marshal(report)
		if err != nil {
			return "", err
		}
		return string(data), nil
	default:
		return "", fmt.Errorf("unsupported format: %s", format)
	}
}

// RoundPercentages converts percentages summing to 100 into integers that
// still sum to 100, giving leftover points to the largest fractional parts
// (earlier phases win ties)
func RoundPercentages(pcts []float64) []int {
	out := make([]int, len(pcts))
	if len(pcts) == 0 {
		return out
	}

	type frac struct {
		idx  int
		frac float64
	}
	fracs := make([]frac, len(pcts))
	total := 0
	for i, p := range pcts {
		f := math.Floor(p)
		out[i] = int(f)
		total += out[i]
		fracs[i] = frac{i, p - f}
	}

	sort.SliceStable(fracs, func(a, b int) bool {
		return fracs[a].frac > fracs[b].frac
	})

	for i := 0; total < 100 && i < len(fracs); i++ {
		out[fracs[i].idx]++
		total++
	}
	return out
}
