package planner

import (
	"math"

	"phase-planner/src/model"
)

// Slot is a role a phase plays in the plan, independent of its name
type Slot int

const (
	SlotSetup Slot = iota
	SlotCore
	SlotFeatures
	SlotIntegration
	SlotValidation
)

// slotPhases lists the phase names that fill each slot
var slotPhases = map[Slot][]string{
	SlotSetup:       {"Setup", "Foundation", "Analysis"},
	SlotCore:        {"Core", "CoreFeatures"},
	SlotFeatures:    {"Features", "AdvancedFeatures"},
	SlotIntegration: {"Integration", "IntegrationTesting"},
	SlotValidation:  {"Validation"},
}

// Delta moves percentage points into or out of a slot
type Delta struct {
	Slot   Slot
	Points float64
}

// Rule rebalances the plan when a dimension exceeds its threshold.
// The deltas of every rule sum to zero and exactly one delta is positive.
type Rule struct {
	Name      string
	Dimension model.Dimension
	Threshold float64
	Deltas    []Delta
}

// Rules are applied in this order and are cumulative
var Rules = []Rule{
	{
		Name:      "integration_heavy",
		Dimension: model.DimensionIntegration,
		Threshold: 0.7,
		Deltas:    []Delta{{SlotIntegration, 5}, {SlotCore, -2}, {SlotFeatures, -3}},
	},
	{
		Name:      "high_uncertainty",
		Dimension: model.DimensionUncertainty,
		Threshold: 0.6,
		Deltas:    []Delta{{SlotSetup, 5}, {SlotCore, -5}},
	},
	{
		Name:      "high_scale",
		Dimension: model.DimensionScale,
		Threshold: 0.7,
		Deltas:    []Delta{{SlotFeatures, 5}, {SlotCore, -5}},
	},
	{
		Name:      "high_technical_debt",
		Dimension: model.DimensionTechnicalDebt,
		Threshold: 0.6,
		Deltas:    []Delta{{SlotSetup, 10}, {SlotCore, -5}, {SlotFeatures, -5}},
	},
}

// resolveSlot returns the index of the first phase, in plan order, that
// fills the slot, or -1
func resolveSlot(phases []model.Phase, s Slot) int {
	for i, ph := range phases {
		for _, name := range slotPhases[s] {
			if ph.Name == name {
				return i
			}
		}
	}
	return -1
}

// Adjust applies every triggered rule to a copy of the phases and returns
// the rebalanced phases together with the names of the rules that fired.
// A rule fires only if every slot it references exists in the plan.
// Percentages of the result sum to 100.
func Adjust(phases []model.Phase, scores map[model.Dimension]model.DimensionScore) ([]model.Phase, []string) {
	return adjustWith(Rules, phases, scores)
}

func adjustWith(rules []Rule, phases []model.Phase, scores map[model.Dimension]model.DimensionScore) ([]model.Phase, []string) {
	pct := make([]float64, len(phases))
	for i, ph := range phases {
		pct[i] = ph.Percentage
	}

	// trigger[i] is the phase that gained in the last rule that took from i
	trigger := make([]int, len(phases))
	for i := range trigger {
		trigger[i] = -1
	}

	var fired []string
	for _, rule := range rules {
		if scores[rule.Dimension].Value <= rule.Threshold {
			continue
		}

		idx := make([]int, len(rule.Deltas))
		gainer := -1
		applicable := true
		for i, d := range rule.Deltas {
			idx[i] = resolveSlot(phases, d.Slot)
			if idx[i] < 0 {
				applicable = false
				break
			}
			if d.Points > 0 {
				gainer = idx[i]
			}
		}
		if !applicable {
			continue
		}

		for i, d := range rule.Deltas {
			pct[idx[i]] += d.Points
			if d.Points < 0 {
				trigger[idx[i]] = gainer
			}
		}
		fired = append(fired, rule.Name)
	}

	pct = rescale(redistribute(pct, trigger))

	out := make([]model.Phase, len(phases))
	for i, ph := range phases {
		out[i] = model.Phase{Name: ph.Name, Percentage: pct[i], DurationHours: ph.DurationHours}
	}
	return out, fired
}

// redistribute clamps negative percentages to zero. Each deficit is first
// taken from the phase that triggered it, then spread proportionally over
// the other positive phases, until no phase is negative. The total is
// preserved.
func redistribute(pct []float64, trigger []int) []float64 {
	out := append([]float64(nil), pct...)

	// Each pass zeroes one negative phase without creating new ones when
	// the total is positive, so len(out) passes suffice; the extra margin
	// covers float rounding.
	for pass := 0; pass < 2*len(out)+1; pass++ {
		neg := -1
		for i, p := range out {
			if p < 0 {
				neg = i
				break
			}
		}
		if neg < 0 {
			break
		}

		deficit := -out[neg]
		out[neg] = 0

		if t := trigger[neg]; t >= 0 && t != neg && out[t] > 0 {
			take := math.Min(deficit, out[t])
			out[t] -= take
			deficit -= take
		}
		if deficit <= 0 {
			continue
		}

		var pool float64
		for j, p := range out {
			if j != neg && p > 0 {
				pool += p
			}
		}
		if pool <= 0 {
			break
		}
		for j, p := range out {
			if j != neg && p > 0 {
				out[j] = p - deficit*p/pool
			}
		}
	}

	return out
}

// rescale scales the percentages so they sum to exactly 100. A non-positive
// total is returned unchanged and caught by the invariant check.
func rescale(pct []float64) []float64 {
	var sum float64
	for _, p := range pct {
		sum += p
	}
	out := append([]float64(nil), pct...)
	if sum <= 0 || sum == 100 {
		return out
	}
	for i := range out {
		out[i] = out[i] * 100 / sum
	}
	return out
}
