// Package gates checks caller-supplied acceptance gates for measurability.
// It never writes or rewrites gate text; rejected gates are returned so the
// caller can supply replacements.
package gates

import (
	"phase-planner/src/config"
	"phase-planner/src/model"
	"phase-planner/src/util"
)

// Validator checks that a phase carries enough measurable gates
type Validator struct {
	matcher       *util.MeasurableMatcher
	minMeasurable int
}

// NewValidator creates a validator from gate config
func NewValidator(cfg config.GatesConfig) *Validator {
	minMeasurable := cfg.MinMeasurable
	if minMeasurable <= 0 {
		minMeasurable = 3
	}
	return &Validator{
		matcher:       util.NewMeasurableMatcher(cfg),
		minMeasurable: minMeasurable,
	}
}

// Validate classifies each gate and reports whether the phase has at least
// the required number of measurable gates. Rejected gates keep their
// input order.
func (v *Validator) Validate(phase string, gates []string) model.GateValidationResult {
	result := model.GateValidationResult{
		Phase:    phase,
		Required: v.minMeasurable,
		Rejected: []string{},
	}

	for _, g := range gates {
		if ok, _ := v.matcher.Match(g); ok {
			result.MeasurableCount++
			continue
		}
		result.Rejected = append(result.Rejected, g)
	}

	result.Valid = result.MeasurableCount >= v.minMeasurable
	return result
}

// IsMeasurable reports whether a single gate states a numeric criterion
func (v *Validator) IsMeasurable(gate string) bool {
	ok, _ := v.matcher.Match(gate)
	return ok
}
