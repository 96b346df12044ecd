package planner

import (
	"fmt"
	"math"

	"phase-planner/src/config"
	"phase-planner/src/model"
)

// sumTolerance is the allowed drift of the percentage total from 100
const sumTolerance = 0.01

// phaseTemplate is a named phase with its baseline share
type phaseTemplate struct {
	name       string
	percentage float64
}

var baselines = map[int][]phaseTemplate{
	3: {
		{"Setup", 25},
		{"Core", 50},
		{"Validation", 25},
	},
	4: {
		{"Setup", 20},
		{"Core", 35},
		{"Features", 25},
		{"Validation", 20},
	},
	5: {
		{"Foundation", 15},
		{"Core", 35},
		{"Features", 25},
		{"Integration", 20},
		{"Validation", 5},
	},
	6: {
		{"Analysis", 12},
		{"Foundation", 20},
		{"CoreFeatures", 25},
		{"AdvancedFeatures", 20},
		{"IntegrationTesting", 18},
		{"Validation", 5},
	},
}

// Options tune the VERY_COMPLEX phase count decision
type Options struct {
	// VeryComplexUncertainty is the uncertainty above which a VERY_COMPLEX
	// project gets six phases
	VeryComplexUncertainty float64

	// VeryComplexScale is the scale above which a VERY_COMPLEX project
	// gets six phases
	VeryComplexScale float64
}

// DefaultOptions returns the standard thresholds
func DefaultOptions() Options {
	return Options{VeryComplexUncertainty: 0.6, VeryComplexScale: 0.85}
}

// OptionsFromConfig builds planner options from configuration
func OptionsFromConfig(cfg config.PlannerConfig) Options {
	return Options{
		VeryComplexUncertainty: cfg.VeryComplexUncertainty,
		VeryComplexScale:       cfg.VeryComplexScale,
	}
}

// Planner turns a complexity report into a phase plan
type Planner struct {
	opts      Options
	durations DurationTable
}

// New creates a planner. A nil duration table uses the defaults.
func New(opts Options, durations DurationTable) *Planner {
	return &Planner{
		opts:      opts,
		durations: DefaultDurations().Merge(durations),
	}
}

// PhaseCount returns the number of phases for a report, or 0 for an
// unknown category
func (p *Planner) PhaseCount(r model.ComplexityReport) int {
	switch r.Category {
	case model.CategoryTrivial, model.CategorySimple:
		return 3
	case model.CategoryModerate:
		return 4
	case model.CategoryComplex:
		return 5
	case model.CategoryVeryComplex:
		if r.Score(model.DimensionUncertainty) > p.opts.VeryComplexUncertainty ||
			r.Score(model.DimensionScale) > p.opts.VeryComplexScale {
			return 6
		}
		return 5
	case model.CategoryCritical:
		return 6
	default:
		return 0
	}
}

// Baseline returns the unadjusted phases for a phase count, or nil if the
// count is not 3 to 6
func Baseline(count int) []model.Phase {
	tpl, ok := baselines[count]
	if !ok {
		return nil
	}
	phases := make([]model.Phase, len(tpl))
	for i, t := range tpl {
		phases[i] = model.Phase{Name: t.name, Percentage: t.percentage}
	}
	return phases
}

// Plan builds the adjusted phase plan for a report. override, if non-nil,
// replaces entries of the planner's duration table for this call only.
func (p *Planner) Plan(r model.ComplexityReport, override DurationTable) (model.PhasePlan, error) {
	if err := override.Validate(); err != nil {
		return model.PhasePlan{}, err
	}

	count := p.PhaseCount(r)
	baseline := Baseline(count)
	if baseline == nil {
		return model.PhasePlan{}, fmt.Errorf("no phase plan for category %q", r.Category)
	}

	phases, fired := Adjust(baseline, r.Dimensions)
	if err := checkInvariant(phases); err != nil {
		return model.PhasePlan{}, err
	}

	total := p.durations.Merge(override).Hours(r.Category)
	for i := range phases {
		phases[i].DurationHours = phases[i].Percentage / 100 * total
	}

	return model.PhasePlan{
		PhaseCount:         count,
		Phases:             phases,
		TotalDurationHours: total,
		Adjustments:        fired,
	}, nil
}

// checkInvariant fails if any phase is negative or the total is not 100
func checkInvariant(phases []model.Phase) error {
	var sum float64
	negative := false
	for _, ph := range phases {
		sum += ph.Percentage
		if ph.Percentage < 0 {
			negative = true
		}
	}
	if negative || math.Abs(sum-100) > sumTolerance {
		return &model.PhaseSumInvariantError{PhaseCount: len(phases), Sum: sum}
	}
	return nil
}
