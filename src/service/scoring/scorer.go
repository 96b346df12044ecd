package scoring

import (
	"math"

	"phase-planner/src/model"
)

// Scorer computes one dimension score from raw metrics. Implementations
// are pure and assume the input has already been validated.
type Scorer interface {
	// Dimension returns the dimension this scorer produces
	Dimension() model.Dimension

	// Score computes the dimension score
	Score(m model.MetricsInput) model.DimensionScore
}

// DefaultScorers returns one scorer per dimension in report order
func DefaultScorers() []Scorer {
	return []Scorer{
		StructureScorer{},
		LogicScorer{},
		IntegrationScorer{},
		ScaleScorer{},
		UncertaintyScorer{},
		TechnicalDebtScorer{},
	}
}

// clamp01 limits v to [0,1]. NaN maps to 0.
func clamp01(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
