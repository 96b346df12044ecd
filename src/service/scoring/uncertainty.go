package scoring

import (
	"fmt"

	"phase-planner/src/model"
)

// ElementWeights weight specification sections by how much they reduce
// ambiguity. They sum to 1.0.
var ElementWeights = map[model.SpecElement]float64{
	model.ElementGoal:               0.15,
	model.ElementUserStories:        0.15,
	model.ElementTechRequirements:   0.20,
	model.ElementDataModel:          0.15,
	model.ElementAPIContracts:       0.15,
	model.ElementAcceptanceCriteria: 0.20,
}

var elementOrder = []model.SpecElement{
	model.ElementGoal,
	model.ElementUserStories,
	model.ElementTechRequirements,
	model.ElementDataModel,
	model.ElementAPIContracts,
	model.ElementAcceptanceCriteria,
}

// UncertaintyScorer scores how incomplete or unclear the specification is
type UncertaintyScorer struct{}

// Dimension returns the uncertainty dimension
func (UncertaintyScorer) Dimension() model.Dimension {
	return model.DimensionUncertainty
}

// Score computes 1 - completeness*clarity, clamped to [0,1]
func (UncertaintyScorer) Score(m model.MetricsInput) model.DimensionScore {
	completeness := SpecCompleteness(m.SpecCompletenessElements)

	present := 0
	for _, el := range elementOrder {
		if m.SpecCompletenessElements[el] {
			present++
		}
	}

	return model.DimensionScore{
		Value: clamp01(1 - completeness*m.ClarityFactor),
		Detail: fmt.Sprintf("%d/%d spec elements (completeness %.2f), clarity %.2f",
			present, len(elementOrder), completeness, m.ClarityFactor),
	}
}

// SpecCompleteness sums the weights of the elements that are present
func SpecCompleteness(elements map[model.SpecElement]bool) float64 {
	var total float64
	for _, el := range elementOrder {
		if elements[el] {
			total += ElementWeights[el]
		}
	}
	return total
}
