package scoring

import "phase-planner/src/model"

// Composite weights (sum to 1.0)
const (
	WeightStructure     = 0.20
	WeightLogic         = 0.25
	WeightIntegration   = 0.20
	WeightScale         = 0.15
	WeightUncertainty   = 0.10
	WeightTechnicalDebt = 0.10
)

// CompositeWeights maps each dimension to its composite weight
var CompositeWeights = map[model.Dimension]float64{
	model.DimensionStructure:     WeightStructure,
	model.DimensionLogic:         WeightLogic,
	model.DimensionIntegration:   WeightIntegration,
	model.DimensionScale:         WeightScale,
	model.DimensionUncertainty:   WeightUncertainty,
	model.DimensionTechnicalDebt: WeightTechnicalDebt,
}

// Composite combines dimension scores into the overall score at full
// precision. Missing dimensions contribute 0.
func Composite(scores map[model.Dimension]model.DimensionScore) float64 {
	return scores[model.DimensionStructure].Value*WeightStructure +
		scores[model.DimensionLogic].Value*WeightLogic +
		scores[model.DimensionIntegration].Value*WeightIntegration +
		scores[model.DimensionScale].Value*WeightScale +
		scores[model.DimensionUncertainty].Value*WeightUncertainty +
		scores[model.DimensionTechnicalDebt].Value*WeightTechnicalDebt
}
