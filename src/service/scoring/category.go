package scoring

import "phase-planner/src/model"

// categoryBand is a lower-bound inclusive score band
type categoryBand struct {
	lower    float64
	category model.Category
}

// categoryBands is ordered from the highest lower bound down
var categoryBands = []categoryBand{
	{0.90, model.CategoryCritical},
	{0.75, model.CategoryVeryComplex},
	{0.60, model.CategoryComplex},
	{0.40, model.CategoryModerate},
	{0.20, model.CategorySimple},
}

// Classify maps an overall score to its category. Scores below 0.20,
// including negative or NaN input, are TRIVIAL.
func Classify(overall float64) model.Category {
	for _, b := range categoryBands {
		if overall >= b.lower {
			return b.category
		}
	}
	return model.CategoryTrivial
}

// Confidence is how far the estimate rests on a complete and clear
// specification: 1 - uncertainty
func Confidence(scores map[model.Dimension]model.DimensionScore) float64 {
	return clamp01(1 - scores[model.DimensionUncertainty].Value)
}
