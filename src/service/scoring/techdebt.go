package scoring

import (
	"fmt"
	"math"

	"phase-planner/src/model"
)

// TechnicalDebtScorer scores legacy code and outdated dependencies
type TechnicalDebtScorer struct{}

// Dimension returns the technical debt dimension
func (TechnicalDebtScorer) Dimension() model.Dimension {
	return model.DimensionTechnicalDebt
}

// Score computes min(1, legacy*0.6 + deprecated*0.4)
func (TechnicalDebtScorer) Score(m model.MetricsInput) model.DimensionScore {
	v := math.Min(1, m.LegacyFileRatio*0.6+m.DeprecatedDepRatio*0.4)
	return model.DimensionScore{
		Value: clamp01(v),
		Detail: fmt.Sprintf("%.0f%% legacy files, %.0f%% deprecated dependencies",
			m.LegacyFileRatio*100, m.DeprecatedDepRatio*100),
	}
}
