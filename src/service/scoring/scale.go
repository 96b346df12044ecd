package scoring

import (
	"fmt"
	"math"

	"phase-planner/src/model"
)

// ScaleScorer scores expected users, data volume and request throughput
type ScaleScorer struct{}

// Dimension returns the scale dimension
func (ScaleScorer) Dimension() model.Dimension {
	return model.DimensionScale
}

// Score computes log10(users)/7*0.4 + log10(GB)/4*0.6 plus a throughput
// bonus, clamped to [0,1]. Users floor at 1 and data at 0.01 GB.
func (ScaleScorer) Score(m model.MetricsInput) model.DimensionScore {
	users := math.Max(float64(m.ExpectedUsers), 1)
	data := math.Max(m.DataGB, 0.01)

	base := math.Log10(users)/7*0.4 + math.Log10(data)/4*0.6
	bonus := ThroughputBonus(m.ThroughputRPS)

	return model.DimensionScore{
		Value: clamp01(base + bonus),
		Detail: fmt.Sprintf("%d users, %.2f GB, %.0f rps (+%.1f)",
			m.ExpectedUsers, m.DataGB, m.ThroughputRPS, bonus),
	}
}

// ThroughputBonus returns the additive scale bonus for a request rate:
// 0 below 10 rps, 0.1 up to 100, 0.2 up to and including 1000, 0.3 above
func ThroughputBonus(rps float64) float64 {
	switch {
	case rps < 10:
		return 0
	case rps < 100:
		return 0.1
	case rps <= 1000:
		return 0.2
	default:
		return 0.3
	}
}
