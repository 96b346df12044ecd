package scoring

import (
	"fmt"
	"math"

	"phase-planner/src/model"
)

// PatternMultipliers scale the structure score by architectural style
var PatternMultipliers = map[model.ArchitecturePattern]float64{
	model.PatternMonolith:      1.0,
	model.PatternLayered:       1.1,
	model.PatternMicroservices: 1.3,
	model.PatternEventDriven:   1.4,
}

const (
	structureFileNorm    = 50.0
	structureDepthNorm   = 5.0
	structureFileWeight  = 0.4
	structureDepthWeight = 0.6
)

// StructureScorer scores codebase size and layering
type StructureScorer struct{}

// Dimension returns the structure dimension
func (StructureScorer) Dimension() model.Dimension {
	return model.DimensionStructure
}

// Score computes min(1, files/50*0.4 + depth/5*0.6) * multiplier, clamped
func (StructureScorer) Score(m model.MetricsInput) model.DimensionScore {
	base := math.Min(1,
		float64(m.FileCount)/structureFileNorm*structureFileWeight+
			float64(m.ModuleDepth)/structureDepthNorm*structureDepthWeight)

	mult, ok := PatternMultipliers[m.ArchitecturePattern]
	if !ok {
		mult = 1.0
	}

	return model.DimensionScore{
		Value: clamp01(base * mult),
		Detail: fmt.Sprintf("%d files, module depth %d, %s architecture (x%.2f)",
			m.FileCount, m.ModuleDepth, m.ArchitecturePattern, mult),
	}
}
