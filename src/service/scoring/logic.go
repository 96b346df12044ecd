package scoring

import (
	"fmt"
	"math"

	"phase-planner/src/model"
)

// RuleWeights weight business rules by the amount of logic they imply
var RuleWeights = map[model.RuleCategory]float64{
	model.RuleCRUD:          0.1,
	model.RuleValidation:    0.2,
	model.RuleBusinessLogic: 0.4,
	model.RuleWorkflow:      0.7,
	model.RuleAlgorithm:     1.0,
}

// ruleOrder fixes summation order so results are bit-for-bit repeatable
var ruleOrder = []model.RuleCategory{
	model.RuleCRUD,
	model.RuleValidation,
	model.RuleBusinessLogic,
	model.RuleWorkflow,
	model.RuleAlgorithm,
}

// LogicScorer scores business rule density and branching
type LogicScorer struct{}

// Dimension returns the logic dimension
func (LogicScorer) Dimension() model.Dimension {
	return model.DimensionLogic
}

// Score computes min(1, R/20*0.5 + branches/30*0.5) with R the weighted rule count
func (LogicScorer) Score(m model.MetricsInput) model.DimensionScore {
	r := WeightedRuleCount(m.BusinessRules)
	v := math.Min(1, (r/20)*0.5+(float64(m.BranchCount)/30)*0.5)

	return model.DimensionScore{
		Value:  clamp01(v),
		Detail: fmt.Sprintf("weighted rules %.2f, %d branches", r, m.BranchCount),
	}
}

// WeightedRuleCount sums rule counts by category weight
func WeightedRuleCount(rules map[model.RuleCategory]int) float64 {
	var total float64
	for _, cat := range ruleOrder {
		total += float64(rules[cat]) * RuleWeights[cat]
	}
	return total
}
