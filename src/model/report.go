package model

// Dimension names one of the six independent complexity axes
type Dimension string

const (
	DimensionStructure     Dimension = "structure"
	DimensionLogic         Dimension = "logic"
	DimensionIntegration   Dimension = "integration"
	DimensionScale         Dimension = "scale"
	DimensionUncertainty   Dimension = "uncertainty"
	DimensionTechnicalDebt Dimension = "technical_debt"
)

// Dimensions lists every dimension in report order
var Dimensions = []Dimension{
	DimensionStructure,
	DimensionLogic,
	DimensionIntegration,
	DimensionScale,
	DimensionUncertainty,
	DimensionTechnicalDebt,
}

// Category is the ordinal complexity class of a project
type Category string

const (
	CategoryTrivial     Category = "TRIVIAL"
	CategorySimple      Category = "SIMPLE"
	CategoryModerate    Category = "MODERATE"
	CategoryComplex     Category = "COMPLEX"
	CategoryVeryComplex Category = "VERY_COMPLEX"
	CategoryCritical    Category = "CRITICAL"
)

// Categories lists every category from least to most complex
var Categories = []Category{
	CategoryTrivial,
	CategorySimple,
	CategoryModerate,
	CategoryComplex,
	CategoryVeryComplex,
	CategoryCritical,
}

// Rank returns the ordinal position of the category, or -1 if unknown
func (c Category) Rank() int {
	for i, cat := range Categories {
		if cat == c {
			return i
		}
	}
	return -1
}

// RiskLevel returns the delivery risk associated with the category
func (c Category) RiskLevel() string {
	switch c {
	case CategoryTrivial, CategorySimple:
		return "low"
	case CategoryModerate:
		return "medium"
	case CategoryComplex, CategoryVeryComplex:
		return "high"
	case CategoryCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// TeamSize returns the recommended team size range for the category
func (c Category) TeamSize() string {
	switch c {
	case CategoryTrivial:
		return "1"
	case CategorySimple:
		return "1-2"
	case CategoryModerate:
		return "2-3"
	case CategoryComplex:
		return "3-5"
	case CategoryVeryComplex:
		return "5-8"
	case CategoryCritical:
		return "8+"
	default:
		return "unknown"
	}
}

// DimensionScore is a single [0,1] score with an explanation
type DimensionScore struct {
	Value  float64 `json:"score" yaml:"score"`
	Detail string  `json:"details" yaml:"details"`
}

// ComplexityReport is the result of scoring one MetricsInput
type ComplexityReport struct {
	OverallScore float64                      `json:"overall_score"`
	Category     Category                     `json:"category"`
	Dimensions   map[Dimension]DimensionScore `json:"dimensions"`
	Confidence   float64                      `json:"confidence"`
}

// Score returns the value of a dimension, or 0 if it is absent
func (r ComplexityReport) Score(d Dimension) float64 {
	return r.Dimensions[d].Value
}

// Phase is one named slice of the delivery timeline
type Phase struct {
	Name          string  `json:"name"`
	Percentage    float64 `json:"percentage"`
	DurationHours float64 `json:"duration_hours"`
}

// PhasePlan is an ordered set of phases whose percentages sum to 100
type PhasePlan struct {
	PhaseCount         int      `json:"phase_count"`
	Phases             []Phase  `json:"phases"`
	TotalDurationHours float64  `json:"total_duration_hours"`
	Adjustments        []string `json:"adjustments,omitempty"`
}

// TotalPercentage sums the percentages of every phase
func (p PhasePlan) TotalPercentage() float64 {
	var total float64
	for _, ph := range p.Phases {
		total += ph.Percentage
	}
	return total
}

// GateValidationResult is the outcome of checking a phase's gates
type GateValidationResult struct {
	Phase           string   `json:"phase"`
	Valid           bool     `json:"valid"`
	MeasurableCount int      `json:"measurable_count"`
	Required        int      `json:"required"`
	Rejected        []string `json:"rejected"`
}
