package model

// AnalysisReport is the serialized form handed to persistence and display
// collaborators. Field names are part of the external contract.
type AnalysisReport struct {
	OverallScore        float64                   `json:"overall_score" yaml:"overall_score"`
	Category            Category                  `json:"category" yaml:"category"`
	Dimensions          map[string]DimensionScore `json:"dimensions" yaml:"dimensions"`
	PhasePlan           PhasePlanSummary          `json:"phase_plan" yaml:"phase_plan"`
	RiskLevel           string                    `json:"risk_level" yaml:"risk_level"`
	RecommendedTeamSize string                    `json:"recommended_team_size" yaml:"recommended_team_size"`
	Confidence          float64                   `json:"confidence" yaml:"confidence"`
}

// PhasePlanSummary is the serialized phase plan
type PhasePlanSummary struct {
	Count              int                        `json:"count" yaml:"count"`
	Distribution       map[string]PhaseAllocation `json:"distribution" yaml:"distribution"`
	TotalDurationHours float64                    `json:"total_duration_hours" yaml:"total_duration_hours"`
	TotalDurationDays  float64                    `json:"total_duration_days" yaml:"total_duration_days"`
}

// PhaseAllocation is one entry of the serialized distribution, keyed phase_<n>
type PhaseAllocation struct {
	Name          string  `json:"name" yaml:"name"`
	Percentage    int     `json:"percentage" yaml:"percentage"`
	DurationHours float64 `json:"duration_hours" yaml:"duration_hours"`
}
