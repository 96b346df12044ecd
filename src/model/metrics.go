package model

// ArchitecturePattern is the dominant architectural style of a project
type ArchitecturePattern string

const (
	PatternMonolith      ArchitecturePattern = "monolith"
	PatternLayered       ArchitecturePattern = "layered"
	PatternMicroservices ArchitecturePattern = "microservices"
	PatternEventDriven   ArchitecturePattern = "event_driven"
)

// RuleCategory classifies business rules by how much logic they carry
type RuleCategory string

const (
	RuleCRUD          RuleCategory = "crud"
	RuleValidation    RuleCategory = "validation"
	RuleBusinessLogic RuleCategory = "business_logic"
	RuleWorkflow      RuleCategory = "workflow"
	RuleAlgorithm     RuleCategory = "algorithm"
)

// IntegrationType is a kind of external system the project talks to
type IntegrationType string

const (
	IntegrationDatabase     IntegrationType = "database"
	IntegrationRESTAPI      IntegrationType = "rest_api"
	IntegrationGraphQL      IntegrationType = "graphql"
	IntegrationQueue        IntegrationType = "queue"
	IntegrationWebSocket    IntegrationType = "websocket"
	IntegrationFileStorage  IntegrationType = "file_storage"
	IntegrationMessaging    IntegrationType = "messaging"
	IntegrationAuthProvider IntegrationType = "auth_provider"
)

// SpecElement is a section a specification may or may not contain
type SpecElement string

const (
	ElementGoal               SpecElement = "goal"
	ElementUserStories        SpecElement = "user_stories"
	ElementTechRequirements   SpecElement = "tech_requirements"
	ElementDataModel          SpecElement = "data_model"
	ElementAPIContracts       SpecElement = "api_contracts"
	ElementAcceptanceCriteria SpecElement = "acceptance_criteria"
)

// MetricsInput contains the structural and quantitative signals for one
// analysis. It is produced upstream (usually by an LLM-backed extractor)
// and treated as read-only by the engine.
type MetricsInput struct {
	// Structure
	FileCount           int                 `json:"file_count" yaml:"file_count" validate:"gte=0"`
	ModuleDepth         int                 `json:"module_depth" yaml:"module_depth" validate:"gte=0"`
	ArchitecturePattern ArchitecturePattern `json:"architecture_pattern" yaml:"architecture_pattern" validate:"required,oneof=monolith layered microservices event_driven"`

	// Logic
	BusinessRules map[RuleCategory]int `json:"business_rules" yaml:"business_rules" validate:"dive,keys,oneof=crud validation business_logic workflow algorithm,endkeys,gte=0"`
	BranchCount   int                  `json:"branch_count" yaml:"branch_count" validate:"gte=0"`

	// Integration
	Integrations  map[IntegrationType]int `json:"integrations" yaml:"integrations" validate:"dive,keys,oneof=database rest_api graphql queue websocket file_storage messaging auth_provider,endkeys,gte=0"`
	AuthTypeCount int                     `json:"auth_type_count" yaml:"auth_type_count" validate:"gte=0"`

	// Scale
	ExpectedUsers int64   `json:"expected_users" yaml:"expected_users" validate:"gte=0"`
	DataGB        float64 `json:"data_gb" yaml:"data_gb" validate:"finite,gte=0"`
	ThroughputRPS float64 `json:"throughput_rps" yaml:"throughput_rps" validate:"finite,gte=0"`

	// Uncertainty
	SpecCompletenessElements map[SpecElement]bool `json:"spec_completeness_elements" yaml:"spec_completeness_elements" validate:"dive,keys,oneof=goal user_stories tech_requirements data_model api_contracts acceptance_criteria,endkeys"`
	ClarityFactor            float64              `json:"clarity_factor" yaml:"clarity_factor" validate:"finite,gte=0,lte=1"`

	// Technical debt
	LegacyFileRatio    float64 `json:"legacy_file_ratio" yaml:"legacy_file_ratio" validate:"finite,gte=0,lte=1"`
	DeprecatedDepRatio float64 `json:"deprecated_dep_ratio" yaml:"deprecated_dep_ratio" validate:"finite,gte=0,lte=1"`
}
