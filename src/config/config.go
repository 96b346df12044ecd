package config

// Config is the root configuration structure
type Config struct {
	Agent   AgentConfig   `yaml:"agent"`
	Planner PlannerConfig `yaml:"planner"`
	Gates   GatesConfig   `yaml:"gates"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
}

// AgentConfig contains tool metadata
type AgentConfig struct {
	Name        string `yaml:"name" validate:"required"`
	Version     string `yaml:"version" validate:"required"`
	Description string `yaml:"description"`
}

// PlannerConfig contains phase planning settings
type PlannerConfig struct {
	// VERY_COMPLEX projects get six phases when either threshold is exceeded
	VeryComplexUncertainty float64 `yaml:"very_complex_uncertainty" validate:"gte=0,lte=1"`
	VeryComplexScale       float64 `yaml:"very_complex_scale" validate:"gte=0,lte=1"`

	// DurationHours overrides the per-category total duration, keyed by
	// category name (TRIVIAL, SIMPLE, ...). Missing categories use defaults.
	DurationHours map[string]float64 `yaml:"duration_hours" validate:"dive,keys,oneof=TRIVIAL SIMPLE MODERATE COMPLEX VERY_COMPLEX CRITICAL,endkeys,gte=0"`

	HoursPerDay float64 `yaml:"hours_per_day" validate:"gt=0,lte=24"`
}

// GatesConfig contains validation gate settings
type GatesConfig struct {
	MinMeasurable int      `yaml:"min_measurable" validate:"min=1,max=20"`
	Keywords      []string `yaml:"keywords" validate:"dive,required"`
	ExtraPatterns []string `yaml:"extra_patterns" validate:"dive,required,regexp"`
}

// OutputConfig contains report output settings
type OutputConfig struct {
	Formats   []string `yaml:"formats" validate:"dive,oneof=json yaml"`
	OutputDir string   `yaml:"output_dir"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level            string `yaml:"level" validate:"oneof=debug info warn error"`
	Format           string `yaml:"format" validate:"oneof=text json"`
	File             string `yaml:"file"`
	IncludeTimestamp bool   `yaml:"include_timestamp"`
	IncludeCaller    bool   `yaml:"include_caller"`
}
