package config

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Agent: AgentConfig{
			Name:        "phase-planner",
			Version:     "1.0.0",
			Description: "Complexity scoring and phase planning engine",
		},
		Planner: PlannerConfig{
			VeryComplexUncertainty: 0.6,
			VeryComplexScale:       0.85,
			DurationHours:          map[string]float64{},
			HoursPerDay:            8,
		},
		Gates: GatesConfig{
			MinMeasurable: 3,
			Keywords: []string{
				"status", "latency", "coverage", "response time", "throughput",
				"error rate", "errors", "uptime", "availability", "tests",
				"passing", "pass", "failures", "p95", "p99", "rps", "ms",
				"seconds", "memory", "cpu", "count", "score", "warnings",
			},
		},
		Output: OutputConfig{
			Formats:   []string{"json"},
			OutputDir: "",
		},
		Logging: LoggingConfig{
			Level:            "info",
			Format:           "text",
			IncludeTimestamp: true,
			IncludeCaller:    false,
		},
	}
}
