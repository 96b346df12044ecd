package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

var envVarPattern = regexp.MustCompile(`\$\{([a-zA-Z_][a-zA-Z0-9_]*)(?::-([^}]*))?\}`)

// Loader handles configuration loading from YAML files
type Loader struct {
	validate *validator.Validate
}

// NewLoader creates a new configuration loader
func NewLoader() *Loader {
	v := validator.New()
	_ = v.RegisterValidation("regexp", validateRegexp)
	return &Loader{validate: v}
}

// validateRegexp accepts strings that compile as regular expressions
func validateRegexp(fl validator.FieldLevel) bool {
	_, err := regexp.Compile(fl.Field().String())
	return err == nil
}

// Load loads configuration from a YAML file with environment variable substitution.
// Environment variables can be referenced in the YAML using:
//   - ${VAR_NAME} - substitutes the value of VAR_NAME, empty string if not set
//   - ${VAR_NAME:-default} - substitutes VAR_NAME or "default" if not set
//
// A .env file next to the config file is loaded first; variables already
// set in the environment take precedence over it.
//
// Values absent from the file keep their defaults. The merged result is
// validated before it is returned.
func (l *Loader) Load(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	filePath := l.resolveConfigPath(configPath)
	if filePath != "" {
		if err := l.loadDotEnv(filePath); err != nil {
			return nil, err
		}

		data, err := os.ReadFile(filePath)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}

		expanded := l.expandEnvVars(string(data))
		if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
			return nil, fmt.Errorf("parsing config file %s: %w", filePath, err)
		}
	}

	if err := l.Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks a configuration against its field rules
func (l *Loader) Validate(cfg *Config) error {
	if err := l.validate.Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	return nil
}

func (l *Loader) resolveConfigPath(configPath string) string {
	if configPath != "" {
		return configPath
	}

	defaults := []string{
		"phase-planner.yaml",
		filepath.Join("config", "phase-planner.yaml"),
	}
	if home, err := os.UserHomeDir(); err == nil {
		defaults = append(defaults, filepath.Join(home, ".phase-planner", "config.yaml"))
	}

	for _, path := range defaults {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// loadDotEnv exports the variables of the .env file beside configFile, if any
func (l *Loader) loadDotEnv(configFile string) error {
	envFile := filepath.Join(filepath.Dir(configFile), ".env")
	if _, err := os.Stat(envFile); err != nil {
		return nil
	}
	if err := godotenv.Load(envFile); err != nil {
		return fmt.Errorf("loading %s: %w", envFile, err)
	}
	return nil
}

// expandEnvVars expands ${VAR} and ${VAR:-default} references in the input
func (l *Loader) expandEnvVars(input string) string {
	return envVarPattern.ReplaceAllStringFunc(input, func(match string) string {
		submatches := envVarPattern.FindStringSubmatch(match)
		if len(submatches) < 2 {
			return match
		}

		if val, exists := os.LookupEnv(submatches[1]); exists {
			return val
		}
		if len(submatches) >= 3 {
			return submatches[2]
		}
		return ""
	})
}
