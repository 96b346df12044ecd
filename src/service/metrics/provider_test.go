package metrics

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"phase-planner/src/model"
)

const yamlMetrics = `file_count: 12
module_depth: 3
architecture_pattern: layered
business_rules:
  crud: 4
  workflow: 1
branch_count: 9
integrations:
  database: 1
auth_type_count: 1
expected_users: 500
data_gb: 2.5
throughput_rps: 20
spec_completeness_elements:
  goal: true
  data_model: false
clarity_factor: 0.75
legacy_file_ratio: 0
deprecated_dep_ratio: 0.1
`

const jsonMetrics = `{
  "file_count": 12,
  "module_depth": 3,
  "architecture_pattern": "layered",
  "business_rules": {"crud": 4, "workflow": 1},
  "branch_count": 9,
  "integrations": {"database": 1},
  "auth_type_count": 1,
  "expected_users": 500,
  "data_gb": 2.5,
  "throughput_rps": 20,
  "spec_completeness_elements": {"goal": true, "data_model": false},
  "clarity_factor": 0.75,
  "legacy_file_ratio": 0,
  "deprecated_dep_ratio": 0.1
}`

func expectedMetrics() model.MetricsInput {
	return model.MetricsInput{
		FileCount:                12,
		ModuleDepth:              3,
		ArchitecturePattern:      model.PatternLayered,
		BusinessRules:            map[model.RuleCategory]int{model.RuleCRUD: 4, model.RuleWorkflow: 1},
		BranchCount:              9,
		Integrations:             map[model.IntegrationType]int{model.IntegrationDatabase: 1},
		AuthTypeCount:            1,
		ExpectedUsers:            500,
		DataGB:                   2.5,
		ThroughputRPS:            20,
		SpecCompletenessElements: map[model.SpecElement]bool{model.ElementGoal: true, model.ElementDataModel: false},
		ClarityFactor:            0.75,
		DeprecatedDepRatio:       0.1,
	}
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestFileProvider_Extract(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		name    string
		content string
	}{
		"yaml extension":      {name: "metrics.yaml", content: yamlMetrics},
		"yml extension":       {name: "metrics.yml", content: yamlMetrics},
		"json extension":      {name: "metrics.json", content: jsonMetrics},
		"sniffed json":        {name: "metrics", content: jsonMetrics},
		"sniffed yaml":        {name: "metrics.txt", content: yamlMetrics},
		"uppercase extension": {name: "METRICS.JSON", content: jsonMetrics},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			p := NewFileProvider(writeFile(t, tt.name, tt.content))
			got, err := p.Extract(context.Background())
			require.NoError(t, err)
			assert.Equal(t, expectedMetrics(), got)
		})
	}
}

func TestFileProvider_ExtractErrors(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		name    string
		content string
		errMsg  string
	}{
		"unknown json field": {name: "m.json", content: `{"file_count": 1, "lines_of_code": 9000}`, errMsg: "parsing metrics json"},
		"unknown yaml field": {name: "m.yaml", content: "file_count: 1\nlines_of_code: 9000\n", errMsg: "parsing metrics yaml"},
		"malformed json":     {name: "m.json", content: `{"file_count": `, errMsg: "parsing metrics json"},
		"wrong type":         {name: "m.yaml", content: "file_count: many\n", errMsg: "parsing metrics yaml"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			_, err := NewFileProvider(writeFile(t, tt.name, tt.content)).Extract(context.Background())
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestFileProvider_MissingFile(t *testing.T) {
	t.Parallel()

	p := NewFileProvider(filepath.Join(t.TempDir(), "absent.yaml"))
	_, err := p.Extract(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading metrics")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestFileProvider_CancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewFileProvider(writeFile(t, "m.yaml", yamlMetrics)).Extract(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDecode_UnsupportedFormat(t *testing.T) {
	t.Parallel()

	_, err := Decode([]byte(jsonMetrics), "toml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported metrics format")
}

func TestStaticExtractor(t *testing.T) {
	t.Parallel()

	want := expectedMetrics()
	got, err := StaticExtractor(want).Extract(context.Background())
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
