package util

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"phase-planner/src/config"
)

func TestMeasurableMatcher_Match(t *testing.T) {
	t.Parallel()

	m := NewMeasurableMatcher(config.DefaultConfig().Gates)

	tests := map[string]struct {
		gate     string
		want     bool
		wantRule string
	}{
		"percentage":             {gate: "Test coverage reaches 80%", want: true, wantRule: "percentage"},
		"decimal percentage":     {gate: "Error rate stays at 0.5 %", want: true, wantRule: "percentage"},
		"status code":            {gate: "GET /health returns status 200", want: true, wantRule: "status_code"},
		"http code":              {gate: "Unauthorized requests get HTTP 401", want: true, wantRule: "status_code"},
		"symbolic operator":      {gate: "p95 latency <= 250 ms", want: true, wantRule: "operator"},
		"comparison words":       {gate: "Page loads in under 2 seconds", want: true, wantRule: "comparison"},
		"at least":               {gate: "At least 3 reviewers approve the design", want: true, wantRule: "comparison"},
		"keyword with number":    {gate: "All 42 unit tests green", want: true, wantRule: "keyword"},
		"keyword is case blind":  {gate: "LATENCY budget of 150", want: true, wantRule: "keyword"},
		"vague":                  {gate: "Code is clean and readable", want: false},
		"number without metric":  {gate: "Phase 2 complete", want: false},
		"keyword without number": {gate: "Coverage is good", want: false},
		"blank":                  {gate: "   ", want: false},
		"empty":                  {gate: "", want: false},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			ok, rule := m.Match(tt.gate)
			assert.Equal(t, tt.want, ok)
			if tt.wantRule != "" {
				assert.Equal(t, tt.wantRule, rule)
			}
		})
	}
}

func TestMeasurableMatcher_ExtraPatterns(t *testing.T) {
	t.Parallel()

	cfg := config.GatesConfig{
		ExtraPatterns: []string{`(?i)\bzero (?:errors|warnings)\b`, `([invalid`},
	}
	m := NewMeasurableMatcher(cfg)

	ok, rule := m.Match("Build finishes with zero warnings")
	assert.True(t, ok)
	assert.Equal(t, "custom", rule)

	ok, rule = m.Match("latency 100")
	assert.True(t, ok, "empty keyword list falls back to the defaults")
	assert.Equal(t, "keyword", rule)
}

func TestMeasurableMatcher_EmptyKeywordsUseDefaults(t *testing.T) {
	t.Parallel()

	for name, cfg := range map[string]config.GatesConfig{
		"nil keywords":   {},
		"empty keywords": {Keywords: []string{}},
		"blank keywords": {Keywords: []string{" ", ""}},
	} {
		ok, rule := NewMeasurableMatcher(cfg).Match("All 12 tests passing")
		assert.True(t, ok, name)
		assert.Equal(t, "keyword", rule, name)
	}
}

func TestMeasurableMatcher_IgnoresIncidentalNumbers(t *testing.T) {
	t.Parallel()

	m := NewMeasurableMatcher(config.DefaultConfig().Gates)

	for _, gate := range []string{
		"1. Tests are written",
		"2. Docs pass review",
		"3. Status page updated",
		"Step 4: Status page updated",
		"- 5) Coverage is good",
		"Refactor code in 200 files",
		"Latency is acceptable, see ticket 4521",
		"p95 latency looks fine",
		"Errors are handled for module 7 and onwards in the backlog",
	} {
		ok, rule := m.Match(gate)
		assert.False(t, ok, "%q matched %s", gate, rule)
	}
}

func TestMeasurableMatcher_NumberNearKeyword(t *testing.T) {
	t.Parallel()

	m := NewMeasurableMatcher(config.DefaultConfig().Gates)

	for _, gate := range []string{
		"1. All 42 unit tests pass",
		"Step 2: latency budget of 150",
		"Uptime 99.95 over the quarter",
		"3) 0 errors in the nightly run",
		"Status code 204 for deletes",
	} {
		ok, _ := m.Match(gate)
		assert.True(t, ok, gate)
	}
}

func TestStripListMarker(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		in   string
		want string
	}{
		"dotted":          {in: "1. Tests are written", want: "Tests are written"},
		"parenthesis":     {in: "2) Docs", want: "Docs"},
		"step prefix":     {in: "Step 3: Deploy", want: "Deploy"},
		"bullet number":   {in: "- 4. Ship", want: "Ship"},
		"decimal kept":    {in: "99.9% uptime", want: "99.9% uptime"},
		"quantity kept":   {in: "200 requests per second", want: "200 requests per second"},
		"plain unchanged": {in: "Coverage at 80%", want: "Coverage at 80%"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, StripListMarker(tt.in))
		})
	}
}
