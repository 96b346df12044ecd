package model

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validMetrics() MetricsInput {
	return MetricsInput{
		FileCount:           12,
		ModuleDepth:         2,
		ArchitecturePattern: PatternLayered,
		BusinessRules:       map[RuleCategory]int{RuleCRUD: 4, RuleWorkflow: 1},
		BranchCount:         6,
		Integrations:        map[IntegrationType]int{IntegrationDatabase: 1},
		AuthTypeCount:       1,
		ExpectedUsers:       500,
		DataGB:              2,
		ThroughputRPS:       5,
		SpecCompletenessElements: map[SpecElement]bool{
			ElementGoal:        true,
			ElementUserStories: false,
		},
		ClarityFactor:      0.8,
		LegacyFileRatio:    0,
		DeprecatedDepRatio: 0.1,
	}
}

func TestMetricsInput_Validate(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		mutate    func(m *MetricsInput)
		wantField string
	}{
		"valid input": {
			mutate: func(m *MetricsInput) {},
		},
		"zero value maps are valid": {
			mutate: func(m *MetricsInput) {
				m.BusinessRules = nil
				m.Integrations = nil
				m.SpecCompletenessElements = nil
			},
		},
		"negative file count": {
			mutate:    func(m *MetricsInput) { m.FileCount = -1 },
			wantField: "file_count",
		},
		"negative branch count": {
			mutate:    func(m *MetricsInput) { m.BranchCount = -3 },
			wantField: "branch_count",
		},
		"negative users": {
			mutate:    func(m *MetricsInput) { m.ExpectedUsers = -10 },
			wantField: "expected_users",
		},
		"clarity above one": {
			mutate:    func(m *MetricsInput) { m.ClarityFactor = 1.5 },
			wantField: "clarity_factor",
		},
		"legacy ratio below zero": {
			mutate:    func(m *MetricsInput) { m.LegacyFileRatio = -0.1 },
			wantField: "legacy_file_ratio",
		},
		"deprecated ratio NaN": {
			mutate:    func(m *MetricsInput) { m.DeprecatedDepRatio = math.NaN() },
			wantField: "deprecated_dep_ratio",
		},
		"infinite data volume": {
			mutate:    func(m *MetricsInput) { m.DataGB = math.Inf(1) },
			wantField: "data_gb",
		},
		"unknown architecture": {
			mutate:    func(m *MetricsInput) { m.ArchitecturePattern = "serverless" },
			wantField: "architecture_pattern",
		},
		"missing architecture": {
			mutate:    func(m *MetricsInput) { m.ArchitecturePattern = "" },
			wantField: "architecture_pattern",
		},
		"negative rule count": {
			mutate:    func(m *MetricsInput) { m.BusinessRules[RuleCRUD] = -1 },
			wantField: "business_rules",
		},
		"unknown rule category": {
			mutate:    func(m *MetricsInput) { m.BusinessRules["magic"] = 1 },
			wantField: "business_rules",
		},
		"unknown integration type": {
			mutate:    func(m *MetricsInput) { m.Integrations["ftp"] = 1 },
			wantField: "integrations",
		},
		"unknown spec element": {
			mutate:    func(m *MetricsInput) { m.SpecCompletenessElements["wireframes"] = true },
			wantField: "spec_completeness_elements",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			m := validMetrics()
			tt.mutate(&m)
			err := m.Validate()

			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			var invalid *InvalidMetricsError
			require.True(t, errors.As(err, &invalid))
			require.NotEmpty(t, invalid.Violations)

			found := false
			for _, v := range invalid.Violations {
				if strings.HasPrefix(v.Field, tt.wantField) {
					found = true
				}
			}
			assert.True(t, found, "no violation for %s in %v", tt.wantField, invalid.Violations)
			assert.Contains(t, err.Error(), tt.wantField)
		})
	}
}

func TestMetricsInput_ValidateReportsAllViolations(t *testing.T) {
	t.Parallel()

	m := validMetrics()
	m.FileCount = -1
	m.ModuleDepth = -1
	m.ClarityFactor = 2

	err := m.Validate()
	var invalid *InvalidMetricsError
	require.ErrorAs(t, err, &invalid)
	assert.Len(t, invalid.Violations, 3)
}
