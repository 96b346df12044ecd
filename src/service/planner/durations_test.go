package planner

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"phase-planner/src/model"
)

func TestDurationTable_Hours(t *testing.T) {
	t.Parallel()

	table := DurationTable{model.CategoryModerate: 100}
	assert.Equal(t, 100.0, table.Hours(model.CategoryModerate))
	assert.Equal(t, 336.0, table.Hours(model.CategoryComplex))

	var empty DurationTable
	assert.Equal(t, 4.0, empty.Hours(model.CategoryTrivial))
}

func TestDurationTable_Merge(t *testing.T) {
	t.Parallel()

	base := DefaultDurations()
	merged := base.Merge(DurationTable{model.CategorySimple: 1})

	assert.Equal(t, 1.0, merged[model.CategorySimple])
	assert.Equal(t, 48.0, base[model.CategorySimple])
	assert.Len(t, merged, len(model.Categories))
}

func TestDurationTable_Validate(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		table   DurationTable
		wantErr bool
	}{
		"nil":              {table: nil},
		"defaults":         {table: DefaultDurations()},
		"zero hours":       {table: DurationTable{model.CategoryTrivial: 0}},
		"negative":         {table: DurationTable{model.CategoryTrivial: -4}, wantErr: true},
		"nan":              {table: DurationTable{model.CategoryTrivial: math.NaN()}, wantErr: true},
		"infinite":         {table: DurationTable{model.CategoryCritical: math.Inf(1)}, wantErr: true},
		"unknown category": {table: DurationTable{"GIGANTIC": 10}, wantErr: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			err := tt.table.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestDurationTableFromConfig(t *testing.T) {
	t.Parallel()

	table := DurationTableFromConfig(map[string]float64{"SIMPLE": 30})
	assert.Equal(t, DurationTable{model.CategorySimple: 30}, table)
	assert.NoError(t, table.Validate())
}
