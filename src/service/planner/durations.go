package planner

import (
	"fmt"
	"math"

	"phase-planner/src/model"
)

// DurationTable maps each category to the total hours of its plan
type DurationTable map[model.Category]float64

// DefaultDurations returns the midpoint of each category's duration range
func DefaultDurations() DurationTable {
	return DurationTable{
		model.CategoryTrivial:     4,
		model.CategorySimple:      48,
		model.CategoryModerate:    120,
		model.CategoryComplex:     336,
		model.CategoryVeryComplex: 840,
		model.CategoryCritical:    1920,
	}
}

// Hours returns the total hours for a category, falling back to the
// default table when the entry is missing
func (t DurationTable) Hours(c model.Category) float64 {
	if h, ok := t[c]; ok {
		return h
	}
	return DefaultDurations()[c]
}

// Merge returns a new table with the entries of override applied over t
func (t DurationTable) Merge(override DurationTable) DurationTable {
	out := make(DurationTable, len(t)+len(override))
	for c, h := range t {
		out[c] = h
	}
	for c, h := range override {
		out[c] = h
	}
	return out
}

// Validate rejects unknown categories and negative or non-finite hours
func (t DurationTable) Validate() error {
	for c, h := range t {
		if c.Rank() < 0 {
			return fmt.Errorf("duration table: unknown category %q", c)
		}
		if math.IsNaN(h) || math.IsInf(h, 0) || h < 0 {
			return fmt.Errorf("duration table: invalid hours %v for %s", h, c)
		}
	}
	return nil
}

// DurationTableFromConfig converts a name-keyed config map into a table
func DurationTableFromConfig(hours map[string]float64) DurationTable {
	t := make(DurationTable, len(hours))
	for name, h := range hours {
		t[model.Category(name)] = h
	}
	return t
}
