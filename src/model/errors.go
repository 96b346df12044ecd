package model

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInsufficientGates is reported when a phase has too few measurable gates
var ErrInsufficientGates = errors.New("insufficient measurable gates")

// FieldViolation describes one rejected MetricsInput field
type FieldViolation struct {
	Field string
	Rule  string
	Value any
}

func (v FieldViolation) String() string {
	return fmt.Sprintf("%s: failed %q (value: %v)", v.Field, v.Rule, v.Value)
}

// InvalidMetricsError is returned when raw metrics are malformed or out of
// range. No score is computed when it is returned.
type InvalidMetricsError struct {
	Violations []FieldViolation
}

func (e *InvalidMetricsError) Error() string {
	if len(e.Violations) == 0 {
		return "invalid metrics"
	}
	parts := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		parts[i] = v.String()
	}
	return "invalid metrics: " + strings.Join(parts, "; ")
}

// NonMeasurableGateError identifies a gate that has no numeric criterion
type NonMeasurableGateError struct {
	Phase string
	Gate  string
}

func (e *NonMeasurableGateError) Error() string {
	return fmt.Sprintf("phase %s: gate is not measurable: %q", e.Phase, e.Gate)
}

// PhaseSumInvariantError signals that an adjusted plan no longer sums to
// 100. It indicates a bug in the planner and must never be corrected.
type PhaseSumInvariantError struct {
	PhaseCount int
	Sum        float64
}

func (e *PhaseSumInvariantError) Error() string {
	return fmt.Sprintf("phase plan invariant violated: %d phases sum to %.6f, want 100 (this is a bug)", e.PhaseCount, e.Sum)
}

// Err converts a failed gate validation into an error, or nil if valid.
// The result wraps ErrInsufficientGates and one NonMeasurableGateError per
// rejected gate.
func (r GateValidationResult) Err() error {
	if r.Valid {
		return nil
	}
	errs := []error{
		fmt.Errorf("phase %s: %w (%d of %d)", r.Phase, ErrInsufficientGates, r.MeasurableCount, r.Required),
	}
	for _, g := range r.Rejected {
		errs = append(errs, &NonMeasurableGateError{Phase: r.Phase, Gate: g})
	}
	return errors.Join(errs...)
}
