package controller

import (
	"context"
	"fmt"
	"time"

	"phase-planner/src/config"
	"phase-planner/src/model"
	"phase-planner/src/service/gates"
	"phase-planner/src/service/metrics"
	"phase-planner/src/service/planner"
	"phase-planner/src/service/report"
	"phase-planner/src/service/scoring"
	"phase-planner/src/util"
)

// AnalysisController is the engine entry point. It holds only immutable
// configuration and is safe for concurrent use.
type AnalysisController struct {
	runner    *scoring.Runner
	planner   *planner.Planner
	gates     *gates.Validator
	generator *report.Generator
}

// NewAnalysisController creates an analysis controller from configuration
func NewAnalysisController(cfg *config.Config) *AnalysisController {
	durations := planner.DurationTableFromConfig(cfg.Planner.DurationHours)
	return &AnalysisController{
		runner:    scoring.NewRunner(),
		planner:   planner.New(planner.OptionsFromConfig(cfg.Planner), durations),
		gates:     gates.NewValidator(cfg.Gates),
		generator: report.NewGenerator(cfg.Planner.HoursPerDay),
	}
}

// ComputeComplexity scores the metrics. Invalid input returns
// *model.InvalidMetricsError before anything is scored.
func (c *AnalysisController) ComputeComplexity(m model.MetricsInput) (model.ComplexityReport, error) {
	r, err := c.runner.Compute(m)
	if err != nil {
		util.Debug("Rejected metrics: %v", err)
		return model.ComplexityReport{}, err
	}
	util.Debug("Complexity %.4f (%s), confidence %.2f", r.OverallScore, r.Category, r.Confidence)
	return r, nil
}

// PlanPhases derives the phase plan for a report. durations may be nil.
func (c *AnalysisController) PlanPhases(r model.ComplexityReport, durations planner.DurationTable) (model.PhasePlan, error) {
	plan, err := c.planner.Plan(r, durations)
	if err != nil {
		util.Error("Phase planning failed: %v", err)
		return model.PhasePlan{}, err
	}
	util.Debug("Planned %d phases (%.0fh), adjustments: %v", plan.PhaseCount, plan.TotalDurationHours, plan.Adjustments)
	return plan, nil
}

// ValidateGates checks the gates supplied for a phase
func (c *AnalysisController) ValidateGates(phase string, gateTexts []string) model.GateValidationResult {
	res := c.gates.Validate(phase, gateTexts)
	if !res.Valid {
		util.Debug("Phase %s has %d/%d measurable gates, %d rejected",
			phase, res.MeasurableCount, res.Required, len(res.Rejected))
	}
	return res
}

// Analyze runs scoring and planning and assembles the serialized report
func (c *AnalysisController) Analyze(m model.MetricsInput) (model.AnalysisReport, error) {
	r, err := c.ComputeComplexity(m)
	if err != nil {
		return model.AnalysisReport{}, err
	}
	plan, err := c.PlanPhases(r, nil)
	if err != nil {
		return model.AnalysisReport{}, err
	}
	return c.generator.Assemble(r, plan), nil
}

// AnalyzeFrom pulls metrics from an extractor and analyzes them
func (c *AnalysisController) AnalyzeFrom(ctx context.Context, ex metrics.Extractor) (model.AnalysisReport, error) {
	startTime := time.Now()

	m, err := ex.Extract(ctx)
	if err != nil {
		return model.AnalysisReport{}, fmt.Errorf("extracting metrics: %w", err)
	}

	out, err := c.Analyze(m)
	if err != nil {
		return model.AnalysisReport{}, err
	}

	util.Info("Analysis complete: %s (score %.3f, %d phases, took %v)",
		out.Category, out.OverallScore, out.PhasePlan.Count, time.Since(startTime))
	return out, nil
}

// Dimensions lists the scored dimensions in report order
func (c *AnalysisController) Dimensions() []model.Dimension {
	return c.runner.ListDimensions()
}
