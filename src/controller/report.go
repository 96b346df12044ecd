package controller

import (
	"os"
	"path/filepath"

	"phase-planner/src/config"
	"phase-planner/src/model"
	"phase-planner/src/service/report"
	"phase-planner/src/util"
)

// ReportController writes serialized reports for downstream consumers
type ReportController struct {
	cfg       config.OutputConfig
	generator *report.Generator
}

// NewReportController creates a new report controller
func NewReportController(cfg *config.Config) *ReportController {
	return &ReportController{
		cfg:       cfg.Output,
		generator: report.NewGenerator(cfg.Planner.HoursPerDay),
	}
}

// GenerateReports writes the report once per configured format and
// returns the written paths
func (c *ReportController) GenerateReports(name string, analysisReport model.AnalysisReport) ([]string, error) {
	util.Debug("Generating reports for %d formats: %v", len(c.cfg.Formats), c.cfg.Formats)
	var outputPaths []string

	for _, format := range c.cfg.Formats {
		output, err := c.generator.Generate(analysisReport, format)
		if err != nil {
			util.Error("Failed to generate %s report: %v", format, err)
			return nil, err
		}

		outputPath := c.getOutputPath(name, format)
		if err := os.MkdirAll(filepath.Dir(outputPath), 0755); err != nil {
			util.Error("Failed to create output directory: %v", err)
			return nil, err
		}

		if err := os.WriteFile(outputPath, []byte(output+"\n"), 0644); err != nil {
			util.Error("Failed to write report to %s: %v", outputPath, err)
			return nil, err
		}

		util.Info("Report written: %s", outputPath)
		outputPaths = append(outputPaths, outputPath)
	}

	return outputPaths, nil
}

// GenerateToString serializes a report in a single format
func (c *ReportController) GenerateToString(analysisReport model.AnalysisReport, format string) (string, error) {
	return c.generator.Generate(analysisReport, format)
}

func (c *ReportController) getOutputPath(name, format string) string {
	ext := format
	if format == "yml" {
		ext = "yaml"
	}
	return filepath.Join(c.cfg.OutputDir, name+"-phase-plan."+ext)
}
