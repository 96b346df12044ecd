package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"phase-planner/src/controller"
	"phase-planner/src/service/metrics"
	"phase-planner/src/util"
)

func (h *Handler) analyzeCmd() *cobra.Command {
	var (
		metricsFile string
		outputDir   string
		format      string
		name        string
		timeout     time.Duration
	)

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Score a metrics document and plan its phases",
		Long: "Reads a MetricsInput document (YAML or JSON, '-' for stdin), computes the complexity " +
			"report and phase plan, and writes the serialized report",
		RunE: func(cmd *cobra.Command, args []string) error {
			if metricsFile == "" {
				return fmt.Errorf("--metrics is required")
			}

			util.Info("Analyzing metrics: %s", metricsFile)

			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			analysisCtrl := controller.NewAnalysisController(h.cfg)
			report, err := analysisCtrl.AnalyzeFrom(ctx, metrics.NewFileProvider(metricsFile))
			if err != nil {
				util.Error("Analysis failed: %v", err)
				return fmt.Errorf("analysis failed: %w", err)
			}

			reportCtrl := controller.NewReportController(h.cfg)
			if outputDir != "" {
				h.cfg.Output.OutputDir = outputDir
				if format != "" {
					h.cfg.Output.Formats = []string{format}
				}
				if name == "" {
					name = reportName(metricsFile)
				}

				reportCtrl = controller.NewReportController(h.cfg)
				paths, err := reportCtrl.GenerateReports(name, report)
				if err != nil {
					return fmt.Errorf("generating reports: %w", err)
				}
				for _, path := range paths {
					fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", path)
				}
				return nil
			}

			outputFormat := format
			if outputFormat == "" {
				outputFormat = "json"
			}
			output, err := reportCtrl.GenerateToString(report, outputFormat)
			if err != nil {
				return fmt.Errorf("generating report: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&metricsFile, "metrics", "m", "", "Metrics document path, '-' for stdin (required)")
	cmd.Flags().StringVarP(&outputDir, "output", "o", "", "Output directory path")
	cmd.Flags().StringVarP(&format, "format", "f", "", "Output format (json, yaml)")
	cmd.Flags().StringVarP(&name, "name", "n", "", "Report file name prefix (defaults to the metrics file name)")
	cmd.Flags().DurationVarP(&timeout, "timeout", "t", 30*time.Second, "Timeout for reading metrics")

	_ = cmd.MarkFlagRequired("metrics")

	return cmd
}

func reportName(metricsFile string) string {
	if metricsFile == "-" {
		return "stdin"
	}
	base := filepath.Base(metricsFile)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
