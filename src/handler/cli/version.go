package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"phase-planner/src/service/scoring"
)

func (h *Handler) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", h.cfg.Agent.Name, h.cfg.Agent.Version)
		},
	}
}

func (h *Handler) dimensionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dimensions",
		Short: "List scored dimensions and their composite weights",
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Scored dimensions:")
			for _, d := range scoring.NewRunner().ListDimensions() {
				fmt.Fprintf(out, "  - %-15s weight %.2f\n", d, scoring.CompositeWeights[d])
			}
		},
	}
}
