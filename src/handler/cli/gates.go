package cli

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"phase-planner/src/controller"
	"phase-planner/src/util"
)

func (h *Handler) gatesCmd() *cobra.Command {
	var (
		phase     string
		gateTexts []string
		gatesFile string
	)

	cmd := &cobra.Command{
		Use:   "gates",
		Short: "Check that a phase has enough measurable validation gates",
		Long: "Classifies each gate as measurable or not and fails when the phase has fewer " +
			"measurable gates than required. Gates come from --gate flags and/or a file with one gate per line.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if phase == "" {
				return fmt.Errorf("--phase is required")
			}

			all := append([]string(nil), gateTexts...)
			if gatesFile != "" {
				fromFile, err := readGateLines(gatesFile)
				if err != nil {
					return err
				}
				all = append(all, fromFile...)
			}

			analysisCtrl := controller.NewAnalysisController(h.cfg)
			result := analysisCtrl.ValidateGates(phase, all)

			data, err := json.MarshalIndent(result, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))

			return result.Err()
		},
	}

	cmd.Flags().StringVarP(&phase, "phase", "p", "", "Phase name (required)")
	cmd.Flags().StringArrayVarP(&gateTexts, "gate", "g", nil, "Gate text (repeatable)")
	cmd.Flags().StringVar(&gatesFile, "file", "", "File with one gate per line")

	_ = cmd.MarkFlagRequired("phase")

	return cmd
}

// readGateLines reads non-blank lines, stripping list markers
func readGateLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("reading gates file: %w", err)
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		line = strings.TrimSpace(util.StripListMarker(strings.TrimLeft(line, "-*")))
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading gates file: %w", err)
	}
	return lines, nil
}
