package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"phase-planner/src/config"
	"phase-planner/src/util"
)

// Handler handles CLI commands
type Handler struct {
	cfg        *config.Config
	configPath string
	logLevel   string
	rootCmd    *cobra.Command
}

// New creates a new CLI handler
func New() *Handler {
	h := &Handler{}
	h.setupCommands()
	return h
}

func (h *Handler) setupCommands() {
	h.rootCmd = &cobra.Command{
		Use:   "phase-planner",
		Short: "Complexity scoring and phase planning engine",
		Long: "Scores project metrics across six complexity dimensions, classifies the project " +
			"and derives a phase plan with measurable validation gates",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return h.loadConfig()
		},
	}

	// Global flags
	h.rootCmd.PersistentFlags().StringVarP(&h.configPath, "config", "c", "",
		"Path to configuration file")
	h.rootCmd.PersistentFlags().StringVar(&h.logLevel, "log-level", "",
		"Override the configured log level (debug, info, warn, error)")

	// Add subcommands
	h.rootCmd.AddCommand(h.analyzeCmd())
	h.rootCmd.AddCommand(h.gatesCmd())
	h.rootCmd.AddCommand(h.versionCmd())
	h.rootCmd.AddCommand(h.dimensionsCmd())
}

func (h *Handler) loadConfig() error {
	loader := config.NewLoader()
	cfg, err := loader.Load(h.configPath)
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}
	if h.logLevel != "" {
		cfg.Logging.Level = h.logLevel
		if err := loader.Validate(cfg); err != nil {
			return err
		}
	}
	h.cfg = cfg

	util.SetDefaultLogger(cfg.Logging)
	util.Debug("Configuration loaded successfully")
	util.Debug("Log level set to: %s", cfg.Logging.Level)

	return nil
}

// SetArgs overrides the command line arguments
func (h *Handler) SetArgs(args []string) {
	h.rootCmd.SetArgs(args)
}

// SetOutput redirects command output and errors
func (h *Handler) SetOutput(out, errOut io.Writer) {
	h.rootCmd.SetOut(out)
	h.rootCmd.SetErr(errOut)
}

// Execute runs the CLI
func (h *Handler) Execute() error {
	return h.rootCmd.Execute()
}

// Run is the main entry point
func Run() {
	handler := New()
	if err := handler.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
