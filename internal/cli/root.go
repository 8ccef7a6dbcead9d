package cli

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/existflow/ironplan/internal/config"
	"github.com/existflow/ironplan/internal/logger"
	"github.com/existflow/ironplan/internal/store"
	"github.com/existflow/ironplan/internal/tui"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	configPath   string
	logLevel     string
	logFile      string
	logConsole   bool
	sourceDriver string
	sourceDSN    string

	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "ironplan",
	Short: "IronPlan - Weekly team planning in the terminal",
	Long: `IronPlan shows who works on what this week: a team sidebar with
availability, a week grid of scheduled tasks and a task detail panel.

Run 'ironplan' without arguments to launch the interactive TUI.
When stdout is not a terminal, the current week agenda is printed instead.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Load config from file (or defaults if not exists)
		var err error
		if configPath != "" {
			cfg, err = config.LoadFrom(configPath)
		} else {
			cfg, err = config.Load()
		}
		if err != nil {
			logger.Warn("Failed to load config, using defaults", logger.F("error", err))
			cfg = config.DefaultConfig()
		}

		// Override with CLI flags if provided
		configChanged := false
		if cmd.Flags().Changed("log-level") {
			cfg.LogLevel = logLevel
			configChanged = true
		}
		if cmd.Flags().Changed("log-file") {
			cfg.LogFile = logFile
			configChanged = true
		}
		if cmd.Flags().Changed("log-console") {
			cfg.LogConsole = logConsole
			configChanged = true
		}
		if cmd.Flags().Changed("source-driver") {
			cfg.Source.Driver = sourceDriver
			configChanged = true
		}
		if cmd.Flags().Changed("source-dsn") {
			cfg.Source.DSN = sourceDSN
			configChanged = true
		}

		// Save config if changed via CLI flags
		if configChanged {
			if err := cfg.Save(); err != nil {
				logger.Warn("Failed to save config", logger.F("error", err))
			}
		}

		if err := logger.Init(cfg.Logger()); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		logger.Info("IronPlan started", logger.F("command", cmd.Name()))
		return nil
	},

	RunE: func(cmd *cobra.Command, args []string) error {
		catalog, err := loadCatalog(cmd)
		if err != nil {
			return err
		}

		if !term.IsTerminal(int(os.Stdout.Fd())) {
			logger.Info("Stdout is not a terminal, printing agenda")
			st := newState(catalog, nil)
			printWeek(cmd.OutOrStdout(), st.Anchor(), catalog, cfg.Widget)
			return nil
		}

		logger.Info("Launching TUI")
		m := tui.NewModel(catalog, tui.Options{
			Widget:        cfg.Widget,
			ConfirmDelete: cfg.ConfirmDelete,
		})
		p := tea.NewProgram(m, tea.WithAltScreen())

		if _, err := p.Run(); err != nil {
			logger.Error("TUI error", logger.F("error", err))
			return fmt.Errorf("failed to run TUI: %w", err)
		}

		logger.Info("TUI exited normally")
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logger.Info("IronPlan exiting", logger.F("command", cmd.Name()))
		logger.Close()
	},
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// loadCatalog reads the configured dataset source
func loadCatalog(cmd *cobra.Command) (*store.Catalog, error) {
	logger.Info("Loading dataset",
		logger.F("driver", cfg.Source.Driver),
		logger.F("dsn", cfg.Source.DSN))

	catalog, err := store.OpenCatalog(cmd.Context(), cfg.Source.Driver, cfg.Source.DSN)
	if err != nil {
		logger.Error("Failed to load dataset", logger.F("error", err))
		return nil, fmt.Errorf("failed to load dataset: %w", err)
	}
	return catalog, nil
}

func init() {
	// Config and logging flags
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file (default ~/.ironplan/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (DEBUG, INFO, WARN, ERROR)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Path to log file")
	rootCmd.PersistentFlags().BoolVar(&logConsole, "log-console", false, "Enable console logging")

	// Dataset source flags
	rootCmd.PersistentFlags().StringVar(&sourceDriver, "source-driver", "", "Dataset source (builtin, yaml, sqlite, postgres, http)")
	rootCmd.PersistentFlags().StringVar(&sourceDSN, "source-dsn", "", "Dataset location: file path, connection URL or base URL")

	// Add subcommands
	rootCmd.AddCommand(employeesCmd)
	rootCmd.AddCommand(weekCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(datasetCmd)
	rootCmd.AddCommand(serveCmd)
}
