// Package root contains the root command for the application
package root

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"garagelog/internal/config"
	"garagelog/internal/duplicates"
	"garagelog/internal/exporter"
	"garagelog/internal/prefs"
	"garagelog/internal/rowparser"
	"garagelog/internal/store"
	"garagelog/internal/validator"
)

// CommonFlags represents the flags that are common to multiple commands
type CommonFlags struct {
	Input  string
	Output string
	Kind   string
}

var (
	// Log is the shared logger instance for commands
	Log = logrus.New()

	// Cfg is the resolved application configuration, available after
	// PersistentPreRun
	Cfg *config.Config

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "garagelog",
		Short: "A CLI tool to track vehicle expenses and move them in and out via CSV.",
		Long: `garagelog tracks fuel fill-ups, expenses and income per vehicle.
Its import command reads CSV files with per-row validation and duplicate
warnings; export produces CSV that re-imports losslessly.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to garagelog!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cfg, err := config.InitializeConfig()
			if err != nil {
				Log.Errorf("Configuration error: %v", err)
				os.Exit(1)
			}
			Cfg = cfg
			Log = config.ConfigureLoggingFromConfig(cfg)

			// Hand the configured logger to every package
			rowparser.SetLogger(Log)
			validator.SetLogger(Log)
			duplicates.SetLogger(Log)
			exporter.SetLogger(Log)
			store.SetLogger(Log)
			prefs.SetLogger(Log)

			rowparser.SetDelimiter(cfg.Delimiter())
			exporter.SetDelimiter(cfg.Delimiter())
		},
	}

	// SharedFlags holds common flags accessible to all commands
	SharedFlags = CommonFlags{}
)

// Init initializes the root command and all flags
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Input, "input", "i", "", "Input CSV file")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output CSV file")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Kind, "kind", "k", "fuel", "Entry kind: fuel, expense or income")
}
