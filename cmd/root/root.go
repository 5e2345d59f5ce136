// Package root contains the root command for the application
package root

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"rkatz/portfolio-parser/internal/assembler"
	"rkatz/portfolio-parser/internal/categorizer"
	"rkatz/portfolio-parser/internal/config"
	"rkatz/portfolio-parser/internal/logging"
	"rkatz/portfolio-parser/internal/models"
	"rkatz/portfolio-parser/internal/report"
	"rkatz/portfolio-parser/internal/transformer"
)

// CommonFlags represents the flags that are common to multiple commands
type CommonFlags struct {
	Directory string
	Output    string
	Format    string
}

var (
	// Log is the shared logger instance for commands
	Log = logrus.New()

	// AppConfig is the loaded application configuration, available to all
	// commands after PersistentPreRun.
	AppConfig *config.Config

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "portfolio-parser",
		Short: "A tool to normalize portfolio transaction exports into canonical records.",
		Long: `portfolio-parser loads CSV and XLSX transaction exports, categorizes each
row by transaction type, and merges everything into one chronologically
ordered result per category.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to portfolio-parser!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.LoadEnv()
			Log = config.ConfigureLogging()

			cfg, err := config.InitializeConfig()
			if err != nil {
				Log.Fatalf("Failed to load configuration: %v", err)
			}
			AppConfig = cfg

			Log = config.ConfigureLoggingFromConfig(cfg)
			logging.SetLogger(logging.NewLogrusAdapterFromLogger(Log))
			report.SetLogger(logging.GetLogger())
		},
	}

	// Common flags accessible to all commands
	SharedFlags = CommonFlags{}

	// Specific parse command flags
	JobID string
	Files []string
)

// Init initializes the root command and all flags
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Directory, "dir", "d", ".", "Directory containing the input files")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output file (stdout when empty)")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Format, "format", "f", "json", "Output format (json or csv)")
}

// NewAssembler builds an assembler from the loaded configuration, applying
// a configured rules file and column map when present.
func NewAssembler() *assembler.Assembler {
	logger := logging.GetLogger()

	rules := categorizer.DefaultRules()
	if AppConfig != nil && AppConfig.Categorizer.RulesFile != "" {
		loaded, err := categorizer.LoadRulesFile(AppConfig.Categorizer.RulesFile)
		if err != nil {
			Log.Fatalf("Failed to load categorization rules: %v", err)
		}
		rules = loaded
	}

	columns := models.DefaultColumnMap()
	if AppConfig != nil {
		columns = AppConfig.ColumnMap()
	}

	return assembler.NewWithComponents(
		categorizer.NewWithRules(rules, logger),
		transformer.NewWithColumns(columns, logger),
		logger,
	)
}
