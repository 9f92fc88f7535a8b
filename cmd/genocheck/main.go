// genocheck validates the columns of genomics association tables (postgap
// style output, PLINK BIM files, or BigQuery results) against a YAML plan of
// checks.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	verbose bool
	cfg     Config
	logger  *zap.SugaredLogger
)

var rootCmd = &cobra.Command{
	Use:   "genocheck",
	Short: "Validate columns of genomics tables",
	Long: `genocheck loads a table (local or gs://, optionally compressed, or a BigQuery
query) and checks its columns: chromosome labels, SNP, gene and EFO identifiers,
genomic coordinates, numeric ranges and per-group uniqueness.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewDevelopmentConfig()
		config.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		l, err := config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		logger = l.Sugar()
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	var err error
	cfg, err = LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&cfg.RulesFile, "rules", cfg.RulesFile, "YAML file overriding the default validation rules")
	rootCmd.PersistentFlags().StringVar(&cfg.Project, "bq-project", cfg.Project, "Google Cloud project to bill BigQuery queries to")

	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(summarizeCmd)
	rootCmd.AddCommand(rulesCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errChecksFailed) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
