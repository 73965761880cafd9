// shawspell is a spell-checking engine for English written in either the
// Latin or the Shavian alphabet. It serves the host spell-checking protocol
// over stdin/stdout and offers small offline commands over the same engine.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Global flags
	verbose     bool
	cfgPath     string
	flagDialect string
	flagDictDir string

	// Logger, built in PersistentPreRunE
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "shawspell",
	Short: "Dual-script spell checking for Shavian and Latin English",
	Long: `shawspell checks English text written in the Latin alphabet, the Shavian
alphabet, or any mixture of the two. Each script is backed by its own
hunspell dictionary pair; a word containing any Shavian letter routes to the
Shavian dictionary, so loanwords and dotted proper nouns land in the richer
one.

The serve command speaks the host spell-checking protocol on stdin/stdout;
check, count and suggest run the same engine from the command line.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		// The protocol owns stdout; keep logs on stderr.
		config.OutputPaths = []string{"stderr"}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "config file (default $XDG_CONFIG_HOME/shawspell/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&flagDialect, "dialect", "", "dialect override: gb or us")
	rootCmd.PersistentFlags().StringVar(&flagDictDir, "dictdir", "", "dictionary directory override")
	rootCmd.SilenceUsage = true

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(countCmd)
	rootCmd.AddCommand(suggestCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
