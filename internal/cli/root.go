package cli

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const version = "0.1.0"

// Exit codes. Analysis failures after startup are reported through the
// stdout envelope and still exit 0.
const (
	ExitSuccess    = 0
	ExitUsageError = 2
	ExitAuthError  = 3
)

// exitCode is set by command handlers to control the process exit code.
var exitCode = ExitSuccess

// logger carries all diagnostics; it writes to stderr only, keeping stdout
// free for the result envelope.
var logger *zap.Logger

var flagVerbose bool

var rootCmd = &cobra.Command{
	Use:   "cerascan",
	Short: "Single-shot LLM security audit for remote repositories",
	Long: "Cerascan shallow-clones a repository, assembles a bounded prompt from its\n" +
		"source files, and asks the Cerebras inference API for a structured list of\n" +
		"code issues. Exactly one JSON object is printed to stdout per run.",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		_ = godotenv.Load()

		zcfg := zap.NewProductionConfig()
		if flagVerbose {
			zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = zcfg.Build()
		if err != nil {
			return fmt.Errorf("initializing logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

// Run executes the root command and returns an exit code.
func Run() int {
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(versionCmd)

	if err := rootCmd.Execute(); err != nil {
		// Cobra already prints the error
		return ExitUsageError
	}

	return exitCode
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print cerascan version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(os.Stdout, "cerascan version %s\n", version)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Enable debug diagnostics on stderr")
}
