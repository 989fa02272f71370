package cli

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/dshills/cerascan/internal/audit"
	"github.com/dshills/cerascan/internal/config"
	"github.com/dshills/cerascan/internal/llm"
	"github.com/dshills/cerascan/internal/output"
)

var (
	flagBaseURL   string
	flagModel     string
	flagMaxTokens int
	flagRedact    bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <repo-url> <branch> [prefix]",
	Short: "Clone a repository and audit it with the completion endpoint",
	Long: "Analyze shallow-clones the given branch, concatenates its source files into\n" +
		"a bounded prompt, and prints the model's JSON issues object to stdout. The\n" +
		"optional prefix is prepended verbatim to the audit instructions.",
	Args: cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		log := logger
		if log == nil {
			log = zap.NewNop()
		}

		if len(args) < 2 {
			writeEnvelopeError(errors.New("usage: cerascan analyze <repo-url> <branch> [prefix]"))
			exitCode = ExitUsageError
			return nil
		}
		req := audit.Request{RepoURL: args[0], Branch: args[1]}
		if len(args) > 2 {
			req.Prefix = args[2]
		}

		cfg, err := config.Load(buildOverrides())
		if err != nil {
			writeEnvelopeError(err)
			exitCode = ExitAuthError
			return nil
		}

		engine := audit.NewEngine(cfg, llm.New(cfg, log), log)
		raw, err := engine.Run(cmd.Context(), req)
		if err != nil {
			log.Error("analysis failed", zap.Error(err))
			// Failures past startup are data, not exit codes.
			writeEnvelopeError(err)
			return nil
		}

		return output.WriteRaw(os.Stdout, raw)
	},
}

func buildOverrides() map[string]string {
	m := make(map[string]string)
	if flagBaseURL != "" {
		m["baseURL"] = flagBaseURL
	}
	if flagModel != "" {
		m["model"] = flagModel
	}
	if flagMaxTokens > 0 {
		m["maxTokens"] = strconv.Itoa(flagMaxTokens)
	}
	if flagRedact {
		m["redact"] = "true"
	}
	return m
}

func writeEnvelopeError(err error) {
	if werr := output.WriteError(os.Stdout, err); werr != nil {
		fmt.Fprintf(os.Stderr, "Error writing envelope: %v\n", werr)
	}
}

func init() {
	analyzeCmd.Flags().StringVar(&flagBaseURL, "base-url", "", "Completion endpoint base URL (overrides CEREBRAS_BASE_URL)")
	analyzeCmd.Flags().StringVar(&flagModel, "model", "", "Model identifier (overrides CEREBRAS_MODEL_ID)")
	analyzeCmd.Flags().IntVar(&flagMaxTokens, "max-tokens", 0, "Maximum output tokens (overrides CEREBRAS_MAX_TOKENS)")
	analyzeCmd.Flags().BoolVar(&flagRedact, "redact", false, "Scrub detected secrets from file snippets before prompting")
}
