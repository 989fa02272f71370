// Package cli wires together the Cobra command tree for the cerascan binary.
//
// It defines the root command and subcommands (analyze, version), binds
// flags, loads the environment, builds the stderr logger, invokes the audit
// engine, and enforces the stdout contract: exactly one JSON object per run.
// Missing arguments and a missing API key exit non-zero; failures past
// startup are reported inside the envelope and exit 0.
package cli
