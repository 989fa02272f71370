// Cerascan is a single-shot CLI that audits a remote repository with the
// Cerebras inference API.
//
// It shallow-clones one branch into an isolated temporary workspace, gathers
// recognized source files, assembles a bounded audit prompt, and asks the
// completion endpoint for a structured JSON list of issues. Exactly one JSON
// object is printed to stdout per run — either the model's issues object or
// an {"error": "..."} envelope; all diagnostics go to stderr.
//
// Usage:
//
//	cerascan analyze <repo-url> <branch> [prefix]
//	cerascan version
//
// Configuration comes from the environment (CEREBRAS_API_KEY is required;
// CEREBRAS_BASE_URL, CEREBRAS_MODEL_ID, and CEREBRAS_MAX_TOKENS are
// optional), with .env files honored and per-run flag overrides available on
// the analyze command.
package main
