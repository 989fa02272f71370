// Package prompt assembles the single audit prompt sent to the model.
//
// The prompt is an instruction header (audit directives plus the required
// JSON schema, optionally preceded by a caller-supplied prefix) followed by
// one delimited block per source file. File content is inserted as raw text,
// truncated to a per-file cap, and the body as a whole is bounded by a total
// character budget: files past the budget are omitted entirely rather than
// split at the boundary.
package prompt
