// Package redact removes secrets from file snippets before they are placed
// in an audit prompt.
//
// Detection uses regex heuristics covering common secret shapes: API keys,
// JWTs, private key blocks, AWS credentials, bearer tokens, and
// provider-specific token formats. Redaction is opt-in (--redact); by default
// cerascan sends file content verbatim, since the model is itself asked to
// flag hardcoded secrets.
package redact
