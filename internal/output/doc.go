// Package output owns the stdout contract: exactly one JSON object per run.
//
// Successful runs pass the sanitized model reply through verbatim; any
// failure becomes the {"error": "..."} envelope. Diagnostics never go
// through this package — stderr carries those.
package output
