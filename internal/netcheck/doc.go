// Package netcheck performs best-effort DNS pre-checks before the pipeline
// touches the network, so that resolution problems show up as clear stderr
// diagnostics rather than opaque clone or HTTP failures.
package netcheck
