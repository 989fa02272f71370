// Package audit contains the core types and pipeline engine for a single
// repository analysis run.
//
// A run is strictly linear: shallow-clone the repository, collect candidate
// source files, assemble the bounded prompt, make one completion call, and
// sanitize the reply. No stage retries; the first failure short-circuits the
// rest, and the cloned workspace is always removed on the way out.
package audit
