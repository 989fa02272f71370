// Package collect selects the source files worth sending to the model.
//
// It walks a cloned workspace, keeping regular files whose extension is in a
// fixed allowlist (common JS/TS, Python, Java, Go, C, C++ suffixes, matched
// case-insensitively) and pruning dependency, build, VCS, virtual-env, and
// cache directories wherever they appear in the tree.
package collect
