// Package clone stages shallow working copies of remote repositories.
//
// Each run gets its own workspace directory named cerascan-<uuid hex> under a
// shared parent (temp_clones by default), created fresh and never reused.
// Cloning shells out to git with --depth 1 --single-branch; git's stderr is
// folded into the returned error on failure. The caller is responsible for
// calling [Workspace.Remove] when the run ends, success or not.
package clone
