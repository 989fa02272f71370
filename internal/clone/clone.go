package clone

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// dirPrefix marks cerascan-owned workspace directories.
const dirPrefix = "cerascan-"

// Fetcher produces shallow working copies of remote repositories under a
// shared parent directory.
type Fetcher struct {
	baseDir string
	log     *zap.Logger
}

// NewFetcher returns a Fetcher that stages clones under baseDir.
func NewFetcher(baseDir string, log *zap.Logger) *Fetcher {
	return &Fetcher{baseDir: baseDir, log: log}
}

// Workspace is a cloned working copy owned exclusively by one run.
type Workspace struct {
	Path string
}

// Shallow clones the latest commit of one branch into a fresh, uniquely
// named workspace. On any clone failure the partially created directory is
// removed and the underlying cause is returned. Never retried.
func (f *Fetcher) Shallow(ctx context.Context, repoURL, branch string) (*Workspace, error) {
	if err := os.MkdirAll(f.baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating clone directory: %w", err)
	}

	dir := filepath.Join(f.baseDir, fmt.Sprintf("%s%x", dirPrefix, uuid.New()))
	// Mkdir, not MkdirAll: a pre-existing directory means a name collision
	// and must fail rather than silently reuse someone else's workspace.
	if err := os.Mkdir(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating workspace: %w", err)
	}

	f.log.Debug("cloning repository",
		zap.String("url", repoURL),
		zap.String("branch", branch),
		zap.String("workspace", dir))

	_, err := gitOutput(ctx, "clone", "--depth", "1", "--single-branch", "--branch", branch, repoURL, dir)
	if err != nil {
		_ = os.RemoveAll(dir)
		return nil, fmt.Errorf("git clone failed: %w", err)
	}

	f.log.Debug("clone complete", zap.String("workspace", dir))
	return &Workspace{Path: dir}, nil
}

// Remove deletes the workspace, ignoring removal errors.
func (w *Workspace) Remove() {
	if w == nil || w.Path == "" {
		return
	}
	_ = os.RemoveAll(w.Path)
}

func gitOutput(ctx context.Context, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	out, err := cmd.Output()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return string(out), fmt.Errorf("%s: %s", err, string(exitErr.Stderr))
		}
		return "", err
	}
	return string(out), nil
}
