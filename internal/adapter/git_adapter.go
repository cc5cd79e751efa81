package adapter

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	m "github.com/codebase-genius/genius/internal/model"
)

// GitAdapter abstracts the external version-control client used to
// materialize a remote repository locally. The rest of the tool only
// ever consumes the resulting directory tree.
type GitAdapter interface {
	// Clone clones url into target, creating parent directories as
	// needed.
	Clone(ctx context.Context, url string, target m.Path) error

	// RepoName derives a repository name from its URL.
	RepoName(url string) string
}

// LocalGitAdapter shells out to the git binary on PATH.
type LocalGitAdapter struct{}

// NewLocalGitAdapter constructs a LocalGitAdapter.
func NewLocalGitAdapter() *LocalGitAdapter {
	return &LocalGitAdapter{}
}

// Clone runs `git clone url target`. Stderr is captured and folded
// into the returned error so clone failures are diagnosable.
func (a *LocalGitAdapter) Clone(ctx context.Context, url string, target m.Path) error {
	if err := os.MkdirAll(filepath.Dir(string(target)), 0o750); err != nil {
		return fmt.Errorf("failed to create clone directory: %w", err)
	}

	cmd := exec.CommandContext(ctx, "git", "clone", url, string(target))

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("git clone %s: %w: %s", url, err, strings.TrimSpace(stderr.String()))
	}

	return nil
}

// RepoName extracts the repository name from a URL: trailing slashes
// and a .git suffix are stripped, then the last path segment is taken.
func (a *LocalGitAdapter) RepoName(url string) string {
	trimmed := strings.TrimRight(url, "/")
	trimmed = strings.TrimSuffix(trimmed, ".git")

	if i := strings.LastIndexAny(trimmed, "/:"); i >= 0 {
		trimmed = trimmed[i+1:]
	}

	if trimmed == "" {
		return "unknown-repo"
	}

	return trimmed
}
