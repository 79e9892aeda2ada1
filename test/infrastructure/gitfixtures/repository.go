//go:build integration || test

// Package gitfixtures builds throwaway git repositories for integration tests.
package gitfixtures //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// Repository is a real git repository living in a temporary directory.
type Repository struct {
	t    *testing.T
	Root string
}

// NewRepository initializes an empty repository with a local identity, so
// commits work regardless of the machine's global configuration.
func NewRepository(t *testing.T) *Repository {
	t.Helper()

	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git binary not available")
	}

	root, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)

	repo := &Repository{t: t, Root: root}
	repo.Git("init", "-q")
	repo.Git("config", "user.name", "Test User")
	repo.Git("config", "user.email", "test@example.com")
	repo.Git("config", "commit.gpgsign", "false")
	repo.Git("config", "core.autocrlf", "false")
	return repo
}

// Git runs a git command in the repository and returns its trimmed stdout.
func (r *Repository) Git(args ...string) string {
	r.t.Helper()

	cmd := exec.Command("git", args...)
	cmd.Dir = r.Root
	cmd.Env = append(os.Environ(), "LC_ALL=C", "GIT_CONFIG_NOSYSTEM=1")

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	require.NoError(r.t, cmd.Run(), "git %s: %s", strings.Join(args, " "), stderr.String())
	return strings.TrimSpace(stdout.String())
}

// Path returns the absolute path of a slash-separated relative path.
func (r *Repository) Path(relPath string) string {
	return filepath.Join(r.Root, filepath.FromSlash(relPath))
}

// Write creates or overwrites a working tree file, with its parent directories.
func (r *Repository) Write(relPath, content string) {
	r.t.Helper()

	path := r.Path(relPath)
	require.NoError(r.t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(r.t, os.WriteFile(path, []byte(content), 0o644))
}

// Read returns the content of a working tree file.
func (r *Repository) Read(relPath string) string {
	r.t.Helper()

	data, err := os.ReadFile(r.Path(relPath))
	require.NoError(r.t, err)
	return string(data)
}

// Exists reports whether the working tree file exists.
func (r *Repository) Exists(relPath string) bool {
	_, err := os.Stat(r.Path(relPath))
	return err == nil
}

// CommitFile writes the file, stages it and commits.
func (r *Repository) CommitFile(relPath, content, message string) {
	r.t.Helper()

	r.Write(relPath, content)
	r.Git("add", "--", relPath)
	r.Git("commit", "-q", "-m", message)
}

// CommitSymlink points relPath at target, replacing whatever was there, and commits.
func (r *Repository) CommitSymlink(relPath, target, message string) {
	r.t.Helper()

	path := r.Path(relPath)
	require.NoError(r.t, os.MkdirAll(filepath.Dir(path), 0o755))
	if err := os.Remove(path); err != nil {
		require.ErrorIs(r.t, err, os.ErrNotExist)
	}
	require.NoError(r.t, os.Symlink(target, path))
	r.Git("add", "--", relPath)
	r.Git("commit", "-q", "-m", message)
}

// ReadLink returns the target of a working tree symbolic link.
func (r *Repository) ReadLink(relPath string) string {
	r.t.Helper()

	target, err := os.Readlink(r.Path(relPath))
	require.NoError(r.t, err)
	return target
}

// CommitRemoval deletes the file and commits the deletion.
func (r *Repository) CommitRemoval(relPath, message string) {
	r.t.Helper()

	r.Git("rm", "-q", "--", relPath)
	r.Git("commit", "-q", "-m", message)
}

// Tracked reports whether the path is in the index.
func (r *Repository) Tracked(relPath string) bool {
	r.t.Helper()

	return r.Git("ls-files", "--", relPath) != ""
}

// ShowAt returns the content of relPath at revision, or false when it is absent.
func (r *Repository) ShowAt(revision, relPath string) (string, bool) {
	r.t.Helper()

	cmd := exec.Command("git", "show", revision+":"+relPath)
	cmd.Dir = r.Root
	output, err := cmd.Output()
	if err != nil {
		return "", false
	}
	return string(output), true
}
