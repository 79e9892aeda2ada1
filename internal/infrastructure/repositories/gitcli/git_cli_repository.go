package gitcli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/gitrevert/internal/domain/entities"
	"github.com/rios0rios0/gitrevert/internal/domain/repositories"
)

const (
	noLocalChanges  = "No local changes to save"
	regularFileMode = os.FileMode(0o644)
)

// GitRepository implements repositories.GitRepository. Discovery and
// read-only probes go through go-git; every mutation runs the git binary so
// hooks, attributes and the user's configuration keep applying.
type GitRepository struct {
	binary string
}

var _ repositories.GitRepository = (*GitRepository)(nil)

// NewGitRepository creates a GitRepository that runs the configured git binary.
func NewGitRepository(settings *entities.Settings) *GitRepository {
	return &GitRepository{binary: settings.Git.Binary}
}

// Locate walks up from dir to the enclosing working tree. Bare repositories
// have no working tree and are rejected.
func (it *GitRepository) Locate(ctx context.Context, dir string) (entities.RepositoryRef, error) {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{
		DetectDotGit:          true,
		EnableDotGitCommonDir: true,
	})
	if err != nil {
		if errors.Is(err, git.ErrRepositoryNotExists) {
			return entities.RepositoryRef{}, fmt.Errorf("%w: %s", entities.ErrNotARepository, dir)
		}
		return entities.RepositoryRef{}, fmt.Errorf("failed to open repository at %s: %w", dir, err)
	}

	worktree, err := repo.Worktree()
	if err != nil {
		if errors.Is(err, git.ErrIsBareRepository) {
			return entities.RepositoryRef{}, fmt.Errorf("%w: %s is a bare repository", entities.ErrNotARepository, dir)
		}
		return entities.RepositoryRef{}, fmt.Errorf("failed to open worktree at %s: %w", dir, err)
	}
	root := worktree.Filesystem.Root()

	gitDir, err := it.run(ctx, root, "rev-parse", "--absolute-git-dir")
	if err != nil {
		return entities.RepositoryRef{}, err
	}

	return entities.RepositoryRef{
		RootPath: root,
		GitDir:   strings.TrimSpace(gitDir),
	}, nil
}

// ReadFileAt reads the blob of relPath from the tree of revision.
func (it *GitRepository) ReadFileAt(
	ctx context.Context,
	repoRef entities.RepositoryRef,
	revision entities.Revision,
	relPath string,
) ([]byte, error) {
	blob, err := it.ReadBlobAt(ctx, repoRef, revision, relPath)
	if err != nil {
		return nil, err
	}
	return blob.Data, nil
}

// ReadBlobAt reads relPath from the tree of revision together with its mode.
// Symbolic links come back as their target.
func (it *GitRepository) ReadBlobAt(
	_ context.Context,
	repoRef entities.RepositoryRef,
	revision entities.Revision,
	relPath string,
) (entities.Blob, error) {
	repo, err := git.PlainOpenWithOptions(repoRef.RootPath, &git.PlainOpenOptions{EnableDotGitCommonDir: true})
	if err != nil {
		return entities.Blob{}, fmt.Errorf("failed to open repository at %s: %w", repoRef.RootPath, err)
	}

	hash, err := repo.ResolveRevision(plumbing.Revision(revision))
	if err != nil {
		if isMissingRevision(err) {
			return entities.Blob{}, fmt.Errorf("%w: revision %s: %w", entities.ErrNotFoundAtRevision, revision, err)
		}
		return entities.Blob{}, fmt.Errorf("failed to resolve %s: %w", revision, err)
	}

	commit, err := repo.CommitObject(*hash)
	if err != nil {
		return entities.Blob{}, fmt.Errorf("failed to load commit %s: %w", hash, err)
	}

	file, err := commit.File(relPath)
	if err != nil {
		if errors.Is(err, object.ErrFileNotFound) || errors.Is(err, object.ErrDirectoryNotFound) {
			return entities.Blob{}, fmt.Errorf("%w: %s at %s", entities.ErrNotFoundAtRevision, relPath, revision)
		}
		return entities.Blob{}, fmt.Errorf("failed to find %s at %s: %w", relPath, revision, err)
	}

	reader, err := file.Reader()
	if err != nil {
		return entities.Blob{}, fmt.Errorf("failed to open blob %s at %s: %w", relPath, revision, err)
	}
	defer reader.Close()

	data, err := io.ReadAll(reader)
	if err != nil {
		return entities.Blob{}, fmt.Errorf("failed to read blob %s at %s: %w", relPath, revision, err)
	}

	mode, err := file.Mode.ToOSFileMode()
	if err != nil {
		mode = regularFileMode
	}
	return entities.Blob{Data: data, Mode: mode}, nil
}

// isMissingRevision recognizes an unborn HEAD and a root commit asked for its
// parent. A missing object is corruption, not absence, and is left out.
func isMissingRevision(err error) bool {
	return errors.Is(err, plumbing.ErrReferenceNotFound) ||
		errors.Is(err, object.ErrParentNotFound) ||
		errors.Is(err, io.EOF)
}

func (it *GitRepository) HasUncommittedChanges(
	ctx context.Context,
	repo entities.RepositoryRef,
	relPath string,
) (bool, error) {
	output, err := it.run(ctx, repo.RootPath, "status", "--porcelain", "--", relPath)
	if err != nil {
		return false, err
	}
	return strings.TrimSpace(output) != "", nil
}

func (it *GitRepository) Checkout(
	ctx context.Context,
	repo entities.RepositoryRef,
	revision entities.Revision,
	relPath string,
) error {
	_, err := it.run(ctx, repo.RootPath, "checkout", string(revision), "--", relPath)
	return err
}

func (it *GitRepository) Stage(ctx context.Context, repo entities.RepositoryRef, relPath string) error {
	_, err := it.run(ctx, repo.RootPath, "add", "--", relPath)
	return err
}

func (it *GitRepository) Remove(ctx context.Context, repo entities.RepositoryRef, relPath string) error {
	_, err := it.run(ctx, repo.RootPath, "rm", "-q", "-f", "--ignore-unmatch", "--", relPath)
	return err
}

func (it *GitRepository) ResetPath(ctx context.Context, repo entities.RepositoryRef, relPath string) error {
	_, err := it.run(ctx, repo.RootPath, "reset", "-q", "HEAD", "--", relPath)
	return err
}

// AmendPath commits only relPath, taken from the working tree: other staged
// changes stay in the index. An empty result is allowed because dropping the
// only file a commit touched leaves it empty.
func (it *GitRepository) AmendPath(ctx context.Context, repo entities.RepositoryRef, relPath string) error {
	_, err := it.run(
		ctx, repo.RootPath,
		"commit", "-q", "--amend", "--no-edit", "--allow-empty", "--only", "--", relPath,
	)
	return err
}

func (it *GitRepository) StashPush(
	ctx context.Context,
	repo entities.RepositoryRef,
	relPath, message string,
) (bool, error) {
	args := []string{"stash", "push"}
	if message != "" {
		args = append(args, "-m", message)
	}
	args = append(args, "--", relPath)

	output, err := it.run(ctx, repo.RootPath, args...)
	if err != nil {
		return false, err
	}
	return !strings.Contains(output, noLocalChanges), nil
}

func (it *GitRepository) StashApply(ctx context.Context, repo entities.RepositoryRef) error {
	_, err := it.run(ctx, repo.RootPath, "stash", "apply", "-q")
	return err
}

func (it *GitRepository) Version(ctx context.Context) (string, error) {
	output, err := it.run(ctx, "", "--version")
	if err != nil {
		return "", err
	}

	version := entities.ParseGitVersion(output)
	if version == "" {
		return "", fmt.Errorf("unrecognized git version output %q", strings.TrimSpace(output))
	}
	return version, nil
}

// run executes git in dir and returns its stdout. Messages are forced to
// English because some outcomes are only reported as text.
func (it *GitRepository) run(ctx context.Context, dir string, args ...string) (string, error) {
	logger.Debugf("Running %s %s", it.binary, strings.Join(args, " "))

	cmd := exec.CommandContext(ctx, it.binary, args...)
	cmd.Dir = dir
	cmd.Env = append(os.Environ(), "LC_ALL=C", "GIT_TERMINAL_PROMPT=0")

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", &entities.CommandError{
			Args:   args,
			Stderr: strings.TrimSpace(stderr.String()),
			Err:    err,
		}
	}
	return stdout.String(), nil
}
