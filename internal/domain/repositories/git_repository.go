package repositories

import (
	"context"

	"github.com/rios0rios0/gitrevert/internal/domain/entities"
)

// GitRepository abstracts the version-control commands the reconciliation
// engine needs. Every call blocks until the underlying command has finished.
type GitRepository interface {
	// Locate finds the repository enclosing dir. It returns
	// entities.ErrNotARepository when there is none.
	Locate(ctx context.Context, dir string) (entities.RepositoryRef, error)

	// ReadFileAt returns the bytes of relPath as of revision. A missing path or
	// revision is reported as entities.ErrNotFoundAtRevision.
	ReadFileAt(ctx context.Context, repo entities.RepositoryRef, revision entities.Revision, relPath string) ([]byte, error)

	// ReadBlobAt is ReadFileAt that also returns the file mode recorded in the tree.
	ReadBlobAt(
		ctx context.Context,
		repo entities.RepositoryRef,
		revision entities.Revision,
		relPath string,
	) (entities.Blob, error)

	// HasUncommittedChanges reports whether relPath differs between HEAD, the
	// index and the working tree (untracked files count as changes).
	HasUncommittedChanges(ctx context.Context, repo entities.RepositoryRef, relPath string) (bool, error)

	// Checkout writes relPath as of revision into both the index and the working tree.
	Checkout(ctx context.Context, repo entities.RepositoryRef, revision entities.Revision, relPath string) error

	// Stage adds the working tree state of relPath to the index.
	Stage(ctx context.Context, repo entities.RepositoryRef, relPath string) error

	// Remove drops relPath from the index and the working tree.
	Remove(ctx context.Context, repo entities.RepositoryRef, relPath string) error

	// ResetPath restores the index entry of relPath from HEAD.
	ResetPath(ctx context.Context, repo entities.RepositoryRef, relPath string) error

	// AmendPath rewrites HEAD so that relPath matches the working tree, keeping
	// the message and every other path of the commit. Changes staged for other
	// paths stay staged and out of the commit.
	AmendPath(ctx context.Context, repo entities.RepositoryRef, relPath string) error

	// StashPush stashes the changes of relPath only. It returns false when git
	// had nothing to save and therefore created no entry.
	StashPush(ctx context.Context, repo entities.RepositoryRef, relPath, message string) (bool, error)

	// StashApply applies the most recent stash entry without dropping it.
	StashApply(ctx context.Context, repo entities.RepositoryRef) error

	// Version returns the git version as a semver string (e.g. "v2.43.0").
	Version(ctx context.Context) (string, error)
}
