//go:build integration || unit || test

// Package repositorydoubles provides test doubles (spies, stubs, dummies) for
// repository interfaces. These are hand-crafted implementations, no mock frameworks.
package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"
	"fmt"
	"io/fs"

	"github.com/rios0rios0/gitrevert/internal/domain/entities"
	"github.com/rios0rios0/gitrevert/internal/domain/repositories"
)

// SpyGitRepository implements repositories.GitRepository as a configurable spy.
// Configure the response fields for the methods your test exercises, then
// inspect Calls to verify which git operations ran and in which order.
type SpyGitRepository struct {
	// --- Locate ---
	Repository  entities.RepositoryRef
	LocateErr   error
	LocatedDirs []string

	// --- ReadFileAt / ReadBlobAt ---
	Files    map[entities.Revision]map[string][]byte // revision -> path -> content
	Modes    map[string]fs.FileMode                  // path -> mode, 0644 when absent
	ReadErrs map[entities.Revision]error             // forced error per revision

	// --- HasUncommittedChanges ---
	Dirty    map[string]bool
	DirtyErr error

	// --- mutations ---
	CheckoutErr   error
	StageErr      error
	RemoveErr     error
	ResetErr      error
	AmendErr      error
	StashErr      error
	StashApplyErr error
	NothingToSave bool // StashPush reports that no entry was created

	// OnCheckout runs after a successful Checkout, to emulate its effect on disk.
	OnCheckout func(revision entities.Revision, relPath string)

	// --- Version ---
	GitVersion string
	VersionErr error

	// spy: every operation in call order, e.g. "checkout HEAD~1 a.txt"
	Calls []string
	// spy: messages received by StashPush
	StashMessages []string
}

var _ repositories.GitRepository = (*SpyGitRepository)(nil)

// NewSpyGitRepository creates a spy rooted at root whose git dir is root/.git.
func NewSpyGitRepository(root string) *SpyGitRepository {
	return &SpyGitRepository{
		Repository: entities.RepositoryRef{RootPath: root, GitDir: root + "/.git"},
		Files:      make(map[entities.Revision]map[string][]byte),
		Modes:      make(map[string]fs.FileMode),
		ReadErrs:   make(map[entities.Revision]error),
		Dirty:      make(map[string]bool),
		GitVersion: "v2.43.0",
	}
}

// WithFile registers content for relPath at revision.
func (s *SpyGitRepository) WithFile(revision entities.Revision, relPath, content string) *SpyGitRepository {
	if s.Files[revision] == nil {
		s.Files[revision] = make(map[string][]byte)
	}
	s.Files[revision][relPath] = []byte(content)
	return s
}

func (s *SpyGitRepository) record(format string, args ...any) {
	s.Calls = append(s.Calls, fmt.Sprintf(format, args...))
}

func (s *SpyGitRepository) Locate(_ context.Context, dir string) (entities.RepositoryRef, error) {
	s.LocatedDirs = append(s.LocatedDirs, dir)
	if s.LocateErr != nil {
		return entities.RepositoryRef{}, s.LocateErr
	}
	return s.Repository, nil
}

func (s *SpyGitRepository) ReadFileAt(
	ctx context.Context,
	repo entities.RepositoryRef,
	revision entities.Revision,
	relPath string,
) ([]byte, error) {
	blob, err := s.ReadBlobAt(ctx, repo, revision, relPath)
	if err != nil {
		return nil, err
	}
	return blob.Data, nil
}

func (s *SpyGitRepository) ReadBlobAt(
	_ context.Context,
	_ entities.RepositoryRef,
	revision entities.Revision,
	relPath string,
) (entities.Blob, error) {
	s.record("read %s %s", revision, relPath)
	if err := s.ReadErrs[revision]; err != nil {
		return entities.Blob{}, err
	}
	content, ok := s.Files[revision][relPath]
	if !ok {
		return entities.Blob{}, fmt.Errorf("%w: %s at %s", entities.ErrNotFoundAtRevision, relPath, revision)
	}

	mode, ok := s.Modes[relPath]
	if !ok {
		mode = 0o644
	}
	return entities.Blob{Data: content, Mode: mode}, nil
}

func (s *SpyGitRepository) HasUncommittedChanges(
	_ context.Context,
	_ entities.RepositoryRef,
	relPath string,
) (bool, error) {
	s.record("status %s", relPath)
	return s.Dirty[relPath], s.DirtyErr
}

func (s *SpyGitRepository) Checkout(
	_ context.Context,
	_ entities.RepositoryRef,
	revision entities.Revision,
	relPath string,
) error {
	s.record("checkout %s %s", revision, relPath)
	if s.CheckoutErr != nil {
		return s.CheckoutErr
	}
	if s.OnCheckout != nil {
		s.OnCheckout(revision, relPath)
	}
	return nil
}

func (s *SpyGitRepository) Stage(_ context.Context, _ entities.RepositoryRef, relPath string) error {
	s.record("add %s", relPath)
	return s.StageErr
}

func (s *SpyGitRepository) Remove(_ context.Context, _ entities.RepositoryRef, relPath string) error {
	s.record("rm %s", relPath)
	return s.RemoveErr
}

func (s *SpyGitRepository) ResetPath(_ context.Context, _ entities.RepositoryRef, relPath string) error {
	s.record("reset %s", relPath)
	return s.ResetErr
}

func (s *SpyGitRepository) AmendPath(_ context.Context, _ entities.RepositoryRef, relPath string) error {
	s.record("commit --amend %s", relPath)
	return s.AmendErr
}

func (s *SpyGitRepository) StashPush(
	_ context.Context,
	_ entities.RepositoryRef,
	relPath, message string,
) (bool, error) {
	s.record("stash push %s", relPath)
	s.StashMessages = append(s.StashMessages, message)
	if s.StashErr != nil {
		return false, s.StashErr
	}
	return !s.NothingToSave, nil
}

func (s *SpyGitRepository) StashApply(_ context.Context, _ entities.RepositoryRef) error {
	s.record("stash apply")
	return s.StashApplyErr
}

func (s *SpyGitRepository) Version(_ context.Context) (string, error) {
	return s.GitVersion, s.VersionErr
}

// Mutations returns the recorded calls that change the repository, leaving out probes.
func (s *SpyGitRepository) Mutations() []string {
	var mutations []string
	for _, call := range s.Calls {
		switch {
		case len(call) >= 4 && call[:4] == "read",
			len(call) >= 6 && call[:6] == "status":
			continue
		}
		mutations = append(mutations, call)
	}
	return mutations
}
