package commands

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rios0rios0/gitrevert/internal/domain/entities"
	"github.com/rios0rios0/gitrevert/internal/domain/repositories"
)

const (
	parentDirMode fs.FileMode = 0o755

	snapshotSourceWorkingTree = "working-tree"
	snapshotSourceHead        = "head"
)

// StashRewriter reverts a file like HistoryReconciler does, but amends the
// file's contribution out of HEAD and keeps the content it had before the
// call in a stash entry scoped to that file.
type StashRewriter struct {
	git        repositories.GitRepository
	snapshots  repositories.SnapshotRepository
	classifier *PresenceClassifier
	events     repositories.EventPublisher
}

// NewStashRewriter creates a new StashRewriter.
func NewStashRewriter(
	git repositories.GitRepository,
	snapshots repositories.SnapshotRepository,
	classifier *PresenceClassifier,
	events repositories.EventPublisher,
) *StashRewriter {
	return &StashRewriter{
		git:        git,
		snapshots:  snapshots,
		classifier: classifier,
		events:     events,
	}
}

// RevertAndStash runs snapshot -> rewrite -> rematerialize -> stash, in that
// order. The first failing step aborts the rest and is reported as a
// *entities.RevertAndStashFailedError. An empty message creates an unlabeled stash.
func (it *StashRewriter) RevertAndStash(ctx context.Context, loc entities.FileLocation, message string) error {
	snapshot, err := it.takeSnapshot(ctx, loc)
	if err != nil {
		return it.fail(entities.StepSnapshot, loc, err)
	}

	// From here on the repository is being mutated and must not be interrupted.
	ctx = context.WithoutCancel(ctx)

	mutated, err := it.rewriteHistory(ctx, loc)
	if err != nil {
		return it.fail(entities.StepRewrite, loc, it.settleSnapshot(ctx, snapshot, mutated, err))
	}

	if err = it.rematerialize(ctx, loc, snapshot); err != nil {
		return it.fail(entities.StepRematerialize, loc, it.settleSnapshot(ctx, snapshot, true, err))
	}

	if err = it.snapshots.Discard(ctx, snapshot); err != nil {
		return it.fail(entities.StepDiscardSnapshot, loc, err)
	}

	if err = it.stash(ctx, loc, message); err != nil {
		return it.fail(entities.StepStash, loc, err)
	}

	return nil
}

// takeSnapshot copies the content that must survive the rewrite. The live
// working tree file wins because it carries any uncommitted edits; a file
// missing from the tree falls back to its committed blob in HEAD.
func (it *StashRewriter) takeSnapshot(ctx context.Context, loc entities.FileLocation) (entities.TempSnapshot, error) {
	source := snapshotSourceWorkingTree
	blob, err := readWorkingTreeFile(loc.AbsolutePath)

	if errors.Is(err, fs.ErrNotExist) {
		source = snapshotSourceHead
		blob, err = it.git.ReadBlobAt(ctx, loc.Repository, entities.RevisionCurrent, loc.RelativePath)
		if errors.Is(err, entities.ErrNotFoundAtRevision) {
			return entities.TempSnapshot{}, entities.ErrNothingToPreserve
		}
	}
	if err != nil {
		return entities.TempSnapshot{}, err
	}

	snapshot, err := it.snapshots.Save(ctx, loc.Repository, loc.RelativePath, blob.Data, blob.Mode)
	if err != nil {
		return entities.TempSnapshot{}, err
	}

	publish(it.events, entities.EventSnapshotTaken, map[string]any{
		"path":     loc.RelativePath,
		"source":   source,
		"snapshot": snapshot.Path,
		"symlink":  snapshot.IsSymlink(),
	})
	return snapshot, nil
}

// rewriteHistory applies the presence-driven rollback and amends HEAD when
// the file is part of it. mutated tells whether the repository was touched
// before a failure happened.
func (it *StashRewriter) rewriteHistory(ctx context.Context, loc entities.FileLocation) (bool, error) {
	state := it.classifier.Classify(ctx, loc)

	switch {
	case state == entities.PresentInNeither:
		return false, entities.ErrNothingToRevert

	case !state.InCurrent():
		if err := it.git.Checkout(ctx, loc.Repository, entities.RevisionPrevious, loc.RelativePath); err != nil {
			return false, err
		}
		return true, nil

	case state.InPrevious():
		if err := it.git.Checkout(ctx, loc.Repository, entities.RevisionPrevious, loc.RelativePath); err != nil {
			return false, err
		}
		return true, it.amend(ctx, loc, state)

	default:
		// The amend takes the path from the working tree, so the file has to
		// leave it too. The snapshot brings it back afterwards.
		if err := it.git.Remove(ctx, loc.Repository, loc.RelativePath); err != nil {
			return false, err
		}
		return true, it.amend(ctx, loc, state)
	}
}

func (it *StashRewriter) amend(ctx context.Context, loc entities.FileLocation, state entities.PresenceState) error {
	if err := it.git.AmendPath(ctx, loc.Repository, loc.RelativePath); err != nil {
		return err
	}

	publish(it.events, entities.EventCommitAmended, map[string]any{
		"path":  loc.RelativePath,
		"state": state.String(),
	})
	return nil
}

// rematerialize puts the snapshot back on the working tree path. Whatever the
// rewrite left there is removed first, so nothing is ever written through a
// symbolic link.
func (it *StashRewriter) rematerialize(
	ctx context.Context,
	loc entities.FileLocation,
	snapshot entities.TempSnapshot,
) error {
	data, err := it.snapshots.Load(ctx, snapshot)
	if err != nil {
		return err
	}

	if err = os.MkdirAll(filepath.Dir(loc.AbsolutePath), parentDirMode); err != nil {
		return fmt.Errorf("create parent directories: %w", err)
	}
	if err = clearWorkingTreePath(loc.AbsolutePath); err != nil {
		return err
	}

	if snapshot.IsSymlink() {
		if err = os.Symlink(string(data), loc.AbsolutePath); err != nil {
			return fmt.Errorf("create symbolic link: %w", err)
		}
		return nil
	}

	if err = os.WriteFile(loc.AbsolutePath, data, snapshot.Mode.Perm()); err != nil {
		return fmt.Errorf("write working tree file: %w", err)
	}
	if err = os.Chmod(loc.AbsolutePath, snapshot.Mode.Perm()); err != nil {
		return fmt.Errorf("restore file mode: %w", err)
	}
	return nil
}

func (it *StashRewriter) stash(ctx context.Context, loc entities.FileLocation, message string) error {
	if err := it.git.Stage(ctx, loc.Repository, loc.RelativePath); err != nil {
		return err
	}

	created, err := it.git.StashPush(ctx, loc.Repository, loc.RelativePath, message)
	if err != nil {
		return err
	}

	eventType := entities.EventStashPushed
	if !created {
		eventType = entities.EventStashEmpty
	}
	publish(it.events, eventType, map[string]any{
		"path":    loc.RelativePath,
		"message": message,
	})
	return nil
}

// settleSnapshot decides what happens to the snapshot after a failure. Before
// any mutation the file is untouched, so the copy is dropped. Afterwards the
// copy may be the only place the content survives, so it is kept and named
// in the error.
func (it *StashRewriter) settleSnapshot(
	ctx context.Context,
	snapshot entities.TempSnapshot,
	mutated bool,
	cause error,
) error {
	if !mutated {
		if err := it.snapshots.Discard(ctx, snapshot); err != nil {
			return errors.Join(cause, fmt.Errorf("discard snapshot: %w", err))
		}
		return cause
	}

	publish(it.events, entities.EventSnapshotKept, map[string]any{
		"path":     snapshot.RelativePath,
		"snapshot": snapshot.Path,
	})
	return fmt.Errorf("%w (previous content kept in %s)", cause, snapshot.Path)
}

func (it *StashRewriter) fail(step entities.Step, loc entities.FileLocation, err error) error {
	return &entities.RevertAndStashFailedError{Step: step, Path: loc.RelativePath, Err: err}
}

// readWorkingTreeFile returns a regular file's bytes and permission bits, or
// a symbolic link's target. Links are never followed.
func readWorkingTreeFile(path string) (entities.Blob, error) {
	info, err := os.Lstat(path)
	if err != nil {
		return entities.Blob{}, err
	}

	switch {
	case info.Mode()&fs.ModeSymlink != 0:
		target, linkErr := os.Readlink(path)
		if linkErr != nil {
			return entities.Blob{}, linkErr
		}
		return entities.Blob{Data: []byte(target), Mode: fs.ModeSymlink | fs.ModePerm}, nil

	case info.Mode().IsRegular():
		data, readErr := os.ReadFile(path)
		if readErr != nil {
			return entities.Blob{}, readErr
		}
		return entities.Blob{Data: data, Mode: info.Mode().Perm()}, nil

	default:
		return entities.Blob{}, fmt.Errorf(
			"%w: %s is not a regular file or symbolic link", entities.ErrInvalidPath, path,
		)
	}
}

// clearWorkingTreePath removes a file or link so it can be recreated. A
// directory in the way is an error.
func clearWorkingTreePath(path string) error {
	info, err := os.Lstat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("inspect working tree path: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("%w: %s is a directory", entities.ErrInvalidPath, path)
	}

	if err = os.Remove(path); err != nil {
		return fmt.Errorf("remove working tree path: %w", err)
	}
	return nil
}
