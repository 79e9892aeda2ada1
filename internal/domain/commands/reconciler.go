package commands

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/rios0rios0/gitrevert/internal/domain/entities"
	"github.com/rios0rios0/gitrevert/internal/domain/repositories"
)

// HistoryReconciler rolls a file back to its state in HEAD's parent.
type HistoryReconciler struct {
	git        repositories.GitRepository
	classifier *PresenceClassifier
	events     repositories.EventPublisher
}

// NewHistoryReconciler creates a new HistoryReconciler.
func NewHistoryReconciler(
	git repositories.GitRepository,
	classifier *PresenceClassifier,
	events repositories.EventPublisher,
) *HistoryReconciler {
	return &HistoryReconciler{git: git, classifier: classifier, events: events}
}

// RevertToPrevious makes the working tree and index hold the parent commit's
// version of the file. Every failure is a *entities.RevertFailedError.
//
//   - present in neither commit: ErrNothingToRevert
//   - present only in the parent: restored from the parent (undelete)
//   - present in both: overwritten with the parent's content
//   - present only in HEAD: removed from the index and the working tree
func (it *HistoryReconciler) RevertToPrevious(ctx context.Context, loc entities.FileLocation) error {
	state := it.classifier.Classify(ctx, loc)

	// The action below must not be interrupted half-way.
	ctx = context.WithoutCancel(ctx)

	switch state {
	case entities.PresentInNeither:
		return it.fail(entities.StepClassify, loc, entities.ErrNothingToRevert)

	case entities.PresentOnlyInPrevious, entities.PresentInBoth:
		if err := it.git.Checkout(ctx, loc.Repository, entities.RevisionPrevious, loc.RelativePath); err != nil {
			return it.fail(entities.StepRestore, loc, err)
		}

	case entities.PresentOnlyInCurrent:
		if err := it.remove(ctx, loc); err != nil {
			return it.fail(entities.StepRemove, loc, err)
		}

	default:
		return it.fail(entities.StepClassify, loc, fmt.Errorf("unhandled presence state %d", state))
	}

	publish(it.events, entities.EventFileReverted, map[string]any{
		"path":  loc.RelativePath,
		"state": state.String(),
	})
	return nil
}

// remove deletes the file from the index and the working tree. git removes
// both in one command; a working tree file that was not indexed is deleted
// afterwards, and if that fails the index entry is put back.
func (it *HistoryReconciler) remove(ctx context.Context, loc entities.FileLocation) error {
	if err := it.git.Remove(ctx, loc.Repository, loc.RelativePath); err != nil {
		return err
	}

	removeErr := os.Remove(loc.AbsolutePath)
	if removeErr == nil || errors.Is(removeErr, fs.ErrNotExist) {
		return nil
	}

	if resetErr := it.git.ResetPath(ctx, loc.Repository, loc.RelativePath); resetErr != nil {
		return errors.Join(
			fmt.Errorf("delete working tree file: %w", removeErr),
			fmt.Errorf("restore index entry: %w", resetErr),
		)
	}
	return fmt.Errorf("delete working tree file: %w", removeErr)
}

func (it *HistoryReconciler) fail(step entities.Step, loc entities.FileLocation, err error) error {
	return &entities.RevertFailedError{Step: step, Path: loc.RelativePath, Err: err}
}
