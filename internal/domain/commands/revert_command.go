package commands

import (
	"context"
	"fmt"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/gitrevert/internal/domain/entities"
	"github.com/rios0rios0/gitrevert/internal/domain/repositories"
)

// Revert is the interface for the revert command.
type Revert interface {
	Execute(ctx context.Context, opts RevertOptions) (*entities.BatchResult, error)
}

// RevertOptions holds runtime options for the revert command.
type RevertOptions struct {
	Paths     []string
	AssumeYes bool // Skip the confirmation asked for files with uncommitted changes
}

// RevertCommand rolls each given file back to its version in HEAD's parent.
type RevertCommand struct {
	locator    *Locator
	reconciler *HistoryReconciler
	git        repositories.GitRepository
	prompt     repositories.PromptRepository
	events     repositories.EventPublisher
}

// NewRevertCommand creates a new RevertCommand.
func NewRevertCommand(
	locator *Locator,
	reconciler *HistoryReconciler,
	git repositories.GitRepository,
	prompt repositories.PromptRepository,
	events repositories.EventPublisher,
) *RevertCommand {
	return &RevertCommand{
		locator:    locator,
		reconciler: reconciler,
		git:        git,
		prompt:     prompt,
		events:     events,
	}
}

// Execute processes the files in the given order. A failing file does not
// stop the batch; its error is recorded in the returned result.
func (it *RevertCommand) Execute(ctx context.Context, opts RevertOptions) (*entities.BatchResult, error) {
	if len(opts.Paths) == 0 {
		return nil, entities.ErrNoPaths
	}

	result := &entities.BatchResult{}
	for _, path := range opts.Paths {
		outcome := it.revertFile(ctx, path, opts.AssumeYes)
		recordOutcome(it.events, outcome)
		result.Add(outcome)
	}

	logger.Debugf("Reverted %d of %d file(s)", result.Processed(), len(opts.Paths))
	return result, nil
}

func (it *RevertCommand) revertFile(ctx context.Context, path string, assumeYes bool) entities.FileOutcome {
	loc, err := it.locator.Resolve(ctx, path)
	if err != nil {
		return failedOutcome(path, err)
	}
	publishLocated(it.events, path, loc)

	if !assumeYes {
		proceed, confirmErr := it.confirmDiscard(ctx, loc)
		if confirmErr != nil {
			return failedOutcome(loc.RelativePath, confirmErr)
		}
		if !proceed {
			return entities.FileOutcome{Path: loc.RelativePath, Status: entities.OutcomeSkipped}
		}
	}

	if err = it.reconciler.RevertToPrevious(ctx, loc); err != nil {
		return failedOutcome(loc.RelativePath, err)
	}
	return entities.FileOutcome{Path: loc.RelativePath, Status: entities.OutcomeReverted}
}

// confirmDiscard asks before overwriting uncommitted work. Clean files need no confirmation.
func (it *RevertCommand) confirmDiscard(ctx context.Context, loc entities.FileLocation) (bool, error) {
	dirty, err := it.git.HasUncommittedChanges(ctx, loc.Repository, loc.RelativePath)
	if err != nil {
		return false, fmt.Errorf("check uncommitted changes: %w", err)
	}
	if !dirty {
		return true, nil
	}

	question := fmt.Sprintf("%s has uncommitted changes that will be lost. Revert anyway?", loc.RelativePath)
	confirmed, err := it.prompt.Confirm(ctx, question)
	if err != nil {
		return false, fmt.Errorf("confirmation prompt: %w", err)
	}
	return confirmed, nil
}
