package commands

import (
	"context"
	"fmt"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/gitrevert/internal/domain/entities"
	"github.com/rios0rios0/gitrevert/internal/domain/repositories"
)

const stashMessagePrompt = "Stash message (leave empty for none): "

// RevertAndStash is the interface for the stash command.
type RevertAndStash interface {
	Execute(ctx context.Context, opts StashOptions) (*entities.BatchResult, error)
}

// StashOptions holds runtime options for the stash command.
type StashOptions struct {
	Paths      []string
	Message    string
	MessageSet bool // The message came from the command line, so no prompt is shown
}

// RevertAndStashCommand reverts each given file and keeps its previous
// content in a stash entry of its own.
type RevertAndStashCommand struct {
	locator  *Locator
	rewriter *StashRewriter
	git      repositories.GitRepository
	prompt   repositories.PromptRepository
	events   repositories.EventPublisher
}

// NewRevertAndStashCommand creates a new RevertAndStashCommand.
func NewRevertAndStashCommand(
	locator *Locator,
	rewriter *StashRewriter,
	git repositories.GitRepository,
	prompt repositories.PromptRepository,
	events repositories.EventPublisher,
) *RevertAndStashCommand {
	return &RevertAndStashCommand{
		locator:  locator,
		rewriter: rewriter,
		git:      git,
		prompt:   prompt,
		events:   events,
	}
}

// Execute checks the git version and resolves the stash message before
// touching anything, then processes the files in the given order.
func (it *RevertAndStashCommand) Execute(ctx context.Context, opts StashOptions) (*entities.BatchResult, error) {
	if len(opts.Paths) == 0 {
		return nil, entities.ErrNoPaths
	}

	if err := it.checkGitVersion(ctx); err != nil {
		return nil, err
	}

	message, err := it.resolveMessage(ctx, opts)
	if err != nil {
		return nil, err
	}

	result := &entities.BatchResult{}
	for _, path := range opts.Paths {
		outcome := it.stashFile(ctx, path, message)
		recordOutcome(it.events, outcome)
		result.Add(outcome)
	}

	logger.Debugf("Stashed %d of %d file(s)", result.Processed(), len(opts.Paths))
	return result, nil
}

func (it *RevertAndStashCommand) checkGitVersion(ctx context.Context) error {
	version, err := it.git.Version(ctx)
	if err != nil {
		return fmt.Errorf("failed to detect git version: %w", err)
	}
	if !entities.SupportsScopedStash(version) {
		return fmt.Errorf(
			"%w: found %q, stashing single files needs %s or newer",
			entities.ErrUnsupportedGitVersion, version, entities.MinimumScopedStashVersion,
		)
	}
	return nil
}

// resolveMessage asks for the stash message once per invocation.
func (it *RevertAndStashCommand) resolveMessage(ctx context.Context, opts StashOptions) (string, error) {
	if opts.MessageSet {
		return opts.Message, nil
	}

	message, ok, err := it.prompt.AskMessage(ctx, stashMessagePrompt)
	if err != nil {
		return "", fmt.Errorf("stash message prompt: %w", err)
	}
	if !ok {
		return "", entities.ErrCancelled
	}
	return message, nil
}

func (it *RevertAndStashCommand) stashFile(ctx context.Context, path, message string) entities.FileOutcome {
	loc, err := it.locator.Resolve(ctx, path)
	if err != nil {
		return failedOutcome(path, err)
	}
	publishLocated(it.events, path, loc)

	if err = it.rewriter.RevertAndStash(ctx, loc, message); err != nil {
		return failedOutcome(loc.RelativePath, err)
	}
	return entities.FileOutcome{Path: loc.RelativePath, Status: entities.OutcomeStashed}
}
