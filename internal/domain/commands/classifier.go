package commands

import (
	"context"
	"errors"

	"github.com/rios0rios0/gitrevert/internal/domain/entities"
	"github.com/rios0rios0/gitrevert/internal/domain/repositories"
)

// PresenceClassifier decides whether a file exists in HEAD and in HEAD's parent.
type PresenceClassifier struct {
	git    repositories.GitRepository
	events repositories.EventPublisher
}

// NewPresenceClassifier creates a new PresenceClassifier.
func NewPresenceClassifier(
	git repositories.GitRepository,
	events repositories.EventPublisher,
) *PresenceClassifier {
	return &PresenceClassifier{git: git, events: events}
}

// Classify runs both probes (no short-circuit) and combines them. A probe
// that cannot read the file counts as "absent", including when the revision
// itself does not exist (unborn HEAD, root commit without parent).
func (it *PresenceClassifier) Classify(ctx context.Context, loc entities.FileLocation) entities.PresenceState {
	inCurrent := it.probe(ctx, loc, entities.RevisionCurrent)
	inPrevious := it.probe(ctx, loc, entities.RevisionPrevious)

	state := entities.NewPresenceState(inCurrent, inPrevious)
	publish(it.events, entities.EventPresenceClassified, map[string]any{
		"path":  loc.RelativePath,
		"state": state.String(),
	})
	return state
}

func (it *PresenceClassifier) probe(ctx context.Context, loc entities.FileLocation, revision entities.Revision) bool {
	_, err := it.git.ReadFileAt(ctx, loc.Repository, revision, loc.RelativePath)
	if err == nil {
		return true
	}

	if !errors.Is(err, entities.ErrNotFoundAtRevision) {
		publish(it.events, entities.EventProbeFailed, map[string]any{
			"path":     loc.RelativePath,
			"revision": string(revision),
			"error":    err.Error(),
		})
	}
	return false
}
