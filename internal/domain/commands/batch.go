package commands

import (
	"github.com/rios0rios0/gitrevert/internal/domain/entities"
	"github.com/rios0rios0/gitrevert/internal/domain/repositories"
)

func failedOutcome(path string, err error) entities.FileOutcome {
	return entities.FileOutcome{Path: path, Status: entities.OutcomeFailed, Err: err}
}

func publishLocated(events repositories.EventPublisher, path string, loc entities.FileLocation) {
	publish(events, entities.EventFileLocated, map[string]any{
		"input":      path,
		"repository": loc.Repository.RootPath,
		"path":       loc.RelativePath,
	})
}

// recordOutcome publishes skipped and failed files. Successful ones were
// already announced by the step that processed them.
func recordOutcome(events repositories.EventPublisher, outcome entities.FileOutcome) {
	switch outcome.Status {
	case entities.OutcomeSkipped:
		publish(events, entities.EventFileSkipped, map[string]any{"path": outcome.Path})
	case entities.OutcomeFailed:
		publish(events, entities.EventFileFailed, map[string]any{
			"path":  outcome.Path,
			"error": outcome.Err.Error(),
		})
	case entities.OutcomeReverted, entities.OutcomeStashed:
	}
}
