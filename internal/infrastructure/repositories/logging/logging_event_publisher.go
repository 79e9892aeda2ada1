package logging

import (
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/gitrevert/internal/domain/entities"
	"github.com/rios0rios0/gitrevert/internal/domain/repositories"
)

//nolint:gochecknoglobals // lookup table
var eventMessages = map[string]string{
	entities.EventFileLocated:        "File located",
	entities.EventPresenceClassified: "Presence classified",
	entities.EventProbeFailed:        "Could not read file at revision, treating it as absent",
	entities.EventFileReverted:       "File reverted",
	entities.EventFileSkipped:        "File skipped",
	entities.EventFileFailed:         "File failed",
	entities.EventSnapshotTaken:      "Snapshot taken",
	entities.EventSnapshotKept:       "Snapshot kept after a failure, previous content can be recovered from it",
	entities.EventCommitAmended:      "Commit amended",
	entities.EventStashPushed:        "Stash entry created",
	entities.EventStashEmpty:         "Nothing left to stash",
}

// EventPublisher turns domain events into structured log entries.
type EventPublisher struct {
	log *logger.Logger
}

var _ repositories.EventPublisher = (*EventPublisher)(nil)

// NewEventPublisher creates an EventPublisher on the standard logger.
func NewEventPublisher() *EventPublisher {
	return NewEventPublisherWithLogger(logger.StandardLogger())
}

// NewEventPublisherWithLogger creates an EventPublisher on the given logger.
func NewEventPublisherWithLogger(log *logger.Logger) *EventPublisher {
	return &EventPublisher{log: log}
}

// Publish logs warnings for events that need the user's attention and
// everything else at debug level.
func (it *EventPublisher) Publish(eventType string, data map[string]any) {
	entry := it.log.WithFields(logger.Fields(data)).WithField("event", eventType)

	message, ok := eventMessages[eventType]
	if !ok {
		message = eventType
	}

	switch eventType {
	case entities.EventProbeFailed, entities.EventSnapshotKept:
		entry.Warn(message)
	default:
		entry.Debug(message)
	}
}
