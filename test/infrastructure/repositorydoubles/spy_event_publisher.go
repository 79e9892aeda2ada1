//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/gitrevert/internal/domain/repositories"
)

// PublishedEvent records a single call to Publish.
type PublishedEvent struct {
	Type string
	Data map[string]any
}

// SpyEventPublisher collects every published event.
type SpyEventPublisher struct {
	Events []PublishedEvent
}

var _ repositories.EventPublisher = (*SpyEventPublisher)(nil)

func (s *SpyEventPublisher) Publish(eventType string, data map[string]any) {
	s.Events = append(s.Events, PublishedEvent{Type: eventType, Data: data})
}

// Types returns the event types in publication order.
func (s *SpyEventPublisher) Types() []string {
	types := make([]string, 0, len(s.Events))
	for _, event := range s.Events {
		types = append(types, event.Type)
	}
	return types
}

// Find returns the first event of the given type.
func (s *SpyEventPublisher) Find(eventType string) (PublishedEvent, bool) {
	for _, event := range s.Events {
		if event.Type == eventType {
			return event, true
		}
	}
	return PublishedEvent{}, false
}
