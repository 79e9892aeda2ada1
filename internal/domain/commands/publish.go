package commands

import "github.com/rios0rios0/gitrevert/internal/domain/repositories"

// publish forwards an event when a publisher is configured.
func publish(publisher repositories.EventPublisher, eventType string, data map[string]any) {
	if publisher == nil {
		return
	}
	if data == nil {
		data = make(map[string]any)
	}
	publisher.Publish(eventType, data)
}
