package repositories

// EventPublisher receives structured events about the files being processed.
// Publishing is fire-and-forget; it never influences control flow.
type EventPublisher interface {
	Publish(eventType string, data map[string]any)
}
