// internal/publish/types.go
package publish

import "fmt"

// Client is the publish capability: deliver at least once, no local buffering.
// Implementations must be safe for concurrent use.
type Client interface {
	Publish(topic, payload string) error
}

// Message is one published (topic, payload) pair.
type Message struct {
	Topic   string
	Payload string
}

// PublishError wraps a capability-level publish failure.
type PublishError struct {
	Topic string
	Err   error
}

func (e *PublishError) Error() string {
	return fmt.Sprintf("publish %s: %v", e.Topic, e.Err)
}

func (e *PublishError) Unwrap() error { return e.Err }
