// internal/publish/mqtt/events.go
package mqtt

import "time"

// EventKind classifies broker connection notifications.
type EventKind int

const (
	EventConnected EventKind = iota
	EventConnectionLost
	EventReconnecting
)

func (k EventKind) String() string {
	switch k {
	case EventConnected:
		return "connected"
	case EventConnectionLost:
		return "connection_lost"
	case EventReconnecting:
		return "reconnecting"
	default:
		return "unknown"
	}
}

// Event is one connection notification.
type Event struct {
	Kind EventKind
	At   time.Time
	Err  error
}
