// internal/poller/types.go
package poller

import (
	"time"

	"github.com/tfheen/solis-mqtt/internal/publish"
	"github.com/tfheen/solis-mqtt/internal/register"
)

// Transport is the register read capability (Modbus function code 4).
// Framing, addressing and CRC live behind it.
type Transport interface {
	ReadInputRegisters(addr, qty uint16) ([]uint16, error)
}

// Publisher turns values into published messages.
// Format is pure; it names the message before it is sent.
type Publisher interface {
	Format(d register.Descriptor, value float64) publish.Message
	PublishReading(d register.Descriptor, value float64) (publish.Message, error)
	PublishOnline(at time.Time) (publish.Message, error)
}

// Reading is one descriptor's outcome within a pass.
type Reading struct {
	Descriptor register.Descriptor
	Raw        []uint16
	Value      float64
	Message    publish.Message
}

// PassResult is what one pass produced.
// On failure it holds the readings published before the abort.
type PassResult struct {
	ID        string
	StartedAt time.Time
	Readings  []Reading
	Online    *publish.Message // nil unless the pass completed
}

// State tracks progress through a pass.
type State int32

const (
	StateIdle State = iota
	StateReadPending
	StateLivenessPublish
	StateDone
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateReadPending:
		return "read_pending"
	case StateLivenessPublish:
		return "liveness_publish"
	case StateDone:
		return "done"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}
