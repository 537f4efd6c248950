// internal/poller/errors.go
package poller

import (
	"errors"
	"fmt"
)

// ErrReadTimeout marks a read that exceeded the per-read bound.
var ErrReadTimeout = errors.New("poller: read timed out")

// TransportError is a failed or timed-out register read.
type TransportError struct {
	Name    string
	Address uint16
	Count   uint16
	Err     error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("poller: read %q (%d words at %d): %v", e.Name, e.Count, e.Address, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// Timeout reports whether the read hit the per-read bound.
func (e *TransportError) Timeout() bool {
	return errors.Is(e.Err, ErrReadTimeout)
}
