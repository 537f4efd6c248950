// internal/register/errors.go
package register

import (
	"errors"
	"fmt"
)

// ErrUnexpectedLength is matched by a DecodeError via errors.Is.
var ErrUnexpectedLength = errors.New("register: unexpected length")

// ConfigError rejects a descriptor or table at construction time.
type ConfigError struct {
	Name   string
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("register: invalid %s: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("register %q: invalid %s: %s", e.Name, e.Field, e.Reason)
}

// DecodeError reports raw data that violates the descriptor's width.
// It is a protocol violation, never recoverable noise.
type DecodeError struct {
	Name string
	Want int
	Got  int
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("register %q: unexpected length: want %d words, got %d", e.Name, e.Want, e.Got)
}

func (e *DecodeError) Is(target error) bool {
	return target == ErrUnexpectedLength
}
