// cmd/solis-mqtt/exitcode.go
package main

import (
	"errors"

	"github.com/tfheen/solis-mqtt/internal/poller"
	"github.com/tfheen/solis-mqtt/internal/publish"
	"github.com/tfheen/solis-mqtt/internal/register"
)

// Exit codes let a supervisor tell failure classes apart.
const (
	exitGeneric   = 1
	exitConfig    = 2
	exitTransport = 3
	exitDecode    = 4
	exitPublish   = 5
)

// configFailure marks errors from loading or validating the config file.
type configFailure struct {
	err error
}

func (e *configFailure) Error() string { return e.err.Error() }

func (e *configFailure) Unwrap() error { return e.err }

// exitCode classifies err without assuming where it was wrapped.
// Unclassified errors map to exitGeneric.
func exitCode(err error) int {
	if err == nil {
		return 0
	}

	var cf *configFailure
	if errors.As(err, &cf) {
		return exitConfig
	}
	var ce *register.ConfigError
	if errors.As(err, &ce) {
		return exitConfig
	}
	var te *poller.TransportError
	if errors.As(err, &te) {
		return exitTransport
	}
	var de *register.DecodeError
	if errors.As(err, &de) {
		return exitDecode
	}
	var pe *publish.PublishError
	if errors.As(err, &pe) {
		return exitPublish
	}

	return exitGeneric
}

func errorKind(err error) string {
	switch exitCode(err) {
	case 0:
		return "none"
	case exitConfig:
		return "config"
	case exitTransport:
		return "transport"
	case exitDecode:
		return "decode"
	case exitPublish:
		return "publish"
	default:
		return "generic"
	}
}
