// internal/config/normalize.go
package config

import (
	"strings"
	"time"
)

// Normalize applies post-validation normalization.
// It is allowed to mutate configuration.
// It MUST be called only after Validate().
func Normalize(cfg *Config) {
	if cfg == nil {
		return
	}

	// Zero timeouts fall back to the protocol defaults.
	if cfg.Source.TimeoutMs == 0 {
		cfg.Source.TimeoutMs = 5000
	}
	if cfg.MQTT.KeepAliveMs == 0 {
		cfg.MQTT.KeepAliveMs = 5000
	}
	if cfg.MQTT.ConnectTimeoutMs == 0 {
		cfg.MQTT.ConnectTimeoutMs = 10000
	}

	cfg.Log.Level = strings.ToLower(cfg.Log.Level)
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
}

// ReadTimeout is the per-read bound applied by the poller.
func (s SourceConfig) ReadTimeout() time.Duration {
	return time.Duration(s.TimeoutMs) * time.Millisecond
}

func (m MQTTConfig) KeepAlive() time.Duration {
	return time.Duration(m.KeepAliveMs) * time.Millisecond
}

func (m MQTTConfig) ConnectTimeout() time.Duration {
	return time.Duration(m.ConnectTimeoutMs) * time.Millisecond
}

func (p PollConfig) Interval() time.Duration {
	return time.Duration(p.IntervalMs) * time.Millisecond
}
