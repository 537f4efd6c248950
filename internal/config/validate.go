// internal/config/validate.go
package config

import (
	"fmt"
	"net/url"
	"strings"
)

// Validate checks configuration correctness.
// It performs declarative validation only.
// It MUST NOT mutate configuration.
func Validate(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config: nil config")
	}

	// ------------------------------------------------------------
	// SOURCE (serial line)
	// ------------------------------------------------------------

	s := cfg.Source
	if s.Port == "" {
		return fmt.Errorf("source: port is required")
	}
	if s.BaudRate <= 0 {
		return fmt.Errorf("source: baud_rate must be > 0, got %d", s.BaudRate)
	}
	if s.DataBits < 5 || s.DataBits > 8 {
		return fmt.Errorf("source: data_bits must be 5..8, got %d", s.DataBits)
	}
	switch s.Parity {
	case "N", "E", "O":
	default:
		return fmt.Errorf("source: parity must be one of N, E, O, got %q", s.Parity)
	}
	if s.StopBits != 1 && s.StopBits != 2 {
		return fmt.Errorf("source: stop_bits must be 1 or 2, got %d", s.StopBits)
	}
	// 0 is broadcast, 248..255 reserved
	if s.SlaveID == 0 || s.SlaveID > 247 {
		return fmt.Errorf("source: slave_id must be 1..247, got %d", s.SlaveID)
	}
	if s.TimeoutMs < 0 {
		return fmt.Errorf("source: timeout_ms must be >= 0, got %d", s.TimeoutMs)
	}

	// ------------------------------------------------------------
	// MQTT
	// ------------------------------------------------------------

	m := cfg.MQTT
	if m.Broker == "" {
		return fmt.Errorf("mqtt: broker is required")
	}
	u, err := url.Parse(m.Broker)
	if err != nil {
		return fmt.Errorf("mqtt: broker %q: %w", m.Broker, err)
	}
	switch u.Scheme {
	case "tcp", "ssl", "tls", "mqtt", "mqtts", "ws", "wss":
	default:
		return fmt.Errorf("mqtt: broker %q: unsupported scheme %q", m.Broker, u.Scheme)
	}
	if m.ClientID == "" {
		return fmt.Errorf("mqtt: client_id is required")
	}
	if m.KeepAliveMs < 0 || m.ConnectTimeoutMs < 0 {
		return fmt.Errorf("mqtt: keep_alive_ms and connect_timeout_ms must be >= 0")
	}

	// ------------------------------------------------------------
	// DEVICE IDENTIFIER (topic segment)
	// ------------------------------------------------------------

	if cfg.Device == "" {
		return fmt.Errorf("device is required")
	}
	if strings.ContainsAny(cfg.Device, "/+#") {
		return fmt.Errorf("device %q must not contain '/', '+' or '#'", cfg.Device)
	}

	if cfg.Poll.IntervalMs < 0 {
		return fmt.Errorf("poll: interval_ms must be >= 0, got %d", cfg.Poll.IntervalMs)
	}

	switch strings.ToLower(cfg.Log.Level) {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log: unknown level %q", cfg.Log.Level)
	}

	return nil
}
