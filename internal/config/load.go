// internal/config/load.go
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Default returns the configuration the bridge runs with when no file is given.
func Default() Config {
	return Config{
		Source: SourceConfig{
			Port:      "/dev/ttyUSB0",
			BaudRate:  9600,
			DataBits:  8,
			Parity:    "N",
			StopBits:  1,
			SlaveID:   1,
			TimeoutMs: 5000,
		},
		MQTT: MQTTConfig{
			Broker:           "tcp://mqtt:1883",
			ClientID:         "solis-logger",
			KeepAliveMs:      5000,
			ConnectTimeoutMs: 10000,
		},
		Device: "solis",
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load reads a yaml file on top of Default().
// Keys absent from the file (or an empty file) keep their default value.
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	cfg := Default()

	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return &cfg, nil
}

// EnvBroker overrides mqtt.broker when set.
const EnvBroker = "SOLIS_MQTT_BROKER"

// ApplyEnv applies environment overrides. Call it before Validate().
func ApplyEnv(cfg *Config) {
	if cfg == nil {
		return
	}
	if v := os.Getenv(EnvBroker); v != "" {
		cfg.MQTT.Broker = v
	}
}
