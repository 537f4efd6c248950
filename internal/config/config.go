// internal/config/config.go
package config

type Config struct {
	Source SourceConfig `yaml:"source"`
	MQTT   MQTTConfig   `yaml:"mqtt"`
	Device string       `yaml:"device"`
	Poll   PollConfig   `yaml:"poll"`
	Log    LogConfig    `yaml:"log"`
}

// ---- SOURCE (serial line to the inverter) ----

type SourceConfig struct {
	Port      string `yaml:"port"`
	BaudRate  int    `yaml:"baud_rate"`
	DataBits  int    `yaml:"data_bits"`
	Parity    string `yaml:"parity"`
	StopBits  int    `yaml:"stop_bits"`
	SlaveID   uint8  `yaml:"slave_id"`
	TimeoutMs int    `yaml:"timeout_ms"`
}

// ---- MQTT ----

type MQTTConfig struct {
	Broker           string `yaml:"broker"`
	ClientID         string `yaml:"client_id"`
	Username         string `yaml:"username"`
	Password         string `yaml:"password"`
	KeepAliveMs      int    `yaml:"keep_alive_ms"`
	ConnectTimeoutMs int    `yaml:"connect_timeout_ms"`
}

// ---- POLL ----

type PollConfig struct {
	// IntervalMs == 0 runs a single pass and exits.
	IntervalMs int `yaml:"interval_ms"`
}

// ---- LOG ----

type LogConfig struct {
	Level       string `yaml:"level"`
	Development bool   `yaml:"development"`
}
