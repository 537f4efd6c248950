// internal/poller/modbus/client.go
package modbus

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/goburrow/modbus"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// registerReader is the subset of modbus.Client used here.
type registerReader interface {
	ReadInputRegisters(address, quantity uint16) ([]byte, error)
}

// Client implements poller.Transport over Modbus RTU.
// It serializes requests: one serial line, one request in flight.
type Client struct {
	mu      sync.Mutex
	handler *modbus.RTUClientHandler
	client  registerReader
}

// Config is minimal serial transport config.
type Config struct {
	Port     string
	BaudRate int
	DataBits int
	Parity   string
	StopBits int
	SlaveID  uint8
	Timeout  time.Duration

	// Logger, when set, receives raw frame traces at debug level.
	Logger *zap.Logger
}

// New opens the serial port.
func New(cfg Config) (*Client, error) {
	if cfg.Port == "" {
		return nil, errors.New("modbus client: port required")
	}

	h := modbus.NewRTUClientHandler(cfg.Port)
	h.BaudRate = cfg.BaudRate
	h.DataBits = cfg.DataBits
	h.Parity = cfg.Parity
	h.StopBits = cfg.StopBits
	h.SlaveId = cfg.SlaveID
	if cfg.Timeout > 0 {
		h.Timeout = cfg.Timeout
	}
	if cfg.Logger != nil {
		std, err := zap.NewStdLogAt(cfg.Logger.Named("modbus"), zapcore.DebugLevel)
		if err == nil {
			h.Logger = std
		}
	}

	if err := h.Connect(); err != nil {
		return nil, fmt.Errorf("modbus client: open %s: %w", cfg.Port, err)
	}

	return &Client{
		handler: h,
		client:  modbus.NewClient(h),
	}, nil
}

// Close releases the serial port.
func (c *Client) Close() error {
	if c == nil || c.handler == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.handler.Close()
}

// ReadInputRegisters issues function code 4 and returns the words in
// wire order.
func (c *Client) ReadInputRegisters(addr, qty uint16) ([]uint16, error) {
	if c == nil || c.client == nil {
		return nil, errors.New("modbus client: not connected")
	}
	if qty == 0 {
		return nil, nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	p, err := c.client.ReadInputRegisters(addr, qty)
	if err != nil {
		return nil, err
	}
	if len(p)%2 != 0 {
		return nil, fmt.Errorf("modbus: read-registers byte count not even: %d", len(p))
	}
	return unpackRegisters(p), nil
}

func unpackRegisters(data []byte) []uint16 {
	n := len(data) / 2
	out := make([]uint16, n)
	for i := 0; i < n; i++ {
		out[i] = uint16(data[2*i])<<8 | uint16(data[2*i+1])
	}
	return out
}
