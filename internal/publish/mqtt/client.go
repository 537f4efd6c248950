// internal/publish/mqtt/client.go
package mqtt

import (
	"context"
	"errors"
	"fmt"
	"time"

	paho "github.com/eclipse/paho.mqtt.golang"
	"go.uber.org/zap"
)

// QoSAtLeastOnce is the only delivery level the bridge uses.
const QoSAtLeastOnce byte = 1

const (
	eventBuffer     = 16
	disconnectQuiet = 250 // ms
)

type Config struct {
	Broker         string
	ClientID       string
	Username       string
	Password       string
	KeepAlive      time.Duration
	ConnectTimeout time.Duration
}

// Client implements publish.Client over one broker connection.
// paho's client is safe for concurrent use; Client adds no shared state
// besides the event channel.
type Client struct {
	cli    paho.Client
	events chan Event
	log    *zap.Logger
}

// New connects to the broker. Connection failure is fatal at startup.
func New(cfg Config, log *zap.Logger) (*Client, error) {
	if cfg.Broker == "" {
		return nil, errors.New("mqtt: broker required")
	}
	if cfg.ClientID == "" {
		return nil, errors.New("mqtt: client id required")
	}
	if log == nil {
		log = zap.NewNop()
	}

	c := &Client{
		events: make(chan Event, eventBuffer),
		log:    log,
	}

	opts := paho.NewClientOptions().
		AddBroker(cfg.Broker).
		SetClientID(cfg.ClientID).
		SetKeepAlive(cfg.KeepAlive).
		SetConnectTimeout(cfg.ConnectTimeout).
		SetAutoReconnect(true).
		SetOnConnectHandler(func(paho.Client) {
			c.emit(Event{Kind: EventConnected})
		}).
		SetConnectionLostHandler(func(_ paho.Client, err error) {
			c.emit(Event{Kind: EventConnectionLost, Err: err})
		}).
		SetReconnectingHandler(func(paho.Client, *paho.ClientOptions) {
			c.emit(Event{Kind: EventReconnecting})
		})
	if cfg.Username != "" {
		opts.SetUsername(cfg.Username)
		opts.SetPassword(cfg.Password)
	}

	c.cli = paho.NewClient(opts)

	if err := c.connect(cfg.ConnectTimeout); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Client) connect(timeout time.Duration) error {
	tok := c.cli.Connect()
	if timeout > 0 {
		if !tok.WaitTimeout(timeout) {
			return fmt.Errorf("mqtt: connect: timed out after %s", timeout)
		}
	} else {
		tok.Wait()
	}
	if err := tok.Error(); err != nil {
		return fmt.Errorf("mqtt: connect: %w", err)
	}
	return nil
}

// Publish submits payload with QoS 1, not retained, and waits for the broker ack.
// No timeout of its own: paho's reconnect behaviour applies.
func (c *Client) Publish(topic, payload string) error {
	tok := c.cli.Publish(topic, QoSAtLeastOnce, false, payload)
	tok.Wait()
	return tok.Error()
}

// Connected reports whether the broker connection is currently up.
func (c *Client) Connected() bool {
	return c.cli.IsConnectionOpen()
}

// Close disconnects, letting in-flight work finish briefly.
func (c *Client) Close() error {
	c.cli.Disconnect(disconnectQuiet)
	return nil
}

// Events exposes connection notifications. RunEvents is the usual consumer.
func (c *Client) Events() <-chan Event {
	return c.events
}

// RunEvents drains connection notifications until ctx is cancelled.
// It is the connection-liveness task and shares nothing with the poll pass.
func (c *Client) RunEvents(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			c.log.Debug("mqtt event loop stopped")
			return
		case ev := <-c.events:
			c.logEvent(ev)
		}
	}
}

func (c *Client) logEvent(ev Event) {
	switch ev.Kind {
	case EventConnectionLost:
		c.log.Warn("mqtt connection lost", zap.Time("at", ev.At), zap.Error(ev.Err))
	case EventReconnecting:
		c.log.Info("mqtt reconnecting", zap.Time("at", ev.At))
	default:
		c.log.Info("mqtt event", zap.Stringer("event", ev.Kind), zap.Time("at", ev.At))
	}
}

// emit never blocks paho's callback goroutine; events are dropped when full.
func (c *Client) emit(ev Event) {
	if ev.At.IsZero() {
		ev.At = time.Now()
	}
	select {
	case c.events <- ev:
	default:
	}
}
