// internal/publish/publisher.go
package publish

import (
	"errors"
	"strconv"
	"time"

	"github.com/tfheen/solis-mqtt/internal/register"
)

// Adapter formats readings into messages and hands them to a Client.
// It holds no state beyond the device identifier.
type Adapter struct {
	device string
	client Client
}

func NewAdapter(device string, client Client) (*Adapter, error) {
	if device == "" {
		return nil, errors.New("publish: device required")
	}
	if client == nil {
		return nil, errors.New("publish: client required")
	}
	return &Adapter{device: device, client: client}, nil
}

// Format builds the message for d without publishing it.
func (a *Adapter) Format(d register.Descriptor, value float64) Message {
	return Message{
		Topic:   DeriveTopic(a.device, d.Name, d.Unit),
		Payload: register.FormatValue(value),
	}
}

// PublishReading publishes one decoded value.
func (a *Adapter) PublishReading(d register.Descriptor, value float64) (Message, error) {
	return a.send(a.Format(d, value))
}

// PublishOnline publishes the liveness beacon: Unix seconds of at.
func (a *Adapter) PublishOnline(at time.Time) (Message, error) {
	return a.send(Message{
		Topic:   OnlineTopic(a.device),
		Payload: strconv.FormatInt(at.Unix(), 10),
	})
}

func (a *Adapter) send(m Message) (Message, error) {
	if err := a.client.Publish(m.Topic, m.Payload); err != nil {
		return m, &PublishError{Topic: m.Topic, Err: err}
	}
	return m, nil
}
