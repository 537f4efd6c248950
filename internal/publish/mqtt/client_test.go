// internal/publish/mqtt/client_test.go
package mqtt

import (
	"context"
	"errors"
	"testing"
	"time"

	paho "github.com/eclipse/paho.mqtt.golang"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// ---- fakes ----

type fakeToken struct {
	err  error
	done chan struct{}
}

func newToken(err error) *fakeToken {
	t := &fakeToken{err: err, done: make(chan struct{})}
	close(t.done)
	return t
}

func (t *fakeToken) Wait() bool                     { return true }
func (t *fakeToken) WaitTimeout(time.Duration) bool { return true }
func (t *fakeToken) Done() <-chan struct{}          { return t.done }
func (t *fakeToken) Error() error                   { return t.err }

type published struct {
	topic    string
	qos      byte
	retained bool
	payload  interface{}
}

// fakePaho implements only what Client calls; the embedded interface
// panics on anything else.
type fakePaho struct {
	paho.Client

	pubErr       error
	sent         []published
	disconnected bool
}

func (f *fakePaho) Publish(topic string, qos byte, retained bool, payload interface{}) paho.Token {
	if f.pubErr != nil {
		return newToken(f.pubErr)
	}
	f.sent = append(f.sent, published{topic, qos, retained, payload})
	return newToken(nil)
}

func (f *fakePaho) Disconnect(uint)        { f.disconnected = true }
func (f *fakePaho) IsConnectionOpen() bool { return !f.disconnected }

func newTestClient(fp *fakePaho, log *zap.Logger) *Client {
	if log == nil {
		log = zap.NewNop()
	}
	return &Client{cli: fp, events: make(chan Event, eventBuffer), log: log}
}

// ---- tests ----

func TestPublish_AtLeastOnceNotRetained(t *testing.T) {
	fp := &fakePaho{}
	c := newTestClient(fp, nil)

	require.NoError(t, c.Publish("meters/solis/kwh_today_kwh", "37.3"))

	require.Len(t, fp.sent, 1)
	assert.Equal(t, "meters/solis/kwh_today_kwh", fp.sent[0].topic)
	assert.Equal(t, QoSAtLeastOnce, fp.sent[0].qos)
	assert.False(t, fp.sent[0].retained)
	assert.Equal(t, "37.3", fp.sent[0].payload)
}

func TestPublish_PropagatesTokenError(t *testing.T) {
	boom := errors.New("not connected")
	c := newTestClient(&fakePaho{pubErr: boom}, nil)

	assert.ErrorIs(t, c.Publish("t", "p"), boom)
}

func TestClose_Disconnects(t *testing.T) {
	fp := &fakePaho{}
	c := newTestClient(fp, nil)

	assert.True(t, c.Connected())
	require.NoError(t, c.Close())
	assert.True(t, fp.disconnected)
	assert.False(t, c.Connected())
}

func TestEmit_NeverBlocks(t *testing.T) {
	c := newTestClient(&fakePaho{}, nil)

	for i := 0; i < eventBuffer*3; i++ {
		c.emit(Event{Kind: EventReconnecting})
	}
	assert.Len(t, c.Events(), eventBuffer)
}

func TestRunEvents_LogsAndStopsOnCancel(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	c := newTestClient(&fakePaho{}, zap.New(core))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		c.RunEvents(ctx)
		close(done)
	}()

	lostAt := time.Date(2022, 8, 17, 19, 25, 45, 0, time.UTC)
	c.emit(Event{Kind: EventConnectionLost, At: lostAt, Err: errors.New("eof")})
	c.emit(Event{Kind: EventConnected})

	require.Eventually(t, func() bool {
		return logs.FilterMessage("mqtt connection lost").Len() == 1 &&
			logs.FilterMessage("mqtt event").Len() == 1
	}, time.Second, 5*time.Millisecond)

	lost := logs.FilterMessage("mqtt connection lost").All()[0].ContextMap()
	assert.True(t, lostAt.Equal(lost["at"].(time.Time)))
	connected := logs.FilterMessage("mqtt event").All()[0].ContextMap()
	assert.False(t, connected["at"].(time.Time).IsZero())

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatalf("RunEvents did not return after cancel")
	}
}

func TestNew_RejectsMissingFields(t *testing.T) {
	_, err := New(Config{ClientID: "x"}, nil)
	assert.Error(t, err)

	_, err = New(Config{Broker: "tcp://localhost:1883"}, nil)
	assert.Error(t, err)
}

func TestEventKind_String(t *testing.T) {
	assert.Equal(t, "connected", EventConnected.String())
	assert.Equal(t, "connection_lost", EventConnectionLost.String())
	assert.Equal(t, "reconnecting", EventReconnecting.String())
	assert.Equal(t, "unknown", EventKind(42).String())
}
