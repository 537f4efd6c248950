// internal/poller/poller.go
package poller

import (
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/tfheen/solis-mqtt/internal/register"
)

// DefaultReadTimeout bounds each register read.
const DefaultReadTimeout = 5 * time.Second

// Config is the minimal runtime config the poller needs.
type Config struct {
	Table       *register.Table
	ReadTimeout time.Duration
	Interval    time.Duration // 0: Run performs a single pass
}

// Poller is a sequential reader: one descriptor at a time, table order.
type Poller struct {
	cfg       Config
	transport Transport
	pub       Publisher
	log       *zap.Logger
	now       func() time.Time
	state     atomic.Int32
}

type Option func(*Poller)

// WithClock replaces time.Now for the liveness timestamp.
func WithClock(now func() time.Time) Option {
	return func(p *Poller) { p.now = now }
}

// New creates a poller with immutable config.
func New(cfg Config, transport Transport, pub Publisher, log *zap.Logger, opts ...Option) (*Poller, error) {
	if cfg.Table == nil || cfg.Table.Len() == 0 {
		return nil, errors.New("poller: descriptor table required")
	}
	if transport == nil {
		return nil, errors.New("poller: transport required")
	}
	if pub == nil {
		return nil, errors.New("poller: publisher required")
	}
	if cfg.Interval < 0 {
		return nil, errors.New("poller: interval must be >= 0")
	}
	if cfg.ReadTimeout <= 0 {
		cfg.ReadTimeout = DefaultReadTimeout
	}
	if log == nil {
		log = zap.NewNop()
	}

	p := &Poller{
		cfg:       cfg,
		transport: transport,
		pub:       pub,
		log:       log,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// State is safe to call from any goroutine.
func (p *Poller) State() State {
	return State(p.state.Load())
}

func (p *Poller) setState(s State) {
	p.state.Store(int32(s))
}

// PollOnce performs exactly one pass.
// All-or-nothing: the first read, decode or publish failure aborts the pass,
// later descriptors are not read and no liveness beacon is sent.
func (p *Poller) PollOnce() (PassResult, error) {
	res := PassResult{
		ID:        uuid.NewString(),
		StartedAt: p.now(),
	}
	log := p.log.With(zap.String("pass", res.ID))

	fail := func(err error) (PassResult, error) {
		p.setState(StateFailed)
		log.Error("pass aborted", zap.Int("published", len(res.Readings)), zap.Error(err))
		return res, err
	}

	for _, d := range p.cfg.Table.Descriptors() {
		p.setState(StateReadPending)

		raw, err := p.read(d)
		if err != nil {
			return fail(err)
		}

		value, err := register.Decode(d, raw)
		if err != nil {
			return fail(fmt.Errorf("poller: %w", err))
		}

		msg := p.pub.Format(d, value)
		log.Info("reading",
			zap.String("name", d.Name),
			zap.Float64("value", value),
			zap.String("unit", d.Unit),
			zap.Uint16("address", d.Address),
			zap.Uint16s("raw", raw),
			zap.String("topic", msg.Topic),
		)

		msg, err = p.pub.PublishReading(d, value)
		if err != nil {
			return fail(fmt.Errorf("poller: %w", err))
		}

		res.Readings = append(res.Readings, Reading{
			Descriptor: d,
			Raw:        raw,
			Value:      value,
			Message:    msg,
		})
	}

	p.setState(StateLivenessPublish)

	online, err := p.pub.PublishOnline(p.now())
	if err != nil {
		return fail(fmt.Errorf("poller: %w", err))
	}
	res.Online = &online

	p.setState(StateDone)
	log.Info("pass complete",
		zap.Int("readings", len(res.Readings)),
		zap.String("online", online.Payload),
		zap.Duration("took", p.now().Sub(res.StartedAt)),
	)
	return res, nil
}

// read issues one bounded-time read.
// On timeout the in-flight request is abandoned; its result is discarded.
func (p *Poller) read(d register.Descriptor) ([]uint16, error) {
	type result struct {
		regs []uint16
		err  error
	}

	qty := d.Words()
	ch := make(chan result, 1)
	go func() {
		regs, err := p.transport.ReadInputRegisters(d.Address, qty)
		ch <- result{regs, err}
	}()

	timer := time.NewTimer(p.cfg.ReadTimeout)
	defer timer.Stop()

	select {
	case r := <-ch:
		if r.err != nil {
			return nil, &TransportError{Name: d.Name, Address: d.Address, Count: qty, Err: r.err}
		}
		return r.regs, nil
	case <-timer.C:
		return nil, &TransportError{
			Name:    d.Name,
			Address: d.Address,
			Count:   qty,
			Err:     fmt.Errorf("%w after %s", ErrReadTimeout, p.cfg.ReadTimeout),
		}
	}
}
