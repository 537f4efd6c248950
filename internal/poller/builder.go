// internal/poller/builder.go
package poller

import (
	"go.uber.org/zap"

	"github.com/tfheen/solis-mqtt/internal/config"
	pmodbus "github.com/tfheen/solis-mqtt/internal/poller/modbus"
	"github.com/tfheen/solis-mqtt/internal/register"
)

// Build opens the serial transport and constructs a Poller over table.
// The transport is opened once (fail fast at startup); the returned closer
// releases it.
func Build(cfg *config.Config, table *register.Table, pub Publisher, log *zap.Logger) (*Poller, func() error, error) {
	client, err := pmodbus.New(pmodbus.Config{
		Port:     cfg.Source.Port,
		BaudRate: cfg.Source.BaudRate,
		DataBits: cfg.Source.DataBits,
		Parity:   cfg.Source.Parity,
		StopBits: cfg.Source.StopBits,
		SlaveID:  cfg.Source.SlaveID,
		Timeout:  cfg.Source.ReadTimeout(),
		Logger:   log,
	})
	if err != nil {
		return nil, nil, err
	}

	p, err := New(
		Config{
			Table:       table,
			ReadTimeout: cfg.Source.ReadTimeout(),
			Interval:    cfg.Poll.Interval(),
		},
		client,
		pub,
		log,
	)
	if err != nil {
		_ = client.Close()
		return nil, nil, err
	}

	return p, client.Close, nil
}
