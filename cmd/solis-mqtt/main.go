// cmd/solis-mqtt/main.go
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"go.uber.org/zap"

	"github.com/tfheen/solis-mqtt/internal/config"
	"github.com/tfheen/solis-mqtt/internal/logging"
	"github.com/tfheen/solis-mqtt/internal/poller"
	"github.com/tfheen/solis-mqtt/internal/publish"
	"github.com/tfheen/solis-mqtt/internal/publish/mqtt"
	"github.com/tfheen/solis-mqtt/internal/register"
)

func main() {
	if len(os.Args) > 2 {
		log.Fatal("usage: solis-mqtt [config.yaml]")
	}

	// --------------------
	// Load + validate config
	// --------------------

	cfg, err := loadConfig(os.Args[1:])
	if err != nil {
		// No configured logger yet: report through a production default.
		boot, berr := zap.NewProduction()
		if berr != nil {
			log.Fatalf("logger: %v", berr)
		}
		fail(boot, err)
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer logger.Sync()

	if err := run(cfg, logger); err != nil {
		fail(logger, err)
	}
}

func fail(logger *zap.Logger, err error) {
	logger.Error("solis-mqtt failed", zap.Error(err), zap.String("kind", errorKind(err)))
	_ = logger.Sync()
	os.Exit(exitCode(err))
}

func loadConfig(args []string) (*config.Config, error) {
	var cfg *config.Config
	if len(args) == 1 {
		c, err := config.Load(args[0])
		if err != nil {
			return nil, &configFailure{err: err}
		}
		cfg = c
	} else {
		d := config.Default()
		cfg = &d
	}

	config.ApplyEnv(cfg)
	if err := config.Validate(cfg); err != nil {
		return nil, &configFailure{err: fmt.Errorf("validation failed: %w", err)}
	}
	config.Normalize(cfg)
	return cfg, nil
}

func run(cfg *config.Config, logger *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// ---- publish capability ----
	client, err := mqtt.New(mqtt.Config{
		Broker:         cfg.MQTT.Broker,
		ClientID:       cfg.MQTT.ClientID,
		Username:       cfg.MQTT.Username,
		Password:       cfg.MQTT.Password,
		KeepAlive:      cfg.MQTT.KeepAlive(),
		ConnectTimeout: cfg.MQTT.ConnectTimeout(),
	}, logger.Named("mqtt"))
	if err != nil {
		return err
	}
	defer client.Close()

	logger.Info("mqtt connected",
		zap.String("broker", cfg.MQTT.Broker),
		zap.Bool("open", client.Connected()),
	)

	// ---- connection-liveness task ----
	evCtx, cancelEvents := context.WithCancel(ctx)
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		client.RunEvents(evCtx)
	}()
	defer func() {
		cancelEvents()
		wg.Wait()
	}()

	// ---- poller ----
	pub, err := publish.NewAdapter(cfg.Device, client)
	if err != nil {
		return err
	}

	table, err := register.SolisTable()
	if err != nil {
		return err
	}

	p, closeTransport, err := poller.Build(cfg, table, pub, logger.Named("poller"))
	if err != nil {
		return err
	}
	defer closeTransport()

	logger.Info("polling",
		zap.String("port", cfg.Source.Port),
		zap.Uint8("slave", cfg.Source.SlaveID),
		zap.String("device", cfg.Device),
		zap.Duration("interval", cfg.Poll.Interval()),
	)

	return p.Run(ctx)
}
