package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/seagrayinc/gospl/internal/gm1356"
	"github.com/seagrayinc/gospl/internal/hid"
)

func main() {
	initLogger(false, false)

	cfg, err := loadConfig(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	initLogger(cfg.JSON, cfg.Debug)

	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM, syscall.SIGINT,
	)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		log.Fatal().Err(err).Msg("splread failed")
	}
	log.Info().Msg("shutting down")
}

func run(ctx context.Context, cfg config) error {
	mgr, err := hid.NewManager()
	if err != nil {
		return err
	}

	id := gm1356.DefaultIdentity()
	id.Serial = cfg.Serial
	dev, err := gm1356.Locate(mgr, id, log.Logger)
	if err != nil {
		return err
	}

	drv := gm1356.NewDriver(dev)
	defer drv.Close()
	drv.StrictAck = cfg.StrictAck
	drv.Log = log.Logger

	log.Info().
		Stringer("range", cfg.Meter.Range).
		Bool("fast", cfg.Meter.FastMode).
		Stringer("weighting", cfg.Meter.Weighting).
		Dur("interval", cfg.Interval).
		Msg("meter opened, starting measurement loop")

	opts := gm1356.PollOptions{Interval: cfg.Interval, ReadTimeout: cfg.ReadTimeout}
	return drv.Run(ctx, cfg.Meter, opts, newSink(cfg, os.Stdout))
}

func initLogger(jsonOut, debug bool) {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}

	if jsonOut {
		// Keep stdout for the measurement stream.
		log.Logger = zerolog.New(os.Stderr).Level(level).With().Timestamp().Logger()
		return
	}

	output := zerolog.ConsoleWriter{Out: os.Stderr}
	log.Logger = zerolog.New(output).Level(level).With().Timestamp().Logger()
}
