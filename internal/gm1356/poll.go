package gm1356

import (
	"context"
	"time"
)

// Pacing defaults for the steady-state loop, matching the meter's refresh
// behavior.
const (
	DefaultPollInterval = 500 * time.Millisecond
	DefaultReadTimeout  = 500 * time.Millisecond
)

// PollOptions control the steady-state measurement loop.
type PollOptions struct {
	Interval    time.Duration // pause between measurement cycles
	ReadTimeout time.Duration // per-cycle response budget
}

// Sink receives each successful measurement with its capture timestamp.
type Sink func(Measurement, time.Time)

// Run configures the meter, then polls it until ctx is cancelled or a fatal
// error occurs. Cancellation is honored between cycles, never mid-read, and
// ends the loop cleanly with a nil error. Cycles that time out emit nothing
// and are retried on the next interval.
func (d *Driver) Run(ctx context.Context, cfg Config, opts PollOptions, sink Sink) error {
	if opts.Interval <= 0 {
		opts.Interval = DefaultPollInterval
	}
	if opts.ReadTimeout <= 0 {
		opts.ReadTimeout = DefaultReadTimeout
	}

	if ctx.Err() != nil {
		return nil
	}

	if err := d.Configure(cfg); err != nil {
		return err
	}

	for {
		if ctx.Err() != nil {
			return nil
		}

		m, ok, err := d.Measure(opts.ReadTimeout)
		if err != nil {
			return err
		}
		if ok {
			sink(m, time.Now())
		} else {
			d.Log.Warn().Msg("no response from meter, skipping this cycle")
		}

		select {
		case <-ctx.Done():
			return nil
		case <-time.After(opts.Interval):
		}
	}
}
