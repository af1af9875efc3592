package gm1356

import (
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/seagrayinc/gospl/internal/hid"
)

type state uint8

const (
	stateIdle state = iota
	stateConfiguring
	stateReady
	stateMeasuring
	stateFaulted
)

// DefaultAckTimeout is the acknowledgement budget for CONFIGURE. This is a
// device-facing timing; do not tune it.
const DefaultAckTimeout = 500 * time.Millisecond

// Driver runs the two-message protocol on top of Transport. It owns the
// device handle for the lifetime of the session; Close releases it.
//
// The driver is strictly request-then-response and must not be used from
// more than one goroutine. Pipelining would desynchronize responses.
type Driver struct {
	tr Transport
	st state

	// AckTimeout bounds the wait for the CONFIGURE acknowledgement.
	// Zero means DefaultAckTimeout.
	AckTimeout time.Duration

	// StrictAck additionally requires the acknowledgement to echo the
	// CONFIGURE opcode in its first byte. Off by default: the meter's ack
	// payload is undocumented and the historical behavior accepts any
	// response arriving within budget.
	StrictAck bool

	// Log receives protocol-level diagnostics.
	Log zerolog.Logger
}

// NewDriver takes ownership of dev.
func NewDriver(dev hid.Device) *Driver {
	return &Driver{
		tr:  Transport{Device: dev},
		Log: zerolog.Nop(),
	}
}

// Close releases the device handle.
func (d *Driver) Close() error {
	return d.tr.Device.Close()
}

func (d *Driver) ackTimeout() time.Duration {
	if d.AckTimeout > 0 {
		return d.AckTimeout
	}
	return DefaultAckTimeout
}

// Configure sends the session configuration and waits for the device to
// acknowledge it. A missing acknowledgement is fatal: without it the
// device's active configuration is unknown and every subsequent measurement
// would be unverifiable. There is no retry beyond the single wait.
func (d *Driver) Configure(cfg Config) error {
	if d.st != stateIdle {
		return fmt.Errorf("%w: configure is valid only on a fresh session", ErrInvalidArgument)
	}

	req, err := ConfigureReport(cfg)
	if err != nil {
		return err
	}

	d.st = stateConfiguring
	if err := d.tr.Send(req); err != nil {
		d.st = stateFaulted
		return err
	}

	ack, err := d.tr.Receive(d.ackTimeout())
	if err != nil {
		d.st = stateFaulted
		if errors.Is(err, ErrTimeout) {
			return fmt.Errorf("%w: %v", ErrConfigurationFailed, err)
		}
		return err
	}
	if d.StrictAck && ack[0] != cmdConfigure {
		d.st = stateFaulted
		return fmt.Errorf("%w: unexpected acknowledgement %s", ErrConfigurationFailed, ack)
	}

	d.Log.Debug().Stringer("ack", ack).Msg("configuration acknowledged")
	d.st = stateReady
	return nil
}

// Measure issues one MEASURE exchange with the caller's response budget.
// ok is false when the device did not answer in time; that is a normal
// outcome under lossy HID transport, and the caller simply tries again on
// its next interval. Any other transport failure is fatal to the session.
func (d *Driver) Measure(timeout time.Duration) (m Measurement, ok bool, err error) {
	if d.st != stateReady {
		return Measurement{}, false, fmt.Errorf("%w: measure requires an acknowledged configuration", ErrInvalidArgument)
	}

	d.st = stateMeasuring
	if err := d.tr.Send(CaptureReport()); err != nil {
		d.st = stateFaulted
		return Measurement{}, false, err
	}

	resp, err := d.tr.Receive(timeout)
	if err != nil {
		if errors.Is(err, ErrTimeout) {
			d.st = stateReady
			return Measurement{}, false, nil
		}
		d.st = stateFaulted
		return Measurement{}, false, err
	}

	d.Log.Debug().Stringer("response", resp).Msg("measurement report")
	d.st = stateReady
	return Decode(resp), true, nil
}
