package gm1356

import (
	"encoding/binary"
	"fmt"
	"strings"
)

// Report is one fixed-size HID report, the unit of exchange in both
// directions. The array length carries the always-8-bytes invariant.
type Report [ReportLen]byte

// Level returns bytes 0-1 as a big-endian level in hundredths of a decibel.
func (r Report) Level() uint16 {
	return binary.BigEndian.Uint16(r[0:2])
}

// Flags returns the mode/range byte of a measurement response.
func (r Report) Flags() byte { return r[2] }

func (r Report) FastMode() bool { return r[2]&flagFastMode != 0 }

func (r Report) HoldMax() bool { return r[2]&flagHoldMax != 0 }

func (r Report) Weighting() Weighting {
	if r[2]&flagDBC != 0 {
		return WeightingDBC
	}
	return WeightingDBA
}

func (r Report) Range() Range { return RangeFromBits(r[2]) }

// Trailing returns bytes 3-7. Their meaning is undocumented; they are
// carried opaquely.
func (r Report) Trailing() [5]byte {
	var t [5]byte
	copy(t[:], r[3:])
	return t
}

func (r Report) String() string {
	var b strings.Builder
	for i, v := range r {
		if i > 0 {
			b.WriteByte(':')
		}
		fmt.Fprintf(&b, "%02x", v)
	}
	return b.String()
}

// Config is the device configuration sent once per session via CONFIGURE.
// The device is the authority; the driver does not track it afterwards.
type Config struct {
	Range     Range
	FastMode  bool
	Weighting Weighting
}

// ConfigureReport builds the CONFIGURE request for cfg. The range must be
// one of the five valid bands; unsupported codes are refused here and never
// reach the device.
func ConfigureReport(cfg Config) (Report, error) {
	if !cfg.Range.Valid() {
		return Report{}, fmt.Errorf("%w: range code %d", ErrInvalidArgument, cfg.Range)
	}
	var r Report
	r[0] = cmdConfigure
	r[1] = byte(cfg.Range)
	if cfg.FastMode {
		r[1] |= flagFastMode
	}
	if cfg.Weighting == WeightingDBC {
		r[1] |= flagDBC
	}
	return r, nil
}

// CaptureReport builds the MEASURE request. Bytes 1-7 are don't-care on the
// wire and are left zero.
func CaptureReport() Report {
	var r Report
	r[0] = cmdCapture
	return r
}

// Measurement is one decoded MEASURE response.
type Measurement struct {
	LevelCentibel uint16
	FastMode      bool
	HoldMax       bool
	Weighting     Weighting
	Range         Range
	Trailing      [5]byte
}

// Decibels converts the level to decibels.
func (m Measurement) Decibels() float64 {
	return float64(m.LevelCentibel) / 100
}

// Decode interprets a measurement response. It is total: any 8-byte input
// decodes to a well-typed Measurement. The protocol carries no checksum, so
// a corrupt frame decodes to nonsense values rather than an error.
func Decode(r Report) Measurement {
	return Measurement{
		LevelCentibel: r.Level(),
		FastMode:      r.FastMode(),
		HoldMax:       r.HoldMax(),
		Weighting:     r.Weighting(),
		Range:         r.Range(),
		Trailing:      r.Trailing(),
	}
}
