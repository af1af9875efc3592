package main

import (
	"encoding/json"
	"io"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/seagrayinc/gospl/internal/gm1356"
)

// measurementRecord is the JSON form of one measurement.
type measurementRecord struct {
	Measured  float64   `json:"measured"`
	Mode      string    `json:"mode"`
	FreqMode  string    `json:"freqMode"`
	Range     string    `json:"range"`
	HoldMax   bool      `json:"holdMax"`
	Timestamp time.Time `json:"timestamp"`
}

func record(m gm1356.Measurement, ts time.Time) measurementRecord {
	return measurementRecord{
		Measured:  m.Decibels(),
		Mode:      modeString(m.FastMode),
		FreqMode:  m.Weighting.String(),
		Range:     m.Range.String(),
		HoldMax:   m.HoldMax,
		Timestamp: ts,
	}
}

func modeString(fast bool) string {
	if fast {
		return "fast"
	}
	return "slow"
}

func newSink(cfg config, w io.Writer) gm1356.Sink {
	if cfg.JSON {
		return jsonSink(w)
	}
	return consoleSink()
}

// jsonSink writes one JSON object per measurement.
func jsonSink(w io.Writer) gm1356.Sink {
	enc := json.NewEncoder(w)
	return func(m gm1356.Measurement, ts time.Time) {
		if err := enc.Encode(record(m, ts)); err != nil {
			log.Warn().Err(err).Msg("failed to write measurement")
		}
	}
}

// consoleSink logs each measurement as a structured line.
func consoleSink() gm1356.Sink {
	return func(m gm1356.Measurement, ts time.Time) {
		log.Info().
			Float64("measured", m.Decibels()).
			Str("mode", modeString(m.FastMode)).
			Str("freqMode", m.Weighting.String()).
			Str("range", m.Range.String()).
			Bool("holdMax", m.HoldMax).
			Msg("measurement")
	}
}
