package main

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/seagrayinc/gospl/internal/gm1356"
)

func TestJSONSink(t *testing.T) {
	var buf bytes.Buffer
	sink := jsonSink(&buf)

	ts := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	sink(gm1356.Measurement{
		LevelCentibel: 8000,
		FastMode:      true,
		Weighting:     gm1356.WeightingDBA,
		Range:         gm1356.Range50to100,
	}, ts)

	var rec measurementRecord
	if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
		t.Fatalf("decode output: %v", err)
	}
	if rec.Measured != 80.0 {
		t.Errorf("measured = %v, want 80", rec.Measured)
	}
	if rec.Mode != "fast" {
		t.Errorf("mode = %q, want fast", rec.Mode)
	}
	if rec.FreqMode != "dBA" {
		t.Errorf("freqMode = %q, want dBA", rec.FreqMode)
	}
	if rec.Range != "50-100 dB" {
		t.Errorf("range = %q", rec.Range)
	}
	if !rec.Timestamp.Equal(ts) {
		t.Errorf("timestamp = %v, want %v", rec.Timestamp, ts)
	}
}

func TestModeString(t *testing.T) {
	if modeString(true) != "fast" || modeString(false) != "slow" {
		t.Fatal("unexpected mode strings")
	}
}
