package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/seagrayinc/gospl/internal/gm1356"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := loadConfig(nil)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Meter.Range != gm1356.Range30to130 {
		t.Fatalf("unexpected range: %v", cfg.Meter.Range)
	}
	if cfg.Meter.FastMode {
		t.Fatal("expected slow mode by default")
	}
	if cfg.Meter.Weighting != gm1356.WeightingDBA {
		t.Fatalf("unexpected weighting: %v", cfg.Meter.Weighting)
	}
	if cfg.Interval != 500*time.Millisecond {
		t.Fatalf("unexpected interval: %v", cfg.Interval)
	}
	if cfg.ReadTimeout != 500*time.Millisecond {
		t.Fatalf("unexpected read timeout: %v", cfg.ReadTimeout)
	}
	if cfg.JSON || cfg.Debug || cfg.StrictAck {
		t.Fatalf("unexpected toggles: %+v", cfg)
	}
}

func TestLoadConfigExampleFile(t *testing.T) {
	cfg, err := loadConfig([]string{"-config", "ex.config.toml"})
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Meter.Range != gm1356.Range50to100 {
		t.Fatalf("unexpected range: %v", cfg.Meter.Range)
	}
	if !cfg.Meter.FastMode {
		t.Fatal("expected fast mode")
	}
	if cfg.Interval != 500*time.Millisecond {
		t.Fatalf("unexpected interval: %v", cfg.Interval)
	}
	if !cfg.JSON {
		t.Fatal("expected json output")
	}
}

func TestLoadConfigFlagsOverrideFile(t *testing.T) {
	cfg, err := loadConfig([]string{
		"-config", "ex.config.toml",
		"-range", "80-130",
		"-weighting", "dBC",
		"-interval", "250ms",
		"-serial", "A001",
	})
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Meter.Range != gm1356.Range80to130 {
		t.Fatalf("unexpected range: %v", cfg.Meter.Range)
	}
	if cfg.Meter.Weighting != gm1356.WeightingDBC {
		t.Fatalf("unexpected weighting: %v", cfg.Meter.Weighting)
	}
	if cfg.Interval != 250*time.Millisecond {
		t.Fatalf("unexpected interval: %v", cfg.Interval)
	}
	if cfg.Serial != "A001" {
		t.Fatalf("unexpected serial: %q", cfg.Serial)
	}
}

func TestLoadConfigRejectsBadRange(t *testing.T) {
	if _, err := loadConfig([]string{"-range", "40-90"}); err == nil {
		t.Fatal("expected error for unknown range")
	}

	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte(`range = "10-500"`+"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := loadConfig([]string{"-config", path}); err == nil {
		t.Fatal("expected error for unknown range in file")
	}
}

func TestLoadConfigRejectsBadWeighting(t *testing.T) {
	if _, err := loadConfig([]string{"-weighting", "dBZ"}); err == nil {
		t.Fatal("expected error for unknown weighting")
	}
}

func TestLoadConfigRejectsNonPositiveInterval(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte("poll_interval_ms = 0\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := loadConfig([]string{"-config", path}); err == nil {
		t.Fatal("expected error for zero interval")
	}
}
