package main

import (
	"flag"
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/seagrayinc/gospl/internal/gm1356"
)

type config struct {
	Meter       gm1356.Config
	Serial      string
	Interval    time.Duration
	ReadTimeout time.Duration
	StrictAck   bool
	JSON        bool
	Debug       bool
}

type fileConfig struct {
	Range          string `toml:"range"`
	FastMode       bool   `toml:"fast_mode"`
	Weighting      string `toml:"weighting"`
	PollIntervalMS int64  `toml:"poll_interval_ms"`
	ReadTimeoutMS  int64  `toml:"read_timeout_ms"`
	Serial         string `toml:"serial"`
	StrictAck      bool   `toml:"strict_ack"`
	JSON           bool   `toml:"json"`
}

func defaultConfig() config {
	return config{
		Meter: gm1356.Config{
			Range:     gm1356.Range30to130,
			Weighting: gm1356.WeightingDBA,
		},
		Interval:    gm1356.DefaultPollInterval,
		ReadTimeout: gm1356.DefaultReadTimeout,
	}
}

// loadConfig resolves the effective configuration: defaults, then the TOML
// file if one is given, then explicit flags.
func loadConfig(args []string) (config, error) {
	fs := flag.NewFlagSet("splread", flag.ContinueOnError)
	var (
		configPath = fs.String("config", "", "path to a TOML config file")
		rangeStr   = fs.String("range", "", `measurement band: 30-130, 30-80, 50-100, 60-110 or 80-130`)
		fast       = fs.Bool("fast", false, "use fast integration mode")
		weighting  = fs.String("weighting", "", "frequency weighting: dBA or dBC")
		interval   = fs.Duration("interval", 0, "pause between measurement cycles")
		serial     = fs.String("serial", "", "serial number of the meter to open")
		strictAck  = fs.Bool("strict-ack", false, "require the configure acknowledgement to echo the opcode")
		jsonOut    = fs.Bool("json", false, "emit measurements as JSON lines on stdout")
		debug      = fs.Bool("debug", false, "enable protocol-level debug logging")
	)
	if err := fs.Parse(args); err != nil {
		return config{}, err
	}

	cfg := defaultConfig()
	if *configPath != "" {
		if err := applyFile(&cfg, *configPath); err != nil {
			return config{}, err
		}
	}

	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	if set["range"] {
		r, err := gm1356.ParseRange(strings.TrimSpace(*rangeStr))
		if err != nil {
			return config{}, err
		}
		cfg.Meter.Range = r
	}
	if set["fast"] {
		cfg.Meter.FastMode = *fast
	}
	if set["weighting"] {
		w, err := gm1356.ParseWeighting(strings.TrimSpace(*weighting))
		if err != nil {
			return config{}, err
		}
		cfg.Meter.Weighting = w
	}
	if set["interval"] {
		cfg.Interval = *interval
	}
	if set["serial"] {
		cfg.Serial = *serial
	}
	if set["strict-ack"] {
		cfg.StrictAck = *strictAck
	}
	if set["json"] {
		cfg.JSON = *jsonOut
	}
	if set["debug"] {
		cfg.Debug = *debug
	}

	if cfg.Interval <= 0 {
		return config{}, fmt.Errorf("poll interval must be positive, got %v", cfg.Interval)
	}
	if cfg.ReadTimeout <= 0 {
		return config{}, fmt.Errorf("read timeout must be positive, got %v", cfg.ReadTimeout)
	}

	return cfg, nil
}

func applyFile(cfg *config, path string) error {
	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if meta.IsDefined("range") {
		r, err := gm1356.ParseRange(strings.TrimSpace(raw.Range))
		if err != nil {
			return fmt.Errorf("parse range: %w", err)
		}
		cfg.Meter.Range = r
	}
	if meta.IsDefined("fast_mode") {
		cfg.Meter.FastMode = raw.FastMode
	}
	if meta.IsDefined("weighting") {
		w, err := gm1356.ParseWeighting(strings.TrimSpace(raw.Weighting))
		if err != nil {
			return fmt.Errorf("parse weighting: %w", err)
		}
		cfg.Meter.Weighting = w
	}
	if meta.IsDefined("poll_interval_ms") {
		cfg.Interval = time.Duration(raw.PollIntervalMS) * time.Millisecond
	}
	if meta.IsDefined("read_timeout_ms") {
		cfg.ReadTimeout = time.Duration(raw.ReadTimeoutMS) * time.Millisecond
	}
	if meta.IsDefined("serial") {
		cfg.Serial = strings.TrimSpace(raw.Serial)
	}
	if meta.IsDefined("strict_ack") {
		cfg.StrictAck = raw.StrictAck
	}
	if meta.IsDefined("json") {
		cfg.JSON = raw.JSON
	}

	return nil
}
