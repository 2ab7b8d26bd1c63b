package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/flaptiles/internal/arena"
	"github.com/vovakirdan/flaptiles/internal/assets"
	"github.com/vovakirdan/flaptiles/internal/config"
	_ "github.com/vovakirdan/flaptiles/internal/games/flappy" // Registers the pilots
	"github.com/vovakirdan/flaptiles/internal/render"
)

// app is the resolved configuration shared by the commands.
type app struct {
	cfg      config.Config
	source   string
	seed     int64
	logger   *log.Logger
	closeLog func() error
}

// setup loads the configuration, applies the global flags and builds the logger.
// interactive discards logs unless a log file is set, since the UI owns the terminal.
func setup(interactive bool) (*app, error) {
	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		return nil, err
	}
	if err := applyFlags(&cfg); err != nil {
		return nil, err
	}
	if err := config.Validate(cfg); err != nil {
		return nil, err
	}

	logger, closeLog, err := newLogger(cfg.Log, interactive)
	if err != nil {
		return nil, err
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	logger.Debug("configuration loaded", "source", source, "instances", cfg.Display.Instances,
		"pilot", cfg.Pilot, "seed", seed)
	return &app{
		cfg:      cfg,
		source:   source,
		seed:     seed,
		logger:   logger,
		closeLog: closeLog,
	}, nil
}

// applyFlags overrides configuration values with explicitly set global flags.
func applyFlags(cfg *config.Config) error {
	if flagInstances != 0 {
		cfg.Display.Instances = flagInstances
	}
	if flagTPS != 0 {
		cfg.Display.TickRate = flagTPS
	}
	if flagPilot != "" {
		cfg.Pilot = flagPilot
	}
	if flagAssets != "" {
		cfg.Assets.Source = config.AssetsDir
		cfg.Assets.BasePath = flagAssets
	}
	if flagActivateKey != "" {
		cfg.Input.ActivateKey = flagActivateKey
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}
	if flagLogFile != "" {
		cfg.Log.File = flagLogFile
	}
	if flagDifficulty != "" {
		preset, ok := config.ParsePreset(flagDifficulty)
		if !ok {
			return fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
		}
		config.ApplyFlappyPreset(&cfg.Flappy, preset)
	}
	return nil
}

// newLogger builds the logger described by lc.
func newLogger(lc config.LogConfig, interactive bool) (*log.Logger, func() error, error) {
	var w io.Writer = os.Stderr
	closeLog := func() error { return nil }

	switch {
	case lc.File != "":
		f, err := os.OpenFile(lc.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		closeLog = f.Close
	case interactive:
		w = io.Discard
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "flaptiles",
	})
	if lc.Level != "" {
		level, err := log.ParseLevel(lc.Level)
		if err != nil {
			closeLog()
			return nil, nil, fmt.Errorf("log level: %w", err)
		}
		logger.SetLevel(level)
	}
	return logger, closeLog, nil
}

// close flushes the log file, if any.
func (a *app) close() {
	if err := a.closeLog(); err != nil {
		fmt.Fprintf(os.Stderr, "closing log file: %v\n", err)
	}
}

// sprites loads the configured sprite bundle.
func (a *app) sprites(ctx context.Context) (*assets.Set, error) {
	var f assets.Fetcher = assets.Procedural{}
	if a.cfg.Assets.Source == config.AssetsDir {
		f = assets.Dir(a.cfg.Assets.BasePath)
	}
	set, err := assets.Load(ctx, f, "")
	if err != nil {
		return nil, err
	}
	a.logger.Debug("sprites loaded", "source", a.cfg.Assets.Source)
	return set, nil
}

// newArena creates the arena; human puts the player in tile #1.
func (a *app) newArena(human bool) (*arena.Arena, error) {
	return arena.New(arena.Options{
		Instances: a.cfg.Display.Instances,
		TickRate:  a.cfg.Display.TickRate,
		Seed:      a.seed,
		Pilot:     a.cfg.Pilot,
		Human:     human,
		Flappy:    a.cfg.Flappy,
		Logger:    a.logger,
	})
}

func (a *app) renderOptions() render.Options {
	return render.Options{
		FrameRate:  a.cfg.Display.FrameRate,
		ScoreScale: a.cfg.Display.ScoreScale,
		AssetBase:  a.cfg.Assets.BasePath,
		Logger:     a.logger,
	}
}

// terminalSize returns the terminal size, falling back to 80x24.
func terminalSize() (int, int) {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return width, height
}
