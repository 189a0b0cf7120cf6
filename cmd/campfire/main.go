package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/pflag"
	"go.opentelemetry.io/otel"

	"github.com/appengine-ltd/campfire/internal/audio"
	"github.com/appengine-ltd/campfire/internal/config"
	"github.com/appengine-ltd/campfire/internal/game"
	"github.com/appengine-ltd/campfire/internal/logging"
	"github.com/appengine-ltd/campfire/internal/telemetry"
)

// version, commit, date are injected at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := pflag.NewFlagSet("campfire", pflag.ContinueOnError)
	config.RegisterFlags(fs)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}
	if show, _ := fs.GetBool("version"); show {
		fmt.Printf("Campfire %s (%s) %s\n", version, commit, date)
		return nil
	}

	cfg, err := config.Load(fs, config.ConfigDirs()...)
	if err != nil {
		return err
	}

	// The terminal frontend owns stdout and stderr, so its logs only go to
	// the log file.
	var logOut io.Writer = os.Stderr
	if cfg.Frontend == config.FrontendTerminal {
		logOut = io.Discard
	}
	log, closer, err := logging.New(logging.Options{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		File:   cfg.LogFile,
		Out:    logOut,
	})
	if err != nil {
		return err
	}
	defer closer.Close()

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	sim, err := game.NewSim(cfg.Game, game.WithLogger(log), game.WithSeed(seed))
	if err != nil {
		return fmt.Errorf("start simulation: %w", err)
	}
	log.Info().
		Str("version", version).
		Str("frontend", cfg.Frontend).
		Str("config", cfg.File).
		Int64("seed", seed).
		Msg("campfire starting")

	sound := audio.New(audio.Config{Enabled: cfg.Audio.Enabled, Volume: cfg.Audio.Volume}, log)
	if err := sound.Init(); err != nil {
		log.Warn().Err(err).Msg("audio unavailable, continuing without sound")
	}
	defer sound.Close()

	var rec *telemetry.Recorder
	if cfg.Telemetry.Enabled {
		rec, err = telemetry.New(otel.Meter(cfg.Telemetry.ServiceName))
		if err != nil {
			return fmt.Errorf("start telemetry: %w", err)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	hook := newFrameHook(ctx, sound, rec, cfg.Telemetry.Interval, log)
	if err := runFrontend(ctx, cfg.Frontend, sim, log, hook.onFrame); err != nil {
		log.Error().Err(err).Msg("frontend failed")
		return err
	}
	log.Info().Uint64("ticks", sim.Ticks()).Msg("campfire stopped")
	return nil
}
