//go:build cgo
// +build cgo

package main

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/appengine-ltd/campfire/internal/config"
	"github.com/appengine-ltd/campfire/internal/game"
	"github.com/appengine-ltd/campfire/internal/gui"
	"github.com/appengine-ltd/campfire/internal/terminal"
)

func runFrontend(ctx context.Context, frontend string, sim *game.Sim, log zerolog.Logger, onFrame func(*game.Sim, []game.Event)) error {
	switch frontend {
	case config.FrontendWindow:
		return gui.Run(ctx, sim, gui.Options{
			Logger:  log.With().Str("component", "gui").Logger(),
			Title:   fmt.Sprintf("Campfire %s", version),
			OnFrame: onFrame,
		})
	case config.FrontendTerminal:
		return terminal.Run(ctx, sim, terminal.Options{
			Logger:  log.With().Str("component", "terminal").Logger(),
			OnFrame: onFrame,
		})
	default:
		return fmt.Errorf("unknown frontend %q", frontend)
	}
}
