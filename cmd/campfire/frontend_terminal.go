//go:build !cgo
// +build !cgo

package main

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/appengine-ltd/campfire/internal/config"
	"github.com/appengine-ltd/campfire/internal/game"
	"github.com/appengine-ltd/campfire/internal/terminal"
)

func runFrontend(ctx context.Context, frontend string, sim *game.Sim, log zerolog.Logger, onFrame func(*game.Sim, []game.Event)) error {
	switch frontend {
	case config.FrontendTerminal:
		return terminal.Run(ctx, sim, terminal.Options{
			Logger:  log.With().Str("component", "terminal").Logger(),
			OnFrame: onFrame,
		})
	case config.FrontendWindow:
		return fmt.Errorf("the window frontend needs a cgo build; run with --frontend=terminal")
	default:
		return fmt.Errorf("unknown frontend %q", frontend)
	}
}
