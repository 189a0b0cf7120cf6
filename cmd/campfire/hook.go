package main

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/appengine-ltd/campfire/internal/audio"
	"github.com/appengine-ltd/campfire/internal/game"
	"github.com/appengine-ltd/campfire/internal/logging"
	"github.com/appengine-ltd/campfire/internal/telemetry"
)

// frameHook fans each frame's events out to sound, metrics and the event
// trace. It runs on the frontend's loop goroutine.
type frameHook struct {
	ctx      context.Context
	sound    *audio.Soundscape
	rec      *telemetry.Recorder
	interval time.Duration
	last     time.Time
	trace    zerolog.Logger
	now      func() time.Time
}

func newFrameHook(ctx context.Context, sound *audio.Soundscape, rec *telemetry.Recorder, interval time.Duration, log zerolog.Logger) *frameHook {
	return &frameHook{
		ctx:      ctx,
		sound:    sound,
		rec:      rec,
		interval: interval,
		trace:    logging.Sampled(log, 20),
		now:      time.Now,
	}
}

func (h *frameHook) onFrame(sim *game.Sim, events []game.Event) {
	h.sound.SetFire(sim.Fire().Intensity)
	h.sound.Handle(events)
	for _, ev := range events {
		h.trace.Debug().
			Str("event", ev.Kind.String()).
			Uint64("tick", ev.Tick).
			Float64("intensity", ev.Intensity).
			Msg("sim event")
	}

	if h.rec == nil {
		return
	}
	h.rec.Observe(h.ctx, events)
	now := h.now()
	if !h.last.IsZero() && now.Sub(h.last) < h.interval {
		return
	}
	h.last = now
	h.rec.Record(h.ctx, telemetry.SampleOf(sim))
}
