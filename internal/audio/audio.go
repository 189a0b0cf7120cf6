package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/rs/zerolog"

	"github.com/appengine-ltd/campfire/internal/game"
)

const sampleRate = beep.SampleRate(44100)

type Config struct {
	Enabled bool
	Volume  float64
}

// Soundscape plays the fire bed and one-shot cues for game events. Without
// a working output device it stays silent and every call is a no-op.
type Soundscape struct {
	mu          sync.Mutex
	log         zerolog.Logger
	cfg         Config
	mixer       *beep.Mixer
	master      *effects.Volume
	crackle     *Crackle
	initialized bool
	seed        uint32
}

func New(cfg Config, log zerolog.Logger) *Soundscape {
	s := &Soundscape{
		log:     log.With().Str("component", "audio").Logger(),
		cfg:     cfg,
		mixer:   &beep.Mixer{},
		crackle: NewCrackle(sampleRate, 0x5eed),
		seed:    1,
	}
	s.mixer.Add(s.crackle)
	s.master = &effects.Volume{Streamer: s.mixer, Base: 2}
	s.setVolume(cfg.Volume)
	return s
}

func (s *Soundscape) Enabled() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.initialized
}

func (s *Soundscape) setVolume(v float64) {
	v = clamp(v, 0, 1)
	s.master.Silent = v == 0
	if v > 0 {
		s.master.Volume = math.Log2(v)
	}
}

// SetFire follows the fire intensity (0 to 100) with the crackle bed.
func (s *Soundscape) SetFire(intensity float64) {
	s.crackle.SetIntensity(intensity / game.MaxIntensity)
}

func (s *Soundscape) enqueue(events []game.Event) int {
	n := 0
	for _, ev := range events {
		cue := s.cue(ev.Kind)
		if cue == nil {
			continue
		}
		s.mixer.Add(cue)
		n++
	}
	return n
}

func (s *Soundscape) cue(kind game.EventKind) beep.Streamer {
	s.seed++
	switch kind {
	case game.EventLogCollected:
		return newTone(sampleRate, 320, 260, 120*time.Millisecond, 20, 0.35)
	case game.EventLogFed:
		return newTone(sampleRate, 110, 70, 250*time.Millisecond, 12, 0.5)
	case game.EventIgnited:
		return newWhoosh(sampleRate, 900*time.Millisecond, 0.7, s.seed)
	case game.EventLogBurnt:
		return newWhoosh(sampleRate, 200*time.Millisecond, 0.25, s.seed)
	case game.EventExtinguished:
		return newWhoosh(sampleRate, 1500*time.Millisecond, 0.4, s.seed)
	case game.EventIgniteRefused, game.EventPickupTooFar:
		return beep.Take(sampleRate.N(150*time.Millisecond), newTone(sampleRate, 140, 140, time.Second, 6, 0.2))
	default:
		return nil
	}
}
