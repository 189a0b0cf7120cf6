//go:build cgo
// +build cgo

package audio

import (
	"fmt"
	"time"

	"github.com/gopxl/beep/speaker"

	"github.com/appengine-ltd/campfire/internal/game"
)

// Init opens the output device. A failure leaves the soundscape silent; the
// error is returned so the caller can log it.
func (s *Soundscape) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized || !s.cfg.Enabled {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	speaker.Play(s.master)
	s.initialized = true
	s.log.Debug().Int("sample_rate", int(sampleRate)).Msg("audio started")
	return nil
}

// Handle queues a cue for every event that has one.
func (s *Soundscape) Handle(events []game.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}
	speaker.Lock()
	s.enqueue(events)
	speaker.Unlock()
}

func (s *Soundscape) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	s.initialized = false
}
