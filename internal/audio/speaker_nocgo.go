//go:build !cgo
// +build !cgo

package audio

import (
	"errors"

	"github.com/appengine-ltd/campfire/internal/game"
)

// ErrNoDevice is returned by Init in builds without cgo, where the speaker
// backend cannot be linked.
var ErrNoDevice = errors.New("audio output needs a cgo build")

// Init never opens a device here. The crackle bed and cue mixing still work,
// they just have nowhere to play.
func (s *Soundscape) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.cfg.Enabled {
		return nil
	}
	return ErrNoDevice
}

func (s *Soundscape) Handle(events []game.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}
	s.enqueue(events)
}

func (s *Soundscape) Close() {}
