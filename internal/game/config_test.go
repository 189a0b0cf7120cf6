package game

import (
	"testing"
	"time"
)

func TestDefaultTuningIsValid(t *testing.T) {
	if err := DefaultTuning().Validate(); err != nil {
		t.Fatalf("default tuning invalid: %v", err)
	}
}

func TestTuningValidateRejects(t *testing.T) {
	cases := map[string]func(*Tuning){
		"zero tick rate":       func(t *Tuning) { t.TickRate = 0 },
		"no steps per frame":   func(t *Tuning) { t.MaxStepsPerFrame = 0 },
		"negative decay":       func(t *Tuning) { t.Fire.DecayRate = -1 },
		"ignition above max":   func(t *Tuning) { t.Fire.ManualIgnition = 150 },
		"zero per-log support": func(t *Tuning) { t.Fire.IntensityPerLog = 0 },
		"inverted pitch range": func(t *Tuning) { t.Camera.PitchMin = 2 },
		"lerp above one":       func(t *Tuning) { t.Camera.FollowLerp = 1.5 },
		"pitch above range":    func(t *Tuning) { t.Camera.InitialPitch = 2 },
		"pitch below range":    func(t *Tuning) { t.Camera.InitialPitch = -1 },
		"negative reach":       func(t *Tuning) { t.Interaction.Reach = -1 },
		"negative start logs":  func(t *Tuning) { t.Inventory.StartLogs = -1 },
	}
	for name, mutate := range cases {
		tuning := DefaultTuning()
		mutate(&tuning)
		if err := tuning.Validate(); err == nil {
			t.Fatalf("%s: expected validation error", name)
		}
	}
}

func TestTuningStep(t *testing.T) {
	tuning := DefaultTuning()
	if got := tuning.Step(); got != time.Second/60 {
		t.Fatalf("expected 1/60s step, got %v", got)
	}
	tuning.TickRate = 0
	if got := tuning.Step(); got != time.Second/60 {
		t.Fatalf("expected fallback step, got %v", got)
	}
}
