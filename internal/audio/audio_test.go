package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/rs/zerolog"

	"github.com/appengine-ltd/campfire/internal/game"
)

func rms(samples [][2]float64) float64 {
	sum := 0.0
	for _, s := range samples {
		sum += s[0] * s[0]
	}
	return math.Sqrt(sum / float64(len(samples)))
}

func TestCrackleSilentWhenOut(t *testing.T) {
	c := NewCrackle(sampleRate, 7)
	samples := make([][2]float64, 4096)
	n, ok := c.Stream(samples)
	if n != len(samples) || !ok {
		t.Fatalf("expected endless stream, got n=%d ok=%v", n, ok)
	}
	for i, s := range samples {
		if s[0] != 0 || s[1] != 0 {
			t.Fatalf("sample %d not silent at zero intensity: %v", i, s)
		}
	}
}

func TestCrackleFollowsIntensity(t *testing.T) {
	quiet := NewCrackle(sampleRate, 7)
	loud := NewCrackle(sampleRate, 7)
	quiet.SetIntensity(0.1)
	loud.SetIntensity(1)

	a := make([][2]float64, 8192)
	b := make([][2]float64, 8192)
	quiet.Stream(a)
	loud.Stream(b)
	if rms(b) <= rms(a) {
		t.Fatalf("expected louder bed at full intensity: %v <= %v", rms(b), rms(a))
	}
	for i, s := range b {
		if s[0] < -1 || s[0] > 1 {
			t.Fatalf("sample %d out of range: %v", i, s[0])
		}
	}
}

func TestCrackleClampsIntensity(t *testing.T) {
	c := NewCrackle(sampleRate, 1)
	c.SetIntensity(3)
	if c.Intensity() != 1 {
		t.Fatalf("expected clamp to 1, got %v", c.Intensity())
	}
	c.SetIntensity(-2)
	if c.Intensity() != 0 {
		t.Fatalf("expected clamp to 0, got %v", c.Intensity())
	}
}

func TestToneEnds(t *testing.T) {
	g := newTone(sampleRate, 200, 100, 10*time.Millisecond, 10, 0.5)
	want := sampleRate.N(10 * time.Millisecond)

	samples := make([][2]float64, want+100)
	n, ok := g.Stream(samples)
	if n != want || !ok {
		t.Fatalf("expected %d samples, got n=%d ok=%v", want, n, ok)
	}
	if n, ok := g.Stream(samples); n != 0 || ok {
		t.Fatalf("expected drained tone, got n=%d ok=%v", n, ok)
	}
}

func TestWhooshShape(t *testing.T) {
	g := newWhoosh(sampleRate, 50*time.Millisecond, 0.5, 3)
	samples := make([][2]float64, sampleRate.N(50*time.Millisecond))
	n, _ := g.Stream(samples)
	if n != len(samples) {
		t.Fatalf("expected full whoosh, got %d", n)
	}
	if samples[0][0] != 0 {
		t.Fatalf("expected whoosh to start from silence, got %v", samples[0][0])
	}
	for i, s := range samples {
		if math.Abs(s[0]) > 0.5 {
			t.Fatalf("sample %d above amplitude: %v", i, s[0])
		}
	}
}

func TestEnqueueAddsCuesForKnownEvents(t *testing.T) {
	s := New(Config{Enabled: false, Volume: 0.5}, zerolog.Nop())
	before := s.mixer.Len()

	n := s.enqueue([]game.Event{
		{Kind: game.EventLogCollected},
		{Kind: game.EventLogFed},
		{Kind: game.EventIgnited},
		{Kind: game.EventIgniteRefused},
		{Kind: game.EventKind(99)},
	})
	if n != 4 {
		t.Fatalf("expected 4 cues, got %d", n)
	}
	if s.mixer.Len() != before+4 {
		t.Fatalf("expected mixer to hold %d streamers, got %d", before+4, s.mixer.Len())
	}
}

func TestCuesAreFinite(t *testing.T) {
	s := New(Config{}, zerolog.Nop())
	kinds := []game.EventKind{
		game.EventLogCollected, game.EventLogFed, game.EventIgnited, game.EventIgniteRefused,
		game.EventLogBurnt, game.EventExtinguished, game.EventPickupTooFar,
	}
	buf := make([][2]float64, 4096)
	limit := sampleRate.N(2 * time.Second)
	for _, k := range kinds {
		cue := s.cue(k)
		if cue == nil {
			t.Fatalf("expected cue for %v", k)
		}
		total := 0
		for {
			n, ok := cue.Stream(buf)
			total += n
			if !ok || total > limit {
				break
			}
		}
		if total > limit {
			t.Fatalf("cue for %v did not end", k)
		}
	}
}

func TestDisabledSoundscapeIgnoresEvents(t *testing.T) {
	s := New(Config{Enabled: false}, zerolog.Nop())
	if err := s.Init(); err != nil {
		t.Fatalf("init disabled: %v", err)
	}
	if s.Enabled() {
		t.Fatalf("expected disabled soundscape")
	}
	before := s.mixer.Len()
	s.Handle([]game.Event{{Kind: game.EventIgnited}})
	if s.mixer.Len() != before {
		t.Fatalf("disabled soundscape queued a cue")
	}
	s.SetFire(50)
	if s.crackle.Intensity() != 0.5 {
		t.Fatalf("expected crackle at 0.5, got %v", s.crackle.Intensity())
	}
	s.Close()
}

var _ beep.Streamer = (*Crackle)(nil)
