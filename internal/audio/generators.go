package audio

import (
	"math"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
)

// noise is a small LCG so generators stay reproducible for a given seed.
type noise struct {
	state uint32
}

func (n *noise) next() float64 {
	n.state = n.state*1664525 + 1013904223
	return float64(n.state>>8)/float64(1<<24)*2 - 1
}

// Crackle is an endless fire bed: filtered noise for the roar plus sparse
// pops. Loudness follows SetIntensity and can change while streaming.
type Crackle struct {
	sr        beep.SampleRate
	intensity atomic.Uint64
	rng       noise
	lowpass   float64
	pop       float64
	popFreq   float64
	pos       int
}

func NewCrackle(sr beep.SampleRate, seed uint32) *Crackle {
	return &Crackle{sr: sr, rng: noise{state: seed}}
}

// SetIntensity takes the fire intensity in [0,1]; values outside are clamped.
func (c *Crackle) SetIntensity(v float64) {
	v = math.Max(0, math.Min(1, v))
	c.intensity.Store(math.Float64bits(v))
}

func (c *Crackle) Intensity() float64 {
	return math.Float64frombits(c.intensity.Load())
}

func (c *Crackle) Stream(samples [][2]float64) (n int, ok bool) {
	level := c.Intensity()
	popChance := 0.00005 + 0.0004*level
	for i := range samples {
		white := c.rng.next()
		c.lowpass += (white - c.lowpass) * 0.08
		roar := c.lowpass * 0.6 * level

		if c.pop < 0.01 && (c.rng.next()+1)/2 < popChance {
			c.pop = 0.4 + 0.4*(c.rng.next()+1)/2
			c.popFreq = 900 + 1800*(c.rng.next()+1)/2
		}
		crack := 0.0
		if c.pop > 0.01 {
			t := float64(c.pos) / float64(c.sr)
			crack = c.pop * math.Sin(2*math.Pi*c.popFreq*t) * c.rng.next()
			c.pop *= 0.992
		}

		s := clamp(roar+crack*level, -1, 1)
		samples[i][0] = s
		samples[i][1] = s
		c.pos++
	}
	return len(samples), true
}

func (c *Crackle) Err() error { return nil }

// tone is a decaying sine with an optional pitch glide, used for cues.
type tone struct {
	sr    beep.SampleRate
	from  float64
	to    float64
	decay float64
	amp   float64
	total int
	pos   int
	phase float64
}

func newTone(sr beep.SampleRate, from, to float64, d time.Duration, decay, amp float64) *tone {
	return &tone{sr: sr, from: from, to: to, decay: decay, amp: amp, total: sr.N(d)}
}

func (g *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if g.pos >= g.total {
			return i, i > 0
		}
		frac := float64(g.pos) / float64(g.total)
		t := float64(g.pos) / float64(g.sr)
		freq := g.from + (g.to-g.from)*frac
		g.phase += freq / float64(g.sr)
		g.phase -= math.Floor(g.phase)

		attack := math.Min(t/0.005, 1)
		s := g.amp * attack * math.Exp(-t*g.decay) * math.Sin(2*math.Pi*g.phase)
		samples[i][0] = s
		samples[i][1] = s
		g.pos++
	}
	return len(samples), true
}

func (g *tone) Err() error { return nil }

// whoosh is a noise swell with a bell-shaped envelope.
type whoosh struct {
	rng     noise
	total   int
	pos     int
	lowpass float64
	amp     float64
}

func newWhoosh(sr beep.SampleRate, d time.Duration, amp float64, seed uint32) *whoosh {
	return &whoosh{rng: noise{state: seed}, total: sr.N(d), amp: amp}
}

func (g *whoosh) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if g.pos >= g.total {
			return i, i > 0
		}
		frac := float64(g.pos) / float64(g.total)
		env := math.Sin(math.Pi * frac)
		g.lowpass += (g.rng.next() - g.lowpass) * (0.02 + 0.2*frac)
		s := g.amp * env * g.lowpass
		samples[i][0] = s
		samples[i][1] = s
		g.pos++
	}
	return len(samples), true
}

func (g *whoosh) Err() error { return nil }

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
