package game

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

type ParticleKind int

const (
	ParticleFire ParticleKind = iota
	ParticleSmoke
	ParticleEmber
)

func (k ParticleKind) String() string {
	switch k {
	case ParticleFire:
		return "fire"
	case ParticleSmoke:
		return "smoke"
	case ParticleEmber:
		return "ember"
	default:
		return "unknown"
	}
}

// Color is a linear RGB triple in [0,1].
type Color struct {
	R, G, B float64
}

type Particle struct {
	Kind     ParticleKind
	Position mgl64.Vec3
	Velocity mgl64.Vec3
	Life     float64
	Phase    float64
}

type particleParams struct {
	spawnChance float64
	diskRadius  float64
	baseHeight  float64
	jitter      float64
	riseMin     float64
	riseMax     float64
	decay       float64
	swayFreq    float64
	swayAmp     float64
	swayZ       bool
	size        float64
}

var particleKinds = [...]particleParams{
	ParticleFire: {
		spawnChance: 0.3,
		diskRadius:  0.3,
		baseHeight:  0.2,
		jitter:      0.0025,
		riseMin:     0.005,
		riseMax:     0.02,
		decay:       0.005,
		swayFreq:    1,
		swayAmp:     0.002,
		swayZ:       true,
		size:        0.08,
	},
	ParticleSmoke: {
		spawnChance: 0.15,
		diskRadius:  0.2,
		baseHeight:  0.5,
		jitter:      0.0015,
		riseMin:     0.005,
		riseMax:     0.013,
		decay:       0.003,
		swayFreq:    0.5,
		swayAmp:     0.003,
		size:        0.15,
	},
	ParticleEmber: {
		spawnChance: 0.1,
		diskRadius:  0.4,
		baseHeight:  0.3,
		jitter:      0.0025,
		riseMin:     0.005,
		riseMax:     0.015,
		decay:       0.004,
		swayFreq:    2,
		swayAmp:     0.004,
		size:        0.03,
	},
}

// SpawnChance is the per-tick probability that a lit fire emits one particle
// of this kind.
func (k ParticleKind) SpawnChance() float64 { return particleKinds[k].spawnChance }

// Decay is how much life a particle of this kind loses per tick.
func (k ParticleKind) Decay() float64 { return particleKinds[k].decay }

// Size is the base render radius.
func (k ParticleKind) Size() float64 { return particleKinds[k].size }

func (p Particle) Opacity() float64 {
	life := math.Max(0, p.Life)
	if p.Kind == ParticleSmoke {
		return 0.3 * life
	}
	return life
}

func (p Particle) Scale() float64 {
	switch p.Kind {
	case ParticleFire:
		return 1 + (1-p.Life)*0.5
	case ParticleSmoke:
		return 1 + (1-p.Life)*2
	default:
		return 1
	}
}

// Color cools fire particles through four bands as they age. Smoke and embers
// keep a fixed tint.
func (p Particle) Color() Color {
	switch p.Kind {
	case ParticleSmoke:
		return Color{R: 0.33, G: 0.33, B: 0.33}
	case ParticleEmber:
		return Color{R: 1, G: 0.5, B: 0}
	}
	switch {
	case p.Life > 0.7:
		return Color{R: 1, G: 0.4, B: 0.1}
	case p.Life > 0.4:
		return Color{R: 1, G: 0.6, B: 0.2}
	case p.Life > 0.2:
		return Color{R: 1, G: 0.8, B: 0.4}
	default:
		return Color{R: 1, G: 1, B: 0.8}
	}
}

// Pool owns every live particle of one kind. Removal swaps the last element
// into the hole, so order is not preserved across ticks.
type Pool struct {
	kind      ParticleKind
	params    particleParams
	particles []Particle
}

func NewPool(kind ParticleKind) *Pool {
	return &Pool{
		kind:      kind,
		params:    particleKinds[kind],
		particles: make([]Particle, 0, 64),
	}
}

func (p *Pool) Kind() ParticleKind { return p.kind }

func (p *Pool) Len() int { return len(p.particles) }

// Spawn places one particle uniformly on the kind's emission disk.
func (p *Pool) Spawn(r Rand) Particle {
	angle := r.Float64() * 2 * math.Pi
	radius := math.Sqrt(r.Float64()) * p.params.diskRadius
	part := Particle{
		Kind: p.kind,
		Position: mgl64.Vec3{
			math.Cos(angle) * radius,
			p.params.baseHeight,
			math.Sin(angle) * radius,
		},
		Velocity: mgl64.Vec3{
			randRange(r, -p.params.jitter, p.params.jitter),
			randRange(r, p.params.riseMin, p.params.riseMax),
			randRange(r, -p.params.jitter, p.params.jitter),
		},
		Life:  1,
		Phase: r.Float64() * 2 * math.Pi,
	}
	p.particles = append(p.particles, part)
	return part
}

// Update advances every particle by one tick and drops the ones whose life
// ran out. It returns how many were removed.
func (p *Pool) Update(swayTime float64) int {
	removed := 0
	for i := len(p.particles) - 1; i >= 0; i-- {
		part := &p.particles[i]
		part.Position = part.Position.Add(part.Velocity)

		sway := swayTime*p.params.swayFreq + part.Phase
		part.Position[0] += math.Sin(sway) * p.params.swayAmp
		if p.params.swayZ {
			part.Position[2] += math.Cos(sway) * p.params.swayAmp
		}

		part.Life -= p.params.decay
		if part.Life <= 0 {
			last := len(p.particles) - 1
			p.particles[i] = p.particles[last]
			p.particles = p.particles[:last]
			removed++
		}
	}
	return removed
}

func (p *Pool) Clear() {
	p.particles = p.particles[:0]
}

func (p *Pool) Each(fn func(Particle)) {
	for _, part := range p.particles {
		fn(part)
	}
}

// ParticleSystem groups the three pools driven by the fire.
type ParticleSystem struct {
	Fire  *Pool
	Smoke *Pool
	Ember *Pool
}

func NewParticleSystem() *ParticleSystem {
	return &ParticleSystem{
		Fire:  NewPool(ParticleFire),
		Smoke: NewPool(ParticleSmoke),
		Ember: NewPool(ParticleEmber),
	}
}

func (s *ParticleSystem) Pools() [3]*Pool {
	return [3]*Pool{s.Fire, s.Smoke, s.Ember}
}

// Tick rolls one spawn chance per pool while the fire burns, then moves
// every live particle. Existing particles keep fading after the fire dies.
func (s *ParticleSystem) Tick(r Rand, burning bool, swayTime float64) {
	pools := s.Pools()
	if burning {
		for _, pool := range pools {
			if chance(r, pool.params.spawnChance) {
				pool.Spawn(r)
			}
		}
	}
	for _, pool := range pools {
		pool.Update(swayTime)
	}
}

func (s *ParticleSystem) Len() int {
	return s.Fire.Len() + s.Smoke.Len() + s.Ember.Len()
}

func (s *ParticleSystem) Clear() {
	for _, pool := range s.Pools() {
		pool.Clear()
	}
}
