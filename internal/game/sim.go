package game

import (
	"fmt"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/rs/zerolog"
)

type PointerButton int

const (
	ButtonPrimary PointerButton = iota
	ButtonSecondary
)

// Sim owns every piece of mutable game state. It is not safe for concurrent
// use: frontends call it from their own loop goroutine only.
type Sim struct {
	tuning Tuning
	log    zerolog.Logger
	seed   int64
	rng    Rand

	econ        *Economy
	particles   *ParticleSystem
	light       FireLight
	player      Player
	camera      Camera
	registry    *Registry
	interaction *InteractionSystem

	playerCtl PlayerController
	cameraCtl CameraController

	input    MoveInput
	viewport Viewport
	pointer  mgl64.Vec2

	tick   uint64
	acc    time.Duration
	events []Event
}

type Option func(*Sim)

func WithLogger(log zerolog.Logger) Option {
	return func(s *Sim) { s.log = log }
}

func WithSeed(seed int64) Option {
	return func(s *Sim) { s.seed = seed }
}

// WithRand replaces the seeded generator. Tests use it to script spawns and
// flicker.
func WithRand(r Rand) Option {
	return func(s *Sim) { s.rng = r }
}

func WithViewport(width, height int) Option {
	return func(s *Sim) { s.viewport = Viewport{Width: width, Height: height} }
}

func NewSim(t Tuning, opts ...Option) (*Sim, error) {
	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("invalid tuning: %w", err)
	}
	s := &Sim{
		tuning:    t,
		log:       zerolog.Nop(),
		seed:      1,
		viewport:  Viewport{Width: 1280, Height: 720},
		econ:      NewEconomy(t.Fire, t.Inventory),
		particles: NewParticleSystem(),
		player:    NewPlayer(),
		camera:    NewCamera(t.Camera),
		registry:  NewRegistry(),
		playerCtl: NewPlayerController(t.Player),
		cameraCtl: NewCameraController(t.Camera),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = NewRand(s.seed)
	}
	populateWorld(s.registry, s.rng)
	s.interaction = NewInteractionSystem(s.registry, t.Interaction)

	s.log.Debug().
		Int64("seed", s.seed).
		Int("tick_rate", t.TickRate).
		Int("entities", s.registry.Len()).
		Msg("simulation ready")
	return s, nil
}

// Tick advances the simulation by a frame's wall-clock delta using a fixed
// step. At most MaxStepsPerFrame steps run; leftover time beyond that is
// dropped so a stalled frame cannot cause a burst of catch-up ticks.
func (s *Sim) Tick(dt time.Duration) int {
	if dt <= 0 {
		return 0
	}
	step := s.tuning.Step()
	s.acc += dt
	steps := 0
	for s.acc >= step && steps < s.tuning.MaxStepsPerFrame {
		s.Step()
		s.acc -= step
		steps++
	}
	if steps == s.tuning.MaxStepsPerFrame && s.acc >= step {
		s.log.Debug().Dur("dropped", s.acc).Msg("frame budget exceeded")
		s.acc = 0
	}
	return steps
}

// Step runs exactly one logical tick.
func (s *Sim) Step() {
	s.tick++

	s.playerCtl.Update(&s.player, s.input, s.camera.State.AngleX)
	s.cameraCtl.Update(&s.camera, s.player.Position)

	res := s.econ.Burn()
	for range res.Burnt {
		s.emit(EventLogBurnt, 0)
	}
	if res.Extinguished {
		s.emit(EventExtinguished, 0)
		s.log.Info().Uint64("tick", s.tick).Msg("fire went out")
	}

	st := s.econ.State
	s.particles.Tick(s.rng, st.Lit && st.Intensity > 0, s.seconds()*2)
	s.light = fireLightAt(st, s.tuning.Fire.LightScale, s.seconds()*5, s.rng)
}

func (s *Sim) seconds() float64 {
	return float64(s.tick) / float64(s.tuning.TickRate)
}

func (s *Sim) emit(kind EventKind, id EntityID) {
	s.events = append(s.events, Event{
		Kind:      kind,
		Tick:      s.tick,
		Intensity: s.econ.State.Intensity,
		Entity:    id,
	})
}

// DrainEvents returns the events produced since the previous call.
func (s *Sim) DrainEvents() []Event {
	out := s.events
	s.events = nil
	return out
}

func (s *Sim) SetKey(key MoveKey, down bool) {
	s.input.Set(key, down)
}

func (s *Sim) ReleaseKeys() {
	s.input = MoveInput{}
}

func (s *Sim) SetViewport(width, height int) {
	s.viewport = Viewport{Width: width, Height: height}
}

// PointerDown with the secondary button starts a camera drag and drops any
// hover highlight.
func (s *Sim) PointerDown(b PointerButton) {
	if b != ButtonSecondary {
		return
	}
	s.cameraCtl.BeginDrag(&s.camera.State)
	s.interaction.ClearHover()
}

func (s *Sim) PointerUp(b PointerButton) {
	if b != ButtonSecondary {
		return
	}
	s.cameraCtl.EndDrag(&s.camera.State)
}

// PointerMove either orbits the camera by the delta or, when not dragging,
// re-runs the hover test at the pointer position.
func (s *Sim) PointerMove(x, y, dx, dy float64) {
	s.pointer = mgl64.Vec2{x, y}
	if s.cameraCtl.Drag(&s.camera.State, dx, dy) {
		return
	}
	s.hoverAt(x, y)
}

// OrbitBy turns the camera as if the pointer had been dragged by dx, dy.
func (s *Sim) OrbitBy(dx, dy float64) {
	prev := s.camera.State.Mode
	s.cameraCtl.BeginDrag(&s.camera.State)
	s.cameraCtl.Drag(&s.camera.State, dx, dy)
	s.camera.State.Mode = prev
}

// ClearHover drops the highlight, e.g. when the pointer leaves the scene.
func (s *Sim) ClearHover() {
	s.interaction.ClearHover()
}

func (s *Sim) hoverAt(x, y float64) {
	ray, err := s.cameraCtl.PickRay(s.camera, s.viewport, x, y)
	if err != nil {
		s.log.Debug().Err(err).Msg("hover skipped")
		s.interaction.ClearHover()
		return
	}
	s.interaction.Hover(ray)
}

// HoverRay runs the hover test for a ray built by the caller, for frontends
// that do not project through the orbit camera.
func (s *Sim) HoverRay(ray Ray) HoverTarget {
	if s.camera.State.Mode == CameraDragging {
		return s.interaction.Target()
	}
	return s.interaction.Hover(ray)
}

// Click acts on whatever is under the pointer at x, y.
func (s *Sim) Click(x, y float64) bool {
	if s.camera.State.Mode == CameraDragging {
		return false
	}
	s.hoverAt(x, y)
	return s.clickHovered()
}

// ClickRay is Click for a caller-built ray.
func (s *Sim) ClickRay(ray Ray) bool {
	if s.HoverRay(ray).Kind == HoverNone {
		return false
	}
	return s.clickHovered()
}

func (s *Sim) clickHovered() bool {
	return s.applyClick(s.interaction.Click(s.econ, s.player.Position))
}

// CollectNearest picks up the log closest to the player, subject to reach.
func (s *Sim) CollectNearest() bool {
	e, _, ok := s.interaction.Nearest(s.player.Position)
	if !ok {
		s.log.Debug().Msg("no logs left to collect")
		return false
	}
	return s.applyClick(s.interaction.Collect(e.ID, s.econ, s.player.Position))
}

// NearestLog reports the closest remaining collectible log and its ground
// distance from the player.
func (s *Sim) NearestLog() (Entity, float64, bool) {
	e, d, ok := s.interaction.Nearest(s.player.Position)
	if !ok {
		return Entity{}, 0, false
	}
	return *e, d, true
}

func (s *Sim) LogsRemaining() int {
	return len(s.registry.OfKind(KindCollectibleLog))
}

func (s *Sim) applyClick(res ClickResult) bool {
	switch res.Action {
	case ClickCollected:
		s.emit(EventLogCollected, res.Entity)
		s.log.Debug().Int("entity", int(res.Entity)).Int("carried", s.econ.State.LogsCarried).Msg("log collected")
		return true
	case ClickTooFar:
		s.emit(EventPickupTooFar, res.Entity)
		s.log.Info().Int("entity", int(res.Entity)).Msg("too far to pick up")
		return false
	case ClickFed:
		s.afterFeed(res.Feed)
		return true
	default:
		return false
	}
}

// FeedFire is the direct "add a log" action. It reports whether a log was
// placed.
func (s *Sim) FeedFire() bool {
	out := s.econ.Feed()
	if out == FeedNoLogs {
		s.log.Debug().Msg("feed ignored: no logs carried")
		return false
	}
	s.afterFeed(out)
	return true
}

func (s *Sim) afterFeed(out FeedOutcome) {
	s.emit(EventLogFed, 0)
	if out == FeedIgnited {
		s.emit(EventIgnited, 0)
		s.log.Info().Int("logs_in_fire", s.econ.State.LogsInFire).Msg("fire caught from stacked logs")
	}
}

// LightFire tries a manual ignition. Too few logs is reported, not fatal.
func (s *Sim) LightFire() bool {
	switch s.econ.Light() {
	case LightIgnited:
		s.emit(EventIgnited, 0)
		s.log.Info().Float64("intensity", s.econ.State.Intensity).Msg("fire lit")
		return true
	case LightTooFewLogs:
		s.emit(EventIgniteRefused, 0)
		s.log.Info().
			Int("logs_in_fire", s.econ.State.LogsInFire).
			Int("required", s.tuning.Fire.MinLogsToLight).
			Msg("need more logs to start the fire")
		return false
	default:
		return false
	}
}

func (s *Sim) HUD() HUD {
	st := s.econ.State
	status := st.Status()
	return HUD{
		LogsCarried:  st.LogsCarried,
		Kindling:     st.Kindling,
		LogsInFire:   st.LogsInFire,
		IntensityPct: st.Intensity,
		Lit:          st.Lit,
		Status:       status,
		StatusLabel:  status.Label(),
		Hovering:     s.interaction.Target(),
	}
}

func (s *Sim) Fire() FireState            { return s.econ.State }
func (s *Sim) Light() FireLight           { return s.light }
func (s *Sim) Player() Player             { return s.player }
func (s *Sim) Camera() Camera             { return s.camera }
func (s *Sim) Particles() *ParticleSystem { return s.particles }
func (s *Sim) StackedLogs() []StackedLog  { return s.econ.Logs() }
func (s *Sim) Entities() []*Entity        { return s.registry.All() }
func (s *Sim) Hover() HoverTarget         { return s.interaction.Target() }
func (s *Sim) Cursor() Cursor             { return s.interaction.Target().Cursor() }
func (s *Sim) Ticks() uint64              { return s.tick }
func (s *Sim) Seed() int64                { return s.seed }
func (s *Sim) Tuning() Tuning             { return s.tuning }
func (s *Sim) Viewport() Viewport         { return s.viewport }
func (s *Sim) Pointer() mgl64.Vec2        { return s.pointer }

// ProjectToScreen maps a world point through the current camera.
func (s *Sim) ProjectToScreen(p mgl64.Vec3) (x, y float64, ok bool) {
	return s.cameraCtl.Project(s.camera, s.viewport, p)
}
