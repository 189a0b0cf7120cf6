package game

import "github.com/go-gl/mathgl/mgl64"

type HoverKind int

const (
	HoverNone HoverKind = iota
	HoverLog
	HoverFirepit
)

func (k HoverKind) String() string {
	switch k {
	case HoverLog:
		return "log"
	case HoverFirepit:
		return "firepit"
	default:
		return "none"
	}
}

// HoverTarget is what the pointer is over. Entity is set only for logs.
type HoverTarget struct {
	Kind   HoverKind
	Entity EntityID
}

type Cursor int

const (
	CursorDefault Cursor = iota
	CursorPointer
)

func (t HoverTarget) Cursor() Cursor {
	if t.Kind == HoverNone {
		return CursorDefault
	}
	return CursorPointer
}

type ClickAction int

const (
	ClickNothing ClickAction = iota
	ClickCollected
	ClickFed
	ClickTooFar
)

type ClickResult struct {
	Action ClickAction
	Entity EntityID
	Feed   FeedOutcome
}

// InteractionSystem resolves pointer rays against the entity registry and
// keeps the highlight state consistent with the current hover target.
type InteractionSystem struct {
	reg    *Registry
	reach  float64
	target HoverTarget
}

func NewInteractionSystem(reg *Registry, t InteractionTuning) *InteractionSystem {
	return &InteractionSystem{reg: reg, reach: t.Reach}
}

func (s *InteractionSystem) Target() HoverTarget { return s.target }

// Pick finds what a ray points at. The nearest collectible log wins; the
// firepit is only considered when no log is hit.
func (s *InteractionSystem) Pick(ray Ray) HoverTarget {
	best := HoverTarget{}
	bestT := 0.0
	for _, e := range s.reg.OfKind(KindCollectibleLog) {
		t, ok := ray.Intersect(e.Bounds)
		if !ok {
			continue
		}
		if best.Kind == HoverNone || t < bestT {
			best = HoverTarget{Kind: HoverLog, Entity: e.ID}
			bestT = t
		}
	}
	if best.Kind != HoverNone {
		return best
	}
	for _, e := range s.reg.OfKind(KindFirepitHitbox) {
		if _, ok := ray.Intersect(e.Bounds); ok {
			return HoverTarget{Kind: HoverFirepit}
		}
	}
	return HoverTarget{}
}

// Hover moves the highlight to whatever the ray points at and returns the
// new target.
func (s *InteractionSystem) Hover(ray Ray) HoverTarget {
	s.setTarget(s.Pick(ray))
	return s.target
}

func (s *InteractionSystem) ClearHover() {
	s.setTarget(HoverTarget{})
}

func (s *InteractionSystem) setTarget(next HoverTarget) {
	if next == s.target {
		return
	}
	s.applyGlow(s.target, false)
	s.applyGlow(next, true)
	s.target = next
}

func (s *InteractionSystem) applyGlow(t HoverTarget, on bool) {
	switch t.Kind {
	case HoverLog:
		if e, ok := s.reg.Get(t.Entity); ok {
			e.Glow = on
		}
	case HoverFirepit:
		for _, e := range s.reg.OfKind(KindFirepitStone) {
			e.Glow = on
		}
	}
}

// Click acts on the current hover target: a log is picked up, the firepit is
// fed. With a reach set, logs farther than that from the player stay put.
func (s *InteractionSystem) Click(econ *Economy, player mgl64.Vec3) ClickResult {
	switch s.target.Kind {
	case HoverLog:
		return s.Collect(s.target.Entity, econ, player)
	case HoverFirepit:
		out := econ.Feed()
		if out == FeedNoLogs {
			return ClickResult{Feed: out}
		}
		return ClickResult{Action: ClickFed, Feed: out}
	default:
		return ClickResult{}
	}
}

// Collect picks up a collectible log by id, whether or not it is hovered.
func (s *InteractionSystem) Collect(id EntityID, econ *Economy, player mgl64.Vec3) ClickResult {
	e, ok := s.reg.Get(id)
	if !ok || e.Kind != KindCollectibleLog {
		if s.target.Entity == id {
			s.target = HoverTarget{}
		}
		return ClickResult{}
	}
	if s.reach > 0 && groundDistance(e.Position, player) > s.reach {
		return ClickResult{Action: ClickTooFar, Entity: id}
	}
	if s.target.Entity == id {
		s.ClearHover()
	}
	s.reg.Remove(id)
	econ.State.LogsCarried++
	return ClickResult{Action: ClickCollected, Entity: id}
}

// Nearest returns the collectible log closest to p on the ground plane.
func (s *InteractionSystem) Nearest(p mgl64.Vec3) (*Entity, float64, bool) {
	var best *Entity
	bestD := 0.0
	for _, e := range s.reg.OfKind(KindCollectibleLog) {
		d := groundDistance(e.Position, p)
		if best == nil || d < bestD {
			best, bestD = e, d
		}
	}
	return best, bestD, best != nil
}

func groundDistance(a, b mgl64.Vec3) float64 {
	return mgl64.Vec2{a.X() - b.X(), a.Z() - b.Z()}.Len()
}
