package game

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func downRay(x, z float64) Ray {
	return Ray{Origin: mgl64.Vec3{x, 10, z}, Dir: mgl64.Vec3{0, -1, 0}}
}

func newTestWorld(t *testing.T, reach float64) (*Registry, *InteractionSystem) {
	t.Helper()

	reg := NewRegistry()
	populateWorld(reg, seededRNG(3))
	return reg, NewInteractionSystem(reg, InteractionTuning{Reach: reach})
}

func stonesGlowing(reg *Registry) int {
	n := 0
	for _, s := range reg.OfKind(KindFirepitStone) {
		if s.Glow {
			n++
		}
	}
	return n
}

func TestPopulateWorld(t *testing.T) {
	reg, _ := newTestWorld(t, 0)

	if n := len(reg.OfKind(KindCollectibleLog)); n != 3 {
		t.Fatalf("expected 3 collectible logs, got %d", n)
	}
	if n := len(reg.OfKind(KindFirepitStone)); n != 12 {
		t.Fatalf("expected 12 stones, got %d", n)
	}
	if n := len(reg.OfKind(KindFirepitHitbox)); n != 1 {
		t.Fatalf("expected one firepit hitbox, got %d", n)
	}
	if reg.Len() != 16 {
		t.Fatalf("expected 16 entities, got %d", reg.Len())
	}
}

func TestHoverLogAppliesAndClearsGlow(t *testing.T) {
	reg, sys := newTestWorld(t, 0)
	log := reg.OfKind(KindCollectibleLog)[0]

	target := sys.Hover(downRay(log.Position.X(), log.Position.Z()))
	if target.Kind != HoverLog || target.Entity != log.ID {
		t.Fatalf("expected hover on log %d, got %+v", log.ID, target)
	}
	if !log.Glow {
		t.Fatalf("expected hovered log to glow")
	}
	if target.Cursor() != CursorPointer {
		t.Fatalf("expected pointer cursor while hovering")
	}

	target = sys.Hover(downRay(10, 10))
	if target.Kind != HoverNone {
		t.Fatalf("expected no hover over empty ground, got %+v", target)
	}
	if log.Glow {
		t.Fatalf("expected glow cleared when pointer left the log")
	}
	if target.Cursor() != CursorDefault {
		t.Fatalf("expected default cursor")
	}
}

func TestHoverSwitchesBetweenLogAndFirepit(t *testing.T) {
	reg, sys := newTestWorld(t, 0)
	log := reg.OfKind(KindCollectibleLog)[1]

	sys.Hover(downRay(0, 0))
	if sys.Target().Kind != HoverFirepit {
		t.Fatalf("expected firepit hover, got %+v", sys.Target())
	}
	if n := stonesGlowing(reg); n != 12 {
		t.Fatalf("expected all 12 stones to glow, got %d", n)
	}

	sys.Hover(downRay(log.Position.X(), log.Position.Z()))
	if sys.Target().Kind != HoverLog {
		t.Fatalf("expected log hover, got %+v", sys.Target())
	}
	if n := stonesGlowing(reg); n != 0 {
		t.Fatalf("expected stones to stop glowing, %d still lit", n)
	}
	glowing := 0
	for _, e := range reg.All() {
		if e.Glow {
			glowing++
		}
	}
	if glowing != 1 {
		t.Fatalf("expected exactly one glowing entity, got %d", glowing)
	}
}

func TestPickPrefersNearestLog(t *testing.T) {
	reg, sys := newTestWorld(t, 0)
	ray := Ray{Origin: mgl64.Vec3{-3, 0.15, 10}, Dir: mgl64.Vec3{0, 0, -1}}

	target := sys.Pick(ray)
	if target.Kind != HoverLog {
		t.Fatalf("expected a log hit, got %+v", target)
	}
	e, _ := reg.Get(target.Entity)
	if e.Position.Z() != 3 {
		t.Fatalf("expected the nearer log at z=3, got %v", e.Position)
	}
}

func TestPickPrefersLogOverFirepit(t *testing.T) {
	reg := NewRegistry()
	reg.Add(Entity{Kind: KindFirepitHitbox, Bounds: firepitBounds})
	id := reg.Add(Entity{
		Kind:     KindCollectibleLog,
		Position: mgl64.Vec3{0, 0.15, -1},
		Bounds:   BoxAround(mgl64.Vec3{0, 0.15, -1}, groundLogHalf),
	})
	sys := NewInteractionSystem(reg, InteractionTuning{})

	ray := Ray{Origin: mgl64.Vec3{0, 0.15, 10}, Dir: mgl64.Vec3{0, 0, -1}}
	if got := sys.Pick(ray); got.Kind != HoverLog || got.Entity != id {
		t.Fatalf("expected log to win over the firepit, got %+v", got)
	}
}

func TestClickCollectsHoveredLog(t *testing.T) {
	reg, sys := newTestWorld(t, 0)
	econ := newTestEconomy(0)
	log := reg.OfKind(KindCollectibleLog)[0]
	id := log.ID

	sys.Hover(downRay(log.Position.X(), log.Position.Z()))
	res := sys.Click(econ, NewPlayer().Position)
	if res.Action != ClickCollected || res.Entity != id {
		t.Fatalf("expected collection of %d, got %+v", id, res)
	}
	if econ.State.LogsCarried != 1 {
		t.Fatalf("expected one carried log, got %d", econ.State.LogsCarried)
	}
	if _, ok := reg.Get(id); ok {
		t.Fatalf("collected log still registered")
	}
	if sys.Target().Kind != HoverNone {
		t.Fatalf("expected hover cleared after pickup")
	}

	if res := sys.Click(econ, NewPlayer().Position); res.Action != ClickNothing {
		t.Fatalf("expected second click to do nothing, got %+v", res)
	}
	if sys.Hover(downRay(log.Position.X(), log.Position.Z())).Kind != HoverNone {
		t.Fatalf("collected log can still be hovered")
	}
}

func TestClickFirepitFeeds(t *testing.T) {
	_, sys := newTestWorld(t, 0)
	econ := newTestEconomy(1)

	sys.Hover(downRay(0.5, 0.5))
	res := sys.Click(econ, NewPlayer().Position)
	if res.Action != ClickFed || res.Feed != FeedStacked {
		t.Fatalf("expected feed, got %+v", res)
	}
	if econ.State.LogsInFire != 1 || econ.State.LogsCarried != 0 {
		t.Fatalf("unexpected state after feed: %+v", econ.State)
	}

	res = sys.Click(econ, NewPlayer().Position)
	if res.Action != ClickNothing || res.Feed != FeedNoLogs {
		t.Fatalf("expected empty-handed feed to do nothing, got %+v", res)
	}
	if sys.Target().Kind != HoverFirepit {
		t.Fatalf("firepit hover should persist after feeding")
	}
}

func TestClickRespectsReach(t *testing.T) {
	reg, sys := newTestWorld(t, 2)
	econ := newTestEconomy(0)
	log := reg.OfKind(KindCollectibleLog)[0]

	sys.Hover(downRay(log.Position.X(), log.Position.Z()))
	res := sys.Click(econ, mgl64.Vec3{})
	if res.Action != ClickTooFar {
		t.Fatalf("expected too-far refusal, got %+v", res)
	}
	if econ.State.LogsCarried != 0 {
		t.Fatalf("refused pickup still added a log")
	}
	if _, ok := reg.Get(log.ID); !ok {
		t.Fatalf("refused log was removed")
	}

	near := log.Position.Add(mgl64.Vec3{1, 0, 0})
	if res := sys.Click(econ, near); res.Action != ClickCollected {
		t.Fatalf("expected pickup within reach, got %+v", res)
	}
}
