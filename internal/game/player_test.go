package game

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestMoveDirectionIsUnitOrZero(t *testing.T) {
	keys := []MoveKey{MoveForward, MoveBack, MoveLeft, MoveRight}
	for mask := 0; mask < 16; mask++ {
		var in MoveInput
		for i, k := range keys {
			in.Set(k, mask&(1<<i) != 0)
		}
		for _, yaw := range []float64{0, 0.7, -2.1, 9.3} {
			dir := in.Direction(yaw)
			l := dir.Len()
			if l != 0 && math.Abs(l-1) > 1e-9 {
				t.Fatalf("mask %04b yaw %v: expected unit vector, got length %v", mask, yaw, l)
			}
			if !in.Any() && l != 0 {
				t.Fatalf("expected zero vector with no keys held, got %v", dir)
			}
			if dir.Y() != 0 {
				t.Fatalf("movement left the ground plane: %v", dir)
			}
		}
	}
}

func TestMoveDirectionFollowsCameraYaw(t *testing.T) {
	var in MoveInput
	in.Set(MoveForward, true)

	dir := in.Direction(0)
	if !dir.ApproxEqual(mgl64.Vec3{0, 0, -1}) {
		t.Fatalf("expected forward to be -z at yaw 0, got %v", dir)
	}
	dir = in.Direction(math.Pi / 2)
	if dir.Sub(mgl64.Vec3{-1, 0, 0}).Len() > 1e-9 {
		t.Fatalf("expected forward to be -x at yaw pi/2, got %v", dir)
	}

	in.Set(MoveBack, true)
	if dir := in.Direction(0.3); dir.Len() != 0 {
		t.Fatalf("expected opposite keys to cancel, got %v", dir)
	}
}

func TestPlayerMovesAtFixedSpeed(t *testing.T) {
	ctl := NewPlayerController(DefaultTuning().Player)
	p := NewPlayer()
	var in MoveInput
	in.Set(MoveForward, true)
	in.Set(MoveRight, true)

	start := p.Position
	ctl.Update(&p, in, 0)
	if moved := p.Position.Sub(start).Len(); math.Abs(moved-0.1) > 1e-9 {
		t.Fatalf("expected a 0.1 step on the diagonal, moved %v", moved)
	}

	idle := p
	ctl.Update(&p, MoveInput{}, 0)
	if p != idle {
		t.Fatalf("player changed with no keys held: %+v -> %+v", idle, p)
	}
}

func TestPlayerClampedToWorldRadius(t *testing.T) {
	ctl := NewPlayerController(DefaultTuning().Player)
	p := Player{Position: mgl64.Vec3{17.95, 0, 0}}
	var in MoveInput
	in.Set(MoveRight, true)

	for i := 0; i < 50; i++ {
		ctl.Update(&p, in, 0)
		if r := math.Hypot(p.Position.X(), p.Position.Z()); r > 18+1e-9 {
			t.Fatalf("player escaped world radius: %v", r)
		}
	}
	if math.Abs(p.Position.X()-18) > 1e-9 {
		t.Fatalf("expected player pinned at the boundary, got %v", p.Position)
	}
}

func TestPlayerTurnsTowardHeading(t *testing.T) {
	ctl := NewPlayerController(DefaultTuning().Player)
	p := NewPlayer()
	var in MoveInput
	in.Set(MoveRight, true)

	ctl.Update(&p, in, 0)
	if math.Abs(p.Heading-math.Pi/2*0.15) > 1e-9 {
		t.Fatalf("expected first turn of 15%%, got %v", p.Heading)
	}
	for i := 0; i < 200; i++ {
		ctl.Update(&p, in, 0)
	}
	if math.Abs(p.Heading-math.Pi/2) > 1e-6 {
		t.Fatalf("expected heading to settle at pi/2, got %v", p.Heading)
	}
}

func TestWrapAngleTakesShortestPath(t *testing.T) {
	cases := []struct {
		in, want float64
	}{
		{0, 0},
		{math.Pi, math.Pi},
		{-math.Pi, math.Pi},
		{3 * math.Pi / 2, -math.Pi / 2},
		{-3 * math.Pi / 2, math.Pi / 2},
		{5 * math.Pi, math.Pi},
	}
	for _, tc := range cases {
		if got := wrapAngle(tc.in); math.Abs(got-tc.want) > 1e-9 {
			t.Fatalf("wrapAngle(%v): expected %v, got %v", tc.in, tc.want, got)
		}
	}
}

func TestMoveKeyFor(t *testing.T) {
	if k, ok := MoveKeyFor("a"); !ok || k != MoveLeft {
		t.Fatalf("expected a to map to MoveLeft")
	}
	if _, ok := MoveKeyFor("q"); ok {
		t.Fatalf("expected q to be unmapped")
	}
}
