package game

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

type MoveKey int

const (
	MoveForward MoveKey = iota
	MoveBack
	MoveLeft
	MoveRight
)

var moveKeyNames = map[string]MoveKey{
	"w": MoveForward,
	"s": MoveBack,
	"a": MoveLeft,
	"d": MoveRight,
}

// MoveKeyFor maps the WASD letters to movement keys.
func MoveKeyFor(key string) (MoveKey, bool) {
	k, ok := moveKeyNames[key]
	return k, ok
}

// MoveInput is the set of movement keys currently held down.
type MoveInput struct {
	held [4]bool
}

func (in *MoveInput) Set(key MoveKey, down bool) {
	if key < MoveForward || key > MoveRight {
		return
	}
	in.held[key] = down
}

func (in MoveInput) Held(key MoveKey) bool {
	if key < MoveForward || key > MoveRight {
		return false
	}
	return in.held[key]
}

func (in MoveInput) Any() bool {
	return in.held[MoveForward] || in.held[MoveBack] || in.held[MoveLeft] || in.held[MoveRight]
}

// Direction returns the camera-relative ground direction for the held keys.
// The result is unit length, or zero when nothing is held or opposite keys
// cancel out.
func (in MoveInput) Direction(yaw float64) mgl64.Vec3 {
	sin, cos := math.Sincos(yaw)
	var dir mgl64.Vec3
	if in.held[MoveForward] {
		dir = dir.Add(mgl64.Vec3{-sin, 0, -cos})
	}
	if in.held[MoveBack] {
		dir = dir.Add(mgl64.Vec3{sin, 0, cos})
	}
	if in.held[MoveLeft] {
		dir = dir.Add(mgl64.Vec3{-cos, 0, sin})
	}
	if in.held[MoveRight] {
		dir = dir.Add(mgl64.Vec3{cos, 0, -sin})
	}
	if dir.LenSqr() < 1e-12 {
		return mgl64.Vec3{}
	}
	return dir.Normalize()
}

type Player struct {
	Position mgl64.Vec3
	Heading  float64
}

func NewPlayer() Player {
	return Player{Position: mgl64.Vec3{0, 0, 4}}
}

type PlayerController struct {
	tuning PlayerTuning
}

func NewPlayerController(t PlayerTuning) PlayerController {
	return PlayerController{tuning: t}
}

// Update moves the player one tick along the held direction and turns it a
// fraction of the way toward that heading.
func (c PlayerController) Update(p *Player, in MoveInput, yaw float64) {
	dir := in.Direction(yaw)
	if dir.LenSqr() == 0 {
		return
	}

	p.Position = clampRadius(p.Position.Add(dir.Mul(c.tuning.Speed)), c.tuning.WorldRadius)

	target := math.Atan2(dir.X(), dir.Z())
	p.Heading += wrapAngle(target-p.Heading) * c.tuning.RotationSpeed
}

// wrapAngle maps an angle difference into (-pi, pi].
func wrapAngle(diff float64) float64 {
	for diff > math.Pi {
		diff -= 2 * math.Pi
	}
	for diff <= -math.Pi {
		diff += 2 * math.Pi
	}
	return diff
}

func clampRadius(pos mgl64.Vec3, radius float64) mgl64.Vec3 {
	d := math.Hypot(pos.X(), pos.Z())
	if d <= radius || d == 0 {
		return pos
	}
	k := radius / d
	return mgl64.Vec3{pos.X() * k, pos.Y(), pos.Z() * k}
}
