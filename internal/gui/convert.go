package gui

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/appengine-ltd/campfire/internal/game"
)

const (
	groundLogLength  = 1.2
	groundLogRadius  = 0.15
	stackedLogLength = 1.0
	stackedLogRadius = 0.12
)

func vec3(v mgl64.Vec3) rl.Vector3 {
	return rl.Vector3{X: float32(v.X()), Y: float32(v.Y()), Z: float32(v.Z())}
}

func unit(v float64) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 1:
		return 255
	}
	return uint8(math.Round(v * 255))
}

// particleColor converts a linear particle color and opacity into an 8-bit
// raylib color.
func particleColor(c game.Color, opacity float64) rl.Color {
	return rl.Color{R: unit(c.R), G: unit(c.G), B: unit(c.B), A: unit(opacity)}
}

// logAxis is the direction a cylinder's length points after tilting it
// around Z and then turning it by yaw around Y. A tilt of pi/2 lays the log
// along -X.
func logAxis(yaw, tilt float64) mgl64.Vec3 {
	x, y := -math.Sin(tilt), math.Cos(tilt)
	return mgl64.Vec3{x * math.Cos(yaw), y, -x * math.Sin(yaw)}
}

// logEnds returns the two cap centers of a log of the given length.
func logEnds(center mgl64.Vec3, yaw, tilt, length float64) (mgl64.Vec3, mgl64.Vec3) {
	half := logAxis(yaw, tilt).Mul(length / 2)
	return center.Sub(half), center.Add(half)
}

func stackedLogEnds(l game.StackedLog) (mgl64.Vec3, mgl64.Vec3) {
	return logEnds(l.Position, 0, l.Roll, stackedLogLength)
}

// fireGlow is the ground tint under the pit. It saturates once the light
// reaches full strength for a roaring fire.
func fireGlow(light game.FireLight) rl.Color {
	const fullLight, maxAlpha = 50.0, 0.6
	a := light.Intensity / fullLight * maxAlpha
	if a > maxAlpha {
		a = maxAlpha
	}
	return rl.ColorAlpha(colorFireLit, float32(math.Max(a, 0)))
}
