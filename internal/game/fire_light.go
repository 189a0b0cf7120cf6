package game

import "math"

// FireLight is the point light over the pit. It flickers on its own clock and
// does not read the particle pools.
type FireLight struct {
	Intensity float64
	Distance  float64
}

const (
	lightBaseDistance  = 15.0
	lightExtraDistance = 35.0
)

func fireLightAt(state FireState, scale, flickerTime float64, r Rand) FireLight {
	fi := state.Intensity / MaxIntensity
	light := FireLight{Distance: lightBaseDistance + fi*lightExtraDistance}
	if !state.Lit || state.Intensity <= 0 {
		return light
	}
	flicker := math.Sin(flickerTime*3)*0.15 + randRange(r, -0.5, 0.5)*0.3 + 1
	light.Intensity = math.Max(0, fi*scale*flicker)
	return light
}
