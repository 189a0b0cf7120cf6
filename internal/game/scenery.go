package game

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Scenery is the static backdrop. It is built once from the world seed and
// never touched by the simulation.
type Scenery struct {
	GroundRadius float64
	Trees        []Tree
	Mountains    []Mountain
	Stars        []mgl64.Vec3
	Moon         mgl64.Vec3
	MoonRadius   float64
}

type Tree struct {
	Position mgl64.Vec3
	Scale    float64
}

type Mountain struct {
	Position mgl64.Vec3
	Height   float64
	Width    float64
	Yaw      float64
}

const (
	treeCount     = 20
	mountainCount = 24
	starCount     = 2000
	skyRadius     = 500.0
	moonDistance  = 400.0
)

func BuildScenery(seed int64) Scenery {
	r := seededRNG(seed ^ 0x5ce)
	sc := Scenery{
		GroundRadius: 25,
		MoonRadius:   20,
	}

	for i := 0; i < treeCount; i++ {
		angle := r.Float64() * 2 * math.Pi
		dist := randRange(r, 6, 20)
		sc.Trees = append(sc.Trees, Tree{
			Position: mgl64.Vec3{math.Cos(angle) * dist, 0, math.Sin(angle) * dist},
			Scale:    randRange(r, 0.8, 1.5),
		})
	}

	for i := 0; i < mountainCount; i++ {
		theta := float64(i) / mountainCount * 2 * math.Pi
		dist := randRange(r, 150, 180)
		height := randRange(r, 80, 140)
		sc.Mountains = append(sc.Mountains, Mountain{
			Position: mgl64.Vec3{math.Cos(theta) * dist, height/2 - 10, math.Sin(theta) * dist},
			Height:   height,
			Width:    randRange(r, 60, 90),
			Yaw:      r.Float64() * math.Pi,
		})
	}

	for len(sc.Stars) < starCount {
		theta := 2 * math.Pi * r.Float64()
		phi := math.Acos(2*r.Float64() - 1)
		star := mgl64.Vec3{
			skyRadius * math.Sin(phi) * math.Cos(theta),
			skyRadius * math.Sin(phi) * math.Sin(theta),
			skyRadius * math.Cos(phi),
		}
		if star.Y() < -50 {
			continue
		}
		sc.Stars = append(sc.Stars, star)
	}

	theta, phi := math.Pi*0.25, math.Pi*0.3
	sc.Moon = mgl64.Vec3{
		moonDistance * math.Sin(phi) * math.Cos(theta),
		moonDistance * math.Cos(phi),
		moonDistance * math.Sin(phi) * math.Sin(theta),
	}
	return sc
}
