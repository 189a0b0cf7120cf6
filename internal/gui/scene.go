package gui

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/appengine-ltd/campfire/internal/game"
)

const radToDeg = 180 / math.Pi

// camera3D mirrors the simulation camera so the pick rays the sim casts line
// up with what raylib draws.
func camera3D(cam game.Camera, fovY float64) rl.Camera3D {
	return rl.Camera3D{
		Position:   vec3(cam.Position),
		Target:     vec3(cam.LookAt),
		Up:         rl.Vector3{Y: 1},
		Fovy:       float32(fovY),
		Projection: rl.CameraPerspective,
	}
}

func drawScene(sim *game.Sim, sc game.Scenery) {
	rl.BeginMode3D(camera3D(sim.Camera(), sim.Tuning().Camera.FovY))

	drawSky(sc)
	drawGround(sc, sim.Light())
	for _, t := range sc.Trees {
		drawTree(t)
	}
	for _, e := range sim.Entities() {
		switch e.Kind {
		case game.KindFirepitStone:
			drawStone(e)
		case game.KindCollectibleLog:
			drawGroundLog(e)
		}
	}
	for _, l := range sim.StackedLogs() {
		a, b := stackedLogEnds(l)
		rl.DrawCylinderEx(vec3(a), vec3(b), stackedLogRadius, stackedLogRadius, 8, colorLog)
	}
	drawPlayer(sim.Player())
	drawParticles(sim.Particles())

	rl.EndMode3D()
}

func drawSky(sc game.Scenery) {
	for _, s := range sc.Stars {
		rl.DrawPoint3D(vec3(s), colorStar)
	}
	rl.DrawSphere(vec3(sc.Moon), float32(sc.MoonRadius), colorMoon)
	for _, m := range sc.Mountains {
		base := m.Position.Sub(mgl64.Vec3{0, m.Height / 2, 0})
		rl.PushMatrix()
		rl.Translatef(float32(base.X()), float32(base.Y()), float32(base.Z()))
		rl.Rotatef(float32(m.Yaw*radToDeg), 0, 1, 0)
		rl.DrawCylinder(rl.Vector3{}, 0, float32(m.Width/2), float32(m.Height), 5, colorMountain)
		rl.PopMatrix()
	}
}

func drawGround(sc game.Scenery, light game.FireLight) {
	rl.DrawCylinder(rl.Vector3{Y: -0.05}, float32(sc.GroundRadius), float32(sc.GroundRadius), 0.05, 48, colorGround)
	if light.Intensity > 0 {
		r := float32(light.Distance / 6)
		rl.BeginBlendMode(rl.BlendAdditive)
		rl.DrawCylinder(rl.Vector3{Y: 0.005}, r, r, 0.01, 32, fireGlow(light))
		rl.EndBlendMode()
	}
}

func drawTree(t game.Tree) {
	s := float32(t.Scale)
	p := vec3(t.Position)
	rl.DrawCylinder(p, 0.3*s, 0.4*s, 4*s, 8, colorTrunk)
	top := rl.Vector3{X: p.X, Y: p.Y + 3.5*s, Z: p.Z}
	rl.DrawCylinder(top, 0, 1.5*s, 3*s, 8, colorFoliage)
}

func drawStone(e *game.Entity) {
	col := colorStone
	if e.Glow {
		col = colorStoneHot
	}
	p := vec3(e.Position)
	rl.PushMatrix()
	rl.Translatef(p.X, p.Y, p.Z)
	rl.Rotatef(float32(e.Yaw*radToDeg), 0, 1, 0)
	rl.Rotatef(float32(e.Tilt*radToDeg), 1, 0, 0)
	rl.DrawSphereEx(rl.Vector3{}, 0.3, 3, 5, col)
	rl.PopMatrix()
}

func drawGroundLog(e *game.Entity) {
	a, b := logEnds(e.Position, e.Yaw, e.Tilt, groundLogLength)
	rl.DrawCylinderEx(vec3(a), vec3(b), groundLogRadius, groundLogRadius, 10, colorLog)
	if e.Glow {
		rl.DrawCylinderWiresEx(vec3(a), vec3(b), groundLogRadius+0.02, groundLogRadius+0.02, 10, colorLogGlow)
	}
}

func drawPlayer(p game.Player) {
	pos := vec3(p.Position)
	rl.PushMatrix()
	rl.Translatef(pos.X, pos.Y, pos.Z)
	rl.Rotatef(float32(p.Heading*radToDeg), 0, 1, 0)
	rl.DrawCapsule(rl.Vector3{Y: 0.3}, rl.Vector3{Y: 1.1}, 0.3, 8, 8, colorBody)
	rl.DrawSphere(rl.Vector3{Y: 1.35}, 0.25, colorHead)
	rl.DrawSphere(rl.Vector3{X: -0.1, Y: 1.4, Z: 0.2}, 0.05, rl.Black)
	rl.DrawSphere(rl.Vector3{X: 0.1, Y: 1.4, Z: 0.2}, 0.05, rl.Black)
	rl.DrawCube(rl.Vector3{Y: 1.0, Z: -0.2}, 0.4, 0.5, 0.2, colorPack)
	rl.PopMatrix()
}

func drawParticles(ps *game.ParticleSystem) {
	rl.BeginBlendMode(rl.BlendAdditive)
	for _, pool := range ps.Pools() {
		size := pool.Kind().Size()
		pool.Each(func(p game.Particle) {
			col := particleColor(p.Color(), p.Opacity())
			rl.DrawSphereEx(vec3(p.Position), float32(size*p.Scale()), 4, 4, col)
		})
	}
	rl.EndBlendMode()
}
