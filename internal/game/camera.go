package game

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

type CameraMode int

const (
	CameraIdle CameraMode = iota
	CameraDragging
)

func (m CameraMode) String() string {
	if m == CameraDragging {
		return "dragging"
	}
	return "idle"
}

// CameraState is the orbit around the player. AngleX is yaw and is left
// unbounded; AngleY is pitch and stays inside the tuned range.
type CameraState struct {
	AngleX float64
	AngleY float64
	Radius float64
	Mode   CameraMode
}

type Camera struct {
	State    CameraState
	Position mgl64.Vec3
	LookAt   mgl64.Vec3
}

const (
	cameraNear = 0.1
	cameraFar  = 1000.0
)

var worldUp = mgl64.Vec3{0, 1, 0}

func NewCamera(t CameraTuning) Camera {
	return Camera{
		State: CameraState{
			AngleY: t.InitialPitch,
			Radius: t.Radius,
		},
		Position: mgl64.Vec3{0, 3, 8},
	}
}

type CameraController struct {
	tuning CameraTuning
}

func NewCameraController(t CameraTuning) CameraController {
	return CameraController{tuning: t}
}

// Desired returns where the camera wants to sit for the given player
// position, and how far the ground clamp pushed it up.
func (c CameraController) Desired(s CameraState, player mgl64.Vec3) (mgl64.Vec3, float64) {
	sinX, cosX := math.Sincos(s.AngleX)
	sinY, cosY := math.Sincos(s.AngleY)
	target := mgl64.Vec3{
		player.X() + s.Radius*sinX*cosY,
		player.Y() + s.Radius*sinY,
		player.Z() + s.Radius*cosX*cosY,
	}
	undershoot := 0.0
	if target.Y() < c.tuning.GroundOffset {
		undershoot = c.tuning.GroundOffset - target.Y()
		target[1] = c.tuning.GroundOffset
	}
	return target, undershoot
}

// Update eases the camera toward its orbit slot and re-aims it at the
// player's upper body. A camera pressed against the ground looks higher.
func (c CameraController) Update(cam *Camera, player mgl64.Vec3) {
	target, undershoot := c.Desired(cam.State, player)
	cam.Position = cam.Position.Add(target.Sub(cam.Position).Mul(c.tuning.FollowLerp))
	cam.LookAt = player.Add(mgl64.Vec3{0, c.tuning.EyeHeight + undershoot*c.tuning.UndershootLift, 0})
}

func (c CameraController) BeginDrag(s *CameraState) { s.Mode = CameraDragging }

func (c CameraController) EndDrag(s *CameraState) { s.Mode = CameraIdle }

// Drag applies a pointer delta in pixels. It only has an effect while the
// camera is in drag mode.
func (c CameraController) Drag(s *CameraState, dx, dy float64) bool {
	if s.Mode != CameraDragging {
		return false
	}
	s.AngleX -= dx * c.tuning.Sensitivity
	s.AngleY = mgl64.Clamp(s.AngleY+dy*c.tuning.Sensitivity, c.tuning.PitchMin, c.tuning.PitchMax)
	return true
}

// Viewport is the screen rectangle the camera renders into, in pixels with
// the origin at the top-left corner.
type Viewport struct {
	Width, Height int
}

func (v Viewport) Aspect() float64 {
	if v.Height == 0 {
		return 1
	}
	return float64(v.Width) / float64(v.Height)
}

func (c CameraController) matrices(cam Camera, vp Viewport) (view, proj mgl64.Mat4) {
	view = mgl64.LookAtV(cam.Position, cam.LookAt, worldUp)
	proj = mgl64.Perspective(mgl64.DegToRad(c.tuning.FovY), vp.Aspect(), cameraNear, cameraFar)
	return view, proj
}

// PickRay casts a world-space ray from the camera through a screen point.
func (c CameraController) PickRay(cam Camera, vp Viewport, x, y float64) (Ray, error) {
	if vp.Width <= 0 || vp.Height <= 0 {
		return Ray{}, fmt.Errorf("pick ray: empty viewport %dx%d", vp.Width, vp.Height)
	}
	view, proj := c.matrices(cam, vp)
	winY := float64(vp.Height) - y

	near, err := mgl64.UnProject(mgl64.Vec3{x, winY, 0}, view, proj, 0, 0, vp.Width, vp.Height)
	if err != nil {
		return Ray{}, fmt.Errorf("pick ray: unproject near: %w", err)
	}
	far, err := mgl64.UnProject(mgl64.Vec3{x, winY, 1}, view, proj, 0, 0, vp.Width, vp.Height)
	if err != nil {
		return Ray{}, fmt.Errorf("pick ray: unproject far: %w", err)
	}
	dir := far.Sub(near)
	if dir.LenSqr() == 0 {
		return Ray{}, fmt.Errorf("pick ray: degenerate direction")
	}
	return Ray{Origin: near, Dir: dir.Normalize()}, nil
}

// Project maps a world point to screen pixels. ok is false for points behind
// the camera.
func (c CameraController) Project(cam Camera, vp Viewport, p mgl64.Vec3) (x, y float64, ok bool) {
	view, proj := c.matrices(cam, vp)
	clip := proj.Mul4(view).Mul4x1(p.Vec4(1))
	if clip.W() <= 0 {
		return 0, 0, false
	}
	win := mgl64.Project(p, view, proj, 0, 0, vp.Width, vp.Height)
	return win.X(), float64(vp.Height) - win.Y(), true
}
