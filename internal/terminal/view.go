package terminal

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

const (
	colsPerUnit = 2.0
	rowsPerUnit = 1.0
)

// view maps the ground plane onto the map area of the screen. The player
// sits in the middle and camera-forward points up, so WASD matches what the
// 3D camera would show.
type view struct {
	center mgl64.Vec3
	yaw    float64
	left   int
	top    int
	width  int
	height int
}

func (v view) axes() (forward, right mgl64.Vec2) {
	sin, cos := math.Sincos(v.yaw)
	return mgl64.Vec2{-sin, -cos}, mgl64.Vec2{cos, -sin}
}

// toCell returns the cell a world point falls into and whether it is inside
// the map area.
func (v view) toCell(p mgl64.Vec3) (col, row int, ok bool) {
	forward, right := v.axes()
	d := mgl64.Vec2{p.X() - v.center.X(), p.Z() - v.center.Z()}
	up := d.Dot(forward)
	across := d.Dot(right)

	col = v.left + v.width/2 + int(math.Round(across*colsPerUnit))
	row = v.top + v.height/2 - int(math.Round(up*rowsPerUnit))
	ok = col >= v.left && col < v.left+v.width && row >= v.top && row < v.top+v.height
	return col, row, ok
}

// toWorld is the ground point at the middle of a cell.
func (v view) toWorld(col, row int) mgl64.Vec3 {
	forward, right := v.axes()
	across := float64(col-v.left-v.width/2) / colsPerUnit
	up := float64(v.top+v.height/2-row) / rowsPerUnit
	d := right.Mul(across).Add(forward.Mul(up))
	return mgl64.Vec3{v.center.X() + d.X(), 0, v.center.Z() + d.Y()}
}

func (v view) contains(col, row int) bool {
	return col >= v.left && col < v.left+v.width && row >= v.top && row < v.top+v.height
}
