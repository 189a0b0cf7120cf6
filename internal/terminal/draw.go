package terminal

import (
	"fmt"
	"math"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/appengine-ltd/campfire/internal/game"
)

var (
	styleGround  = tcell.StyleDefault.Background(tcell.NewRGBColor(18, 34, 18))
	styleOutside = tcell.StyleDefault.Background(tcell.ColorBlack)
	styleBar     = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.NewRGBColor(255, 170, 80))
	styleHUD     = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.NewRGBColor(30, 30, 30))
	styleMessage = tcell.StyleDefault.Foreground(tcell.ColorSilver)
	stoneColor   = tcell.NewRGBColor(102, 102, 102)
	logColor     = tcell.NewRGBColor(139, 69, 19)
	glowColor    = tcell.NewRGBColor(255, 200, 80)
	treeColor    = tcell.NewRGBColor(34, 120, 34)
)

func rgb(c game.Color, scale float64) tcell.Color {
	ch := func(v float64) int32 { return int32(math.Round(math.Max(0, math.Min(1, v*scale)) * 255)) }
	return tcell.NewRGBColor(ch(c.R), ch(c.G), ch(c.B))
}

func (a *App) layout() {
	w, h := a.screen.Size()
	player := a.sim.Player()
	a.view = view{
		center: player.Position,
		yaw:    a.sim.Camera().State.AngleX,
		left:   0,
		top:    1,
		width:  w,
		height: max(h-3, 0),
	}
}

func (a *App) draw() {
	a.layout()
	clear(a.picks)
	a.screen.Clear()

	w, h := a.screen.Size()
	a.drawGround()
	a.drawTrees()
	a.drawFirepit()
	a.drawParticles()
	a.drawLogs()
	a.drawPlayer()

	a.drawText(0, 0, w, padRight(" Campfire", w), styleBar)
	a.drawText(0, h-2, w, padRight(" "+hudLine(a.sim.HUD()), w), styleHUD)
	if a.mode == modeConsole {
		a.drawText(0, h-1, w, ":"+string(a.line), styleMessage)
		a.screen.ShowCursor(1+len(a.line), h-1)
	} else {
		a.drawText(0, h-1, w, a.message, styleMessage)
		a.screen.HideCursor()
	}
	a.screen.Show()
}

func (a *App) drawGround() {
	radius := a.scenery.GroundRadius
	for row := a.view.top; row < a.view.top+a.view.height; row++ {
		for col := a.view.left; col < a.view.left+a.view.width; col++ {
			p := a.view.toWorld(col, row)
			style := styleOutside
			if math.Hypot(p.X(), p.Z()) <= radius {
				style = styleGround
			}
			a.screen.SetContent(col, row, ' ', nil, style)
		}
	}
}

// put draws a glyph over the ground, keeping the cell background.
func (a *App) put(p mgl64.Vec3, r rune, fg tcell.Color, bold bool) (int, int, bool) {
	col, row, ok := a.view.toCell(p)
	if !ok {
		return 0, 0, false
	}
	_, _, style, _ := a.screen.GetContent(col, row)
	a.screen.SetContent(col, row, r, nil, style.Foreground(fg).Bold(bold))
	return col, row, true
}

func (a *App) drawTrees() {
	for _, t := range a.scenery.Trees {
		a.put(t.Position, '♣', treeColor, false)
	}
}

func (a *App) drawFirepit() {
	for _, e := range a.entities(game.KindFirepitStone) {
		if e.Glow {
			a.put(e.Position, 'o', glowColor, true)
		} else {
			a.put(e.Position, 'o', stoneColor, false)
		}
	}
	fire := a.sim.Fire()
	switch {
	case fire.Lit:
		heat := fire.Intensity / game.MaxIntensity
		a.put(mgl64.Vec3{}, '▲', rgb(game.Color{R: 1, G: 0.4 + 0.5*heat, B: 0.1}, 1), true)
	case fire.LogsInFire > 0:
		a.put(mgl64.Vec3{}, '#', logColor, false)
	}
}

func (a *App) drawParticles() {
	for _, pool := range a.sim.Particles().Pools() {
		pool.Each(func(p game.Particle) {
			switch p.Kind {
			case game.ParticleFire:
				a.put(p.Position, '*', rgb(p.Color(), 1), false)
			case game.ParticleSmoke:
				a.put(p.Position, '░', rgb(p.Color(), 0.5+p.Opacity()), false)
			case game.ParticleEmber:
				a.put(p.Position, '·', rgb(p.Color(), p.Opacity()), true)
			}
		})
	}
}

func (a *App) drawLogs() {
	for _, e := range a.entities(game.KindCollectibleLog) {
		fg := logColor
		if e.Glow {
			fg = glowColor
		}
		if col, row, ok := a.put(e.Position, '=', fg, e.Glow); ok {
			a.picks[[2]int{col, row}] = e.Position
		}
	}
}

func (a *App) drawPlayer() {
	a.put(a.sim.Player().Position, '@', tcell.ColorWhite, true)
}

func (a *App) entities(kind game.EntityKind) []game.Entity {
	var out []game.Entity
	for _, e := range a.sim.Entities() {
		if e.Kind == kind {
			out = append(out, *e)
		}
	}
	return out
}

func (a *App) drawText(x, y, width int, s string, style tcell.Style) {
	col := x
	for _, r := range s {
		if col >= x+width {
			return
		}
		a.screen.SetContent(col, y, r, nil, style)
		col++
	}
}

func padRight(s string, width int) string {
	if n := len([]rune(s)); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}

func hudLine(h game.HUD) string {
	line := fmt.Sprintf("Logs: %d  Kindling: %d  In fire: %d  Fire: %s %3.0f%%  %s",
		h.LogsCarried, h.Kindling, h.LogsInFire, intensityBar(h.IntensityPct), h.IntensityPct, h.StatusLabel)
	switch h.Hovering.Kind {
	case game.HoverLog:
		line += "  [click: pick up log]"
	case game.HoverFirepit:
		line += "  [click: add log]"
	}
	return line
}

func intensityBar(pct float64) string {
	const width = 10
	filled := int(math.Round(pct / 100 * width))
	filled = max(0, min(width, filled))
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", width-filled) + "]"
}
