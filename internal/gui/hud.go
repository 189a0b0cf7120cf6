package gui

import (
	"fmt"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/appengine-ltd/campfire/internal/game"
)

type hudButton int

const (
	buttonNone hudButton = iota
	buttonAddLog
	buttonLight
	buttonLogs
)

// hudLayout places the resource panel in the top-left corner and the message
// strip along the bottom edge.
type hudLayout struct {
	Panel   rl.Rectangle
	Logs    rl.Rectangle
	Meter   rl.Rectangle
	AddLog  rl.Rectangle
	Light   rl.Rectangle
	Message rl.Rectangle
}

const (
	panelWidth  = 280
	panelHeight = 212
	rowHeight   = 26
	buttonH     = 34
	messageH    = 40
)

func layoutHUD(width, height int32) hudLayout {
	p := rl.Rectangle{X: spaceL, Y: spaceL, Width: panelWidth, Height: panelHeight}
	inner := p.X + spaceM
	innerW := p.Width - 2*spaceM
	top := p.Y + 44

	l := hudLayout{Panel: p}
	l.Logs = rl.Rectangle{X: inner, Y: top, Width: innerW, Height: rowHeight}
	l.Meter = rl.Rectangle{X: inner, Y: top + 3*rowHeight + spaceS, Width: innerW, Height: 12}
	buttonW := (innerW - spaceS) / 2
	buttonY := p.Y + p.Height - spaceM - buttonH
	l.AddLog = rl.Rectangle{X: inner, Y: buttonY, Width: buttonW, Height: buttonH}
	l.Light = rl.Rectangle{X: inner + buttonW + spaceS, Y: buttonY, Width: buttonW, Height: buttonH}

	msgW := float32(width) - 2*spaceL
	if msgW < 0 {
		msgW = 0
	}
	l.Message = rl.Rectangle{X: spaceL, Y: float32(height) - spaceL - messageH, Width: msgW, Height: messageH}
	return l
}

func inRect(r rl.Rectangle, p rl.Vector2) bool {
	return p.X >= r.X && p.X < r.X+r.Width && p.Y >= r.Y && p.Y < r.Y+r.Height
}

// buttonAt reports which clickable HUD element sits under p. The logs row
// counts as an add-log button.
func (l hudLayout) buttonAt(p rl.Vector2) hudButton {
	switch {
	case inRect(l.AddLog, p):
		return buttonAddLog
	case inRect(l.Light, p):
		return buttonLight
	case inRect(l.Logs, p):
		return buttonLogs
	}
	return buttonNone
}

// covers reports whether p is over any HUD surface, so clicks there never
// reach the scene.
func (l hudLayout) covers(p rl.Vector2) bool {
	return inRect(l.Panel, p)
}

// meterFill is the filled width of the intensity meter for a 0-100 value.
func meterFill(track rl.Rectangle, pct float64) float32 {
	switch {
	case pct <= 0:
		return 0
	case pct >= 100:
		return track.Width
	}
	return track.Width * float32(pct/100)
}

func statusColor(s game.FireStatus) rl.Color {
	switch s {
	case game.FireRoaring:
		return AppTheme.Danger
	case game.FireSteady:
		return AppTheme.Accent
	case game.FireSmoldering:
		return AppTheme.Warning
	default:
		return AppTheme.TextMuted
	}
}

func hoverHint(t game.HoverTarget) string {
	switch t.Kind {
	case game.HoverLog:
		return "Click to pick up the log"
	case game.HoverFirepit:
		return "Click to add a log to the fire"
	}
	return ""
}

func drawHUD(l hudLayout, hud game.HUD, hot hudButton, message, consoleLine string, consoleOpen bool) {
	drawPanel(l.Panel, "Campfire")

	logsCol := AppTheme.TextPrimary
	if hot == buttonLogs {
		logsCol = AppTheme.Accent
	}
	drawText(fmt.Sprintf("Logs: %d", hud.LogsCarried), int32(l.Logs.X), int32(l.Logs.Y), typeScale.Body, logsCol)
	drawText(fmt.Sprintf("Kindling: %d", hud.Kindling), int32(l.Logs.X), int32(l.Logs.Y)+rowHeight, typeScale.Body, AppTheme.TextSecondary)
	drawText(fmt.Sprintf("In fire: %d", hud.LogsInFire), int32(l.Logs.X), int32(l.Logs.Y)+2*rowHeight, typeScale.Body, AppTheme.TextSecondary)

	rl.DrawRectangleRec(l.Meter, AppTheme.MeterTrack)
	fill := l.Meter
	fill.Width = meterFill(l.Meter, hud.IntensityPct)
	rl.DrawRectangleRec(fill, statusColor(hud.Status))
	drawText(hud.StatusLabel, int32(l.Meter.X), int32(l.Meter.Y+l.Meter.Height)+spaceXS, typeScale.Small, statusColor(hud.Status))

	drawButton(l.AddLog, "Add Log", hot == buttonAddLog, hud.LogsCarried > 0)
	drawButton(l.Light, "Light Fire", hot == buttonLight, !hud.Lit)

	line := message
	if hint := hoverHint(hud.Hovering); hint != "" && message == "" {
		line = hint
	}
	col := AppTheme.TextSecondary
	if consoleOpen {
		line = "> " + consoleLine + "_"
		col = AppTheme.TextPrimary
	}
	if strings.TrimSpace(line) == "" {
		return
	}
	rl.DrawRectangleRounded(l.Message, 0.2, 6, AppTheme.Panel)
	drawText(line, int32(l.Message.X)+spaceM, int32(l.Message.Y)+(messageH-textLineHeight(typeScale.Body))/2+spaceXS, typeScale.Body, col)
}

func drawPanel(rect rl.Rectangle, title string) {
	rl.DrawRectangleRounded(rect, 0.04, 8, AppTheme.Panel)
	rl.DrawRectangleRoundedLinesEx(rect, 0.04, 8, 2, AppTheme.Border)
	drawText(title, int32(rect.X)+12, int32(rect.Y)+8, typeScale.Title, AppTheme.Accent)
}

func drawButton(rect rl.Rectangle, label string, hot, enabled bool) {
	bg := AppTheme.PanelRaised
	border := AppTheme.Border
	text := AppTheme.TextPrimary
	if hot && enabled {
		border = AppTheme.BorderStrong
	}
	if !enabled {
		text = AppTheme.TextMuted
	}
	rl.DrawRectangleRounded(rect, 0.25, 6, bg)
	rl.DrawRectangleRoundedLinesEx(rect, 0.25, 6, 2, border)
	w := measureText(label, typeScale.Small)
	x := int32(rect.X + (rect.Width-float32(w))/2)
	y := int32(rect.Y + (rect.Height-float32(typeScale.Small))/2)
	drawText(label, x, y, typeScale.Small, text)
}
