package gui

import rl "github.com/gen2brain/raylib-go/raylib"

type Theme struct {
	Sky           rl.Color
	Panel         rl.Color
	PanelRaised   rl.Color
	Border        rl.Color
	BorderStrong  rl.Color
	TextPrimary   rl.Color
	TextSecondary rl.Color
	TextMuted     rl.Color
	Accent        rl.Color
	Warning       rl.Color
	Danger        rl.Color
	MeterTrack    rl.Color
}

const (
	spaceXS = 4
	spaceS  = 8
	spaceM  = 12
	spaceL  = 18
)

func hex(v uint32) rl.Color {
	return rl.NewColor(uint8(v>>16), uint8(v>>8), uint8(v), 255)
}

var AppTheme = Theme{
	Sky:           hex(0x0a0a14),
	Panel:         rl.Fade(hex(0x14141f), 0.82),
	PanelRaised:   rl.Fade(hex(0x24202a), 0.9),
	Border:        hex(0x3a3440),
	BorderStrong:  hex(0xff6b35),
	TextPrimary:   hex(0xf2ead8),
	TextSecondary: hex(0xc8bca4),
	TextMuted:     hex(0x8a8070),
	Accent:        hex(0xff8c42),
	Warning:       hex(0xffc857),
	Danger:        hex(0xd64545),
	MeterTrack:    hex(0x2a2430),
}

// Scene colors.
var (
	colorGround   = hex(0x2a3a2a)
	colorStone    = hex(0x4a4a4a)
	colorTrunk    = hex(0x3a2a1a)
	colorFoliage  = hex(0x1a3a1a)
	colorMountain = hex(0x030308)
	colorMoon     = hex(0xffffdd)
	colorStar     = rl.White
	colorLog      = hex(0x5a3a1a)
	colorBody     = hex(0x88cccc)
	colorHead     = hex(0xffddaa)
	colorPack     = hex(0x8b4513)
	colorLogGlow  = hex(0xffaa33)
	colorStoneHot = hex(0xff7733)
	colorFireLit  = hex(0xff6b35)
)
