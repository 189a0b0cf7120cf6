package gui

import (
	"math"
	"os"
	"path/filepath"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Text sizes for the HUD.
var typeScale = struct {
	Title int32
	Body  int32
	Small int32
}{Title: 24, Body: 19, Small: 15}

const lineFactor = 1.34

// hudFont is the font every HUD string goes through. It stays the raylib
// default unless a bundled TTF is found next to the binary.
var hudFont struct {
	font  rl.Font
	owned bool
}

var fontSearchPath = []string{
	filepath.Join("assets", "fonts", "Inter-Regular.ttf"),
	filepath.Join("assets", "fonts", "NotoSans-Regular.ttf"),
}

func loadFonts() {
	hudFont.font = rl.GetFontDefault()
	hudFont.owned = false
	for _, path := range fontSearchPath {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if f := rl.LoadFontEx(path, 36, nil, 0); f.Texture.ID != 0 {
			hudFont.font, hudFont.owned = f, true
			break
		}
	}
	rl.SetTextureFilter(hudFont.font.Texture, rl.FilterBilinear)
}

func unloadFonts() {
	if hudFont.owned && hudFont.font.Texture.ID != 0 {
		rl.UnloadFont(hudFont.font)
	}
	hudFont.font, hudFont.owned = rl.Font{}, false
}

func drawText(text string, x, y, size int32, clr rl.Color) {
	if hudFont.font.Texture.ID == 0 {
		rl.DrawText(text, x, y, size, clr)
		return
	}
	rl.DrawTextEx(hudFont.font, text, rl.Vector2{X: float32(x), Y: float32(y)}, float32(size), 1, clr)
}

func measureText(text string, size int32) int32 {
	if hudFont.font.Texture.ID == 0 {
		return rl.MeasureText(text, size)
	}
	return int32(math.Round(float64(rl.MeasureTextEx(hudFont.font, text, float32(size), 1).X)))
}

func textLineHeight(size int32) int32 {
	return int32(math.Round(float64(max(size, 1)) * lineFactor))
}
