package gui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/appengine-ltd/campfire/internal/game"
)

// moveBindings lists every raylib key that drives a movement direction.
// Arrow keys share the WASD directions.
var moveBindings = []struct {
	key  int32
	move game.MoveKey
}{
	{rl.KeyW, game.MoveForward},
	{rl.KeyUp, game.MoveForward},
	{rl.KeyS, game.MoveBack},
	{rl.KeyDown, game.MoveBack},
	{rl.KeyA, game.MoveLeft},
	{rl.KeyLeft, game.MoveLeft},
	{rl.KeyD, game.MoveRight},
	{rl.KeyRight, game.MoveRight},
}

// heldMoves folds the bindings into one held flag per direction.
func heldMoves(down func(key int32) bool) [4]bool {
	var held [4]bool
	for _, b := range moveBindings {
		if down(b.key) {
			held[b.move] = true
		}
	}
	return held
}

func consoleTogglePressed() bool {
	return rl.IsKeyPressed(rl.KeyGrave) || rl.IsKeyPressed(rl.KeySlash)
}

func ctrlDown() bool {
	return rl.IsKeyDown(rl.KeyLeftControl) || rl.IsKeyDown(rl.KeyRightControl)
}
