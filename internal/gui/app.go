package gui

import (
	"context"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/rs/zerolog"

	"github.com/appengine-ltd/campfire/internal/console"
	"github.com/appengine-ltd/campfire/internal/game"
)

const messageTTL = 4 * time.Second

type Options struct {
	Logger zerolog.Logger
	Title  string
	Width  int32
	Height int32
	// OnFrame sees the events drained after each frame's ticks.
	OnFrame func(sim *game.Sim, events []game.Event)
}

// App is the windowed frontend. Everything runs on the goroutine that called
// Run, which must be the main OS thread for raylib.
type App struct {
	sim     *game.Sim
	console *console.Console
	scenery game.Scenery
	log     zerolog.Logger
	onFrame func(*game.Sim, []game.Event)

	width, height int32
	layout        hudLayout
	hot           hudButton

	consoleOpen bool
	line        string
	message     string
	messageAt   time.Time
	lastTick    time.Time
	quit        bool
}

func New(sim *game.Sim, opts Options) *App {
	if opts.Width == 0 {
		opts.Width = 1280
	}
	if opts.Height == 0 {
		opts.Height = 720
	}
	return &App{
		sim:     sim,
		console: console.New(sim),
		scenery: game.BuildScenery(sim.Seed()),
		log:     opts.Logger,
		onFrame: opts.OnFrame,
		width:   opts.Width,
		height:  opts.Height,
	}
}

// Run opens the window and drives the sim until the window closes, the
// player quits, or ctx is cancelled.
func Run(ctx context.Context, sim *game.Sim, opts Options) error {
	if opts.Title == "" {
		opts.Title = "campfire"
	}
	app := New(sim, opts)

	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(app.width, app.height, opts.Title)
	rl.SetExitKey(0)
	rl.SetTargetFPS(60)
	loadFonts()
	defer func() {
		unloadFonts()
		rl.CloseWindow()
	}()

	app.log.Info().Int32("width", app.width).Int32("height", app.height).Msg("window opened")
	app.lastTick = time.Now()
	for !app.quit && !rl.WindowShouldClose() {
		if ctx.Err() != nil {
			break
		}
		now := time.Now()
		delta := now.Sub(app.lastTick)
		if delta < 0 {
			delta = 0
		}
		app.lastTick = now

		app.width = int32(rl.GetScreenWidth())
		app.height = int32(rl.GetScreenHeight())
		app.layout = layoutHUD(app.width, app.height)
		app.sim.SetViewport(int(app.width), int(app.height))

		app.update(delta, now)

		rl.BeginDrawing()
		rl.ClearBackground(AppTheme.Sky)
		app.draw(now)
		rl.EndDrawing()
	}
	app.log.Info().Uint64("ticks", sim.Ticks()).Msg("window closed")
	return nil
}

func (a *App) update(delta time.Duration, now time.Time) {
	if a.consoleOpen {
		a.updateConsole(now)
		a.sim.ReleaseKeys()
	} else {
		a.updateKeys(now)
	}
	a.updatePointer(now)

	a.sim.Tick(delta)
	events := a.sim.DrainEvents()
	for _, ev := range events {
		if msg := console.Describe(ev); msg != "" {
			a.say(msg, now)
		}
	}
	if a.onFrame != nil {
		a.onFrame(a.sim, events)
	}
	if a.sim.Cursor() == game.CursorPointer || a.hot != buttonNone {
		rl.SetMouseCursor(int32(rl.MouseCursorPointingHand))
	} else {
		rl.SetMouseCursor(int32(rl.MouseCursorDefault))
	}
}

func (a *App) updateKeys(now time.Time) {
	held := heldMoves(rl.IsKeyDown)
	for k, down := range held {
		a.sim.SetKey(game.MoveKey(k), down)
	}

	switch {
	case rl.IsKeyPressed(rl.KeyEscape), ctrlDown() && rl.IsKeyPressed(rl.KeyC):
		a.quit = true
	case rl.IsKeyPressed(rl.KeyL), rl.IsKeyPressed(rl.KeyF):
		a.sim.FeedFire()
	case rl.IsKeyPressed(rl.KeySpace):
		a.sim.LightFire()
	case rl.IsKeyPressed(rl.KeyG):
		if !a.sim.CollectNearest() {
			a.say("No logs left to gather.", now)
		}
	case consoleTogglePressed():
		a.consoleOpen = true
		a.line = ""
		// The toggle key also lands in the char queue.
		for rl.GetCharPressed() > 0 {
		}
	}
}

func (a *App) updateConsole(now time.Time) {
	if rl.IsKeyPressed(rl.KeyEscape) {
		a.consoleOpen = false
		return
	}
	captureTextInput(&a.line, 64)
	if !rl.IsKeyPressed(rl.KeyEnter) && !rl.IsKeyPressed(rl.KeyKpEnter) {
		return
	}
	res := a.console.Exec(a.line)
	a.log.Debug().Str("line", a.line).Str("verb", string(res.Intent.Verb)).Msg("console command")
	a.line = ""
	a.consoleOpen = false
	if res.Quit {
		a.quit = true
		return
	}
	a.say(res.Message, now)
}

func (a *App) updatePointer(now time.Time) {
	pos := rl.GetMousePosition()
	d := rl.GetMouseDelta()

	if rl.IsMouseButtonPressed(rl.MouseButtonRight) {
		a.sim.PointerDown(game.ButtonSecondary)
		rl.DisableCursor()
	}
	if rl.IsMouseButtonReleased(rl.MouseButtonRight) {
		a.sim.PointerUp(game.ButtonSecondary)
		rl.EnableCursor()
	}

	dragging := a.sim.Camera().State.Mode == game.CameraDragging
	a.hot = buttonNone
	if !dragging && a.layout.covers(pos) {
		a.hot = a.layout.buttonAt(pos)
		a.sim.ClearHover()
	} else {
		a.sim.PointerMove(float64(pos.X), float64(pos.Y), float64(d.X), float64(d.Y))
	}

	if !rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		return
	}
	switch a.hot {
	case buttonAddLog, buttonLogs:
		if !a.sim.FeedFire() {
			a.say("You have no logs to add.", now)
		}
	case buttonLight:
		a.sim.LightFire()
	default:
		if !a.layout.covers(pos) {
			a.sim.Click(float64(pos.X), float64(pos.Y))
		}
	}
}

func (a *App) say(msg string, now time.Time) {
	a.message = msg
	a.messageAt = now
}

func (a *App) currentMessage(now time.Time) string {
	if a.message == "" || now.Sub(a.messageAt) > messageTTL {
		return ""
	}
	return a.message
}

func (a *App) draw(now time.Time) {
	drawScene(a.sim, a.scenery)
	drawHUD(a.layout, a.sim.HUD(), a.hot, a.currentMessage(now), a.line, a.consoleOpen)
}

func captureTextInput(target *string, maxLen int) {
	for ch := rl.GetCharPressed(); ch > 0; ch = rl.GetCharPressed() {
		if ch >= 32 && ch <= 126 && len(*target) < maxLen {
			*target += string(rune(ch))
		}
	}
	if rl.IsKeyPressed(rl.KeyBackspace) && len(*target) > 0 {
		*target = (*target)[:len(*target)-1]
	}
}
