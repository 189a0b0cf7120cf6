package terminal

import (
	"context"
	"fmt"
	"time"
	"unicode"

	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/rs/zerolog"

	"github.com/appengine-ltd/campfire/internal/console"
	"github.com/appengine-ltd/campfire/internal/game"
)

const (
	frameInterval = 16 * time.Millisecond
	// Terminals send no key-up, so a move key counts as held until this long
	// after its last press or auto-repeat.
	holdWindow = 250 * time.Millisecond
	// Columns the camera turns per Q/E press, in pointer-drag units.
	orbitStep = 60.0
	// Rays for terminal picks start above everything in the scene.
	rayHeight = 10.0
)

type Options struct {
	Logger zerolog.Logger
	// OnFrame sees the events drained after each frame's ticks.
	OnFrame func(sim *game.Sim, events []game.Event)
}

type inputMode int

const (
	modePlay inputMode = iota
	modeConsole
)

// App is the text-mode frontend: a top-down map around the player, the HUD
// line and a command console.
type App struct {
	screen  tcell.Screen
	sim     *game.Sim
	console *console.Console
	log     zerolog.Logger
	onFrame func(*game.Sim, []game.Event)

	held    map[game.MoveKey]time.Time
	mode    inputMode
	line    []rune
	message string
	buttons tcell.ButtonMask

	// Glyph positions from the last draw, so a click on a drawn log aims the
	// pick ray at the log itself rather than the cell middle.
	picks   map[[2]int]mgl64.Vec3
	view    view
	scenery game.Scenery
}

func New(screen tcell.Screen, sim *game.Sim, opts Options) *App {
	return &App{
		screen:  screen,
		sim:     sim,
		console: console.New(sim),
		log:     opts.Logger.With().Str("component", "terminal").Logger(),
		onFrame: opts.OnFrame,
		held:    make(map[game.MoveKey]time.Time),
		picks:   make(map[[2]int]mgl64.Vec3),
		scenery: game.BuildScenery(sim.Seed()),
		message: "WASD move  Q/E turn  L add log  Space light  G grab  : console  Esc quit",
	}
}

// Run opens a terminal screen and plays until the user quits or ctx ends.
func Run(ctx context.Context, sim *game.Sim, opts Options) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.HideCursor()

	app := New(screen, sim, opts)
	return app.Loop(ctx)
}

// Loop polls events on their own goroutine and runs the frame ticker on the
// caller's, so the sim is only touched here.
func (a *App) Loop(ctx context.Context) error {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go pollEvents(ctx, a.screen, events)

	last := time.Now()
	a.draw()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if !a.handle(ev, time.Now()) {
				a.log.Info().Msg("quit requested")
				return nil
			}
		case now := <-ticker.C:
			a.frame(now.Sub(last), now)
			last = now
		}
	}
}

// pollEvents forwards screen events until the screen is finalized or ctx
// ends, then closes events.
func pollEvents(ctx context.Context, screen tcell.Screen, events chan<- tcell.Event) {
	defer close(events)
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-ctx.Done():
			return
		}
	}
}

func (a *App) frame(dt time.Duration, now time.Time) {
	a.applyHeld(now)
	a.sim.Tick(dt)
	events := a.sim.DrainEvents()
	for _, ev := range events {
		if msg := console.Describe(ev); msg != "" {
			a.message = msg
		}
	}
	if a.onFrame != nil {
		a.onFrame(a.sim, events)
	}
	a.draw()
}

func (a *App) applyHeld(now time.Time) {
	for _, k := range []game.MoveKey{game.MoveForward, game.MoveBack, game.MoveLeft, game.MoveRight} {
		at, ok := a.held[k]
		a.sim.SetKey(k, ok && now.Sub(at) < holdWindow)
	}
}

// handle applies one terminal event and reports whether to keep running.
func (a *App) handle(ev tcell.Event, now time.Time) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if a.mode == modeConsole {
			return a.handleConsoleKey(ev)
		}
		return a.handleKey(ev, now)
	case *tcell.EventMouse:
		a.handleMouse(ev)
	case *tcell.EventResize:
		a.screen.Sync()
		a.draw()
	}
	return true
}

func (a *App) handleKey(ev *tcell.EventKey, now time.Time) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyUp:
		a.held[game.MoveForward] = now
	case tcell.KeyDown:
		a.held[game.MoveBack] = now
	case tcell.KeyLeft:
		a.held[game.MoveLeft] = now
	case tcell.KeyRight:
		a.held[game.MoveRight] = now
	case tcell.KeyRune:
		r := ev.Rune()
		if k, ok := game.MoveKeyFor(string(unicode.ToLower(r))); ok {
			a.held[k] = now
			return true
		}
		switch r {
		case 'q', 'Q':
			a.sim.OrbitBy(orbitStep, 0)
		case 'e', 'E':
			a.sim.OrbitBy(-orbitStep, 0)
		case 'l', 'L', 'f', 'F':
			if !a.sim.FeedFire() {
				a.message = "No logs to add."
			}
		case ' ':
			a.sim.LightFire()
		case 'g', 'G':
			if !a.sim.CollectNearest() && a.sim.LogsRemaining() == 0 {
				a.message = "No logs left nearby."
			}
		case ':', '/':
			a.mode = modeConsole
			a.line = a.line[:0]
			a.releaseKeys()
		}
	}
	return true
}

func (a *App) handleConsoleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyCtrlC:
		return false
	case tcell.KeyEscape:
		a.mode = modePlay
	case tcell.KeyEnter:
		a.mode = modePlay
		res := a.console.Exec(string(a.line))
		a.line = a.line[:0]
		if res.Quit {
			return false
		}
		if res.Message != "" {
			a.message = res.Message
		}
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if len(a.line) > 0 {
			a.line = a.line[:len(a.line)-1]
		}
	case tcell.KeyRune:
		a.line = append(a.line, ev.Rune())
	}
	return true
}

func (a *App) releaseKeys() {
	clear(a.held)
	a.sim.ReleaseKeys()
}

func (a *App) handleMouse(ev *tcell.EventMouse) {
	col, row := ev.Position()
	btn := ev.Buttons()
	pressed := btn &^ a.buttons
	a.buttons = btn

	if !a.view.contains(col, row) {
		a.sim.ClearHover()
		return
	}
	ray := a.rayAt(col, row)
	if pressed&tcell.Button1 != 0 {
		a.sim.ClickRay(ray)
		return
	}
	a.sim.HoverRay(ray)
}

// rayAt points straight down onto whatever was drawn at the cell.
func (a *App) rayAt(col, row int) game.Ray {
	p, ok := a.picks[[2]int{col, row}]
	if !ok {
		p = a.view.toWorld(col, row)
	}
	return game.Ray{Origin: mgl64.Vec3{p.X(), rayHeight, p.Z()}, Dir: mgl64.Vec3{0, -1, 0}}
}
