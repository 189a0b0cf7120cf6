package terminal

import (
	"context"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/appengine-ltd/campfire/internal/game"
)

func newTestApp(t *testing.T, opts Options) (*App, tcell.SimulationScreen) {
	t.Helper()

	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("init screen: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(80, 24)

	sim, err := game.NewSim(game.DefaultTuning(), game.WithSeed(5))
	if err != nil {
		t.Fatalf("new sim: %v", err)
	}
	app := New(screen, sim, opts)
	app.draw()
	return app, screen
}

func key(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func rowText(s tcell.Screen, row int) string {
	w, _ := s.Size()
	var b strings.Builder
	for col := 0; col < w; col++ {
		r, _, _, _ := s.GetContent(col, row)
		b.WriteRune(r)
	}
	return b.String()
}

func firstLog(t *testing.T, sim *game.Sim) game.Entity {
	t.Helper()
	for _, e := range sim.Entities() {
		if e.Kind == game.KindCollectibleLog {
			return *e
		}
	}
	t.Fatalf("no collectible logs")
	return game.Entity{}
}

func TestViewRoundTrip(t *testing.T) {
	v := view{center: mgl64.Vec3{1, 0, 4}, yaw: 0.7, top: 1, width: 80, height: 21}
	for _, cell := range [][2]int{{0, 1}, {40, 11}, {79, 21}, {13, 5}} {
		col, row, ok := v.toCell(v.toWorld(cell[0], cell[1]))
		if !ok || col != cell[0] || row != cell[1] {
			t.Fatalf("cell %v came back as %d,%d ok=%v", cell, col, row, ok)
		}
	}
	if _, _, ok := v.toCell(mgl64.Vec3{500, 0, 500}); ok {
		t.Fatalf("expected far point outside the view")
	}
}

func TestViewForwardIsUp(t *testing.T) {
	v := view{center: mgl64.Vec3{0, 0, 4}, top: 1, width: 80, height: 21}
	col, row, ok := v.toCell(mgl64.Vec3{0, 0, 1})
	if !ok || col != 40 || row != 8 {
		t.Fatalf("expected point ahead at 40,8, got %d,%d", col, row)
	}
	v.yaw = math.Pi / 2
	col, row, _ = v.toCell(mgl64.Vec3{-3, 0, 4})
	if col != 40 || row != 8 {
		t.Fatalf("expected turned forward to still point up, got %d,%d", col, row)
	}
}

func TestDrawShowsPlayerAndHUD(t *testing.T) {
	app, screen := newTestApp(t, Options{})

	col, row, ok := app.view.toCell(app.sim.Player().Position)
	if !ok {
		t.Fatalf("player outside the view")
	}
	if r, _, _, _ := screen.GetContent(col, row); r != '@' {
		t.Fatalf("expected player glyph at %d,%d, got %q", col, row, r)
	}
	if hud := rowText(screen, 22); !strings.Contains(hud, "Logs: 5") || !strings.Contains(hud, "Not Started") {
		t.Fatalf("unexpected HUD row %q", hud)
	}
	if title := rowText(screen, 0); !strings.Contains(title, "Campfire") {
		t.Fatalf("missing title, got %q", title)
	}
}

func TestFeedKeysLightFire(t *testing.T) {
	app, _ := newTestApp(t, Options{})
	now := time.Now()

	for i := 0; i < 3; i++ {
		if !app.handle(key('f'), now) {
			t.Fatalf("feed key quit the app")
		}
	}
	if !app.sim.Fire().Lit || app.sim.Fire().LogsInFire != 3 {
		t.Fatalf("expected lit fire with 3 logs, got %+v", app.sim.Fire())
	}
}

func TestLightKeyNeedsTwoLogs(t *testing.T) {
	app, _ := newTestApp(t, Options{})
	now := time.Now()

	app.handle(key('l'), now)
	app.handle(key(' '), now)
	if app.sim.Fire().Lit {
		t.Fatalf("lit with a single log")
	}
	app.frame(0, now)
	if !strings.Contains(app.message, "at least 2 logs") {
		t.Fatalf("expected refusal message, got %q", app.message)
	}

	app.handle(key('l'), now)
	app.handle(key(' '), now)
	if !app.sim.Fire().Lit {
		t.Fatalf("expected fire lit with two logs")
	}
}

func TestHeldKeysExpire(t *testing.T) {
	app, _ := newTestApp(t, Options{})
	start := time.Now()
	pos := app.sim.Player().Position

	app.handle(key('w'), start)
	app.applyHeld(start.Add(100 * time.Millisecond))
	app.sim.Step()
	moved := app.sim.Player().Position
	if moved.Z() >= pos.Z() {
		t.Fatalf("expected player to move forward, %v -> %v", pos, moved)
	}

	app.applyHeld(start.Add(holdWindow + time.Millisecond))
	app.sim.Step()
	if app.sim.Player().Position != moved {
		t.Fatalf("expected player to stop once the hold window passed")
	}
}

func TestOrbitKeysTurnCamera(t *testing.T) {
	app, _ := newTestApp(t, Options{})
	app.handle(key('q'), time.Now())
	if app.sim.Camera().State.AngleX >= 0 {
		t.Fatalf("expected q to turn the camera, yaw %v", app.sim.Camera().State.AngleX)
	}
	if app.sim.Camera().State.Mode != game.CameraIdle {
		t.Fatalf("orbit key left the camera dragging")
	}
}

func TestConsoleCommands(t *testing.T) {
	app, _ := newTestApp(t, Options{})
	now := time.Now()

	app.handle(key(':'), now)
	if app.mode != modeConsole {
		t.Fatalf("expected console mode")
	}
	for _, r := range "feed 22" {
		app.handle(key(r), now)
	}
	app.handle(tcell.NewEventKey(tcell.KeyBackspace2, 0, tcell.ModNone), now)
	app.handle(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), now)

	if app.mode != modePlay {
		t.Fatalf("expected play mode after enter")
	}
	if app.sim.Fire().LogsInFire != 2 {
		t.Fatalf("expected 2 logs fed, got %d", app.sim.Fire().LogsInFire)
	}
	if app.message == "" {
		t.Fatalf("expected console reply")
	}

	app.handle(key(':'), now)
	for _, r := range "quit" {
		app.handle(key(r), now)
	}
	if app.handle(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), now) {
		t.Fatalf("expected quit from console")
	}
}

func TestEscapeQuits(t *testing.T) {
	app, _ := newTestApp(t, Options{})
	if app.handle(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), time.Now()) {
		t.Fatalf("expected escape to quit")
	}
}

func TestMouseHoverAndClickFirepit(t *testing.T) {
	app, _ := newTestApp(t, Options{})

	col, row, ok := app.view.toCell(mgl64.Vec3{})
	if !ok {
		t.Fatalf("firepit outside the view")
	}
	app.handle(tcell.NewEventMouse(col, row, tcell.ButtonNone, tcell.ModNone), time.Now())
	if app.sim.Hover().Kind != game.HoverFirepit {
		t.Fatalf("expected firepit hover, got %+v", app.sim.Hover())
	}

	app.handle(tcell.NewEventMouse(col, row, tcell.Button1, tcell.ModNone), time.Now())
	if app.sim.Fire().LogsInFire != 1 {
		t.Fatalf("expected click to feed the fire")
	}
	app.handle(tcell.NewEventMouse(col, row, tcell.Button1, tcell.ModNone), time.Now())
	if app.sim.Fire().LogsInFire != 1 {
		t.Fatalf("held button fed again")
	}
}

func TestMouseClickCollectsDrawnLog(t *testing.T) {
	app, _ := newTestApp(t, Options{})
	log := firstLog(t, app.sim)

	col, row, ok := app.view.toCell(log.Position)
	if !ok {
		t.Fatalf("log outside the view")
	}
	app.handle(tcell.NewEventMouse(col, row, tcell.Button1, tcell.ModNone), time.Now())
	if app.sim.HUD().LogsCarried != 6 {
		t.Fatalf("expected log collected, carried %d", app.sim.HUD().LogsCarried)
	}
}

func TestMouseOutsideMapClearsHover(t *testing.T) {
	app, _ := newTestApp(t, Options{})
	col, row, _ := app.view.toCell(mgl64.Vec3{})
	app.handle(tcell.NewEventMouse(col, row, tcell.ButtonNone, tcell.ModNone), time.Now())

	app.handle(tcell.NewEventMouse(0, 0, tcell.ButtonNone, tcell.ModNone), time.Now())
	if app.sim.Hover().Kind != game.HoverNone {
		t.Fatalf("expected hover cleared on the title row")
	}
}

func TestFrameRunsHook(t *testing.T) {
	var got []game.Event
	app, _ := newTestApp(t, Options{OnFrame: func(_ *game.Sim, events []game.Event) {
		got = append(got, events...)
	}})
	now := time.Now()
	for i := 0; i < 3; i++ {
		app.handle(key('f'), now)
	}

	app.frame(2*app.sim.Tuning().Step(), now)
	if app.sim.Ticks() != 2 {
		t.Fatalf("expected 2 ticks, got %d", app.sim.Ticks())
	}
	ignited := false
	for _, ev := range got {
		if ev.Kind == game.EventIgnited {
			ignited = true
		}
	}
	if !ignited {
		t.Fatalf("expected ignition event in hook, got %+v", got)
	}
	if app.message != "The fire catches!" {
		t.Fatalf("unexpected message %q", app.message)
	}
}

func TestIntensityBar(t *testing.T) {
	if got := intensityBar(0); got != "[----------]" {
		t.Fatalf("unexpected empty bar %q", got)
	}
	if got := intensityBar(50); got != "[#####-----]" {
		t.Fatalf("unexpected half bar %q", got)
	}
	if got := intensityBar(140); got != "[##########]" {
		t.Fatalf("unexpected clamped bar %q", got)
	}
}

func TestPollEventsStopsWhenCancelledWithFullBuffer(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("init screen: %v", err)
	}
	t.Cleanup(screen.Fini)

	ctx, cancel := context.WithCancel(context.Background())
	events := make(chan tcell.Event)
	done := make(chan struct{})
	go func() {
		pollEvents(ctx, screen, events)
		close(done)
	}()

	screen.InjectKey(tcell.KeyRune, 'w', tcell.ModNone)
	cancel()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("poller still blocked after cancel")
	}
	if _, ok := <-events; ok {
		t.Fatalf("expected events closed after the poller stopped")
	}
}
