package console

import (
	"fmt"
	"strings"

	"github.com/appengine-ltd/campfire/internal/game"
	"github.com/appengine-ltd/campfire/internal/parser"
)

// Result is the reply to one console line.
type Result struct {
	Message string
	Quit    bool
	Intent  parser.Intent
}

// Console turns typed lines into simulation actions. It shares the sim's
// goroutine and must not be called concurrently with it.
type Console struct {
	parser *parser.Parser
	sim    *game.Sim
	last   string
}

func New(sim *game.Sim) *Console {
	return &Console{parser: parser.New(), sim: sim}
}

func (c *Console) context() parser.ParseContext {
	ctx := parser.ParseContext{LastObject: c.last}
	if c.sim.LogsRemaining() > 0 {
		ctx.Nearby = append(ctx.Nearby, "log")
	}
	return ctx
}

func (c *Console) Exec(line string) Result {
	intent := c.parser.Parse(c.context(), line)
	res := Result{Intent: intent}
	if intent.Clarify != nil {
		res.Message = clarifyMessage(intent.Clarify)
		return res
	}

	switch intent.Verb {
	case parser.VerbHelp:
		res.Message = "feed [n|all], light, take log, status, look, quit. Move with WASD, L adds a log, Space lights."
	case parser.VerbFeed:
		res.Message = c.feed(intent.Quantity)
	case parser.VerbLight:
		res.Message = c.light()
	case parser.VerbTake:
		res.Message = c.take()
	case parser.VerbStatus:
		res.Message = statusLine(c.sim.HUD())
	case parser.VerbLook:
		res.Message = c.look()
	case parser.VerbQuit:
		res.Quit = true
		res.Message = "The fire crackles as you leave."
	default:
		res.Message = fmt.Sprintf("Nothing happens (%s).", intent.Verb)
	}
	return res
}

func (c *Console) feed(q *parser.Quantity) string {
	want := 1
	if q != nil {
		switch {
		case q.All():
			want = c.sim.HUD().LogsCarried
		case q.N > 0:
			want = q.N
		}
	}
	fed := 0
	for fed < want && c.sim.FeedFire() {
		fed++
	}
	c.last = "log"
	hud := c.sim.HUD()
	switch {
	case fed == 0:
		return "You have no logs to add."
	case fed == 1:
		return fmt.Sprintf("You add a log. %s", statusLine(hud))
	default:
		return fmt.Sprintf("You add %d logs. %s", fed, statusLine(hud))
	}
}

func (c *Console) light() string {
	if c.sim.Fire().Lit {
		return "The fire is already burning."
	}
	if !c.sim.LightFire() {
		need := c.sim.Tuning().Fire.MinLogsToLight
		return fmt.Sprintf("Need at least %d logs in the pit to start the fire.", need)
	}
	return "The kindling catches. " + statusLine(c.sim.HUD())
}

func (c *Console) take() string {
	_, dist, ok := c.sim.NearestLog()
	if !ok {
		return "There are no logs left to collect."
	}
	if !c.sim.CollectNearest() {
		return fmt.Sprintf("The nearest log is %.1fm away. Walk closer.", dist)
	}
	c.last = "log"
	return fmt.Sprintf("You pick up a log. Carrying %d.", c.sim.HUD().LogsCarried)
}

func (c *Console) look() string {
	n := c.sim.LogsRemaining()
	if n == 0 {
		return "The clearing is bare. Only the fire pit remains."
	}
	_, dist, _ := c.sim.NearestLog()
	noun := "logs lie"
	if n == 1 {
		noun = "log lies"
	}
	return fmt.Sprintf("%d %s in the clearing; the nearest is %.1fm away.", n, noun, dist)
}

func statusLine(h game.HUD) string {
	return fmt.Sprintf("Logs %d, kindling %d, in fire %d, fire %.0f%% (%s).",
		h.LogsCarried, h.Kindling, h.LogsInFire, h.IntensityPct, h.StatusLabel)
}

func clarifyMessage(q *parser.Clarify) string {
	if len(q.Options) == 0 {
		return q.Prompt
	}
	opts := make([]string, 0, len(q.Options))
	for _, o := range q.Options {
		opts = append(opts, o.String())
	}
	return q.Prompt + " " + strings.Join(opts, " / ")
}

// Describe returns the player-facing line for an event, or "" for events
// that need no message.
func Describe(ev game.Event) string {
	switch ev.Kind {
	case game.EventIgnited:
		return "The fire catches!"
	case game.EventIgniteRefused:
		return "Need at least 2 logs in the fire to light it."
	case game.EventExtinguished:
		return "The fire has gone out."
	case game.EventPickupTooFar:
		return "Too far away to pick that up."
	case game.EventLogCollected:
		return "Picked up a log."
	default:
		return ""
	}
}
