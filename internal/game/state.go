package game

const MaxIntensity = 100.0

// FireState is the resource economy shown to the player.
type FireState struct {
	LogsCarried int     `json:"logs_carried"`
	Kindling    int     `json:"kindling"`
	Intensity   float64 `json:"intensity"`
	Lit         bool    `json:"lit"`
	LogsInFire  int     `json:"logs_in_fire"`
}

type FireStatus int

const (
	FireNotStarted FireStatus = iota
	FireReady
	FireDying
	FireSmoldering
	FireSteady
	FireRoaring
)

func (s FireState) Status() FireStatus {
	if !s.Lit {
		if s.LogsInFire > 0 {
			return FireReady
		}
		return FireNotStarted
	}
	switch {
	case s.Intensity > 70:
		return FireRoaring
	case s.Intensity > 40:
		return FireSteady
	case s.Intensity > 10:
		return FireSmoldering
	default:
		return FireDying
	}
}

func (f FireStatus) Label() string {
	switch f {
	case FireReady:
		return "Ready to Light"
	case FireRoaring:
		return "Roaring Fire!"
	case FireSteady:
		return "Burning Steady"
	case FireSmoldering:
		return "Smoldering"
	case FireDying:
		return "Dying Out..."
	default:
		return "Not Started"
	}
}

// HUD is the summary the UI layer renders. It is a copy; writing to it has no
// effect on the simulation.
type HUD struct {
	LogsCarried  int
	Kindling     int
	LogsInFire   int
	IntensityPct float64
	Lit          bool
	Status       FireStatus
	StatusLabel  string
	Hovering     HoverTarget
}
