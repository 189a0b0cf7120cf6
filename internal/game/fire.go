package game

import (
	"math"
	"slices"
)

type FeedOutcome int

const (
	FeedNoLogs FeedOutcome = iota
	FeedStacked
	FeedBoosted
	FeedIgnited
)

type LightOutcome int

const (
	LightIgnited LightOutcome = iota
	LightAlreadyLit
	LightTooFewLogs
)

// BurnResult reports what one economy tick did.
type BurnResult struct {
	Burnt        []StackedLog
	Extinguished bool
}

// Economy owns the fire state and the logs stacked in the pit. LogsInFire
// always equals the stack length; State is read-only outside this package.
type Economy struct {
	State FireState

	stack LogStack

	tuning FireTuning
}

// Logs returns a copy of the stacked logs, bottom first.
func (e *Economy) Logs() []StackedLog { return slices.Clone(e.stack.Logs()) }

func NewEconomy(tuning FireTuning, inv InventoryTuning) *Economy {
	return &Economy{
		State: FireState{
			LogsCarried: inv.StartLogs,
			Kindling:    inv.StartKindling,
		},
		tuning: tuning,
	}
}

// Feed moves one carried log into the pit. Feeding a lit fire boosts it;
// feeding an unlit pit past the auto-ignite threshold lights it.
func (e *Economy) Feed() FeedOutcome {
	if e.State.LogsCarried <= 0 {
		return FeedNoLogs
	}
	e.State.LogsCarried--
	e.stack.Push()
	e.State.LogsInFire = e.stack.Len()

	if e.State.Lit {
		e.State.Intensity = math.Min(MaxIntensity, e.State.Intensity+e.tuning.FeedBoost)
		return FeedBoosted
	}
	if e.State.LogsInFire > e.tuning.AutoIgniteThreshold {
		e.ignite(e.tuning.AutoIgnition)
		return FeedIgnited
	}
	return FeedStacked
}

func (e *Economy) Light() LightOutcome {
	if e.State.Lit {
		return LightAlreadyLit
	}
	if e.State.LogsInFire < e.tuning.MinLogsToLight {
		return LightTooFewLogs
	}
	e.ignite(e.tuning.ManualIgnition)
	return LightIgnited
}

func (e *Economy) ignite(intensity float64) {
	e.State.Lit = true
	e.State.Intensity = math.Min(MaxIntensity, intensity)
}

// SupportedLogs is how many stacked logs the current intensity keeps alive.
func (e *Economy) SupportedLogs() int {
	return int(math.Ceil(e.State.Intensity / e.tuning.IntensityPerLog))
}

// Burn applies one tick of decay and log consumption. It is a no-op while
// the fire is out.
func (e *Economy) Burn() BurnResult {
	var res BurnResult
	if !e.State.Lit {
		return res
	}

	e.State.Intensity -= e.tuning.DecayRate
	if e.State.Intensity <= 0 {
		e.State.Intensity = 0
		e.State.Lit = false
		res.Extinguished = true
		return res
	}

	support := e.SupportedLogs()
	if e.stack.Len() > support {
		if log, ok := e.stack.Pop(); ok {
			res.Burnt = append(res.Burnt, log)
		}
	}
	for e.stack.Len() > support+1 {
		log, _ := e.stack.Pop()
		res.Burnt = append(res.Burnt, log)
	}
	e.State.LogsInFire = e.stack.Len()
	return res
}
