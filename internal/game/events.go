package game

type EventKind int

const (
	EventLogCollected EventKind = iota
	EventLogFed
	EventIgnited
	EventIgniteRefused
	EventLogBurnt
	EventExtinguished
	EventPickupTooFar
)

func (k EventKind) String() string {
	switch k {
	case EventLogCollected:
		return "log_collected"
	case EventLogFed:
		return "log_fed"
	case EventIgnited:
		return "ignited"
	case EventIgniteRefused:
		return "ignite_refused"
	case EventLogBurnt:
		return "log_burnt"
	case EventExtinguished:
		return "extinguished"
	case EventPickupTooFar:
		return "pickup_too_far"
	default:
		return "unknown"
	}
}

// Event is a domain fact produced by the simulation, consumed by audio,
// telemetry and frontends after each frame.
type Event struct {
	Kind      EventKind
	Tick      uint64
	Intensity float64
	Entity    EntityID
}
