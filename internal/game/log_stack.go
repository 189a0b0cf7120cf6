package game

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

const (
	stackLogsPerTurn = 6
	stackRadius      = 0.3
	stackBaseHeight  = 0.2
	stackLayerHeight = 0.15
)

// StackedLog is one log placed in the firepit. Its slot in the stack decides
// where it rests.
type StackedLog struct {
	Slot     int
	Position mgl64.Vec3
	Angle    float64
	Roll     float64
}

// LogStack burns from the top: the most recently added log goes first.
type LogStack struct {
	logs []StackedLog
}

func stackedLogAt(slot int) StackedLog {
	angle := float64(slot) / stackLogsPerTurn * 2 * math.Pi
	return StackedLog{
		Slot: slot,
		Position: mgl64.Vec3{
			math.Cos(angle) * stackRadius,
			stackBaseHeight + float64(slot)*stackLayerHeight,
			math.Sin(angle) * stackRadius,
		},
		Angle: angle,
		Roll:  math.Pi/2 + angle,
	}
}

func (s *LogStack) Push() StackedLog {
	log := stackedLogAt(len(s.logs))
	s.logs = append(s.logs, log)
	return log
}

func (s *LogStack) Pop() (StackedLog, bool) {
	if len(s.logs) == 0 {
		return StackedLog{}, false
	}
	last := s.logs[len(s.logs)-1]
	s.logs = s.logs[:len(s.logs)-1]
	return last, true
}

func (s *LogStack) Len() int {
	return len(s.logs)
}

// Logs returns the stack bottom-first. The slice is owned by the stack.
func (s *LogStack) Logs() []StackedLog {
	return s.logs
}
