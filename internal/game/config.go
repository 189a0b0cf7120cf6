package game

import (
	"fmt"
	"time"
)

// Tuning holds every per-tick constant of the simulation. Values are applied
// once per logical tick, so TickRate is what ties them to wall-clock time.
type Tuning struct {
	TickRate         int `mapstructure:"tickRate"`
	MaxStepsPerFrame int `mapstructure:"maxStepsPerFrame"`

	Fire        FireTuning        `mapstructure:"fire"`
	Player      PlayerTuning      `mapstructure:"player"`
	Camera      CameraTuning      `mapstructure:"camera"`
	Interaction InteractionTuning `mapstructure:"interaction"`
	Inventory   InventoryTuning   `mapstructure:"inventory"`
}

type FireTuning struct {
	DecayRate           float64 `mapstructure:"decayRate"`
	ManualIgnition      float64 `mapstructure:"manualIgnition"`
	AutoIgnition        float64 `mapstructure:"autoIgnition"`
	FeedBoost           float64 `mapstructure:"feedBoost"`
	IntensityPerLog     float64 `mapstructure:"intensityPerLog"`
	AutoIgniteThreshold int     `mapstructure:"autoIgniteThreshold"`
	MinLogsToLight      int     `mapstructure:"minLogsToLight"`
	LightScale          float64 `mapstructure:"lightScale"`
}

type PlayerTuning struct {
	Speed         float64 `mapstructure:"speed"`
	RotationSpeed float64 `mapstructure:"rotationSpeed"`
	WorldRadius   float64 `mapstructure:"worldRadius"`
}

type CameraTuning struct {
	Radius         float64 `mapstructure:"radius"`
	InitialPitch   float64 `mapstructure:"initialPitch"`
	Sensitivity    float64 `mapstructure:"sensitivity"`
	FollowLerp     float64 `mapstructure:"followLerp"`
	GroundOffset   float64 `mapstructure:"groundOffset"`
	EyeHeight      float64 `mapstructure:"eyeHeight"`
	UndershootLift float64 `mapstructure:"undershootLift"`
	PitchMin       float64 `mapstructure:"pitchMin"`
	PitchMax       float64 `mapstructure:"pitchMax"`
	FovY           float64 `mapstructure:"fovY"`
}

type InteractionTuning struct {
	// Reach limits log pickup distance from the player; zero disables the check.
	Reach float64 `mapstructure:"reach"`
}

type InventoryTuning struct {
	StartLogs     int `mapstructure:"startLogs"`
	StartKindling int `mapstructure:"startKindling"`
}

func DefaultTuning() Tuning {
	return Tuning{
		TickRate:         60,
		MaxStepsPerFrame: 5,
		Fire: FireTuning{
			DecayRate:           0.02,
			ManualIgnition:      30,
			AutoIgnition:        50,
			FeedBoost:           20,
			IntensityPerLog:     20,
			AutoIgniteThreshold: 2,
			MinLogsToLight:      2,
			LightScale:          50,
		},
		Player: PlayerTuning{
			Speed:         0.1,
			RotationSpeed: 0.15,
			WorldRadius:   18,
		},
		Camera: CameraTuning{
			Radius:         8,
			InitialPitch:   0.3,
			Sensitivity:    0.005,
			FollowLerp:     0.2,
			GroundOffset:   0.8,
			EyeHeight:      1.2,
			UndershootLift: 1.5,
			PitchMin:       -0.8,
			PitchMax:       1.4,
			FovY:           60,
		},
		Inventory: InventoryTuning{
			StartLogs:     5,
			StartKindling: 10,
		},
	}
}

// Step is the wall-clock length of one logical tick.
func (t Tuning) Step() time.Duration {
	if t.TickRate <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(t.TickRate)
}

func (t Tuning) Validate() error {
	if t.TickRate < 1 || t.TickRate > 1000 {
		return fmt.Errorf("tick rate must be between 1 and 1000, got %d", t.TickRate)
	}
	if t.MaxStepsPerFrame < 1 {
		return fmt.Errorf("max steps per frame must be positive, got %d", t.MaxStepsPerFrame)
	}

	f := t.Fire
	if f.DecayRate <= 0 {
		return fmt.Errorf("fire decay rate must be positive, got %v", f.DecayRate)
	}
	if f.ManualIgnition <= 0 || f.ManualIgnition > MaxIntensity {
		return fmt.Errorf("manual ignition intensity out of range: %v", f.ManualIgnition)
	}
	if f.AutoIgnition <= 0 || f.AutoIgnition > MaxIntensity {
		return fmt.Errorf("auto ignition intensity out of range: %v", f.AutoIgnition)
	}
	if f.FeedBoost < 0 {
		return fmt.Errorf("feed boost must not be negative, got %v", f.FeedBoost)
	}
	if f.IntensityPerLog <= 0 {
		return fmt.Errorf("intensity per log must be positive, got %v", f.IntensityPerLog)
	}
	if f.MinLogsToLight < 1 || f.AutoIgniteThreshold < 0 {
		return fmt.Errorf("invalid ignition thresholds: min=%d auto=%d", f.MinLogsToLight, f.AutoIgniteThreshold)
	}
	if f.LightScale < 0 {
		return fmt.Errorf("light scale must not be negative, got %v", f.LightScale)
	}

	p := t.Player
	if p.Speed <= 0 || p.WorldRadius <= 0 {
		return fmt.Errorf("player speed and world radius must be positive")
	}
	if p.RotationSpeed <= 0 || p.RotationSpeed > 1 {
		return fmt.Errorf("rotation speed must be in (0,1], got %v", p.RotationSpeed)
	}

	c := t.Camera
	if c.Radius <= 0 {
		return fmt.Errorf("camera radius must be positive, got %v", c.Radius)
	}
	if c.FollowLerp <= 0 || c.FollowLerp > 1 {
		return fmt.Errorf("camera follow lerp must be in (0,1], got %v", c.FollowLerp)
	}
	if c.PitchMin >= c.PitchMax {
		return fmt.Errorf("camera pitch range is empty: [%v, %v]", c.PitchMin, c.PitchMax)
	}
	if c.InitialPitch < c.PitchMin || c.InitialPitch > c.PitchMax {
		return fmt.Errorf("camera initial pitch %v outside [%v, %v]", c.InitialPitch, c.PitchMin, c.PitchMax)
	}
	if c.FovY <= 0 || c.FovY >= 180 {
		return fmt.Errorf("camera fov must be in (0,180), got %v", c.FovY)
	}

	if t.Interaction.Reach < 0 {
		return fmt.Errorf("interaction reach must not be negative, got %v", t.Interaction.Reach)
	}
	if t.Inventory.StartLogs < 0 || t.Inventory.StartKindling < 0 {
		return fmt.Errorf("starting inventory must not be negative")
	}
	return nil
}
