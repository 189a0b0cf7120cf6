package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/appengine-ltd/campfire/internal/game"
)

const (
	FrontendWindow   = "window"
	FrontendTerminal = "terminal"
)

type AudioConfig struct {
	Enabled bool    `mapstructure:"enabled"`
	Volume  float64 `mapstructure:"volume"`
}

type TelemetryConfig struct {
	Enabled     bool          `mapstructure:"enabled"`
	ServiceName string        `mapstructure:"serviceName"`
	Interval    time.Duration `mapstructure:"interval"`
}

type Config struct {
	LogLevel  string `mapstructure:"logLevel"`
	LogFormat string `mapstructure:"logFormat"`
	LogFile   string `mapstructure:"logFile"`
	Frontend  string `mapstructure:"frontend"`
	// Seed of zero asks the caller to pick one.
	Seed int64 `mapstructure:"seed"`

	Audio     AudioConfig     `mapstructure:"audio"`
	Telemetry TelemetryConfig `mapstructure:"telemetry"`
	Game      game.Tuning     `mapstructure:"game"`

	// File is the config file that was read, empty when none was found.
	File string `mapstructure:"-"`
}

// RegisterFlags defines the command-line flags Load understands.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String("config", "", "path to a campfire config file")
	fs.String("frontend", FrontendWindow, "frontend to run: window or terminal")
	fs.Int64("seed", 0, "random seed (0 picks one from the clock)")
	fs.String("log-level", "info", "log level: trace, debug, info, warn, error")
	fs.String("log-format", "console", "log format: console or json")
	fs.String("log-file", "", "mirror logs into this file")
	fs.Bool("no-audio", false, "disable sound")
	fs.Bool("telemetry", false, "record metrics")
	fs.Bool("version", false, "print version and exit")
}

var flagKeys = map[string]string{
	"frontend":   "frontend",
	"seed":       "seed",
	"log-level":  "logLevel",
	"log-format": "logFormat",
	"log-file":   "logFile",
	"telemetry":  "telemetry.enabled",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logLevel", "info")
	v.SetDefault("logFormat", "console")
	v.SetDefault("logFile", "")
	v.SetDefault("frontend", FrontendWindow)
	v.SetDefault("seed", 0)

	v.SetDefault("audio.enabled", true)
	v.SetDefault("audio.volume", 0.6)

	v.SetDefault("telemetry.enabled", false)
	v.SetDefault("telemetry.serviceName", "campfire")
	v.SetDefault("telemetry.interval", "1s")

	t := game.DefaultTuning()
	v.SetDefault("game.tickRate", t.TickRate)
	v.SetDefault("game.maxStepsPerFrame", t.MaxStepsPerFrame)

	v.SetDefault("game.fire.decayRate", t.Fire.DecayRate)
	v.SetDefault("game.fire.manualIgnition", t.Fire.ManualIgnition)
	v.SetDefault("game.fire.autoIgnition", t.Fire.AutoIgnition)
	v.SetDefault("game.fire.feedBoost", t.Fire.FeedBoost)
	v.SetDefault("game.fire.intensityPerLog", t.Fire.IntensityPerLog)
	v.SetDefault("game.fire.autoIgniteThreshold", t.Fire.AutoIgniteThreshold)
	v.SetDefault("game.fire.minLogsToLight", t.Fire.MinLogsToLight)
	v.SetDefault("game.fire.lightScale", t.Fire.LightScale)

	v.SetDefault("game.player.speed", t.Player.Speed)
	v.SetDefault("game.player.rotationSpeed", t.Player.RotationSpeed)
	v.SetDefault("game.player.worldRadius", t.Player.WorldRadius)

	v.SetDefault("game.camera.radius", t.Camera.Radius)
	v.SetDefault("game.camera.initialPitch", t.Camera.InitialPitch)
	v.SetDefault("game.camera.sensitivity", t.Camera.Sensitivity)
	v.SetDefault("game.camera.followLerp", t.Camera.FollowLerp)
	v.SetDefault("game.camera.groundOffset", t.Camera.GroundOffset)
	v.SetDefault("game.camera.eyeHeight", t.Camera.EyeHeight)
	v.SetDefault("game.camera.undershootLift", t.Camera.UndershootLift)
	v.SetDefault("game.camera.pitchMin", t.Camera.PitchMin)
	v.SetDefault("game.camera.pitchMax", t.Camera.PitchMax)
	v.SetDefault("game.camera.fovY", t.Camera.FovY)

	v.SetDefault("game.interaction.reach", t.Interaction.Reach)

	v.SetDefault("game.inventory.startLogs", t.Inventory.StartLogs)
	v.SetDefault("game.inventory.startKindling", t.Inventory.StartKindling)
}

// ConfigDirs lists where campfire.{toml,yaml,json} is looked for when no
// explicit file is given.
func ConfigDirs() []string {
	dirs := []string{"."}
	if dir, err := os.UserConfigDir(); err == nil {
		dirs = append(dirs, filepath.Join(dir, "campfire"))
	}
	return dirs
}

// Load resolves the configuration from defaults, the optional config file,
// CAMPFIRE_* environment variables and fs, in increasing priority. fs may be
// nil.
func Load(fs *pflag.FlagSet, dirs ...string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("CAMPFIRE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	explicit := ""
	if fs != nil {
		if f := fs.Lookup("config"); f != nil {
			explicit = f.Value.String()
		}
		for name, key := range flagKeys {
			if f := fs.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return Config{}, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
		if off, err := fs.GetBool("no-audio"); err == nil && off {
			v.Set("audio.enabled", false)
		}
	}

	if explicit != "" {
		v.SetConfigFile(explicit)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("error reading config file: %w", err)
		}
	} else {
		v.SetConfigName("campfire")
		if len(dirs) == 0 {
			dirs = ConfigDirs()
		}
		for _, dir := range dirs {
			v.AddConfigPath(dir)
		}
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return Config{}, fmt.Errorf("error reading config file: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	cfg.File = v.ConfigFileUsed()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch c.Frontend {
	case FrontendWindow, FrontendTerminal:
	default:
		return fmt.Errorf("unknown frontend %q", c.Frontend)
	}
	switch strings.ToLower(c.LogFormat) {
	case "console", "json":
	default:
		return fmt.Errorf("unknown log format %q", c.LogFormat)
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("audio volume must be in [0,1], got %v", c.Audio.Volume)
	}
	if c.Telemetry.Enabled && c.Telemetry.Interval <= 0 {
		return fmt.Errorf("telemetry interval must be positive, got %v", c.Telemetry.Interval)
	}
	if err := c.Game.Validate(); err != nil {
		return fmt.Errorf("game tuning: %w", err)
	}
	return nil
}
