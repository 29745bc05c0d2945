// Package config loads toybox settings from an optional TOML file and
// TOYBOX_* environment variables.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/viper"

	"github.com/appengine-ltd/toybox/internal/cube"
	"github.com/appengine-ltd/toybox/internal/runner"
)

const envPrefix = "TOYBOX"

type Config struct {
	Log    LogConfig    `mapstructure:"log" toml:"log"`
	Window WindowConfig `mapstructure:"window" toml:"window"`
	Runner RunnerConfig `mapstructure:"runner" toml:"runner"`
	Cube   CubeConfig   `mapstructure:"cube" toml:"cube"`
	Calc   CalcConfig   `mapstructure:"calc" toml:"calc"`
}

type LogConfig struct {
	Level  string `mapstructure:"level" toml:"level"`
	Format string `mapstructure:"format" toml:"format"`
}

type WindowConfig struct {
	Width  int  `mapstructure:"width" toml:"width"`
	Height int  `mapstructure:"height" toml:"height"`
	FPS    int  `mapstructure:"fps" toml:"fps"`
	MSAA   bool `mapstructure:"msaa" toml:"msaa"`
}

// RunnerConfig overrides lane runner tuning. Seed 0 seeds from the clock.
type RunnerConfig struct {
	Seed          int64   `mapstructure:"seed" toml:"seed"`
	SpawnEvery    float64 `mapstructure:"spawn_every" toml:"spawn_every"`
	ObstacleSpeed float64 `mapstructure:"obstacle_speed" toml:"obstacle_speed"`
	TrackHalfX    float64 `mapstructure:"track_half_x" toml:"track_half_x"`
}

type CubeConfig struct {
	IdleSpin    float64 `mapstructure:"idle_spin" toml:"idle_spin"`
	RotatePerPx float64 `mapstructure:"rotate_per_px" toml:"rotate_per_px"`
}

type CalcConfig struct {
	Mouse bool `mapstructure:"mouse" toml:"mouse"`
}

// Load reads configuration. An explicit path (or TOYBOX_CONFIG) must exist;
// otherwise toybox.toml is looked up in the working directory and
// $HOME/.config/toybox and may be absent.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigType("toml")
	if path == "" {
		path = os.Getenv(envPrefix + "_CONFIG")
	}
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("toybox")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "toybox"))
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func setDefaults(v *viper.Viper) {
	rt := runner.DefaultTuning()
	ct := cube.DefaultTuning()

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("window.width", 1280)
	v.SetDefault("window.height", 720)
	v.SetDefault("window.fps", 60)
	v.SetDefault("window.msaa", false)
	v.SetDefault("runner.seed", 0)
	v.SetDefault("runner.spawn_every", rt.SpawnEvery)
	v.SetDefault("runner.obstacle_speed", rt.ObstacleSpeed)
	v.SetDefault("runner.track_half_x", rt.TrackHalfX)
	v.SetDefault("cube.idle_spin", ct.IdleSpin)
	v.SetDefault("cube.rotate_per_px", ct.RotatePerPx)
	v.SetDefault("calc.mouse", true)
}

func (c Config) Validate() error {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return fmt.Errorf("invalid log level %q", c.Log.Level)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("invalid log format %q (want text or json)", c.Log.Format)
	}
	if c.Window.Width < 1 || c.Window.Height < 1 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Window.FPS < 1 {
		return fmt.Errorf("window fps must be positive, got %d", c.Window.FPS)
	}
	if c.Runner.SpawnEvery <= 0 {
		return fmt.Errorf("runner spawn_every must be positive, got %v", c.Runner.SpawnEvery)
	}
	if c.Runner.ObstacleSpeed <= 0 {
		return fmt.Errorf("runner obstacle_speed must be positive, got %v", c.Runner.ObstacleSpeed)
	}
	if c.Runner.TrackHalfX <= 0 {
		return fmt.Errorf("runner track_half_x must be positive, got %v", c.Runner.TrackHalfX)
	}
	return nil
}

// RunnerTuning applies the overrides on top of the default tuning.
func (c Config) RunnerTuning() runner.Tuning {
	t := runner.DefaultTuning()
	t.SpawnEvery = c.Runner.SpawnEvery
	t.ObstacleSpeed = c.Runner.ObstacleSpeed
	t.TrackHalfX = c.Runner.TrackHalfX
	return t
}

func (c Config) CubeTuning() cube.Tuning {
	t := cube.DefaultTuning()
	t.IdleSpin = c.Cube.IdleSpin
	t.RotatePerPx = c.Cube.RotatePerPx
	return t
}

// Dump writes c as TOML.
func Dump(w io.Writer, c Config) error {
	if err := toml.NewEncoder(w).Encode(c); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return nil
}
