// Package config loads runtime settings from a YAML file, SURVEY_* environment
// variables and built-in defaults, in that order of precedence (env wins).
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment overrides, e.g. SURVEY_WINDOW_WIDTH.
const EnvPrefix = "SURVEY"

// Config is the root configuration.
type Config struct {
	Window    WindowConfig    `mapstructure:"window"`
	Terrain   TerrainConfig   `mapstructure:"terrain"`
	Notify    NotifyConfig    `mapstructure:"notify"`
	Animation AnimationConfig `mapstructure:"animation"`
	Log       LogConfig       `mapstructure:"log"`
}

// WindowConfig sizes the desktop window.
type WindowConfig struct {
	Width  int    `mapstructure:"width"`
	Height int    `mapstructure:"height"`
	Title  string `mapstructure:"title"`
	TPS    int    `mapstructure:"tps"`
}

// TerrainConfig controls terrain generation. Seed 0 seeds from the clock.
type TerrainConfig struct {
	Seed int64 `mapstructure:"seed"`
}

// NotifyConfig controls the banner.
type NotifyConfig struct {
	SuccessTTL time.Duration `mapstructure:"success_ttl"`
	ErrorTTL   time.Duration `mapstructure:"error_ttl"`
	History    int           `mapstructure:"history"`
}

// AnimationConfig holds the drone and pulse timings.
type AnimationConfig struct {
	EntryDelay    time.Duration `mapstructure:"entry_delay"`
	EntryDuration time.Duration `mapstructure:"entry_duration"`
	ReplayDelay   time.Duration `mapstructure:"replay_delay"`
	PulseDuration time.Duration `mapstructure:"pulse_duration"`
}

// LogConfig selects log level and destination. An empty Path logs to stderr.
type LogConfig struct {
	Level string `mapstructure:"level"`
	Path  string `mapstructure:"path"`
}

func applyDefaults(v *viper.Viper) {
	v.SetDefault("window.width", 1280)
	v.SetDefault("window.height", 800)
	v.SetDefault("window.title", "Drone Survey")
	v.SetDefault("window.tps", 60)

	v.SetDefault("terrain.seed", 0)

	v.SetDefault("notify.success_ttl", 3*time.Second)
	v.SetDefault("notify.error_ttl", 5*time.Second)
	v.SetDefault("notify.history", 40)

	v.SetDefault("animation.entry_delay", 500*time.Millisecond)
	v.SetDefault("animation.entry_duration", 1500*time.Millisecond)
	v.SetDefault("animation.replay_delay", 100*time.Millisecond)
	v.SetDefault("animation.pulse_duration", 2*time.Second)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.path", "")
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	applyDefaults(v)
	return v
}

// Default returns the built-in configuration with environment overrides.
func Default() (*Config, error) {
	return decode(newViper())
}

// Load reads survey.yaml from the working directory or $HOME/.config/survey.
// A missing file is not an error.
func Load() (*Config, error) {
	v := newViper()
	v.SetConfigName("survey")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.config/survey")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}
	return decode(v)
}

// LoadFromPath reads the given config file, which must exist.
func LoadFromPath(path string) (*Config, error) {
	v := newViper()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file %s: %w", path, err)
	}
	return decode(v)
}

func decode(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks value ranges.
func Validate(cfg *Config) error {
	if cfg.Window.Width <= 0 || cfg.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", cfg.Window.Width, cfg.Window.Height)
	}
	if cfg.Window.TPS < 1 || cfg.Window.TPS > 240 {
		return fmt.Errorf("window.tps must be between 1 and 240, got %d", cfg.Window.TPS)
	}
	if cfg.Notify.SuccessTTL <= 0 || cfg.Notify.ErrorTTL <= 0 {
		return fmt.Errorf("notification lifetimes must be positive")
	}
	if cfg.Notify.History < 1 {
		return fmt.Errorf("notify.history must be at least 1, got %d", cfg.Notify.History)
	}
	for name, d := range map[string]time.Duration{
		"animation.entry_delay":    cfg.Animation.EntryDelay,
		"animation.entry_duration": cfg.Animation.EntryDuration,
		"animation.replay_delay":   cfg.Animation.ReplayDelay,
		"animation.pulse_duration": cfg.Animation.PulseDuration,
	} {
		if d < 0 {
			return fmt.Errorf("%s cannot be negative, got %s", name, d)
		}
	}
	switch strings.ToLower(cfg.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level must be one of debug, info, warn, error, got %q", cfg.Log.Level)
	}
	return nil
}

// TickDuration is the simulated time of one frame.
func (c *Config) TickDuration() time.Duration {
	return time.Second / time.Duration(c.Window.TPS)
}
