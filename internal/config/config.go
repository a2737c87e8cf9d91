package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"bsviz/internal/arraygen"

	"gopkg.in/yaml.v3"
)

// Config holds all bsviz configuration.
type Config struct {
	Array    ArrayConfig    `yaml:"array"`
	Search   SearchConfig   `yaml:"search"`
	Playback PlaybackConfig `yaml:"playback"`
	UI       UIConfig       `yaml:"ui"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// ArrayConfig bounds the generated arrays.
type ArrayConfig struct {
	MinSize     int  `yaml:"min_size"`
	MaxSize     int  `yaml:"max_size"`
	DefaultSize int  `yaml:"default_size"`
	MinValue    int  `yaml:"min_value"`
	MaxValue    int  `yaml:"max_value"`
	Guarantee   bool `yaml:"guarantee_target"`

	// Seed fixes the generator; 0 means time-based.
	Seed uint64 `yaml:"seed"`
}

// SearchConfig holds search defaults.
type SearchConfig struct {
	DefaultTarget int `yaml:"default_target"`
}

// PlaybackConfig configures auto-play. The tick interval is BaseInterval / Speed.
type PlaybackConfig struct {
	BaseInterval string  `yaml:"base_interval"`
	Speed        float64 `yaml:"speed"`
	MinSpeed     float64 `yaml:"min_speed"`
	MaxSpeed     float64 `yaml:"max_speed"`
	SpeedStep    float64 `yaml:"speed_step"`
}

// UIConfig configures the terminal UI.
type UIConfig struct {
	Theme     string `yaml:"theme"` // auto, light, dark
	BarHeight int    `yaml:"bar_height"`
}

// LoggingConfig configures logging. Nothing is written unless DebugMode is set.
type LoggingConfig struct {
	DebugMode  bool            `yaml:"debug_mode"`
	Level      string          `yaml:"level"`  // debug, info, warn, error
	Format     string          `yaml:"format"` // json, console
	Dir        string          `yaml:"dir"`
	Categories map[string]bool `yaml:"categories,omitempty"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Array: ArrayConfig{
			MinSize:     10,
			MaxSize:     50,
			DefaultSize: 20,
			MinValue:    1,
			MaxValue:    100,
			Guarantee:   true,
		},
		Search: SearchConfig{
			DefaultTarget: 50,
		},
		Playback: PlaybackConfig{
			BaseInterval: "1s",
			Speed:        1.0,
			MinSpeed:     0.5,
			MaxSpeed:     2.0,
			SpeedStep:    0.5,
		},
		UI: UIConfig{
			Theme:     "auto",
			BarHeight: 12,
		},
		Logging: LoggingConfig{
			DebugMode: false,
			Level:     "info",
			Format:    "json",
			Dir:       filepath.Join(".bsviz", "logs"),
		},
	}
}

// DefaultPath returns the default config location relative to the working directory.
func DefaultPath() string {
	cwd, err := os.Getwd()
	if err != nil {
		return filepath.Join(".bsviz", "config.yaml")
	}
	return filepath.Join(cwd, ".bsviz", "config.yaml")
}

// Load loads configuration from a YAML file.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Return defaults if config file doesn't exist
			cfg.applyEnvOverrides()
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyEnvOverrides()

	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("BSVIZ_SPEED"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			c.Playback.Speed = f
		}
	}
	if v := os.Getenv("BSVIZ_THEME"); v != "" {
		c.UI.Theme = v
	}
	if v := os.Getenv("BSVIZ_DEBUG"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Logging.DebugMode = b
		}
	}
	if v := os.Getenv("BSVIZ_SEED"); v != "" {
		if s, err := strconv.ParseUint(v, 10, 64); err == nil {
			c.Array.Seed = s
		}
	}
	if v := os.Getenv("BSVIZ_LOG_DIR"); v != "" {
		c.Logging.Dir = v
	}
}

// GetBaseInterval returns the 1x auto-play interval.
func (c *Config) GetBaseInterval() time.Duration {
	d, err := time.ParseDuration(c.Playback.BaseInterval)
	if err != nil || d <= 0 {
		return time.Second
	}
	return d
}

// GetPlaybackInterval returns the auto-play interval at the given speed.
func (c *Config) GetPlaybackInterval(speed float64) time.Duration {
	if speed <= 0 {
		speed = 1
	}
	return time.Duration(float64(c.GetBaseInterval()) / speed)
}

// ClampSpeed keeps a speed multiplier inside the configured range.
func (c *Config) ClampSpeed(speed float64) float64 {
	if speed < c.Playback.MinSpeed {
		return c.Playback.MinSpeed
	}
	if speed > c.Playback.MaxSpeed {
		return c.Playback.MaxSpeed
	}
	return speed
}

// Bounds converts the array settings into generator bounds.
func (c *Config) Bounds() arraygen.Bounds {
	return arraygen.Bounds{
		MinSize:  c.Array.MinSize,
		MaxSize:  c.Array.MaxSize,
		MinValue: c.Array.MinValue,
		MaxValue: c.Array.MaxValue,
	}
}

// ValidThemes lists the accepted ui.theme values.
var ValidThemes = []string{"auto", "light", "dark"}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := c.Bounds().Check(); err != nil {
		return fmt.Errorf("array: %w", err)
	}
	if c.Array.DefaultSize < c.Array.MinSize || c.Array.DefaultSize > c.Array.MaxSize {
		return fmt.Errorf("array.default_size %d outside [%d, %d]", c.Array.DefaultSize, c.Array.MinSize, c.Array.MaxSize)
	}
	if c.Search.DefaultTarget < c.Array.MinValue || c.Search.DefaultTarget > c.Array.MaxValue {
		return fmt.Errorf("search.default_target %d outside [%d, %d]", c.Search.DefaultTarget, c.Array.MinValue, c.Array.MaxValue)
	}

	p := c.Playback
	if p.MinSpeed <= 0 || p.MinSpeed > p.MaxSpeed {
		return fmt.Errorf("invalid playback speed range [%g, %g]", p.MinSpeed, p.MaxSpeed)
	}
	if p.Speed < p.MinSpeed || p.Speed > p.MaxSpeed {
		return fmt.Errorf("playback.speed %g outside [%g, %g]", p.Speed, p.MinSpeed, p.MaxSpeed)
	}
	if p.SpeedStep <= 0 {
		return fmt.Errorf("playback.speed_step must be positive, got %g", p.SpeedStep)
	}
	if d, err := time.ParseDuration(p.BaseInterval); err != nil || d <= 0 {
		return fmt.Errorf("invalid playback.base_interval %q", p.BaseInterval)
	}

	validTheme := false
	for _, t := range ValidThemes {
		if c.UI.Theme == t {
			validTheme = true
			break
		}
	}
	if !validTheme {
		return fmt.Errorf("invalid ui.theme: %s (valid: %v)", c.UI.Theme, ValidThemes)
	}

	return nil
}
