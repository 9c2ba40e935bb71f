package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/rampage/component"
	"github.com/lixenwraith/rampage/parameter"
)

// Config is the host configuration, one section per concern
type Config struct {
	Game    GameConfig    `toml:"game"`
	Berserk BerserkConfig `toml:"berserk"`
	Audio   AudioConfig   `toml:"audio"`
	Log     LogConfig     `toml:"log"`
	Trace   TraceConfig   `toml:"trace"`
}

// GameConfig selects the opening game
type GameConfig struct {
	Variant component.Variant `toml:"variant"` // empty opens the creature menu
	Seed    uint64            `toml:"seed"`    // 0 seeds from the clock
}

// BerserkConfig paces autonomous play
type BerserkConfig struct {
	Interval time.Duration `toml:"interval"` // delay between autonomous steps
}

// AudioConfig controls cue playback
type AudioConfig struct {
	Enabled bool `toml:"enabled"`
}

// LogConfig controls debug file logging
type LogConfig struct {
	Debug bool   `toml:"debug"`
	Dir   string `toml:"dir"`
}

// TraceConfig controls the YAML turn trace
type TraceConfig struct {
	Path string `toml:"path"` // empty disables the turn trace
}

// Default returns the configuration used when no file is given
func Default() *Config {
	return &Config{
		Berserk: BerserkConfig{
			Interval: parameter.BerserkTickInterval,
		},
		Audio: AudioConfig{
			Enabled: true,
		},
		Log: LogConfig{
			Dir: "logs",
		},
	}
}

// Load reads a TOML file over the defaults; an empty path returns the defaults
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	md, err := toml.Decode(string(data), cfg)
	if err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("parse config %s: unknown key %s", path, undecoded[0])
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects values the host cannot run with
func (c *Config) Validate() error {
	var errs []error
	if c.Game.Variant != "" && !c.Game.Variant.Valid() {
		errs = append(errs, fmt.Errorf("game.variant: unknown creature %q", c.Game.Variant))
	}
	if c.Berserk.Interval <= 0 {
		errs = append(errs, fmt.Errorf("berserk.interval: must be positive, got %s", c.Berserk.Interval))
	}
	if c.Log.Debug && c.Log.Dir == "" {
		errs = append(errs, errors.New("log.dir: required when debug logging is on"))
	}
	return errors.Join(errs...)
}
