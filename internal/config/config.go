package config

import (
	"fmt"
	"os"
	"strings"
	"time"
	_ "time/tzdata"

	"gopkg.in/yaml.v3"

	"github.com/nexivibe/spider/internal/engine"
)

type Config struct {
	Server  ServerConfig  `yaml:"server" json:"server"`
	Game    GameConfig    `yaml:"game" json:"game"`
	Engine  EngineConfig  `yaml:"engine" json:"engine"`
	Logging LoggingConfig `yaml:"logging" json:"logging"`
}

type ServerConfig struct {
	Addr    string `yaml:"addr" json:"addr"`
	WebDist string `yaml:"web_dist" json:"web_dist"`
}

type GameConfig struct {
	DefaultSuits  int    `yaml:"default_suits" json:"default_suits"`
	DefaultMode   string `yaml:"default_mode" json:"default_mode"`
	DailyTimezone string `yaml:"daily_timezone" json:"daily_timezone"`
}

type EngineConfig struct {
	StrictInvariants bool `yaml:"strict_invariants" json:"strict_invariants"`
}

type LoggingConfig struct {
	Level       string `yaml:"level" json:"level"`
	Development bool   `yaml:"development" json:"development"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	var c Config
	c.ApplyDefaults()
	return c
}

func (c *Config) ApplyDefaults() {
	if c.Server.Addr == "" {
		c.Server.Addr = ":8080"
	}
	if c.Server.WebDist == "" {
		c.Server.WebDist = "web/dist"
	}
	if c.Game.DefaultSuits == 0 {
		c.Game.DefaultSuits = 1
	}
	c.Game.DefaultSuits = engine.ClampSuits(c.Game.DefaultSuits)
	if c.Game.DefaultMode == "" {
		c.Game.DefaultMode = engine.ModeSoloPractice.String()
	}
	if c.Game.DailyTimezone == "" {
		c.Game.DailyTimezone = "UTC"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
}

// Validate reports settings that cannot be sanitized.
func (c *Config) Validate() error {
	if _, err := ParseMode(c.Game.DefaultMode); err != nil {
		return err
	}
	if _, err := c.DailyLocation(); err != nil {
		return err
	}
	return nil
}

// DailyLocation is the timezone whose calendar day picks the daily seed.
func (c *Config) DailyLocation() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Game.DailyTimezone)
	if err != nil {
		return nil, fmt.Errorf("daily_timezone %q: %w", c.Game.DailyTimezone, err)
	}
	return loc, nil
}

// ParseMode accepts the short names used in config and on the wire.
func ParseMode(s string) (engine.Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "solo", "solo_practice", "practice":
		return engine.ModeSoloPractice, nil
	case "daily", "daily_grind":
		return engine.ModeDailyGrind, nil
	default:
		return engine.ModeSoloPractice, fmt.Errorf("unknown game mode %q", s)
	}
}

func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	var r Config
	if err := yaml.Unmarshal(b, &r); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	r.ApplyDefaults()
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return &r, nil
}
