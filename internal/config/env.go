package config

import (
	"os"
	"strconv"
)

// FromEnv loads the file named by SPIDER_CONFIG, or the defaults, and then
// applies environment overrides.
func FromEnv() (*Config, error) {
	cfg := Default()
	if path := os.Getenv("SPIDER_CONFIG"); path != "" {
		loaded, err := Load(path)
		if err != nil {
			return nil, err
		}
		cfg = *loaded
	}
	ApplyEnv(&cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ApplyEnv overrides cfg with any of ADDR, SPIDER_SUITS, SPIDER_MODE,
// SPIDER_DAILY_TZ, SPIDER_STRICT and LOG_LEVEL that are set.
func ApplyEnv(cfg *Config) {
	if v := os.Getenv("ADDR"); v != "" {
		cfg.Server.Addr = v
	}
	if val := getEnvInt("SPIDER_SUITS"); val > 0 {
		cfg.Game.DefaultSuits = val
	}
	if v := os.Getenv("SPIDER_MODE"); v != "" {
		cfg.Game.DefaultMode = v
	}
	if v := os.Getenv("SPIDER_DAILY_TZ"); v != "" {
		cfg.Game.DailyTimezone = v
	}
	if v, ok := getEnvBool("SPIDER_STRICT"); ok {
		cfg.Engine.StrictInvariants = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	cfg.ApplyDefaults()
}

func getEnvInt(key string) int {
	val := os.Getenv(key)
	if val == "" {
		return 0
	}
	num, err := strconv.Atoi(val)
	if err != nil {
		return 0
	}
	return num
}

func getEnvBool(key string) (bool, bool) {
	val := os.Getenv(key)
	if val == "" {
		return false, false
	}
	b, err := strconv.ParseBool(val)
	if err != nil {
		return false, false
	}
	return b, true
}
