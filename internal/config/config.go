package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"pathfinders-assessment/internal/assessment"
)

type Config struct {
	Server struct {
		Port string `yaml:"port"`
	} `yaml:"server"`
	Log struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
	} `yaml:"log"`
	Redis struct {
		Addr     string `yaml:"addr"`
		Password string `yaml:"password"`
		DB       int    `yaml:"db"`
		TTL      string `yaml:"ttl"`
	} `yaml:"redis"`
	Postgres struct {
		URL string `yaml:"url"`
	} `yaml:"postgres"`
	Bank struct {
		// ID is the default bank for /ws and /api/bank, and the bank seeded from a file.
		ID   string `yaml:"id"`
		TTL  string `yaml:"ttl"`
		Path string `yaml:"path"`
	} `yaml:"bank"`
	Scoring struct {
		Badges []assessment.BadgeRule `yaml:"badges"`
	} `yaml:"scoring"`
	Leaderboard struct {
		Goals []int `yaml:"goals"`
	} `yaml:"leaderboard"`
	Careers struct {
		APIKey string `yaml:"apiKey"`
		Model  string `yaml:"model"`
	} `yaml:"careers"`
}

// Load reads YAML config from path. A missing file yields defaults.
func Load(path string) (Config, error) {
	cfg := Config{}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg.withEnv(), nil
		}
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg.withEnv(), nil
}

func (c Config) withEnv() Config {
	if c.Careers.APIKey == "" {
		c.Careers.APIKey = os.Getenv("GEMINI_API_KEY")
	}
	return c
}

// BankID returns the configured bank or the built-in one.
func (c Config) BankID() string {
	if c.Bank.ID == "" {
		return assessment.DefaultBankID
	}
	return c.Bank.ID
}

// BadgeRules returns the configured badge table or the default.
func (c Config) BadgeRules() assessment.BadgeRules {
	if len(c.Scoring.Badges) == 0 {
		return assessment.DefaultBadgeRules()
	}
	return assessment.BadgeRules(c.Scoring.Badges)
}

// Goals returns the leaderboard milestone ladder.
func (c Config) Goals() []int {
	if len(c.Leaderboard.Goals) == 0 {
		return []int{1000}
	}
	return c.Leaderboard.Goals
}

// TTLDuration parses a duration string or returns the fallback if empty.
func TTLDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}
	if d, err := time.ParseDuration(raw); err == nil {
		return d
	}
	return fallback
}
