package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server struct {
		Port string `yaml:"port"`
	} `yaml:"server"`
	Redis struct {
		Addr     string `yaml:"addr"`
		Password string `yaml:"password"`
		DB       int    `yaml:"db"`
	} `yaml:"redis"`
	Postgres struct {
		URL string `yaml:"url"`
	} `yaml:"postgres"`
	Game struct {
		Questions     int    `yaml:"questions"`
		RoundTime     string `yaml:"round_time"`
		TickInterval  string `yaml:"tick_interval"`
		FeedbackDelay string `yaml:"feedback_delay"`
	} `yaml:"game"`
	Score struct {
		BasePoints     int     `yaml:"base_points"`
		TimeMultiplier float64 `yaml:"time_multiplier"`
		StreakBonus    int     `yaml:"streak_bonus"`
	} `yaml:"score"`
	Generator struct {
		BaseURL  string `yaml:"base_url"`
		Model    string `yaml:"model"`
		Timeout  string `yaml:"timeout"`
		CacheTTL string `yaml:"cache_ttl"`
	} `yaml:"generator"`
	Submission struct {
		RestrictDomain string `yaml:"restrict_domain"`
		PublicLimit    int    `yaml:"public_limit"`
		AdminLimit     int    `yaml:"admin_limit"`
	} `yaml:"submission"`
	Admin struct {
		TokenTTL string `yaml:"token_ttl"`
	} `yaml:"admin"`
}

// Load reads YAML config from path. Secrets (OPENAI_API_KEY, ADMIN_PIN,
// ADMIN_JWT_SECRET) never live in the file; read them from the environment.
func Load(path string) (Config, error) {
	cfg := Config{}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Duration parses a duration string or returns the fallback if empty or
// malformed.
func Duration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}
	if d, err := time.ParseDuration(raw); err == nil {
		return d
	}
	return fallback
}

// IntOr returns n unless it is zero.
func IntOr(n, fallback int) int {
	if n == 0 {
		return fallback
	}
	return n
}
