package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Config holds all runtime settings. Presentation preferences (accent, sound)
// live here too: they are injected into the renderer, never read from process
// globals.
type Config struct {
	// Database
	DBPath string

	// Personalization
	Accent       string
	SoundEnabled bool

	// Savings planner defaults, used when a goal has no income/rate of its own
	WeeklyIncome string
	SavingsRate  float64

	// Logging
	LogLevel string
}

// Accent choices mirror the theme palette.
var validAccents = []string{"green", "gold", "beige", "blue", "pink"}

func Load() *Config {
	return &Config{
		DBPath:       getEnv("GOBROKE_DB_PATH", defaultDBPath()),
		Accent:       getEnv("GOBROKE_ACCENT", "green"),
		SoundEnabled: getEnvBool("GOBROKE_SOUND", true),
		WeeklyIncome: getEnv("GOBROKE_WEEKLY_INCOME", "0"),
		SavingsRate:  getEnvFloat("GOBROKE_SAVINGS_RATE", 0.2),
		LogLevel:     getEnv("GOBROKE_LOG_LEVEL", "info"),
	}
}

// Validate validates the configuration and returns an error if invalid.
func (c *Config) Validate() error {
	var errs []string

	if c.DBPath == "" {
		errs = append(errs, "database path cannot be empty")
	} else {
		dir := filepath.Dir(c.DBPath)
		if dir != "." && dir != "" {
			if _, err := os.Stat(dir); os.IsNotExist(err) {
				if err := os.MkdirAll(dir, 0755); err != nil {
					errs = append(errs, fmt.Sprintf("cannot create database directory '%s': %v", dir, err))
				}
			}
		}
	}

	validAccent := false
	for _, a := range validAccents {
		if c.Accent == a {
			validAccent = true
			break
		}
	}
	if !validAccent {
		errs = append(errs, fmt.Sprintf("invalid accent '%s': must be one of %v", c.Accent, validAccents))
	}

	if c.SavingsRate < 0 || c.SavingsRate > 0.8 {
		errs = append(errs, fmt.Sprintf("invalid savings rate %v: must be between 0 and 0.8", c.SavingsRate))
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errs, "\n- "))
	}
	return nil
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "./data/gobroke.db"
	}
	return filepath.Join(home, ".gobroke", "gobroke.db")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}
