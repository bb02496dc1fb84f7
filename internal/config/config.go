package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"agentvault/utils"
)

// Config holds the engine's runtime settings, read from the environment.
type Config struct {
	Port           string
	EventThreshold int
	ReservationTTL time.Duration
	BidLockTimeout time.Duration
	LiveWindowDays int
	CooldownDays   int
}

// Load reads .env (if present) and the environment, falling back to
// defaults for anything unset.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		utils.Info("config: no .env file, using system environment", nil)
	}

	return Config{
		Port:           port(),
		EventThreshold: intEnv("EVENT_THRESHOLD", 3),
		ReservationTTL: durationEnv("RESERVATION_TTL", 5*time.Minute),
		BidLockTimeout: durationEnv("BID_LOCK_TIMEOUT", 2*time.Second),
		LiveWindowDays: intEnv("LIVE_WINDOW_DAYS", 7),
		CooldownDays:   intEnv("COOLDOWN_DAYS", 21),
	}
}

func port() string {
	if p := os.Getenv("PORT"); p != "" {
		return fmt.Sprintf(":%s", p)
	}
	return ":8080"
}

func intEnv(key string, def int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		utils.Warn("config: invalid value, using default", map[string]any{"key": key, "value": raw})
		return def
	}
	return v
}

func durationEnv(key string, def time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return def
	}
	v, err := time.ParseDuration(raw)
	if err != nil || v <= 0 {
		utils.Warn("config: invalid value, using default", map[string]any{"key": key, "value": raw})
		return def
	}
	return v
}
