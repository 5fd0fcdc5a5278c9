package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds service configuration, loaded from the environment with
// sensible defaults for local development.
type Config struct {
	Port          string
	DBPath        string
	ZoneTablePath string // optional override for the embedded taxi zone table
	WeatherURL    string // empty disables the weather analysis
	WeatherTTL    time.Duration
	RateLimit     int // requests per IP per minute
}

// Load reads configuration from the environment.
func Load() *Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = ":8080"
	}

	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "./data/urban_rhythm.db"
	}

	weatherTTL := 6 * time.Hour
	if raw := os.Getenv("WEATHER_CACHE_TTL"); raw != "" {
		if d, err := time.ParseDuration(raw); err == nil {
			weatherTTL = d
		}
	}

	rateLimit := 300
	if raw := os.Getenv("RATE_LIMIT"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			rateLimit = n
		}
	}

	return &Config{
		Port:          port,
		DBPath:        dbPath,
		ZoneTablePath: os.Getenv("ZONE_TABLE_PATH"),
		WeatherURL:    os.Getenv("WEATHER_PROXY_URL"),
		WeatherTTL:    weatherTTL,
		RateLimit:     rateLimit,
	}
}
