// Package config provides runtime configuration values for the service.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the knobs the products service reads at startup.
type Config struct {
	Addr             string
	APIKey           string
	WriteLimitPerMin int
	MetricsEnabled   bool
	MetricsToken     string
}

// Load collects configuration from the environment with defaults. A .env
// file in the working directory is read first when present.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Addr:             ":" + getenv("PORT", "8080"),
		APIKey:           getenv("API_KEY", "dev-secret-key"),
		WriteLimitPerMin: atoienv("WRITE_LIMIT_PER_MIN", 0),
		MetricsEnabled:   boolenv("METRICS_ENABLED", false),
		MetricsToken:     os.Getenv("METRICS_TOKEN"),
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func atoienv(key string, def int) int {
	v := getenv(key, "")
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func boolenv(key string, def bool) bool {
	v := getenv(key, "")
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}
