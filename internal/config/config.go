package config

import (
	"fmt"
	"os"
	"strconv"
)

type Config struct {
	Port          string
	SecretKey     string
	Timezone      string
	CookieSecure  bool
	SeedDemoUsers bool
}

// Load reads configuration from environment variables, with defaults suited
// to local development.
func Load() (*Config, error) {
	cfg := &Config{
		Port:          getEnv("PORT", "8080"),
		SecretKey:     getEnv("SECRET_KEY", "change_me_in_production"),
		Timezone:      getEnv("TZ", "UTC"),
		CookieSecure:  getEnvAsBool("COOKIE_SECURE", false),
		SeedDemoUsers: getEnvAsBool("SEED_DEMO_USERS", false),
	}

	if cfg.SecretKey == "" {
		return nil, fmt.Errorf("SECRET_KEY must not be empty")
	}

	return cfg, nil
}

func getEnv(key string, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		return defaultValue
	}
	return value
}
