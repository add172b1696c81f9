// internal/config/config.go
package config

import (
	"os"
	"strconv"
)

type Config struct {
	Port        string
	Environment string

	MongoURI      string
	MongoDatabase string
	RedisURL      string

	SessionSecret   string
	SessionTTLHours int

	AdminEmail    string
	AdminPassword string
}

func Load() *Config {
	return &Config{
		Port:        getEnv("PORT", "5000"),
		Environment: getEnv("ENVIRONMENT", "development"),

		MongoURI:      getEnv("MONGODB_URI", "mongodb://localhost:27017"),
		MongoDatabase: getEnv("MONGODB_DATABASE", "portfolio_db"),
		RedisURL:      getEnv("REDIS_URL", "redis://localhost:6379"),

		SessionSecret:   getEnv("SESSION_SECRET", "portfolio_secret_key_change_in_production"),
		SessionTTLHours: getEnvInt("SESSION_TTL_HOURS", 24),

		AdminEmail:    getEnv("ADMIN_EMAIL", "admin@portfolio.com"),
		AdminPassword: getEnv("ADMIN_PASSWORD", "admin123"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
