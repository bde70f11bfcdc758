package config

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort string
	APIBaseURL string
	APITimeout time.Duration
	PublicURL  string
	LogLevel   slog.Level

	DevAPIPort string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string
	RabbitURL  string
}

// Load reads .env (if present) and the process environment.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file loaded", "error", err)
	}

	port := getEnv("SERVER_PORT", "8080")

	cfg := &Config{
		ServerPort: port,
		APIBaseURL: getEnv("API_BASE_URL", "http://localhost:8081"),
		APITimeout: getDuration("API_TIMEOUT", 10*time.Second),
		PublicURL:  getEnv("PUBLIC_URL", "http://localhost:"+port),
		LogLevel:   getLevel("LOG_LEVEL", slog.LevelInfo),

		DevAPIPort: getEnv("DEVAPI_PORT", "8081"),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", "postgres"),
		DBName:     getEnv("DB_NAME", "events_db"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),
		RabbitURL:  os.Getenv("RABBITMQ_URL"),
	}

	slog.Debug("env", "SERVER_PORT", cfg.ServerPort, "API_BASE_URL", cfg.APIBaseURL, "API_TIMEOUT", cfg.APITimeout)
	return cfg
}

func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode,
	)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		slog.Warn("invalid duration, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return d
}

func getLevel(key string, fallback slog.Level) slog.Level {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(v)); err != nil {
		slog.Warn("invalid log level, using default", "key", key, "value", v)
		return fallback
	}
	return lvl
}
