// Package config reads server settings from the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr            string
	TLSCert         string
	TLSKey          string
	TokenKey        string
	APIKeyHash      string
	RateLimit       float64 // requests per second per client
	RateBurst       int
	LogLevel        string
	LogPretty       bool
	ShutdownTimeout time.Duration
	StaticDir       string
	PreparedBy      string
}

// Load reads WINDSIGN_* variables. A missing .env file is not an error.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Addr:            getEnv("WINDSIGN_ADDR", ":8080"),
		TLSCert:         getEnv("WINDSIGN_TLS_CERT", ""),
		TLSKey:          getEnv("WINDSIGN_TLS_KEY", ""),
		TokenKey:        getEnv("WINDSIGN_TOKEN_KEY", ""),
		APIKeyHash:      getEnv("WINDSIGN_API_KEY_HASH", ""),
		RateLimit:       getEnvAsFloat("WINDSIGN_RATE_LIMIT", 5),
		RateBurst:       getEnvAsInt("WINDSIGN_RATE_BURST", 10),
		LogLevel:        getEnv("WINDSIGN_LOG_LEVEL", "info"),
		LogPretty:       getEnvAsBool("WINDSIGN_LOG_PRETTY", false),
		ShutdownTimeout: getEnvAsDuration("WINDSIGN_SHUTDOWN_TIMEOUT", 5*time.Second),
		StaticDir:       getEnv("WINDSIGN_STATIC_DIR", "./static"),
		PreparedBy:      getEnv("WINDSIGN_PREPARED_BY", ""),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if (c.TLSCert == "") != (c.TLSKey == "") {
		return errors.New("WINDSIGN_TLS_CERT and WINDSIGN_TLS_KEY must be set together")
	}
	if c.RateLimit <= 0 {
		return fmt.Errorf("WINDSIGN_RATE_LIMIT must be positive, got %g", c.RateLimit)
	}
	if c.RateBurst <= 0 {
		return fmt.Errorf("WINDSIGN_RATE_BURST must be positive, got %d", c.RateBurst)
	}
	if c.ShutdownTimeout <= 0 {
		return fmt.Errorf("WINDSIGN_SHUTDOWN_TIMEOUT must be positive, got %s", c.ShutdownTimeout)
	}
	return nil
}

func (c *Config) TLS() bool { return c.TLSCert != "" }

// Premium reports whether any premium credential is configured.
func (c *Config) Premium() bool { return c.TokenKey != "" || c.APIKeyHash != "" }

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
