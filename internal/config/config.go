package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the process configuration read from the environment
type Config struct {
	// Servers
	GRPCAddr    string
	MetricsAddr string

	// Database
	DBConnStr      string
	DBStartupDelay time.Duration

	// Auth
	JWTSecret string

	// AMQP (optional)
	AMQPURL      string
	AMQPExchange string

	LogLevel string
}

// Load reads a .env file if one exists, then the environment
func Load() *Config {
	// Ignore errors: .env is only used for local development
	_ = godotenv.Load()

	return &Config{
		GRPCAddr:       getEnv("GRPC_ADDR", ":8080"),
		MetricsAddr:    getEnv("METRICS_ADDR", ":9090"),
		DBConnStr:      dbConnStr(),
		DBStartupDelay: getEnvDuration("DB_STARTUP_DELAY", 2*time.Second),
		JWTSecret:      os.Getenv("JWT_SECRET"),
		AMQPURL:        os.Getenv("AMQP_URL"),
		AMQPExchange:   getEnv("AMQP_EXCHANGE", "potshare"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
	}
}

// dbConnStr uses DB_CONN_STR when set, otherwise builds it from individual vars (Docker friendly)
func dbConnStr() string {
	if connStr := os.Getenv("DB_CONN_STR"); connStr != "" {
		return connStr
	}

	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		getEnv("DB_HOST", "localhost"),
		getEnv("DB_PORT", "5432"),
		getEnv("DB_USER", "postgres"),
		getEnv("DB_PASSWORD", "postgres"),
		getEnv("DB_NAME", "potshare"),
	)
}

// Validate returns every configuration problem joined into one error
func (c *Config) Validate() error {
	var errs []error

	if c.GRPCAddr == "" {
		errs = append(errs, errors.New("GRPC_ADDR cannot be empty"))
	}

	if c.MetricsAddr == c.GRPCAddr {
		errs = append(errs, fmt.Errorf("METRICS_ADDR and GRPC_ADDR must differ, both are %q", c.GRPCAddr))
	}

	if len(c.JWTSecret) < 16 {
		errs = append(errs, errors.New("JWT_SECRET must be at least 16 characters"))
	}

	if c.AMQPURL != "" {
		if parsedURL, err := url.Parse(c.AMQPURL); err != nil {
			errs = append(errs, fmt.Errorf("invalid AMQP URL: %w", err))
		} else if parsedURL.Scheme != "amqp" && parsedURL.Scheme != "amqps" {
			errs = append(errs, fmt.Errorf("invalid AMQP URL scheme %q: must be 'amqp' or 'amqps'", parsedURL.Scheme))
		}
		if c.AMQPExchange == "" {
			errs = append(errs, errors.New("AMQP_EXCHANGE cannot be empty when AMQP_URL is set"))
		}
	}

	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("invalid LOG_LEVEL %q: must be debug, info, warn or error", c.LogLevel))
	}

	return errors.Join(errs...)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}
