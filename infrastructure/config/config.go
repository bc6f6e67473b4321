package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Data source modes for the analytics endpoints.
const (
	DataSourceMock   = "mock"
	DataSourceRemote = "remote"
)

// Config holds all application configuration. Everything is read once at
// startup from the environment; there is no hot reload.
type Config struct {
	// Server configuration
	ServerAddress string
	Environment   string

	// Service identity, reported by /api/metrics/custom and attached to
	// every exported trace.
	ServiceName    string
	ServiceVersion string

	// Data source selection
	DataSource          string // mock | remote
	AnalyticsBackendURL string // required when DataSource is remote

	// Telemetry
	EnableTracing    bool
	OTLPEndpoint     string
	MetricsNamespace string

	// Rate limiting (policy "api")
	RateLimitRPS   float64
	RateLimitBurst int

	// Logging
	LogLevel string
}

// LoadConfig loads configuration from environment variables. A .env file in
// the working directory is applied first when present; a missing file is
// fine since configuration usually comes from the environment directly.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		ServerAddress: getEnv("SERVER_ADDRESS", ":8080"),
		Environment:   getEnv("ENVIRONMENT", "development"),

		ServiceName:    getEnv("SERVICE_NAME", "bananalytics"),
		ServiceVersion: getEnv("SERVICE_VERSION", "1.0.0"),

		DataSource:          getEnv("DATA_SOURCE", DataSourceMock),
		AnalyticsBackendURL: getEnv("ANALYTICS_BACKEND_URL", ""),

		EnableTracing:    getEnvBool("ENABLE_TRACING", false),
		OTLPEndpoint:     getEnv("OTLP_ENDPOINT", "localhost:4317"),
		MetricsNamespace: getEnv("METRICS_NAMESPACE", "bananalytics"),

		RateLimitRPS:   getEnvFloat("RATE_LIMIT_RPS", 10),
		RateLimitBurst: getEnvInt("RATE_LIMIT_BURST", 20),

		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks if the configuration is coherent
func (c *Config) Validate() error {
	if c.DataSource != DataSourceMock && c.DataSource != DataSourceRemote {
		return fmt.Errorf("DATA_SOURCE must be %q or %q, got %q", DataSourceMock, DataSourceRemote, c.DataSource)
	}
	if c.IsProduction() && c.DataSource == DataSourceRemote && c.AnalyticsBackendURL == "" {
		return fmt.Errorf("ANALYTICS_BACKEND_URL is required when DATA_SOURCE=remote in production")
	}
	if c.RateLimitRPS <= 0 {
		return fmt.Errorf("RATE_LIMIT_RPS must be positive")
	}
	if c.RateLimitBurst <= 0 {
		return fmt.Errorf("RATE_LIMIT_BURST must be positive")
	}
	return nil
}

// IsDevelopment checks if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction checks if running in production mode
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// getEnv gets an environment variable with a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvBool gets a boolean environment variable with a default value
func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value == "true" || value == "1" || value == "yes"
}

// getEnvInt gets an integer environment variable with a default value
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

// getEnvFloat gets a float environment variable with a default value
func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}
