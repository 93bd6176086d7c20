package common

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	Database DatabaseConfig
	Server   ServerConfig
	LLM      LLMConfig
	Storage  StorageConfig
	Ingest   IngestConfig
	Forecast ForecastConfig
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	DSN              string
	MaxConns         int32
	MinConns         int32
	MaxConnLifetime  time.Duration
	MaxConnIdleTime  time.Duration
	DialTimeout      time.Duration
	StatementTimeout time.Duration
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	GRPCAddr string
}

// LLMConfig holds AI-collaborator configuration
type LLMConfig struct {
	BaseURL         string
	Model           string
	APIKey          string
	Temperature     float32
	ClassifyTimeout time.Duration
	InsightTimeout  time.Duration
}

// StorageConfig holds blob-storage configuration
type StorageConfig struct {
	Bucket        string
	UploadTimeout time.Duration
}

// IngestConfig holds ingestion policy knobs
type IngestConfig struct {
	// FallbackCurrency is used when no currency marker is found in the text.
	FallbackCurrency string
	// MaxTextLength caps stored OCR text.
	MaxTextLength int
	// AllowAnonymous permits ingestion without a caller identity; the document
	// is then attributed to the per-org system principal.
	AllowAnonymous bool
}

// ForecastConfig holds forecaster configuration
type ForecastConfig struct {
	Horizon  int
	CacheTTL time.Duration
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			DSN:              getEnv("DB_URL", ""),
			MaxConns:         getEnvAsInt32("DB_MAX_CONNS", 20),
			MinConns:         getEnvAsInt32("DB_MIN_CONNS", 5),
			MaxConnLifetime:  getEnvAsDuration("DB_MAX_CONN_LIFETIME", 30*time.Minute),
			MaxConnIdleTime:  getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", 5*time.Minute),
			DialTimeout:      getEnvAsDuration("DB_DIAL_TIMEOUT", 3*time.Second),
			StatementTimeout: getEnvAsDuration("DB_STATEMENT_TIMEOUT", 0),
		},
		Server: ServerConfig{
			GRPCAddr: getEnv("GRPC_ADDR", ":8080"),
		},
		LLM: LLMConfig{
			BaseURL:         getEnv("OPENAI_BASE_URL", "https://api.openai.com/v1"),
			Model:           getEnv("OPENAI_MODEL", "gpt-4o-mini"),
			APIKey:          getEnv("OPENAI_API_KEY", ""),
			Temperature:     getEnvAsFloat32("OPENAI_TEMPERATURE", 0.0),
			ClassifyTimeout: getEnvAsDuration("OPENAI_CLASSIFY_TIMEOUT", 10*time.Second),
			InsightTimeout:  getEnvAsDuration("OPENAI_INSIGHT_TIMEOUT", 45*time.Second),
		},
		Storage: StorageConfig{
			Bucket:        getEnv("BLOB_BUCKET", ""),
			UploadTimeout: getEnvAsDuration("STORAGE_UPLOAD_TIMEOUT", 2*time.Minute),
		},
		Ingest: IngestConfig{
			FallbackCurrency: getEnv("FALLBACK_CURRENCY", "MYR"),
			MaxTextLength:    getEnvAsInt("MAX_OCR_TEXT_LENGTH", 3500),
			AllowAnonymous:   getEnvAsBool("ALLOW_ANONYMOUS_INGEST", true),
		},
		Forecast: ForecastConfig{
			Horizon:  getEnvAsInt("FORECAST_HORIZON", 8),
			CacheTTL: getEnvAsDuration("FORECAST_CACHE_TTL", 24*time.Hour),
		},
	}
}

// Helper functions for environment variable parsing
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

func getEnvAsInt32(key string, defaultValue int32) int32 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 32); err == nil {
			return int32(intVal)
		}
	}
	return defaultValue
}

func getEnvAsFloat32(key string, defaultValue float32) float32 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 32); err == nil {
			return float32(floatVal)
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
