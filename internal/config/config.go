// Package config centralises configuration parsing for the workout service.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config captures runtime configuration values for the workout service.
type Config struct {
	HTTPAddress       string
	MetricsAddress    string
	KafkaBrokers      []string
	SchemaRegistryURL string
	PackagesTopic     string // Topic carrying raw workout packages.
	SummariesTopic    string // Topic receiving computed summaries.
	DLQTopic          string // Topic receiving packages that failed validation.
	ConsumerGroupID   string
	BatchLimit        int // Maximum number of packages accepted by the batch endpoint.
	JWTSecret         string
	JWTIssuer         string
	ShutdownTimeout   time.Duration
}

// Load reads environment variables into Config, applying sensible defaults for local dev.
func Load() Config {
	cfg := Config{
		HTTPAddress:       getEnv("HTTP_ADDRESS", ":8080"),
		MetricsAddress:    getEnv("METRICS_ADDRESS", ":9090"),
		SchemaRegistryURL: getEnv("SCHEMA_REGISTRY_URL", "http://schema-registry:8081"),
		PackagesTopic:     getEnv("PACKAGES_TOPIC", "workout_packages"),
		SummariesTopic:    getEnv("SUMMARIES_TOPIC", "workout_summaries"),
		DLQTopic:          getEnv("DLQ_TOPIC", "workout_packages_dlq"),
		ConsumerGroupID:   getEnv("CONSUMER_GROUP_ID", "workout-summarizer"),
		BatchLimit:        getIntEnv("BATCH_LIMIT", 100),
		JWTSecret:         getEnv("JWT_SECRET", "dev-secret-change-me"),
		JWTIssuer:         getEnv("JWT_ISSUER", "i5e.identity"),
		ShutdownTimeout:   getDurationEnv("SHUTDOWN_TIMEOUT", 15*time.Second),
	}

	brokers := getEnv("KAFKA_BROKERS", "kafka:9092")
	cfg.KafkaBrokers = splitAndTrim(brokers)
	return cfg
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func splitAndTrim(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func getDurationEnv(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return fallback
}

func getIntEnv(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return fallback
}
