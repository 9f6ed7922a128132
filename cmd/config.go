package cmd

import (
	"log/slog"
	"os"
	"strings"
)

// Config holds the process settings read from the environment.
type Config struct {
	HTTPPort              string
	SeedPath              string
	DispatchSchedule      string
	DeliverySchedule      string
	KafkaBrokers          []string
	KafkaDepotEventsTopic string
	LogLevel              slog.Level
}

const (
	defaultHTTPPort              = "8080"
	defaultKafkaDepotEventsTopic = "depot.events"
)

// ConfigFromEnv reads Config from lookup, os.LookupEnv in production.
// Unset or empty variables fall back to their defaults.
func ConfigFromEnv(lookup func(string) (string, bool)) Config {
	get := func(key, fallback string) string {
		if v, ok := lookup(key); ok && strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
		return fallback
	}

	return Config{
		HTTPPort:              get("HTTP_PORT", defaultHTTPPort),
		SeedPath:              get("SEED_PATH", ""),
		DispatchSchedule:      get("DISPATCH_SCHEDULE", ""),
		DeliverySchedule:      get("DELIVERY_SCHEDULE", ""),
		KafkaBrokers:          splitList(get("KAFKA_BROKERS", "")),
		KafkaDepotEventsTopic: get("KAFKA_DEPOT_EVENTS_TOPIC", defaultKafkaDepotEventsTopic),
		LogLevel:              parseLevel(get("LOG_LEVEL", "info")),
	}
}

// LoadConfig reads Config from the process environment.
func LoadConfig() Config {
	return ConfigFromEnv(os.LookupEnv)
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func parseLevel(s string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo
	}
	return level
}
