package cmd_test

import (
	"log/slog"
	"testing"

	"depot/cmd"

	"github.com/stretchr/testify/assert"
)

func lookupFrom(env map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

func TestConfigFromEnv(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		config := cmd.ConfigFromEnv(lookupFrom(nil))

		assert.Equal(t, "8080", config.HTTPPort)
		assert.Empty(t, config.SeedPath)
		assert.Empty(t, config.DispatchSchedule)
		assert.Empty(t, config.DeliverySchedule)
		assert.Empty(t, config.KafkaBrokers)
		assert.Equal(t, "depot.events", config.KafkaDepotEventsTopic)
		assert.Equal(t, slog.LevelInfo, config.LogLevel)
	})

	t.Run("overrides", func(t *testing.T) {
		config := cmd.ConfigFromEnv(lookupFrom(map[string]string{
			"HTTP_PORT":                "9090",
			"SEED_PATH":                "seed.yaml",
			"DISPATCH_SCHEDULE":        "*/5 * * * * *",
			"DELIVERY_SCHEDULE":        "0 * * * * *",
			"KAFKA_BROKERS":            "kafka-1:9092, kafka-2:9092,",
			"KAFKA_DEPOT_EVENTS_TOPIC": "events",
			"LOG_LEVEL":                "debug",
		}))

		assert.Equal(t, "9090", config.HTTPPort)
		assert.Equal(t, "seed.yaml", config.SeedPath)
		assert.Equal(t, "*/5 * * * * *", config.DispatchSchedule)
		assert.Equal(t, "0 * * * * *", config.DeliverySchedule)
		assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, config.KafkaBrokers)
		assert.Equal(t, "events", config.KafkaDepotEventsTopic)
		assert.Equal(t, slog.LevelDebug, config.LogLevel)
	})

	t.Run("blank_values_fall_back", func(t *testing.T) {
		config := cmd.ConfigFromEnv(lookupFrom(map[string]string{
			"HTTP_PORT": "  ",
			"LOG_LEVEL": "loud",
		}))

		assert.Equal(t, "8080", config.HTTPPort)
		assert.Equal(t, slog.LevelInfo, config.LogLevel)
	})
}
