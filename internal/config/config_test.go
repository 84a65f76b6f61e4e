package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_LoadDefaults(t *testing.T) {
	cfg, err := Load()
	assert.NoError(t, err)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, "Africa/Nairobi", cfg.Timezone)
	assert.Equal(t, "telemetry-readings", cfg.KafkaTopic)
	assert.NotNil(t, cfg.Location())
}

func Test_LoadEnvOverrides(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9999")
	t.Setenv("TIMEZONE", "UTC")
	t.Setenv("KAFKA_BROKERS", "kafka:29092")

	cfg, err := Load()
	assert.NoError(t, err)
	assert.Equal(t, ":9999", cfg.HTTPAddr)
	assert.Equal(t, "UTC", cfg.Timezone)
	assert.Equal(t, "kafka:29092", cfg.KafkaBrokers)
}

func Test_LoadInvalidTimezone(t *testing.T) {
	t.Setenv("TIMEZONE", "Not/AZone")

	cfg, err := Load()
	assert.Nil(t, cfg)
	assert.Error(t, err)
}
