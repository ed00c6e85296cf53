package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/journal")
	t.Setenv("API_KEYS", " key-1, key-2 ,")
	t.Setenv("EVENT_BROKER", "NATS")
	t.Setenv("WEBHOOK_TIMEOUT", "not-a-duration")

	cfg, err := LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, []string{"key-1", "key-2"}, cfg.APIKeys)
	assert.Equal(t, "nats", cfg.EventBroker)
	assert.Equal(t, 5*time.Second, cfg.WebhookTimeout)
	assert.Equal(t, 15*time.Minute, cfg.ClassifyInterval)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
}

func TestLoadConfig_RequiresDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")

	_, err := LoadConfig()

	assert.ErrorContains(t, err, "DATABASE_URL")
}

func TestLoadConfig_UnknownBroker(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/journal")
	t.Setenv("EVENT_BROKER", "kafka")

	_, err := LoadConfig()

	assert.ErrorContains(t, err, "EVENT_BROKER")
}
