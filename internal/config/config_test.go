package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://guardian@localhost/guardian")
	t.Setenv("CONSOLE_ID", "disp-7")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, RoleDispatcher, cfg.Role)
	assert.Equal(t, "disp-7", cfg.ConsoleName)
	assert.Equal(t, TransportWebsocket, cfg.ChannelTransport)
	assert.Equal(t, 30*time.Second, cfg.CallRingTimeout)
	assert.Equal(t, 256, cfg.EmitQueueMax)
	assert.Equal(t, 10*time.Minute, cfg.EmitQueueTTL)
	assert.Equal(t, 3, cfg.WebhookMaxRetries)
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://guardian@localhost/guardian")
	t.Setenv("CONSOLE_ID", "oc-1")
	t.Setenv("CONSOLE_NAME", "North OpCen")
	t.Setenv("CONSOLE_ROLE", RoleOpCen)
	t.Setenv("CHANNEL_TRANSPORT", TransportNATS)
	t.Setenv("API_KEYS", "a, b ,c")
	t.Setenv("CALL_RING_TIMEOUT", "45s")
	t.Setenv("EMIT_QUEUE_MAX", "not-a-number")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, RoleOpCen, cfg.Role)
	assert.Equal(t, "North OpCen", cfg.ConsoleName)
	assert.Equal(t, TransportNATS, cfg.ChannelTransport)
	assert.Equal(t, []string{"a", "b", "c"}, cfg.APIKeys)
	assert.Equal(t, 45*time.Second, cfg.CallRingTimeout)
	assert.Equal(t, 256, cfg.EmitQueueMax) // некорректное значение -> значение по умолчанию
}

func TestLoadConfig_MissingIdentity(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://guardian@localhost/guardian")
	t.Setenv("CONSOLE_ID", "")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.ErrorContains(t, err, "CONSOLE_ID")
}

func TestValidate_RejectsUnknownRole(t *testing.T) {
	cfg := &Config{
		DatabaseURL:        "postgres://x",
		ConsoleID:          "x",
		Role:               "volunteer",
		ChannelTransport:   TransportWebsocket,
		ReconnectBaseDelay: time.Second,
		ReconnectMaxDelay:  time.Minute,
	}
	err := cfg.Validate()
	require.Error(t, err)
	assert.ErrorContains(t, err, "CONSOLE_ROLE")
}
