package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 10*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 10*time.Second, cfg.Server.WriteTimeout)
	assert.Equal(t, "data/sailings.json", cfg.Data.SnapshotPath)
	assert.Equal(t, "EUR", cfg.Engine.BaseCurrency)
	assert.Equal(t, int64(10000), cfg.Engine.CurrencyScale)
	assert.Equal(t, 10, cfg.Engine.MaxPathLegs)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, "development", cfg.App.Env)
	assert.True(t, cfg.IsDevelopment())
	assert.False(t, cfg.IsProduction())
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("DATA_SNAPSHOT_PATH", "/var/data/network.json")
	t.Setenv("ENGINE_BASE_CURRENCY", "USD")
	t.Setenv("ENGINE_MAX_PATH_LEGS", "4")
	t.Setenv("APP_ENV", "production")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "/var/data/network.json", cfg.Data.SnapshotPath)
	assert.Equal(t, "USD", cfg.Engine.BaseCurrency)
	assert.Equal(t, 4, cfg.Engine.MaxPathLegs)
	assert.True(t, cfg.IsProduction())
}

func TestLoad_Validation(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "port too large", key: "SERVER_PORT", value: "70000"},
		{name: "port zero", key: "SERVER_PORT", value: "0"},
		{name: "negative read timeout", key: "SERVER_READ_TIMEOUT", value: "-1s"},
		{name: "bad base currency", key: "ENGINE_BASE_CURRENCY", value: "EURO"},
		{name: "zero currency scale", key: "ENGINE_CURRENCY_SCALE", value: "0"},
		{name: "zero max path legs", key: "ENGINE_MAX_PATH_LEGS", value: "0"},
		{name: "unknown log level", key: "LOG_LEVEL", value: "verbose"},
		{name: "unknown log format", key: "LOG_FORMAT", value: "xml"},
		{name: "unknown app env", key: "APP_ENV", value: "qa"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)

			cfg, err := Load()
			assert.Error(t, err)
			assert.Nil(t, cfg)
		})
	}
}
