package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecapdevilla/barber/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "file", cfg.StorageBackend)
	assert.Equal(t, "./data", cfg.DataDir)
	assert.Equal(t, "redis://localhost:6379/0", cfg.RedisURL)
	assert.Equal(t, "barberApp", cfg.LedgerKey)
}

func TestLoadTomaVariablesDeEntorno(t *testing.T) {
	t.Setenv("STORAGE_BACKEND", "memory")
	t.Setenv("LEDGER_KEY", "barberApp:staging")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "memory", cfg.StorageBackend)
	assert.Equal(t, "barberApp:staging", cfg.LedgerKey)
}
