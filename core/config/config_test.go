package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "http://localhost:8081", cfg.API.BaseURL)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "commerce", cfg.Database.Name)
	assert.Equal(t, "verification-reports", cfg.Reports.Bucket)
	assert.False(t, cfg.Reports.Enabled)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	t.Setenv("API_BASE_URL", "http://commerce.test:9999")
	t.Setenv("DATABASE_HOST", "db.internal")
	t.Setenv("REPORTS_ENABLED", "true")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "http://commerce.test:9999", cfg.API.BaseURL)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.True(t, cfg.Reports.Enabled)
}
