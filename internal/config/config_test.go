package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, "development", cfg.Environment)
	require.Equal(t, 8080, cfg.HTTP.Port)
	require.Equal(t, 10*time.Second, cfg.HTTP.ReadTimeout)
	require.Equal(t, "admin@example.com", cfg.Admin.Email)
	require.Equal(t, 12*time.Hour, cfg.Auth.TokenTTL)
	require.Equal(t, int64(10), cfg.Storage.MaxUploadMB)
	require.Equal(t, int64(10)*1024*1024, cfg.Storage.MaxUploadBytes())
	require.Equal(t, 4096, cfg.Storage.MaxImageDimension)
	require.Empty(t, cfg.AllowCORSOrigins)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("AMELIAS_ENVIRONMENT", "production")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "production", cfg.Environment)
}
