package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, "jewelry-store", cfg.App.Name)
	require.Equal(t, "development", cfg.App.Env)
	require.Equal(t, "0.0.0.0:8080", cfg.App.Addr())
	require.Equal(t, 30*time.Second, cfg.App.RequestTimeout())
	require.Equal(t, insecureDevSecret, cfg.Auth.JWTSecret)
	require.Equal(t, time.Hour, cfg.Auth.SessionTTL())
	require.Equal(t, 60*time.Second, cfg.Cache.StatsTTL())
}

func TestLoadProductionRequiresSecret(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("AUTH_JWT_SECRET", "")

	_, err := Load()
	require.Error(t, err)
	require.Contains(t, err.Error(), "AUTH_JWT_SECRET")
}

func TestLoadProductionWithSecret(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("AUTH_JWT_SECRET", "strong-production-secret")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "strong-production-secret", cfg.Auth.JWTSecret)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("AUTH_SESSION_TTL_MINUTES", "15")
	t.Setenv("CACHE_STATS_TTL_SECONDS", "5")
	t.Setenv("HTTP_REQUEST_TIMEOUT_SECONDS", "not-a-number")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, 15*time.Minute, cfg.Auth.SessionTTL())
	require.Equal(t, 5*time.Second, cfg.Cache.StatsTTL())
	// unparsable values fall back to defaults
	require.Equal(t, 30*time.Second, cfg.App.RequestTimeout())
}
