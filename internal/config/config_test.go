package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, "8080", cfg.Port)
	require.Equal(t, "file", cfg.StoreBackend)
	require.Equal(t, "data/news.json", cfg.StorePath)
	require.Equal(t, 30, cfg.MaxFeedItems)
	require.Equal(t, 12*time.Second, cfg.FetchTimeout)
	require.Equal(t, "zh-CN", cfg.TargetLang)
	require.Equal(t, "@every 1h", cfg.RefreshInterval)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("TARGET_LANG", "en")
	t.Setenv("FETCH_TIMEOUT_SEC", "15")
	t.Setenv("MAX_FEED_ITEMS", "50")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "9090", cfg.Port)
	require.Equal(t, "en", cfg.TargetLang)
	require.Equal(t, 15*time.Second, cfg.FetchTimeout)
	require.Equal(t, 50, cfg.MaxFeedItems)
}

func TestSqliteBackendSwapsDefaultPath(t *testing.T) {
	t.Setenv("STORE_BACKEND", "sqlite")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "data/news.db", cfg.StorePath)
}

func TestValidateRejectsUnknownBackend(t *testing.T) {
	t.Setenv("STORE_BACKEND", "redis")

	_, err := Load()
	require.Error(t, err)
}

func TestValidateRejectsBadFeedLimit(t *testing.T) {
	t.Setenv("MAX_FEED_ITEMS", "-3")

	_, err := Load()
	require.Error(t, err)
}
