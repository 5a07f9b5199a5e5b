package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doingodswork/rttop/internal/config"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := config.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "https://www.rottentomatoes.com/top/bestofrt/", cfg.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
	assert.Equal(t, "en-US", cfg.AcceptLanguage)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Empty(t, cfg.UserAgent)
}

func TestLoadConfig_Env(t *testing.T) {
	t.Setenv("RTTOP_BASE_URL", "http://localhost:8080/top/")
	t.Setenv("RTTOP_TIMEOUT", "30s")
	t.Setenv("RTTOP_LOG_LEVEL", "debug")
	t.Setenv("RTTOP_USER_AGENT", "Mozilla/5.0")

	cfg, err := config.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8080/top/", cfg.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "Mozilla/5.0", cfg.UserAgent)
}

func TestLoadConfig_InvalidTimeout(t *testing.T) {
	t.Setenv("RTTOP_TIMEOUT", "soon")
	_, err := config.LoadConfig()
	assert.Error(t, err)

	t.Setenv("RTTOP_TIMEOUT", "-1s")
	_, err = config.LoadConfig()
	assert.Error(t, err)
}
