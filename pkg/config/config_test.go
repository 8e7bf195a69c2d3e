package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewDefaults(t *testing.T) {
	t.Setenv("API_BASE_URL", "http://factory.local/api")
	t.Setenv("API_TIMEOUT", "5s")
	t.Setenv("JWT_ACCESS_TTL", "not-a-duration")
	t.Setenv("LOG_MAX_BACKUPS", "x")

	cfg := New()

	assert.Equal(t, "http://factory.local/api", cfg.API.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.API.Timeout)
	assert.Equal(t, 24*time.Hour, cfg.JWT.AccessTokenTTL)
	assert.Equal(t, 5, cfg.Log.MaxBackups)
	assert.Equal(t, "8080", cfg.Server.Port)
}
