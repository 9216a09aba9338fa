package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("api")
	require.NoError(t, err)

	assert.Equal(t, "api", cfg.Service.Name)
	assert.Equal(t, 8080, cfg.Service.Port)
	assert.Equal(t, "memory", cfg.Notifier.Transport)
	assert.False(t, cfg.Features.CascadeDelete)
	assert.Equal(t, 5*time.Minute, cfg.Cache.DefaultTTL)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9191")
	t.Setenv("POSTGRES_DB", "lighting_test")
	t.Setenv("WORK_ACT_CASCADE_DELETE", "true")
	t.Setenv("CACHE_DEFAULT_TTL", "30s")

	cfg, err := Load("api")
	require.NoError(t, err)

	assert.Equal(t, 9191, cfg.Service.Port)
	assert.Equal(t, "lighting_test", cfg.Database.Database)
	assert.True(t, cfg.Features.CascadeDelete)
	assert.Equal(t, 30*time.Second, cfg.Cache.DefaultTTL)
	assert.Contains(t, cfg.DatabaseURL(), "lighting_test")
}

func TestValidate(t *testing.T) {
	t.Setenv("NOTIFIER_TRANSPORT", "carrier-pigeon")
	_, err := Load("api")
	assert.Error(t, err)

	t.Setenv("NOTIFIER_TRANSPORT", "redis")
	t.Setenv("REDIS_ENABLED", "false")
	_, err = Load("api")
	assert.Error(t, err)

	t.Setenv("REDIS_ENABLED", "true")
	cfg, err := Load("api")
	assert.NoError(t, err)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr())
}
