package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNew_Defaults(t *testing.T) {
	t.Setenv("DASHBOARD_CACHE_TTL", "")
	cfg := New()

	assert.Equal(t, 6, cfg.Dashboard.ActivityLimit)
	assert.Equal(t, 5, cfg.Dashboard.TopProjects)
	assert.Equal(t, "8080", cfg.Server.Port)
	// пустое значение не парсится - берётся дефолт
	assert.Equal(t, 5*time.Minute, cfg.Dashboard.CacheTTL)
}

func TestNew_FromEnv(t *testing.T) {
	t.Setenv("DASHBOARD_ACTIVITY_LIMIT", "10")
	t.Setenv("DASHBOARD_CACHE_TTL", "30s")
	t.Setenv("CORS_ORIGINS", "http://a.test, http://b.test ,")
	t.Setenv("REDIS_DB", "not-a-number")

	cfg := New()

	assert.Equal(t, 10, cfg.Dashboard.ActivityLimit)
	assert.Equal(t, 30*time.Second, cfg.Dashboard.CacheTTL)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.Server.CORSOrigins)
	assert.Equal(t, 0, cfg.Redis.DB)
}
