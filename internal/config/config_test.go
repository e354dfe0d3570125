package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig_Defaults(t *testing.T) {
	for _, k := range []string{"HTTP_PORT", "STORE_DRIVER", "LIST_LIMIT", "CACHE_TTL", "USE_KAFKA", "CORS_ORIGINS", "API_PREFIX"} {
		t.Setenv(k, "")
	}

	cfg := LoadConfig()

	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, "/api", cfg.APIPrefix)
	assert.Equal(t, StoreMongo, cfg.StoreDriver)
	assert.Equal(t, 1000, cfg.ListLimit)
	assert.Equal(t, 30*time.Second, cfg.CacheTTL)
	assert.False(t, cfg.UseKafka)
	assert.True(t, cfg.AllowAllOrigins())
}

func TestLoadConfig_FromEnv(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("STORE_DRIVER", "SQLite")
	t.Setenv("LIST_LIMIT", "50")
	t.Setenv("CACHE_TTL", "2m")
	t.Setenv("USE_KAFKA", "true")
	t.Setenv("KAFKA_BROKERS", "k1:9092, k2:9092")
	t.Setenv("CORS_ORIGINS", "https://humanidad.mx,https://admin.humanidad.mx")

	cfg := LoadConfig()

	assert.Equal(t, "9090", cfg.HTTPPort)
	assert.Equal(t, StoreSQLite, cfg.StoreDriver)
	assert.Equal(t, 50, cfg.ListLimit)
	assert.Equal(t, 2*time.Minute, cfg.CacheTTL)
	assert.True(t, cfg.UseKafka)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.KafkaBrokers)
	assert.False(t, cfg.AllowAllOrigins())
	assert.Len(t, cfg.CORSOrigins, 2)
}

func TestLoadConfig_InvalidNumbersFallBack(t *testing.T) {
	t.Setenv("LIST_LIMIT", "-3")
	t.Setenv("CACHE_TTL", "soon")

	cfg := LoadConfig()

	assert.Equal(t, 1000, cfg.ListLimit)
	assert.Equal(t, 30*time.Second, cfg.CacheTTL)
}
