package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("ANALYZER", "")
	t.Setenv("MAX_UPLOAD_BYTES", "")
	t.Setenv("REDIS_URL", "")

	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "heuristic", cfg.Analyzer)
	assert.Equal(t, int64(15<<20), cfg.MaxUploadBytes)
	assert.Empty(t, cfg.RedisURL)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("ANALYZER", "Remote")
	t.Setenv("CLASSIFIER_SEED", "42")
	t.Setenv("LOG_JSON", "true")
	t.Setenv("JWT_TTL_MINUTES", "not-a-number")

	cfg := Load()

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "remote", cfg.Analyzer)
	assert.Equal(t, int64(42), cfg.ClassifierSeed)
	assert.True(t, cfg.LogJSON)
	assert.Equal(t, 60*24*7, cfg.JWTTTLMinutes)
}
