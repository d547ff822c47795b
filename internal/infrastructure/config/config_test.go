package config

import (
	"context"
	"testing"
	"time"

	"github.com/sethvargo/go-envconfig"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := load(context.Background(), envconfig.MapLookuper(map[string]string{}))
	require.NoError(t, err)

	assert.Equal(t, "5000", cfg.Port)
	assert.Equal(t, StorePostgres, cfg.StoreDriver)
	assert.Equal(t, AuthModeClaim, cfg.AuthMode)
	assert.False(t, cfg.TokenAuth())
	assert.True(t, cfg.SeedCatalog)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
	assert.Equal(t, 5432, cfg.Postgres.Port)
	assert.Empty(t, cfg.Redis.Addr)
	assert.Equal(t, 24*time.Hour, cfg.Redis.IdempotencyTTL)
}

func TestLoadOverrides(t *testing.T) {
	cfg, err := load(context.Background(), envconfig.MapLookuper(map[string]string{
		"PORT":            "8081",
		"STORE_DRIVER":    "Memory",
		"AUTH_MODE":       "token",
		"JWT_SECRET":      "s3cret",
		"TOKEN_TTL":       "1h",
		"CORS_ORIGINS":    "http://localhost:3000,https://dch.example",
		"REDIS_ADDR":      "localhost:6379",
		"IDEMPOTENCY_TTL": "10m",
	}))
	require.NoError(t, err)

	assert.Equal(t, "8081", cfg.Port)
	assert.Equal(t, StoreMemory, cfg.StoreDriver)
	assert.True(t, cfg.TokenAuth())
	assert.Equal(t, time.Hour, cfg.TokenTTL)
	assert.Equal(t, []string{"http://localhost:3000", "https://dch.example"}, cfg.CORSOrigins)
	assert.Equal(t, 10*time.Minute, cfg.Redis.IdempotencyTTL)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	cases := map[string]map[string]string{
		"unknown driver":       {"STORE_DRIVER": "sqlite"},
		"unknown auth mode":    {"AUTH_MODE": "oauth"},
		"token without secret": {"AUTH_MODE": "token"},
	}

	for name, env := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := load(context.Background(), envconfig.MapLookuper(env))
			assert.Error(t, err)
		})
	}
}
