// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/wastewise/internal/platform/config"
)

func setRequired(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/wastewise")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")
	t.Setenv("ACCESS_TOKEN_SECRET", "access")
	t.Setenv("REFRESH_TOKEN_SECRET", "refresh")
}

/*
TestLoad_Defaults verifies default values once required variables are set.
*/
func TestLoad_Defaults(t *testing.T) {
	setRequired(t)

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "8000", cfg.ServerPort)
	assert.Equal(t, 10, cfg.BcryptCost)
	assert.Equal(t, 24*time.Hour, cfg.AccessTokenExpiry)
	assert.Equal(t, 240*time.Hour, cfg.RefreshTokenExpiry)
	assert.Equal(t, []string{"*"}, cfg.AllowedOrigins())
	assert.True(t, cfg.IsDevelopment())
	assert.False(t, cfg.TrustProxyHeaders)

	tokens := cfg.TokenConfig()
	assert.Equal(t, "access", tokens.AccessSecret)
	assert.Equal(t, "refresh", tokens.RefreshSecret)
}

/*
TestLoad_Overrides verifies duration and list parsing.
*/
func TestLoad_Overrides(t *testing.T) {
	setRequired(t)
	t.Setenv("ACCESS_TOKEN_EXPIRY", "15m")
	t.Setenv("CORS_ORIGIN", "https://a.example,https://b.example")
	t.Setenv("TRUST_PROXY_HEADERS", "true")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 15*time.Minute, cfg.AccessTokenExpiry)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins)
	assert.True(t, cfg.TrustProxyHeaders)
}

/*
TestLoad_Rejects covers missing and inconsistent settings.
*/
func TestLoad_Rejects(t *testing.T) {
	t.Run("shared_secret", func(t *testing.T) {
		setRequired(t)
		t.Setenv("REFRESH_TOKEN_SECRET", "access")

		_, err := config.Load()
		assert.Error(t, err)
	})

	t.Run("missing_database", func(t *testing.T) {
		setRequired(t)
		t.Setenv("DATABASE_URL", "")

		_, err := config.Load()
		assert.Error(t, err)
	})
}
