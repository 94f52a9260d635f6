package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigRequiresSessionSecretInProduction(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("SESSION_SECRET", "")

	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestLoadConfigSessionSecretFromEnv(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("SESSION_SECRET", "a-real-secret-from-the-environment")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "a-real-secret-from-the-environment", cfg.Session.Secret)
}

func TestLoadConfigDevelopmentFallsBackToDevSecret(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	t.Setenv("SESSION_SECRET", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, devSessionSecret, cfg.Session.Secret)
	assert.True(t, cfg.IsDevelopment())
}
