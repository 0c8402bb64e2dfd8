package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Setenv("CLIENT_ID", "app-id")
	t.Setenv("CLIENT_SECRET", "app-secret")
	t.Setenv("OAUTH_REDIRECT_URI", "http://localhost/callback")
	t.Setenv("SUCCESS_URL", "https://example.com/done")
	t.Setenv("FAILURE_URL", "https://example.com/sorry")
	t.Setenv("DATABASE_URL", "postgres://localhost/signup")
	t.Setenv("SIGNUP_YEAR", "2016")
}

func TestLoad(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "app-id", cfg.ClientID)
	assert.Equal(t, 2016, cfg.SignupYear)
	assert.Equal(t, "https://my.mlh.io", cfg.ProviderBaseURL)
	assert.Equal(t, "127.0.0.1:8080", cfg.BindAddr)
	assert.Equal(t, "#signups", cfg.WebhookChannel)
	assert.Equal(t, 10*time.Second, cfg.HTTPTimeout)
}

func TestLoadMissingRequired(t *testing.T) {
	setRequired(t)
	t.Setenv("CLIENT_ID", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "CLIENT_ID")
}

func TestLoadMissingYear(t *testing.T) {
	setRequired(t)
	t.Setenv("SIGNUP_YEAR", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SIGNUP_YEAR")
}

func TestLoadOverrides(t *testing.T) {
	setRequired(t)
	t.Setenv("HTTP_TIMEOUT", "3s")
	t.Setenv("BIND_ADDR", "0.0.0.0:9000")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 3*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, "0.0.0.0:9000", cfg.BindAddr)
}
