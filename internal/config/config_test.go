package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("GOOGLE_CLIENT_ID", "client-id")
	t.Setenv("GOOGLE_CLIENT_SECRET", "client-secret")
	t.Setenv("GOOGLE_REDIRECT_URL", "http://localhost:8080/callback")
	t.Setenv("TOKEN_SECRET", "signing-secret")
	t.Setenv("AWS_ROLE_ARN", "arn:aws:iam::123456789012:role/web-identity")
}

func TestLoadDefaults(t *testing.T) {
	setRequired(t)
	t.Setenv("APP_PORT", "")
	t.Setenv("AWS_REGION", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.AppPort)
	assert.Equal(t, "us-east-1", cfg.AWSRegion)
	assert.Equal(t, "client-id", cfg.GoogleClientID)
}

func TestLoadMissingRequired(t *testing.T) {
	setRequired(t)
	t.Setenv("TOKEN_SECRET", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "TOKEN_SECRET")
}
