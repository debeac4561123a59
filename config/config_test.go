package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"secretKey": map[string]any{
			"access": "",
		},
		"uploads": map[string]any{
			"publicUrl": "",
		},
		"token": map[string]any{
			"accessTtl": "15m",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "UPLOADS_PUBLICURL", want: "uploads.publicUrl"},
		{envKey: "TOKEN_ACCESSTTL", want: "token.accessTtl"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.applyDefaults()

	assert.Equal(t, 3001, cfg.HTTP.Port)
	assert.Equal(t, 15*time.Minute, cfg.Token.AccessTTL)
	assert.Equal(t, 30*24*time.Hour, cfg.Token.RefreshTTL)
	assert.Equal(t, 10, cfg.Auth.BcryptCost)
	assert.NotEmpty(t, cfg.SecretKey.Access)
	assert.NotEmpty(t, cfg.SecretKey.Refresh)
	assert.NotEqual(t, cfg.SecretKey.Access, cfg.SecretKey.Refresh)
}

func TestValidate_ProductionRejectsDefaultSecrets(t *testing.T) {
	cfg := &Config{}
	cfg.applyDefaults()
	cfg.Env.Env = "production"

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "access token secret")
}

func TestValidate_ProductionRejectsEqualSecrets(t *testing.T) {
	cfg := &Config{}
	cfg.applyDefaults()
	cfg.Env.Env = "production"
	cfg.SecretKey.Access = "same-secret"
	cfg.SecretKey.Refresh = "same-secret"

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "must differ")
}

func TestValidate_ProductionAcceptsExplicitSecrets(t *testing.T) {
	cfg := &Config{}
	cfg.applyDefaults()
	cfg.Env.Env = "production"
	cfg.SecretKey.Access = "explicit-access-secret"
	cfg.SecretKey.Refresh = "explicit-refresh-secret"

	assert.NoError(t, cfg.Validate())
}

func TestValidate_DevelopmentAllowsDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.applyDefaults()
	cfg.Env.Env = "development"

	assert.NoError(t, cfg.Validate())
}
