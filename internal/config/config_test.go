package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PORT", "DATA_DIR", "UPLOADS_DIR", "PUBLIC_DIR", "LOG_FILE", "CORS_ORIGINS",
		"RESEND_API_KEY", "EMAIL_FROM_ADDRESS", "EMAIL_FROM_NAME", "OWNER_EMAIL",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearEnv(t)

	cfg := LoadConfig()

	assert.Equal(t, "3001", cfg.Port)
	assert.Equal(t, "data", cfg.DataDir)
	assert.Equal(t, "uploads", cfg.UploadsDir)
	assert.Equal(t, "public", cfg.PublicDir)
	assert.Equal(t, "logs/server.log", cfg.LogFile)
	assert.Equal(t, "*", cfg.CORSOrigins)
	assert.Equal(t, "no-reply@evergreenlawns.com", cfg.Email.FromAddress)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("DATA_DIR", "/var/lib/evergreen")
	t.Setenv("OWNER_EMAIL", "owner@evergreenlawns.com")

	cfg := LoadConfig()

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "/var/lib/evergreen", cfg.DataDir)
	assert.Equal(t, "owner@evergreenlawns.com", cfg.Email.OwnerAddress)
}
