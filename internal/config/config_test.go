package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"AUTH_TOKEN", "HOST", "PORT", "LOG_LEVEL",
		"MEGA_EMAIL", "MEGA_PASSWORD", "TEMP_UPLOAD_DIR", "UPLOAD_WORKERS",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "default-secret-token", cfg.AuthToken)
	assert.Equal(t, "0.0.0.0:8080", cfg.Addr())
	assert.Equal(t, "temp_uploads", cfg.TempUploadDir)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Empty(t, cfg.MegaEmail)
	assert.Empty(t, cfg.MegaPassword)
	assert.Equal(t, 4, cfg.UploadWorkers)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("AUTH_TOKEN", "s3cret")
	t.Setenv("PORT", "9090")
	t.Setenv("MEGA_EMAIL", "user@example.com")
	t.Setenv("MEGA_PASSWORD", "hunter2")
	t.Setenv("TEMP_UPLOAD_DIR", "/tmp/scratch")
	t.Setenv("UPLOAD_WORKERS", "8")

	cfg := Load()

	assert.Equal(t, "s3cret", cfg.AuthToken)
	assert.Equal(t, "0.0.0.0:9090", cfg.Addr())
	assert.Equal(t, "user@example.com", cfg.MegaEmail)
	assert.Equal(t, "hunter2", cfg.MegaPassword)
	assert.Equal(t, "/tmp/scratch", cfg.TempUploadDir)
	assert.Equal(t, 8, cfg.UploadWorkers)
}

func TestLoadRejectsBadWorkerCount(t *testing.T) {
	t.Setenv("UPLOAD_WORKERS", "zero")
	assert.Equal(t, 4, Load().UploadWorkers)

	t.Setenv("UPLOAD_WORKERS", "0")
	assert.Equal(t, 4, Load().UploadWorkers)
}
