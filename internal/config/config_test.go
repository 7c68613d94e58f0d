package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func setRequired(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("MS_YDB_ENDPOINT", "grpcs://ydb.serverless.yandexcloud.net:2135")
	t.Setenv("MS_YDB_DATABASE_PATH", "/ru-central1/b1g/etn")
	t.Setenv("MS_JWT_SECRET_KEY", "secret")
}

func TestLoad_Defaults(t *testing.T) {
	setRequired(t)

	cfg := Load()

	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, "https://storage.yandexcloud.net", cfg.S3Endpoint)
	assert.Equal(t, "0 3 * * *", cfg.ExpiryCron)
	assert.Equal(t, 72*time.Hour, cfg.PauseNotice)
	assert.Equal(t, 48*time.Hour, cfg.ResumeNotice)
	assert.True(t, cfg.ExpirySweepEnabled)
	assert.Equal(t, 0, cfg.MSYDBAutoCreateTables)
}

func TestLoad_Overrides(t *testing.T) {
	setRequired(t)
	t.Setenv("S3_ENDPOINT", "minio.local:9000")
	t.Setenv("MS_PAUSE_NOTICE_HOURS", "96")
	t.Setenv("MS_YDB_AUTO_CREATE_TABLES", "5")
	t.Setenv("MS_EXPIRY_SWEEP_ENABLED", "false")

	cfg := Load()

	assert.Equal(t, "https://minio.local:9000", cfg.S3Endpoint)
	assert.Equal(t, 96*time.Hour, cfg.PauseNotice)
	assert.Equal(t, 1, cfg.MSYDBAutoCreateTables)
	assert.False(t, cfg.ExpirySweepEnabled)
}

func TestGetEnvInt(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  int
	}{
		{"within range", "10", 10},
		{"below min", "-3", 0},
		{"above max", "500", 100},
		{"not a number", "ten", 42},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("MS_TEST_INT", tt.value)
			assert.Equal(t, tt.want, getEnvInt("MS_TEST_INT", 42, 0, 100))
		})
	}
}
