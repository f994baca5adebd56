package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"CONFIG_FILE", "APP_ENV", "SERVER_PORT", "LOG_LEVEL", "DEFAULT_TIMEZONE",
		"RATE_LIMIT_PER_MINUTE", "PAYMENT_CURRENCY", "METRICS_ENABLED", "EMAIL_DOMAIN_CHECK",
		"S3_BUCKET", "S3_ACCESS_KEY", "S3_SECRET_KEY",
	} {
		t.Setenv(k, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, "America/Sao_Paulo", cfg.DefaultTimezone)
	assert.Equal(t, 60, cfg.RateLimitPerMinute)
	assert.Equal(t, "BRL", cfg.PaymentCurrency)
	assert.False(t, cfg.S3.Enabled())
}

func TestLoadFileThenEnv(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	clearEnv(t)

	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
server_port = "9000"
log_level = "debug"
rate_limit_per_minute = 10

[s3]
bucket = "avatars"
access_key = "key"
secret_key = "secret"
`), 0o600))

	t.Setenv("CONFIG_FILE", path)
	t.Setenv("SERVER_PORT", "9100")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9100", cfg.ServerPort)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 10, cfg.RateLimitPerMinute)
	assert.True(t, cfg.S3.Enabled())
}

func TestLoadReadsDotEnv(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	clearEnv(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("MP_ACCESS_TOKEN=TEST-token\n"), 0o600))

	// godotenv never overrides a variable that is already present.
	t.Setenv("MP_ACCESS_TOKEN", "")
	require.NoError(t, os.Unsetenv("MP_ACCESS_TOKEN"))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "TEST-token", cfg.MercadoPagoAccessToken)
}

func TestLoadRejectsBadValues(t *testing.T) {
	t.Chdir(t.TempDir())
	clearEnv(t)

	t.Setenv("SERVER_PORT", "http")
	_, err := Load()
	assert.Error(t, err)

	t.Setenv("SERVER_PORT", "8080")
	t.Setenv("METRICS_ENABLED", "maybe")
	_, err = Load()
	assert.Error(t, err)
}

func TestValidateProductionSecret(t *testing.T) {
	cfg := defaults()
	cfg.Env = "production"

	assert.Error(t, cfg.Validate())

	cfg.JWTSecret = "a-real-secret"
	assert.NoError(t, cfg.Validate())
}
