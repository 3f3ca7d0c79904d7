package cmd_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"rfidship/cmd"
	"rfidship/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DB_USER", "rfid")
	t.Setenv("DB_NAME", "rfid")
	t.Setenv("JWT_ACCESS_SECRET", "access")
	t.Setenv("JWT_REFRESH_SECRET", "refresh")
}

func TestLoadConfig_Defaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := cmd.LoadConfig("")

	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, "rfid-system", cfg.JWTIssuer)
	assert.Equal(t, time.Hour, cfg.AccessTokenTTL)
	assert.Equal(t, 168*time.Hour, cfg.RefreshTokenTTL)
	assert.Equal(t, "concat", cfg.RfidDerivation)
	assert.Equal(t, 1.0, cfg.LoginRatePerSec)
	assert.Equal(t, 5, cfg.LoginBurst)
	assert.Equal(t, "0 0 * * * *", cfg.AuditDigestSchedule)
	assert.Equal(t, "host=localhost port=5432 user=rfid password= dbname=rfid sslmode=disable", cfg.DSN())
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTPAddress())
}

func TestLoadConfig_EnvironmentOverridesFile(t *testing.T) {
	setRequiredEnv(t)
	path := writeConfig(t, `
http_port: "9000"
db_host: db.internal
access_token_ttl: 30m
rfid_derivation: hashed
login_burst: 10
`)
	t.Setenv("HTTP_PORT", "9100")
	t.Setenv("ACCESS_TOKEN_TTL", "15m")

	cfg, err := cmd.LoadConfig(path)

	require.NoError(t, err)
	assert.Equal(t, "9100", cfg.HTTPPort)
	assert.Equal(t, "db.internal", cfg.DBHost)
	assert.Equal(t, 15*time.Minute, cfg.AccessTokenTTL)
	assert.Equal(t, "hashed", cfg.RfidDerivation)
	assert.Equal(t, 10, cfg.LoginBurst)
}

func TestLoadConfig_UnknownFileKey(t *testing.T) {
	setRequiredEnv(t)
	path := writeConfig(t, "kafka_host: localhost\n")

	_, err := cmd.LoadConfig(path)

	require.ErrorContains(t, err, "kafka_host")
}

func TestLoadConfig_MissingFile(t *testing.T) {
	setRequiredEnv(t)

	_, err := cmd.LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))

	require.Error(t, err)
}

func TestLoadConfig_BadNumbers(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("LOGIN_BURST", "many")
	t.Setenv("REFRESH_TOKEN_TTL", "a week")

	_, err := cmd.LoadConfig("")

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.ErrorContains(t, err, "LOGIN_BURST")
	assert.ErrorContains(t, err, "REFRESH_TOKEN_TTL")
}

func TestLoadConfig_RequiresSecrets(t *testing.T) {
	t.Setenv("DB_USER", "rfid")
	t.Setenv("DB_NAME", "rfid")
	t.Setenv("JWT_ACCESS_SECRET", "")
	t.Setenv("JWT_REFRESH_SECRET", "")

	_, err := cmd.LoadConfig("")

	require.ErrorIs(t, err, errs.ErrValueIsRequired)
	assert.ErrorContains(t, err, "JWT_ACCESS_SECRET")
	assert.ErrorContains(t, err, "JWT_REFRESH_SECRET")
}

func TestLoadConfig_AdminNeedsPassword(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("ADMIN_ACCOUNT", "root")
	t.Setenv("ADMIN_PASSWORD", "")

	_, err := cmd.LoadConfig("")

	require.ErrorContains(t, err, "ADMIN_PASSWORD")
}

func TestLoadConfig_EmptyFile(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := cmd.LoadConfig(writeConfig(t, ""))

	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.HTTPPort)
}
