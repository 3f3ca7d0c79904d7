package cmd_test

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"rfidship/cmd"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func testConfig() cmd.Config {
	return cmd.Config{
		JWTAccessSecret:     "access",
		JWTRefreshSecret:    "refresh",
		RfidDerivation:      "concat",
		LoginRatePerSec:     1,
		LoginBurst:          5,
		AuditDigestSchedule: "0 0 * * * *",
	}
}

func openDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)
	return db
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNewCompositionRoot_RejectsBadSettings(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*cmd.Config)
	}{
		{name: "derivation", mutate: func(c *cmd.Config) { c.RfidDerivation = "xor" }},
		{name: "bcrypt cost", mutate: func(c *cmd.Config) { c.BcryptCost = 99 }},
		{name: "secrets", mutate: func(c *cmd.Config) { c.JWTAccessSecret = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig()
			tt.mutate(&cfg)

			_, err := cmd.NewCompositionRoot(cfg, openDB(t), discardLogger())

			require.Error(t, err)
		})
	}
}

func TestCompositionRoot_CreateEcho(t *testing.T) {
	root, err := cmd.NewCompositionRoot(testConfig(), openDB(t), discardLogger())
	require.NoError(t, err)
	e, err := root.CreateEcho()
	require.NoError(t, err)

	health := httptest.NewRecorder()
	e.ServeHTTP(health, httptest.NewRequest(http.MethodGet, "/health", nil))
	secured := httptest.NewRecorder()
	e.ServeHTTP(secured, httptest.NewRequest(http.MethodGet, "/api/v1/boxes", nil))

	assert.Equal(t, http.StatusOK, health.Code)
	assert.Equal(t, http.StatusUnauthorized, secured.Code)
}

func TestCompositionRoot_JobsStartAndStop(t *testing.T) {
	root, err := cmd.NewCompositionRoot(testConfig(), openDB(t), discardLogger())
	require.NoError(t, err)
	manager := root.CreateJobManager()

	require.NoError(t, manager.StartAll())
	manager.StopAll()
}

func TestCompositionRoot_EnsureAdminWithoutAccountIsNoop(t *testing.T) {
	root, err := cmd.NewCompositionRoot(testConfig(), openDB(t), discardLogger())
	require.NoError(t, err)

	require.NoError(t, root.EnsureAdmin(t.Context()))
}
