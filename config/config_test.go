package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("APP_ENV", Test)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Test, cfg.Env)
	assert.True(t, cfg.IsDev())
	assert.Equal(t, "localhost:4000", cfg.Addr())
	assert.Equal(t, "mysql", cfg.Database.Driver)
	assert.Equal(t, "localhost:3306", cfg.Database.Address)
	assert.Equal(t, float64(2), cfg.RateLimit.Rate)
	assert.Equal(t, 20, cfg.RateLimit.Burst)
	assert.Equal(t, time.Minute, cfg.RateLimit.Window)
	assert.Equal(t, 120, cfg.RateLimit.WindowMax)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "http://localhost:4000", cfg.APIURL)
}

func TestLoadEnvironment(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("APP_ENV", Production)
	t.Setenv("SERVER_PORT", "8080")
	t.Setenv("DB_DRIVER", "sqlite3")
	t.Setenv("DB_DSN", "file::memory:")
	t.Setenv("REDIS_ADDR", "redis:6379")
	t.Setenv("RATE_WINDOW", "30s")
	t.Setenv("TRUSTED_PROXIES", "10.0.0.1 10.0.0.2")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.False(t, cfg.IsDev())
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "sqlite3", cfg.Database.Driver)
	assert.Equal(t, "file::memory:", cfg.Database.DSN)
	assert.Equal(t, "redis:6379", cfg.Redis.Addr)
	assert.Equal(t, 30*time.Second, cfg.RateLimit.Window)
	assert.Equal(t, []string{"10.0.0.1", "10.0.0.2"}, cfg.TrustedProxies)
}

func TestLoadBadPortFallsBack(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("SERVER_PORT", "not-a-port")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 4000, cfg.Port)
}

func TestLoadDotEnvOutsideProduction(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("LOG_LEVEL=debug\n"), 0o600))
	t.Setenv("APP_ENV", Development)
	// t.Setenv restores the variable that godotenv sets
	t.Setenv("LOG_LEVEL", "")
	os.Unsetenv("LOG_LEVEL")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	path := filepath.Join(dir, "taskboard.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server_host: 0.0.0.0\ndb_driver: pgx\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0:4000", cfg.Addr())
	assert.Equal(t, "pgx", cfg.Database.Driver)

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

// chdir changes the working directory for the duration of the test and
// restores it on cleanup (equivalent of testing.T.Chdir, which needs Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}
