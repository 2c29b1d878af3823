package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 9095, cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "table", cfg.Output)
	assert.Equal(t, []string{"fcfs", "sjf"}, cfg.Algorithms)
	assert.True(t, cfg.CacheEnabled)
	assert.Equal(t, int64(1024), cfg.CacheMaxCost)
	assert.True(t, cfg.MetricsEnabled)
}

func TestLoadFileAndEnvOverride(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	path := filepath.Join(dir, "scheduler.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
port: 8080
log:
  level: debug
report:
  output: json
scheduler:
  algorithms: [sjf]
cache:
  enabled: false
`), 0o644))
	t.Setenv("OS_SCHEDULER_PORT", "7070")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 7070, cfg.Port)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.Output)
	assert.Equal(t, []string{"sjf"}, cfg.Algorithms)
	assert.False(t, cfg.CacheEnabled)
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("OS_SCHEDULER_LOG_LEVEL=warn\n"), 0o644))
	t.Cleanup(func() { os.Unsetenv("OS_SCHEDULER_LOG_LEVEL") })

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestLoadErrors(t *testing.T) {
	chdir(t, t.TempDir())

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	t.Setenv("OS_SCHEDULER_PORT", "0")
	_, err = Load("")
	assert.ErrorContains(t, err, "invalid port")
}

func TestGetSchedulerConfigLoadsOnce(t *testing.T) {
	chdir(t, t.TempDir())

	first, err := GetSchedulerConfig()
	require.NoError(t, err)
	assert.Equal(t, 9095, first.Port)

	t.Setenv("OS_SCHEDULER_PORT", "7070")
	second, err := GetSchedulerConfig()
	require.NoError(t, err)
	assert.Same(t, first, second)
	assert.Equal(t, 9095, second.Port)
}

// chdir changes the working directory for the duration of the test
// (equivalent of testing.T.Chdir, which requires Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatal(err)
		}
	})
}
