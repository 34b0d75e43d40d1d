package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envMap(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestFromEnv_Defaults(t *testing.T) {
	cfg, err := FromEnv(envMap(nil))
	require.NoError(t, err)

	assert.Equal(t, "8000", cfg.Port)
	assert.Equal(t, ":8000", cfg.Addr())
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
	assert.Equal(t, 10*time.Second, cfg.LoadTimeout)
	assert.Empty(t, cfg.DatabaseURL)
	assert.Empty(t, cfg.DataFile)
	assert.Empty(t, cfg.MetricsAddr)
}

func TestFromEnv_Overrides(t *testing.T) {
	cfg, err := FromEnv(envMap(map[string]string{
		"PORT":         "9090",
		"DATA_FILE":    "apps.json",
		"DATABASE_URL": "postgres://localhost/apps",
		"CORS_ORIGINS": "https://a.example, ,https://b.example",
		"METRICS_ADDR": ":9100",
		"LOG_LEVEL":    "DEBUG",
		"LOAD_TIMEOUT": "3s",
	}))
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "apps.json", cfg.DataFile)
	assert.Equal(t, "postgres://localhost/apps", cfg.DatabaseURL)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins)
	assert.Equal(t, ":9100", cfg.MetricsAddr)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 3*time.Second, cfg.LoadTimeout)
}

func TestFromEnv_Invalid(t *testing.T) {
	tests := map[string]map[string]string{
		"port not numeric":  {"PORT": "http"},
		"port out of range": {"PORT": "70000"},
		"log level":         {"LOG_LEVEL": "verbose"},
		"timeout":           {"LOAD_TIMEOUT": "soon"},
		"negative timeout":  {"LOAD_TIMEOUT": "-1s"},
	}

	for name, env := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := FromEnv(envMap(env))
			assert.Error(t, err)
		})
	}
}

func TestLoad_MissingEnvFileIsIgnored(t *testing.T) {
	t.Setenv("PORT", "8123")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, "8123", cfg.Port)
}

func TestLoad_ReadsEnvFile(t *testing.T) {
	t.Setenv("METRICS_ADDR", "")
	os.Unsetenv("METRICS_ADDR")

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("METRICS_ADDR=:9200\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":9200", cfg.MetricsAddr)
}
