package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), *cfg)
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
store:
  url: nats://store.internal:4222
  bucket: team_projects
  request_timeout: 3s
log:
  level: debug
  format: json
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "nats://store.internal:4222", cfg.Store.URL)
	assert.Equal(t, "team_projects", cfg.Store.Bucket)
	assert.Equal(t, 3*time.Second, cfg.Store.RequestTimeout)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := writeConfig(t, "store:\n  bucket: other\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "other", cfg.Store.Bucket)
	assert.Equal(t, DefaultStoreURL, cfg.Store.URL)
	assert.Equal(t, DefaultRequestTimeout, cfg.Store.RequestTimeout)
	assert.Equal(t, DefaultLogLevel, cfg.Log.Level)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "store:\n  url: nats://file:4222\n")
	t.Setenv("PROJECTS_STORE_URL", "nats://env:4222")
	t.Setenv("PROJECTS_STORE_REQUEST_TIMEOUT", "45s")
	t.Setenv("PROJECTS_LOG_LEVEL", "warn")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "nats://env:4222", cfg.Store.URL)
	assert.Equal(t, 45*time.Second, cfg.Store.RequestTimeout)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"bad log level", "log:\n  level: loud\n"},
		{"bad log format", "log:\n  format: xml\n"},
		{"negative timeout", "store:\n  request_timeout: -1s\n"},
		{"malformed yaml", "store: [\n"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, test.content))
			assert.Error(t, err)
		})
	}
}

func TestLoad_DirectoryRejected(t *testing.T) {
	_, err := Load(t.TempDir())
	assert.Error(t, err)
}

func TestEnvKey(t *testing.T) {
	tests := []struct {
		env      string
		expected string
	}{
		{"PROJECTS_STORE_URL", "store.url"},
		{"PROJECTS_STORE_REQUEST_TIMEOUT", "store.request_timeout"},
		{"PROJECTS_LOG_FORMAT", "log.format"},
		{"PROJECTS_DEBUG", "debug"},
	}

	for _, test := range tests {
		assert.Equal(t, test.expected, envKey(test.env), "envKey(%s)", test.env)
	}
}

func TestValidate(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	cfg.Store.URL = ""
	assert.ErrorIs(t, cfg.Validate(), ErrEmptyStoreURL)

	cfg = Default()
	cfg.Store.Bucket = ""
	assert.ErrorIs(t, cfg.Validate(), ErrEmptyBucket)

	cfg = Default()
	cfg.Store.RequestTimeout = 0
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidTimeout)
}
