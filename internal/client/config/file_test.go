package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestParseFile_JSON(t *testing.T) {
	path := writeTempFile(t, "cfg.json", `{
		"api_base_url": "http://localhost:3000",
		"request_timeout": "5s",
		"page_size": 3,
		"success_message_ttl": 100000000,
		"online_check_interval": "1m",
		"log_level": "info"
	}`)

	cfg := defaults()
	parseFile(cfg, []string{"-config", path})

	assert.Equal(t, "http://localhost:3000", cfg.APIBaseURL)
	assert.Equal(t, 5*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 3, cfg.PageSize)
	assert.Equal(t, 100*time.Millisecond, cfg.SuccessMessageTTL)
	assert.Equal(t, time.Minute, cfg.OnlineCheckInterval)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestParseFile_YAML(t *testing.T) {
	path := writeTempFile(t, "cfg.yaml", "api_base_url: http://yaml-host\nsuccess_message_ttl: 1s\n")

	cfg := defaults()
	parseFile(cfg, []string{"-c", path})

	assert.Equal(t, "http://yaml-host", cfg.APIBaseURL)
	assert.Equal(t, time.Second, cfg.SuccessMessageTTL)
	// keys absent from the file keep their defaults
	assert.Equal(t, 10, cfg.PageSize)
	assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
}

func TestParseFile_NoFlag_NoChanges(t *testing.T) {
	cfg := &Config{APIBaseURL: "keep", PageSize: 42}
	parseFile(cfg, []string{"-a", "x"})

	assert.Equal(t, "keep", cfg.APIBaseURL)
	assert.Equal(t, 42, cfg.PageSize)
}

func TestParseFile_Panics(t *testing.T) {
	t.Run("invalid JSON", func(t *testing.T) {
		path := writeTempFile(t, "bad.json", `{ this is not valid json`)
		require.Panics(t, func() { parseFile(defaults(), []string{"-c", path}) })
	})

	t.Run("invalid YAML duration", func(t *testing.T) {
		path := writeTempFile(t, "bad.yml", "request_timeout: whenever\n")
		require.Panics(t, func() { parseFile(defaults(), []string{"-c", path}) })
	})

	t.Run("missing file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "absent.json")
		require.Panics(t, func() { parseFile(defaults(), []string{"-c", path}) })
	})
}

func TestParseFile_ExplicitZeroIsApplied(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{name: "json", file: "cfg.json", content: `{"online_check_interval": 0}`},
		{name: "yaml", file: "cfg.yaml", content: "online_check_interval: 0\n"},
		{name: "yaml string", file: "cfg.yml", content: "online_check_interval: 0s\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeTempFile(t, tt.file, tt.content)

			cfg := defaults()
			parseFile(cfg, []string{"-c", path})

			assert.Equal(t, time.Duration(0), cfg.OnlineCheckInterval)
			assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
		})
	}
}

func TestParseFile_NullKeepsPrevious(t *testing.T) {
	path := writeTempFile(t, "cfg.json", `{"api_base_url": null, "page_size": null}`)

	cfg := defaults()
	parseFile(cfg, []string{"-c", path})

	assert.Empty(t, cmp.Diff(defaults(), cfg))
}
