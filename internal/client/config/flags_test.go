package config

import (
	"os"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		expected    *Config
		name        string
		args        []string
		expectPanic bool
	}{
		{
			name: "all flags",
			args: []string{"-a", "http://127.0.0.1:3000", "-t", "2", "-n", "20", "-m", "500", "-i", "0", "-l", "debug"},
			expected: &Config{
				APIBaseURL:          "http://127.0.0.1:3000",
				RequestTimeout:      2 * time.Second,
				PageSize:            20,
				SuccessMessageTTL:   500 * time.Millisecond,
				OnlineCheckInterval: 0,
				LogLevel:            "debug",
			},
		},
		{
			name:     "unknown flags are ignored, defaults kept",
			args:     []string{"-c", "cfg.json", "-z", "1"},
			expected: defaults(),
		},
		{
			name:        "incorrect timeout",
			args:        []string{"-t", "abc"},
			expectPanic: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaults()

			if tt.expectPanic {
				require.Panics(t, func() { parseFlags(cfg, tt.args) })
				return
			}

			require.NotPanics(t, func() { parseFlags(cfg, tt.args) })
			assert.Empty(t, cmp.Diff(tt.expected, cfg))
		})
	}
}

func TestParseFlags_UnsetDurationsKeepSubSecondValues(t *testing.T) {
	cfg := defaults()
	cfg.RequestTimeout = 1500 * time.Millisecond
	cfg.SuccessMessageTTL = 250*time.Millisecond + 500*time.Microsecond
	cfg.OnlineCheckInterval = 500 * time.Millisecond

	parseFlags(cfg, []string{"-a", "http://other"})

	assert.Equal(t, "http://other", cfg.APIBaseURL)
	assert.Equal(t, 1500*time.Millisecond, cfg.RequestTimeout)
	assert.Equal(t, 250*time.Millisecond+500*time.Microsecond, cfg.SuccessMessageTTL)
	assert.Equal(t, 500*time.Millisecond, cfg.OnlineCheckInterval)
}

func TestLoadConfig_FileSubSecondDurationsSurviveFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	path := writeTempFile(t, "cfg.yaml", "request_timeout: 1500ms\nonline_check_interval: 500ms\nsuccess_message_ttl: 250ms\n")
	os.Args = []string{"postdesk", "-c", path}

	cfg := LoadConfig()

	assert.Equal(t, 1500*time.Millisecond, cfg.RequestTimeout)
	assert.Equal(t, 500*time.Millisecond, cfg.OnlineCheckInterval)
	assert.Equal(t, 250*time.Millisecond, cfg.SuccessMessageTTL)
}

func TestLoadConfig_FlagOverridesFileDuration(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	path := writeTempFile(t, "cfg.yaml", "request_timeout: 1500ms\n")
	os.Args = []string{"postdesk", "-c", path, "-t", "4"}

	cfg := LoadConfig()

	assert.Equal(t, 4*time.Second, cfg.RequestTimeout)
}
