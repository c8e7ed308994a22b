package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, Default(), cfg)
	assert.Equal(t, 30, cfg.TimeLimitSeconds())
	assert.Equal(t, 1500*time.Millisecond, cfg.Quiz.FeedbackDelay.Std())
}

func TestLoad_File(t *testing.T) {
	p := writeConfig(t, `
quiz:
  time_limit: 45s
  feedback_delay: 2s
ui:
  theme: light
log:
  level: debug
  format: pretty
  file: /tmp/blitzquiz.log
`)
	cfg, err := Load(p)
	require.NoError(t, err)

	assert.Equal(t, 45, cfg.TimeLimitSeconds())
	assert.Equal(t, 2*time.Second, cfg.Quiz.FeedbackDelay.Std())
	assert.Equal(t, 2*time.Second, cfg.Quiz.ToastDuration.Std(), "unset keys keep defaults")
	assert.Equal(t, "light", cfg.UI.Theme)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "pretty", cfg.Log.Format)
	assert.Equal(t, "/tmp/blitzquiz.log", cfg.Log.File)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	p := writeConfig(t, "quiz:\n  time_limit: 45s\nui:\n  theme: light\n")
	t.Setenv(EnvTimeLimit, "10s")
	t.Setenv(EnvTheme, "dark")
	t.Setenv(EnvLogLevel, "warn")

	cfg, err := Load(p)
	require.NoError(t, err)
	assert.Equal(t, 10, cfg.TimeLimitSeconds())
	assert.Equal(t, "dark", cfg.UI.Theme)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoad_PathFromEnv(t *testing.T) {
	p := writeConfig(t, "ui:\n  theme: light\n")
	t.Setenv(EnvConfigPath, p)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "light", cfg.UI.Theme)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
		env  map[string]string
	}{
		{name: "bad yaml", body: "quiz: [unclosed"},
		{name: "bad duration", body: "quiz:\n  time_limit: soon\n"},
		{name: "sub-second limit", body: "quiz:\n  time_limit: 500ms\n"},
		{name: "fractional limit", body: "quiz:\n  time_limit: 1.5s\n"},
		{name: "unknown theme", body: "ui:\n  theme: solarized\n"},
		{name: "unknown log format", body: "log:\n  format: xml\n"},
		{name: "bad env duration", body: "", env: map[string]string{EnvFeedbackDelay: "later"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load(writeConfig(t, tt.body))
			assert.Error(t, err)
		})
	}
}

func TestDuration_YAMLRoundTrip(t *testing.T) {
	out, err := yaml.Marshal(Default())
	require.NoError(t, err)
	assert.Contains(t, string(out), "time_limit: 30s")
	assert.Contains(t, string(out), "feedback_delay: 1.5s")
}
