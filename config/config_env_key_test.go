package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"pubsub": map[string]any{
			"topicId": "",
		},
		"lifecycle": map[string]any{
			"thresholdDays": 90,
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "LIFECYCLE_THRESHOLDDAYS", want: "lifecycle.thresholdDays"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

const testConfigYAML = `
env:
  env: develop
  log:
    level: debug
http:
  port: 8080
lifecycle:
  thresholdDays: 90
  responseTimeout: 10s
  simulatedDelay: 2s
`

func TestLoadWithEnv_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(testConfigYAML), 0o600))

	t.Setenv("FREEDGE_LIFECYCLE_THRESHOLDDAYS", "120")
	t.Setenv("FREEDGE_HTTP_PORT", "9090")

	cfg, err := LoadWithEnv[Config]("config", dir)
	require.NoError(t, err)

	assert.Equal(t, "develop", cfg.Env.Env)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	require.NotNil(t, cfg.Lifecycle)
	assert.Equal(t, 120, cfg.Lifecycle.ThresholdDays)
	assert.Equal(t, 10*time.Second, cfg.Lifecycle.ResponseTimeout)
	assert.Equal(t, 2*time.Second, cfg.Lifecycle.SimulatedDelay)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	_, err := LoadWithEnv[Config]("missing", t.TempDir())
	assert.Error(t, err)
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.applyDefaults()

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, defaultThresholdDays, cfg.Lifecycle.ThresholdDays)
	assert.Equal(t, defaultSuspectAfterDays, cfg.Lifecycle.SuspectAfterDays)
	assert.Equal(t, defaultResponseTimeout, cfg.Lifecycle.ResponseTimeout)
	assert.Equal(t, defaultPreviewTTL, cfg.Importer.PreviewTTL)
	assert.Equal(t, int64(defaultMaxUploadBytes), cfg.Importer.MaxUploadBytes)
	assert.Equal(t, defaultMetricsPath, cfg.Metrics.Path)
	assert.NotNil(t, cfg.PubSub)
	assert.NotNil(t, cfg.Database)
}
