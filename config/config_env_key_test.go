package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"directory": map[string]any{
			"baseUrl":   "",
			"userAgent": "",
		},
		"forms": map[string]any{
			"maxLinkedCommunities": 5,
			"draftTtl":             "30m",
		},
		"pubsub": map[string]any{
			"topicId": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "DIRECTORY_BASEURL", want: "directory.baseUrl"},
		{envKey: "DIRECTORY_USERAGENT", want: "directory.userAgent"},
		{envKey: "FORMS_MAXLINKEDCOMMUNITIES", want: "forms.maxLinkedCommunities"},
		{envKey: "FORMS_DRAFTTTL", want: "forms.draftTtl"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
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

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.Directory.BaseURL = " https://directory.example.com/ "
	cfg.Metrics = &MetricsConfig{Enabled: true}

	require.NoError(t, cfg.applyDefaults())

	assert.Equal(t, "https://directory.example.com", cfg.Directory.BaseURL)
	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	require.NotNil(t, cfg.Forms)
	assert.Equal(t, 5, cfg.Forms.MaxLinkedCommunities)
	assert.Equal(t, 30*time.Minute, cfg.Forms.DraftTTL)
	assert.Equal(t, defaultMaxDrafts, cfg.Forms.MaxDrafts)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.NotEmpty(t, cfg.Env.InstanceID)
}

func TestApplyDefaults_WorkerPortClash(t *testing.T) {
	cfg := &Config{}
	cfg.Directory.BaseURL = "https://directory.example.com"
	cfg.HTTP.Port = 8080
	cfg.Worker = &WorkerConfig{Enabled: true, Port: 8080}

	err := cfg.applyDefaults()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "worker.port")
}

func TestApplyDefaults_RequiresDirectoryBaseURL(t *testing.T) {
	cfg := &Config{}

	err := cfg.applyDefaults()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "directory.baseUrl")
}
