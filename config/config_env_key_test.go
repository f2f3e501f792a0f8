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
		"secretKey": map[string]any{
			"access": "",
		},
		"kakao": map[string]any{
			"clientSecret": "",
			"stateTTL":     "10m",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "KAKAO_CLIENTSECRET", want: "kakao.clientSecret"},
		{envKey: "KAKAO_STATETTL", want: "kakao.stateTTL"},
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

func TestLoadWithEnv_EnvOverridesYAML(t *testing.T) {
	dir := t.TempDir()
	yamlBody := []byte(`
kakao:
  clientId: "from-yaml"
  clientSecret: "from-yaml"
  stateTTL: "10m"
push:
  concurrency: 8
  timeout: "5s"
`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "test.yaml"), yamlBody, 0o600))
	t.Chdir(dir)
	t.Setenv("KAKAO_CLIENTSECRET", "from-env")
	t.Setenv("PUSH_CONCURRENCY", "16")

	cfg, err := LoadWithEnv[Config]("test")
	require.NoError(t, err)

	require.NotNil(t, cfg.Kakao)
	assert.Equal(t, "from-yaml", cfg.Kakao.ClientID)
	assert.Equal(t, "from-env", cfg.Kakao.ClientSecret)
	assert.Equal(t, 10*time.Minute, cfg.Kakao.StateTTL)
	require.NotNil(t, cfg.Push)
	assert.Equal(t, 16, cfg.Push.Concurrency)
	assert.Equal(t, 5*time.Second, cfg.Push.Timeout)
}

func TestLoadWithEnv_ShippedRecommendationDefaults(t *testing.T) {
	cfg, err := LoadWithEnv[Config]("config")

	require.NoError(t, err)
	require.NotNil(t, cfg.Recommendation)
	assert.Zero(t, cfg.Recommendation.RadiusKm, "nearby widening must be opt-in")
	assert.Zero(t, cfg.Recommendation.Limit, "recommendations are uncapped by default")
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("absent")

	assert.Error(t, err)
}

func TestBuildReplicasFromEnv(t *testing.T) {
	t.Setenv("POSTGRES_REPLICAS_0_HOST", "replica-0")
	t.Setenv("POSTGRES_REPLICAS_0_PORT", "5432")
	t.Setenv("POSTGRES_REPLICAS_0_USERNAME", "reader")
	t.Setenv("POSTGRES_REPLICAS_1_HOST", "replica-1")

	replicas := buildReplicasFromEnv()

	require.Len(t, replicas, 1)
	assert.Equal(t, "replica-0", replicas[0].Host)
	assert.Equal(t, "5432", replicas[0].Port)
	assert.Equal(t, "reader", replicas[0].UserName)
}
