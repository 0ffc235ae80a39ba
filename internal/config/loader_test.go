package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestExpandEnv(t *testing.T) {
	t.Setenv("TWEETCRAFT_TEST_SET", "value")

	assert.Equal(t, "a=value", expandEnv("a=${TWEETCRAFT_TEST_SET}"))
	assert.Equal(t, "a=value", expandEnv("a=${TWEETCRAFT_TEST_SET:other}"))
	assert.Equal(t, "a=fallback", expandEnv("a=${TWEETCRAFT_TEST_UNSET:fallback}"))
	assert.Equal(t, "a=", expandEnv("a=${TWEETCRAFT_TEST_UNSET:}"))
	assert.Equal(t, "a=${TWEETCRAFT_TEST_UNSET}", expandEnv("a=${TWEETCRAFT_TEST_UNSET}"))
}

func TestLoadFromLayersFilesAndDefaults(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("APP_ENV", "staging")
	t.Setenv("TWEETCRAFT_TEST_KEY", "gsk-test")

	writeFile(t, dir, "config.yaml", `
llm:
  default_provider: groq
  providers:
    groq:
      api_key: ${TWEETCRAFT_TEST_KEY}
      model: llama3-8b-8192
server:
  http:
    port: 9000
`)
	writeFile(t, dir, "config.staging.yaml", `
server:
  http:
    port: 9100
`)

	cfg, err := LoadFrom(dir)
	require.NoError(t, err)

	assert.Equal(t, 9100, cfg.Server.HTTP.Port)
	assert.Equal(t, "0.0.0.0:9100", cfg.Server.HTTP.Addr())

	groq := cfg.LLM.Providers["groq"]
	assert.Equal(t, "gsk-test", groq.APIKey)
	assert.True(t, groq.HasCredential())
	assert.Equal(t, "llama3-8b-8192", groq.Model)

	assert.InDelta(t, 0.7, cfg.Generation.Temperature, 1e-9)
	assert.InDelta(t, 1.0, cfg.Generation.TopP, 1e-9)
	assert.Equal(t, 200, cfg.Generation.BioMaxTokens)
	assert.Equal(t, 150, cfg.Generation.ChatMaxTokens)
	assert.Equal(t, 30*time.Second, cfg.Server.HTTP.ReadTimeout)
	assert.Equal(t, "/metrics", cfg.Observability.Metrics.Path)
}

func TestLoadFromMissingBaseFile(t *testing.T) {
	_, err := LoadFrom(t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config.yaml")
}

func TestValidate(t *testing.T) {
	cfg := &Config{
		LLM: LLMConfig{
			DefaultProvider: "groq",
			Providers:       map[string]ProviderConfig{},
		},
		Generation: GenerationConfig{BioMaxTokens: 200, ChatMaxTokens: 150},
	}
	require.Error(t, cfg.Validate())

	cfg.LLM.Providers["groq"] = ProviderConfig{}
	require.NoError(t, cfg.Validate())

	cfg.Generation.ChatMaxTokens = 0
	require.Error(t, cfg.Validate())
}

func TestHasCredential(t *testing.T) {
	assert.False(t, ProviderConfig{}.HasCredential())
	assert.False(t, ProviderConfig{APIKey: "  "}.HasCredential())
	assert.False(t, ProviderConfig{APIKey: "${GROQ_API_KEY}"}.HasCredential())
	assert.True(t, ProviderConfig{APIKey: "gsk-123"}.HasCredential())
}
