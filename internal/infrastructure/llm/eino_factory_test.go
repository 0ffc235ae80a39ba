package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tweetcraft-ai-api/internal/config"
)

func newFactory(providers map[string]config.ProviderConfig) *EinoFactory {
	return NewEinoFactory(&config.Config{
		LLM: config.LLMConfig{DefaultProvider: "groq", Providers: providers},
	})
}

// openAICompatibleServer 模拟 OpenAI 兼容的 /chat/completions 接口
func openAICompatibleServer(t *testing.T, status int, body string, seen *map[string]any) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer gsk-test", r.Header.Get("Authorization"))
		if seen != nil {
			assert.NoError(t, json.NewDecoder(r.Body).Decode(seen))
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestGetUnknownProvider(t *testing.T) {
	_, err := newFactory(map[string]config.ProviderConfig{}).Get(context.Background(), "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "provider groq not found")
}

func TestGetWithoutCredential(t *testing.T) {
	f := newFactory(map[string]config.ProviderConfig{
		"groq": {APIKey: "", Model: "llama3-8b-8192"},
	})
	_, err := f.Get(context.Background(), "groq")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "api key")
}

func TestGetCachesModels(t *testing.T) {
	f := newFactory(map[string]config.ProviderConfig{
		"groq": {APIKey: "gsk-test", BaseURL: "http://127.0.0.1:1", Model: "llama3-8b-8192"},
	})
	first, err := f.Get(context.Background(), "")
	require.NoError(t, err)
	second, err := f.Get(context.Background(), "groq")
	require.NoError(t, err)
	assert.Same(t, first, second)
	assert.Equal(t, "groq", f.DefaultProvider())
}

func TestChatModelConfigDefaults(t *testing.T) {
	cfg := chatModelConfig(config.ProviderConfig{APIKey: "k", Model: "m"})
	assert.Equal(t, defaultTimeout, cfg.Timeout)
	assert.Nil(t, cfg.MaxTokens)
	assert.Nil(t, cfg.Temperature)
	assert.Nil(t, cfg.TopP)

	cfg = chatModelConfig(config.ProviderConfig{MaxTokens: 200, Temperature: 0.7, TopP: 1, Timeout: time.Second})
	require.NotNil(t, cfg.MaxTokens)
	assert.Equal(t, 200, *cfg.MaxTokens)
	assert.InDelta(t, 0.7, float64(*cfg.Temperature), 1e-6)
	assert.InDelta(t, 1.0, float64(*cfg.TopP), 1e-6)
	assert.Equal(t, time.Second, cfg.Timeout)
}

func TestGenerateAgainstOpenAICompatibleEndpoint(t *testing.T) {
	var seen map[string]any
	srv := openAICompatibleServer(t, http.StatusOK, `{
		"id": "chatcmpl-1",
		"object": "chat.completion",
		"created": 1700000000,
		"model": "llama3-8b-8192",
		"choices": [{"index": 0, "message": {"role": "assistant", "content": "  Hello there  "}, "finish_reason": "stop"}],
		"usage": {"prompt_tokens": 12, "completion_tokens": 3, "total_tokens": 15}
	}`, &seen)

	f := newFactory(map[string]config.ProviderConfig{
		"groq": {APIKey: "gsk-test", BaseURL: srv.URL, Model: "llama3-8b-8192"},
	})
	chatModel, err := f.Get(context.Background(), "")
	require.NoError(t, err)

	out, err := chatModel.Generate(context.Background(),
		[]*schema.Message{schema.UserMessage("Say hello")},
		model.WithTemperature(0.7), model.WithMaxTokens(150), model.WithTopP(1),
	)
	require.NoError(t, err)
	assert.Equal(t, "  Hello there  ", out.Content)

	assert.Equal(t, "llama3-8b-8192", seen["model"])
	assert.EqualValues(t, 150, seen["max_tokens"])
	assert.InDelta(t, 0.7, seen["temperature"], 1e-6)
	msgs, ok := seen["messages"].([]any)
	require.True(t, ok)
	require.Len(t, msgs, 1)
	first := msgs[0].(map[string]any)
	assert.Equal(t, "user", first["role"])
	assert.Equal(t, "Say hello", first["content"])
}

func TestGenerateSurfacesProviderError(t *testing.T) {
	srv := openAICompatibleServer(t, http.StatusUnauthorized,
		`{"error": {"message": "Invalid API Key", "type": "invalid_request_error", "code": "invalid_api_key"}}`, nil)

	f := newFactory(map[string]config.ProviderConfig{
		"groq": {APIKey: "gsk-test", BaseURL: srv.URL, Model: "llama3-8b-8192"},
	})
	chatModel, err := f.Get(context.Background(), "")
	require.NoError(t, err)

	_, err = chatModel.Generate(context.Background(), []*schema.Message{schema.UserMessage("hi")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid API Key")
}
