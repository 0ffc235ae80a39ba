package wire

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tweetcraft-ai-api/internal/config"
	"tweetcraft-ai-api/internal/infrastructure/llm"
)

func TestInitializeApp(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{}
	cfg.LLM.DefaultProvider = "groq"
	cfg.LLM.Providers = map[string]config.ProviderConfig{"groq": {APIKey: "gsk-test", Timeout: 5 * time.Second}}

	app, cleanup, err := InitializeApp(cfg)
	require.NoError(t, err)
	defer cleanup()

	w := httptest.NewRecorder()
	app.Engine().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ready", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestProvideCompletionClient(t *testing.T) {
	cfg := &config.Config{}
	cfg.LLM.DefaultProvider = "groq"
	assert.NotNil(t, ProvideCompletionClient(llm.NewEinoFactory(cfg)))
	assert.NotNil(t, ProvideBioListener())
}

func TestProviderTimeoutFollowsDefaultProvider(t *testing.T) {
	cfg := &config.Config{}
	cfg.LLM.DefaultProvider = "groq"
	cfg.LLM.Providers = map[string]config.ProviderConfig{
		"groq":  {Timeout: 12 * time.Second},
		"local": {Timeout: 90 * time.Second},
	}
	assert.Equal(t, 12*time.Second, providerTimeout(llm.NewEinoFactory(cfg)))

	cfg.LLM.DefaultProvider = "local"
	assert.Equal(t, 90*time.Second, providerTimeout(llm.NewEinoFactory(cfg)))

	cfg.LLM.DefaultProvider = "missing"
	assert.Zero(t, providerTimeout(llm.NewEinoFactory(cfg)))
}
