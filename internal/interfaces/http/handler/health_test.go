package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"tweetcraft-ai-api/internal/config"
)

func readyStatus(cfg *config.Config) int {
	e := gin.New()
	e.GET("/ready", NewHealthHandler(cfg).Ready)
	w := httptest.NewRecorder()
	e.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ready", nil))
	return w.Code
}

func TestReady(t *testing.T) {
	withKey := &config.Config{LLM: config.LLMConfig{
		DefaultProvider: "groq",
		Providers:       map[string]config.ProviderConfig{"groq": {APIKey: "gsk-live"}},
	}}
	assert.Equal(t, http.StatusOK, readyStatus(withKey))

	placeholder := &config.Config{LLM: config.LLMConfig{
		DefaultProvider: "groq",
		Providers:       map[string]config.ProviderConfig{"groq": {APIKey: "${GROQ_API_KEY}"}},
	}}
	assert.Equal(t, http.StatusServiceUnavailable, readyStatus(placeholder))

	missing := &config.Config{LLM: config.LLMConfig{DefaultProvider: "groq"}}
	assert.Equal(t, http.StatusServiceUnavailable, readyStatus(missing))
	assert.Equal(t, http.StatusServiceUnavailable, readyStatus(nil))
}

func TestPageIndex(t *testing.T) {
	e := gin.New()
	e.GET("/", NewPageHandler().Index)
	w := httptest.NewRecorder()
	e.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, w.Body.String(), "TweetCraft AI")
}
