package llm

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"tweetcraft-ai-api/internal/config"

	"github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/cloudwego/eino/components/model"
)

// defaultTimeout 单次补全请求的上限；补全调用没有重试，必须有界
const defaultTimeout = 30 * time.Second

// EinoFactory 管理多个 Eino ChatModel 客户端实例
type EinoFactory struct {
	config *config.LLMConfig
	models map[string]model.BaseChatModel
	mu     sync.RWMutex
}

// NewEinoFactory 创建 Eino LLM 工厂
func NewEinoFactory(cfg *config.Config) *EinoFactory {
	return &EinoFactory{
		config: &cfg.LLM,
		models: make(map[string]model.BaseChatModel),
	}
}

// DefaultProvider 返回默认 Provider 名称
func (f *EinoFactory) DefaultProvider() string {
	return strings.TrimSpace(f.config.DefaultProvider)
}

// Provider 返回指定 Provider 的配置
func (f *EinoFactory) Provider(name string) (config.ProviderConfig, bool) {
	if name == "" {
		name = f.DefaultProvider()
	}
	p, ok := f.config.Providers[name]
	return p, ok
}

// Get 获取指定名称的 ChatModel，如果未指定则返回默认客户端
func (f *EinoFactory) Get(ctx context.Context, name string) (model.BaseChatModel, error) {
	if name == "" {
		name = f.DefaultProvider()
	}

	f.mu.RLock()
	m, ok := f.models[name]
	f.mu.RUnlock()
	if ok {
		return m, nil
	}

	// 惰性加载
	f.mu.Lock()
	defer f.mu.Unlock()

	if m, ok = f.models[name]; ok {
		return m, nil
	}

	providerCfg, ok := f.config.Providers[name]
	if !ok {
		return nil, fmt.Errorf("provider %s not found in LLM config", name)
	}
	if !providerCfg.HasCredential() {
		return nil, fmt.Errorf("api key for provider %s is not configured", name)
	}

	chatModel, err := openai.NewChatModel(ctx, chatModelConfig(providerCfg))
	if err != nil {
		return nil, fmt.Errorf("failed to create eino chat model for %s: %w", name, err)
	}

	f.models[name] = chatModel
	return chatModel, nil
}

func chatModelConfig(p config.ProviderConfig) *openai.ChatModelConfig {
	timeout := p.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	cfg := &openai.ChatModelConfig{
		APIKey:  p.APIKey,
		BaseURL: p.BaseURL,
		Model:   p.Model,
		Timeout: timeout,
	}
	if p.MaxTokens > 0 {
		cfg.MaxTokens = ptr(p.MaxTokens)
	}
	if p.Temperature > 0 {
		cfg.Temperature = ptr(float32(p.Temperature))
	}
	if p.TopP > 0 {
		cfg.TopP = ptr(float32(p.TopP))
	}
	return cfg
}

func ptr[T any](v T) *T {
	return &v
}
