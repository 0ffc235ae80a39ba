package wire

import (
	"time"

	"tweetcraft-ai-api/internal/application/bio"
	"tweetcraft-ai-api/internal/application/completion"
	"tweetcraft-ai-api/internal/infrastructure/llm"
)

// ProvideCompletionClient 提供补全客户端，超时取默认 Provider 的配置
func ProvideCompletionClient(factory *llm.EinoFactory) *completion.Client {
	return completion.NewClient(factory).WithTimeout(providerTimeout(factory))
}

// providerTimeout 默认 Provider 未配置超时时返回 0，由客户端沿用默认值
func providerTimeout(factory *llm.EinoFactory) time.Duration {
	p, ok := factory.Provider("")
	if !ok {
		return 0
	}
	return p.Timeout
}

// ProvideBioListener 提供简介事件监听器
func ProvideBioListener() bio.Listener {
	return bio.LogListener{}
}
