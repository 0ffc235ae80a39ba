package port

import (
	"context"

	"github.com/cloudwego/eino/components/model"
)

// ChatModelFactory 定义补全客户端对 LLM ChatModel 的最小依赖（port）。
// name 为空时返回默认 Provider 的模型。
type ChatModelFactory interface {
	Get(ctx context.Context, name string) (model.BaseChatModel, error)
	DefaultProvider() string
}
