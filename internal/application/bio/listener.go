package bio

import (
	"context"
	"log/slog"

	"tweetcraft-ai-api/internal/domain/service"
	"tweetcraft-ai-api/pkg/logger"
)

// Listener 接收生成结果与失败通知，由展示层实现
type Listener interface {
	OnBiosGenerated(ctx context.Context, bios []string)
	OnError(ctx context.Context, message string)
}

// NopListener 忽略所有通知
type NopListener struct{}

func (NopListener) OnBiosGenerated(context.Context, []string) {}
func (NopListener) OnError(context.Context, string)           {}

// LogListener 将通知写为结构化日志
type LogListener struct {
	Logger *slog.Logger
}

func (l LogListener) OnBiosGenerated(ctx context.Context, bios []string) {
	l.log(ctx).InfoContext(ctx, "bios generated",
		"workflow", service.WorkflowFromContext(ctx),
		"count", len(bios),
	)
}

func (l LogListener) OnError(ctx context.Context, message string) {
	l.log(ctx).WarnContext(ctx, "bio request failed",
		"workflow", service.WorkflowFromContext(ctx),
		"error", message,
	)
}

func (l LogListener) log(ctx context.Context) *slog.Logger {
	if l.Logger != nil {
		return l.Logger
	}
	return logger.FromContext(ctx)
}
