// Package completion 封装对外部文本补全服务的单次同步调用
package completion

import (
	"context"
	"fmt"
	"strings"
	"time"

	einocb "github.com/cloudwego/eino/callbacks"
	"github.com/cloudwego/eino/components"
	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"tweetcraft-ai-api/internal/config"
	"tweetcraft-ai-api/internal/domain/service"
	workflowport "tweetcraft-ai-api/internal/workflow/port"
	apperrors "tweetcraft-ai-api/pkg/errors"
	"tweetcraft-ai-api/pkg/logger"
	"tweetcraft-ai-api/pkg/tracer"
)

// 生成参数默认值
const (
	DefaultModel         = "llama3-8b-8192"
	DefaultTemperature   = float32(0.7)
	DefaultTopP          = float32(1.0)
	DefaultBioMaxTokens  = 200
	DefaultChatMaxTokens = 150
)

// GenerationParameters 单次补全的生成参数
// Model 为空时使用 Provider 配置的模型
type GenerationParameters struct {
	Model       string
	Temperature float32
	MaxTokens   int
	TopP        float32
	Stop        []string
}

// BioParameters 简介生成参数
func BioParameters() GenerationParameters {
	return GenerationParameters{
		Model:       DefaultModel,
		Temperature: DefaultTemperature,
		MaxTokens:   DefaultBioMaxTokens,
		TopP:        DefaultTopP,
	}
}

// ChatParameters 对话与辅助功能的生成参数
func ChatParameters() GenerationParameters {
	return GenerationParameters{
		Model:       DefaultModel,
		Temperature: DefaultTemperature,
		MaxTokens:   DefaultChatMaxTokens,
		TopP:        DefaultTopP,
	}
}

// Profile 按配置生成的两组参数
type Profile struct {
	Bio  GenerationParameters
	Chat GenerationParameters
}

// NewProfile 从配置构建生成参数，缺省值回落到常量
func NewProfile(cfg *config.Config) Profile {
	p := Profile{Bio: BioParameters(), Chat: ChatParameters()}
	if cfg == nil {
		return p
	}
	if provider, ok := cfg.LLM.Providers[cfg.LLM.DefaultProvider]; ok && strings.TrimSpace(provider.Model) != "" {
		p.Bio.Model = strings.TrimSpace(provider.Model)
		p.Chat.Model = strings.TrimSpace(provider.Model)
	}
	g := cfg.Generation
	if g.Temperature > 0 {
		p.Bio.Temperature = float32(g.Temperature)
		p.Chat.Temperature = float32(g.Temperature)
	}
	if g.TopP > 0 {
		p.Bio.TopP = float32(g.TopP)
		p.Chat.TopP = float32(g.TopP)
	}
	if g.BioMaxTokens > 0 {
		p.Bio.MaxTokens = g.BioMaxTokens
	}
	if g.ChatMaxTokens > 0 {
		p.Chat.MaxTokens = g.ChatMaxTokens
	}
	return p
}

// Completion 一次成功补全的结果
type Completion struct {
	Text             string
	Model            string
	PromptTokens     int
	CompletionTokens int
	Duration         time.Duration
}

// Client 补全客户端
type Client struct {
	factory workflowport.ChatModelFactory
	timeout time.Duration
}

// NewClient 创建补全客户端
func NewClient(factory workflowport.ChatModelFactory) *Client {
	return &Client{factory: factory, timeout: 30 * time.Second}
}

// WithTimeout 返回使用指定超时的副本
func (c *Client) WithTimeout(d time.Duration) *Client {
	if d <= 0 {
		return c
	}
	cp := *c
	cp.timeout = d
	return &cp
}

// Complete 发送一条 user 消息并同步等待完整响应。
// 成功时返回去除首尾空白的首个候选文本；任何失败都包装为 CodeLLMCallFailed。
// 请求一旦发出不随调用方取消，只受超时约束。
func (c *Client) Complete(ctx context.Context, prompt string, params GenerationParameters) (*Completion, error) {
	if strings.TrimSpace(prompt) == "" {
		return nil, apperrors.Validation("prompt is required")
	}
	if c == nil || c.factory == nil {
		return nil, apperrors.Service(fmt.Errorf("completion client not configured"))
	}

	provider := c.factory.DefaultProvider()
	ctx = service.WithProvider(ctx, provider)

	ctx, span := tracer.Start(ctx, "completion.Complete", trace.WithAttributes(
		attribute.String("llm.provider", provider),
		attribute.String("llm.model", params.Model),
		attribute.String("eino.workflow", service.WorkflowFromContext(ctx)),
		attribute.Int("llm.max_tokens", params.MaxTokens),
		attribute.Int("llm.prompt_chars", len(prompt)),
	))
	defer span.End()

	fail := func(err error) (*Completion, error) {
		reason := ClassifyFailure(err)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		span.SetAttributes(attribute.String("llm.failure_reason", string(reason)))
		logger.Warn(ctx, "completion failed",
			"provider", provider,
			"model", params.Model,
			"reason", reason,
			"error", err.Error(),
		)
		return nil, apperrors.Service(err)
	}

	chatModel, err := c.factory.Get(ctx, provider)
	if err != nil {
		return fail(err)
	}

	callCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.timeout)
	defer cancel()
	// 直接调用模型时需要显式初始化，全局 callbacks 才会生效
	callCtx = einocb.InitCallbacks(callCtx, &einocb.RunInfo{
		Name:      "completion",
		Type:      provider,
		Component: components.ComponentOfChatModel,
	})

	start := time.Now()
	out, err := chatModel.Generate(callCtx, []*schema.Message{schema.UserMessage(prompt)}, buildModelOptions(params)...)
	if err != nil {
		return fail(err)
	}
	if out == nil {
		return fail(fmt.Errorf("empty llm response"))
	}

	res := &Completion{
		Text:     strings.TrimSpace(out.Content),
		Model:    params.Model,
		Duration: time.Since(start),
	}
	if out.ResponseMeta != nil && out.ResponseMeta.Usage != nil {
		res.PromptTokens = out.ResponseMeta.Usage.PromptTokens
		res.CompletionTokens = out.ResponseMeta.Usage.CompletionTokens
	}
	span.SetAttributes(
		attribute.Int("llm.prompt_tokens", res.PromptTokens),
		attribute.Int("llm.completion_tokens", res.CompletionTokens),
	)
	return res, nil
}

func buildModelOptions(p GenerationParameters) []model.Option {
	opts := make([]model.Option, 0, 5)
	if strings.TrimSpace(p.Model) != "" {
		opts = append(opts, model.WithModel(strings.TrimSpace(p.Model)))
	}
	if p.Temperature > 0 {
		opts = append(opts, model.WithTemperature(p.Temperature))
	}
	if p.MaxTokens > 0 {
		opts = append(opts, model.WithMaxTokens(p.MaxTokens))
	}
	if p.TopP > 0 {
		opts = append(opts, model.WithTopP(p.TopP))
	}
	if len(p.Stop) > 0 {
		opts = append(opts, model.WithStop(p.Stop))
	}
	return opts
}
