// Package bio 提供推特简介相关的提示词构建、响应解析与业务编排
package bio

import (
	"context"
	"strings"

	"tweetcraft-ai-api/internal/domain/entity"
	workflowprompt "tweetcraft-ai-api/internal/workflow/prompt"
)

// Delimiter 模型在一次响应中分隔多条简介的固定记号
const Delimiter = "|||"

var defaultPromptRegistry = workflowprompt.NewRegistry()

// BuildBioPrompt 渲染简介生成提示词。
// 输入文本原样透传，不做长度限制；调用方负责保证 topic 与 vibe 非空。
func BuildBioPrompt(req entity.BioRequest) (string, error) {
	hashtags := "not include hashtags"
	if req.IncludeHashtags {
		hashtags = "include hashtags"
	}
	emojis := "Do not include emojis"
	if req.IncludeEmojis {
		emojis = "Include relevant emojis"
	}
	return render(workflowprompt.PromptBioV1, map[string]any{
		"topic":    req.Topic,
		"vibe":     string(req.Vibe),
		"length":   req.Length.Clause(),
		"hashtags": hashtags,
		"emojis":   emojis,
	})
}

// BuildTipsPrompt 渲染简介优化建议提示词
func BuildTipsPrompt(topic string, vibe entity.Vibe) (string, error) {
	return render(workflowprompt.PromptTipsV1, map[string]any{
		"topic": topic,
		"vibe":  string(vibe),
	})
}

// BuildBuilderPrompt 渲染交互式简介构建提示词
func BuildBuilderPrompt(role, achievement, interest string) (string, error) {
	return render(workflowprompt.PromptBuilderV1, map[string]any{
		"role":        role,
		"achievement": achievement,
		"interest":    interest,
	})
}

// BuildAnalysisPrompt 渲染简介分析提示词
func BuildAnalysisPrompt(existingBio string) (string, error) {
	return render(workflowprompt.PromptAnalysisV1, map[string]any{
		"bio": existingBio,
	})
}

// BuildTrendPrompt 渲染趋势洞察提示词
func BuildTrendPrompt(category entity.TrendCategory) (string, error) {
	return render(workflowprompt.PromptTrendsV1, map[string]any{
		"category": string(category),
	})
}

// SplitBios 按分隔记号切分响应，去除首尾空白并丢弃空段，保持模型输出顺序。
// 没有分隔记号时整段作为唯一一条简介。
func SplitBios(text string) []string {
	parts := strings.Split(text, Delimiter)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// 模板渲染不依赖调用方的 context
func render(id workflowprompt.PromptID, vars map[string]any) (string, error) {
	return defaultPromptRegistry.Render(context.Background(), id, vars)
}
