package prompt

import (
	"context"
	"embed"
	"fmt"
	"strings"
	"sync"

	einoprompt "github.com/cloudwego/eino/components/prompt"
	"github.com/cloudwego/eino/schema"
)

//go:embed templates/*.txt
var templatesFS embed.FS

type PromptID string

const (
	PromptBioV1      PromptID = "bio_v1"
	PromptTipsV1     PromptID = "tips_v1"
	PromptBuilderV1  PromptID = "builder_v1"
	PromptAnalysisV1 PromptID = "analysis_v1"
	PromptTrendsV1   PromptID = "trends_v1"
)

// IDs 返回全部已注册的提示词
func IDs() []PromptID {
	return []PromptID{PromptBioV1, PromptTipsV1, PromptBuilderV1, PromptAnalysisV1, PromptTrendsV1}
}

type Registry struct {
	mu    sync.RWMutex
	cache map[PromptID]einoprompt.ChatTemplate
}

func NewRegistry() *Registry {
	return &Registry{
		cache: make(map[PromptID]einoprompt.ChatTemplate),
	}
}

func (r *Registry) ChatTemplate(id PromptID) (einoprompt.ChatTemplate, error) {
	if r == nil {
		return nil, fmt.Errorf("prompt registry is nil")
	}

	r.mu.RLock()
	if tpl, ok := r.cache[id]; ok {
		r.mu.RUnlock()
		return tpl, nil
	}
	r.mu.RUnlock()

	r.mu.Lock()
	defer r.mu.Unlock()
	if tpl, ok := r.cache[id]; ok {
		return tpl, nil
	}

	userPath, err := resolvePromptFile(id)
	if err != nil {
		return nil, err
	}
	user, err := readEmbeddedText(userPath)
	if err != nil {
		return nil, err
	}

	// 补全服务只接收单条 user 消息，不带 system 提示
	tpl := einoprompt.FromMessages(schema.FString, schema.UserMessage(user))
	r.cache[id] = tpl
	return tpl, nil
}

// Render 渲染提示词，返回唯一一条 user 消息的文本
func (r *Registry) Render(ctx context.Context, id PromptID, vars map[string]any) (string, error) {
	tpl, err := r.ChatTemplate(id)
	if err != nil {
		return "", err
	}
	msgs, err := tpl.Format(ctx, vars)
	if err != nil {
		return "", fmt.Errorf("format prompt %s: %w", id, err)
	}
	if len(msgs) != 1 || msgs[0] == nil {
		return "", fmt.Errorf("prompt %s rendered %d messages, want 1", id, len(msgs))
	}
	return msgs[0].Content, nil
}

func resolvePromptFile(id PromptID) (string, error) {
	switch id {
	case PromptBioV1, PromptTipsV1, PromptBuilderV1, PromptAnalysisV1, PromptTrendsV1:
		return "templates/" + string(id) + ".user.txt", nil
	default:
		return "", fmt.Errorf("unknown prompt id: %s", id)
	}
}

func readEmbeddedText(path string) (string, error) {
	b, err := templatesFS.ReadFile(path)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(b)), nil
}
