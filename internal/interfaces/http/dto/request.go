// Package dto 提供 HTTP 层数据传输对象
package dto

import (
	"strings"

	"tweetcraft-ai-api/internal/domain/entity"
)

// GenerateBiosRequest 简介生成请求
type GenerateBiosRequest struct {
	Topic           string `json:"topic"`
	Vibe            string `json:"vibe"`
	Length          string `json:"length"`
	IncludeHashtags bool   `json:"include_hashtags"`
	IncludeEmojis   bool   `json:"include_emojis"`
	WithTips        bool   `json:"with_tips"`
}

// ToEntity 转换为领域请求。
// 无法识别的取值原样保留，由服务层统一校验；length 缺省为 Short。
func (r *GenerateBiosRequest) ToEntity() entity.BioRequest {
	return entity.BioRequest{
		Topic:           r.Topic,
		Vibe:            ParseVibe(r.Vibe),
		Length:          parseLength(r.Length),
		IncludeHashtags: r.IncludeHashtags,
		IncludeEmojis:   r.IncludeEmojis,
	}
}

// TipsRequest 简介建议请求
type TipsRequest struct {
	Topic string `json:"topic"`
	Vibe  string `json:"vibe"`
}

// BuildBioRequest 交互式构建请求
type BuildBioRequest struct {
	Role        string `json:"role"`
	Achievement string `json:"achievement"`
	Interest    string `json:"interest"`
}

// AnalyzeBioRequest 简介分析请求
type AnalyzeBioRequest struct {
	Bio string `json:"bio"`
}

// TrendsRequest 趋势洞察请求
type TrendsRequest struct {
	Category string `json:"category"`
}

// ChatRequest 对话请求
type ChatRequest struct {
	Message string `json:"message"`
}

// ParseVibe 大小写不敏感地解析语气，失败时原样返回
func ParseVibe(s string) entity.Vibe {
	if v, ok := entity.ParseVibe(s); ok {
		return v
	}
	return entity.Vibe(strings.TrimSpace(s))
}

// ParseTrendCategory 解析趋势分类，失败时原样返回
func ParseTrendCategory(s string) entity.TrendCategory {
	if c, ok := entity.ParseTrendCategory(s); ok {
		return c
	}
	return entity.TrendCategory(strings.TrimSpace(s))
}

func parseLength(s string) entity.LengthBand {
	if strings.TrimSpace(s) == "" {
		return entity.LengthShort
	}
	if l, ok := entity.ParseLengthBand(s); ok {
		return l
	}
	return entity.LengthBand(strings.TrimSpace(s))
}
