package dto

import (
	"tweetcraft-ai-api/internal/domain/entity"
)

// GenerateBiosResponse 简介生成响应
// 建议获取失败不影响简介结果，错误信息放在 TipsError 中
type GenerateBiosResponse struct {
	Bios      []string        `json:"bios"`
	Preview   PreviewResponse `json:"preview"`
	Tips      string          `json:"tips,omitempty"`
	TipsError string          `json:"tips_error,omitempty"`
}

// PreviewResponse 社交主页预览
type PreviewResponse struct {
	Name   string `json:"name"`
	Handle string `json:"handle"`
	Bio    string `json:"bio"`
}

// NewPreviewResponse 从领域对象构建
func NewPreviewResponse(p entity.SocialPreview) PreviewResponse {
	return PreviewResponse{Name: p.Name, Handle: p.Handle, Bio: p.Bio}
}

// TextResponse 单段文本结果
type TextResponse struct {
	Text string `json:"text"`
}

// ChatResponse 对话结果
type ChatResponse struct {
	Message string `json:"message"`
	Reply   string `json:"reply"`
}

// LengthOption 长度档位选项
type LengthOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// OptionsResponse 页面可选项
type OptionsResponse struct {
	Vibes           []string       `json:"vibes"`
	Lengths         []LengthOption `json:"lengths"`
	TrendCategories []string       `json:"trend_categories"`
}

// NewOptionsResponse 列出全部枚举值
func NewOptionsResponse() OptionsResponse {
	resp := OptionsResponse{}
	for _, v := range entity.Vibes() {
		resp.Vibes = append(resp.Vibes, string(v))
	}
	for _, l := range entity.LengthBands() {
		resp.Lengths = append(resp.Lengths, LengthOption{Value: string(l), Label: l.Label()})
	}
	for _, c := range entity.TrendCategories() {
		resp.TrendCategories = append(resp.TrendCategories, string(c))
	}
	return resp
}

// LibraryResponse 历史与收藏。
// 不做持久化，内容为固定示例。
type LibraryResponse struct {
	History   LibrarySection `json:"history"`
	Favorites LibrarySection `json:"favorites"`
}

// LibrarySection 一个标签页
type LibrarySection struct {
	Caption string   `json:"caption"`
	Items   []string `json:"items"`
}

// NewLibraryResponse 返回固定示例
func NewLibraryResponse() LibraryResponse {
	return LibraryResponse{
		History: LibrarySection{
			Caption: "Your recently generated bios will appear here.",
			Items: []string{
				"Data Scientist | AI Enthusiast | Coffee Lover 🤖☕",
				"Turning data into insights | Python & R | Marathon runner 🏃‍♂️",
			},
		},
		Favorites: LibrarySection{
			Caption: "Your favorite bios will be saved here.",
			Items: []string{
				"Code by day, DJ by night | Full-stack developer with a passion for music 🎧",
			},
		},
	}
}
