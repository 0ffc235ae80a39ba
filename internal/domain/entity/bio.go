// Package entity 定义领域实体
package entity

import (
	"strings"
)

// Vibe 简介语气
type Vibe string

const (
	VibeProfessional  Vibe = "Professional"
	VibeCreative      Vibe = "Creative"
	VibeHumorous      Vibe = "Humorous"
	VibeInspirational Vibe = "Inspirational"
	VibeTechnical     Vibe = "Technical"
)

// Vibes 返回全部语气，顺序即页面展示顺序
func Vibes() []Vibe {
	return []Vibe{VibeProfessional, VibeCreative, VibeHumorous, VibeInspirational, VibeTechnical}
}

// IsValid 检查语气是否合法
func (v Vibe) IsValid() bool {
	for _, candidate := range Vibes() {
		if v == candidate {
			return true
		}
	}
	return false
}

// ParseVibe 大小写不敏感地解析语气
func ParseVibe(s string) (Vibe, bool) {
	s = strings.TrimSpace(s)
	for _, candidate := range Vibes() {
		if strings.EqualFold(s, string(candidate)) {
			return candidate, true
		}
	}
	return "", false
}

// LengthBand 简介长度档位
type LengthBand string

const (
	LengthShort  LengthBand = "Short"
	LengthMedium LengthBand = "Medium"
	LengthLong   LengthBand = "Long"
)

// LengthBands 返回全部长度档位
func LengthBands() []LengthBand {
	return []LengthBand{LengthShort, LengthMedium, LengthLong}
}

// Clause 返回写入提示词的字符范围描述
func (l LengthBand) Clause() string {
	switch l {
	case LengthShort:
		return "under 100 characters"
	case LengthMedium:
		return "100-140 characters"
	case LengthLong:
		return "140-160 characters"
	default:
		return ""
	}
}

// Label 返回页面上的单选项文案
func (l LengthBand) Label() string {
	if c := l.Clause(); c != "" {
		return string(l) + " (" + c + ")"
	}
	return string(l)
}

// IsValid 检查长度档位是否合法
func (l LengthBand) IsValid() bool {
	return l.Clause() != ""
}

// ParseLengthBand 解析长度档位，同时接受 "Short" 与 "Short (under 100 characters)" 两种写法
func ParseLengthBand(s string) (LengthBand, bool) {
	s = strings.TrimSpace(s)
	for _, candidate := range LengthBands() {
		if strings.EqualFold(s, string(candidate)) || strings.EqualFold(s, candidate.Label()) {
			return candidate, true
		}
	}
	return "", false
}

// TrendCategory 趋势洞察分类
type TrendCategory string

const (
	TrendTech      TrendCategory = "Tech"
	TrendCreative  TrendCategory = "Creative"
	TrendBusiness  TrendCategory = "Business"
	TrendLifestyle TrendCategory = "Lifestyle"
)

// TrendCategories 返回全部趋势分类
func TrendCategories() []TrendCategory {
	return []TrendCategory{TrendTech, TrendCreative, TrendBusiness, TrendLifestyle}
}

// ParseTrendCategory 大小写不敏感地解析趋势分类
func ParseTrendCategory(s string) (TrendCategory, bool) {
	s = strings.TrimSpace(s)
	for _, candidate := range TrendCategories() {
		if strings.EqualFold(s, string(candidate)) {
			return candidate, true
		}
	}
	return "", false
}

// MaxBioLength 推特简介的字符上限，也是简介分析的输入上限
const MaxBioLength = 160

// MaxBiosShown 单次生成展示的简介数量上限
const MaxBiosShown = 3

// BioRequest 一次简介生成的用户选择
type BioRequest struct {
	Topic           string
	Vibe            Vibe
	Length          LengthBand
	IncludeHashtags bool
	IncludeEmojis   bool
}

// BioSet 一次生成得到的简介，顺序与模型输出一致
type BioSet struct {
	Bios []string
}

// Len 返回简介数量
func (s *BioSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.Bios)
}

// SocialPreview 社交主页预览
type SocialPreview struct {
	Name   string
	Handle string
	Bio    string
}
