package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	"tweetcraft-ai-api/internal/application/bio"
	"tweetcraft-ai-api/internal/domain/entity"
	"tweetcraft-ai-api/internal/interfaces/http/dto"
)

// BioService 简介功能
type BioService interface {
	GenerateBios(ctx context.Context, req entity.BioRequest) (*entity.BioSet, error)
	Tips(ctx context.Context, topic string, vibe entity.Vibe) (string, error)
	Build(ctx context.Context, role, achievement, interest string) (string, error)
	Analyze(ctx context.Context, existingBio string) (string, error)
	Trends(ctx context.Context, category entity.TrendCategory) (string, error)
	Chat(ctx context.Context, message string) (string, error)
}

// BioHandler 简介处理器
type BioHandler struct {
	svc  BioService
	pick bio.Picker
}

// NewBioHandler 创建简介处理器，预览中的简介随机选取
func NewBioHandler(svc BioService) *BioHandler {
	return &BioHandler{svc: svc, pick: bio.RandomPicker}
}

// GenerateBios 生成简介
// @Summary 生成简介
// @Description 按主题、语气与长度生成最多 3 条推特简介，附社交主页预览与可选建议
// @Tags Bio
// @Accept json
// @Produce json
// @Param body body dto.GenerateBiosRequest true "生成请求"
// @Success 200 {object} dto.Response[dto.GenerateBiosResponse]
// @Failure 400 {object} dto.ErrorResponse
// @Failure 502 {object} dto.ErrorResponse
// @Router /v1/bios [post]
func (h *BioHandler) GenerateBios(c *gin.Context) {
	var req dto.GenerateBiosRequest
	if !bindJSON(c, &req) {
		return
	}
	ctx := c.Request.Context()

	bioReq := req.ToEntity()
	set, err := h.svc.GenerateBios(ctx, bioReq)
	if err != nil {
		dto.FromError(c, err)
		return
	}

	resp := dto.GenerateBiosResponse{
		Bios:    set.Bios,
		Preview: dto.NewPreviewResponse(bio.Preview(bioReq.Topic, set.Bios, h.pick)),
	}
	if req.WithTips {
		tips, err := h.svc.Tips(ctx, bioReq.Topic, bioReq.Vibe)
		if err != nil {
			resp.TipsError = bio.ErrorMessage(err)
		} else {
			resp.Tips = tips
		}
	}
	dto.Success(c, resp)
}

// Tips 简介建议
// @Summary 简介建议
// @Tags Bio
// @Accept json
// @Produce json
// @Param body body dto.TipsRequest true "建议请求"
// @Success 200 {object} dto.Response[dto.TextResponse]
// @Failure 400 {object} dto.ErrorResponse
// @Failure 502 {object} dto.ErrorResponse
// @Router /v1/bios/tips [post]
func (h *BioHandler) Tips(c *gin.Context) {
	var req dto.TipsRequest
	if !bindJSON(c, &req) {
		return
	}
	h.text(c, func(ctx context.Context) (string, error) {
		return h.svc.Tips(ctx, req.Topic, dto.ParseVibe(req.Vibe))
	})
}

// Build 交互式构建简介
// @Summary 交互式构建简介
// @Tags Bio
// @Accept json
// @Produce json
// @Param body body dto.BuildBioRequest true "构建请求"
// @Success 200 {object} dto.Response[dto.TextResponse]
// @Failure 400 {object} dto.ErrorResponse
// @Failure 502 {object} dto.ErrorResponse
// @Router /v1/bios/build [post]
func (h *BioHandler) Build(c *gin.Context) {
	var req dto.BuildBioRequest
	if !bindJSON(c, &req) {
		return
	}
	h.text(c, func(ctx context.Context) (string, error) {
		return h.svc.Build(ctx, req.Role, req.Achievement, req.Interest)
	})
}

// Analyze 分析简介
// @Summary 分析简介
// @Tags Bio
// @Accept json
// @Produce json
// @Param body body dto.AnalyzeBioRequest true "分析请求"
// @Success 200 {object} dto.Response[dto.TextResponse]
// @Failure 400 {object} dto.ErrorResponse
// @Failure 502 {object} dto.ErrorResponse
// @Router /v1/bios/analyze [post]
func (h *BioHandler) Analyze(c *gin.Context) {
	var req dto.AnalyzeBioRequest
	if !bindJSON(c, &req) {
		return
	}
	h.text(c, func(ctx context.Context) (string, error) {
		return h.svc.Analyze(ctx, req.Bio)
	})
}

// Trends 趋势洞察
// @Summary 趋势洞察
// @Tags Bio
// @Accept json
// @Produce json
// @Param body body dto.TrendsRequest true "趋势请求"
// @Success 200 {object} dto.Response[dto.TextResponse]
// @Failure 400 {object} dto.ErrorResponse
// @Failure 502 {object} dto.ErrorResponse
// @Router /v1/trends [post]
func (h *BioHandler) Trends(c *gin.Context) {
	var req dto.TrendsRequest
	if !bindJSON(c, &req) {
		return
	}
	h.text(c, func(ctx context.Context) (string, error) {
		return h.svc.Trends(ctx, dto.ParseTrendCategory(req.Category))
	})
}

// Chat 自由对话
// @Summary 自由对话
// @Tags Chat
// @Accept json
// @Produce json
// @Param body body dto.ChatRequest true "对话请求"
// @Success 200 {object} dto.Response[dto.ChatResponse]
// @Failure 400 {object} dto.ErrorResponse
// @Failure 502 {object} dto.ErrorResponse
// @Router /v1/chat [post]
func (h *BioHandler) Chat(c *gin.Context) {
	var req dto.ChatRequest
	if !bindJSON(c, &req) {
		return
	}
	reply, err := h.svc.Chat(c.Request.Context(), req.Message)
	if err != nil {
		dto.FromError(c, err)
		return
	}
	dto.Success(c, dto.ChatResponse{Message: req.Message, Reply: reply})
}

// Options 页面可选项
// @Summary 页面可选项
// @Tags Bio
// @Produce json
// @Success 200 {object} dto.Response[dto.OptionsResponse]
// @Router /v1/options [get]
func (h *BioHandler) Options(c *gin.Context) {
	dto.Success(c, dto.NewOptionsResponse())
}

// Library 历史与收藏
// @Summary 历史与收藏
// @Tags Bio
// @Produce json
// @Success 200 {object} dto.Response[dto.LibraryResponse]
// @Router /v1/library [get]
func (h *BioHandler) Library(c *gin.Context) {
	dto.Success(c, dto.NewLibraryResponse())
}

func (h *BioHandler) text(c *gin.Context, call func(ctx context.Context) (string, error)) {
	text, err := call(c.Request.Context())
	if err != nil {
		dto.FromError(c, err)
		return
	}
	dto.Success(c, dto.TextResponse{Text: text})
}
