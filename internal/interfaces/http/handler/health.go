package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tweetcraft-ai-api/internal/config"
)

// HealthHandler 健康检查处理器
type HealthHandler struct {
	cfg *config.Config
}

// NewHealthHandler 创建健康检查处理器
func NewHealthHandler(cfg *config.Config) *HealthHandler {
	return &HealthHandler{cfg: cfg}
}

// HealthResponse 健康检查响应
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version,omitempty"`
}

type readinessCheck struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

type readinessResponse struct {
	Status string                     `json:"status"`
	Checks map[string]*readinessCheck `json:"checks,omitempty"`
}

// Health 健康检查接口
// @Summary 健康检查
// @Tags System
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	resp := HealthResponse{Status: "ok"}
	if h != nil && h.cfg != nil {
		resp.Version = h.cfg.App.Version
	}
	c.JSON(http.StatusOK, resp)
}

// Ready 就绪检查接口，默认补全服务缺少凭证时返回 503
// @Summary 就绪检查
// @Tags System
// @Produce json
// @Success 200 {object} readinessResponse
// @Failure 503 {object} readinessResponse
// @Router /ready [get]
func (h *HealthHandler) Ready(c *gin.Context) {
	check := &readinessCheck{Status: "ok"}
	switch {
	case h == nil || h.cfg == nil:
		check.Status, check.Error = "missing", "config not loaded"
	default:
		name := h.cfg.LLM.DefaultProvider
		provider, ok := h.cfg.LLM.Providers[name]
		if !ok {
			check.Status, check.Error = "missing", "llm provider "+name+" not configured"
		} else if !provider.HasCredential() {
			check.Status, check.Error = "missing", "api key for llm provider "+name+" not configured"
		}
	}

	resp := readinessResponse{Status: "ok", Checks: map[string]*readinessCheck{"llm": check}}
	if check.Status != "ok" {
		resp.Status = "not_ready"
		c.JSON(http.StatusServiceUnavailable, resp)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Live 存活检查接口
// @Summary 存活检查
// @Tags System
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /live [get]
func (h *HealthHandler) Live(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{Status: "ok"})
}
