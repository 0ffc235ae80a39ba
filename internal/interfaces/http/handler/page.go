package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tweetcraft-ai-api/internal/interfaces/http/web"
)

// PageHandler 页面处理器
type PageHandler struct{}

// NewPageHandler 创建页面处理器
func NewPageHandler() *PageHandler {
	return &PageHandler{}
}

// Index 返回内嵌的单页应用
func (h *PageHandler) Index(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", web.IndexHTML)
}
