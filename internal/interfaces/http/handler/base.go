// Package handler 提供 HTTP 请求处理器
package handler

import (
	"github.com/gin-gonic/gin"

	"tweetcraft-ai-api/internal/interfaces/http/dto"
	"tweetcraft-ai-api/pkg/logger"
)

// bindJSON 绑定请求体，失败时写出 400 并返回 false
func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		logger.Debug(c.Request.Context(), "invalid request body", "path", c.FullPath(), "error", err.Error())
		dto.BadRequest(c, "invalid request body")
		return false
	}
	return true
}
