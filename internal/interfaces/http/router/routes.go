package router

import (
	"github.com/gin-gonic/gin"

	"tweetcraft-ai-api/internal/interfaces/http/handler"
)

// RegisterV1Routes 注册 v1 版本路由
func RegisterV1Routes(v1 *gin.RouterGroup, bioHandler *handler.BioHandler) {
	bios := v1.Group("/bios")
	{
		bios.POST("", bioHandler.GenerateBios)
		bios.POST("/tips", bioHandler.Tips)
		bios.POST("/build", bioHandler.Build)
		bios.POST("/analyze", bioHandler.Analyze)
	}

	v1.POST("/trends", bioHandler.Trends)
	v1.POST("/chat", bioHandler.Chat)
	v1.GET("/options", bioHandler.Options)
	v1.GET("/library", bioHandler.Library)
}
