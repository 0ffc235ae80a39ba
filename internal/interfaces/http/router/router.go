// Package router 提供 HTTP 路由配置
package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"tweetcraft-ai-api/internal/config"
	"tweetcraft-ai-api/internal/interfaces/http/handler"
	"tweetcraft-ai-api/internal/interfaces/http/middleware"
)

// Handlers 路由依赖的处理器
type Handlers struct {
	Health *handler.HealthHandler
	Bio    *handler.BioHandler
	Page   *handler.PageHandler
}

// Router HTTP 路由器
type Router struct {
	engine   *gin.Engine
	cfg      *config.Config
	handlers Handlers
}

// New 创建新的路由器
func New(cfg *config.Config, handlers Handlers) *Router {
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := &Router{
		engine:   gin.New(),
		cfg:      cfg,
		handlers: handlers,
	}

	r.setupMiddleware()
	r.setupRoutes()

	return r
}

// Engine 返回 Gin Engine
func (r *Router) Engine() *gin.Engine {
	return r.engine
}

// probePaths 探活与指标端点不记日志、不追踪、不计指标
func (r *Router) probePaths() []string {
	paths := []string{"/health", "/ready", "/live"}
	if r.mountMetrics() {
		paths = append(paths, r.cfg.Observability.Metrics.Path)
	}
	return paths
}

// mountMetrics 指标未单独监听时挂在 API 服务上
func (r *Router) mountMetrics() bool {
	m := r.cfg.Observability.Metrics
	return m.Enabled && m.Port == 0 && m.Path != ""
}

// setupMiddleware 配置中间件
func (r *Router) setupMiddleware() {
	skip := r.probePaths()

	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.RequestID())

	r.engine.Use(middleware.CORS(middleware.CORSConfig{
		AllowedOrigins: r.cfg.Security.CORS.AllowedOrigins,
		AllowedMethods: r.cfg.Security.CORS.AllowedMethods,
		AllowedHeaders: r.cfg.Security.CORS.AllowedHeaders,
	}))

	if r.cfg.Observability.Tracing.Enabled {
		r.engine.Use(middleware.Trace(r.cfg.App.Name, skip...))
		r.engine.Use(middleware.TraceContext())
	}

	r.engine.Use(middleware.Logging(skip...))

	if r.cfg.Observability.Metrics.Enabled {
		r.engine.Use(middleware.Metrics(skip...))
	}
}

// setupRoutes 配置路由
func (r *Router) setupRoutes() {
	h := r.handlers
	if h.Health == nil {
		h.Health = handler.NewHealthHandler(r.cfg)
	}

	r.engine.GET("/health", h.Health.Health)
	r.engine.GET("/ready", h.Health.Ready)
	r.engine.GET("/live", h.Health.Live)

	if r.mountMetrics() {
		r.engine.GET(r.cfg.Observability.Metrics.Path, gin.WrapH(promhttp.Handler()))
	}

	if h.Page != nil {
		r.engine.GET("/", h.Page.Index)
	}

	if h.Bio != nil {
		RegisterV1Routes(r.engine.Group("/v1"), h.Bio)
	}
}
