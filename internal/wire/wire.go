//go:build wireinject
// +build wireinject

// Package wire 提供依赖注入配置
package wire

import (
	"github.com/google/wire"

	"tweetcraft-ai-api/internal/application/bio"
	"tweetcraft-ai-api/internal/application/completion"
	"tweetcraft-ai-api/internal/config"
	"tweetcraft-ai-api/internal/infrastructure/llm"
	"tweetcraft-ai-api/internal/interfaces/http/handler"
	"tweetcraft-ai-api/internal/interfaces/http/router"
)

// InitializeApp 初始化整个应用（带路由器）
func InitializeApp(cfg *config.Config) (*router.Router, func(), error) {
	wire.Build(
		LLMSet,
		BioSet,
		RouterSet,
	)
	return nil, nil, nil
}

// LLMSet 补全服务提供者集合
var LLMSet = wire.NewSet(
	llm.NewEinoFactory,
	ProvideCompletionClient,
)

// BioSet 简介服务提供者集合
var BioSet = wire.NewSet(
	completion.NewProfile,
	ProvideBioListener,
	wire.Bind(new(bio.Completer), new(*completion.Client)),
	bio.NewService,
)

// RouterSet 路由器提供者集合
var RouterSet = wire.NewSet(
	handler.NewHealthHandler,
	wire.Bind(new(handler.BioService), new(*bio.Service)),
	handler.NewBioHandler,
	handler.NewPageHandler,
	wire.Struct(new(router.Handlers), "*"),
	router.New,
)
