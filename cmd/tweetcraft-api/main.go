// Package main TweetCraft API 服务入口
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"tweetcraft-ai-api/internal/config"
	einoobs "tweetcraft-ai-api/internal/observability/eino"
	"tweetcraft-ai-api/internal/wire"
	"tweetcraft-ai-api/pkg/logger"
	"tweetcraft-ai-api/pkg/tracer"
)

// Version 版本信息，构建时注入
var (
	Version   = "dev"
	BuildTime = "unknown"
)

const shutdownTimeout = 30 * time.Second

func main() {
	// 加载 .env 文件（如果存在）
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger.Init(
		cfg.Observability.Logging.Level,
		cfg.Observability.Logging.Format,
		cfg.Observability.Logging.Output,
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log := logger.FromContext(ctx)
	log.Info("starting tweetcraft-api",
		"version", Version,
		"build_time", BuildTime,
		"env", cfg.App.Env,
		"llm_provider", cfg.LLM.DefaultProvider,
	)

	if p, ok := cfg.LLM.Providers[cfg.LLM.DefaultProvider]; !ok || !p.HasCredential() {
		log.Warn("llm api key not configured, completion requests will fail", "provider", cfg.LLM.DefaultProvider)
	}

	shutdownTracer, err := tracer.Init(ctx, tracer.Config{
		ServiceName: cfg.App.Name,
		Version:     cfg.App.Version,
		Endpoint:    cfg.Observability.Tracing.Endpoint,
		SampleRate:  cfg.Observability.Tracing.SampleRate,
		Enabled:     cfg.Observability.Tracing.Enabled,
	})
	if err != nil {
		logger.Fatal(ctx, "failed to init tracer", err)
	}
	defer func() {
		if err := shutdownTracer(context.Background()); err != nil {
			log.Error("failed to shutdown tracer", "error", err)
		}
	}()

	// 初始化 Eino 全局 callbacks（指标/追踪）
	einoobs.Init()

	app, cleanupApp, err := wire.InitializeApp(cfg)
	if err != nil {
		logger.Fatal(ctx, "failed to initialize app", err)
	}
	defer cleanupApp()

	servers := []*http.Server{{
		Addr:         cfg.Server.HTTP.Addr(),
		Handler:      app.Engine(),
		ReadTimeout:  cfg.Server.HTTP.ReadTimeout,
		WriteTimeout: cfg.Server.HTTP.WriteTimeout,
		IdleTimeout:  cfg.Server.HTTP.IdleTimeout,
	}}
	if m := cfg.Observability.Metrics; m.Enabled && m.Port > 0 {
		mux := http.NewServeMux()
		mux.Handle(m.Path, promhttp.Handler())
		servers = append(servers, &http.Server{
			Addr:              fmt.Sprintf("%s:%d", cfg.Server.HTTP.Host, m.Port),
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		})
	}

	if err := run(ctx, servers); err != nil {
		logger.Fatal(ctx, "server error", err)
	}
	log.Info("server exited")
}

// run 启动全部服务器，收到信号或任一服务器失败后统一优雅关闭
func run(ctx context.Context, servers []*http.Server) error {
	g, gctx := errgroup.WithContext(ctx)

	for _, srv := range servers {
		g.Go(func() error {
			logger.Info(gctx, "http server starting", "addr", srv.Addr)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("listen %s: %w", srv.Addr, err)
			}
			return nil
		})
	}

	g.Go(func() error {
		<-gctx.Done()
		logger.Info(context.Background(), "shutting down servers...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		var errs []error
		for _, srv := range servers {
			if err := srv.Shutdown(shutdownCtx); err != nil {
				errs = append(errs, fmt.Errorf("shutdown %s: %w", srv.Addr, err))
			}
		}
		return errors.Join(errs...)
	})

	return g.Wait()
}
