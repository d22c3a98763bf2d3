package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/xiebiao/bookapi/internal/infrastructure/config"
	"github.com/xiebiao/bookapi/pkg/logger"
	"github.com/xiebiao/bookapi/pkg/tracing"
)

// App 应用根对象(由Wire组装)
type App struct {
	Config *config.Config
	Logger *zap.Logger
	Engine *gin.Engine
}

// main 主程序入口
// @title        Book API
// @version      1.0
// @description  图书与图书详情的CRUD服务,所有响应使用{error, detail}信封
// @host         localhost:8000
// @BasePath     /
func main() {
	// 1. 加载配置
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("加载配置失败: %v", err)
	}

	// 2. 初始化日志
	zapLogger, err := logger.New(logger.Options{
		Level:        cfg.Log.Level,
		Format:       cfg.Log.Format,
		Output:       cfg.Log.Output,
		EnableCaller: cfg.Log.EnableCaller,
	})
	if err != nil {
		log.Fatalf("初始化日志失败: %v", err)
	}
	defer func() { _ = zapLogger.Sync() }()
	zap.ReplaceGlobals(zapLogger)

	// 3. 初始化追踪(可选)
	if cfg.Tracing.Enabled {
		shutdown, err := tracing.InitTracer(cfg.Tracing.ServiceName, cfg.Tracing.Endpoint)
		if err != nil {
			zapLogger.Fatal("初始化追踪失败", zap.Error(err))
		}
		defer func() {
			if err := shutdown(context.Background()); err != nil {
				zapLogger.Warn("关闭追踪失败", zap.Error(err))
			}
		}()
		zapLogger.Info("追踪已启用", zap.String("endpoint", cfg.Tracing.Endpoint))
	}

	// 4. 依赖注入(wire_gen.go)
	app, cleanup, err := InitializeApp(cfg, zapLogger)
	if err != nil {
		zapLogger.Fatal("初始化应用失败", zap.Error(err))
	}
	defer cleanup()

	// 5. 启动HTTP服务
	if err := app.Run(); err != nil {
		zapLogger.Error("服务异常退出", zap.Error(err))
		os.Exit(1)
	}
}

// Run 启动HTTP服务,收到SIGINT/SIGTERM后优雅关闭
// 关闭流程:停止接收新请求 → 等待处理中的请求(最多10秒)
func (a *App) Run() error {
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", a.Config.Server.Port),
		Handler:      a.Engine,
		ReadTimeout:  a.Config.Server.ReadTimeout,
		WriteTimeout: a.Config.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		a.Logger.Info("服务启动成功",
			zap.String("addr", srv.Addr),
			zap.String("mode", a.Config.Server.Mode),
			zap.String("database", a.Config.Database.Driver),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("HTTP服务启动失败: %w", err)
		}
		return nil
	case sig := <-quit:
		a.Logger.Info("正在优雅关闭服务", zap.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("服务器强制关闭: %w", err)
	}

	a.Logger.Info("HTTP服务器已关闭")
	return nil
}
