package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"nurse-shift/client/config"
	"nurse-shift/client/internal/cli"
	"nurse-shift/client/internal/gateway"
	"nurse-shift/client/internal/remote"
	"nurse-shift/client/internal/service"
	"nurse-shift/client/internal/session"
	applogger "nurse-shift/client/pkg/logger"
)

func main() {
	configPath := flag.String("config", "", "配置文件路径（可选）")
	flag.Parse()

	// 1. 加载配置
	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "加载配置失败: %v\n", err)
		os.Exit(1)
	}

	// 2. 初始化日志
	logger, err := applogger.NewLogger(&cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "初始化日志失败: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("客户端启动中...",
		zap.String("api_base_url", cfg.API.BaseURL),
		zap.Duration("timeout", cfg.API.Timeout),
	)

	// 3. 初始化会话存储
	sessionPath := cfg.Session.File
	if sessionPath == "" {
		sessionPath, err = session.DefaultPath()
		if err != nil {
			logger.Fatal("解析会话文件路径失败", zap.Error(err))
		}
	}
	store := session.NewStore(sessionPath, logger)

	// 4. 初始化网关与远端 API 客户端
	gw := gateway.New(&cfg.API, store, logger)
	rmt := remote.New(gw, logger)

	// 5. 依赖注入: Remote → Service → 表现层
	svc := service.NewService(rmt, store, logger)
	app := cli.New(svc, store, logger, os.Stdin, os.Stdout)

	// 6. 任意 401 都会清会话并把导航拉回登录页
	gw.OnUnauthorized(app.ForceSignOut)

	// 7. 监听系统信号，优雅退出
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("客户端异常退出", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("客户端已退出")
}
