package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/lumeng/newsriver/internal/config"
	"github.com/lumeng/newsriver/internal/logger"
	"github.com/lumeng/newsriver/internal/pipeline"
)

func main() {
	configPath := flag.String("config", "", "配置文件路径，留空使用内置默认配置")
	flag.Parse()

	var cfg *config.Config
	if *configPath == "" {
		cfg = config.Default()
	} else {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "加载配置失败: %v\n", err)
			os.Exit(1)
		}
	}

	if err := logger.Init(logger.Config{
		Level:      cfg.Log.Level,
		File:       cfg.Log.File,
		MaxSize:    cfg.Log.MaxSize,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAge:     cfg.Log.MaxAge,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "初始化日志失败: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// 监听系统信号，中断时在源间停止
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logger.Infof("[main] 收到信号 %v，正在停止...", sig)
		cancel()
	}()

	p := pipeline.New(cfg, os.Stdout)
	if err := p.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintf(os.Stderr, "流水线运行出错: %v\n", err)
		os.Exit(1)
	}
}
