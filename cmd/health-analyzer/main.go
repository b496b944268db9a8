package main

import (
	"fmt"

	"health-analyzer/internal/config"
	"health-analyzer/internal/logger"
	"health-analyzer/internal/service"

	"go.uber.org/zap"
)

func main() {
	// 1. 加载配置
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. 初始化日志
	log, err := logger.NewLogger(cfg.Log.Level, cfg.Log.Format, "health-analyzer")
	if err != nil {
		panic(fmt.Sprintf("Failed to init logger: %v", err))
	}
	defer log.Sync()

	// 3. 创建并运行分析服务
	analysisService := service.NewAnalysisService(cfg, log)
	if err := analysisService.Run(); err != nil {
		log.Fatal("Analysis failed", zap.Error(err))
	}

	// 4. 输出完成信息（固定格式，供操作员确认）
	fmt.Printf("Analysis complete. Report saved to %s\n", cfg.Output.Path)
}
