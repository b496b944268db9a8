package service

import (
	"fmt"

	"health-analyzer/internal/analyzer"
	"health-analyzer/internal/config"
	"health-analyzer/internal/loader"
	"health-analyzer/internal/report"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AnalysisService 健康数据分析服务（一次性批处理流水线）
type AnalysisService struct {
	config *config.Config
	logger *zap.Logger
}

// NewAnalysisService 创建分析服务
func NewAnalysisService(cfg *config.Config, logger *zap.Logger) *AnalysisService {
	return &AnalysisService{
		config: cfg,
		logger: logger,
	}
}

// Run 执行完整分析流水线：加载 → 统计 → 阈值扫描 → 生成报告 → 写入
// 任一步骤失败立即中止，不写出部分报告
func (s *AnalysisService) Run() error {
	logger := s.logger.With(zap.String("run_id", uuid.New().String()))

	// 1. 加载读数表
	readings, err := loader.Load(s.config.Input.Path)
	if err != nil {
		return fmt.Errorf("failed to load health data: %w", err)
	}
	logger.Info("Health data loaded",
		zap.String("input_path", s.config.Input.Path),
		zap.Int("total_readings", len(readings)),
	)

	// 2. 计算均值统计（空表在此中止）
	stats, err := analyzer.CalculateStatistics(readings)
	if err != nil {
		return fmt.Errorf("failed to calculate statistics: %w", err)
	}

	// 3. 阈值扫描（异常读数计数）
	abnormal := analyzer.FindAbnormalReadings(readings)

	// 4. 生成报告文本
	reportText := report.Generate(stats, abnormal, len(readings))

	// 5. 写入报告文件
	if err := report.Save(reportText, s.config.Output.Path); err != nil {
		return fmt.Errorf("failed to save report: %w", err)
	}

	logger.Info("Analysis completed",
		zap.String("output_path", s.config.Output.Path),
		zap.Int("total_readings", len(readings)),
		zap.Int("high_heart_rate", abnormal.HighHeartRate),
		zap.Int("high_blood_pressure", abnormal.HighBloodPressure),
		zap.Int("high_glucose", abnormal.HighGlucose),
	)

	return nil
}
