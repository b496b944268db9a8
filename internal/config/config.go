package config

import (
	"os"
)

// Config 健康数据分析服务配置
type Config struct {
	// 输入输出路径（批处理每次运行一读一写）
	Input struct {
		Path string // 输入数据文件路径（CSV 或 Excel）
	}
	Output struct {
		Path string // 分析报告输出路径
	}

	Log struct {
		Level  string
		Format string
	}
}

// Load 加载配置（环境变量覆盖默认值）
func Load() (*Config, error) {
	cfg := &Config{}

	cfg.Input.Path = getEnv("HEALTH_INPUT_PATH", "health_data.csv")
	cfg.Output.Path = getEnv("HEALTH_OUTPUT_PATH", "output/analysis_report.txt")

	cfg.Log.Level = getEnv("LOG_LEVEL", "info")
	cfg.Log.Format = getEnv("LOG_FORMAT", "json")

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
