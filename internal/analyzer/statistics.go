package analyzer

import (
	"errors"

	"health-analyzer/internal/models"
)

// ErrEmptyDataset 输入表为空，均值无定义
var ErrEmptyDataset = errors.New("empty dataset: no readings to analyze")

// CalculateStatistics 计算数值列均值（心率、收缩压、血糖）
// 纯函数：不修改输入；空表返回 ErrEmptyDataset（不输出 NaN 报告）
func CalculateStatistics(readings []models.Reading) (models.Statistics, error) {
	if len(readings) == 0 {
		return models.Statistics{}, ErrEmptyDataset
	}

	var heartRateSum, systolicSum, glucoseSum int
	for _, r := range readings {
		heartRateSum += r.HeartRate
		systolicSum += r.BloodPressureSystolic
		glucoseSum += r.GlucoseLevel
	}

	count := float64(len(readings))
	return models.Statistics{
		AvgHeartRate:  float64(heartRateSum) / count,
		AvgSystolicBP: float64(systolicSum) / count,
		AvgGlucose:    float64(glucoseSum) / count,
	}, nil
}
