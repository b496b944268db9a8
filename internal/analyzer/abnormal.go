package analyzer

import (
	"health-analyzer/internal/models"
)

// 固定异常阈值（严格大于才计为异常，等于阈值不计）
const (
	HighHeartRateThreshold     = 90  // 心率阈值（bpm）
	HighBloodPressureThreshold = 130 // 收缩压阈值（mmHg）
	HighGlucoseThreshold       = 110 // 血糖阈值（mg/dL）
)

// FindAbnormalReadings 统计超过固定阈值的读数数量
// 纯函数；空表合法，返回全零计数
func FindAbnormalReadings(readings []models.Reading) models.AbnormalCounts {
	var counts models.AbnormalCounts
	for _, r := range readings {
		if r.HeartRate > HighHeartRateThreshold {
			counts.HighHeartRate++
		}
		if r.BloodPressureSystolic > HighBloodPressureThreshold {
			counts.HighBloodPressure++
		}
		if r.GlucoseLevel > HighGlucoseThreshold {
			counts.HighGlucose++
		}
	}
	return counts
}
