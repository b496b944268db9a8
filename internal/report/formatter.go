package report

import (
	"fmt"
	"strings"

	"health-analyzer/internal/models"
)

// Generate 生成固定版式的分析报告文本
// 版式逐字节固定：均值保留一位小数，计数为整数，末行后以换行结束
func Generate(stats models.Statistics, abnormal models.AbnormalCounts, totalReadings int) string {
	var b strings.Builder

	b.WriteString("Health Sensor Data Analysis Report\n")
	b.WriteString("==================================\n")
	b.WriteString("\n")
	b.WriteString("Dataset Summary:\n")
	fmt.Fprintf(&b, "- Total readings: %d\n", totalReadings)
	b.WriteString("\n")
	b.WriteString("Average Measurements:\n")
	fmt.Fprintf(&b, "Heart Rate: %.1f bpm\n", stats.AvgHeartRate)
	fmt.Fprintf(&b, "Systolic BP: %.1f mmHg\n", stats.AvgSystolicBP)
	fmt.Fprintf(&b, "Glucose Level: %.1f mg/dL\n", stats.AvgGlucose)
	b.WriteString("\n")
	b.WriteString("Abnormal Readings:\n")
	fmt.Fprintf(&b, "High Heart Rate (>90): %d readings\n", abnormal.HighHeartRate)
	fmt.Fprintf(&b, "High Blood Pressure (>130): %d readings\n", abnormal.HighBloodPressure)
	fmt.Fprintf(&b, "High Glucose (>110): %d readings\n", abnormal.HighGlucose)

	return b.String()
}
