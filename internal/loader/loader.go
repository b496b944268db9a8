package loader

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"health-analyzer/internal/models"
)

// columnCount 输入表固定列数（与 models.Reading 字段一一对应）
const columnCount = 8

// Load 按文件扩展名加载读数表（.xlsx/.xlsm 走 Excel，其余按 CSV 处理）
func Load(path string) ([]models.Reading, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return LoadXLSX(path)
	default:
		return LoadCSV(path)
	}
}

// LoadCSV 从 CSV 文件加载读数表
// 第一行为表头（跳过），其余每行固定 8 列；任何列数或数值解析错误都视为致命错误
func LoadCSV(path string) ([]models.Reading, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = columnCount

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse csv file: %w", err)
	}

	return parseRows(rows)
}

// parseRows 把原始单元格行（含表头行）转换为读数表
func parseRows(rows [][]string) ([]models.Reading, error) {
	// 只有表头或完全为空：返回空表（是否可分析由统计组件判断）
	if len(rows) <= 1 {
		return []models.Reading{}, nil
	}

	readings := make([]models.Reading, 0, len(rows)-1)
	for i, row := range rows[1:] {
		reading, err := parseRow(row)
		if err != nil {
			// 行号按文件计（表头为第 1 行）
			return nil, fmt.Errorf("failed to parse row %d: %w", i+2, err)
		}
		readings = append(readings, reading)
	}

	return readings, nil
}

// parseRow 把一行单元格转换为 Reading
func parseRow(row []string) (models.Reading, error) {
	if len(row) != columnCount {
		return models.Reading{}, fmt.Errorf("expected %d columns, got %d", columnCount, len(row))
	}

	heartRate, err := strconv.Atoi(strings.TrimSpace(row[2]))
	if err != nil {
		return models.Reading{}, fmt.Errorf("invalid heart_rate %q: %w", row[2], err)
	}

	systolic, err := strconv.Atoi(strings.TrimSpace(row[3]))
	if err != nil {
		return models.Reading{}, fmt.Errorf("invalid blood_pressure_systolic %q: %w", row[3], err)
	}

	diastolic, err := strconv.Atoi(strings.TrimSpace(row[4]))
	if err != nil {
		return models.Reading{}, fmt.Errorf("invalid blood_pressure_diastolic %q: %w", row[4], err)
	}

	temperature, err := strconv.ParseFloat(strings.TrimSpace(row[5]), 64)
	if err != nil {
		return models.Reading{}, fmt.Errorf("invalid temperature %q: %w", row[5], err)
	}

	glucose, err := strconv.Atoi(strings.TrimSpace(row[6]))
	if err != nil {
		return models.Reading{}, fmt.Errorf("invalid glucose_level %q: %w", row[6], err)
	}

	return models.Reading{
		PatientID:              strings.TrimSpace(row[0]),
		Timestamp:              strings.TrimSpace(row[1]),
		HeartRate:              heartRate,
		BloodPressureSystolic:  systolic,
		BloodPressureDiastolic: diastolic,
		Temperature:            temperature,
		GlucoseLevel:           glucose,
		SensorID:               strings.TrimSpace(row[7]),
	}, nil
}
