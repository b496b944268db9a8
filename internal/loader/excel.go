package loader

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"health-analyzer/internal/models"
)

// LoadXLSX 从 Excel 文件加载读数表（取第一个工作表，列顺序与 CSV 相同）
func LoadXLSX(path string) ([]models.Reading, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open excel file: %w", err)
	}
	defer f.Close()

	sheetName := f.GetSheetName(0)
	if sheetName == "" {
		return nil, fmt.Errorf("excel file has no sheets")
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to read rows: %w", err)
	}

	return parseRows(rows)
}
