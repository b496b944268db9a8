package report

import (
	"fmt"
	"os"
	"path/filepath"
)

// Save 将报告写入指定路径
// 父目录不存在时自动创建；已存在文件整体覆盖；失败原样返回错误，不重试
func Save(reportText, path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	if err := os.WriteFile(path, []byte(reportText), 0644); err != nil {
		return fmt.Errorf("failed to write report file: %w", err)
	}

	return nil
}
