package report_test

import (
	"os"
	"path/filepath"
	"testing"

	"health-analyzer/internal/report"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSave_CreatesParentDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "output", "reports", "analysis_report.txt")

	err := report.Save("report body\n", path)
	require.NoError(t, err)

	// 目录和文件都应存在，内容一致
	info, err := os.Stat(filepath.Dir(path))
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "report body\n", string(content))
}

func TestSave_OverwritesExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "analysis_report.txt")
	require.NoError(t, os.WriteFile(path, []byte("old report\n"), 0644))

	err := report.Save("new report\n", path)
	require.NoError(t, err)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "new report\n", string(content))
}

func TestSave_BareFileName(t *testing.T) {
	// 无目录前缀的路径直接写入当前目录，不触发 MkdirAll
	dir := t.TempDir()
	cwd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(cwd) })

	err = report.Save("report\n", "analysis_report.txt")
	require.NoError(t, err)

	content, err := os.ReadFile(filepath.Join(dir, "analysis_report.txt"))
	require.NoError(t, err)
	assert.Equal(t, "report\n", string(content))
}

func TestSave_InvalidPath(t *testing.T) {
	// 路径中间是普通文件，无法建目录
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))

	err := report.Save("report\n", filepath.Join(blocker, "report.txt"))
	require.Error(t, err)
}
