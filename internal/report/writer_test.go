package report_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lbruni/collaudo/internal/report"
)

func TestWriteFileCreatesParents(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out", "nested", "report.md")

	require.NoError(t, report.WriteFile(path, "# Report\n"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "# Report\n", string(data))
}

func TestWriteFileOverwrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "report.md")

	require.NoError(t, report.WriteFile(path, "old"))
	require.NoError(t, report.WriteFile(path, "new"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "new", string(data))
}

func TestWriteFileLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, report.WriteFile(filepath.Join(dir, "report.md"), "content"))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, "report.md", entries[0].Name())
}
