package fsutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureDirExistsIsIdempotent(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b", "c")

	require.NoError(t, EnsureDirExists(dir))
	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	// Second call on the same path is a no-op
	require.NoError(t, EnsureDirExists(dir))
}

func TestWriteReadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "note.txt")
	content := "持仓分析报告\nline two\n"

	require.NoError(t, WriteToFile(path, content))

	got, err := ReadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, content, got)
}

func TestWriteToFileCreatesParent(t *testing.T) {
	base := t.TempDir()
	path := filepath.Join(base, "missing", "parent", "file.json")

	require.NoError(t, WriteToFile(path, "{}"))

	_, err := os.Stat(filepath.Dir(path))
	assert.NoError(t, err)
}

func TestReadFromFileMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "does-not-exist.txt")

	_, err := ReadFromFile(path)
	require.Error(t, err)
	assert.True(t, IsNotExist(err))
	assert.Contains(t, err.Error(), path)
}

func TestAppLogsDirUnderDataDir(t *testing.T) {
	dataDir, err := AppDataDir()
	if err != nil {
		t.Skipf("no user config directory in this environment: %v", err)
	}

	logsDir, err := AppLogsDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dataDir, "logs"), logsDir)
	assert.Equal(t, "smart-stock-insider", filepath.Base(dataDir))
}
