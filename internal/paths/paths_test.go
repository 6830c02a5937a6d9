package paths

import (
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAppDataDir_ReturnsNonEmpty(t *testing.T) {
	dir := AppDataDir()
	require.NotEmpty(t, dir)
	require.NotEqual(t, ".", dir)
}

func TestAppDataDir_ContainsChatmux(t *testing.T) {
	dir := AppDataDir()
	dirLower := strings.ToLower(dir)
	require.True(t, strings.Contains(dirLower, "chatmux"),
		"AppDataDir should contain 'chatmux' (case-insensitive): %s", dir)
}

func TestAppLocalDataDir_ReturnsNonEmpty(t *testing.T) {
	dir := AppLocalDataDir()
	require.NotEmpty(t, dir)
	require.NotEqual(t, ".", dir)
}

func TestAppLocalDataDir_ContainsChatmux(t *testing.T) {
	dir := AppLocalDataDir()
	require.True(t, strings.HasSuffix(dir, "chatmux"),
		"AppLocalDataDir should end with 'chatmux': %s", dir)
}

func TestAppLocalDataDir_WithXDGDataHome(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("Test only runs on Linux")
	}

	customPath := "/tmp/custom/data"
	t.Setenv("XDG_DATA_HOME", customPath)

	dir := AppLocalDataDir()

	require.True(t, strings.HasPrefix(dir, customPath),
		"AppLocalDataDir should use XDG_DATA_HOME: %s", dir)
	require.True(t, strings.HasSuffix(dir, "chatmux"),
		"AppLocalDataDir should end with 'chatmux': %s", dir)
}

func TestAppLocalDataDir_WithoutXDGDataHome(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("Test only runs on Linux")
	}

	t.Setenv("XDG_DATA_HOME", "")

	dir := AppLocalDataDir()

	require.True(t, strings.Contains(dir, ".local/share"),
		"AppLocalDataDir should use .local/share when XDG_DATA_HOME is not set: %s", dir)
}

func TestConfigFilePath_ReturnsExpectedName(t *testing.T) {
	path, err := ConfigFilePath()
	require.NoError(t, err)

	require.True(t, strings.HasSuffix(path, ".chatmuxrc"),
		"ConfigFilePath should end with .chatmuxrc: %s", path)
}

func TestLogFilePath_LivesInAppDataDir(t *testing.T) {
	path := LogFilePath()
	require.True(t, strings.HasPrefix(path, AppDataDir()))
	require.True(t, strings.HasSuffix(path, "chatmux.log"))
}
