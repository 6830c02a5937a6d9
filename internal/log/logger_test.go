package log

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTempLogger(t *testing.T, minLevel Level) (*Logger, string) {
	t.Helper()
	logPath := filepath.Join(t.TempDir(), "nested", "chatmux.log")
	logger, err := New(logPath, minLevel)
	require.NoError(t, err)
	t.Cleanup(func() { _ = logger.Close() })
	return logger, logPath
}

func readLog(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestNew_CreatesFileAndDirectory(t *testing.T) {
	logger, logPath := newTempLogger(t, LevelDebug)

	info, err := os.Stat(logPath)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0600), info.Mode().Perm())
	require.NotNil(t, logger)
}

func TestNew_TightensExistingPermissions(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "chatmux.log")
	require.NoError(t, os.WriteFile(logPath, []byte("old\n"), 0644))

	logger, err := New(logPath, LevelWarn)
	require.NoError(t, err)
	defer logger.Close()

	info, err := os.Stat(logPath)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestLogger_WritesAtOrAboveMinLevel(t *testing.T) {
	logger, logPath := newTempLogger(t, LevelInfo)

	logger.Debug("ignored %s", "detail")
	logger.Info("session started for %s", "duet")
	logger.Warn("history near limit")
	logger.Error("store unavailable")

	content := readLog(t, logPath)
	require.NotContains(t, content, "DEBUG")
	require.Contains(t, content, "INFO: session started for duet")
	require.Contains(t, content, "WARN: history near limit")
	require.Contains(t, content, "ERROR: store unavailable")
}

func TestLogger_SetEnabledSuppressesOutput(t *testing.T) {
	logger, logPath := newTempLogger(t, LevelDebug)

	logger.SetEnabled(false)
	logger.Error("should not appear")

	logger.SetEnabled(true)
	logger.Error("should appear")

	content := readLog(t, logPath)
	require.NotContains(t, content, "should not appear")
	require.Contains(t, content, "should appear")
}

func TestLogger_LinesCarryTimestampPrefix(t *testing.T) {
	logger, logPath := newTempLogger(t, LevelDebug)

	logger.Info("probe")

	content := readLog(t, logPath)
	require.Regexp(t, `^\[\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}\] INFO: probe`, content)
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  Level
	}{
		{"debug", LevelDebug},
		{"DEBUG", LevelDebug},
		{"info", LevelInfo},
		{"warn", LevelWarn},
		{"error", LevelError},
		{"Error", LevelError},
		{"", LevelWarn},
		{"verbose", LevelWarn},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			require.Equal(t, tt.want, ParseLevel(tt.input))
		})
	}
}

func TestLevel_String(t *testing.T) {
	require.Equal(t, "DEBUG", LevelDebug.String())
	require.Equal(t, "INFO", LevelInfo.String())
	require.Equal(t, "WARN", LevelWarn.String())
	require.Equal(t, "ERROR", LevelError.String())
	require.Equal(t, "UNKNOWN", Level(42).String())
}

func TestNilLogger_MethodsAreSafe(t *testing.T) {
	var logger *Logger
	logger.Debug("no panic")
	logger.Error("no panic")
	logger.SetEnabled(false)
	require.NoError(t, logger.Close())
}

func TestNopLogger_DiscardsEverything(t *testing.T) {
	var nop NopLogger
	nop.Debug("x")
	nop.Info("x")
	nop.Warn("x")
	nop.Error("x")
	require.NoError(t, nop.Close())
}
