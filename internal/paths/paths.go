package paths

import (
	"os"
	"path/filepath"
	"runtime"
)

const appDirName = "chatmux"

// AppDataDir returns the application data directory for config/database.
// Uses os.UserConfigDir() which returns:
//   - macOS: ~/Library/Application Support
//   - Linux: $XDG_CONFIG_HOME or ~/.config
//   - Windows: %AppData% (roaming)
func AppDataDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "."
	}

	path := filepath.Join(dir, appDirName)

	// Use restrictive permissions for application data
	_ = os.MkdirAll(path, 0700)

	return path
}

// AppLocalDataDir returns the OS-appropriate local data directory.
// This is where application-managed data (like the sandbox database)
// should live.
//   - macOS: ~/Library/Application Support/chatmux
//   - Linux: $XDG_DATA_HOME/chatmux or ~/.local/share/chatmux
//   - Windows: %LOCALAPPDATA%\chatmux
func AppLocalDataDir() string {
	var base string

	switch runtime.GOOS {
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return "."
		}
		base = filepath.Join(home, "Library", "Application Support")

	case "windows":
		base = os.Getenv("LOCALAPPDATA")
		if base == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "."
			}
			base = filepath.Join(home, "AppData", "Local")
		}

	default:
		// Linux/Unix: $XDG_DATA_HOME or ~/.local/share
		base = os.Getenv("XDG_DATA_HOME")
		if base == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "."
			}
			base = filepath.Join(home, ".local", "share")
		}
	}

	return filepath.Join(base, appDirName)
}

// ConfigFilePath returns the path of the user configuration file.
func ConfigFilePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(home, ".chatmuxrc"), nil
}

// LogFilePath returns the path to the application log file.
//   - macOS: ~/Library/Application Support/chatmux/chatmux.log
//   - Linux: $XDG_CONFIG_HOME/chatmux/chatmux.log or ~/.config/chatmux/chatmux.log
//   - Windows: %AppData%\chatmux\chatmux.log
func LogFilePath() string {
	return filepath.Join(AppDataDir(), "chatmux.log")
}
