package completions

import (
	"fmt"
	"os"
	"path/filepath"
)

// SourceInstructions returns the line to add to the user's rc file.
func SourceInstructions(shell Shell) string {
	bin := GetBinaryPath()
	switch shell {
	case ShellBash:
		return fmt.Sprintf(`eval "$(%s completions bash --script)"`, bin)
	case ShellZsh:
		return fmt.Sprintf(`eval "$(%s completions zsh --script)"`, bin)
	case ShellFish:
		return fmt.Sprintf(`%s completions fish --script | source`, bin)
	default:
		return ""
	}
}

// RcFile returns the rc file path for the given shell.
func RcFile(shell Shell) string {
	switch shell {
	case ShellBash:
		return "~/.bashrc"
	case ShellZsh:
		return "~/.zshrc"
	case ShellFish:
		return "~/.config/fish/config.fish"
	default:
		return ""
	}
}

// AutoInstallPath returns the path where completions can be auto-loaded
// from. Returns empty string if auto-install is not supported for this
// shell.
func AutoInstallPath(shell Shell) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	bin := GetBinaryName()

	switch shell {
	case ShellFish:
		// Fish always auto-loads from this directory.
		return filepath.Join(home, ".config", "fish", "completions", bin+".fish")
	case ShellBash:
		// Only if bash-completion is installed.
		if IsBashCompletionInstalled() {
			return filepath.Join(home, ".local", "share", "bash-completion", "completions", bin)
		}
		return ""
	default:
		return ""
	}
}

// IsBashCompletionInstalled reports whether the bash-completion package
// looks present on this system.
func IsBashCompletionInstalled() bool {
	home, err := os.UserHomeDir()
	if err != nil {
		return false
	}

	candidates := []string{
		filepath.Join(home, ".local", "share", "bash-completion"),
		"/usr/share/bash-completion",
		"/etc/bash_completion.d",
	}
	for _, dir := range candidates {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			return true
		}
	}
	return false
}
