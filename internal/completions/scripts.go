package completions

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Shell identifies a supported login shell.
type Shell string

const (
	ShellBash Shell = "bash"
	ShellZsh  Shell = "zsh"
	ShellFish Shell = "fish"
)

// RunningShell detects the user's shell from $SHELL. Returns "" when
// detection fails.
func RunningShell() Shell {
	sh := os.Getenv("SHELL")
	if sh == "" {
		return ""
	}
	switch filepath.Base(sh) {
	case "bash":
		return ShellBash
	case "zsh":
		return ShellZsh
	case "fish":
		return ShellFish
	default:
		return ""
	}
}

// Script returns the completion script for shell, using the registered
// binary identity. Returns "" for an unsupported shell.
//
// The scripts call back into the binary at completion time, so
// candidates always reflect the live command tree.
func Script(shell Shell) string {
	name, path := GetBinaryName(), GetBinaryPath()
	switch shell {
	case ShellBash:
		return GenerateBash(name, path)
	case ShellZsh:
		return GenerateZsh(name, path)
	case ShellFish:
		return GenerateFish(name, path)
	default:
		return ""
	}
}

const bashTemplate = `# %[1]s bash completion script
# Candidates come from the live command tree at completion time.
_%[2]s_completions() {
    local cur="${COMP_WORDS[COMP_CWORD]}"
    local candidates
    candidates="$("%[3]s" completions query -- "${COMP_WORDS[@]:1}" 2>/dev/null)"
    COMPREPLY=($(compgen -W "${candidates}" -- "${cur}"))
}
complete -F _%[2]s_completions %[1]s
`

// GenerateBash builds the bash completion script for the given binary
// name and invocation path.
func GenerateBash(name, path string) string {
	return fmt.Sprintf(bashTemplate, name, funcName(name), path)
}

const zshTemplate = `#compdef %[1]s
# %[1]s zsh completion script
_%[2]s() {
    local -a candidates
    candidates=(${(f)"$("%[3]s" completions query -- "${(@)words[2,-1]}" 2>/dev/null)"})
    (( ${#candidates} )) && compadd -- "${candidates[@]}"
}
compdef _%[2]s %[1]s
`

// GenerateZsh builds the zsh completion script for the given binary
// name and invocation path.
func GenerateZsh(name, path string) string {
	return fmt.Sprintf(zshTemplate, name, funcName(name), path)
}

const fishTemplate = `# %[1]s fish completion script
function __%[2]s_complete
    set -l tokens (commandline -opc)
    set -l current (commandline -ct)
    "%[3]s" completions query -- $tokens[2..] $current 2>/dev/null
end
complete -c %[1]s -f -a '(__%[2]s_complete)'
`

// GenerateFish builds the fish completion script for the given binary
// name and invocation path.
func GenerateFish(name, path string) string {
	return fmt.Sprintf(fishTemplate, name, funcName(name), path)
}

// funcName makes a binary name safe for use in a shell function name.
func funcName(name string) string {
	return strings.ReplaceAll(name, "-", "_")
}
