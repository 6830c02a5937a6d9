package completions

import (
	"fmt"
	"strings"

	"github.com/chatmux-tools/chatmux/internal/cli"
	"github.com/chatmux-tools/chatmux/internal/completions"
)

// Completions handles a bare "completions" invocation: it detects the
// running shell and prints setup guidance, or the script itself with
// --script. Known shells route to their own subcommands before this
// action sees them.
func Completions(args []string, flags *cli.ParsedFlags) error {
	return completionsCmd(args, flags, DefaultDeps())
}

func completionsCmd(args []string, flags *cli.ParsedFlags, deps Deps) error {
	if len(args) > 0 {
		return fmt.Errorf("unsupported shell: %s (use bash, zsh, or fish)", args[0])
	}

	shell := completions.RunningShell()
	if shell == "" {
		return fmt.Errorf("could not detect shell, specify one: %s completions <bash|zsh|fish>", completions.GetBinaryName())
	}

	return shellCmd(shell, flags, deps)
}

// Bash prints setup guidance or the completion script for bash.
func Bash(args []string, flags *cli.ParsedFlags) error {
	return shellCmd(completions.ShellBash, flags, DefaultDeps())
}

// Zsh prints setup guidance or the completion script for zsh.
func Zsh(args []string, flags *cli.ParsedFlags) error {
	return shellCmd(completions.ShellZsh, flags, DefaultDeps())
}

// Fish prints setup guidance or the completion script for fish.
func Fish(args []string, flags *cli.ParsedFlags) error {
	return shellCmd(completions.ShellFish, flags, DefaultDeps())
}

func shellCmd(shell completions.Shell, flags *cli.ParsedFlags, deps Deps) error {
	if flags.Has("--script") {
		return printScript(shell, deps)
	}
	printInstructions(shell, deps)
	return nil
}

func printScript(shell completions.Shell, deps Deps) error {
	script := completions.Script(shell)
	if script == "" {
		return fmt.Errorf("no completion script for shell %q", shell)
	}
	_, err := deps.Printf("%s", script)
	return err
}

func printInstructions(shell completions.Shell, deps Deps) {
	evalLine := completions.SourceInstructions(shell)
	rcFile := completions.RcFile(shell)
	autoPath := completions.AutoInstallPath(shell)
	bin := completions.GetBinaryName()

	_, _ = deps.Println("To enable completions, choose one of the following:")
	_, _ = deps.Println()

	optionNum := 1

	if autoPath != "" {
		_, _ = deps.Printf("%d. Write to the auto-load directory:\n", optionNum)
		_, _ = deps.Printf("   %s completions %s --script > %s\n", bin, shell, autoPath)
		_, _ = deps.Println()
		optionNum++
	}

	_, _ = deps.Printf("%d. Add to %s:\n", optionNum, rcFile)
	_, _ = deps.Printf("   %s\n", evalLine)
	_, _ = deps.Println()

	_, _ = deps.Println("Then restart your shell or run: exec $SHELL")
}

// Query prints completion candidates for the words typed so far, one
// per line. Generated scripts call this at completion time; it is not
// meant for direct use.
func Query(args []string, flags *cli.ParsedFlags) error {
	return query(args, flags, DefaultDeps())
}

func query(args []string, _ *cli.ParsedFlags, deps Deps) error {
	candidates := completions.Query(args)
	if len(candidates) == 0 {
		return nil
	}
	_, err := deps.Println(strings.Join(candidates, "\n"))
	return err
}
