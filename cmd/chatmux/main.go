package main

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/chatmux-tools/chatmux/internal/cli"
	"github.com/chatmux-tools/chatmux/internal/completions"
	"github.com/chatmux-tools/chatmux/internal/config"
	"github.com/chatmux-tools/chatmux/internal/log"
	"github.com/chatmux-tools/chatmux/internal/paths"
	"github.com/chatmux-tools/chatmux/internal/ui"
	"github.com/chatmux-tools/chatmux/internal/ui/style"
	"github.com/chatmux-tools/chatmux/internal/usage"
	"github.com/chatmux-tools/chatmux/pkg/dispatch"
)

func main() {
	words, rawFlags := splitArgs(os.Args[1:])
	flags := cli.NewParsedFlags(rawFlags)

	// Flag spellings of the built-in commands
	if flags.Has("--version") || flags.Has("-v") {
		words = []string{"version"}
	} else if flags.Has("--help") || flags.Has("-h") {
		if len(words) > 0 {
			words = []string{"help", words[0]}
		} else {
			words = []string{"help"}
		}
	}

	// Enable styling if stdout is a terminal and --no-color is not set
	enableColor := term.IsTerminal(int(os.Stdout.Fd())) && !flags.Has("--no-color")
	cfg, _ := config.NewProvider().GetAll()
	style.Init(enableColor, cfg)

	// File logging is opt-in via the enable_log config key
	if cfg["enable_log"] == "true" {
		_ = log.Init(paths.LogFilePath(), log.ParseLevel(cfg["log_level"]))
	}

	if flags.Has("--no-pager") {
		ui.DisablePager()
	}
	if pager := flags.String("--pager", ""); pager != "" {
		ui.SetPager(pager)
	}
	if flags.Has("--quiet") || flags.Has("-q") {
		ui.EnableQuiet()
	}

	// A resolution miss must exit non-zero instead of dumping the help
	// page, so the hook converts it into a usage error.
	var resolveErr error
	hooks := dispatch.Hooks{
		NoSuchCommand: func(_ dispatch.Invoker, attempted string) bool {
			resolveErr = usage.UnknownCommand(attempted)
			return false
		},
	}

	handler, err := buildHandler(flags, hooks)
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}

	// The completion query re-enters this handler, so it must be
	// registered before dispatch.
	completions.RegisterHandler(handler)

	console := &cli.Console{}
	err = handler.Dispatch(console, "chatmux", words)
	if err == nil {
		err = resolveErr
	}

	if out := console.Output(); out != "" {
		ui.Pager(out)
	}

	if err != nil {
		var ue *usage.Error
		if errors.As(err, &ue) {
			fmt.Fprintln(os.Stderr, ue.Error())
			os.Exit(ue.GetExitCode())
		}
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}

// splitArgs separates dispatch words from flags. Classification stops
// at "--": everything after it passes through as words, which lets
// completion queries carry flag-shaped tokens.
func splitArgs(args []string) (words []string, flags []string) {
	for i, a := range args {
		if a == "--" {
			words = append(words, args[i+1:]...)
			break
		}
		if len(a) > 0 && a[0] == '-' {
			flags = append(flags, a)
			continue
		}
		words = append(words, a)
	}
	return words, flags
}
