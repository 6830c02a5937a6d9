package actions

import "github.com/chatmux-tools/chatmux/internal/cli"

func ShowVersion(args []string, flags *cli.ParsedFlags) error {
	return showVersion(args, flags, defaultDeps())
}

func showVersion(_ []string, _ *cli.ParsedFlags, deps actionDependencies) error {
	_, _ = deps.Printf("chatmux version %v\n", deps.Version())
	return nil
}
