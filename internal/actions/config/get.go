package config

import (
	"github.com/chatmux-tools/chatmux/internal/cli"
	"github.com/chatmux-tools/chatmux/internal/usage"
)

func Get(args []string, flags *cli.ParsedFlags) error {
	return get(args, flags, DefaultDeps())
}

func get(args []string, _ *cli.ParsedFlags, deps Deps) error {
	if len(args) < 1 {
		return usage.MissingArgument("key")
	}

	key := args[0]

	value, found := deps.Get(key)
	if !found {
		return usage.InvalidConfigKey(key)
	}

	_, _ = deps.Println(value)
	return nil
}
