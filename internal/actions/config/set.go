package config

import (
	"github.com/chatmux-tools/chatmux/internal/cli"
	"github.com/chatmux-tools/chatmux/internal/domain"
	"github.com/chatmux-tools/chatmux/internal/usage"
)

func Set(args []string, flags *cli.ParsedFlags) error {
	return set(args, flags, DefaultDeps())
}

func set(args []string, _ *cli.ParsedFlags, deps Deps) error {
	if len(args) < 2 {
		return usage.MissingArgument("key value")
	}

	key := args[0]
	value := args[1]

	if !domain.IsValidConfigKey(key) {
		return usage.InvalidConfigKey(key)
	}

	var updated bool
	err := deps.WithLock(func() error {
		lines, err := deps.ReadLines()
		if err != nil {
			return err
		}

		lines, updated = deps.Set(lines, key, value)
		return deps.WriteLines(lines)
	})
	if err != nil {
		return err
	}

	action := "added"
	if updated {
		action = "updated"
	}

	_, _ = deps.Printf("%s %s=%s\n", action, key, value)
	return nil
}
