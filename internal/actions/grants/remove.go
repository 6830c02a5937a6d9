package grants

import (
	"github.com/chatmux-tools/chatmux/internal/cli"
	"github.com/chatmux-tools/chatmux/internal/log"
	"github.com/chatmux-tools/chatmux/internal/usage"
)

func Remove(args []string, flags *cli.ParsedFlags) error {
	return remove(args, flags, DefaultDeps())
}

func remove(args []string, _ *cli.ParsedFlags, deps Deps) error {
	if len(args) < 3 {
		return usage.MissingArgument("scenario persona permission")
	}

	scenario, persona, permission := args[0], args[1], args[2]

	st, err := deps.OpenStore()
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	removed, err := st.Revoke(scenario, persona, permission)
	if err != nil {
		log.Error("grants: remove failed: %v", err)
		return err
	}

	if !removed {
		_, _ = deps.Printf("%s does not hold %s in %s\n", persona, permission, scenario)
		return nil
	}

	log.Info("grants: revoked %s from %s/%s", permission, scenario, persona)
	_, _ = deps.Printf("revoked %s from %s in %s\n", permission, persona, scenario)
	return nil
}
