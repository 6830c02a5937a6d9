package grants

import (
	"github.com/chatmux-tools/chatmux/internal/cli"
	"github.com/chatmux-tools/chatmux/internal/log"
	"github.com/chatmux-tools/chatmux/internal/usage"
)

func Add(args []string, flags *cli.ParsedFlags) error {
	return add(args, flags, DefaultDeps())
}

func add(args []string, _ *cli.ParsedFlags, deps Deps) error {
	if len(args) < 3 {
		return usage.MissingArgument("scenario persona permission")
	}

	scenario, persona, permission := args[0], args[1], args[2]

	st, err := deps.OpenStore()
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	held, err := st.HasGrant(scenario, persona, permission)
	if err != nil {
		return err
	}
	if held {
		_, _ = deps.Printf("%s already holds %s in %s\n", persona, permission, scenario)
		return nil
	}

	if err := st.Grant(scenario, persona, permission); err != nil {
		log.Error("grants: add failed: %v", err)
		return err
	}

	log.Info("grants: granted %s to %s/%s", permission, scenario, persona)
	_, _ = deps.Printf("granted %s to %s in %s\n", permission, persona, scenario)
	return nil
}
