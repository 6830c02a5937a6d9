package session

import (
	"github.com/chatmux-tools/chatmux/internal/cli"
	"github.com/chatmux-tools/chatmux/internal/usage"
)

// Play opens the interactive shell on a scenario. The scenario path
// falls back to the default_scenario config key, the persona to the
// first one the scenario declares.
func Play(args []string, flags *cli.ParsedFlags) error {
	return play(args, flags, DefaultDeps())
}

func play(args []string, flags *cli.ParsedFlags, deps Deps) error {
	path := ""
	if len(args) > 0 {
		path = args[0]
	} else if configured, ok := deps.ConfigGet("default_scenario"); ok {
		path = configured
	}
	if path == "" {
		return usage.MissingArgument("scenario")
	}

	s, err := deps.Load(path)
	if err != nil {
		return err
	}

	e, done, err := deps.NewEngine(s)
	if err != nil {
		return err
	}
	defer done()

	persona := flags.String("--persona", "")
	if persona == "" {
		persona = s.Personas[0].Name
	}

	// Reject unknown personas before the terminal switches modes
	if _, err := e.Persona(persona, nil); err != nil {
		return err
	}

	return deps.RunShell(e, persona)
}
