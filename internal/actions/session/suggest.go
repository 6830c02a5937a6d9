package session

import (
	"github.com/chatmux-tools/chatmux/internal/cli"
	"github.com/chatmux-tools/chatmux/internal/usage"
)

// Suggest prints the completion candidates a persona would be offered
// for a partial invocation, one per line.
func Suggest(args []string, flags *cli.ParsedFlags) error {
	return suggest(args, flags, DefaultDeps())
}

func suggest(args []string, _ *cli.ParsedFlags, deps Deps) error {
	if len(args) < 2 {
		return usage.MissingArgument("scenario persona")
	}

	s, err := deps.Load(args[0])
	if err != nil {
		return err
	}

	e, done, err := deps.NewEngine(s)
	if err != nil {
		return err
	}
	defer done()

	p, err := e.Persona(args[1], nil)
	if err != nil {
		return err
	}

	for _, candidate := range e.Complete(p, args[2:]) {
		_, _ = deps.Println(candidate)
	}

	return nil
}
