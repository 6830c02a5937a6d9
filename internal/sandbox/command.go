package sandbox

import (
	"strings"

	"github.com/chatmux-tools/chatmux/pkg/dispatch"
)

// command is the generic scenario command. Run renders the reply
// template into the invoker's transcript; Suggest serves the static
// suggestion list from the scenario file.
type command struct {
	path        []string
	reply       string
	suggestions []string
	onRun       func(path []string)
}

var _ dispatch.Command = (*command)(nil)

func (c *command) Run(inv dispatch.Invoker, label string, args []string) error {
	if c.onRun != nil {
		c.onRun(c.path)
	}
	if c.reply == "" {
		return nil
	}
	inv.SendText(expandReply(c.reply, inv, label, c.path, args))
	return nil
}

func (c *command) Suggest(_ dispatch.Invoker, _ string, _ []string) []string {
	if len(c.suggestions) == 0 {
		return nil
	}
	out := make([]string, len(c.suggestions))
	copy(out, c.suggestions)
	return out
}

// expandReply substitutes the reply placeholders. Markup codes pass
// through untouched and render at the transcript.
func expandReply(reply string, inv dispatch.Invoker, label string, path, args []string) string {
	name := inv.Kind().String()
	if p, ok := inv.(*Persona); ok {
		name = p.Name()
	}
	return strings.NewReplacer(
		"%persona%", name,
		"%label%", label,
		"%path%", strings.Join(path, " "),
		"%args%", strings.Join(args, " "),
	).Replace(reply)
}
