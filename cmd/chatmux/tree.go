package main

import (
	"fmt"

	"github.com/chatmux-tools/chatmux/internal/actions"
	auditactions "github.com/chatmux-tools/chatmux/internal/actions/audit"
	completionactions "github.com/chatmux-tools/chatmux/internal/actions/completions"
	configactions "github.com/chatmux-tools/chatmux/internal/actions/config"
	grantactions "github.com/chatmux-tools/chatmux/internal/actions/grants"
	sessionactions "github.com/chatmux-tools/chatmux/internal/actions/session"
	"github.com/chatmux-tools/chatmux/internal/cli"
	"github.com/chatmux-tools/chatmux/internal/usage"
	"github.com/chatmux-tools/chatmux/pkg/dispatch"
)

// action is the shape every CLI action shares: positional words plus
// the invocation-wide flag set parsed in main.
type action func(args []string, flags *cli.ParsedFlags) error

// adapt bridges an action into the dispatch Command shape. Invoker
// and label carry no information on the command line, so actions
// ignore them and close over the shared flags instead.
func adapt(flags *cli.ParsedFlags, fn action) dispatch.Command {
	return dispatch.Func(func(_ dispatch.Invoker, _ string, args []string) error {
		return fn(args, flags)
	})
}

// group is the run behavior of parent commands that exist only to
// hold subcommands. Leftover words mean the subcommand did not match,
// so the full attempted path is reported; a bare invocation points at
// the group's help instead.
func group(name string) dispatch.Command {
	return dispatch.Func(func(_ dispatch.Invoker, _ string, args []string) error {
		if len(args) > 0 {
			return usage.UnknownCommand(name + " " + args[0])
		}
		return &usage.Error{
			Kind:    usage.ErrMissingArgument,
			Message: fmt.Sprintf("chatmux: '%s' needs a subcommand. See 'chatmux help %s'.", name, name),
		}
	})
}

func sub(sig dispatch.Signature, cmd dispatch.Command) *dispatch.Node {
	sig.Kind = dispatch.KindSubcommand
	return dispatch.NewNode(sig, cmd)
}

// buildHandler assembles the chatmux command tree. The binary is its
// own dispatch client: help and completion for these commands come
// from the same engine that scenarios run on.
func buildHandler(flags *cli.ParsedFlags, hooks dispatch.Hooks) (*dispatch.Handler, error) {
	b := dispatch.NewBuilder()

	var firstErr error
	must := func(err error) {
		if err != nil && firstErr == nil {
			firstErr = err
		}
	}

	must(b.EnableHelp(true))
	must(b.CompleteSubcommands(true))
	must(b.PageSize(20))
	must(b.HelpHeader("chatmux commands (page %page%)"))
	must(b.SetHooks(hooks))

	must(b.Add(dispatch.NewNode(dispatch.Signature{
		Name:        "version",
		Description: "Show chatmux version",
	}, adapt(flags, actions.ShowVersion))))

	must(b.Add(dispatch.NewNode(dispatch.Signature{
		Name:        "play",
		Arguments:   "[scenario]",
		Description: "Open the interactive scenario shell",
	}, adapt(flags, sessionactions.Play))))

	must(b.Add(dispatch.NewNode(dispatch.Signature{
		Name:        "eval",
		Arguments:   "<scenario> <persona> <command...>",
		Description: "Dispatch one command as a persona and print the transcript",
	}, adapt(flags, sessionactions.Eval))))

	must(b.Add(dispatch.NewNode(dispatch.Signature{
		Name:        "suggest",
		Arguments:   "<scenario> <persona> <tokens...>",
		Description: "Print completion candidates for a partial command",
	}, adapt(flags, sessionactions.Suggest))))

	grants := dispatch.NewNode(dispatch.Signature{
		Name:        "grants",
		Description: "Manage persona permission grants",
	}, group("grants"))
	must(grants.AttachSub(sub(dispatch.Signature{
		Name:        "add",
		Arguments:   "<scenario> <persona> <permission>",
		Description: "Grant a permission to a persona",
	}, adapt(flags, grantactions.Add))))
	must(grants.AttachSub(sub(dispatch.Signature{
		Name:        "remove",
		Arguments:   "<scenario> <persona> <permission>",
		Description: "Revoke a granted permission",
	}, adapt(flags, grantactions.Remove))))
	must(grants.AttachSub(sub(dispatch.Signature{
		Name:        "list",
		Arguments:   "<scenario>",
		Description: "List a scenario's persisted grants",
	}, adapt(flags, grantactions.List))))
	must(b.Add(grants))

	must(b.Add(dispatch.NewNode(dispatch.Signature{
		Name:        "audit",
		Description: "Show recent dispatch audit events",
	}, adapt(flags, auditactions.List))))

	config := dispatch.NewNode(dispatch.Signature{
		Name:        "config",
		Description: "Manage configuration",
	}, group("config"))
	must(config.AttachSub(sub(dispatch.Signature{
		Name:        "get",
		Arguments:   "<key>",
		Description: "Get a config value",
	}, adapt(flags, configactions.Get))))
	must(config.AttachSub(sub(dispatch.Signature{
		Name:        "set",
		Arguments:   "<key> <value>",
		Description: "Set a config value",
	}, adapt(flags, configactions.Set))))
	must(config.AttachSub(sub(dispatch.Signature{
		Name:        "unset",
		Arguments:   "<key>",
		Description: "Remove a config value",
	}, adapt(flags, configactions.Unset))))
	must(config.AttachSub(sub(dispatch.Signature{
		Name:        "list",
		Description: "List all config values",
	}, adapt(flags, configactions.List))))
	must(b.Add(config))

	completions := dispatch.NewNode(dispatch.Signature{
		Name:        "completions",
		Arguments:   "[shell]",
		Description: "Set up shell completions",
	}, adapt(flags, completionactions.Completions))
	must(completions.AttachSub(sub(dispatch.Signature{
		Name:        "bash",
		Description: "Print bash completion setup",
	}, adapt(flags, completionactions.Bash))))
	must(completions.AttachSub(sub(dispatch.Signature{
		Name:        "zsh",
		Description: "Print zsh completion setup",
	}, adapt(flags, completionactions.Zsh))))
	must(completions.AttachSub(sub(dispatch.Signature{
		Name:        "fish",
		Description: "Print fish completion setup",
	}, adapt(flags, completionactions.Fish))))
	must(completions.AttachSub(sub(dispatch.Signature{
		Name:        "query",
		Arguments:   "-- <words...>",
		Description: "Print completion candidates for the current words",
	}, adapt(flags, completionactions.Query))))
	must(b.Add(completions))

	if firstErr != nil {
		return nil, firstErr
	}
	return b.Build(), nil
}
