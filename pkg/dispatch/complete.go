package dispatch

import "strings"

// Complete produces suggestion candidates for a partially typed
// invocation. It mirrors the dispatch walk with one difference: a
// denied subcommand silently truncates the descent instead of
// rejecting anything, so completion never fires hooks and never
// fails.
//
// Candidates are full names (never aliases) in registration order,
// unfiltered: prefix matching against the partial token is the
// caller's concern. At the top level the list holds every permitted
// command name plus the literal "help" token when help is enabled.
func (h *Handler) Complete(inv Invoker, label string, tokens []string) []string {
	if len(tokens) <= 1 {
		candidates := h.permittedTopNames(inv)
		if h.cfg.useHelp {
			candidates = append(candidates, "help")
		}
		return candidates
	}

	if h.cfg.useHelp && len(tokens) == 2 && strings.EqualFold(tokens[0], "help") {
		return h.permittedTopNames(inv)
	}

	node := h.findTop(tokens[0])
	if node == nil || access(inv, node.sig) != accessAllowed {
		return nil
	}

	target, pathLen, _, _ := h.walk(inv, node, tokens)

	candidates := target.cmd.Suggest(inv, label, tokens)

	// Child names are only offered when the cursor sits exactly one
	// token past the resolved path, i.e. the user is typing the next
	// subcommand.
	if h.cfg.completeSubcommands && pathLen == len(tokens)-1 {
		for _, child := range target.children {
			if access(inv, child.sig) == accessAllowed {
				candidates = append(candidates, child.sig.Name)
			}
		}
	}
	return candidates
}

func (h *Handler) permittedTopNames(inv Invoker) []string {
	var names []string
	for _, node := range h.top {
		if access(inv, node.sig) == accessAllowed {
			names = append(names, node.sig.Name)
		}
	}
	return names
}
