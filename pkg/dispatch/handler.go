// Package dispatch resolves tokenized invocations against a tree of
// registered commands, enforcing per-command invoker-kind and
// permission policy at every level, and generates paginated or
// per-command help plus completion suggestions. Hosts feed it tokens
// and an Invoker; everything else (parsing, rendering, transport)
// stays outside.
package dispatch

import (
	"strconv"
	"strings"
)

// Handler is an immutable dispatcher produced by Builder.Build. All
// methods are safe for concurrent use: dispatch, completion and help
// are synchronous computations over the sealed tree.
type Handler struct {
	cfg config
	top []*Node
}

type denyReason int

const (
	accessAllowed denyReason = iota
	accessDeniedKind
	accessDeniedPermission
)

// access applies the combined invoker-kind and permission check. Kind
// is evaluated first, matching the order failure hooks fire in.
func access(inv Invoker, sig Signature) denyReason {
	if !sig.Kind.Admits(inv.Kind()) {
		return accessDeniedKind
	}
	if sig.Permission != "" && !inv.HasPermission(sig.Permission) {
		return accessDeniedPermission
	}
	return accessAllowed
}

// Dispatch resolves tokens to a target command and runs it. label is
// the host-side invocation label, passed through to the target and
// used in generated help lines.
//
// Resolution outcomes ("no such command", kind or permission denials)
// are expected user input: they fire the configured hooks, optionally
// render help, and produce no error. The returned error comes
// exclusively from the target command's Run.
func (h *Handler) Dispatch(inv Invoker, label string, tokens []string) error {
	if len(tokens) == 0 {
		if h.cfg.hooks.noArguments(inv) {
			h.renderPage(inv, label, 0)
		}
		return nil
	}

	if h.cfg.useHelp && strings.EqualFold(tokens[0], "help") {
		// A known command name beats a page number; anything else
		// falls back to page parsing.
		if len(tokens) > 1 {
			if target := h.findTop(tokens[1]); target != nil {
				h.renderFocused(inv, label, target)
				return nil
			}
		}
		h.renderPage(inv, label, parsePage(tokens))
		return nil
	}

	node := h.findTop(tokens[0])
	if node == nil {
		if h.cfg.hooks.noSuchCommand(inv, tokens[0]) {
			h.renderPage(inv, label, 0)
		}
		return nil
	}

	switch access(inv, node.sig) {
	case accessDeniedKind:
		if h.cfg.hooks.noInvokerKind(inv, node.sig) {
			h.renderFocused(inv, label, node)
		}
		return nil
	case accessDeniedPermission:
		if h.cfg.hooks.noPermission(inv, node.sig) {
			h.renderFocused(inv, label, node)
		}
		return nil
	}

	target, pathLen, denied, reason := h.walk(inv, node, tokens)
	if denied != nil && !h.cfg.runLastAllowed {
		// Policy: reject the whole invocation at the first disallowed
		// step. The hook fires once, for the denied subcommand.
		show := false
		switch reason {
		case accessDeniedKind:
			show = h.cfg.hooks.noInvokerKind(inv, denied.sig)
		case accessDeniedPermission:
			show = h.cfg.hooks.noPermission(inv, denied.sig)
		}
		if show {
			h.renderFocused(inv, label, denied)
		}
		return nil
	}

	return target.cmd.Run(inv, label, tokens[pathLen:])
}

// walk descends from node along tokens[1:] while the next token
// matches a child and the child admits the invoker. It stops at the
// first non-matching token or denied child and reports the deepest
// allowed node plus the number of tokens consumed by routing. A
// non-nil denied describes the child that stopped the descent.
//
// An explicit loop rather than recursion: partial-depth outcomes are
// the interesting cases and the consumed count falls out of the index.
func (h *Handler) walk(inv Invoker, node *Node, tokens []string) (target *Node, pathLen int, denied *Node, reason denyReason) {
	target = node
	pathLen = 1
	for pathLen < len(tokens) {
		child := target.findChild(tokens[pathLen])
		if child == nil {
			// Unconsumed tokens become the target's arguments.
			return target, pathLen, nil, accessAllowed
		}
		if r := access(inv, child.sig); r != accessAllowed {
			return target, pathLen, child, r
		}
		target = child
		pathLen++
	}
	return target, pathLen, nil, accessAllowed
}

func (h *Handler) findTop(token string) *Node {
	for _, node := range h.top {
		if node.sig.Matches(token) {
			return node
		}
	}
	return nil
}

// parsePage reads tokens[1] as a page number, defaulting to 0 on
// absence or parse failure. Negative pages are clamped by the
// renderer.
func parsePage(tokens []string) int {
	if len(tokens) < 2 {
		return 0
	}
	page, err := strconv.Atoi(tokens[1])
	if err != nil {
		return 0
	}
	return page
}
