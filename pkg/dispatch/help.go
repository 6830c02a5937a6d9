package dispatch

import (
	"strconv"
	"strings"
)

// HelpPage renders one page of the help listing to the invoker,
// covering every top-level command the invoker passes the access
// check for. Out-of-range pages yield the header and no entries.
func (h *Handler) HelpPage(inv Invoker, label string, page int) {
	h.renderPage(inv, label, page)
}

// HelpFocused renders the focused view for the named top-level
// command: header, property summary, then the command's own permitted
// help lines. It reports false when the name matches nothing.
func (h *Handler) HelpFocused(inv Invoker, label, name string) bool {
	node := h.findTop(name)
	if node == nil {
		return false
	}
	h.renderFocused(inv, label, node)
	return true
}

func (h *Handler) renderPage(inv Invoker, label string, page int) {
	if page < 0 {
		page = 0
	}
	var lines []string
	for _, node := range h.top {
		if access(inv, node.sig) != accessAllowed {
			continue
		}
		lines = append(lines, h.collectLines(inv, node, "/"+label)...)
	}

	inv.SendText(strings.ReplaceAll(h.cfg.helpHeader, "%page%", strconv.Itoa(page)))
	end := min((page+1)*h.cfg.pageSize, len(lines))
	for i := page * h.cfg.pageSize; i < end; i++ {
		inv.SendText(lines[i])
	}
}

func (h *Handler) renderFocused(inv Invoker, label string, node *Node) {
	sig := node.sig
	inv.SendText(strings.ReplaceAll(h.cfg.helpHeader, "%page%", "0"))
	h.sendProperty(inv, "Name", sig.Name)
	h.sendProperty(inv, "Aliases", "["+strings.Join(sig.Aliases, ", ")+"]")
	h.sendProperty(inv, "Kind", sig.Kind.String())
	h.sendProperty(inv, "Permission", sig.Permission)
	h.sendProperty(inv, "Description", sig.Description)
	for _, line := range h.collectLines(inv, node, "/"+label) {
		inv.SendText(line)
	}
}

func (h *Handler) sendProperty(inv Invoker, name, value string) {
	inv.SendText(h.cfg.propertyPrefix + name + h.cfg.propertySpacer + value)
}

// collectLines gathers the help lines for node and its permitted
// descendants, depth first in attachment order. A node contributes a
// line of its own only when it has a description or no children;
// silent intermediate groups would otherwise produce empty entries.
func (h *Handler) collectLines(inv Invoker, node *Node, prefix string) []string {
	sig := node.sig
	prefix = prefix + " " + sig.Name

	var lines []string
	if sig.Description != "" || len(node.children) == 0 {
		line := h.cfg.linePrefix + prefix
		if sig.Arguments != "" {
			line += h.cfg.argumentSpacer + sig.Arguments
		}
		line += h.cfg.descriptionSpacer + sig.Description
		lines = append(lines, line)
	}
	for _, child := range node.children {
		if access(inv, child.sig) != accessAllowed {
			continue
		}
		lines = append(lines, h.collectLines(inv, child, prefix)...)
	}
	return lines
}
