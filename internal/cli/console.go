package cli

import (
	"strings"

	"github.com/chatmux-tools/chatmux/pkg/dispatch"
)

// Console is the invoker behind the chatmux binary itself. It runs with
// console kind and every permission, and buffers text sent back by the
// handler (help pages, usage feedback) so main can flush it through the
// pager in one piece.
type Console struct {
	lines []string
}

var _ dispatch.Invoker = (*Console)(nil)

// Kind identifies the console invoker.
func (c *Console) Kind() dispatch.InvokerKind {
	return dispatch.InvokerConsole
}

// HasPermission always grants access. The operator owns the machine.
func (c *Console) HasPermission(string) bool {
	return true
}

// SendText buffers a line for later flushing.
func (c *Console) SendText(line string) {
	c.lines = append(c.lines, line)
}

// Output returns the buffered lines joined with newlines, with a
// trailing newline, or "" when nothing was sent.
func (c *Console) Output() string {
	if len(c.lines) == 0 {
		return ""
	}
	return strings.Join(c.lines, "\n") + "\n"
}
