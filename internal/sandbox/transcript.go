package sandbox

import (
	"sync"

	"github.com/chatmux-tools/chatmux/internal/ui/style"
)

// Transcript collects the lines a persona receives, in arrival order.
// Lines pass through the markup layer on the way in, so stored text is
// ready for display.
type Transcript struct {
	mu    sync.Mutex
	lines []string
}

// Append renders line's markup codes and stores the result.
func (t *Transcript) Append(line string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.lines = append(t.lines, style.RenderMarkup(line))
}

// Lines returns a copy of the collected lines.
func (t *Transcript) Lines() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]string, len(t.lines))
	copy(out, t.lines)
	return out
}

// Len returns the number of collected lines.
func (t *Transcript) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.lines)
}

// Reset discards all collected lines.
func (t *Transcript) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.lines = nil
}
