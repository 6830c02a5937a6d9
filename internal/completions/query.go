package completions

import "github.com/chatmux-tools/chatmux/pkg/dispatch"

// queryInvoker is the actor behind shell completion queries: a console
// with every permission, so candidates match what the operator could
// actually run.
type queryInvoker struct{}

func (queryInvoker) Kind() dispatch.InvokerKind { return dispatch.InvokerConsole }
func (queryInvoker) HasPermission(string) bool  { return true }
func (queryInvoker) SendText(string)            {}

// Query returns completion candidates for the partially typed words.
// Words are the tokens after the binary name, including a trailing
// empty word when the cursor sits past a space. Returns nil when no
// handler is registered.
//
// Candidates are not prefix-filtered here; the shell's completion
// machinery filters against the current word.
func Query(words []string) []string {
	h := GetHandler()
	if h == nil {
		return nil
	}
	if len(words) == 0 {
		words = []string{""}
	}
	return h.Complete(queryInvoker{}, GetBinaryName(), words)
}
