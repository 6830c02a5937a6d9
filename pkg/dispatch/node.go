package dispatch

import "strings"

// Node ties a Signature and a Command together with an ordered set of
// subcommand children. Nodes form a strict tree: a node can be
// attached as a child exactly once, and attachment happens before the
// tree is handed to a Builder. After Build the tree must not be
// mutated.
type Node struct {
	sig      Signature
	cmd      Command
	children []*Node
	attached bool
}

// NewNode creates an unattached node. Validation happens at
// registration time, when the node is added to a builder or attached
// under a parent.
func NewNode(sig Signature, cmd Command) *Node {
	return &Node{sig: sig, cmd: cmd}
}

// Signature returns the node's metadata.
func (n *Node) Signature() Signature { return n.sig }

// Children returns the node's subcommands in attachment order.
func (n *Node) Children() []*Node {
	out := make([]*Node, len(n.children))
	copy(out, n.children)
	return out
}

// AttachSub registers child as a subcommand. The child must carry
// KindSubcommand, must not be attached elsewhere, and must not collide
// case-insensitively with any sibling's name or alias. On error the
// child set is left unchanged.
func (n *Node) AttachSub(child *Node) error {
	if err := validateNode("AttachSub", child); err != nil {
		return err
	}
	if child.sig.Kind != KindSubcommand {
		return configErrorf("AttachSub", "cannot attach %q: command kind must be %s, got %s",
			child.sig.Name, KindSubcommand, child.sig.Kind)
	}
	if child.attached {
		return configErrorf("AttachSub", "cannot attach %q: node is already attached", child.sig.Name)
	}
	if detail := siblingConflict(n.children, child.sig); detail != "" {
		return configErrorf("AttachSub", "cannot attach %q: %s", child.sig.Name, detail)
	}
	child.attached = true
	n.children = append(n.children, child)
	return nil
}

// findChild resolves token against the children by name or alias,
// case-insensitively. Uniqueness among siblings guarantees at most one
// match.
func (n *Node) findChild(token string) *Node {
	for _, child := range n.children {
		if child.sig.Matches(token) {
			return child
		}
	}
	return nil
}

func validateNode(op string, n *Node) error {
	if n == nil {
		return configErrorf(op, "node is nil")
	}
	if strings.TrimSpace(n.sig.Name) == "" {
		return configErrorf(op, "command name is empty")
	}
	if n.cmd == nil {
		return configErrorf(op, "cannot register %q: node has no command", n.sig.Name)
	}
	return nil
}

// siblingConflict checks sig against an existing sibling set and
// returns a description of the first conflict found, or "". The same
// four checks guard the top-level registry and every node's children:
// name vs name, alias vs name, alias vs alias, name vs alias, all
// case-insensitive.
func siblingConflict(siblings []*Node, sig Signature) string {
	for _, sibling := range siblings {
		other := sibling.sig
		if strings.EqualFold(other.Name, sig.Name) {
			return "name " + sig.Name + " is already registered"
		}
		for _, alias := range sig.Aliases {
			if strings.EqualFold(other.Name, alias) {
				return "alias " + alias + " is already used as the name of " + other.Name
			}
			for _, existing := range other.Aliases {
				if strings.EqualFold(existing, alias) {
					return "alias " + alias + " is already used as an alias of " + other.Name
				}
			}
		}
		for _, existing := range other.Aliases {
			if strings.EqualFold(existing, sig.Name) {
				return "name " + sig.Name + " is already used as an alias of " + other.Name
			}
		}
	}
	return ""
}
