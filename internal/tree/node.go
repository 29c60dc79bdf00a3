package tree

import "strings"

// PathSeparator joins the name segments of a node's path, most-specific
// segment first.
const PathSeparator = "."

// Node is one entry in the directory hierarchy. A node with a URL is a leaf
// entry; a node without one is a group. Both may carry children, and sibling
// order is the display order. Optional fields are empty strings when unset —
// an empty input column and a missing one are indistinguishable.
type Node struct {
	Name        string
	Title       string
	Description string
	URL         string

	parent   *Node
	children []*Node
}

// Path returns the dot-joined chain of names from this node up through every
// ancestor, most-specific segment first (e.g. "game.wowhead.retripal").
// Paths are the unique lookup keys of a Store. Path depends only on the
// ancestor chain, so it is well-defined before the node is added to a store.
func (n *Node) Path() string {
	return strings.Join(n.Segments(), PathSeparator)
}

// Segments returns the name chain from this node to its root, self first.
func (n *Node) Segments() []string {
	var segs []string
	for cur := n; cur != nil; cur = cur.parent {
		segs = append(segs, cur.Name)
	}
	return segs
}

// IsLeaf reports whether this node is a leaf entry (has a URL).
func (n *Node) IsLeaf() bool { return n.URL != "" }

// IsGroup reports whether this node is a group (no URL).
func (n *Node) IsGroup() bool { return n.URL == "" }

// IsRoot reports whether this node sits at the top level of the forest.
func (n *Node) IsRoot() bool { return n.parent == nil }

// HasChildren reports whether any nodes have been attached to this one.
func (n *Node) HasChildren() bool { return len(n.children) > 0 }

// Parent returns the owning node, or nil for roots.
func (n *Node) Parent() *Node { return n.parent }

// Children returns the ordered child list. The returned slice is the node's
// own; callers must not modify it.
func (n *Node) Children() []*Node { return n.children }

// Attach appends child to this node's children and sets its parent back-
// reference. Attachment happens exactly once per node, during parsing;
// callers must not attach the same child twice or introduce a cycle.
func (n *Node) Attach(child *Node) {
	child.parent = n
	n.children = append(n.children, child)
}
