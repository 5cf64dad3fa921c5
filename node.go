package ranktree

/*
BSD 3-Clause License

Copyright (c) Norbert Pillmayer

Please refer to the License file in the repository root.

*/

// sentinelKey is the reserved key of virtual nodes. Client keys must be
// non-negative; −1 marks the absence of a node.
const sentinelKey = -1

// node is one cell of the tree: either a real key/value pair or a virtual
// placeholder standing in for an absent child (or an absent root).
//
// Children are owning links and are never nil on a real node; a missing
// child is represented by a virtual node. The parent link is a non-owning
// back-reference; it is nil for the root and for detached nodes.
type node struct {
	key         int
	value       string
	rank        int // height label: −1 virtual, 0 leaf
	size        int // real nodes in this subtree, including self
	left, right *node
	parent      *node
}

// newSentinel creates a fresh virtual node (rank −1, size 0, no children).
func newSentinel() *node {
	return &node{key: sentinelKey, rank: -1}
}

// newNode creates a real leaf node with two virtual children.
func newNode(key int, value string) *node {
	n := &node{key: key, value: value, rank: 0, size: 1}
	n.left = newSentinel()
	n.right = newSentinel()
	n.left.parent = n
	n.right.parent = n
	return n
}

// isRealNode reports whether n is a real node, i.e. not a virtual
// placeholder.
func (n *node) isRealNode() bool {
	return n.key != sentinelKey
}

// recalcSize refreshes the subtree size from the children. Must be called
// after every change to a child slot; ancestors are the caller's business.
func (n *node) recalcSize() {
	n.size = n.left.size + n.right.size + 1
}

func (n *node) promote() {
	n.rank++
}

func (n *node) demote() {
	n.rank--
}

// successor returns the node holding the next larger key, or nil if n holds
// the maximum.
func (n *node) successor() *node {
	if n.right.isRealNode() {
		s := n.right
		for s.left.isRealNode() {
			s = s.left
		}
		return s
	}
	for n.parent != nil {
		if n == n.parent.left {
			return n.parent
		}
		n = n.parent
	}
	return nil
}

// predecessor returns the node holding the next smaller key, or nil if n
// holds the minimum.
func (n *node) predecessor() *node {
	if n.left.isRealNode() {
		p := n.left
		for p.right.isRealNode() {
			p = p.right
		}
		return p
	}
	for n.parent != nil {
		if n == n.parent.right {
			return n.parent
		}
		n = n.parent
	}
	return nil
}

// reset severs a node that has been unlinked from its tree: both child slots
// get fresh virtual nodes and the parent link is cleared. The node can then
// be garbage collected (or re-inserted) without dangling into the tree.
func (n *node) reset() {
	n.left = newSentinel()
	n.right = newSentinel()
	n.left.parent = n
	n.right.parent = n
	n.parent = nil
	n.size = 1
}
