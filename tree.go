package ranktree

/*
BSD 3-Clause License

Copyright (c) Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import "fmt"

// Tree is an ordered map from distinct non-negative integer keys to string
// values, balanced by node ranks (see the package documentation).
//
// The zero value is a valid empty tree. Tree is not safe for concurrent use.
type Tree struct {
	root *node // virtual or nil when the tree is empty
	min  *node // cache: real node with the smallest key, nil when empty
	max  *node // cache: real node with the largest key, nil when empty
}

// New creates an empty tree.
func New() *Tree {
	return &Tree{}
}

// Empty reports whether the tree holds no keys.
func (t *Tree) Empty() bool {
	return t == nil || t.root == nil || !t.root.isRealNode()
}

// Size returns the number of keys in the tree. O(1).
func (t *Tree) Size() int {
	if t.Empty() {
		return 0
	}
	return t.root.size
}

// rank of the tree is the rank of its root; −1 for an empty tree.
func (t *Tree) rank() int {
	if t.Empty() {
		return -1
	}
	return t.root.rank
}

// Min returns the value stored under the smallest key. O(1).
func (t *Tree) Min() (string, bool) {
	if t.Empty() {
		return "", false
	}
	return t.min.value, true
}

// Max returns the value stored under the largest key. O(1).
func (t *Tree) Max() (string, bool) {
	if t.Empty() {
		return "", false
	}
	return t.max.value, true
}

// Search returns the value stored under key, or ErrKeyNotFound.
func (t *Tree) Search(key int) (string, error) {
	if t.Empty() {
		return "", ErrKeyNotFound
	}
	n := t.locate(key)
	if !n.isRealNode() {
		return "", ErrKeyNotFound
	}
	return n.value, nil
}

// locate walks from the root towards key and returns either the real node
// holding key or the virtual node at the position where key would live.
// The tree must not be empty.
func (t *Tree) locate(key int) *node {
	cur := t.root
	for cur.isRealNode() && key != cur.key {
		if key < cur.key {
			cur = cur.left
		} else {
			cur = cur.right
		}
	}
	return cur
}

// linkChild makes child the left or right child of parent and keeps the
// parent's subtree size in sync. A nil parent means child becomes the root.
func (t *Tree) linkChild(parent, child *node, asLeft bool) {
	if parent == nil {
		t.root = child
	} else if asLeft {
		parent.left = child
		parent.recalcSize()
	} else {
		parent.right = child
		parent.recalcSize()
	}
	child.parent = parent
}

// detachChild severs n from its parent, leaving a fresh virtual node in the
// vacated slot. No-op for a root or already detached node.
func (t *Tree) detachChild(n *node) {
	parent := n.parent
	if parent == nil {
		return
	}
	t.linkChild(parent, newSentinel(), parent.left == n)
	n.parent = nil
}

// Insert stores value under key and returns the number of rebalancing
// operations the insertion caused (0 when no rebalancing was necessary).
// Inserting an existing key fails with ErrDuplicateKey and does not mutate
// the tree. O(log n).
func (t *Tree) Insert(key int, value string) (int, error) {
	if key < 0 {
		return 0, fmt.Errorf("%w: negative keys are reserved", ErrPrecondition)
	}
	return t.insertNode(newNode(key, value))
}

// insertNode links a detached real node into the tree and rebalances.
func (t *Tree) insertNode(n *node) (int, error) {
	if t.Empty() {
		t.root = n
		t.min = n
		t.max = n
		return 0, nil
	}
	at := t.locate(n.key)
	if at.isRealNode() {
		return 0, ErrDuplicateKey
	}
	parent := at.parent
	t.linkChild(parent, n, n.key < parent.key)
	if t.min == nil || n.key < t.min.key {
		t.min = n
	} else if t.max == nil || n.key > t.max.key {
		t.max = n
	}
	return t.rebalance(parent, false), nil
}

// Delete removes key from the tree and returns the number of rebalancing
// operations the removal caused. Deleting an absent key fails with
// ErrKeyNotFound and does not mutate the tree. O(log n).
func (t *Tree) Delete(key int) (int, error) {
	if t.Empty() {
		return 0, ErrKeyNotFound
	}
	target := t.locate(key)
	if !target.isRealNode() {
		return 0, ErrKeyNotFound
	}
	// The caches move exactly one key: one step via successor/predecessor
	// suffices and avoids an extra descent.
	if target == t.min {
		t.min = target.successor()
	}
	if target == t.max {
		t.max = target.predecessor()
	}
	return t.deleteNode(target), nil
}

// deleteNode unlinks a node that is known to be in the tree.
//
// A node with two real children is not unlinked directly: a replacement
// carrying the successor's key/value and the deleted node's rank takes its
// place, and the successor node itself (which has at most one real child) is
// deleted from its old position instead.
func (t *Tree) deleteNode(n *node) int {
	isLeft := n.parent != nil && n == n.parent.left
	if n.left.isRealNode() && n.right.isRealNode() {
		suc := n.successor() // cannot be nil: n has a right child
		repl := newNode(suc.key, suc.value)
		repl.rank = n.rank
		t.linkChild(repl, n.left, true)
		t.linkChild(repl, n.right, false)
		t.linkChild(n.parent, repl, isLeft)
		if t.max == suc { // the successor may be the rightmost node
			t.max = repl
		}
		n.reset()
		return t.deleteNode(suc)
	}
	parent := n.parent
	switch {
	case n.left.isRealNode(): // splice the left child up
		t.linkChild(parent, n.left, isLeft)
	case n.right.isRealNode(): // splice the right child up
		t.linkChild(parent, n.right, isLeft)
	default: // leaf: leave a virtual node behind
		t.linkChild(parent, newSentinel(), isLeft)
	}
	n.reset()
	return t.rebalance(parent, false)
}

// Successor returns the smallest key strictly greater than key, with its
// value. The key itself need not be present. O(log n).
func (t *Tree) Successor(key int) (int, string, bool) {
	var cand *node
	for cur := t.root; cur != nil && cur.isRealNode(); {
		if key < cur.key {
			cand = cur
			cur = cur.left
		} else {
			cur = cur.right
		}
	}
	if cand == nil {
		return 0, "", false
	}
	return cand.key, cand.value, true
}

// Predecessor returns the largest key strictly smaller than key, with its
// value. The key itself need not be present. O(log n).
func (t *Tree) Predecessor(key int) (int, string, bool) {
	var cand *node
	for cur := t.root; cur != nil && cur.isRealNode(); {
		if key > cur.key {
			cand = cur
			cur = cur.right
		} else {
			cur = cur.left
		}
	}
	if cand == nil {
		return 0, "", false
	}
	return cand.key, cand.value, true
}

// updateMin rescans for the smallest key. Used after operations that
// redistribute whole subtrees (split); point updates move the cache one
// step instead.
func (t *Tree) updateMin() {
	if t.Empty() {
		t.min = nil
		return
	}
	n := t.root
	for n.left.isRealNode() {
		n = n.left
	}
	t.min = n
}

// updateMax rescans for the largest key.
func (t *Tree) updateMax() {
	if t.Empty() {
		t.max = nil
		return
	}
	n := t.root
	for n.right.isRealNode() {
		n = n.right
	}
	t.max = n
}

// consume empties the tree shell after its nodes have been handed over to
// another tree. Stale references then observe an empty tree.
func (t *Tree) consume() {
	t.root = nil
	t.min = nil
	t.max = nil
}
