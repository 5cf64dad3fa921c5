package ranktree

import "iter"

// Keys returns all keys in ascending order, eagerly materialized. The empty
// tree yields an empty slice. O(n).
func (t *Tree) Keys() []int {
	out := make([]int, 0, t.Size())
	if t.Empty() {
		return out
	}
	inOrder(t.root, func(n *node) bool {
		out = append(out, n.key)
		return true
	})
	return out
}

// Values returns all values, ordered by their keys, eagerly materialized.
// The empty tree yields an empty slice. O(n).
func (t *Tree) Values() []string {
	out := make([]string, 0, t.Size())
	if t.Empty() {
		return out
	}
	inOrder(t.root, func(n *node) bool {
		out = append(out, n.value)
		return true
	})
	return out
}

// RangeKeys returns an iterator over the keys in ascending order.
//
// The tree must not be mutated while ranging.
func (t *Tree) RangeKeys() iter.Seq[int] {
	return func(yield func(int) bool) {
		if t.Empty() {
			return
		}
		inOrder(t.root, func(n *node) bool {
			return yield(n.key)
		})
	}
}

// RangeItems returns an iterator over key/value pairs in ascending key
// order.
//
// The tree must not be mutated while ranging.
func (t *Tree) RangeItems() iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		if t.Empty() {
			return
		}
		inOrder(t.root, func(n *node) bool {
			return yield(n.key, n.value)
		})
	}
}

// inOrder visits the real nodes of a subtree in ascending key order until
// the visitor returns false.
func inOrder(n *node, visit func(*node) bool) bool {
	if !n.isRealNode() {
		return true
	}
	if !inOrder(n.left, visit) {
		return false
	}
	if !visit(n) {
		return false
	}
	return inOrder(n.right, visit)
}
