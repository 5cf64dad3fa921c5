package ranktree

/*
BSD 3-Clause License

Copyright (c) Norbert Pillmayer

Please refer to the License file in the repository root.

*/

type builderItem struct {
	key   int
	value string
}

// Builder stages key/value pairs in ascending key order and finalizes them
// into a Tree in O(n), which is faster than n repeated insertions.
//
// The empty instance is a valid builder, but clients may use NewBuilder.
type Builder struct {
	items []builderItem
	done  bool
	dirty bool
	tree  *Tree
}

// NewBuilder creates a new and empty tree builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Append stages one key/value pair. Keys must arrive strictly ascending and
// non-negative; violations fail with ErrKeysOutOfOrder resp. ErrPrecondition
// and leave the staged build untouched.
func (b *Builder) Append(key int, value string) error {
	if b.done {
		return ErrTreeCompleted
	}
	if key < 0 {
		return ErrPrecondition
	}
	if len(b.items) > 0 && key <= b.items[len(b.items)-1].key {
		return ErrKeysOutOfOrder
	}
	b.items = append(b.items, builderItem{key: key, value: value})
	b.dirty = true
	return nil
}

// Tree returns the tree built from all staged pairs.
//
// It is illegal to continue staging pairs after Tree has been called, but
// Tree may be called multiple times.
func (b *Builder) Tree() *Tree {
	if b == nil {
		return New()
	}
	if b.dirty {
		b.tree = buildBalanced(b.items)
		b.dirty = false
	}
	b.done = true
	if b.tree == nil {
		b.tree = New()
	}
	if b.tree.Empty() {
		tracer().Debugf("tree builder: tree is empty")
	}
	return b.tree
}

// Reset drops the staged build and prepares the builder for a fresh build.
func (b *Builder) Reset() {
	b.items = nil
	b.done = false
	b.dirty = false
	b.tree = nil
}

// buildBalanced constructs a perfectly balanced tree from sorted items by
// recursive midpoint splitting. The subtrees' sizes differ by at most one
// per node, so the rank rule holds by construction.
func buildBalanced(items []builderItem) *Tree {
	t := New()
	if len(items) == 0 {
		return t
	}
	t.root = buildRange(items)
	t.updateMin()
	t.updateMax()
	return t
}

func buildRange(items []builderItem) *node {
	if len(items) == 0 {
		return newSentinel()
	}
	mid := len(items) >> 1
	n := newNode(items[mid].key, items[mid].value)
	n.left = buildRange(items[:mid])
	n.right = buildRange(items[mid+1:])
	n.left.parent = n
	n.right.parent = n
	n.recalcSize()
	if n.left.rank > n.right.rank {
		n.rank = n.left.rank + 1
	} else {
		n.rank = n.right.rank + 1
	}
	return n
}
