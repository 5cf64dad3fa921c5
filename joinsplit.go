package ranktree

/*
BSD 3-Clause License

Copyright (c) Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import "fmt"

// Join merges other into t around a separator key: every key of one tree
// must lie below sepKey and every key of the other above it. Either side may
// be empty. The key ordering is the caller's contract and is not checked on
// this hot path (Check will flag the wreckage in tests).
//
// Join consumes both operands: t owns the merged result and other is reset
// to an empty tree. The returned cost is |rank(t)−rank(other)|+1, the length
// of the spine walk to the splice point.
//
// O(|rank(t) − rank(other)|).
func (t *Tree) Join(sepKey int, sepValue string, other *Tree) (int, error) {
	if other == nil {
		return 0, fmt.Errorf("%w: nil tree argument", ErrPrecondition)
	}
	if sepKey < 0 {
		return 0, fmt.Errorf("%w: negative keys are reserved", ErrPrecondition)
	}
	cost := t.joinNode(newNode(sepKey, sepValue), other)
	other.consume()
	return cost, nil
}

// joinNode splices a detached separator node between t and other, leaving
// the result in t. The shells' min/max caches are taken over from the
// respective sides; callers composing transient trees (split) recompute
// them afterwards.
func (t *Tree) joinNode(x *node, other *Tree) int {
	// An empty side degenerates to an insertion into the other side, with
	// cost proportional to that side's rank.
	if t.Empty() {
		cost := other.rank() + 1
		t.root = other.root
		t.min = other.min
		t.max = other.max
		t.insertNode(x) //nolint:errcheck // x's key is fresh by contract
		return cost
	}
	if other.Empty() {
		cost := t.rank() + 1
		t.insertNode(x) //nolint:errcheck
		return cost
	}

	var lower, upper *Tree // sides by key range relative to x
	if t.root.key > x.key {
		lower, upper = other, t
	} else {
		lower, upper = t, other
	}
	lowerRank := lower.root.rank
	upperRank := upper.root.rank
	cost := abs(lowerRank-upperRank) + 1
	t.min = lower.min
	t.max = upper.max

	switch {
	case lowerRank == upperRank:
		// Equal ranks: x becomes the new root right away.
		t.linkChild(x, lower.root, true)
		t.linkChild(x, upper.root, false)
		t.root = x
		x.parent = nil
		x.rank = upperRank + 1
	case upperRank > lowerRank:
		// Walk the taller tree's left spine down to the first node whose
		// rank is at most two above the shorter tree, then splice x there.
		spine := upper.root
		for spine.rank > lowerRank+2 {
			spine = spine.left
		}
		tracer().Debugf("join: splicing separator %d at rank %d on left spine", x.key, spine.rank)
		t.linkChild(x, lower.root, true)
		t.linkChild(x, spine.left, false)
		t.linkChild(spine, x, true)
		t.root = upper.root
		x.rank = spine.rank
	default: // lowerRank > upperRank
		spine := lower.root
		for spine.rank > upperRank+2 {
			spine = spine.right
		}
		tracer().Debugf("join: splicing separator %d at rank %d on right spine", x.key, spine.rank)
		t.linkChild(x, spine.right, true)
		t.linkChild(x, upper.root, false)
		t.linkChild(spine, x, false)
		t.root = lower.root
		x.rank = spine.rank
	}
	t.root.parent = nil
	t.rebalance(x, true)
	return cost
}

// Split partitions t around a key that must be present: the result is one
// tree holding all keys below key and one holding all keys above it; the
// key itself is dropped. An absent key fails with ErrKeyNotFound before any
// mutation.
//
// Split consumes t. The work is a sequence of joins along the ancestor path
// of the split node, each bounded by the local rank difference, O(log n)
// in total.
func (t *Tree) Split(key int) (*Tree, *Tree, error) {
	if t.Empty() {
		return nil, nil, fmt.Errorf("%w: split key %d not in tree", ErrKeyNotFound, key)
	}
	cur := t.locate(key)
	if !cur.isRealNode() {
		return nil, nil, fmt.Errorf("%w: split key %d not in tree", ErrKeyNotFound, key)
	}
	lower := New()
	upper := New()
	if cur.right.isRealNode() {
		upper.root = cur.right
		t.detachChild(upper.root)
	}
	if cur.left.isRealNode() {
		lower.root = cur.left
		t.detachChild(lower.root)
	}
	// Climb towards the root. Each ancestor is duplicated into a fresh
	// connector node (the join recomputes its rank) and joined, together
	// with its outer subtree, into the matching side.
	for cur.parent != nil {
		fromLeft := cur.parent.left == cur
		cur = cur.parent
		connector := newNode(cur.key, cur.value)
		right := cur.right
		left := cur.left
		t.detachChild(right)
		t.detachChild(left)
		side := New()
		if fromLeft {
			// We came up from the left: the ancestor and everything to its
			// right belong above the split key.
			side.root = right
			upper.joinNode(connector, side)
		} else {
			side.root = left
			lower.joinNode(connector, side)
		}
	}
	upper.updateMin()
	upper.updateMax()
	lower.updateMin()
	lower.updateMax()
	t.consume()
	tracer().Debugf("split at %d: %d keys below, %d above", key, lower.Size(), upper.Size())
	return lower, upper, nil
}

func abs(a int) int {
	if a < 0 {
		return -a
	}
	return a
}
