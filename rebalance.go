package ranktree

/*
BSD 3-Clause License

Copyright (c) Norbert Pillmayer

Please refer to the License file in the repository root.

*/

// rotateLeft re-parents three nodes in O(1): the right child of n becomes
// the subtree root, n its left child. The pivot is reattached to n's former
// parent slot, or becomes the tree root.
func (t *Tree) rotateLeft(n *node) {
	parent := n.parent
	isLeft := parent != nil && parent.left == n
	pivot := n.right
	t.linkChild(n, pivot.left, false)
	t.linkChild(pivot, n, true)
	t.linkChild(parent, pivot, isLeft)
}

// rotateRight is the mirror image of rotateLeft.
func (t *Tree) rotateRight(n *node) {
	parent := n.parent
	isLeft := parent != nil && parent.left == n
	pivot := n.left
	t.linkChild(n, pivot.right, true)
	t.linkChild(pivot, n, false)
	t.linkChild(parent, pivot, isLeft)
}

// updateSizesUpward refreshes subtree sizes from n up to the root.
func updateSizesUpward(n *node) {
	for n != nil {
		n.recalcSize()
		n = n.parent
	}
}

// rebalance walks from start towards the root, repairing rank-rule
// violations. It is the single rebalancing routine shared by insertion,
// deletion and join; the three callers leave different violation patterns
// behind, and the walk dispatches on the rank differences to the two
// children at each step.
//
// The walk normally terminates at the first node that satisfies the rank
// rule. Join is the exception: the splice point may look locally balanced
// while ancestors above it still violate the invariant, so fromJoin forces
// the first balanced step to continue upward once; afterwards the walk
// behaves normally.
//
// The return value counts rebalancing operations: a promotion, demotion or
// single rotation is one operation, a double rotation two. Callers use it
// for complexity accounting only.
func (t *Tree) rebalance(start *node, fromJoin bool) int {
	ops := 0
	for cur := start; cur != nil; fromJoin = false {
		dl := cur.rank - cur.left.rank
		dr := cur.rank - cur.right.rank
		switch {
		case dl == 1 && dr == 1, dl == 2 && dr == 1, dl == 1 && dr == 2:
			// Balanced. Refresh the sizes up to the root and stop, unless
			// the splice of a join may have upset an ancestor.
			updateSizesUpward(cur)
			if !fromJoin {
				return ops
			}
			cur = cur.parent

		case dl == 0 && dr == 1, dl == 1 && dr == 0:
			// One child caught up after an insertion below it.
			cur.recalcSize()
			cur.promote()
			ops++
			cur = cur.parent

		case dl == 0 && dr == 2:
			l := cur.left
			ldl := l.rank - l.left.rank
			ldr := l.rank - l.right.rank
			switch {
			case ldl == 1 && ldr == 2: // left-left heavy
				t.rotateRight(cur)
				cur.demote()
				ops += 2
				updateSizesUpward(cur)
				if !fromJoin {
					return ops
				}
				cur = cur.parent.parent
			case ldl == 2 && ldr == 1: // left-right heavy
				t.rotateLeft(cur.left)
				t.rotateRight(cur)
				cur.parent.left.demote()
				cur.demote()
				cur.parent.promote()
				ops += 5
				updateSizesUpward(cur)
				if !fromJoin {
					return ops
				}
				cur = cur.parent.parent
			default: // ldl == 1 && ldr == 1, only after a join splice
				cur.recalcSize()
				t.rotateRight(cur)
				cur.parent.promote()
				ops += 2
				cur = cur.parent.parent
			}

		case dl == 2 && dr == 0:
			r := cur.right
			rdl := r.rank - r.left.rank
			rdr := r.rank - r.right.rank
			switch {
			case rdl == 2 && rdr == 1: // right-right heavy
				t.rotateLeft(cur)
				cur.demote()
				ops += 2
				updateSizesUpward(cur)
				if !fromJoin {
					return ops
				}
				cur = cur.parent.parent
			case rdl == 1 && rdr == 2: // right-left heavy
				t.rotateRight(cur.right)
				t.rotateLeft(cur)
				cur.parent.right.demote()
				cur.demote()
				cur.parent.promote()
				ops += 5
				updateSizesUpward(cur)
				if !fromJoin {
					return ops
				}
				cur = cur.parent.parent
			default: // rdl == 1 && rdr == 1, only after a join splice
				cur.recalcSize()
				t.rotateLeft(cur)
				cur.parent.promote()
				ops += 2
				cur = cur.parent.parent
			}

		case dl == 2 && dr == 2:
			// Both children dropped after a deletion.
			cur.recalcSize()
			cur.demote()
			ops++
			cur = cur.parent

		case dl == 3 && dr == 1:
			r := cur.right
			rdl := r.rank - r.left.rank
			rdr := r.rank - r.right.rank
			switch {
			case rdl == 1 && rdr == 1:
				t.rotateLeft(cur)
				cur.demote()
				cur.parent.promote()
				updateSizesUpward(cur)
				ops += 3
				if !fromJoin {
					return ops
				}
				cur = cur.parent.parent
			case rdl == 2 && rdr == 1:
				cur.recalcSize()
				t.rotateLeft(cur)
				cur.demote()
				cur.demote()
				ops += 2
				cur = cur.parent.parent
			default: // rdl == 1 && rdr == 2
				cur.recalcSize()
				t.rotateRight(cur.right)
				t.rotateLeft(cur)
				cur.demote()
				cur.demote()
				cur.parent.promote()
				cur.parent.right.demote()
				ops += 5
				cur = cur.parent.parent
			}

		case dl == 1 && dr == 3:
			l := cur.left
			ldl := l.rank - l.left.rank
			ldr := l.rank - l.right.rank
			switch {
			case ldl == 1 && ldr == 1:
				t.rotateRight(cur)
				cur.demote()
				cur.parent.promote()
				updateSizesUpward(cur)
				ops += 3
				if !fromJoin {
					return ops
				}
				cur = cur.parent.parent
			case ldl == 1 && ldr == 2:
				cur.recalcSize()
				t.rotateRight(cur)
				cur.demote()
				cur.demote()
				ops += 2
				cur = cur.parent.parent
			default: // ldl == 2 && ldr == 1
				cur.recalcSize()
				t.rotateLeft(cur.left)
				t.rotateRight(cur)
				cur.demote()
				cur.demote()
				cur.parent.promote()
				cur.parent.left.demote()
				ops += 5
				cur = cur.parent.parent
			}

		default:
			assert(false, "ranktree: rebalance hit an impossible rank pattern")
		}
	}
	return ops
}
