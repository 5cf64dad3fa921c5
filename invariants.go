package ranktree

import "fmt"

// Check validates structural tree invariants: the rank rule, subtree sizes,
// strict key ordering, parent back-links and the min/max caches.
//
// This checker is intentionally strict and meant for tests and debugging; it
// visits every node, O(n).
func (t *Tree) Check() error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ErrInvariant)
	}
	if t.Empty() {
		if t.min != nil || t.max != nil {
			return fmt.Errorf("%w: empty tree carries min/max cache", ErrInvariant)
		}
		return nil
	}
	if t.root.parent != nil {
		return fmt.Errorf("%w: root has a parent", ErrInvariant)
	}
	lo, hi, err := t.checkNode(t.root)
	if err != nil {
		return err
	}
	if t.min != lo {
		return fmt.Errorf("%w: min cache does not point at the smallest key", ErrInvariant)
	}
	if t.max != hi {
		return fmt.Errorf("%w: max cache does not point at the largest key", ErrInvariant)
	}
	return nil
}

// checkNode validates the subtree under a real node and returns its
// leftmost and rightmost real nodes.
func (t *Tree) checkNode(n *node) (lo, hi *node, err error) {
	if n.left == nil || n.right == nil {
		return nil, nil, fmt.Errorf("%w: node %d has a nil child link", ErrInvariant, n.key)
	}
	dl := n.rank - n.left.rank
	dr := n.rank - n.right.rank
	if dl < 1 || dl > 2 || dr < 1 || dr > 2 {
		return nil, nil, fmt.Errorf("%w: node %d has rank diffs (%d,%d)", ErrInvariant, n.key, dl, dr)
	}
	if dl == 2 && dr == 2 {
		// rank must equal height: at least one child is exactly one below
		return nil, nil, fmt.Errorf("%w: node %d is (2,2)", ErrInvariant, n.key)
	}
	if n.size != n.left.size+n.right.size+1 {
		return nil, nil, fmt.Errorf("%w: node %d has size %d, children sum to %d",
			ErrInvariant, n.key, n.size, n.left.size+n.right.size)
	}
	lo, hi = n, n
	if n.left.isRealNode() {
		if n.left.parent != n {
			return nil, nil, fmt.Errorf("%w: left child of %d has a wrong parent link", ErrInvariant, n.key)
		}
		llo, lhi, lerr := t.checkNode(n.left)
		if lerr != nil {
			return nil, nil, lerr
		}
		if lhi.key >= n.key {
			return nil, nil, fmt.Errorf("%w: key order violated at %d", ErrInvariant, n.key)
		}
		lo = llo
	} else if err := checkSentinel(n.left); err != nil {
		return nil, nil, err
	}
	if n.right.isRealNode() {
		if n.right.parent != n {
			return nil, nil, fmt.Errorf("%w: right child of %d has a wrong parent link", ErrInvariant, n.key)
		}
		rlo, rhi, rerr := t.checkNode(n.right)
		if rerr != nil {
			return nil, nil, rerr
		}
		if rlo.key <= n.key {
			return nil, nil, fmt.Errorf("%w: key order violated at %d", ErrInvariant, n.key)
		}
		hi = rhi
	} else if err := checkSentinel(n.right); err != nil {
		return nil, nil, err
	}
	return lo, hi, nil
}

func checkSentinel(n *node) error {
	if n.rank != -1 {
		return fmt.Errorf("%w: virtual node with rank %d", ErrInvariant, n.rank)
	}
	if n.size != 0 {
		return fmt.Errorf("%w: virtual node with size %d", ErrInvariant, n.size)
	}
	return nil
}
