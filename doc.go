/*
Package ranktree implements an ordered search tree over distinct integer
keys, balanced by node ranks.

Rank-balanced trees

Every node carries a rank, which for this tree coincides with the height of
the subtree below it (−1 for the virtual placeholder nodes marking absent
children). The balance rule is the classic AVL property: the ranks of the two
children of any node differ by at most one. Search, insertion and deletion
run in O(log n).

What sets this tree apart from a textbook AVL map is a pair of compositional
operations:

  - Join glues two trees with disjoint key ranges together around a
    separator key, in time proportional to the difference of the two
    tree ranks rather than their sizes.
  - Split partitions one tree into the keys below and above a given key,
    expressed as a sequence of joins along the ancestor path, again in
    O(log n) overall.

Both are destructive: they consume their operands and redistribute the nodes
into the resulting trees. A consumed tree shell is reset to empty, so stale
references observe an empty tree rather than a half-owned structure.

Every node additionally tracks the size of its subtree, so Size is O(1) and
order-statistic extensions are cheap. The minimum and maximum nodes are
cached for O(1) Min/Max queries.

The tree is not safe for concurrent use. All operations run synchronously to
completion; callers share trees across goroutines at their own peril.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package ranktree

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to a global core-tracer.
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
