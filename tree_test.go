package ranktree

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestEmptyTree(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	tree := New()
	if !tree.Empty() {
		t.Errorf("expected fresh tree to be empty, is not")
	}
	if tree.Size() != 0 {
		t.Errorf("size of empty tree = %d, should be 0", tree.Size())
	}
	if _, ok := tree.Min(); ok {
		t.Errorf("empty tree reports a minimum")
	}
	if _, ok := tree.Max(); ok {
		t.Errorf("empty tree reports a maximum")
	}
	if _, err := tree.Search(7); !errors.Is(err, ErrKeyNotFound) {
		t.Errorf("search on empty tree: expected ErrKeyNotFound, got %v", err)
	}
	if _, err := tree.Delete(7); !errors.Is(err, ErrKeyNotFound) {
		t.Errorf("delete on empty tree: expected ErrKeyNotFound, got %v", err)
	}
	if err := tree.Check(); err != nil {
		t.Error(err)
	}
}

func TestInsertAndSearch(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	tree := New()
	for _, k := range []int{5, 3, 8, 1, 4, 7, 9} {
		if _, err := tree.Insert(k, value(k)); err != nil {
			t.Fatalf("insert %d: %v", k, err)
		}
		if err := tree.Check(); err != nil {
			t.Fatalf("after insert %d: %v", k, err)
		}
	}
	if tree.Size() != 7 {
		t.Errorf("size = %d, should be 7", tree.Size())
	}
	for _, k := range []int{5, 3, 8, 1, 4, 7, 9} {
		v, err := tree.Search(k)
		if err != nil {
			t.Errorf("search %d: %v", k, err)
		}
		if v != value(k) {
			t.Errorf("search %d = %q, should be %q", k, v, value(k))
		}
	}
	if _, err := tree.Search(6); !errors.Is(err, ErrKeyNotFound) {
		t.Errorf("search 6: expected ErrKeyNotFound, got %v", err)
	}
	if !equalKeys(tree.Keys(), []int{1, 3, 4, 5, 7, 8, 9}) {
		t.Errorf("keys in order = %v", tree.Keys())
	}
}

func TestInsertDuplicate(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	tree := New()
	tree.Insert(4, "four")
	if _, err := tree.Insert(4, "again"); !errors.Is(err, ErrDuplicateKey) {
		t.Errorf("expected ErrDuplicateKey, got %v", err)
	}
	if v, _ := tree.Search(4); v != "four" {
		t.Errorf("duplicate insert overwrote the value: %q", v)
	}
	if tree.Size() != 1 {
		t.Errorf("size = %d after rejected duplicate, should be 1", tree.Size())
	}
}

func TestInsertNegativeKey(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	tree := New()
	if _, err := tree.Insert(-1, "nope"); !errors.Is(err, ErrPrecondition) {
		t.Errorf("expected ErrPrecondition for negative key, got %v", err)
	}
	if !tree.Empty() {
		t.Errorf("rejected insert mutated the tree")
	}
}

func TestDelete(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	tree := New()
	for _, k := range []int{5, 3, 8, 1, 4, 7, 9} {
		tree.Insert(k, value(k))
	}
	if _, err := tree.Delete(5); err != nil { // root, two children
		t.Fatalf("delete 5: %v", err)
	}
	if err := tree.Check(); err != nil {
		t.Fatal(err)
	}
	if !equalKeys(tree.Keys(), []int{1, 3, 4, 7, 8, 9}) {
		t.Errorf("keys after delete 5 = %v", tree.Keys())
	}
	if _, err := tree.Delete(5); !errors.Is(err, ErrKeyNotFound) {
		t.Errorf("second delete 5: expected ErrKeyNotFound, got %v", err)
	}
	if _, err := tree.Search(5); !errors.Is(err, ErrKeyNotFound) {
		t.Errorf("search 5 after delete: expected ErrKeyNotFound, got %v", err)
	}
}

func TestDeleteAll(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	tree := New()
	keys := []int{8, 2, 11, 0, 5, 9, 14, 1, 3, 7, 12, 6}
	for _, k := range keys {
		tree.Insert(k, value(k))
	}
	for i, k := range keys {
		if _, err := tree.Delete(k); err != nil {
			t.Fatalf("delete %d: %v", k, err)
		}
		if err := tree.Check(); err != nil {
			t.Fatalf("after delete %d: %v", k, err)
		}
		if tree.Size() != len(keys)-i-1 {
			t.Fatalf("size = %d after %d deletions", tree.Size(), i+1)
		}
	}
	if !tree.Empty() {
		t.Errorf("tree not empty after deleting every key")
	}
}

func TestMinMaxTracking(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	tree := New()
	for _, k := range []int{10, 4, 17, 2, 6, 20} {
		tree.Insert(k, value(k))
	}
	if v, _ := tree.Min(); v != value(2) {
		t.Errorf("min = %q, should be %q", v, value(2))
	}
	if v, _ := tree.Max(); v != value(20) {
		t.Errorf("max = %q, should be %q", v, value(20))
	}
	tree.Delete(2) // min moves to 4
	tree.Delete(20)
	if v, _ := tree.Min(); v != value(4) {
		t.Errorf("min after delete = %q, should be %q", v, value(4))
	}
	if v, _ := tree.Max(); v != value(17) {
		t.Errorf("max after delete = %q, should be %q", v, value(17))
	}
	if err := tree.Check(); err != nil {
		t.Error(err)
	}
}

func TestDeleteRootWithMaxSuccessor(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	// The in-order successor of the deleted root is the maximum itself; the
	// max cache must follow the surviving replacement node.
	tree := treeOf(t, 5, 3, 7)
	if _, err := tree.Delete(5); err != nil {
		t.Fatal(err)
	}
	if err := tree.Check(); err != nil {
		t.Fatal(err)
	}
	if v, _ := tree.Max(); v != value(7) {
		t.Errorf("max after delete = %q, should be %q", v, value(7))
	}
	if _, err := tree.Delete(7); err != nil {
		t.Fatal(err)
	}
	if v, _ := tree.Max(); v != value(3) {
		t.Errorf("max after deleting 7 = %q, should be %q", v, value(3))
	}
	if err := tree.Check(); err != nil {
		t.Error(err)
	}
}

func TestSuccessorPredecessor(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	tree := New()
	for _, k := range []int{10, 20, 30, 40} {
		tree.Insert(k, value(k))
	}
	if k, _, ok := tree.Successor(10); !ok || k != 20 {
		t.Errorf("successor of 10 = %d/%v, should be 20", k, ok)
	}
	if k, _, ok := tree.Successor(15); !ok || k != 20 { // key absent
		t.Errorf("successor of 15 = %d/%v, should be 20", k, ok)
	}
	if _, _, ok := tree.Successor(40); ok {
		t.Errorf("maximum has a successor")
	}
	if k, _, ok := tree.Predecessor(40); !ok || k != 30 {
		t.Errorf("predecessor of 40 = %d/%v, should be 30", k, ok)
	}
	if k, _, ok := tree.Predecessor(25); !ok || k != 20 {
		t.Errorf("predecessor of 25 = %d/%v, should be 20", k, ok)
	}
	if _, _, ok := tree.Predecessor(10); ok {
		t.Errorf("minimum has a predecessor")
	}
}

func TestRangeIterators(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	tree := New()
	for _, k := range []int{3, 1, 2, 5, 4} {
		tree.Insert(k, value(k))
	}
	var keys []int
	for k := range tree.RangeKeys() {
		keys = append(keys, k)
	}
	if !equalKeys(keys, []int{1, 2, 3, 4, 5}) {
		t.Errorf("ranged keys = %v", keys)
	}
	count := 0
	for k, v := range tree.RangeItems() {
		if v != value(k) {
			t.Errorf("item %d carries value %q", k, v)
		}
		count++
		if count == 3 { // early stop must not wedge the iterator
			break
		}
	}
	if count != 3 {
		t.Errorf("visited %d items, should have stopped at 3", count)
	}
}

// --- Helpers ---------------------------------------------------------------

func value(key int) string {
	return string(rune('a' + key%26))
}

func equalKeys(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
