package ranktree

import "errors"

var (
	// ErrDuplicateKey signals an insertion with a key already present.
	ErrDuplicateKey = errors.New("ranktree: duplicate key")
	// ErrKeyNotFound signals a lookup or deletion for an absent key.
	ErrKeyNotFound = errors.New("ranktree: key not found")
	// ErrPrecondition signals a violated caller contract, e.g. joining trees
	// with overlapping key ranges or using a reserved key.
	ErrPrecondition = errors.New("ranktree: precondition violated")
	// ErrTreeCompleted signals that a builder has already produced a tree and
	// it's illegal to stage further items.
	ErrTreeCompleted = errors.New("ranktree: forbidden to add items; tree has been built")
	// ErrKeysOutOfOrder signals that bulk-build input is not strictly ascending.
	ErrKeysOutOfOrder = errors.New("ranktree: keys out of ascending order")
	// ErrInvariant signals a structural invariant violation found by Check.
	ErrInvariant = errors.New("ranktree: invariant violation")
)
