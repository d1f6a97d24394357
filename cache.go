package entityplus

import "fmt"

// Cache is a small bounded key→value memoizer: past its capacity,
// Register reports an error instead of growing unbounded. Manager.Describe
// uses one to memoize its human-readable label for a given MembershipMask:
// masks repeat constantly across a population of similarly-shaped entities,
// so computing the sorted component/tag name list once per distinct mask,
// rather than once per Describe call, pays for itself quickly.
type Cache[T any] interface {
	GetIndex(key string) (int, bool)
	GetItem(index int) *T
	Register(key string, item T) (int, error)
}

var _ Cache[string] = &simpleCache[string]{}

type simpleCache[T any] struct {
	items       []T
	itemIndices map[string]int
	maxCapacity int
}

func newSimpleCache[T any](capacity int) *simpleCache[T] {
	return &simpleCache[T]{itemIndices: make(map[string]int), maxCapacity: capacity}
}

func (c *simpleCache[T]) GetIndex(key string) (int, bool) {
	index, ok := c.itemIndices[key]
	return index, ok
}

func (c *simpleCache[T]) GetItem(index int) *T {
	return &c.items[index]
}

// Register reports an error once the cache is at capacity. Describe treats
// that error as non-fatal and ignores it: a full cache just means the label
// is recomputed on every call instead of cached, never a correctness
// problem.
func (c *simpleCache[T]) Register(key string, item T) (int, error) {
	if len(c.itemIndices) >= c.maxCapacity {
		return -1, fmt.Errorf("entityplus: describe cache at maximum capacity (%d)", c.maxCapacity)
	}
	idx := len(c.items)
	c.itemIndices[key] = idx
	c.items = append(c.items, item)
	return idx, nil
}
