package entityplus

import "sync/atomic"

// EntityID uniquely identifies an entity within the Manager that created it.
// It is never reused after the entity is destroyed: ids are strictly
// monotone increasing in order of creation.
type EntityID uint64

// descriptorID uniquely identifies a Component[C]/Tag[T] value, process-wide.
// It lets the same descriptor be registered independently by more than one
// Manager, each assigning its own bit index.
type descriptorID uint64

var nextDescriptorID uint64

func newDescriptorID() descriptorID {
	return descriptorID(atomic.AddUint64(&nextDescriptorID, 1))
}
