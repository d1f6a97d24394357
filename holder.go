package entityplus

import (
	"fmt"
	"sort"

	"github.com/TheBitDrifter/bark"
)

// holder is the type-erased face of componentHolder[C], letting Manager
// route structural operations (erase-on-destroy, size-for-smallest-
// substrate-selection) without knowing the payload type C. Typed access
// (get/insert) happens through a type assertion back to
// *componentHolder[C], guarded by the descriptor's own bit index.
type holder interface {
	contains(id EntityID) bool
	erase(id EntityID) bool
	len() int
}

// componentHolder[C] is a sorted associative container keyed by EntityID,
// kept contiguous so that intersection is a linear merge and iteration is
// cache-friendly. Lookup is O(log n) via binary search; insert/erase are
// O(n) since keeping entries sorted and contiguous requires a shift.
type componentHolder[C any] struct {
	ids    []EntityID
	values []C
}

func newComponentHolder[C any]() *componentHolder[C] {
	return &componentHolder[C]{}
}

var _ holder = (*componentHolder[struct{}])(nil)

// search returns the index at which id is present, or where it would be
// inserted to keep ids sorted.
func (h *componentHolder[C]) search(id EntityID) int {
	return sort.Search(len(h.ids), func(i int) bool { return h.ids[i] >= id })
}

func (h *componentHolder[C]) contains(id EntityID) bool {
	i := h.search(id)
	return i < len(h.ids) && h.ids[i] == id
}

// insert constructs C in place from value only if id is not yet present.
// Idempotent on id: a second insert does not replace the stored value and
// reports inserted=false.
func (h *componentHolder[C]) insert(id EntityID, value C) (*C, bool) {
	i := h.search(id)
	if i < len(h.ids) && h.ids[i] == id {
		return &h.values[i], false
	}
	h.ids = append(h.ids, 0)
	copy(h.ids[i+1:], h.ids[i:])
	h.ids[i] = id

	var zero C
	h.values = append(h.values, zero)
	copy(h.values[i+1:], h.values[i:])
	h.values[i] = value

	return &h.values[i], true
}

func (h *componentHolder[C]) erase(id EntityID) bool {
	i := h.search(id)
	if i >= len(h.ids) || h.ids[i] != id {
		return false
	}
	h.ids = append(h.ids[:i], h.ids[i+1:]...)
	h.values = append(h.values[:i], h.values[i+1:]...)
	return true
}

// get returns a pointer to the stored value for id. The caller must have
// already verified id's membership via the record's mask; a miss here is
// an internal invariant break, not a caller error.
func (h *componentHolder[C]) get(id EntityID) *C {
	i := h.search(id)
	if i >= len(h.ids) || h.ids[i] != id {
		panic(bark.AddTrace(fmt.Errorf("entityplus: invariant broken: entity %d marked as holding component but absent from its holder", id)))
	}
	return &h.values[i]
}

func (h *componentHolder[C]) len() int { return len(h.ids) }

// idAt returns the EntityID at ordered position i, used by the
// smallest-substrate query algorithm to walk this holder in EntityID order.
func (h *componentHolder[C]) idAt(i int) EntityID { return h.ids[i] }
