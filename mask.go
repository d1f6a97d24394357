package entityplus

import "github.com/TheBitDrifter/mask"

// MembershipMask identifies exactly which component slots and which tag
// bits an entity occupies. The component region and the tag region live in
// two separate mask.Mask words rather than one combined word, since a
// Manager's component list and tag list are registered (and sized)
// independently. The pair is still a plain comparable struct, so handle
// staleness (snapshot == record mask iff fresh) is a single `==`.
type MembershipMask struct {
	comp mask.Mask
	tag  mask.Mask
}

func (m MembershipMask) hasComponent(bit uint32) bool {
	var want mask.Mask
	want.Mark(bit)
	return m.comp.ContainsAll(want)
}

func (m MembershipMask) hasTag(bit uint32) bool {
	var want mask.Mask
	want.Mark(bit)
	return m.tag.ContainsAll(want)
}

func (m *MembershipMask) markComponent(bit uint32) {
	m.comp.Mark(bit)
}

func (m *MembershipMask) unmarkComponent(bit uint32) {
	m.comp.Unmark(bit)
}

func (m *MembershipMask) markTag(bit uint32) {
	m.tag.Mark(bit)
}

func (m *MembershipMask) unmarkTag(bit uint32) {
	m.tag.Unmark(bit)
}

// containsAll reports whether m holds every bit set in want — the single
// bitmask-and test used by the smallest-substrate query algorithm.
func (m MembershipMask) containsAll(want MembershipMask) bool {
	return m.comp.ContainsAll(want.comp) && m.tag.ContainsAll(want.tag)
}

// lockWord is the manager's re-entrancy guard: one bit per
// concurrently-open traversal, so nested ForEach/GetEntities calls each get
// their own bit and the manager only drains its queued mutations once
// every traversal has ended.
type lockWord struct {
	bits mask.Mask256
}

func (l *lockWord) add(bit uint32) {
	l.bits.Mark(bit)
}

func (l *lockWord) remove(bit uint32) {
	l.bits.Unmark(bit)
}

func (l *lockWord) locked() bool {
	return !l.bits.IsEmpty()
}
