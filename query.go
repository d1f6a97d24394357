package entityplus

import (
	"fmt"
	"iter"
)

// orderedHolder is the subset of holder that lets the query algorithm walk a
// ComponentHolder in EntityID order — every componentHolder[C] satisfies it.
type orderedHolder interface {
	holder
	idAt(i int) EntityID
}

// resolveFilters turns a set of Filterable descriptors into the combined
// mask they require — an entity matches iff it contains every requested
// type — plus the bit indices of the component filters among them, which
// iterateSubstrate uses to pick the smallest substrate to scan.
func (m *Manager) resolveFilters(filters []Filterable) (want MembershipMask, compBits []uint32, err error) {
	for _, f := range filters {
		if f.isComponent() {
			bit, ok := m.compBitOf[f.descriptorID()]
			if !ok {
				return want, nil, fmt.Errorf("entityplus: component is not registered with this manager")
			}
			want.markComponent(bit)
			compBits = append(compBits, bit)
		} else {
			bit, ok := m.tagBitOf[f.descriptorID()]
			if !ok {
				return want, nil, fmt.Errorf("entityplus: tag is not registered with this manager")
			}
			want.markTag(bit)
		}
	}
	return want, compBits, nil
}

// iterateSubstrate walks the smallest matching ComponentHolder among
// compBits (the smallest-substrate query optimization), or the registry
// itself when the query names no components (a tag-only query). fn
// returning false stops the walk early.
func (m *Manager) iterateSubstrate(compBits []uint32, fn func(EntityID, *EntityRecord) bool) {
	if len(compBits) == 0 {
		for i := 0; i < m.registry.len(); i++ {
			id := m.registry.idAt(i)
			rec, ok := m.registry.record(id)
			if !ok {
				continue
			}
			if !fn(id, rec) {
				return
			}
		}
		return
	}

	chosen := compBits[0]
	for _, b := range compBits[1:] {
		if m.holders[b].len() < m.holders[chosen].len() {
			chosen = b
		}
	}
	substrate, ok := m.holders[chosen].(orderedHolder)
	if !ok {
		return
	}
	n := substrate.len()
	for i := 0; i < n; i++ {
		id := substrate.idAt(i)
		rec, ok := m.registry.record(id)
		if !ok {
			continue
		}
		if !fn(id, rec) {
			return
		}
	}
}

// GetEntities returns every live handle whose entity carries all of
// filters. With no filters it returns every live entity.
func (m *Manager) GetEntities(filters ...Filterable) []Handle {
	want, compBits, err := m.resolveFilters(filters)
	if err != nil {
		m.cfg.reportError(err)
		return nil
	}
	bit := m.beginTraversal()
	defer m.endTraversal(bit)

	var out []Handle
	m.iterateSubstrate(compBits, func(id EntityID, rec *EntityRecord) bool {
		if rec.mask.containsAll(want) {
			out = append(out, Handle{mgr: m, id: id, snapshot: rec.mask})
		}
		return true
	})
	return out
}

// Iter is the Go 1.23 iterator form of GetEntities, usable directly in a
// range-over-func loop: `for h := range m.Iter(alive) { ... }`. Ranging
// lazily over the same substrate walk as GetEntities spares the caller a
// slice allocation when they only need to look at, not collect, the
// matches.
func (m *Manager) Iter(filters ...Filterable) iter.Seq[Handle] {
	return func(yield func(Handle) bool) {
		want, compBits, err := m.resolveFilters(filters)
		if err != nil {
			m.cfg.reportError(err)
			return
		}
		bit := m.beginTraversal()
		defer m.endTraversal(bit)
		m.iterateSubstrate(compBits, func(id EntityID, rec *EntityRecord) bool {
			if !rec.mask.containsAll(want) {
				return true
			}
			return yield(Handle{mgr: m, id: id, snapshot: rec.mask})
		})
	}
}

// ForEach0 visits every entity matching extra, yielding only its handle.
// fn returning false ends the traversal early, the idiomatic Go 1.23
// iterator convention for a breakout signal.
func ForEach0(m *Manager, extra []Filterable, fn func(Handle) bool) {
	want, compBits, err := m.resolveFilters(extra)
	if err != nil {
		m.cfg.reportError(err)
		return
	}
	bit := m.beginTraversal()
	defer m.endTraversal(bit)
	m.iterateSubstrate(compBits, func(id EntityID, rec *EntityRecord) bool {
		if !rec.mask.containsAll(want) {
			return true
		}
		return fn(Handle{mgr: m, id: id, snapshot: rec.mask})
	})
}

// ForEach1 visits every entity carrying c1 (and, optionally, extra),
// yielding its handle plus a pointer to its C1 value.
func ForEach1[C1 any](m *Manager, c1 Component[C1], extra []Filterable, fn func(Handle, *C1) bool) {
	bit1, ok := m.compBitOf[c1.id]
	if !ok {
		m.cfg.reportError(fmt.Errorf("entityplus: component %q is not registered with this manager", c1.name))
		return
	}
	want, compBits, err := m.resolveFilters(append([]Filterable{c1}, extra...))
	if err != nil {
		m.cfg.reportError(err)
		return
	}
	h1 := m.holders[bit1].(*componentHolder[C1])

	lbit := m.beginTraversal()
	defer m.endTraversal(lbit)
	m.iterateSubstrate(compBits, func(id EntityID, rec *EntityRecord) bool {
		if !rec.mask.containsAll(want) {
			return true
		}
		return fn(Handle{mgr: m, id: id, snapshot: rec.mask}, h1.get(id))
	})
}

// ForEach2 visits every entity carrying both c1 and c2 (and, optionally,
// extra), yielding its handle plus pointers to its C1 and C2 values.
func ForEach2[C1, C2 any](m *Manager, c1 Component[C1], c2 Component[C2], extra []Filterable, fn func(Handle, *C1, *C2) bool) {
	bit1, ok1 := m.compBitOf[c1.id]
	bit2, ok2 := m.compBitOf[c2.id]
	if !ok1 || !ok2 {
		m.cfg.reportError(fmt.Errorf("entityplus: a requested component is not registered with this manager"))
		return
	}
	want, compBits, err := m.resolveFilters(append([]Filterable{c1, c2}, extra...))
	if err != nil {
		m.cfg.reportError(err)
		return
	}
	h1 := m.holders[bit1].(*componentHolder[C1])
	h2 := m.holders[bit2].(*componentHolder[C2])

	lbit := m.beginTraversal()
	defer m.endTraversal(lbit)
	m.iterateSubstrate(compBits, func(id EntityID, rec *EntityRecord) bool {
		if !rec.mask.containsAll(want) {
			return true
		}
		return fn(Handle{mgr: m, id: id, snapshot: rec.mask}, h1.get(id), h2.get(id))
	})
}

// ForEach3 visits every entity carrying c1, c2, and c3 (and, optionally,
// extra), yielding its handle plus pointers to its C1, C2, and C3 values.
func ForEach3[C1, C2, C3 any](m *Manager, c1 Component[C1], c2 Component[C2], c3 Component[C3], extra []Filterable, fn func(Handle, *C1, *C2, *C3) bool) {
	bit1, ok1 := m.compBitOf[c1.id]
	bit2, ok2 := m.compBitOf[c2.id]
	bit3, ok3 := m.compBitOf[c3.id]
	if !ok1 || !ok2 || !ok3 {
		m.cfg.reportError(fmt.Errorf("entityplus: a requested component is not registered with this manager"))
		return
	}
	want, compBits, err := m.resolveFilters(append([]Filterable{c1, c2, c3}, extra...))
	if err != nil {
		m.cfg.reportError(err)
		return
	}
	h1 := m.holders[bit1].(*componentHolder[C1])
	h2 := m.holders[bit2].(*componentHolder[C2])
	h3 := m.holders[bit3].(*componentHolder[C3])

	lbit := m.beginTraversal()
	defer m.endTraversal(lbit)
	m.iterateSubstrate(compBits, func(id EntityID, rec *EntityRecord) bool {
		if !rec.mask.containsAll(want) {
			return true
		}
		return fn(Handle{mgr: m, id: id, snapshot: rec.mask}, h1.get(id), h2.get(id), h3.get(id))
	})
}

// Predicate is a reusable, compiled filter over a MembershipMask. And, Or,
// and Not compose predicates as plain function combinators rather than an
// interpreted node tree, since testing a MembershipMask needs no
// evaluation context beyond the mask itself.
type Predicate func(MembershipMask) bool

// Has builds a Predicate testing for a single Filterable.
func (m *Manager) Has(f Filterable) Predicate {
	if f.isComponent() {
		bit, ok := m.compBitOf[f.descriptorID()]
		return func(mk MembershipMask) bool { return ok && mk.hasComponent(bit) }
	}
	bit, ok := m.tagBitOf[f.descriptorID()]
	return func(mk MembershipMask) bool { return ok && mk.hasTag(bit) }
}

// And combines predicates so all must hold.
func And(ps ...Predicate) Predicate {
	return func(mk MembershipMask) bool {
		for _, p := range ps {
			if !p(mk) {
				return false
			}
		}
		return true
	}
}

// Or combines predicates so any may hold.
func Or(ps ...Predicate) Predicate {
	return func(mk MembershipMask) bool {
		for _, p := range ps {
			if p(mk) {
				return true
			}
		}
		return false
	}
}

// Not negates a predicate.
func Not(p Predicate) Predicate {
	return func(mk MembershipMask) bool { return !p(mk) }
}

// Match returns every live handle whose mask satisfies p. Unlike
// GetEntities, Match always scans the full registry — a Predicate is an
// opaque function, so there is no single bit set to pick a smallest
// substrate from, trading that optimization for And/Or/Not expressiveness.
func (m *Manager) Match(p Predicate) []Handle {
	bit := m.beginTraversal()
	defer m.endTraversal(bit)

	var out []Handle
	for i := 0; i < m.registry.len(); i++ {
		id := m.registry.idAt(i)
		rec, ok := m.registry.record(id)
		if !ok {
			continue
		}
		if p(rec.mask) {
			out = append(out, Handle{mgr: m, id: id, snapshot: rec.mask})
		}
	}
	return out
}
