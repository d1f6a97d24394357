package entityplus

import "fmt"

// bit resolves c's slot on m, or ok=false if c was never part of m's
// component list.
func (c Component[C]) bit(m *Manager) (uint32, bool) {
	bit, ok := m.compBitOf[c.id]
	return bit, ok
}

func (c Component[C]) holderOn(m *Manager, bit uint32) *componentHolder[C] {
	h, _ := m.holders[bit].(*componentHolder[C])
	return h
}

// Add attaches C to h's entity, constructing it from value. If the entity
// already owns C, Add is a no-op and returns the existing value with
// inserted=false. Called during an open traversal, the add is deferred
// until the traversal ends, and the returned pointer/inserted are always
// nil/false.
func (c Component[C]) Add(m *Manager, h *Handle, value C) (*C, bool, error) {
	if _, err := m.validate(h); err != nil {
		return nil, false, m.cfg.reportError(err)
	}
	bit, ok := c.bit(m)
	if !ok {
		return nil, false, m.cfg.reportError(fmt.Errorf("entityplus: component %q is not registered with this manager", c.name))
	}
	if m.lock.locked() {
		m.queue.enqueue(addComponentOperation[C]{id: h.id, bit: bit, value: value})
		return nil, false, nil
	}
	holder := c.holderOn(m, bit)
	ptr, inserted, err := addComponentByID(m, h.id, bit, holder, value)
	if err != nil {
		return ptr, inserted, m.cfg.reportError(err)
	}
	if inserted {
		if rec, ok := m.registry.record(h.id); ok {
			h.snapshot = rec.mask
		}
	}
	return ptr, inserted, nil
}

// Get returns a pointer to h's C value, or an error if h does not own one.
func (c Component[C]) Get(m *Manager, h *Handle) (*C, error) {
	if _, err := m.validate(h); err != nil {
		return nil, m.cfg.reportError(err)
	}
	bit, ok := c.bit(m)
	if !ok {
		return nil, m.cfg.reportError(fmt.Errorf("entityplus: component %q is not registered with this manager", c.name))
	}
	rec, _ := m.registry.record(h.id)
	if !rec.mask.hasComponent(bit) {
		return nil, m.cfg.reportError(InvalidComponent{Component: c.name})
	}
	return c.holderOn(m, bit).get(h.id), nil
}

// Has reports whether h's entity owns C.
func (c Component[C]) Has(m *Manager, h *Handle) (bool, error) {
	if _, err := m.validate(h); err != nil {
		return false, m.cfg.reportError(err)
	}
	bit, ok := c.bit(m)
	if !ok {
		return false, nil
	}
	rec, _ := m.registry.record(h.id)
	return rec.mask.hasComponent(bit), nil
}

// Remove detaches C from h's entity, if present. Deferred the same way as
// Add when called during an open traversal.
func (c Component[C]) Remove(m *Manager, h *Handle) (bool, error) {
	if _, err := m.validate(h); err != nil {
		return false, m.cfg.reportError(err)
	}
	bit, ok := c.bit(m)
	if !ok {
		return false, nil
	}
	if m.lock.locked() {
		m.queue.enqueue(removeComponentOperation{id: h.id, bit: bit})
		return false, nil
	}
	removed, err := m.removeComponentByID(h.id, bit)
	if err != nil {
		return removed, m.cfg.reportError(err)
	}
	if removed {
		if rec, ok := m.registry.record(h.id); ok {
			h.snapshot = rec.mask
		}
	}
	return removed, nil
}
