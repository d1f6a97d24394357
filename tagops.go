package entityplus

import "fmt"

func (t Tag[T]) bit(m *Manager) (uint32, bool) {
	bit, ok := m.tagBitOf[t.id]
	return bit, ok
}

// Has reports whether h's entity carries T.
func (t Tag[T]) Has(m *Manager, h *Handle) (bool, error) {
	if _, err := m.validate(h); err != nil {
		return false, m.cfg.reportError(err)
	}
	bit, ok := t.bit(m)
	if !ok {
		return false, nil
	}
	rec, _ := m.registry.record(h.id)
	return rec.mask.hasTag(bit), nil
}

// Set marks or clears T on h's entity and returns the prior value. Called
// during an open traversal, the set is deferred until the traversal ends
// and the returned prior value is always false.
func (t Tag[T]) Set(m *Manager, h *Handle, value bool) (bool, error) {
	if _, err := m.validate(h); err != nil {
		return false, m.cfg.reportError(err)
	}
	bit, ok := t.bit(m)
	if !ok {
		return false, m.cfg.reportError(fmt.Errorf("entityplus: tag %q is not registered with this manager", t.name))
	}
	if m.lock.locked() {
		m.queue.enqueue(setTagOperation{id: h.id, bit: bit, value: value})
		return false, nil
	}
	prior, err := m.setTagByID(h.id, bit, value)
	if err != nil {
		return prior, m.cfg.reportError(err)
	}
	if rec, ok := m.registry.record(h.id); ok {
		h.snapshot = rec.mask
	}
	return prior, nil
}
