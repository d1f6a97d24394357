package entityplus

// Handle is a cheap, copyable, non-owning reference into a Manager.
// Mutating operations (Component[C].Add/Remove, Tag[T].Set,
// Manager.Destroy) take a *Handle so they can refresh the caller's own
// variable in place, keeping that same handle valid; a plain value copy
// made beforehand (`other := h`) is left untouched and becomes detectably
// stale the moment the original is refreshed — no per-handle back-pointer
// bookkeeping required. An Add, Remove or Set deferred during an open
// traversal does not refresh the handle: once the queued change is applied
// and alters the entity's mask, the handle reads StatusStale.
type Handle struct {
	mgr      *Manager
	id       EntityID
	snapshot MembershipMask
	deleted  bool
}

// Status reports this handle's validity against its own bound manager.
// It cannot detect the ForeignManager case, which only arises when a
// handle is presented to a *different* manager's operation — see
// Manager.validate.
func (h *Handle) Status() Status {
	if h == nil || h.mgr == nil {
		return StatusUninitialized
	}
	if h.deleted {
		return StatusDeleted
	}
	rec, ok := h.mgr.registry.record(h.id)
	if !ok {
		return StatusNotFound
	}
	if rec.mask != h.snapshot {
		return StatusStale
	}
	return StatusOK
}

// ID returns the entity id this handle refers to. It remains meaningful
// even once the handle is stale or deleted (ids are never reused).
func (h *Handle) ID() EntityID {
	if h == nil {
		return 0
	}
	return h.id
}

// validate runs the precondition check for the manager m on which an
// operation was invoked: uninitialized, wrong manager, already-deleted,
// not-found, then stale, in that order. It is the single gate every
// mutating and accessor operation in this package passes through before
// touching any holder or record.
func (m *Manager) validate(h *Handle) (Status, error) {
	if h == nil || h.mgr == nil {
		return StatusUninitialized, badEntity(StatusUninitialized)
	}
	if h.mgr != m {
		return StatusInvalidManager, badEntity(StatusInvalidManager)
	}
	if h.deleted {
		return StatusDeleted, badEntity(StatusDeleted)
	}
	rec, ok := m.registry.record(h.id)
	if !ok {
		return StatusNotFound, badEntity(StatusNotFound)
	}
	if rec.mask != h.snapshot {
		return StatusStale, badEntity(StatusStale)
	}
	return StatusOK, nil
}
