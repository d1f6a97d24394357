package entityplus

// EntityOperation is a deferred mutation, applied once every open
// traversal on the manager has ended. Operations queue while a manager is
// locked by an in-flight ForEachN/GetEntities/Match traversal, making
// mutation during iteration safe rather than undefined.
type EntityOperation interface {
	Apply(*Manager) error
}

// entityOperationsQueue holds operations queued during a traversal, in
// submission order.
type entityOperationsQueue struct {
	operations []EntityOperation
}

func (q *entityOperationsQueue) enqueue(op EntityOperation) {
	q.operations = append(q.operations, op)
}

// processAll applies every queued operation, in order, and clears the
// queue. Errors from individual operations are reported through the
// manager's error handler (if any) rather than aborting the drain — a
// single bad queued mutation should not strand the rest.
func (q *entityOperationsQueue) processAll(m *Manager) {
	if len(q.operations) == 0 {
		return
	}
	ops := q.operations
	q.operations = nil
	for _, op := range ops {
		if err := op.Apply(m); err != nil {
			m.cfg.reportError(err)
		}
	}
}

// destroyOperation is a deferred Manager.Destroy.
type destroyOperation struct {
	id EntityID
}

func (op destroyOperation) Apply(m *Manager) error {
	return m.destroyByID(op.id)
}

// setTagOperation is a deferred Tag[T].Set.
type setTagOperation struct {
	id    EntityID
	bit   uint32
	value bool
}

func (op setTagOperation) Apply(m *Manager) error {
	_, err := m.setTagByID(op.id, op.bit, op.value)
	return err
}

// removeComponentOperation is a deferred Component[C].Remove. It only needs
// the component's bit to clear the mask and the holder to erase from; the
// holder already knows how to erase itself without naming C again.
type removeComponentOperation struct {
	id  EntityID
	bit uint32
}

func (op removeComponentOperation) Apply(m *Manager) error {
	_, err := m.removeComponentByID(op.id, op.bit)
	return err
}

// addComponentOperation[C] is a deferred Component[C].Add.
type addComponentOperation[C any] struct {
	id    EntityID
	bit   uint32
	value C
}

func (op addComponentOperation[C]) Apply(m *Manager) error {
	h, ok := m.holders[op.bit].(*componentHolder[C])
	if !ok {
		return nil
	}
	_, _, err := addComponentByID(m, op.id, op.bit, h, op.value)
	return err
}
