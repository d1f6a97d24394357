package entityplus

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
)

// Manager is the orchestrator: it owns one ComponentHolder per registered
// component type, one entity registry, and routes every operation to the
// right place. A Manager is independent of every other Manager — even one
// built from the exact same Component/Tag descriptors, which is why bit
// assignment lives here rather than on the descriptors themselves.
type Manager struct {
	components []anyComponent
	compBitOf  map[descriptorID]uint32
	holders    []holder

	tags     []anyTag
	tagBitOf map[descriptorID]uint32

	registry *registry
	cfg      config

	lock  lockWord
	depth uint32
	queue entityOperationsQueue

	labelCache *simpleCache[string]
}

// describeCacheCapacity bounds Manager.Describe's label memoization. It is
// a best-effort speed optimization, not a correctness requirement, so a
// fixed cap (rather than one sized to 2^(components+tags) distinct masks)
// is enough: once exhausted, Describe just recomputes instead of caching.
const describeCacheCapacity = 256

// NewManager builds a Manager around a closed component list and a closed
// tag list. It validates uniqueness (already checked per-list by
// NewComponentList/NewTagList) and disjointness (no Go type may appear in
// both lists) exactly once, panicking with a *ListError naming the first
// violation.
func NewManager(components ComponentList, tags TagList, opts ...Option) *Manager {
	seenTypes := make(map[reflect.Type]string, len(components.items))
	for _, c := range components.items {
		seenTypes[c.valueType()] = c.Name()
	}
	for _, t := range tags.items {
		if name, dup := seenTypes[t.valueType()]; dup {
			panic(&ListError{msg: fmt.Sprintf(
				"component_list and tag_list must be disjoint: %v is registered as both component %q and tag %q",
				t.valueType(), name, t.Name(),
			)})
		}
	}

	m := &Manager{
		components: components.items,
		compBitOf:  make(map[descriptorID]uint32, len(components.items)),
		holders:    make([]holder, len(components.items)),
		tags:       tags.items,
		tagBitOf:   make(map[descriptorID]uint32, len(tags.items)),
		registry:   newRegistry(),
		labelCache: newSimpleCache[string](describeCacheCapacity),
	}
	for i, c := range components.items {
		m.compBitOf[c.descriptorID()] = uint32(i)
		m.holders[i] = c.newHolder()
	}
	for i, t := range tags.items {
		m.tagBitOf[t.descriptorID()] = uint32(i)
	}
	for _, opt := range opts {
		opt(&m.cfg)
	}
	return m
}

// Create allocates a new entity and returns a fresh handle to it, with a
// zero (empty) membership mask.
func (m *Manager) Create() Handle {
	rec := m.registry.create()
	return Handle{mgr: m, id: rec.id, snapshot: rec.mask}
}

// Destroy removes h's entity from every component holder it belongs to,
// clears its tags, and removes its record, as one logical step. Other live
// handles to the same id will read StatusNotFound on their next Status()
// call; h itself is marked StatusDeleted.
func (m *Manager) Destroy(h *Handle) error {
	if _, err := m.validate(h); err != nil {
		return m.cfg.reportError(err)
	}
	if m.lock.locked() {
		m.queue.enqueue(destroyOperation{id: h.id})
		h.deleted = true
		return nil
	}
	if err := m.destroyByID(h.id); err != nil {
		return m.cfg.reportError(err)
	}
	h.deleted = true
	return nil
}

func (m *Manager) destroyByID(id EntityID) error {
	rec, ok := m.registry.record(id)
	if !ok {
		return nil
	}
	for bit, h := range m.holders {
		if rec.mask.hasComponent(uint32(bit)) {
			h.erase(id)
		}
	}
	m.registry.destroy(id)
	return nil
}

func (m *Manager) removeComponentByID(id EntityID, bit uint32) (bool, error) {
	rec, ok := m.registry.record(id)
	if !ok {
		return false, nil
	}
	removed := m.holders[bit].erase(id)
	if removed {
		rec.mask.unmarkComponent(bit)
	}
	return removed, nil
}

func (m *Manager) setTagByID(id EntityID, bit uint32, value bool) (bool, error) {
	rec, ok := m.registry.record(id)
	if !ok {
		return false, nil
	}
	prior := rec.mask.hasTag(bit)
	if prior == value {
		return prior, nil
	}
	if value {
		rec.mask.markTag(bit)
	} else {
		rec.mask.unmarkTag(bit)
	}
	return prior, nil
}

func addComponentByID[C any](m *Manager, id EntityID, bit uint32, h *componentHolder[C], value C) (*C, bool, error) {
	ptr, inserted := h.insert(id, value)
	if inserted {
		if rec, ok := m.registry.record(id); ok {
			rec.mask.markComponent(bit)
		}
	}
	return ptr, inserted, nil
}

// beginTraversal and endTraversal implement the re-entrancy guard: every
// ForEachN/GetEntities/Match call claims its own lock bit for its duration
// (so nested traversals coexist safely) and mutations attempted while any
// bit is held are queued rather than applied, draining the instant the
// outermost traversal ends.
func (m *Manager) beginTraversal() uint32 {
	bit := m.depth
	m.depth++
	m.lock.add(bit)
	return bit
}

func (m *Manager) endTraversal(bit uint32) {
	m.lock.remove(bit)
	if !m.lock.locked() {
		m.queue.processAll(m)
		m.depth = 0
	}
}

// Describe renders h's current component and tag names as a sorted,
// human-readable label (e.g. "[Health, Position, alive]"), memoized per
// distinct mask in m.labelCache.
func (m *Manager) Describe(h *Handle) string {
	if _, err := m.validate(h); err != nil {
		return "<invalid>"
	}
	rec, _ := m.registry.record(h.id)
	key := fmt.Sprintf("%+v", rec.mask)
	if idx, ok := m.labelCache.GetIndex(key); ok {
		return *m.labelCache.GetItem(idx)
	}

	var names []string
	for i, c := range m.components {
		if rec.mask.hasComponent(uint32(i)) {
			names = append(names, c.Name())
		}
	}
	for i, t := range m.tags {
		if rec.mask.hasTag(uint32(i)) {
			names = append(names, t.Name())
		}
	}
	sort.Strings(names)
	label := "[" + strings.Join(names, ", ") + "]"
	m.labelCache.Register(key, label)
	return label
}
