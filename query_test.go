package entityplus

import "testing"

func TestAndOrNotPredicates(t *testing.T) {
	m, d := newTestManager()

	makeEntities := func(n int, add func(*Handle)) {
		for i := 0; i < n; i++ {
			h := m.Create()
			add(&h)
		}
	}

	makeEntities(5, func(h *Handle) {
		d.position.Add(m, h, position{})
		d.velocity.Add(m, h, velocity{})
	})
	makeEntities(10, func(h *Handle) { d.position.Add(m, h, position{}) })
	makeEntities(15, func(h *Handle) { d.velocity.Add(m, h, velocity{}) })
	makeEntities(20, func(h *Handle) { d.health.Add(m, h, health{}) })

	hasPosition := m.Has(d.position)
	hasVelocity := m.Has(d.velocity)

	if got := len(m.Match(And(hasPosition, hasVelocity))); got != 5 {
		t.Fatalf("And(position, velocity) matched %d, want 5", got)
	}
	if got := len(m.Match(Or(hasPosition, hasVelocity))); got != 30 {
		t.Fatalf("Or(position, velocity) matched %d, want 30", got)
	}
	if got := len(m.Match(Not(hasVelocity))); got != 30 {
		t.Fatalf("Not(velocity) matched %d, want 30", got)
	}
}

func TestGetEntitiesUsesSmallestSubstrate(t *testing.T) {
	m, d := newTestManager()

	for i := 0; i < 50; i++ {
		h := m.Create()
		d.position.Add(m, &h, position{})
	}

	var oneAlive Handle
	for i := 0; i < 3; i++ {
		h := m.Create()
		d.position.Add(m, &h, position{})
		if i == 1 {
			d.alive.Set(m, &h, true)
			oneAlive = h
		}
	}

	matches := m.GetEntities(d.position, d.alive)
	if len(matches) != 1 {
		t.Fatalf("GetEntities(position, alive) matched %d, want 1", len(matches))
	}
	if matches[0].ID() != oneAlive.ID() {
		t.Fatalf("GetEntities matched id %d, want %d", matches[0].ID(), oneAlive.ID())
	}
}

func TestIterRangeOverFunc(t *testing.T) {
	m, d := newTestManager()

	for i := 0; i < 4; i++ {
		h := m.Create()
		d.position.Add(m, &h, position{})
	}

	count := 0
	for range m.Iter(d.position) {
		count++
	}
	if count != 4 {
		t.Fatalf("Iter visited %d entities, want 4", count)
	}
}
