package entityplus

import "testing"

type position struct{ X, Y float64 }
type velocity struct{ X, Y float64 }
type health struct{ Current, Max int }

type alive struct{}
type frozen struct{}

// testDescriptors holds the descriptors newTestManager registered with its
// Manager, so tests operate on the same descriptorID that was actually bit
// assigned rather than declaring a fresh, unregistered one of their own.
type testDescriptors struct {
	position Component[position]
	velocity Component[velocity]
	health   Component[health]
	alive    Tag[alive]
	frozen   Tag[frozen]
}

func newTestManager() (*Manager, testDescriptors) {
	d := testDescriptors{
		position: NewComponent[position]("position"),
		velocity: NewComponent[velocity]("velocity"),
		health:   NewComponent[health]("health"),
		alive:    NewTag[alive]("alive"),
		frozen:   NewTag[frozen]("frozen"),
	}
	m := NewManager(
		NewComponentList(d.position, d.velocity, d.health),
		NewTagList(d.alive, d.frozen),
	)
	return m, d
}

func TestCreateDestroyLifecycle(t *testing.T) {
	m, _ := newTestManager()
	h := m.Create()

	if got := h.Status(); got != StatusOK {
		t.Fatalf("fresh handle status = %v, want OK", got)
	}

	if err := m.Destroy(&h); err != nil {
		t.Fatalf("Destroy() error = %v", err)
	}
	if got := h.Status(); got != StatusDeleted {
		t.Fatalf("status after own Destroy = %v, want Deleted", got)
	}
}

func TestDestroyedByOtherHandleReadsNotFound(t *testing.T) {
	m, _ := newTestManager()
	h := m.Create()
	copyOfH := h

	if err := m.Destroy(&h); err != nil {
		t.Fatalf("Destroy() error = %v", err)
	}
	if got := copyOfH.Status(); got != StatusNotFound {
		t.Fatalf("copy's status after original's Destroy = %v, want NotFound", got)
	}
}

func TestForeignManagerRejected(t *testing.T) {
	m1, d1 := newTestManager()
	m2, _ := newTestManager()
	h := m1.Create()

	if _, err := m2.validate(&h); err == nil {
		t.Fatalf("validate() on foreign manager succeeded, want error")
	}

	if _, _, err := d1.position.Add(m2, &h, position{}); err == nil {
		t.Fatalf("Add() across managers succeeded, want error")
	}
}

func TestComponentAddGetRemove(t *testing.T) {
	m, d := newTestManager()

	h := m.Create()
	want := position{X: 1, Y: 2}

	ptr, inserted, err := d.position.Add(m, &h, want)
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if !inserted {
		t.Fatalf("Add() inserted = false on first call, want true")
	}
	if *ptr != want {
		t.Fatalf("Add() stored %+v, want %+v", *ptr, want)
	}

	got, err := d.position.Get(m, &h)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if *got != want {
		t.Fatalf("Get() = %+v, want %+v", *got, want)
	}

	got.X = 99
	got2, _ := d.position.Get(m, &h)
	if got2.X != 99 {
		t.Fatalf("mutation through Get() pointer not observed, got X = %v", got2.X)
	}

	removed, err := d.position.Remove(m, &h)
	if err != nil || !removed {
		t.Fatalf("Remove() = (%v, %v), want (true, nil)", removed, err)
	}
	if has, _ := d.position.Has(m, &h); has {
		t.Fatalf("Has() = true after Remove, want false")
	}
}

func TestComponentAddIsIdempotent(t *testing.T) {
	m, d := newTestManager()
	h := m.Create()

	first, inserted, _ := d.position.Add(m, &h, position{X: 1, Y: 1})
	_ = first
	second, inserted2, _ := d.position.Add(m, &h, position{X: 9, Y: 9})

	if !inserted {
		t.Fatalf("first Add() inserted = false, want true")
	}
	if inserted2 {
		t.Fatalf("second Add() inserted = true, want false")
	}
	if second.X != 1 {
		t.Fatalf("second Add() did not preserve original value, got X = %v", second.X)
	}
}

func TestTagToggleAndStaleness(t *testing.T) {
	m, d := newTestManager()

	h := m.Create()
	staleCopy := h

	prior, err := d.alive.Set(m, &h, true)
	if err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if prior {
		t.Fatalf("Set() prior = true, want false")
	}

	if has, _ := d.alive.Has(m, &h); !has {
		t.Fatalf("Has() = false after Set(true), want true")
	}

	if got := staleCopy.Status(); got != StatusStale {
		t.Fatalf("copy made before Set() status = %v, want Stale", got)
	}
	if got := h.Status(); got != StatusOK {
		t.Fatalf("refreshed handle status = %v, want OK", got)
	}
}

func TestGetEntitiesFilteredQuery(t *testing.T) {
	m, d := newTestManager()

	both := m.Create()
	d.position.Add(m, &both, position{})
	d.velocity.Add(m, &both, velocity{})
	d.alive.Set(m, &both, true)

	onlyPosition := m.Create()
	d.position.Add(m, &onlyPosition, position{})
	d.alive.Set(m, &onlyPosition, true)

	notAlive := m.Create()
	d.position.Add(m, &notAlive, position{})
	d.velocity.Add(m, &notAlive, velocity{})

	matches := m.GetEntities(d.position, d.velocity, d.alive)
	if len(matches) != 1 {
		t.Fatalf("GetEntities() returned %d matches, want 1", len(matches))
	}
	if matches[0].ID() != both.ID() {
		t.Fatalf("GetEntities() matched id %d, want %d", matches[0].ID(), both.ID())
	}
}

func TestForEach0VisitsEveryMatchingEntity(t *testing.T) {
	m, d := newTestManager()

	var aliveIDs []EntityID
	for i := 0; i < 4; i++ {
		h := m.Create()
		d.position.Add(m, &h, position{})
		if i%2 == 0 {
			d.alive.Set(m, &h, true)
			aliveIDs = append(aliveIDs, h.ID())
		}
	}
	// an entity with no position at all still matches the alive-only filter.
	bare := m.Create()
	d.alive.Set(m, &bare, true)
	aliveIDs = append(aliveIDs, bare.ID())

	var visited []EntityID
	ForEach0(m, []Filterable{d.alive}, func(h Handle) bool {
		visited = append(visited, h.ID())
		return true
	})

	if len(visited) != len(aliveIDs) {
		t.Fatalf("ForEach0 visited %d entities, want %d", len(visited), len(aliveIDs))
	}
	for _, id := range aliveIDs {
		found := false
		for _, v := range visited {
			if v == id {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("ForEach0 did not visit expected entity %d", id)
		}
	}
}

func TestForEach1VisitsExpectedEntitiesAndBreaksOut(t *testing.T) {
	m, d := newTestManager()

	var created []Handle
	for i := 0; i < 5; i++ {
		h := m.Create()
		d.position.Add(m, &h, position{X: float64(i)})
		created = append(created, h)
	}

	var visited int
	ForEach1(m, d.position, nil, func(h Handle, p *position) bool {
		visited++
		return p.X < 2
	})
	if visited != 3 {
		t.Fatalf("ForEach1 visited %d entities before breakout, want 3", visited)
	}
}

func TestForEach3VisitsEntitiesWithAllThreeComponents(t *testing.T) {
	m, d := newTestManager()

	full := m.Create()
	d.position.Add(m, &full, position{X: 1, Y: 2})
	d.velocity.Add(m, &full, velocity{X: 3, Y: 4})
	d.health.Add(m, &full, health{Current: 5, Max: 10})

	partial := m.Create()
	d.position.Add(m, &partial, position{})
	d.velocity.Add(m, &partial, velocity{})

	var visited []EntityID
	ForEach3(m, d.position, d.velocity, d.health, nil, func(h Handle, p *position, v *velocity, hp *health) bool {
		visited = append(visited, h.ID())
		p.X += v.X
		hp.Current--
		return true
	})

	if len(visited) != 1 || visited[0] != full.ID() {
		t.Fatalf("ForEach3 visited %v, want only %d", visited, full.ID())
	}

	got, _ := d.position.Get(m, &full)
	if got.X != 4 {
		t.Fatalf("ForEach3 did not mutate through its *position pointer, got X = %v", got.X)
	}
	gotHealth, _ := d.health.Get(m, &full)
	if gotHealth.Current != 4 {
		t.Fatalf("ForEach3 did not mutate through its *health pointer, got Current = %v", gotHealth.Current)
	}
}

func TestDestroyDuringForEachIsDeferred(t *testing.T) {
	m, d := newTestManager()

	var created []Handle
	for i := 0; i < 3; i++ {
		h := m.Create()
		d.position.Add(m, &h, position{})
		created = append(created, h)
	}

	target := created[1]
	ForEach1(m, d.position, nil, func(h Handle, p *position) bool {
		if h.ID() == target.ID() {
			m.Destroy(&target)
		}
		return true
	})

	if got := target.Status(); got != StatusDeleted {
		t.Fatalf("status after deferred Destroy = %v, want Deleted", got)
	}
	if has, _ := d.position.Has(m, &created[0]); !has {
		t.Fatalf("unrelated entity lost its component after deferred destroy of another entity")
	}
}
