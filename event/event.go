// Package event implements a synchronous, registration-ordered publish/
// subscribe bus, independent of entityplus's core: callers wire a Bus
// alongside a Manager in their own code when they want entity lifecycle
// notifications, rather than the core importing an event concept it never
// needs. Bus is a thin, generic, type-keyed analogue of entityplus's own
// descriptor pattern (Component[C]/NewComponent[C]), reusing the same
// "type-as-identity, instance-as-registry" shape for event payload types
// instead of component payload types.
package event

import "reflect"

// Handler receives a published event of type E.
type Handler[E any] func(E)

// subscription type-erases a Handler[E] registration so Bus can store
// handlers for many distinct E types in one slice, in registration order.
type subscription struct {
	id        uint64
	eventType reflect.Type
	call      func(any)
}

// Bus is a synchronous, registration-ordered event dispatcher. Handlers for
// a given event type run in the order they were registered, on the
// publishing goroutine — there is no queueing or async delivery; it is a
// direct, in-process notification mechanism rather than a durable message
// broker.
type Bus struct {
	subs   []subscription
	nextID uint64
}

// NewBus returns an empty event bus.
func NewBus() *Bus {
	return &Bus{}
}

// Subscribe registers fn to run every time an E is published on b. The
// returned function unsubscribes fn when called; calling it more than once
// is a no-op.
func Subscribe[E any](b *Bus, fn Handler[E]) (unsubscribe func()) {
	b.nextID++
	id := b.nextID
	b.subs = append(b.subs, subscription{
		id:        id,
		eventType: reflect.TypeFor[E](),
		call: func(v any) {
			fn(v.(E))
		},
	})

	return func() {
		for i, sub := range b.subs {
			if sub.id == id {
				b.subs = append(b.subs[:i], b.subs[i+1:]...)
				return
			}
		}
	}
}

// Publish delivers evt, synchronously and in registration order, to every
// handler subscribed for E. Handlers subscribed for other types are
// skipped without being invoked.
func Publish[E any](b *Bus, evt E) {
	target := reflect.TypeFor[E]()
	for _, sub := range b.subs {
		if sub.eventType == target {
			sub.call(evt)
		}
	}
}
