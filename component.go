package entityplus

import "reflect"

// Filterable is anything that can take part in a query filter: a
// Component[C] or a Tag[T]. It carries just enough type-erased identity
// (descriptor id, payload reflect.Type) for Manager to resolve it to a bit
// index and, for components, a holder — without the caller ever needing to
// name the concrete C/T at the call site.
type Filterable interface {
	descriptorID() descriptorID
	valueType() reflect.Type
	isComponent() bool
}

// Component is the descriptor returned by NewComponent[C]. It is the
// handle-like, cheap-to-copy identity of a component type: adding it to a
// ComponentList registers C with a Manager, and its methods (Add, Get, Has,
// Remove) are how callers read and write C values on entities, rather than
// routing through generic Manager methods, since Go methods cannot
// introduce new type parameters of their own.
type Component[C any] struct {
	id   descriptorID
	name string
}

// NewComponent declares a new component type. name is used only for
// diagnostics (error messages, Manager.Describe); it need not be unique.
func NewComponent[C any](name string) Component[C] {
	return Component[C]{id: newDescriptorID(), name: name}
}

func (c Component[C]) descriptorID() descriptorID { return c.id }
func (c Component[C]) valueType() reflect.Type     { return reflect.TypeFor[C]() }
func (c Component[C]) isComponent() bool           { return true }
func (c Component[C]) Name() string                { return c.name }

func (c Component[C]) newHolder() holder {
	return newComponentHolder[C]()
}

var _ Filterable = Component[struct{}]{}
