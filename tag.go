package entityplus

import "reflect"

// Tag is the descriptor returned by NewTag[T]. Tags carry no value; they
// are boolean markers typed by an empty user type, filtered on the same way
// components are but never yielded as a callback argument.
type Tag[T any] struct {
	id   descriptorID
	name string
}

// NewTag declares a new tag type. name is used only for diagnostics.
func NewTag[T any](name string) Tag[T] {
	return Tag[T]{id: newDescriptorID(), name: name}
}

func (t Tag[T]) descriptorID() descriptorID { return t.id }
func (t Tag[T]) valueType() reflect.Type    { return reflect.TypeFor[T]() }
func (t Tag[T]) isComponent() bool          { return false }
func (t Tag[T]) Name() string               { return t.name }

var _ Filterable = Tag[struct{}]{}
