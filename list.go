package entityplus

import "fmt"

// ListError reports a violation of the closed-list contract: every
// component/tag type must be unique, and no type may be shared between the
// component list and the tag list. Because Go has no variadic generics,
// this check cannot run at compile time; it runs once, at construction
// (NewComponentList/NewTagList/NewManager), and panics with a single terse
// message per violation.
type ListError struct {
	msg string
}

func (e *ListError) Error() string { return e.msg }

// ComponentList is a validated, closed set of component descriptors.
type ComponentList struct {
	items []anyComponent
}

// anyComponent type-erases Component[C] for storage inside ComponentList.
type anyComponent interface {
	Filterable
	newHolder() holder
	Name() string
}

// NewComponentList validates that no component type repeats and returns
// the closed list. Order is preserved; it becomes bit-index order.
func NewComponentList(components ...anyComponent) ComponentList {
	seen := make(map[descriptorID]struct{}, len(components))
	for _, c := range components {
		if _, dup := seen[c.descriptorID()]; dup {
			panic(&ListError{msg: fmt.Sprintf("component_list must be unique: %s repeated", c.Name())})
		}
		seen[c.descriptorID()] = struct{}{}
	}
	return ComponentList{items: components}
}

// TagList is a validated, closed set of tag descriptors.
type TagList struct {
	items []anyTag
}

// anyTag type-erases Tag[T] for storage inside TagList.
type anyTag interface {
	Filterable
	Name() string
}

// NewTagList validates that no tag type repeats and returns the closed list.
func NewTagList(tags ...anyTag) TagList {
	seen := make(map[descriptorID]struct{}, len(tags))
	for _, t := range tags {
		if _, dup := seen[t.descriptorID()]; dup {
			panic(&ListError{msg: fmt.Sprintf("tag_list must be unique: %s repeated", t.Name())})
		}
		seen[t.descriptorID()] = struct{}{}
	}
	return TagList{items: tags}
}
