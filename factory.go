package entityplus

// factory gives callers a single, discoverable entry point for building
// the closed lists and the Manager they describe, instead of reaching for
// NewComponentList/NewTagList/NewManager directly.
type factory struct{}

// Factory is the package's single factory instance.
var Factory factory

// NewComponentList builds a ComponentList from the given component
// descriptors.
func (f factory) NewComponentList(components ...anyComponent) ComponentList {
	return NewComponentList(components...)
}

// NewTagList builds a TagList from the given tag descriptors.
func (f factory) NewTagList(tags ...anyTag) TagList {
	return NewTagList(tags...)
}

// NewManager builds a Manager from a component list, a tag list, and any
// configuration Options.
func (f factory) NewManager(components ComponentList, tags TagList, opts ...Option) *Manager {
	return NewManager(components, tags, opts...)
}
