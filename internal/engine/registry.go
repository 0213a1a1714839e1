package engine

import (
	"fmt"
	"sort"
)

// ComponentFactory creates a fresh component for the editor's add menu and
// for property-map deserialization.
type ComponentFactory func() Serializable

var componentRegistry = map[string]ComponentFactory{}

// RegisterComponent registers a named component factory.
func RegisterComponent(name string, factory ComponentFactory) {
	if _, exists := componentRegistry[name]; exists {
		panic(fmt.Sprintf("component %q already registered", name))
	}
	componentRegistry[name] = factory
}

// CreateComponent instantiates a registered component by name, applying props
// when non-nil. Returns nil for unknown names.
func CreateComponent(name string, props map[string]any) Serializable {
	factory, ok := componentRegistry[name]
	if !ok {
		return nil
	}
	c := factory()
	if props != nil {
		c.Deserialize(props)
	}
	return c
}

// RegisteredComponents returns a sorted list of all registered component names.
func RegisteredComponents() []string {
	names := make([]string, 0, len(componentRegistry))
	for name := range componentRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
