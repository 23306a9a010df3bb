package engine

import (
	"fmt"
	"sort"
)

// ComponentDecoder fills a config struct from a scene file node. It matches
// the signature of yaml.Node.Decode so the engine stays format agnostic.
type ComponentDecoder func(into any) error

// ComponentFactory builds a component from its scene file node.
type ComponentFactory func(decode ComponentDecoder) (Component, error)

var componentRegistry = map[string]ComponentFactory{}

// RegisterComponent registers a named component factory. Registering the
// same name twice is a programming error.
func RegisterComponent(name string, factory ComponentFactory) {
	if _, exists := componentRegistry[name]; exists {
		panic(fmt.Sprintf("component %q already registered", name))
	}
	componentRegistry[name] = factory
}

// CreateComponent looks up a registered component by name and builds it.
func CreateComponent(name string, decode ComponentDecoder) (Component, error) {
	factory, ok := componentRegistry[name]
	if !ok {
		return nil, fmt.Errorf("unknown component type %q", name)
	}
	c, err := factory(decode)
	if err != nil {
		return nil, fmt.Errorf("component %q: %w", name, err)
	}
	return c, nil
}

// GetRegisteredComponents returns a sorted list of all registered names.
func GetRegisteredComponents() []string {
	names := make([]string, 0, len(componentRegistry))
	for name := range componentRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
