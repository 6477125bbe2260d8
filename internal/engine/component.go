package engine

import (
	"fmt"
	"reflect"
	"sort"
)

type Component interface {
	Start()
	Update(deltaTime float32)
	SetGameObject(g *GameObject)
	GetGameObject() *GameObject
}

// Stater is implemented by components whose editable state can be
// captured and restored as a property map. Built-in components implement
// it directly; scripts go through the script registry instead.
type Stater interface {
	State() map[string]any
	SetState(props map[string]any)
}

// BaseComponent provides default implementation for Component interface
type BaseComponent struct {
	gameObject *GameObject
}

func (b *BaseComponent) Start() {}

func (b *BaseComponent) Update(deltaTime float32) {}

func (b *BaseComponent) SetGameObject(g *GameObject) {
	b.gameObject = g
}

func (b *BaseComponent) GetGameObject() *GameObject {
	return b.gameObject
}

// ComponentFactory creates a fresh component with default values.
type ComponentFactory func() Component

var componentRegistry = map[string]ComponentFactory{}

// RegisterComponentType registers a named built-in component so scene
// files, prefabs and undo restore can recreate it by name.
func RegisterComponentType(name string, factory ComponentFactory) {
	if _, exists := componentRegistry[name]; exists {
		panic(fmt.Sprintf("component type %q already registered", name))
	}
	componentRegistry[name] = factory
}

// CreateComponent creates a registered component by name, nil if unknown.
func CreateComponent(name string) Component {
	factory, ok := componentRegistry[name]
	if !ok {
		return nil
	}
	return factory()
}

// ComponentTypeName returns the registry name of a component, which by
// convention is its Go type name.
func ComponentTypeName(c Component) string {
	t := reflect.TypeOf(c)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.Name()
}

// RegisteredComponentTypes returns all registered names, sorted for
// stable menu ordering.
func RegisteredComponentTypes() []string {
	names := make([]string, 0, len(componentRegistry))
	for name := range componentRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
