package engine

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

type Transform struct {
	Position rl.Vector3 `json:"position"`
	Rotation rl.Vector3 `json:"rotation"` // Euler angles in degrees
	Scale    rl.Vector3 `json:"scale"`
}

// PrefabLink ties a scene object to the prefab it was instantiated from.
// A zero link means the object is not prefab-linked.
type PrefabLink struct {
	PrefabID   string `json:"prefabId,omitempty"`
	InstanceID uint64 `json:"instanceId,omitempty"`
}

func (l PrefabLink) IsLinked() bool { return l.PrefabID != "" }

type GameObject struct {
	UID        uint64        `edit:"-" json:"uid"`
	Name       string        `edit:"order=1" json:"name"`
	Tags       []string      `edit:"order=2" json:"tags,omitempty"`
	Active     bool          `edit:"order=3" json:"active"`
	Transform  Transform     `edit:"order=10" json:"transform"`
	Prefab     PrefabLink    `edit:"-" json:"prefab,omitempty"`
	Scene      *Scene        `edit:"-" json:"-"`
	Parent     *GameObject   `edit:"-" json:"-"`
	Children   []*GameObject `edit:"-" json:"-"`
	components []Component
	started    bool
}

var nextUID uint64

func NewGameObject(name string) *GameObject {
	nextUID++
	return &GameObject{
		UID:    nextUID,
		Name:   name,
		Active: true,
		Transform: Transform{
			Scale: rl.Vector3{X: 1, Y: 1, Z: 1},
		},
		components: make([]Component, 0),
		Children:   make([]*GameObject, 0),
	}
}

func (g *GameObject) AddComponent(c Component) {
	c.SetGameObject(g)
	g.components = append(g.components, c)
}

func (g *GameObject) RemoveComponentByIndex(i int) {
	if i < 0 || i >= len(g.components) {
		return
	}
	g.components[i].SetGameObject(nil)
	g.components = append(g.components[:i], g.components[i+1:]...)
}

// RemoveComponent removes the first component identical to c.
func (g *GameObject) RemoveComponent(c Component) {
	for i, have := range g.components {
		if have == c {
			g.RemoveComponentByIndex(i)
			return
		}
	}
}

// GetComponent returns the first component of type T attached to g.
func GetComponent[T Component](g *GameObject) T {
	var zero T
	for _, c := range g.components {
		if typed, ok := c.(T); ok {
			return typed
		}
	}
	return zero
}

func (g *GameObject) Start() {
	if g.started {
		return
	}
	for _, c := range g.components {
		c.Start()
	}
	g.started = true
}

func (g *GameObject) Update(deltaTime float32) {
	if !g.Active {
		return
	}
	for _, c := range g.components {
		c.Update(deltaTime)
	}
}

func (g *GameObject) Components() []Component {
	return g.components
}

func (g *GameObject) HasTag(tag string) bool {
	for _, t := range g.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

func (g *GameObject) AddChild(child *GameObject) {
	child.Parent = g
	g.Children = append(g.Children, child)
}

func (g *GameObject) RemoveChild(child *GameObject) {
	for i, c := range g.Children {
		if c == child {
			g.Children = append(g.Children[:i], g.Children[i+1:]...)
			child.Parent = nil
			return
		}
	}
}
