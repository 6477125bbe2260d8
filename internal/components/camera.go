package components

import (
	"inspect3d/internal/engine"
	"inspect3d/internal/meta"
)

// Projection selects how a camera maps the scene to the screen.
type Projection int

const (
	Perspective Projection = iota
	Orthographic
)

func init() {
	engine.RegisterComponentType("Camera", func() engine.Component {
		return NewCamera()
	})
	meta.RegisterEnum(map[any]string{
		Perspective:  "Perspective",
		Orthographic: "Orthographic",
	})
}

type Camera struct {
	engine.BaseComponent
	Projection Projection `edit:"order=1"`
	Fov        float32    `edit:"order=2,tooltip=Vertical field of view in degrees"`
	Near       float32    `edit:"order=3"`
	Far        float32    `edit:"order=4"`
}

func NewCamera() *Camera {
	return &Camera{
		Fov:  60,
		Near: 0.1,
		Far:  1000,
	}
}

func (c *Camera) State() map[string]any {
	return map[string]any{
		"projection": float64(c.Projection),
		"fov":        float64(c.Fov),
		"near":       float64(c.Near),
		"far":        float64(c.Far),
	}
}

func (c *Camera) SetState(props map[string]any) {
	if v, ok := props["projection"].(float64); ok {
		c.Projection = Projection(v)
	}
	stateFloat(props, "fov", &c.Fov)
	stateFloat(props, "near", &c.Near)
	stateFloat(props, "far", &c.Far)
}
