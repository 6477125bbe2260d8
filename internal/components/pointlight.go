package components

import (
	"inspect3d/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func init() {
	engine.RegisterComponentType("PointLight", func() engine.Component {
		return NewPointLight()
	})
}

type PointLight struct {
	engine.BaseComponent
	Color     rl.Color `edit:"order=1"`
	Intensity float32  `edit:"order=2,tooltip=Brightness multiplier"`
	Radius    float32  `edit:"order=3,tooltip=Falloff distance"`
}

func NewPointLight() *PointLight {
	return &PointLight{
		Color:     rl.White,
		Intensity: 1.0,
		Radius:    10.0,
	}
}

func (p *PointLight) State() map[string]any {
	return map[string]any{
		"color":     colorState(p.Color),
		"intensity": float64(p.Intensity),
		"radius":    float64(p.Radius),
	}
}

func (p *PointLight) SetState(props map[string]any) {
	stateColor(props, "color", &p.Color)
	stateFloat(props, "intensity", &p.Intensity)
	stateFloat(props, "radius", &p.Radius)
}

func colorState(c rl.Color) map[string]any {
	return map[string]any{"r": float64(c.R), "g": float64(c.G), "b": float64(c.B)}
}

func stateColor(props map[string]any, key string, into *rl.Color) {
	m, ok := props[key].(map[string]any)
	if !ok {
		return
	}
	if r, ok := m["r"].(float64); ok {
		into.R = uint8(r)
	}
	if g, ok := m["g"].(float64); ok {
		into.G = uint8(g)
	}
	if b, ok := m["b"].(float64); ok {
		into.B = uint8(b)
	}
	into.A = 255
}
